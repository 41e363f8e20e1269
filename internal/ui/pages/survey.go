package pages

import (
	"context"
	"slices"

	"github.com/a-h/templ"

	"github.com/lifefinance/navigator/internal/model"
)

var (
	genderOptions     = []string{"남성", "여성"}
	occupationOptions = []string{"학생", "대학생", "회사원", "공무원", "전문직", "프리랜서", "자영업", "소상공인", "주부", "기타"}
	residenceOptions  = []string{"서울", "경기", "인천", "부산", "대구", "광주", "대전", "울산", "세종", "강원", "충청", "전라", "경상", "제주"}
	styleOptions      = []string{"안정형", "안정추구형", "위험중립형", "적극투자형", "공격투자형"}
	goalOptions       = []string{"비상금 마련", "목돈 마련", "내 집 마련", "결혼 자금", "자녀 교육", "노후 준비", "부채 상환", "자산 증식"}
)

// SurveyForm carries the current answers and per-field problems.
type SurveyForm struct {
	Profile model.Profile
	Errors  map[string]string
	Edit    bool
}

func Survey(form SurveyForm) templ.Component {
	title := "금융 설문"
	if form.Edit {
		title = "설문 수정"
	}

	return Layout(title, component(func(ctx context.Context, h *html) {
		p := form.Profile

		h.raw(`<h1>`)
		h.text(title)
		h.raw(`</h1><p>답변을 바탕으로 나와 비슷한 사람들의 금융 뉴스 해설과 생애주기 계획을 보여드립니다.</p>`)
		if len(form.Errors) > 0 {
			h.errorBox("입력값을 확인해 주세요.")
		}

		h.raw(`<form method="post" action="/survey">`)
		h.csrfField(ctx)

		h.input("나이", "number", "age", numberValue(p.Age, form.Edit), true)
		h.fieldError(form.Errors["age"])
		h.choice("성별", "gender", genderOptions, p.Gender)
		h.fieldError(form.Errors["gender"])
		h.choice("직업", "occupation", occupationOptions, p.Occupation)
		h.fieldError(form.Errors["occupation"])
		h.choice("거주지", "residence", residenceOptions, p.Residence)
		h.fieldError(form.Errors["residence"])
		h.input("월 소득 (만원)", "number", "monthly_income", numberValue(p.MonthlyIncome, form.Edit), true)
		h.fieldError(form.Errors["monthly_income"])
		h.input("부양가족 수", "number", "dependents", numberValue(p.Dependents, form.Edit), true)
		h.fieldError(form.Errors["dependents"])
		h.choice("투자 성향", "investment_style", styleOptions, p.InvestmentStyle)
		h.fieldError(form.Errors["investment_style"])

		h.raw(`<fieldset><legend>재무 목표 (복수 선택)</legend>`)
		for _, goal := range withExtra(goalOptions, p.FinancialGoal...) {
			h.raw(`<label><input type="checkbox" name="financial_goal" value="`)
			h.text(goal)
			h.raw(`"`)
			if slices.Contains(p.FinancialGoal, goal) {
				h.raw(` checked`)
			}
			h.raw(`>`)
			h.text(goal)
			h.raw(`</label>`)
		}
		h.raw(`</fieldset>`)
		h.fieldError(form.Errors["financial_goal"])

		h.raw(`<button type="submit">결과 보기</button></form>`)
	}))
}

func (h *html) choice(label, name string, options []string, selected string) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(`<select name="` + name + `" required><option value="">선택하세요</option>`)
	for _, opt := range withExtra(options, selected) {
		h.raw(`<option value="`)
		h.text(opt)
		h.raw(`"`)
		if opt == selected {
			h.raw(` selected`)
		}
		h.raw(`>`)
		h.text(opt)
		h.raw(`</option>`)
	}
	h.raw(`</select></label>`)
}

func (h *html) fieldError(message string) {
	if message == "" {
		return
	}
	h.raw(`<small class="error">`)
	h.text(message)
	h.raw(`</small>`)
}

// withExtra keeps previously stored answers selectable even when the option list changed.
func withExtra(options []string, extra ...string) []string {
	out := options
	for _, e := range extra {
		if e != "" && !slices.Contains(out, e) {
			out = append(slices.Clip(out), e)
		}
	}
	return out
}

func numberValue(n int, filled bool) string {
	if !filled && n == 0 {
		return ""
	}
	return itoa(n)
}

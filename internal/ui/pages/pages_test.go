package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifefinance/navigator/internal/ctxkeys"
	"github.com/lifefinance/navigator/internal/model"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestLoginEscapesInput(t *testing.T) {
	ctx := ctxkeys.WithCSRFToken(context.Background(), "tok123")
	out := render(t, ctx, Login(LoginForm{Email: `"><script>x</script>`, Error: "잘못된 <입력>", KakaoEnabled: true}))

	assert.NotContains(t, out, "<script>x</script>")
	assert.Contains(t, out, "&lt;입력&gt;")
	assert.Contains(t, out, `name="csrf_token" value="tok123"`)
	assert.Contains(t, out, `href="/auth/kakao"`)
	assert.Contains(t, out, `href="/register"`)
}

func TestLoginWithoutKakao(t *testing.T) {
	out := render(t, context.Background(), Login(LoginForm{}))
	assert.NotContains(t, out, "/auth/kakao")
}

func TestSurveyPrefillsAnswers(t *testing.T) {
	out := render(t, context.Background(), Survey(SurveyForm{
		Edit: true,
		Profile: model.Profile{
			Age:             26,
			Gender:          "여성",
			Occupation:      "회사원",
			Residence:       "서울",
			MonthlyIncome:   300,
			InvestmentStyle: "위험중립형",
			FinancialGoal:   model.StringList{"내 집 마련", "해외 여행"},
		},
	}))

	assert.Contains(t, out, `name="age" value="26"`)
	assert.Contains(t, out, `<option value="회사원" selected>`)
	assert.Contains(t, out, `value="내 집 마련" checked>`)
	assert.Contains(t, out, `value="해외 여행" checked>`, "stored goals stay selectable")
	assert.Contains(t, out, `name="dependents" value="0"`)
	assert.Equal(t, 1, strings.Count(out, "<h1>설문 수정</h1>"))
}

func TestSurveyShowsFieldErrors(t *testing.T) {
	out := render(t, context.Background(), Survey(SurveyForm{
		Errors: map[string]string{"age": "must be between 0 and 120"},
	}))

	assert.Contains(t, out, "must be between 0 and 120")
	assert.Contains(t, out, `name="age" value=""`)
}

func TestWithExtraDoesNotMutateOptions(t *testing.T) {
	before := append([]string(nil), goalOptions...)
	_ = withExtra(goalOptions, "새 목표")
	assert.Equal(t, before, goalOptions)
}

func TestResultsCarriesNonce(t *testing.T) {
	ctx := templ.WithNonce(context.Background(), "n0nce")
	ctx = ctxkeys.WithUser(ctx, &model.User{ID: "u1"})
	out := render(t, ctx, Results())

	assert.Contains(t, out, `<script nonce="n0nce">`)
	assert.Contains(t, out, "/api/results-data")
	assert.Contains(t, out, `action="/logout"`)
}

package matching

import "github.com/lifefinance/navigator/internal/model"

// Personas is the reference catalog. Declaration order is the tie-break order.
var Personas = []model.Persona{
	{
		Name:              "학생 (대학생)",
		MinAge:            18,
		MaxAge:            24,
		RepresentativeAge: 22,
		Occupation:        model.OccupationStudent,
		Description:       "아직 소득은 없거나 적지만, 첫 금융 습관을 형성하는 가장 중요한 시기.",
		FinancialGoal:     "학자금 관리, 아르바이트 소득 관리, 건전한 소비 습관 형성.",
		NewsKeywords:      []string{"정부 청년 지원 정책", "체크카드 혜택", "소액 적금/투자"},
	},
	{
		Name:              "20대 사회초년생",
		MinAge:            25,
		MaxAge:            29,
		RepresentativeAge: 27,
		Occupation:        model.OccupationEmployee,
		Description:       "첫 월급을 받기 시작하며 본격적인 자산 형성을 시작.",
		FinancialGoal:     "1,000만 원 종잣돈 모으기, 학자금 대출 상환.",
		NewsKeywords:      []string{"청년도약계좌", "예/적금 금리", "주식/코인 등 첫 투자"},
	},
	{
		Name:              "30대 신혼부부/1인 가구",
		MinAge:            30,
		MaxAge:            39,
		RepresentativeAge: 35,
		Occupation:        model.OccupationEmployee,
		Description:       "결혼, 주택 구매 등 인생의 큰 재무 이벤트를 겪는 시기.",
		FinancialGoal:     "내 집 마련 (전세 또는 매매), 장기 자산 형성 시작.",
		NewsKeywords:      []string{"부동산 정책", "대출 규제(DSR, LTV)", "금리 변동"},
	},
	{
		Name:              "40대 (자녀 양육기)",
		MinAge:            40,
		MaxAge:            49,
		RepresentativeAge: 45,
		Occupation:        model.OccupationEmployee,
		Description:       "소득이 가장 안정적이지만, 자녀 교육비 등 지출도 가장 많은 시기.",
		FinancialGoal:     "자녀 교육 자금 마련, 본격적인 노후 준비.",
		NewsKeywords:      []string{"세금 정책(연말정산)", "펀드/ETF 등 중위험 투자", "연금"},
	},
	{
		Name:              "50대 (은퇴 준비기)",
		MinAge:            50,
		MaxAge:            59,
		RepresentativeAge: 55,
		Occupation:        model.OccupationSelfEmployed,
		Description:       "은퇴가 가까워지며, 공격적인 투자보다는 자산을 지키는 데 집중.",
		FinancialGoal:     "안정적인 은퇴 자금 포트폴리오 완성, 부채 정리.",
		NewsKeywords:      []string{"퇴직연금(IRP) 및 국민연금", "배당주", "채권", "금융소득종합과세"},
	},
	{
		Name:              "60대 이상 (은퇴 후)",
		MinAge:            60,
		MaxAge:            100,
		RepresentativeAge: 65,
		Occupation:        model.OccupationOther,
		Description:       "모아둔 자산을 효율적으로 사용하며, 안정적인 현금 흐름을 만드는 것이 중요.",
		FinancialGoal:     "안정적인 생활비 확보, 자산 상속 및 증여 계획.",
		NewsKeywords:      []string{"연금 수령 방법", "즉시연금", "주택연금", "건강보험", "상속세"},
	},
}

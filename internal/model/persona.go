package model

const (
	OccupationStudent      = "학생"
	OccupationEmployee     = "직장인/전문직"
	OccupationSelfEmployed = "자영업"
	OccupationOther        = "기타"
)

type Persona struct {
	Name              string   `json:"name"`
	MinAge            int      `json:"min_age"`
	MaxAge            int      `json:"max_age"`
	RepresentativeAge int      `json:"representative_age"`
	Occupation        string   `json:"occupation"`
	Description       string   `json:"description"`
	FinancialGoal     string   `json:"financial_goal"`
	NewsKeywords      []string `json:"news_keywords"`
}

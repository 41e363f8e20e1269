package model

// Results is the payload behind the results dashboard.
type Results struct {
	Profile              *Profile              `json:"user_profile"`
	Persona              string                `json:"matched_persona"`
	AgeBracket           string                `json:"age_bracket"`
	LifecyclePlans       []PlanEntry           `json:"lifecycle_plans"`
	PersonalizedArticles []PersonalizedArticle `json:"personalized_articles"`
}

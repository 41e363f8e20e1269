package model

const (
	PlanStatusDone       = "완료"
	PlanStatusInProgress = "진행중"
	PlanStatusUpcoming   = "예정"
)

// PlanTemplate is one row of the static life-cycle catalog. Status is never stored.
type PlanTemplate struct {
	ID       string     `db:"id" yaml:"-"`
	Position int        `db:"position" yaml:"-"`
	AgeGroup string     `db:"age_group" yaml:"age_group"`
	MinAge   int        `db:"min_age" yaml:"min_age"`
	MaxAge   int        `db:"max_age" yaml:"max_age"`
	Tasks    StringList `db:"tasks" yaml:"tasks"`
}

// PlanEntry is a plan step annotated with the viewer's status.
type PlanEntry struct {
	AgeGroup string   `json:"age_group"`
	Tasks    []string `json:"tasks"`
	Status   string   `json:"status"`
	MinAge   *int     `json:"min_age,omitempty"`
	MaxAge   *int     `json:"max_age,omitempty"`
}

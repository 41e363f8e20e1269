package validation

import (
	"sort"
	"strings"

	"github.com/lifefinance/navigator/internal/model"
)

const (
	maxAge        = 120
	maxDependents = 20
	maxLabelLen   = 100
)

// FieldErrors maps a survey field to its problem.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid survey: " + strings.Join(parts, ", ")
}

// ValidateSurvey checks ranges and required labels before anything is stored.
func ValidateSurvey(p *model.Profile) error {
	errs := FieldErrors{}

	if p.Age < 0 || p.Age > maxAge {
		errs["age"] = "must be between 0 and 120"
	}
	if p.MonthlyIncome < 0 {
		errs["monthly_income"] = "must not be negative"
	}
	if p.Dependents < 0 || p.Dependents > maxDependents {
		errs["dependents"] = "must be between 0 and 20"
	}

	required := map[string]string{
		"gender":           p.Gender,
		"occupation":       p.Occupation,
		"residence":        p.Residence,
		"investment_style": p.InvestmentStyle,
	}
	for field, value := range required {
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			errs[field] = "is required"
		case len([]rune(value)) > maxLabelLen:
			errs[field] = "is too long"
		}
	}

	if len(p.FinancialGoal) == 0 {
		errs["financial_goal"] = "select at least one goal"
	}
	for _, g := range p.FinancialGoal {
		if strings.TrimSpace(g) == "" || len([]rune(g)) > maxLabelLen {
			errs["financial_goal"] = "contains an invalid goal"
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package matching

import (
	"regexp"
	"strconv"

	"github.com/lifefinance/navigator/internal/model"
)

// ageRangePattern matches labels such as "30대 초반 (31-35세)".
var ageRangePattern = regexp.MustCompile(`\((\d+)-(\d+)세\)`)

// PlanStatus places age A relative to the inclusive bracket [minAge, maxAge].
func PlanStatus(age, minAge, maxAge int) string {
	switch {
	case age > maxAge:
		return model.PlanStatusDone
	case age >= minAge:
		return model.PlanStatusInProgress
	default:
		return model.PlanStatusUpcoming
	}
}

// ParseAgeRange extracts the first "(min-max세)" range embedded in a label.
func ParseAgeRange(label string) (minAge, maxAge int, ok bool) {
	m := ageRangePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	minAge, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	maxAge, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return minAge, maxAge, true
}

// ResolveTemplates annotates catalog templates with the viewer's status, keeping catalog order.
func ResolveTemplates(age int, templates []model.PlanTemplate) []model.PlanEntry {
	entries := make([]model.PlanEntry, 0, len(templates))
	for _, t := range templates {
		minAge, maxAge := t.MinAge, t.MaxAge
		entries = append(entries, model.PlanEntry{
			AgeGroup: t.AgeGroup,
			Tasks:    append([]string{}, t.Tasks...),
			Status:   PlanStatus(age, minAge, maxAge),
			MinAge:   &minAge,
			MaxAge:   &maxAge,
		})
	}
	return entries
}

// ResolveLabel annotates a generated plan step whose range is embedded in its
// label. Labels without a range stay upcoming.
func ResolveLabel(age int, label string, tasks []string) model.PlanEntry {
	entry := model.PlanEntry{
		AgeGroup: label,
		Tasks:    tasks,
		Status:   model.PlanStatusUpcoming,
	}
	if entry.Tasks == nil {
		entry.Tasks = []string{}
	}

	minAge, maxAge, ok := ParseAgeRange(label)
	if !ok {
		return entry
	}
	entry.Status = PlanStatus(age, minAge, maxAge)
	entry.MinAge = &minAge
	entry.MaxAge = &maxAge
	return entry
}

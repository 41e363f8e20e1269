package matching

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lifefinance/navigator/internal/model"
)

var occupationCategories = map[string]string{
	"학생":   model.OccupationStudent,
	"대학생":  model.OccupationStudent,
	"회사원":  model.OccupationEmployee,
	"공무원":  model.OccupationEmployee,
	"선생님":  model.OccupationEmployee,
	"전문직":  model.OccupationEmployee,
	"프리랜서": model.OccupationEmployee,
	"자영업":  model.OccupationSelfEmployed,
	"소상공인": model.OccupationSelfEmployed,
}

// Normalize trims a free-text label and composes Hangul into NFC so that
// decomposed browser input compares equal to the catalog labels.
func Normalize(label string) string {
	return norm.NFC.String(strings.TrimSpace(label))
}

// OccupationCategory maps a free-text occupation onto one of four coarse
// categories. Anything unlisted is "기타".
func OccupationCategory(occupation string) string {
	category, ok := occupationCategories[Normalize(occupation)]
	if !ok {
		return model.OccupationOther
	}
	return category
}

package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifefinance/navigator/internal/model"
)

func TestOccupationCategory(t *testing.T) {
	tests := []struct {
		occupation string
		want       string
	}{
		{"학생", model.OccupationStudent},
		{"대학생", model.OccupationStudent},
		{"회사원", model.OccupationEmployee},
		{" 공무원 ", model.OccupationEmployee},
		{"프리랜서", model.OccupationEmployee},
		{"소상공인", model.OccupationSelfEmployed},
		{"무직", model.OccupationOther},
		{"", model.OccupationOther},
	}

	for _, tt := range tests {
		t.Run(tt.occupation, func(t *testing.T) {
			assert.Equal(t, tt.want, OccupationCategory(tt.occupation))
		})
	}
}

func TestRuleMatcherEarlyCareerEmployee(t *testing.T) {
	m := NewRuleMatcher(Personas)

	got := m.Match(26, "회사원")

	assert.Equal(t, "20대 사회초년생", got.Name)
	assert.Equal(t, 150, m.Score(got, 26, OccupationCategory("회사원")))
}

func TestRuleMatcherFullMatchBeatsPartialMatches(t *testing.T) {
	representative := map[string]string{
		model.OccupationStudent:      "대학생",
		model.OccupationEmployee:     "회사원",
		model.OccupationSelfEmployed: "자영업",
		model.OccupationOther:        "무직",
	}
	m := NewRuleMatcher(Personas)

	for _, p := range Personas {
		t.Run(p.Name, func(t *testing.T) {
			occupation := representative[p.Occupation]
			category := OccupationCategory(occupation)

			got := m.Match(p.MinAge, occupation)
			require.Equal(t, p.Name, got.Name)

			full := m.Score(p, p.MinAge, category)
			assert.GreaterOrEqual(t, full, 150)
			for _, other := range Personas {
				if other.Name == p.Name {
					continue
				}
				assert.Greater(t, full, m.Score(other, p.MinAge, category))
			}
		})
	}
}

func TestRuleMatcherTieGoesToCatalogOrder(t *testing.T) {
	catalog := []model.Persona{
		{Name: "first", MinAge: 20, MaxAge: 29, Occupation: model.OccupationStudent},
		{Name: "second", MinAge: 30, MaxAge: 39, Occupation: model.OccupationStudent},
	}
	m := NewRuleMatcher(catalog)

	// No range and no category matches: every score is 0.
	assert.Equal(t, "first", m.Match(0, "회사원").Name)
	assert.Equal(t, "first", m.Match(120, "회사원").Name)
	// Occupation only: both score 50.
	assert.Equal(t, "first", m.Match(50, "학생").Name)
}

func TestRuleMatcherAgeZeroStudent(t *testing.T) {
	m := NewRuleMatcher(Personas)
	assert.Equal(t, "학생 (대학생)", m.Match(0, "학생").Name)
}

func TestPersonaMatchersAreDeterministic(t *testing.T) {
	matchers := []PersonaMatcher{NewRuleMatcher(Personas), NewSimilarityMatcher(Personas)}
	occupations := []string{"학생", "회사원", "자영업", "기타", "의사"}

	for _, m := range matchers {
		for age := 0; age <= 110; age += 7 {
			for _, occ := range occupations {
				first := m.Match(age, occ)
				second := m.Match(age, occ)
				assert.Equal(t, first.Name, second.Name, "%s age=%d occupation=%s", m.Name(), age, occ)
			}
		}
	}
}

func TestNewPersonaMatcher(t *testing.T) {
	m, err := NewPersonaMatcher("rules", Personas)
	require.NoError(t, err)
	assert.Equal(t, "rules", m.Name())

	m, err = NewPersonaMatcher("similarity", Personas)
	require.NoError(t, err)
	assert.Equal(t, "similarity", m.Name())

	_, err = NewPersonaMatcher("learned", Personas)
	assert.Error(t, err)
}

package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifefinance/navigator/internal/model"
)

func TestSimilarityMatcherEarlyCareerEmployee(t *testing.T) {
	m := NewSimilarityMatcher(Personas)
	assert.Equal(t, "20대 사회초년생", m.Match(26, "회사원").Name)
}

func TestSimilarityMatcherStudent(t *testing.T) {
	m := NewSimilarityMatcher(Personas)

	scores := m.Similarities(20, "대학생")
	require.Len(t, scores, len(Personas))

	assert.InDelta(t, 1.0, scores[0], 0.01)
	assert.Equal(t, "학생 (대학생)", m.Match(20, "대학생").Name)
}

func TestSimilarityMatcherScoresAreBounded(t *testing.T) {
	m := NewSimilarityMatcher(Personas)

	for age := 0; age <= 100; age += 5 {
		for _, s := range m.Similarities(age, "공무원") {
			assert.False(t, math.IsNaN(s))
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0+1e-9)
		}
	}
}

func TestSimilarityMatcherZeroAgeVariance(t *testing.T) {
	catalog := []model.Persona{
		{Name: "student", RepresentativeAge: 30, Occupation: model.OccupationStudent},
		{Name: "employee", RepresentativeAge: 30, Occupation: model.OccupationEmployee},
	}
	m := NewSimilarityMatcher(catalog)

	scores := m.Similarities(30, "회사원")
	for _, s := range scores {
		assert.False(t, math.IsNaN(s))
	}
	assert.Equal(t, "employee", m.Match(30, "회사원").Name)

	// Nothing in common: all similarities are 0 and the first persona wins.
	assert.Equal(t, "student", m.Match(30, "무직").Name)
}

package matching

import (
	"fmt"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/model"
)

const (
	ageMatchScore        = 100
	occupationMatchScore = 50
)

// PersonaMatcher picks the reference persona closest to a profile.
// Implementations are pure: the same age and occupation always give the same persona.
type PersonaMatcher interface {
	Match(age int, occupation string) model.Persona
	Name() string
}

// NewPersonaMatcher returns the matcher for the configured strategy.
func NewPersonaMatcher(strategy string, personas []model.Persona) (PersonaMatcher, error) {
	switch strategy {
	case config.PersonaStrategyRules, "":
		return NewRuleMatcher(personas), nil
	case config.PersonaStrategySimilarity:
		return NewSimilarityMatcher(personas), nil
	default:
		return nil, fmt.Errorf("unknown persona strategy: %s (supported: rules, similarity)", strategy)
	}
}

// RuleMatcher scores every persona: +100 when the age is inside its
// inclusive range, +50 when the occupation category matches.
type RuleMatcher struct {
	personas []model.Persona
}

func NewRuleMatcher(personas []model.Persona) *RuleMatcher {
	return &RuleMatcher{personas: personas}
}

func (m *RuleMatcher) Name() string {
	return config.PersonaStrategyRules
}

// Score returns the rule score of one persona.
func (m *RuleMatcher) Score(p model.Persona, age int, category string) int {
	score := 0
	if p.MinAge <= age && age <= p.MaxAge {
		score += ageMatchScore
	}
	if p.Occupation == category {
		score += occupationMatchScore
	}
	return score
}

// Match returns the highest scoring persona. Ties go to the earliest persona
// in the catalog, so an age outside every range with an unmatched occupation
// still yields the first persona.
func (m *RuleMatcher) Match(age int, occupation string) model.Persona {
	if len(m.personas) == 0 {
		return model.Persona{}
	}

	category := OccupationCategory(occupation)
	best := 0
	bestScore := m.Score(m.personas[0], age, category)
	for i := 1; i < len(m.personas); i++ {
		score := m.Score(m.personas[i], age, category)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return m.personas[best]
}

package matching

import (
	"math"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/model"
)

// SimilarityMatcher compares the profile to each persona's representative
// point (age, occupation category) by cosine similarity over a feature matrix
// built from the user row plus every persona row: one-hot occupation
// category columns followed by a min-max scaled age column.
type SimilarityMatcher struct {
	personas []model.Persona
}

func NewSimilarityMatcher(personas []model.Persona) *SimilarityMatcher {
	return &SimilarityMatcher{personas: personas}
}

func (m *SimilarityMatcher) Name() string {
	return config.PersonaStrategySimilarity
}

// Similarities returns one cosine similarity per persona in catalog order.
func (m *SimilarityMatcher) Similarities(age int, occupation string) []float64 {
	rows := m.featureMatrix(age, OccupationCategory(occupation))
	user := rows[0]

	scores := make([]float64, len(m.personas))
	for i := range m.personas {
		scores[i] = cosine(user, rows[i+1])
	}
	return scores
}

func (m *SimilarityMatcher) Match(age int, occupation string) model.Persona {
	if len(m.personas) == 0 {
		return model.Persona{}
	}

	scores := m.Similarities(age, occupation)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return m.personas[best]
}

// featureMatrix returns the user row first, then one row per persona.
func (m *SimilarityMatcher) featureMatrix(age int, category string) [][]float64 {
	ages := make([]int, 0, len(m.personas)+1)
	categories := make([]string, 0, len(m.personas)+1)

	ages = append(ages, age)
	categories = append(categories, category)
	for _, p := range m.personas {
		ages = append(ages, p.RepresentativeAge)
		categories = append(categories, p.Occupation)
	}

	// Column order follows first appearance so the matrix is deterministic.
	columns := make(map[string]int)
	for _, c := range categories {
		if _, ok := columns[c]; !ok {
			columns[c] = len(columns)
		}
	}

	minAge, maxAge := ages[0], ages[0]
	for _, a := range ages[1:] {
		minAge = min(minAge, a)
		maxAge = max(maxAge, a)
	}
	span := float64(maxAge - minAge)

	rows := make([][]float64, len(ages))
	for i := range ages {
		row := make([]float64, len(columns)+1)
		row[columns[categories[i]]] = 1
		// Zero variance: every scaled age is 0.
		if span > 0 {
			row[len(columns)] = float64(ages[i]-minAge) / span
		}
		rows[i] = row
	}
	return rows
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

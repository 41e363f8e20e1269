package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// AnalysisRecord is the pre-computed commentary for one reader segment.
type AnalysisRecord struct {
	Summary        string `json:"summary" yaml:"summary"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// AnalysisEntry is keyed by persona name or age bracket. Goals optionally
// narrows the commentary further by financial goal label.
type AnalysisEntry struct {
	AnalysisRecord `yaml:",inline"`
	Goals          map[string]AnalysisRecord `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// AnalysisMap is stored as a JSON object column.
type AnalysisMap map[string]AnalysisEntry

func (m AnalysisMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]AnalysisEntry(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *AnalysisMap) Scan(src any) error {
	return scanJSON(src, m)
}

// ArticleAnalysis is produced by the ingestion pipeline and read-only here.
type ArticleAnalysis struct {
	ID        string      `db:"id" json:"id" yaml:"-"`
	Title     string      `db:"title" json:"title" yaml:"title"`
	Analysis  AnalysisMap `db:"analysis" json:"analysis" yaml:"analysis"`
	CreatedAt time.Time   `db:"created_at" json:"created_at" yaml:"-"`
}

// PersonalizedArticle is one matched summary shown to the reader.
type PersonalizedArticle struct {
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
	Goal           string `json:"goal,omitempty"`
}

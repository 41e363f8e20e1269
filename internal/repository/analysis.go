package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lifefinance/navigator/internal/model"
)

// AnalysisFilter narrows the article corpus. Zero values mean no restriction.
type AnalysisFilter struct {
	Since time.Time
	Limit uint64
}

type AnalysisRepository interface {
	List() ([]model.ArticleAnalysis, error)
	ListFiltered(filter AnalysisFilter) ([]model.ArticleAnalysis, error)
	Upsert(analysis *model.ArticleAnalysis) error
	ReplaceAll(analyses []model.ArticleAnalysis) error
	Count() (int, error)
}

type analysisRepository struct {
	db *sqlx.DB
}

func NewAnalysisRepository(db *sqlx.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) List() ([]model.ArticleAnalysis, error) {
	return r.ListFiltered(AnalysisFilter{})
}

// ListFiltered returns the newest articles first.
func (r *analysisRepository) ListFiltered(filter AnalysisFilter) ([]model.ArticleAnalysis, error) {
	b := psql.Select("*").From("analysis_results").OrderBy("created_at DESC", "title ASC")
	if !filter.Since.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": filter.Since})
	}
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	analyses := []model.ArticleAnalysis{}
	err = r.db.Select(&analyses, query, args...)
	if err != nil {
		return nil, err
	}

	return analyses, nil
}

// Upsert keys articles by title; re-importing an export replaces the analysis.
func (r *analysisRepository) Upsert(analysis *model.ArticleAnalysis) error {
	return upsertAnalysis(r.db, analysis)
}

func (r *analysisRepository) ReplaceAll(analyses []model.ArticleAnalysis) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM analysis_results`)
	if err != nil {
		return err
	}

	for i := range analyses {
		err = upsertAnalysis(tx, &analyses[i])
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *analysisRepository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM analysis_results`)
	return count, err
}

func upsertAnalysis(exec sqlx.Execer, analysis *model.ArticleAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now()
	}
	if analysis.Analysis == nil {
		analysis.Analysis = model.AnalysisMap{}
	}

	_, err := exec.Exec(`
		INSERT INTO analysis_results (id, title, analysis, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (title) DO UPDATE SET analysis = excluded.analysis
	`, analysis.ID, analysis.Title, analysis.Analysis, analysis.CreatedAt)

	return err
}

package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lifefinance/navigator/internal/model"
)

type PlanRepository interface {
	List() ([]model.PlanTemplate, error)
	ReplaceAll(templates []model.PlanTemplate) error
}

type planRepository struct {
	db *sqlx.DB
}

func NewPlanRepository(db *sqlx.DB) PlanRepository {
	return &planRepository{db: db}
}

// List returns the life-cycle catalog in declaration order.
func (r *planRepository) List() ([]model.PlanTemplate, error) {
	templates := []model.PlanTemplate{}
	err := r.db.Select(&templates, `SELECT * FROM lifecycle_plans ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// ReplaceAll swaps the whole catalog in one transaction. Slice order becomes position.
func (r *planRepository) ReplaceAll(templates []model.PlanTemplate) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM lifecycle_plans`)
	if err != nil {
		return err
	}

	for i := range templates {
		t := &templates[i]
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		t.Position = i
		if t.Tasks == nil {
			t.Tasks = model.StringList{}
		}

		_, err = tx.Exec(`
			INSERT INTO lifecycle_plans (id, position, age_group, min_age, max_age, tasks)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, t.ID, t.Position, t.AgeGroup, t.MinAge, t.MaxAge, t.Tasks)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lifefinance/navigator/internal/model"
)

type ProfileRepository interface {
	ByUserID(userID string) (*model.Profile, error)
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM user_profiles WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Upsert replaces the user's survey answers wholesale. No history is kept:
// the row id and created_at survive, everything else is overwritten.
func (r *profileRepository) Upsert(profile *model.Profile) error {
	now := time.Now()
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	if profile.FinancialGoal == nil {
		profile.FinancialGoal = model.StringList{}
	}

	_, err := r.db.Exec(`
		INSERT INTO user_profiles (id, user_id, age, gender, occupation, residence, monthly_income, dependents, investment_style, financial_goal, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			occupation = excluded.occupation,
			residence = excluded.residence,
			monthly_income = excluded.monthly_income,
			dependents = excluded.dependents,
			investment_style = excluded.investment_style,
			financial_goal = excluded.financial_goal,
			updated_at = excluded.updated_at
	`,
		profile.ID,
		profile.UserID,
		profile.Age,
		profile.Gender,
		profile.Occupation,
		profile.Residence,
		profile.MonthlyIncome,
		profile.Dependents,
		profile.InvestmentStyle,
		profile.FinancialGoal,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	return err
}

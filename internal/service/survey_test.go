package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
	"github.com/lifefinance/navigator/internal/validation"
)

func TestSurveySubmitAndReplace(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)
	user := createTestUser(t, users, &model.User{Email: "survey@example.com"})
	s := NewSurveyService(repository.NewProfileRepository(database))

	_, err := s.Profile(user.ID)
	assert.ErrorIs(t, err, ErrProfileMissing)

	err = s.Submit(user.ID, &model.Profile{
		Age:             26,
		Gender:          " 여성 ",
		Occupation:      norm.NFD.String("회사원"),
		Residence:       "서울",
		MonthlyIncome:   300,
		InvestmentStyle: "안정형",
		FinancialGoal:   model.StringList{"내 집 마련", " 내 집 마련", "노후 준비"},
	})
	require.NoError(t, err)

	got, err := s.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "여성", got.Gender)
	assert.Equal(t, "회사원", got.Occupation)
	assert.Equal(t, model.StringList{"내 집 마련", "노후 준비"}, got.FinancialGoal)

	err = s.Submit(user.ID, &model.Profile{
		Age:             27,
		Gender:          "여성",
		Occupation:      "프리랜서",
		Residence:       "부산",
		InvestmentStyle: "공격형",
		FinancialGoal:   model.StringList{"자녀 교육"},
	})
	require.NoError(t, err)

	got, err = s.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 27, got.Age)
	assert.Equal(t, model.StringList{"자녀 교육"}, got.FinancialGoal)
}

func TestSurveySubmitRejectsInvalidInput(t *testing.T) {
	profiles := &stubProfileRepo{}
	s := NewSurveyService(profiles)

	err := s.Submit("u1", &model.Profile{Age: -3})

	var fieldErrs validation.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "age")
	assert.Zero(t, profiles.upserts, "invalid surveys never reach storage")
}

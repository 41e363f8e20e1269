package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lifefinance/navigator/internal/matching"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
	"github.com/lifefinance/navigator/internal/service/planner"
)

var ErrProcessingFailed = errors.New("processing failed")

// ResultsService assembles the dashboard payload: plan, persona, then articles.
type ResultsService struct {
	profileRepo  repository.ProfileRepository
	analysisRepo repository.AnalysisRepository
	plans        planner.Provider
	personas     matching.PersonaMatcher
	articles     matching.ArticleMatcher
}

func NewResultsService(
	profileRepo repository.ProfileRepository,
	analysisRepo repository.AnalysisRepository,
	plans planner.Provider,
	personas matching.PersonaMatcher,
	articles matching.ArticleMatcher,
) *ResultsService {
	return &ResultsService{
		profileRepo:  profileRepo,
		analysisRepo: analysisRepo,
		plans:        plans,
		personas:     personas,
		articles:     articles,
	}
}

// Results returns ErrProfileMissing when the user has not answered the survey.
// Every other failure becomes ErrProcessingFailed; partial payloads are never returned.
func (s *ResultsService) Results(ctx context.Context, userID string) (results *model.Results, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("results aggregation panicked", "panic", r, "user_id", userID)
			results, err = nil, ErrProcessingFailed
		}
	}()

	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, s.fail("load profile", userID, err)
	}

	plans, err := s.plans.Plans(ctx, profile)
	if err != nil {
		return nil, s.fail("resolve plans", userID, err)
	}

	persona := s.personas.Match(profile.Age, profile.Occupation)

	corpus, err := s.analysisRepo.List()
	if err != nil {
		return nil, s.fail("load articles", userID, err)
	}

	articles := s.articles.Match(matching.ArticleQuery{
		Persona: persona.Name,
		Age:     profile.Age,
		Goals:   profile.FinancialGoal,
	}, corpus)

	if plans == nil {
		plans = []model.PlanEntry{}
	}

	return &model.Results{
		Profile:              profile,
		Persona:              persona.Name,
		AgeBracket:           matching.AgeBracket(profile.Age),
		LifecyclePlans:       plans,
		PersonalizedArticles: articles,
	}, nil
}

func (s *ResultsService) fail(step, userID string, err error) error {
	slog.Error("results aggregation failed", "step", step, "error", err, "user_id", userID)
	return fmt.Errorf("%s: %w", step, ErrProcessingFailed)
}

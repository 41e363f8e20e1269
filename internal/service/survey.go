package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lifefinance/navigator/internal/matching"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
	"github.com/lifefinance/navigator/internal/validation"
)

var ErrProfileMissing = errors.New("profile missing")

type SurveyService struct {
	profileRepo repository.ProfileRepository
}

func NewSurveyService(profileRepo repository.ProfileRepository) *SurveyService {
	return &SurveyService{
		profileRepo: profileRepo,
	}
}

// Profile returns the user's answers, or ErrProfileMissing before the first submission.
func (s *SurveyService) Profile(userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Submit validates and stores the survey, replacing any previous answers.
func (s *SurveyService) Submit(userID string, profile *model.Profile) error {
	normalizeProfile(profile)

	err := validation.ValidateSurvey(profile)
	if err != nil {
		return err
	}

	profile.UserID = userID
	profile.ID = ""
	profile.CreatedAt = time.Time{}

	err = s.profileRepo.Upsert(profile)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// normalizeProfile trims labels and drops duplicate goals, keeping first occurrence.
func normalizeProfile(p *model.Profile) {
	p.Gender = strings.TrimSpace(p.Gender)
	p.Occupation = matching.Normalize(p.Occupation)
	p.Residence = strings.TrimSpace(p.Residence)
	p.InvestmentStyle = strings.TrimSpace(p.InvestmentStyle)

	seen := make(map[string]bool, len(p.FinancialGoal))
	goals := model.StringList{}
	for _, g := range p.FinancialGoal {
		g = matching.Normalize(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		goals = append(goals, g)
	}
	p.FinancialGoal = goals
}

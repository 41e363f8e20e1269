package service

import (
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

//go:embed seed/lifecycle_plans.yaml
var lifecyclePlansYAML []byte

// SeedService loads the static life-cycle plan catalog.
type SeedService struct {
	planRepo repository.PlanRepository
}

func NewSeedService(planRepo repository.PlanRepository) *SeedService {
	return &SeedService{planRepo: planRepo}
}

// DefaultPlanTemplates returns the embedded catalog.
func DefaultPlanTemplates() ([]model.PlanTemplate, error) {
	return ParsePlanTemplates(lifecyclePlansYAML)
}

// SeedPlans replaces the stored catalog with the embedded one.
func (s *SeedService) SeedPlans() (int, error) {
	templates, err := DefaultPlanTemplates()
	if err != nil {
		return 0, err
	}
	return s.ReplacePlans(templates)
}

// ReplacePlans replaces the stored catalog; used with custom catalog files.
func (s *SeedService) ReplacePlans(templates []model.PlanTemplate) (int, error) {
	for _, t := range templates {
		if t.AgeGroup == "" || t.MinAge > t.MaxAge {
			return 0, fmt.Errorf("invalid plan template %q (%d-%d)", t.AgeGroup, t.MinAge, t.MaxAge)
		}
	}

	err := s.planRepo.ReplaceAll(templates)
	if err != nil {
		return 0, fmt.Errorf("failed to replace plan catalog: %w", err)
	}

	slog.Info("plan catalog seeded", "count", len(templates))
	return len(templates), nil
}

// ParsePlanTemplates reads a catalog in the embedded YAML layout.
func ParsePlanTemplates(data []byte) ([]model.PlanTemplate, error) {
	var templates []model.PlanTemplate
	err := yaml.Unmarshal(data, &templates)
	if err != nil {
		return nil, fmt.Errorf("parse plan catalog: %w", err)
	}
	return templates, nil
}

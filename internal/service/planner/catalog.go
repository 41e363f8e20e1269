package planner

import (
	"context"
	"fmt"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/matching"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

// CatalogProvider annotates the stored plan templates. Status is recomputed
// on every call from the profile age.
type CatalogProvider struct {
	plans repository.PlanRepository
}

func NewCatalogProvider(plans repository.PlanRepository) *CatalogProvider {
	return &CatalogProvider{plans: plans}
}

func (p *CatalogProvider) Name() string {
	return config.PlanSourceCatalog
}

func (p *CatalogProvider) Plans(_ context.Context, profile *model.Profile) ([]model.PlanEntry, error) {
	templates, err := p.plans.List()
	if err != nil {
		return nil, fmt.Errorf("list plan templates: %w", err)
	}
	return matching.ResolveTemplates(profile.Age, templates), nil
}

package planner

import (
	"context"

	"github.com/lifefinance/navigator/internal/model"
)

// Provider resolves the viewer's life-cycle plan with a status per step.
type Provider interface {
	// Plans returns the plan steps in display order. An empty list is valid.
	Plans(ctx context.Context, profile *model.Profile) ([]model.PlanEntry, error)

	// Name returns the source name (e.g., "catalog", "remote")
	Name() string
}

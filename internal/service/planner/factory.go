package planner

import (
	"fmt"
	"log/slog"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/repository"
)

// NewProvider creates a plan provider based on configuration
func NewProvider(cfg *config.Config, plans repository.PlanRepository) (Provider, error) {
	source := cfg.PlanSource

	slog.Info("initializing plan provider", "source", source)

	switch source {
	case config.PlanSourceCatalog:
		return NewCatalogProvider(plans), nil

	case config.PlanSourceRemote:
		if cfg.PlanServiceURL == "" {
			return nil, fmt.Errorf("PLAN_SERVICE_URL is required when using the remote plan source")
		}
		return NewRemoteProvider(cfg.PlanServiceURL, cfg.PlanServiceTimeout), nil

	default:
		return nil, fmt.Errorf("unknown plan source: %s (supported: catalog, remote)", source)
	}
}

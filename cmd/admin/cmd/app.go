package cmd

import (
	"log/slog"

	"github.com/lifefinance/navigator/internal/app"
	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/logger"
)

// withApp loads config, wires the app and closes it after fn.
func withApp(fn func(a *app.App) error) error {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("failed to close app", "error", err)
		}
	}()

	return fn(a)
}

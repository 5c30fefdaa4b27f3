package app

import (
	"log/slog"

	"profiles/internal/services/summary"
)

// App bundles the services commands run against.
type App struct {
	Summary *summary.Service
	Log     *slog.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &App{
		Summary: summary.New(log),
		Log:     log,
	}
}

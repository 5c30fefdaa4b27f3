package app

import "log/slog"

// Config holds runtime wiring options for building the app.
type Config struct {
	Logger *slog.Logger // optional; defaults to slog.Default()
}

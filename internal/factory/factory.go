package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/clockface/internal/services/clock"
)

// App contains all wired application components
type App struct {
	Logger *slog.Logger

	// Services
	ClockService *clock.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &App{
		Logger:       logger,
		ClockService: clock.New(logger),
	}, nil
}

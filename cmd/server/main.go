package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mcoot/clockface/internal/api"
	"github.com/mcoot/clockface/internal/factory"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevelFromEnv(),
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.Config{Logger: logger})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serverConfig, err := api.ServerConfigFromEnv()
	if err != nil {
		logger.Error("invalid server configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		ClockService: app.ClockService,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)

	server := api.NewServer(mux, serverConfig, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// logLevelFromEnv reads CLOCKFACE_LOG_LEVEL, defaulting to info
func logLevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("CLOCKFACE_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

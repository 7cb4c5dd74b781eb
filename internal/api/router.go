package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/clockface/internal/api/handler"
	"github.com/mcoot/clockface/internal/api/middleware"
	"github.com/mcoot/clockface/internal/api/response"
	"github.com/mcoot/clockface/internal/services/clock"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	ClockService *clock.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	clockHandler := handler.NewClockHandler(cfg.ClockService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Clock routes. /step is registered before /{time} so it is not captured as a time.
	// The time segment may contain slashes; anything not HH:MM:SS reads as midnight.
	api.HandleFunc("/clocks", clockHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/clocks/step", clockHandler.Step).Methods(http.MethodPost)
	api.HandleFunc("/clocks/{time:.*}", clockHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/clockface/internal/api/request"
	"github.com/mcoot/clockface/internal/api/response"
	"github.com/mcoot/clockface/internal/services/clock"
)

// ClockHandler handles clock endpoints
type ClockHandler struct {
	clockService *clock.Service
}

// NewClockHandler creates a new clock handler
func NewClockHandler(clockService *clock.Service) *ClockHandler {
	return &ClockHandler{
		clockService: clockService,
	}
}

// Get handles GET /api/v1/clocks/{time}
func (h *ClockHandler) Get(w http.ResponseWriter, r *http.Request) {
	text := mux.Vars(r)["time"]

	reading := h.clockService.Parse(r.Context(), text)
	response.JSON(w, http.StatusOK, response.ClockFromReading(reading))
}

// Create handles POST /api/v1/clocks
func (h *ClockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var reading clock.Reading
	if req.Time != nil {
		reading = h.clockService.Parse(r.Context(), *req.Time)
	} else {
		reading = h.clockService.FromComponents(r.Context(), req.Hours, req.Minutes, req.Seconds)
	}

	response.JSON(w, http.StatusCreated, response.ClockFromReading(reading))
}

// Step handles POST /api/v1/clocks/step
func (h *ClockHandler) Step(w http.ResponseWriter, r *http.Request) {
	var req request.StepClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	reading, err := h.clockService.Step(r.Context(), req.Time, req.Steps)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ClockFromReading(reading))
}

package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/clockface/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidStep    = "INVALID_STEP"
	CodeStepTooLarge   = "STEP_TOO_LARGE"
	CodeTooManySteps   = "TOO_MANY_STEPS"
	CodeInternalError  = "INTERNAL_ERROR"
)

// requestError is an error whose response is already decided
type requestError struct {
	status int
	body   APIError
}

func (e *requestError) Error() string {
	return e.body.Message
}

// stepErrors maps model sentinels to their response code.
// All of them are client errors and keep the wrapped message, which names the step.
var stepErrors = []struct {
	target error
	code   string
}{
	{model.ErrTooManySteps, CodeTooManySteps},
	{model.ErrStepTooLarge, CodeStepTooLarge},
	{model.ErrUnknownUnit, CodeInvalidStep},
	{model.ErrInvalidStep, CodeInvalidStep},
}

// WriteError writes the JSON error envelope for err
func WriteError(w http.ResponseWriter, err error) {
	status, body := classify(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: body})
}

func classify(err error) (int, APIError) {
	var re *requestError
	if errors.As(err, &re) {
		return re.status, re.body
	}

	for _, se := range stepErrors {
		if errors.Is(err, se.target) {
			return http.StatusBadRequest, APIError{Code: se.code, Message: err.Error()}
		}
	}

	return http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &requestError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &requestError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/clockface/internal/api/apierr"
)

// JSON marshals data and writes it with status.
// Marshalling happens before any header is sent, so a failure still yields a clean 500.
func JSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

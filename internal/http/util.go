package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"docuprint/internal/apperror"
)

// All endpoints exchange {"data": ...} or {"error": "..."} bodies.
type envelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Error: message})
}

// writeServiceError maps the apperror taxonomy to transport codes;
// anything unclassified is a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, err error) {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		writeError(w, ae.HTTPStatus(), ae.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

// writeUnauthorized is the uniform unauthenticated response; it never
// leaks whether the target resource exists.
func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Unauthorized")
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

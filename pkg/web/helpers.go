package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// APIResponse is the uniform result wrapper returned by every endpoint:
// a success flag, the data payload, an optional human-readable message and
// per-field errors when validation fails.
type APIResponse struct {
	Success   bool              `json:"success"`
	Data      any               `json:"data"`
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// RespondJSON writes the payload as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondData wraps the payload in a successful APIResponse.
func RespondData(w http.ResponseWriter, logger *slog.Logger, status int, data any, message string) {
	RespondJSON(w, logger, status, APIResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// RespondFailure wraps the message in a failure APIResponse.
func RespondFailure(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, APIResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// RespondValidationErrors reports a per-field validation failure.
func RespondValidationErrors(w http.ResponseWriter, logger *slog.Logger, fields map[string]string) {
	RespondJSON(w, logger, http.StatusBadRequest, APIResponse{
		Success:   false,
		Message:   "Validation failed",
		Errors:    fields,
		Timestamp: time.Now().UTC(),
	})
}

// ParseID extracts and validates the numeric ID from the request path.
// Returns the ID and a boolean indicating success.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, err := strconv.ParseInt(pathValueID, 10, 64)
	if err != nil || id <= 0 {
		RespondFailure(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid ID: %s", pathValueID))
		return 0, false
	}
	return id, true
}

// QueryInt reads an optional integer query parameter. Returns the fallback
// when the parameter is absent, and reports failure for unparsable values.
func QueryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s number: %s", key, raw)
	}
	return v, nil
}

// QueryFloat reads an optional decimal query parameter. Returns nil when
// the parameter is absent.
func QueryFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s number: %s", key, raw)
	}
	return &v, nil
}

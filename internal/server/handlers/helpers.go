// Package handlers implements the HTTP API. Handlers decode, validate,
// call storage and encode; ownership scoping and merge rules live
// here.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/habitsync/pkg/api"
)

// contextKey is a private type for request context keys
type contextKey string

const (
	// UserIDKey carries the authenticated user id, set by the auth
	// middleware
	UserIDKey contextKey = "user_id"

	// UsernameKey carries the authenticated username
	UsernameKey contextKey = "username"
)

// userID extracts the authenticated user id from the request context
func userID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

func sendJSON(logger *slog.Logger, w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func sendError(logger *slog.Logger, w http.ResponseWriter, message string, status int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}
	sendJSON(logger, w, resp, status)
}

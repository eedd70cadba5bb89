// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/service"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/store"
)

// Identity is the display profile returned by GET /me.
type Identity struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions *service.SessionService
	identity Identity
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(sessions *service.SessionService, identity Identity, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		identity: identity,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// handleError maps service and domain errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	var validationErr *session.ValidationError
	var transitionErr *session.InvalidTransitionError
	var generationErr *service.GenerationError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &transitionErr):
		http.Error(w, transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &generationErr):
		http.Error(w, generationErr.Error(), http.StatusBadGateway)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, entity+" not found", http.StatusNotFound)
	default:
		h.logger.Error("request failed", "error", err, "entity", entity)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return true
}

// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions", h.listSessions)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
	mux.HandleFunc("POST /sessions/{sessionID}/generate", h.generateQuestions)
	mux.HandleFunc("POST /sessions/{sessionID}/start", h.startSession)
	mux.HandleFunc("PUT /sessions/{sessionID}/answers", h.recordAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)

	// Reviews
	mux.HandleFunc("GET /sessions/{sessionID}/review", h.getReview)

	// Profile
	mux.HandleFunc("GET /me", h.getMe)
}

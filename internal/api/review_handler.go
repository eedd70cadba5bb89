package api

import "net/http"

// getReview returns the post-completion report for a session.
// @Summary      Get a session review
// @Description  Per-question feedback plus aggregate score and timing for a completed session. Sessions that have not completed report not found.
// @Tags         Reviews
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  review.Report
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/review [get]
func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	report, err := h.sessions.Review(r.Context(), r.PathValue("sessionID"))
	if h.handleError(w, err, "review") {
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// getMe returns the configured display profile.
// @Summary      Get the current profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  Identity
// @Router       /me [get]
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.identity)
}

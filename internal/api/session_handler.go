package api

import (
	"errors"
	"net/http"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/service"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	Description    string `json:"description,omitempty"`
	Difficulty     string `json:"difficulty,omitempty"`
	QuestionsCount int    `json:"questionsCount"`
	Duration       int    `json:"duration"` // minutes
}

type SessionResponse struct {
	*session.Session
	Questions []session.Question `json:"questions,omitempty"`
}

type RecordAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type RecordAnswerResponse struct {
	Status string `json:"status"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession creates a pending session and queues its questions.
// @Summary      Create a session
// @Description  Create an interview practice session. Question generation starts in the background; poll the session until its status is ready.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session parameters"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.sessions.Create(ctx, service.CreateParams{
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		Difficulty:     session.Difficulty(req.Difficulty),
		QuestionsCount: req.QuestionsCount,
		Duration:       req.Duration,
	})
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusCreated, SessionResponse{Session: sess})
}

// listSessions returns all sessions, newest first.
// @Summary      List sessions
// @Tags         Sessions
// @Produce      json
// @Success      200  {array}  SessionResponse
// @Router       /sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if h.handleError(w, err, "sessions") {
		return
	}

	response := make([]SessionResponse, len(sessions))
	for i, sess := range sessions {
		response[i] = SessionResponse{Session: sess}
	}

	respondJSON(w, http.StatusOK, response)
}

// getSession returns one session with its question set.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionID")

	sess, err := h.sessions.Get(ctx, sessionID)
	if h.handleError(w, err, "session") {
		return
	}

	// No question record yet just means generation hasn't finished.
	questions, err := h.sessions.Questions(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.handleError(w, err, "questions")
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{
		Session:   sess,
		Questions: questions,
	})
}

// deleteSession removes a session and all its records.
// @Summary      Delete a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	if h.handleError(w, h.sessions.Delete(r.Context(), sessionID), "session") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// generateQuestions re-queues question generation for a pending session.
// @Summary      Generate questions
// @Description  Queue question generation for the session. Creation does this automatically; use this to retry after a generation failure.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      202        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/generate [post]
func (h *Handler) generateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionID")

	if h.handleError(w, h.sessions.Generate(ctx, sessionID), "session") {
		return
	}

	sess, err := h.sessions.Get(ctx, sessionID)
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusAccepted, SessionResponse{Session: sess})
}

// startSession begins a ready session and starts its countdown.
// @Summary      Start a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/start [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Start(r.Context(), r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{Session: sess})
}

// recordAnswer stores the answer text for one question.
// @Summary      Record an answer
// @Description  Save the answer for a question of an in-progress session. Submitting again overwrites; an empty answer clears it.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      RecordAnswerRequest  true  "Answer"
// @Success      200        {object}  RecordAnswerResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/answers [put]
func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req RecordAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.QuestionID == "" {
		http.Error(w, "questionId is required", http.StatusBadRequest)
		return
	}

	err := h.sessions.RecordAnswer(r.Context(), sessionID, req.QuestionID, req.Answer)
	if h.handleError(w, err, "question") {
		return
	}

	respondJSON(w, http.StatusOK, RecordAnswerResponse{Status: "saved"})
}

// advanceSession moves to the next question.
// @Summary      Advance to the next question
// @Description  Make the next question active. Advancing past the last question completes the session.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Advance(r.Context(), r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{Session: sess})
}

// completeSession finishes the session early.
// @Summary      Complete a session
// @Description  Finish the session now, scoring whatever has been answered. Completing an already-completed session returns it unchanged.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Finish(r.Context(), r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{Session: sess})
}

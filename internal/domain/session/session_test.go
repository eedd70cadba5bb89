package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.New("Frontend Prep", "React.js", "", session.DifficultyIntermediate, 10, 30, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sess
}

func readySession(t *testing.T) *session.Session {
	t.Helper()
	sess := newSession(t)
	if err := sess.BeginGeneration(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sess.CompleteGeneration(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sess
}

func TestNew_StartsPending(t *testing.T) {
	sess := newSession(t)

	if sess.ID == "" {
		t.Error("expected non-empty ID")
	}
	if sess.Status != session.StatusPending {
		t.Errorf("expected status pending, got %s", sess.Status)
	}
	if !sess.CreatedAt.Equal(now) {
		t.Errorf("expected createdAt %v, got %v", now, sess.CreatedAt)
	}
	if sess.Score != nil {
		t.Error("expected no score on a new session")
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name           string
		title          string
		category       string
		difficulty     session.Difficulty
		questionsCount int
		duration       int
		field          string
	}{
		{"empty title", "", "React.js", session.DifficultyBeginner, 10, 30, "title"},
		{"whitespace title", "   ", "React.js", session.DifficultyBeginner, 10, 30, "title"},
		{"empty category", "Prep", "", session.DifficultyBeginner, 10, 30, "category"},
		{"unknown difficulty", "Prep", "React.js", "Impossible", 10, 30, "difficulty"},
		{"too few questions", "Prep", "React.js", session.DifficultyBeginner, 4, 30, "questionsCount"},
		{"too many questions", "Prep", "React.js", session.DifficultyBeginner, 51, 30, "questionsCount"},
		{"duration too short", "Prep", "React.js", session.DifficultyBeginner, 10, 14, "duration"},
		{"duration too long", "Prep", "React.js", session.DifficultyBeginner, 10, 181, "duration"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := session.New(tc.title, tc.category, "", tc.difficulty, tc.questionsCount, tc.duration, now)

			var validationErr *session.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, validationErr.Field)
			}
		})
	}
}

func TestNew_BoundaryValuesAccepted(t *testing.T) {
	for _, tc := range []struct{ questions, duration int }{
		{5, 15}, {50, 180},
	} {
		if _, err := session.New("Prep", "React.js", "", session.DifficultyExpert, tc.questions, tc.duration, now); err != nil {
			t.Errorf("expected %d questions / %d min to be valid, got %v", tc.questions, tc.duration, err)
		}
	}
}

func TestGenerationTransitions(t *testing.T) {
	sess := newSession(t)

	if err := sess.BeginGeneration(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Status != session.StatusGenerating {
		t.Errorf("expected generating, got %s", sess.Status)
	}

	// Cannot start generating twice.
	if err := sess.BeginGeneration(); err == nil {
		t.Error("expected error when generation is already running")
	}

	if err := sess.CompleteGeneration(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Status != session.StatusReady {
		t.Errorf("expected ready, got %s", sess.Status)
	}
}

func TestRevertGeneration_ReturnsToPending(t *testing.T) {
	sess := newSession(t)
	sess.BeginGeneration()

	if err := sess.RevertGeneration(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Status != session.StatusPending {
		t.Errorf("expected pending after revert, got %s", sess.Status)
	}

	// The session can be retried from pending.
	if err := sess.BeginGeneration(); err != nil {
		t.Errorf("expected retry to succeed, got %v", err)
	}
}

func TestStart_InitializesCountdown(t *testing.T) {
	sess := readySession(t)

	if err := sess.Start(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.Status != session.StatusInProgress {
		t.Errorf("expected in-progress, got %s", sess.Status)
	}
	if sess.TimeRemaining != 30*60 {
		t.Errorf("expected %d seconds remaining, got %d", 30*60, sess.TimeRemaining)
	}
	if sess.CurrentIndex != 0 {
		t.Errorf("expected first question active, got index %d", sess.CurrentIndex)
	}
	if sess.StartedAt == nil || !sess.StartedAt.Equal(now) {
		t.Errorf("expected startedAt %v, got %v", now, sess.StartedAt)
	}
}

func TestStart_RequiresReady(t *testing.T) {
	sess := newSession(t)

	err := sess.Start(now)

	var transitionErr *session.InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if transitionErr.Status != session.StatusPending {
		t.Errorf("expected error to carry status pending, got %s", transitionErr.Status)
	}
}

func TestEnsureInProgress_OnlyInProgress(t *testing.T) {
	sess := readySession(t)

	if err := sess.EnsureInProgress("recordAnswer"); err == nil {
		t.Error("expected recording to be rejected before start")
	}

	sess.Start(now)
	if err := sess.EnsureInProgress("recordAnswer"); err != nil {
		t.Errorf("expected recording to be allowed in progress, got %v", err)
	}

	sess.Finish(now, 50)
	if err := sess.EnsureInProgress("recordAnswer"); err == nil {
		t.Error("expected recording to be rejected after completion")
	}
}

func TestEnsureInProgress_NamesTheOperation(t *testing.T) {
	sess := readySession(t)

	var transitionErr *session.InvalidTransitionError
	if err := sess.EnsureInProgress("advance"); !errors.As(err, &transitionErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if transitionErr.Op != "advance" {
		t.Errorf("expected error to name advance, got %q", transitionErr.Op)
	}
	if transitionErr.Status != session.StatusReady {
		t.Errorf("expected error to carry status ready, got %s", transitionErr.Status)
	}
}

func TestFinish_SetsScoreAndTimestamp(t *testing.T) {
	sess := readySession(t)
	sess.Start(now)

	finished := now.Add(10 * time.Minute)
	if err := sess.Finish(finished, 75); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sess.Completed() {
		t.Error("expected session to report completed")
	}
	if sess.Score == nil || *sess.Score != 75 {
		t.Errorf("expected score 75, got %v", sess.Score)
	}
	if sess.CompletedAt == nil || !sess.CompletedAt.Equal(finished) {
		t.Errorf("expected completedAt %v, got %v", finished, sess.CompletedAt)
	}
}

func TestFinish_IsIdempotent(t *testing.T) {
	sess := readySession(t)
	sess.Start(now)
	sess.Finish(now.Add(time.Minute), 80)

	// A second finish must not change the recorded outcome.
	if err := sess.Finish(now.Add(2*time.Minute), 10); err != nil {
		t.Fatalf("expected finishing twice to be a no-op, got %v", err)
	}
	if *sess.Score != 80 {
		t.Errorf("expected score to remain 80, got %d", *sess.Score)
	}
	if !sess.CompletedAt.Equal(now.Add(time.Minute)) {
		t.Errorf("expected completedAt to be unchanged, got %v", sess.CompletedAt)
	}
}

func TestFinish_RequiresInProgress(t *testing.T) {
	sess := readySession(t)

	var transitionErr *session.InvalidTransitionError
	if err := sess.Finish(now, 50); !errors.As(err, &transitionErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestElapsed(t *testing.T) {
	sess := readySession(t)

	if sess.Elapsed(now) != 0 {
		t.Error("expected zero elapsed before start")
	}

	sess.Start(now)
	if got := sess.Elapsed(now.Add(5 * time.Minute)); got != 5*time.Minute {
		t.Errorf("expected 5m elapsed, got %v", got)
	}

	sess.Finish(now.Add(8*time.Minute), 50)
	// Frozen at completion regardless of the clock afterwards.
	if got := sess.Elapsed(now.Add(time.Hour)); got != 8*time.Minute {
		t.Errorf("expected 8m elapsed after completion, got %v", got)
	}
}

func TestAnsweredCount(t *testing.T) {
	questions := []session.Question{
		{ID: "q1", Answer: "closures capture their scope"},
		{ID: "q2", Answer: "   "},
		{ID: "q3", Answer: ""},
		{ID: "q4", Answer: "the event loop"},
	}

	if got := session.AnsweredCount(questions); got != 2 {
		t.Errorf("expected 2 answered, got %d", got)
	}
	if got := session.CompletionRate(questions); got != 50 {
		t.Errorf("expected 50%% completion, got %d", got)
	}
}

func TestCompletionRate_EmptySet(t *testing.T) {
	if got := session.CompletionRate(nil); got != 0 {
		t.Errorf("expected 0 for empty set, got %d", got)
	}
}

func TestCompletionRate_RoundsToNearest(t *testing.T) {
	questions := []session.Question{
		{ID: "q1", Answer: "hoisting moves declarations"},
		{ID: "q2", Answer: "prototypal inheritance"},
		{ID: "q3", Answer: ""},
	}

	// 2/3 is 66.67%, which rounds up rather than truncating.
	if got := session.CompletionRate(questions); got != 67 {
		t.Errorf("expected 67%% completion, got %d", got)
	}
}

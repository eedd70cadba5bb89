package session

import (
	"math"
	"time"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/id"
)

// Status is the lifecycle state of a practice session. Every transition
// is guarded; an operation attempted from the wrong status fails with
// InvalidTransitionError rather than silently succeeding.
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusReady      Status = "ready"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Difficulty is the closed set of session difficulty levels.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

const (
	MinQuestions = 5
	MaxQuestions = 50
	MinDuration  = 15 // minutes
	MaxDuration  = 180
)

// Session is the main domain entity for an interview practice session.
// Questions are owned by the session but persisted as a separate record;
// see the store package for the layout.
type Session struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty"`
	QuestionsCount int        `json:"questionsCount"`
	Duration       int        `json:"duration"` // countdown budget, minutes
	Status         Status     `json:"status"`
	CurrentIndex   int        `json:"currentIndex"`
	TimeRemaining  int        `json:"timeRemaining"` // seconds, meaningful while in-progress
	CreatedAt      time.Time  `json:"createdAt"`
	StartedAt      *time.Time `json:"startedAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	Score          *int       `json:"score,omitempty"`
}

// Question is a single prompt within a session. Answer is the only field
// mutable after generation, and only while the session is in progress.
type Question struct {
	ID             string     `json:"id"`
	Prompt         string     `json:"question"`
	Answer         string     `json:"answer"`
	TimeSpent      int        `json:"timeSpent"` // accumulated seconds
	Difficulty     Difficulty `json:"difficulty"`
	Category       string     `json:"category"`
	ExpectedPoints []string   `json:"expectedPoints,omitempty"`
}

// Answered reports whether the question has a non-empty trimmed answer.
func (q Question) Answered() bool {
	return trimmed(q.Answer) != ""
}

// New validates the creation parameters and returns a pending session.
func New(title, category, description string, difficulty Difficulty, questionsCount, duration int, now time.Time) (*Session, error) {
	if trimmed(title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if trimmed(category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if !difficulty.Valid() {
		return nil, &ValidationError{Field: "difficulty", Reason: "must be Beginner, Intermediate, Advanced or Expert"}
	}
	if questionsCount < MinQuestions || questionsCount > MaxQuestions {
		return nil, &ValidationError{Field: "questionsCount", Reason: "must be between 5 and 50"}
	}
	if duration < MinDuration || duration > MaxDuration {
		return nil, &ValidationError{Field: "duration", Reason: "must be between 15 and 180 minutes"}
	}

	return &Session{
		ID:             id.GenerateID(),
		Title:          title,
		Category:       category,
		Description:    description,
		Difficulty:     difficulty,
		QuestionsCount: questionsCount,
		Duration:       duration,
		Status:         StatusPending,
		CreatedAt:      now,
	}, nil
}

// BeginGeneration marks the session as generating. Valid only from pending.
func (s *Session) BeginGeneration() error {
	if s.Status != StatusPending {
		return &InvalidTransitionError{Op: "beginGeneration", Status: s.Status}
	}
	s.Status = StatusGenerating
	return nil
}

// CompleteGeneration marks the session ready once its question set has
// been persisted. Valid only from generating.
func (s *Session) CompleteGeneration() error {
	if s.Status != StatusGenerating {
		return &InvalidTransitionError{Op: "completeGeneration", Status: s.Status}
	}
	s.Status = StatusReady
	return nil
}

// RevertGeneration returns a failed generation to pending so the caller
// can retry without losing the session.
func (s *Session) RevertGeneration() error {
	if s.Status != StatusGenerating {
		return &InvalidTransitionError{Op: "revertGeneration", Status: s.Status}
	}
	s.Status = StatusPending
	return nil
}

// Start moves the session in progress, records the start timestamp and
// initializes the countdown budget. Valid only from ready.
func (s *Session) Start(now time.Time) error {
	if s.Status != StatusReady {
		return &InvalidTransitionError{Op: "start", Status: s.Status}
	}
	s.Status = StatusInProgress
	s.StartedAt = &now
	s.TimeRemaining = s.Duration * 60
	s.CurrentIndex = 0
	return nil
}

// EnsureInProgress guards operations that are only valid while the
// session is in progress, naming the attempted operation in the error.
func (s *Session) EnsureInProgress(op string) error {
	if s.Status != StatusInProgress {
		return &InvalidTransitionError{Op: op, Status: s.Status}
	}
	return nil
}

// Finish freezes the session at the given score. Finishing an already
// completed session is a no-op so a countdown expiry and a manual
// complete cannot double-finish.
func (s *Session) Finish(now time.Time, score int) error {
	if s.Status == StatusCompleted {
		return nil
	}
	if s.Status != StatusInProgress {
		return &InvalidTransitionError{Op: "finish", Status: s.Status}
	}
	s.Status = StatusCompleted
	s.CompletedAt = &now
	s.Score = &score
	return nil
}

// Completed reports whether the session has been finished and scored.
func (s *Session) Completed() bool {
	return s.Status == StatusCompleted
}

// Elapsed returns the time spent in progress so far, zero before start.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.StartedAt == nil {
		return 0
	}
	if s.CompletedAt != nil {
		return s.CompletedAt.Sub(*s.StartedAt)
	}
	return now.Sub(*s.StartedAt)
}

// AnsweredCount counts questions with a non-empty trimmed answer.
func AnsweredCount(questions []Question) int {
	n := 0
	for _, q := range questions {
		if q.Answered() {
			n++
		}
	}
	return n
}

// CompletionRate returns answered/total as a percentage rounded to the
// nearest integer, zero for an empty question set.
func CompletionRate(questions []Question) int {
	if len(questions) == 0 {
		return 0
	}
	return int(math.Round(float64(AnsweredCount(questions)) * 100 / float64(len(questions))))
}

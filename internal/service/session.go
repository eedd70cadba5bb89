// internal/service/session.go
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/clock"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/question"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/review"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/scoring"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/store"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/worker"
)

// GenerateFunc produces a question set for a category and difficulty.
type GenerateFunc func(category string, difficulty session.Difficulty, count int) []session.Question

// CreateParams carries the user-supplied fields for a new session.
type CreateParams struct {
	Title          string
	Category       string
	Description    string
	Difficulty     session.Difficulty
	QuestionsCount int
	Duration       int // minutes
}

// Options tunes the service. Zero values fall back to production
// defaults, which keeps test construction short.
type Options struct {
	Clock             clock.Clock
	Generate          GenerateFunc
	GenerationDelay   time.Duration // simulated generation latency
	GenerationWorkers int
	TickInterval      time.Duration
}

type generationOutput struct {
	questions []session.Question
	err       error
}

// SessionService owns the session lifecycle: creation, asynchronous
// question generation, the per-second countdown, answer recording and
// completion. It serializes mutations per session so the countdown
// goroutine and HTTP handlers never race on the same records.
type SessionService struct {
	store  store.Store
	logger *slog.Logger
	clock  clock.Clock

	generate        GenerateFunc
	generationDelay time.Duration
	tickInterval    time.Duration

	pool          *worker.Pool[generationOutput]
	collectorDone chan struct{}
	shutdown      chan struct{}

	mu      sync.Mutex
	locks   map[string]*sync.Mutex   // sessionID → mutation guard
	runners map[string]chan struct{} // sessionID → countdown stop signal
}

// NewSessionService creates a SessionService and starts its generation
// workers. Call Close on shutdown to drain them.
func NewSessionService(s store.Store, logger *slog.Logger, opts Options) *SessionService {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Generate == nil {
		opts.Generate = question.Generate
	}
	if opts.GenerationWorkers <= 0 {
		opts.GenerationWorkers = 2
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}

	svc := &SessionService{
		store:           s,
		logger:          logger,
		clock:           opts.Clock,
		generate:        opts.Generate,
		generationDelay: opts.GenerationDelay,
		tickInterval:    opts.TickInterval,
		pool:            worker.NewPool[generationOutput](opts.GenerationWorkers, opts.GenerationWorkers*4),
		collectorDone:   make(chan struct{}),
		shutdown:        make(chan struct{}),
		locks:           make(map[string]*sync.Mutex),
		runners:         make(map[string]chan struct{}),
	}

	go svc.collectGenerated()

	return svc
}

// Close stops every countdown runner and waits for in-flight
// generation jobs to be persisted. Jobs still waiting out their
// simulated latency are abandoned and their sessions reverted.
func (s *SessionService) Close() {
	close(s.shutdown)

	s.mu.Lock()
	for id, stop := range s.runners {
		close(stop)
		delete(s.runners, id)
	}
	s.mu.Unlock()

	s.pool.Close()
	<-s.collectorDone
}

// ── Lifecycle operations ────────────────────────────────────────────

// Create validates the parameters, persists a pending session and
// immediately queues question generation for it.
func (s *SessionService) Create(ctx context.Context, p CreateParams) (*session.Session, error) {
	sess, err := session.New(p.Title, p.Category, p.Description, p.Difficulty, p.QuestionsCount, p.Duration, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	if err := s.Generate(ctx, sess.ID); err != nil {
		s.logger.Error("failed to queue generation for new session", "session_id", sess.ID, "error", err)
	}

	return sess, nil
}

// Get returns a single session.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	return s.store.GetSession(ctx, sessionID)
}

// List returns all sessions, newest first.
func (s *SessionService) List(ctx context.Context) ([]*session.Session, error) {
	return s.store.ListSessions(ctx)
}

// Questions returns the generated question set for a session. Sessions
// whose generation has not finished report not found.
func (s *SessionService) Questions(ctx context.Context, sessionID string) ([]session.Question, error) {
	return s.store.GetQuestions(ctx, sessionID)
}

// Generate moves the session to generating and queues the question set
// build. The worker simulates provider latency, and the collector
// goroutine persists the outcome.
func (s *SessionService) Generate(ctx context.Context, sessionID string) error {
	unlock := s.lockSession(sessionID)
	defer unlock()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := sess.BeginGeneration(); err != nil {
		return err
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return err
	}

	category, difficulty, count := sess.Category, sess.Difficulty, sess.QuestionsCount
	s.pool.Submit(sessionID, func() generationOutput {
		if s.generationDelay > 0 {
			select {
			case <-time.After(s.generationDelay):
			case <-s.shutdown:
				return generationOutput{err: &GenerationError{SessionID: sessionID, Reason: "shutting down"}}
			}
		}
		questions := s.generate(category, difficulty, count)
		if len(questions) == 0 {
			return generationOutput{err: &GenerationError{SessionID: sessionID, Reason: "empty question set"}}
		}
		return generationOutput{questions: questions}
	})

	return nil
}

// Start begins a ready session: the clock starts, the first question
// becomes active and the countdown runner is spawned.
func (s *SessionService) Start(ctx context.Context, sessionID string) (*session.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Start(s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}

	s.startRunner(sessionID)

	return sess, nil
}

// RecordAnswer stores the answer text against a question of an
// in-progress session. Recording overwrites any previous answer;
// an empty string clears it.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID, questionID, answer string) error {
	unlock := s.lockSession(sessionID)
	defer unlock()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := sess.EnsureInProgress("recordAnswer"); err != nil {
		return err
	}

	questions, err := s.store.GetQuestions(ctx, sessionID)
	if err != nil {
		return err
	}

	found := false
	for i := range questions {
		if questions[i].ID == questionID {
			questions[i].Answer = answer
			found = true
			break
		}
	}
	if !found {
		return store.ErrNotFound
	}

	return s.store.SaveQuestions(ctx, sessionID, questions)
}

// Advance makes the next question active. Advancing past the last
// question completes the session.
func (s *SessionService) Advance(ctx context.Context, sessionID string) (*session.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.EnsureInProgress("advance"); err != nil {
		return nil, err
	}

	sess.CurrentIndex++
	if sess.CurrentIndex >= sess.QuestionsCount {
		if err := s.finishLocked(ctx, sess); err != nil {
			return nil, err
		}
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Finish completes the session, scoring it and snapshotting answers.
// Finishing an already-completed session is a no-op, so the countdown
// expiry and a manual complete request cannot double-finish.
func (s *SessionService) Finish(ctx context.Context, sessionID string) (*session.Session, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Completed() {
		return sess, nil
	}
	if err := s.finishLocked(ctx, sess); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Delete stops any countdown for the session and removes all of its
// records atomically.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	unlock := s.lockSession(sessionID)
	defer unlock()

	s.stopRunner(sessionID)

	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()

	return nil
}

// Review assembles the post-completion report. Sessions that never
// completed have no answer snapshot, so the lookup reports not found.
func (s *SessionService) Review(ctx context.Context, sessionID string) (*review.Report, error) {
	return review.Load(ctx, s.store, sessionID)
}

// ── Completion ──────────────────────────────────────────────────────

// finishLocked scores the session, marks it completed and snapshots
// answers. The transition guard runs before any store write so a
// rejected finish leaves no answer snapshot behind. The caller holds
// the session lock and saves the session.
func (s *SessionService) finishLocked(ctx context.Context, sess *session.Session) error {
	if err := sess.EnsureInProgress("finish"); err != nil {
		return err
	}

	questions, err := s.store.GetQuestions(ctx, sess.ID)
	if err != nil {
		return err
	}

	if err := sess.Finish(s.clock.Now(), scoring.Score(questions)); err != nil {
		return err
	}

	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		if q.Answered() {
			answers[q.ID] = q.Answer
		}
	}
	if err := s.store.SaveAnswers(ctx, sess.ID, answers); err != nil {
		return err
	}

	s.stopRunner(sess.ID)

	s.logger.Info("session completed",
		"session_id", sess.ID,
		"score", *sess.Score,
		"answered", session.AnsweredCount(questions),
		"total", len(questions),
	)
	return nil
}

// ── Countdown ───────────────────────────────────────────────────────

func (s *SessionService) startRunner(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.runners[sessionID]; running {
		return
	}
	stop := make(chan struct{})
	s.runners[sessionID] = stop
	go s.runCountdown(sessionID, stop)
}

func (s *SessionService) stopRunner(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.runners[sessionID]; ok {
		close(stop)
		delete(s.runners, sessionID)
	}
}

func (s *SessionService) runCountdown(sessionID string, stop chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if done := s.tick(sessionID); done {
				return
			}
		}
	}
}

// tick advances the session clock by one interval: the remaining time
// drops by a second, the active question accrues a second, and an
// expired clock finishes the session. It returns true when the runner
// should stop.
func (s *SessionService) tick(sessionID string) bool {
	unlock := s.lockSession(sessionID)
	defer unlock()

	ctx := context.Background()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return true
	}
	if sess.Completed() {
		return true
	}
	if err := sess.EnsureInProgress("tick"); err != nil {
		return true
	}

	sess.TimeRemaining--

	questions, err := s.store.GetQuestions(ctx, sessionID)
	if err == nil && sess.CurrentIndex < len(questions) {
		questions[sess.CurrentIndex].TimeSpent++
		if err := s.store.SaveQuestions(ctx, sessionID, questions); err != nil {
			s.logger.Error("failed to save question timings", "session_id", sessionID, "error", err)
		}
	}

	expired := sess.TimeRemaining <= 0
	if expired {
		if err := s.finishLocked(ctx, sess); err != nil {
			s.logger.Error("failed to finish expired session", "session_id", sessionID, "error", err)
		}
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		s.logger.Error("failed to save session tick", "session_id", sessionID, "error", err)
	}

	return expired
}

// ── Generation collector ────────────────────────────────────────────

// collectGenerated persists the outcome of finished generation jobs.
// It uses context.Background because generation outlives the HTTP
// request that queued it.
func (s *SessionService) collectGenerated() {
	defer close(s.collectorDone)

	for result := range s.pool.Results() {
		s.persistGenerated(result.JobID, result.Output)
	}
}

func (s *SessionService) persistGenerated(sessionID string, out generationOutput) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	ctx := context.Background()

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		s.logger.Error("generated questions for missing session", "session_id", sessionID, "error", err)
		return
	}

	if out.err != nil {
		s.logger.Error("question generation failed", "session_id", sessionID, "error", out.err)
		sess.RevertGeneration()
		if err := s.store.SaveSession(ctx, sess); err != nil {
			s.logger.Error("failed to revert session after generation failure", "session_id", sessionID, "error", err)
		}
		return
	}

	if err := s.store.SaveQuestions(ctx, sessionID, out.questions); err != nil {
		s.logger.Error("failed to save generated questions", "session_id", sessionID, "error", err)
		sess.RevertGeneration()
		if err := s.store.SaveSession(ctx, sess); err != nil {
			s.logger.Error("failed to revert session after save failure", "session_id", sessionID, "error", err)
		}
		return
	}

	sess.CompleteGeneration()
	if err := s.store.SaveSession(ctx, sess); err != nil {
		s.logger.Error("failed to mark session ready", "session_id", sessionID, "error", err)
	}
}

// ── Per-session locking ─────────────────────────────────────────────

// lockSession acquires the mutation guard for a session, creating it
// on first use, and returns the unlock func.
func (s *SessionService) lockSession(sessionID string) func() {
	s.mu.Lock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

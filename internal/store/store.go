package store

import (
	"context"
	"errors"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

// ErrNotFound is returned when a session, question set or answer map
// record does not exist. Unreadable records are reported the same way
// so callers never see a raw parse failure.
var ErrNotFound = errors.New("not found")

// Store is the persistence contract for sessions. Each method is a
// whole-record read or overwrite of one of the three records kept per
// session; there are no partial-field patches.
//
// Record layout, keyed by session id:
//
//	session:{id}            session metadata
//	session:{id}:questions  ordered question set
//	session:{id}:answers    questionId -> answer snapshot, written at completion
type Store interface {
	SaveSession(ctx context.Context, s *session.Session) error
	GetSession(ctx context.Context, id string) (*session.Session, error)
	ListSessions(ctx context.Context) ([]*session.Session, error)

	SaveQuestions(ctx context.Context, sessionID string, questions []session.Question) error
	GetQuestions(ctx context.Context, sessionID string) ([]session.Question, error)

	SaveAnswers(ctx context.Context, sessionID string, answers map[string]string) error
	GetAnswers(ctx context.Context, sessionID string) (map[string]string, error)

	// DeleteSession removes the session and everything it owns
	// atomically. Valid regardless of session status.
	DeleteSession(ctx context.Context, sessionID string) error

	Close() error
}

func sessionKey(id string) string { return "session:" + id }

func questionsKey(id string) string { return "session:" + id + ":questions" }

func answersKey(id string) string { return "session:" + id + ":answers" }

package store_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/store"
)

func newTestStore(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := store.NewSQLite(dbPath, logger)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s, dbPath
}

func testSession(t *testing.T, title string) *session.Session {
	t.Helper()
	sess, err := session.New(title, "React.js", "", session.DifficultyIntermediate, 10, 30, time.Now().UTC())
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}
	return sess
}

func TestSessionRoundtrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess := testSession(t, "Frontend Prep")
	sess.Status = session.StatusReady

	if err := s.SaveSession(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != sess.ID || got.Title != sess.Title || got.Status != session.StatusReady {
		t.Errorf("roundtrip mismatch: got %+v", got)
	}
}

func TestSaveSession_OverwritesWholeRecord(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess := testSession(t, "Frontend Prep")
	s.SaveSession(ctx, sess)

	sess.Status = session.StatusInProgress
	sess.TimeRemaining = 1800
	if err := s.SaveSession(ctx, sess); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != session.StatusInProgress || got.TimeRemaining != 1800 {
		t.Errorf("expected overwritten record, got %+v", got)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetSession(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListSessions_NewestFirstAndExcludesSubRecords(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	older := testSession(t, "Older")
	older.CreatedAt = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	newer := testSession(t, "Newer")
	newer.CreatedAt = time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

	s.SaveSession(ctx, older)
	s.SaveSession(ctx, newer)

	// Question and answer records share the key prefix and must not be
	// returned as sessions.
	s.SaveQuestions(ctx, older.ID, []session.Question{{ID: "q1", Prompt: "What is JSX?"}})
	s.SaveAnswers(ctx, older.ID, map[string]string{"q1": "syntax extension"})

	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Title != "Newer" || sessions[1].Title != "Older" {
		t.Errorf("expected newest first, got %q then %q", sessions[0].Title, sessions[1].Title)
	}
}

func TestQuestionsRoundtrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	questions := []session.Question{
		{ID: "q1", Prompt: "What is a closure?", Difficulty: session.DifficultyBeginner, Category: "JavaScript"},
		{ID: "q2", Prompt: "Explain the event loop.", TimeSpent: 42, Answer: "it schedules callbacks"},
	}

	if err := s.SaveQuestions(ctx, "sess-1", questions); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetQuestions(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "q1" || got[1].TimeSpent != 42 {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}

func TestAnswersRoundtrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	answers := map[string]string{"q1": "closures capture scope", "q3": "prototypes"}

	if err := s.SaveAnswers(ctx, "sess-1", answers); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetAnswers(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 2 || got["q1"] != "closures capture scope" {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}

func TestDeleteSession_RemovesAllRecords(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess := testSession(t, "Doomed")
	s.SaveSession(ctx, sess)
	s.SaveQuestions(ctx, sess.ID, []session.Question{{ID: "q1"}})
	s.SaveAnswers(ctx, sess.ID, map[string]string{"q1": "gone"})

	if err := s.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := s.GetSession(ctx, sess.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected session gone, got %v", err)
	}
	if _, err := s.GetQuestions(ctx, sess.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected questions gone, got %v", err)
	}
	if _, err := s.GetAnswers(ctx, sess.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected answers gone, got %v", err)
	}
}

func TestDeleteSession_MissingSession(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.DeleteSession(context.Background(), "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_CorruptRecordReportsNotFound(t *testing.T) {
	s, dbPath := newTestStore(t)
	ctx := context.Background()

	raw, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open raw db: %v", err)
	}
	defer raw.Close()

	if _, err := raw.Exec(`INSERT INTO records (key, value) VALUES ('session:bad', 'not json')`); err != nil {
		t.Fatalf("failed to inject record: %v", err)
	}

	if _, err := s.GetSession(ctx, "bad"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected corrupt record to read as missing, got %v", err)
	}
}

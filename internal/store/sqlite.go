package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore persists session records as JSON values in a key-value
// table, mirroring the record layout served by the eventual remote
// backend so the two stores stay interchangeable.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data),
	)
	return err
}

// get reads and decodes one record. A record that exists but does not
// parse is logged and reported as absent rather than surfacing a raw
// decode error to the caller.
func (s *SQLiteStore) get(ctx context.Context, key string, v any) error {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Error("unreadable store record", "key", key, "error", err)
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Sessions
// ============================================================================

func (s *SQLiteStore) SaveSession(ctx context.Context, sess *session.Session) error {
	return s.put(ctx, sessionKey(sess.ID), sess)
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	var sess session.Session
	if err := s.get(ctx, sessionKey(id), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context) ([]*session.Session, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM records WHERE key LIKE 'session:%'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*session.Session
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, err
		}
		// Skip the owned question/answer records.
		if strings.Count(key, ":") != 1 {
			continue
		}
		var sess session.Session
		if err := json.Unmarshal([]byte(raw), &sess); err != nil {
			s.logger.Error("unreadable store record", "key", key, "error", err)
			continue
		}
		sessions = append(sessions, &sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest first, the order the dashboard presents them.
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// ============================================================================
// Questions and answers
// ============================================================================

func (s *SQLiteStore) SaveQuestions(ctx context.Context, sessionID string, questions []session.Question) error {
	return s.put(ctx, questionsKey(sessionID), questions)
}

func (s *SQLiteStore) GetQuestions(ctx context.Context, sessionID string) ([]session.Question, error) {
	var questions []session.Question
	if err := s.get(ctx, questionsKey(sessionID), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *SQLiteStore) SaveAnswers(ctx context.Context, sessionID string, answers map[string]string) error {
	return s.put(ctx, answersKey(sessionID), answers)
}

func (s *SQLiteStore) GetAnswers(ctx context.Context, sessionID string) (map[string]string, error) {
	var answers map[string]string
	if err := s.get(ctx, answersKey(sessionID), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// ============================================================================
// Deletion
// ============================================================================

func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM records WHERE key = ?", sessionKey(sessionID))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE key IN (?, ?)",
		questionsKey(sessionID), answersKey(sessionID)); err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

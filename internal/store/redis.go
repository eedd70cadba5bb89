package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

// RedisStore persists the same records as SQLiteStore against a shared
// Redis backend, standing in for the remote session API. Both stores
// satisfy the Store interface so the service never knows which one it
// is talking to.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Store = (*RedisStore)(nil)

func NewRedis(addr, password string, db int, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) get(ctx context.Context, key string, v any) error {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
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

func (s *RedisStore) SaveSession(ctx context.Context, sess *session.Session) error {
	return s.put(ctx, sessionKey(sess.ID), sess)
}

func (s *RedisStore) GetSession(ctx context.Context, id string) (*session.Session, error) {
	var sess session.Session
	if err := s.get(ctx, sessionKey(id), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) ListSessions(ctx context.Context) ([]*session.Session, error) {
	var sessions []*session.Session

	iter := s.client.Scan(ctx, 0, "session:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.Count(key, ":") != 1 {
			continue
		}
		var sess session.Session
		if err := s.get(ctx, key, &sess); err != nil {
			if err == ErrNotFound {
				continue
			}
			return nil, err
		}
		sessions = append(sessions, &sess)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// ============================================================================
// Questions and answers
// ============================================================================

func (s *RedisStore) SaveQuestions(ctx context.Context, sessionID string, questions []session.Question) error {
	return s.put(ctx, questionsKey(sessionID), questions)
}

func (s *RedisStore) GetQuestions(ctx context.Context, sessionID string) ([]session.Question, error) {
	var questions []session.Question
	if err := s.get(ctx, questionsKey(sessionID), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *RedisStore) SaveAnswers(ctx context.Context, sessionID string, answers map[string]string) error {
	return s.put(ctx, answersKey(sessionID), answers)
}

func (s *RedisStore) GetAnswers(ctx context.Context, sessionID string) (map[string]string, error) {
	var answers map[string]string
	if err := s.get(ctx, answersKey(sessionID), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// ============================================================================
// Deletion
// ============================================================================

func (s *RedisStore) DeleteSession(ctx context.Context, sessionID string) error {
	exists, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	return s.client.Del(ctx,
		sessionKey(sessionID),
		questionsKey(sessionID),
		answersKey(sessionID),
	).Err()
}

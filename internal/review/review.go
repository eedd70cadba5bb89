// Package review joins a completed session's questions, answers and
// per-question feedback into a displayable report.
package review

import (
	"context"
	"math"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/scoring"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/store"
)

// Entry pairs one question with the answer snapshot and its feedback.
type Entry struct {
	QuestionID string           `json:"questionId"`
	Prompt     string           `json:"question"`
	Answer     string           `json:"answer"`
	Answered   bool             `json:"answered"`
	Difficulty string           `json:"difficulty"`
	Feedback   scoring.Feedback `json:"feedback"`
}

// Report is the full review of a completed session.
type Report struct {
	SessionID      string  `json:"sessionId"`
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Score          int     `json:"score"`
	AnsweredCount  int     `json:"answeredCount"`
	TotalQuestions int     `json:"totalQuestions"`
	CompletionRate int     `json:"completionRate"`
	TotalTime      int     `json:"totalTime"`          // seconds
	AverageTime    int     `json:"avgTimePerQuestion"` // seconds
	Entries        []Entry `json:"entries"`
}

// Load reads the session, its question set and its answer snapshot from
// the store and assembles the report. A missing question set or answer
// map surfaces as store.ErrNotFound, which covers review navigation to
// a session that never completed or whose data was cleared.
func Load(ctx context.Context, st store.Store, sessionID string) (*Report, error) {
	sess, err := st.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questions, err := st.GetQuestions(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answers, err := st.GetAnswers(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Assemble(sess, questions, answers), nil
}

// Assemble builds the report from already-loaded records. The answer
// map is the snapshot written at completion and is authoritative for
// the report; question order is preserved. Questions without expected
// key points simply never earn the key-concept feedback bonus.
func Assemble(sess *session.Session, questions []session.Question, answers map[string]string) *Report {
	entries := make([]Entry, len(questions))
	answeredCount := 0

	for i, q := range questions {
		q.Answer = answers[q.ID]
		if q.Answered() {
			answeredCount++
		}
		entries[i] = Entry{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Answer:     q.Answer,
			Answered:   q.Answered(),
			Difficulty: string(q.Difficulty),
			Feedback:   scoring.Evaluate(q),
		}
	}

	completionRate := 0
	if len(questions) > 0 {
		completionRate = int(math.Round(float64(answeredCount) * 100 / float64(len(questions))))
	}

	score := 0
	if sess.Score != nil {
		score = *sess.Score
	}

	return &Report{
		SessionID:      sess.ID,
		Title:          sess.Title,
		Category:       sess.Category,
		Score:          score,
		AnsweredCount:  answeredCount,
		TotalQuestions: len(questions),
		CompletionRate: completionRate,
		TotalTime:      scoring.TotalTime(questions),
		AverageTime:    scoring.AverageTime(questions),
		Entries:        entries,
	}
}

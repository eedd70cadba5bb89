// Package scoring computes session scores and per-question review
// feedback from answer text and timing data. Everything here is a
// deterministic heuristic; no answer understanding is attempted.
package scoring

import (
	"math"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

// Speed bonuses awarded on top of the completion rate when the average
// time-to-answer across the whole session stays low.
const (
	quickBonus     = 10 // average under 60s
	veryQuickBonus = 5  // average under 30s, on top of quickBonus
)

// Score computes the session score in [0,100].
//
// The base is the completion rate (answered questions / total * 100).
// Speed bonuses use the average recorded time per question, counted
// over all questions so skipped ones drag the average the same way
// they did the practice run. A session with no answered questions
// scores 0 regardless of timing.
func Score(questions []session.Question) int {
	total := len(questions)
	if total == 0 {
		return 0
	}

	answered := session.AnsweredCount(questions)
	if answered == 0 {
		return 0
	}

	score := float64(answered) / float64(total) * 100

	totalTime := 0
	for _, q := range questions {
		totalTime += q.TimeSpent
	}
	avg := float64(totalTime) / float64(total)
	if avg < 60 {
		score += quickBonus
	}
	if avg < 30 {
		score += veryQuickBonus
	}

	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

// TotalTime sums the recorded seconds across all questions.
func TotalTime(questions []session.Question) int {
	total := 0
	for _, q := range questions {
		total += q.TimeSpent
	}
	return total
}

// AverageTime returns the average recorded seconds per question,
// rounded, zero for an empty set.
func AverageTime(questions []session.Question) int {
	if len(questions) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalTime(questions)) / float64(len(questions))))
}

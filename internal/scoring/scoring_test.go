package scoring_test

import (
	"testing"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/scoring"
)

// questionSet builds n questions, answering the first answered of them
// and giving every question the same recorded time.
func questionSet(n, answered, secondsEach int) []session.Question {
	questions := make([]session.Question, n)
	for i := range questions {
		questions[i] = session.Question{ID: "q" + string(rune('1'+i)), TimeSpent: secondsEach}
		if i < answered {
			questions[i].Answer = "an answer"
		}
	}
	return questions
}

func TestScore_EmptySet(t *testing.T) {
	if got := scoring.Score(nil); got != 0 {
		t.Errorf("expected 0 for empty set, got %d", got)
	}
}

func TestScore_NothingAnswered(t *testing.T) {
	// Timing bonuses must not apply when no question was answered.
	if got := scoring.Score(questionSet(5, 0, 10)); got != 0 {
		t.Errorf("expected 0 when nothing answered, got %d", got)
	}
}

func TestScore_CompletionRateWithBothBonuses(t *testing.T) {
	// 3 of 5 answered = 60, untimed questions earn both speed bonuses.
	if got := scoring.Score(questionSet(5, 3, 0)); got != 75 {
		t.Errorf("expected 75, got %d", got)
	}
}

func TestScore_QuickBonusOnly(t *testing.T) {
	// Average 45s: under 60 but not under 30.
	if got := scoring.Score(questionSet(5, 3, 45)); got != 70 {
		t.Errorf("expected 70, got %d", got)
	}
}

func TestScore_NoBonusWhenSlow(t *testing.T) {
	if got := scoring.Score(questionSet(5, 3, 90)); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}
}

func TestScore_CappedAt100(t *testing.T) {
	// Everything answered quickly would exceed 100 without the cap.
	if got := scoring.Score(questionSet(5, 5, 10)); got != 100 {
		t.Errorf("expected cap at 100, got %d", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	questions := questionSet(8, 5, 40)
	first := scoring.Score(questions)
	for i := 0; i < 10; i++ {
		if got := scoring.Score(questions); got != first {
			t.Fatalf("expected stable score %d, got %d", first, got)
		}
	}
}

func TestScore_SkippedQuestionsDragAverage(t *testing.T) {
	// One answered in 20s, four skipped with no time: average 4s, both
	// bonuses apply on top of the 20% completion rate.
	questions := questionSet(5, 1, 0)
	questions[0].TimeSpent = 20

	if got := scoring.Score(questions); got != 35 {
		t.Errorf("expected 35, got %d", got)
	}
}

func TestTotalAndAverageTime(t *testing.T) {
	questions := questionSet(4, 2, 30)

	if got := scoring.TotalTime(questions); got != 120 {
		t.Errorf("expected total 120, got %d", got)
	}
	if got := scoring.AverageTime(questions); got != 30 {
		t.Errorf("expected average 30, got %d", got)
	}
	if got := scoring.AverageTime(nil); got != 0 {
		t.Errorf("expected 0 average for empty set, got %d", got)
	}
}

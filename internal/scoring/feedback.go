package scoring

import (
	"hash/fnv"
	"strings"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

// Feedback is the per-question review verdict. Its Score is independent
// of the session score and is used only in the review report.
type Feedback struct {
	Score        int      `json:"score"`
	Message      string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

const noAnswerMessage = "No answer provided. Consider reviewing this topic and practicing similar questions."

var noAnswerImprovements = []string{
	"Provide a complete answer",
	"Include relevant examples",
	"Explain key concepts",
}

// feedbackMessages are the templates an answered question's message is
// drawn from. Selection is by hash of the answer text so the same
// answer always reads back the same.
var feedbackMessages = []string{
	"Your answer demonstrates good understanding of the concepts.",
	"Consider expanding on certain points for a more complete response.",
	"Good technical knowledge shown in your response.",
	"Try to structure your answer more clearly with key points.",
}

// Evaluate produces review feedback for one question. The score and the
// itemized strengths/improvements are fully determined by the answer
// text and the question's expected key points; a question without
// expected points simply never earns the key-concept bonus.
func Evaluate(q session.Question) Feedback {
	if !q.Answered() {
		return Feedback{
			Score:        0,
			Message:      noAnswerMessage,
			Strengths:    []string{},
			Improvements: noAnswerImprovements,
		}
	}

	answer := q.Answer
	lower := strings.ToLower(answer)
	hasExamples := strings.Contains(lower, "example") || strings.Contains(lower, "for instance")

	hasKeyPoints := false
	for _, point := range q.ExpectedPoints {
		if strings.Contains(lower, strings.ToLower(point)) {
			hasKeyPoints = true
			break
		}
	}

	score := 0
	strengths := []string{}
	improvements := []string{}

	if len(answer) > 50 {
		score += 30
		strengths = append(strengths, "Provided detailed explanation")
	} else {
		improvements = append(improvements, "Provide more detailed explanations")
	}

	if hasExamples {
		score += 25
		strengths = append(strengths, "Included practical examples")
	} else {
		improvements = append(improvements, "Include practical examples to illustrate concepts")
	}

	if hasKeyPoints {
		score += 35
		strengths = append(strengths, "Covered key technical concepts")
	} else {
		improvements = append(improvements, "Address more core concepts related to the question")
	}

	if len(answer) > 200 {
		score += 10
		strengths = append(strengths, "Comprehensive answer")
	}

	if score > 100 {
		score = 100
	}

	return Feedback{
		Score:        score,
		Message:      pickMessage(answer),
		Strengths:    strengths,
		Improvements: improvements,
	}
}

func pickMessage(answer string) string {
	h := fnv.New32a()
	h.Write([]byte(answer))
	return feedbackMessages[h.Sum32()%uint32(len(feedbackMessages))]
}

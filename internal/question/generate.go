package question

import (
	"fmt"

	"github.com/gugulethu-mngomezulu/Interview-Prep-AI/internal/domain/session"
)

const (
	fallbackCategory   = "JavaScript"
	fallbackDifficulty = session.DifficultyIntermediate
)

// Categories is the closed set of categories offered at session creation.
// Only a subset has a dedicated prompt pool; the rest fall back to the
// default pool at generation time.
var Categories = []string{
	"React.js", "Vue.js", "Angular", "JavaScript", "TypeScript",
	"Node.js", "Python", "Java", "PHP", "Go",
	"Full Stack", "Frontend", "Backend", "DevOps",
	"System Design", "Database", "Git", "Testing",
}

// Generate produces exactly count questions for the given category and
// difficulty. It is a pure function of its inputs: the pool for the
// (category, difficulty) pair is cycled in order, and prompts repeated
// beyond the pool size get a " (Variation N)" suffix so every question
// has a distinct display label. Unknown categories fall back to the
// default category's pool, unknown difficulties to Intermediate.
func Generate(category string, difficulty session.Difficulty, count int) []session.Question {
	byDifficulty, ok := pools[category]
	if !ok {
		byDifficulty = pools[fallbackCategory]
	}
	pool, ok := byDifficulty[difficulty]
	if !ok {
		pool = byDifficulty[fallbackDifficulty]
	}

	points := keyPoints[category]

	questions := make([]session.Question, count)
	for i := 0; i < count; i++ {
		prompt := pool[i%len(pool)]
		if i >= len(pool) {
			prompt = fmt.Sprintf("%s (Variation %d)", prompt, i/len(pool)+1)
		}
		questions[i] = session.Question{
			ID:             fmt.Sprintf("q%d", i+1),
			Prompt:         prompt,
			Answer:         "",
			TimeSpent:      0,
			Difficulty:     difficulty,
			Category:       category,
			ExpectedPoints: points,
		}
	}
	return questions
}

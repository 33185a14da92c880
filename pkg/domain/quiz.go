package domain

import (
	"strconv"
	"strings"
)

// QuizKeySuffix is appended to the joined subject path to derive the
// lookup key for a subject's question list.
const QuizKeySuffix = "#quiz"

// QuizKey derives the quiz-definitions key for a subject path.
func QuizKey(path []string) string {
	return strings.Join(path, "/") + QuizKeySuffix
}

// Question is a single quiz item. Options are optional; without them the
// answer is matched against free text.
type Question struct {
	Prompt  string   `json:"prompt" mapstructure:"prompt"`
	Options []string `json:"options,omitempty" mapstructure:"options"`
	Answer  string   `json:"answer" mapstructure:"answer"`
}

// Grade reports whether the given input answers the question. Input is
// matched literally first: against the expected answer, then against the
// option texts (selecting an option grades by that option's text). Only
// input that matches nothing literally is interpreted as a 1-based
// option index. Literal-first matching keeps numeric option labels
// unambiguous. All comparisons are case-insensitive on trimmed input.
func (q Question) Grade(input string) bool {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, q.Answer) {
		return true
	}
	for _, opt := range q.Options {
		if strings.EqualFold(opt, input) {
			return strings.EqualFold(opt, q.Answer)
		}
	}
	if len(q.Options) > 0 {
		if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(q.Options) {
			return strings.EqualFold(q.Options[idx-1], q.Answer)
		}
	}
	return false
}

// QuizProgress tracks an in-flight quiz inside a session.
type QuizProgress struct {
	// Index is the zero-based position of the question being asked.
	Index int `json:"index"`

	// Score counts correct answers so far.
	Score int `json:"score"`

	// Questions is the session's private copy of the question list.
	Questions []Question `json:"questions"`
}

// NewQuizProgress starts progress over a deep copy of the questions.
func NewQuizProgress(questions []Question) *QuizProgress {
	copied := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		copied[i] = q
	}
	return &QuizProgress{Questions: copied}
}

// Current returns the question being asked.
func (p *QuizProgress) Current() Question {
	return p.Questions[p.Index]
}

// Done reports whether every question has been answered.
func (p *QuizProgress) Done() bool {
	return p.Index >= len(p.Questions)
}

// Total returns the number of questions.
func (p *QuizProgress) Total() int {
	return len(p.Questions)
}

// Clone returns a deep copy.
func (p *QuizProgress) Clone() *QuizProgress {
	if p == nil {
		return nil
	}
	next := NewQuizProgress(p.Questions)
	next.Index = p.Index
	next.Score = p.Score
	return next
}

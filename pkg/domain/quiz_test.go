package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gipersonic/miet/pkg/domain"
)

func TestQuestion_Grade(t *testing.T) {
	withOptions := domain.Question{
		Prompt:  "2+2?",
		Options: []string{"3", "4"},
		Answer:  "4",
	}

	assert.True(t, withOptions.Grade("2"), "1-based option index selects the answer")
	assert.True(t, withOptions.Grade("4"), "option text matches directly")
	assert.True(t, withOptions.Grade("  4  "), "input is trimmed")
	assert.False(t, withOptions.Grade("1"), "index of a wrong option")
	assert.False(t, withOptions.Grade("9"), "out-of-range index is not an answer")
	assert.False(t, withOptions.Grade("five"))

	// Numeric option labels stay literal: input matching an option's text
	// grades by that text and is never reinterpreted as an index.
	numericLabels := domain.Question{
		Prompt:  "Solve for x: 2x + 4 = 10",
		Options: []string{"2", "3", "4"},
		Answer:  "3",
	}
	assert.True(t, numericLabels.Grade("3"), "tapping the correct option")
	assert.False(t, numericLabels.Grade("2"), "a wrong option is not an index")
	assert.False(t, numericLabels.Grade("4"), "a wrong option is not an index")
	assert.False(t, numericLabels.Grade("1"), "index of a wrong option")

	freeText := domain.Question{Prompt: "x+x?", Answer: "2x"}
	assert.True(t, freeText.Grade("2X"), "free text matches case-insensitively")
	assert.False(t, freeText.Grade("x2"))
}

func TestQuizKey(t *testing.T) {
	assert.Equal(t, "Math/Algebra#quiz", domain.QuizKey([]string{"Math", "Algebra"}))
	assert.Equal(t, "Physics#quiz", domain.QuizKey([]string{"Physics"}))
}

func TestSession_OverlayExclusivity(t *testing.T) {
	s := domain.NewSession("u1")

	s.BeginQuiz([]domain.Question{{Prompt: "2+2?", Answer: "4"}})
	require.Equal(t, domain.OverlayQuiz, s.Overlay)
	require.NotNil(t, s.Quiz)

	// Entering another overlay drops the quiz state with the quiz overlay.
	s.BeginContact()
	assert.Equal(t, domain.OverlayContact, s.Overlay)
	assert.Nil(t, s.Quiz)

	s.ResetToRoot()
	assert.Equal(t, domain.OverlayNone, s.Overlay)
	assert.Empty(t, s.Path)
}

func TestSession_BeginQuizCopiesQuestions(t *testing.T) {
	questions := []domain.Question{{Prompt: "2+2?", Options: []string{"3", "4"}, Answer: "4"}}

	s := domain.NewSession("u1")
	s.BeginQuiz(questions)

	// Mutating the source list must not alter the in-flight quiz.
	questions[0].Answer = "3"
	questions[0].Options[0] = "9"
	assert.Equal(t, "4", s.Quiz.Questions[0].Answer)
	assert.Equal(t, "3", s.Quiz.Questions[0].Options[0])
}

func TestSession_PopClampsAtRoot(t *testing.T) {
	s := domain.NewSession("u1")
	s.Push("Math")
	s.Pop()
	s.Pop()
	assert.Empty(t, s.Path)
}

func TestNode_ChildReturnsCanonicalLabel(t *testing.T) {
	root := domain.Interior(
		domain.Child{Label: "Math", Node: domain.Leaf("numbers")},
	)

	child, ok := root.Child("mAtH")
	require.True(t, ok)
	assert.Equal(t, "Math", child.Label)

	_, ok = root.Child("History")
	assert.False(t, ok)
}

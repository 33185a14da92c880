package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gipersonic/miet/pkg/domain"
)

func TestQuiz_RequiresSubject(t *testing.T) {
	f := newFixture(t)

	render := f.handle(t, "u1", "start quiz")
	assert.Equal(t, "Choose a subject first.", render.Text)
	assert.Equal(t, []string{"Math", "Physics", "History", domain.KeywordMenu}, render.Choices)
}

func TestQuiz_UnavailableForSubject(t *testing.T) {
	f := newFixture(t)

	f.handle(t, "u1", "Physics")
	render := f.handle(t, "u1", "start quiz")
	assert.Equal(t, "No quiz available for Physics.", render.Text)
	assert.Contains(t, render.Choices, domain.KeywordFeedback)

	// Navigation still works afterwards.
	render = f.handle(t, "u1", "anything")
	assert.Equal(t, "Mechanics.", render.Text)
}

// Answering one question right and one wrong yields the tally.
func TestQuiz_FullRunWithMixedAnswers(t *testing.T) {
	f := newFixture(t)

	f.handle(t, "u1", "Math")
	f.handle(t, "u1", "Algebra")

	render := f.handle(t, "u1", "start quiz")
	assert.Equal(t, "Question 1 of 2: 2+2?\n1. 3\n2. 4", render.Text)
	assert.Equal(t, []string{"3", "4"}, render.Choices)

	// Answer by 1-based index.
	render = f.handle(t, "u1", "2")
	assert.Equal(t, "Correct!\n\nQuestion 2 of 2: x+x?", render.Text)
	assert.Nil(t, render.Choices, "free-text question offers no choices")

	render = f.handle(t, "u1", "x squared")
	assert.Equal(t, "Wrong. The answer was \"2x\".\n\nQuiz finished: 1 out of 2.", render.Text)
	assert.Contains(t, render.Choices, domain.KeywordQuiz)

	// The overlay is gone: text navigates the catalog again.
	render = f.handle(t, "u1", "back")
	assert.Equal(t, "Math:", render.Text)
}

func TestQuiz_AnswersMatchCaseInsensitively(t *testing.T) {
	f := newFixture(t)

	f.handle(t, "u1", "Math")
	f.handle(t, "u1", "Algebra")
	f.handle(t, "u1", "start quiz")

	// Answering with the option's literal text also works.
	render := f.handle(t, "u1", "4")
	assert.Contains(t, render.Text, "Correct!")

	render = f.handle(t, "u1", "2X")
	assert.Contains(t, render.Text, "Quiz finished: 2 out of 2.")
}

func TestQuiz_ResetDiscardsProgress(t *testing.T) {
	f := newFixture(t)

	f.handle(t, "u1", "Math")
	f.handle(t, "u1", "Algebra")
	f.handle(t, "u1", "start quiz")
	f.handle(t, "u1", "2")

	render := f.handle(t, "u1", "restart")
	assert.Equal(t, "Hi! Choose a subject:", render.Text)

	// A new quiz starts from the first question.
	f.handle(t, "u1", "Math")
	f.handle(t, "u1", "Algebra")
	render = f.handle(t, "u1", "start quiz")
	assert.Contains(t, render.Text, "Question 1 of 2")
}

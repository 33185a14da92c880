package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gipersonic/miet/pkg/domain"
	"github.com/gipersonic/miet/pkg/observability"
)

// startQuiz looks up the question list for the session's subject and
// activates the quiz overlay over a private copy of it.
func (r *Router) startQuiz(ctx context.Context, s *domain.Session) (domain.Render, error) {
	if len(s.Path) == 0 {
		r.metrics.Event(observability.OutcomeInvalid)
		root, err := r.renderRoot(ctx)
		if err != nil {
			return domain.Render{}, err
		}
		root.Text = "Choose a subject first."
		return root, nil
	}

	questions, err := r.questions(ctx, domain.QuizKey(s.Path))
	if err != nil {
		if !errors.Is(err, domain.ErrQuizUnavailable) {
			// A broken quiz source degrades to "no quiz", it never
			// breaks navigation.
			r.logger.Warn("quiz source failed", "path", s.Path, "err", err)
		}
		r.metrics.Event(observability.OutcomeQuiz)
		return domain.Render{
			Text:    fmt.Sprintf("No quiz available for %s.", strings.Join(s.Path, " / ")),
			Choices: menuChoices(),
		}, nil
	}

	s.BeginQuiz(questions)
	r.metrics.Event(observability.OutcomeQuiz)
	return renderQuestion(s.Quiz, ""), nil
}

func (r *Router) questions(ctx context.Context, key string) ([]domain.Question, error) {
	if r.quizzes == nil {
		return nil, domain.ErrQuizUnavailable
	}
	questions, err := r.quizzes.Questions(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.ErrQuizUnavailable
	}
	return questions, nil
}

// handleQuizAnswer grades one answer and advances the quiz. After the
// last question the tally is reported and the quiz state cleared; a
// restarted quiz begins from scratch.
func (r *Router) handleQuizAnswer(s *domain.Session, text string) (domain.Render, error) {
	progress := s.Quiz
	question := progress.Current()

	correct := question.Grade(text)
	if correct {
		progress.Score++
	}
	progress.Index++

	verdict := "Correct!"
	if !correct {
		verdict = fmt.Sprintf("Wrong. The answer was %q.", question.Answer)
	}

	if progress.Done() {
		score, total := progress.Score, progress.Total()
		s.ClearOverlay()
		return domain.Render{
			Text:    fmt.Sprintf("%s\n\nQuiz finished: %d out of %d.", verdict, score, total),
			Choices: menuChoices(),
		}, nil
	}
	return renderQuestion(progress, verdict), nil
}

// renderQuestion formats the current question with 1-based option
// numbering. Options double as the choice set; free-text questions
// render with no choices.
func renderQuestion(progress *domain.QuizProgress, prefix string) domain.Render {
	question := progress.Current()

	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Question %d of %d: %s", progress.Index+1, progress.Total(), question.Prompt)
	for i, opt := range question.Options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, opt)
	}

	var choices []string
	if len(question.Options) > 0 {
		choices = append(choices, question.Options...)
	}
	return domain.Render{Text: b.String(), Choices: choices}
}

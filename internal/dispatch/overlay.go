package dispatch

import (
	"context"
	"fmt"

	"github.com/gipersonic/miet/pkg/domain"
	"github.com/gipersonic/miet/pkg/observability"
)

// handleFeedback packages one feedback message for the operator channel.
// The back keyword cancels the capture without sending anything.
// At-most-once: the overlay returns to none whether or not delivery
// succeeded, and nothing is queued or retried.
func (r *Router) handleFeedback(ctx context.Context, s *domain.Session, text string) (domain.Render, error) {
	if domain.IsKeyword(text, domain.KeywordBack) {
		s.ClearOverlay()
		return r.renderCurrent(ctx, s)
	}
	msg := fmt.Sprintf("Feedback from %s:\n\n%s", s.UserID, text)

	err := r.notify(ctx, msg, "")
	r.metrics.Delivery(observability.ChannelOperator, err)
	s.ClearOverlay()

	if err != nil {
		r.logger.Warn("feedback delivery failed", "user_id", s.UserID, "err", err)
		return domain.Render{
			Text:    "Sorry, your feedback could not be delivered.",
			Choices: menuChoices(),
		}, nil
	}
	return domain.Render{
		Text:    "Thank you! Your feedback has been sent.",
		Choices: menuChoices(),
	}, nil
}

// handleContact forwards one message to the operator with a reply
// affordance attached. The overlay stays active so the user can keep the
// conversation going; the back keyword or a reset leaves it.
func (r *Router) handleContact(ctx context.Context, s *domain.Session, text string) (domain.Render, error) {
	if domain.IsKeyword(text, domain.KeywordBack) {
		s.ClearOverlay()
		return r.renderCurrent(ctx, s)
	}
	msg := fmt.Sprintf("Message from %s:\n\n%s", s.UserID, text)

	err := r.notify(ctx, msg, s.UserID)
	r.metrics.Delivery(observability.ChannelOperator, err)

	if err != nil {
		r.logger.Warn("contact delivery failed", "user_id", s.UserID, "err", err)
		return domain.Render{
			Text: fmt.Sprintf("Sorry, your message could not be delivered. Send %q to leave.", domain.KeywordBack),
		}, nil
	}
	return domain.Render{
		Text: fmt.Sprintf("Your message has been sent to the operator. Write more, or send %q to leave.", domain.KeywordBack),
	}, nil
}

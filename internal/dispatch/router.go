package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gipersonic/miet/internal/catalog"
	"github.com/gipersonic/miet/internal/logging"
	"github.com/gipersonic/miet/pkg/domain"
	"github.com/gipersonic/miet/pkg/observability"
	"github.com/gipersonic/miet/pkg/ports"
	"github.com/gipersonic/miet/pkg/session"
)

// Router is the single entry point for inbound events. It owns the fixed
// precedence order: reset keyword, active overlay, menu keywords, catalog
// navigation. Exactly one branch handles each event.
type Router struct {
	resolver *catalog.Resolver
	sessions *session.Manager

	quizzes   ports.QuizSource
	notifier  ports.Notifier
	messenger ports.Messenger
	progress  ports.ProgressSink
	relays    ports.RelayStore

	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option configures the Router.
type Option func(*Router)

// WithQuizSource injects the quiz definitions source.
func WithQuizSource(src ports.QuizSource) Option {
	return func(r *Router) { r.quizzes = src }
}

// WithNotifier injects the operator notification channel.
func WithNotifier(n ports.Notifier) Option {
	return func(r *Router) { r.notifier = n }
}

// WithMessenger injects the direct user delivery channel used for relays.
func WithMessenger(m ports.Messenger) Option {
	return func(r *Router) { r.messenger = m }
}

// WithProgressSink injects the visited-subjects sink.
func WithProgressSink(p ports.ProgressSink) Option {
	return func(r *Router) { r.progress = p }
}

// WithRelayStore injects the operator reply-link table.
func WithRelayStore(s ports.RelayStore) Option {
	return func(r *Router) { r.relays = s }
}

// WithLogger configures a logger for the Router.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// WithMetrics configures prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Router) { r.metrics = m }
}

// NewRouter creates a dispatch router. Quiz source, notifier, messenger,
// progress sink and relay store are optional; missing sinks degrade to
// reported delivery failures, never to crashes.
func NewRouter(resolver *catalog.Resolver, sessions *session.Manager, opts ...Option) *Router {
	r := &Router{
		resolver: resolver,
		sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle processes one inbound event and returns the render instruction.
// Session mutation happens under the sender's lock; events from different
// users proceed concurrently.
func (r *Router) Handle(ctx context.Context, ev domain.Event) (domain.Render, error) {
	text := strings.TrimSpace(ev.Text)

	if ev.IsOperator {
		r.metrics.Event(observability.OutcomeOperator)
		return r.handleOperator(ctx, ev.UserID, text)
	}

	var render domain.Render
	_, err := r.sessions.Update(ctx, ev.UserID, func(s *domain.Session) error {
		var err error
		render, err = r.route(ctx, s, text)
		return err
	})
	if err != nil {
		return domain.Render{}, err
	}
	return render, nil
}

// route applies the precedence order against a locked session.
func (r *Router) route(ctx context.Context, s *domain.Session, text string) (domain.Render, error) {
	// 1. The reset keyword wins over everything, including an in-flight
	// quiz or feedback capture. Progress is discarded, not reported.
	if domain.IsKeyword(text, domain.KeywordReset) || domain.IsKeyword(text, domain.KeywordStart) {
		s.ResetToRoot()
		r.metrics.Event(observability.OutcomeReset)
		return r.renderRoot(ctx)
	}

	// 2. An active overlay owns the event.
	switch s.Overlay {
	case domain.OverlayFeedback:
		r.metrics.Event(observability.OutcomeOverlay)
		return r.handleFeedback(ctx, s, text)
	case domain.OverlayContact:
		r.metrics.Event(observability.OutcomeOverlay)
		return r.handleContact(ctx, s, text)
	case domain.OverlayQuiz:
		r.metrics.Event(observability.OutcomeQuiz)
		return r.handleQuizAnswer(s, text)
	}

	// 3. Menu keywords.
	switch {
	case domain.IsKeyword(text, domain.KeywordMenu):
		r.metrics.Event(observability.OutcomeMenu)
		return domain.Render{Text: "Main menu:", Choices: menuChoices()}, nil
	case domain.IsKeyword(text, domain.KeywordBack):
		r.metrics.Event(observability.OutcomeMenu)
		s.Pop()
		return r.renderCurrent(ctx, s)
	case domain.IsKeyword(text, domain.KeywordFeedback):
		r.metrics.Event(observability.OutcomeMenu)
		s.BeginFeedback()
		return domain.Render{Text: "Please write your feedback and send it."}, nil
	case domain.IsKeyword(text, domain.KeywordContact):
		r.metrics.Event(observability.OutcomeMenu)
		s.BeginContact()
		return domain.Render{Text: "Please write your message for the operator."}, nil
	case domain.IsKeyword(text, domain.KeywordQuiz):
		return r.startQuiz(ctx, s)
	}

	// 4. Catalog navigation.
	return r.navigate(ctx, s, text)
}

// navigate treats the text as a child label of the current node.
func (r *Router) navigate(ctx context.Context, s *domain.Session, text string) (domain.Render, error) {
	cur, err := r.resolver.Resolve(ctx, s.Path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The catalog changed underneath the session. Clamp to root.
			r.logger.Warn("session path no longer resolves", "user_id", s.UserID, "path", s.Path)
			s.ResetToRoot()
			return r.renderRoot(ctx)
		}
		return domain.Render{}, err
	}

	if cur.IsLeafBoundary() {
		// The user has no further choices to make here; re-display the
		// content instead of erroring.
		r.metrics.Event(observability.OutcomeNavigate)
		return domain.Render{Text: cur.LeafText(), Choices: menuChoices()}, nil
	}

	child, ok := cur.Child(text)
	if !ok {
		r.metrics.Event(observability.OutcomeInvalid)
		return domain.Render{
			Text:    "Please choose one of the offered options.",
			Choices: r.navChoices(s, cur.Labels()),
		}, nil
	}

	s.Push(child.Label)
	target, err := r.resolver.Resolve(ctx, s.Path)
	if err != nil {
		// Lost a race with a catalog edit; undo and re-offer.
		s.Pop()
		r.metrics.Event(observability.OutcomeInvalid)
		return domain.Render{
			Text:    "Please choose one of the offered options.",
			Choices: r.navChoices(s, cur.Labels()),
		}, nil
	}
	r.metrics.Event(observability.OutcomeNavigate)

	if !target.IsLeafBoundary() {
		return domain.Render{
			Text:    child.Label + ":",
			Choices: r.navChoices(s, target.Labels()),
		}, nil
	}

	r.markVisited(ctx, s)
	return domain.Render{Text: target.LeafText(), Choices: menuChoices()}, nil
}

// renderRoot renders the top-level choice set.
func (r *Router) renderRoot(ctx context.Context) (domain.Render, error) {
	root, err := r.resolver.Resolve(ctx, nil)
	if err != nil {
		return domain.Render{}, err
	}
	if root.IsLeafBoundary() {
		return domain.Render{Text: root.LeafText(), Choices: menuChoices()}, nil
	}
	return domain.Render{
		Text:    "Hi! Choose a subject:",
		Choices: append(root.Labels(), domain.KeywordMenu),
	}, nil
}

// renderCurrent renders whatever the session currently points at.
func (r *Router) renderCurrent(ctx context.Context, s *domain.Session) (domain.Render, error) {
	if len(s.Path) == 0 {
		return r.renderRoot(ctx)
	}
	node, err := r.resolver.Resolve(ctx, s.Path)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.ResetToRoot()
			return r.renderRoot(ctx)
		}
		return domain.Render{}, err
	}
	if node.IsLeafBoundary() {
		return domain.Render{Text: node.LeafText(), Choices: menuChoices()}, nil
	}
	return domain.Render{
		Text:    s.Path[len(s.Path)-1] + ":",
		Choices: r.navChoices(s, node.Labels()),
	}, nil
}

// handleOperator consumes the operator's pending relay link, if any.
func (r *Router) handleOperator(ctx context.Context, operatorID, text string) (domain.Render, error) {
	if r.relays == nil {
		return domain.Render{Text: "No pending reply target."}, nil
	}
	target, err := r.relays.TakeTarget(ctx, operatorID)
	if errors.Is(err, domain.ErrNoRelayTarget) {
		// Not auto-relayed; the operator channel handles it as an
		// ordinary message.
		return domain.Render{Text: "No pending reply target."}, nil
	}
	if err != nil {
		return domain.Render{}, fmt.Errorf("failed to take relay target: %w", err)
	}

	err = r.sendTo(ctx, target, text)
	r.metrics.Delivery(observability.ChannelUser, err)
	if err != nil {
		r.logger.Warn("relay delivery failed", "operator_id", operatorID, "user_id", target, "err", err)
		return domain.Render{Text: fmt.Sprintf("Could not deliver your reply to %s.", target)}, nil
	}
	return domain.Render{Text: fmt.Sprintf("Reply delivered to %s.", target)}, nil
}

func (r *Router) sendTo(ctx context.Context, userID, text string) error {
	if r.messenger == nil {
		return errors.New("no messenger configured")
	}
	return r.messenger.SendTo(ctx, userID, text)
}

func (r *Router) notify(ctx context.Context, text, replyUser string) error {
	if r.notifier == nil {
		return errors.New("operator channel not configured")
	}
	return r.notifier.Notify(ctx, text, replyUser)
}

func (r *Router) markVisited(ctx context.Context, s *domain.Session) {
	if r.progress == nil {
		return
	}
	if err := r.progress.MarkVisited(ctx, s.UserID, s.Path); err != nil {
		r.logger.Warn("failed to mark progress", "user_id", s.UserID, "path", s.Path, "err", err)
	}
}

// navChoices appends the standard navigation entries to a choice set.
func (r *Router) navChoices(s *domain.Session, labels []string) []string {
	out := append([]string(nil), labels...)
	if len(s.Path) > 0 {
		out = append(out, domain.KeywordBack)
	}
	return append(out, domain.KeywordMenu)
}

// menuChoices is the top-level overlay menu presented at leaf boundaries.
func menuChoices() []string {
	return []string{
		domain.KeywordFeedback,
		domain.KeywordContact,
		domain.KeywordQuiz,
		domain.KeywordBack,
	}
}

package miet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gipersonic/miet/internal/catalog"
	"github.com/gipersonic/miet/internal/dispatch"
	"github.com/gipersonic/miet/internal/logging"
	"github.com/gipersonic/miet/pkg/adapters/memory"
	"github.com/gipersonic/miet/pkg/domain"
	"github.com/gipersonic/miet/pkg/observability"
	"github.com/gipersonic/miet/pkg/ports"
	"github.com/gipersonic/miet/pkg/session"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// Engine is the high-level entry point. It wires the catalog resolver,
// session manager and dispatch router behind a two-method API: feed it
// events, arm reply links.
type Engine struct {
	store     ports.SessionStore
	relays    ports.RelayStore
	resources ports.ResourceLoader
	quizzes   ports.QuizSource
	notifier  ports.Notifier
	messenger ports.Messenger
	progress  ports.ProgressSink
	logger    *slog.Logger
	metrics   *observability.Metrics

	sessions *session.Manager
	router   *dispatch.Router
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSessionStore injects the session persistence backend. Defaults to
// an in-memory store.
func WithSessionStore(store ports.SessionStore) Option {
	return func(e *Engine) { e.store = store }
}

// WithRelayStore injects the operator reply-link backend. Defaults to
// an in-memory store.
func WithRelayStore(relays ports.RelayStore) Option {
	return func(e *Engine) { e.relays = relays }
}

// WithResources injects the loader for catalog sub-resources.
func WithResources(loader ports.ResourceLoader) Option {
	return func(e *Engine) { e.resources = loader }
}

// WithQuizSource injects the quiz definitions source.
func WithQuizSource(src ports.QuizSource) Option {
	return func(e *Engine) { e.quizzes = src }
}

// WithNotifier injects the operator notification channel.
func WithNotifier(n ports.Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithMessenger injects the direct user delivery channel.
func WithMessenger(m ports.Messenger) Option {
	return func(e *Engine) { e.messenger = m }
}

// WithProgressSink injects the visited-subjects sink.
func WithProgressSink(p ports.ProgressSink) Option {
	return func(e *Engine) { e.progress = p }
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics attaches prometheus collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New initializes an Engine over the given catalog source.
func New(source ports.CatalogSource, opts ...Option) (*Engine, error) {
	if source == nil {
		return nil, fmt.Errorf("catalog source is required")
	}

	eng := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.store == nil {
		eng.store = memory.NewSessionStore()
	}
	if eng.relays == nil {
		eng.relays = memory.NewRelayStore()
	}

	resolver := catalog.NewResolver(source,
		catalog.WithResources(eng.resources),
		catalog.WithLogger(eng.logger),
	)
	eng.sessions = session.NewManager(eng.store, session.WithLogger(eng.logger))
	eng.router = dispatch.NewRouter(resolver, eng.sessions,
		dispatch.WithQuizSource(eng.quizzes),
		dispatch.WithNotifier(eng.notifier),
		dispatch.WithMessenger(eng.messenger),
		dispatch.WithProgressSink(eng.progress),
		dispatch.WithRelayStore(eng.relays),
		dispatch.WithLogger(eng.logger),
		dispatch.WithMetrics(eng.metrics),
	)

	return eng, nil
}

// Handle processes one inbound event and returns what to show the
// sender. Events from the same user are serialized; different users
// proceed concurrently.
func (e *Engine) Handle(ctx context.Context, ev domain.Event) (domain.Render, error) {
	if ev.UserID == "" {
		return domain.Render{}, fmt.Errorf("event user id is required")
	}
	return e.router.Handle(ctx, ev)
}

// OpenRelay arms a one-shot link so the operator's next message is
// delivered to the given user. An existing link for the operator is
// silently replaced.
func (e *Engine) OpenRelay(ctx context.Context, operatorID, userID string) error {
	if operatorID == "" || userID == "" {
		return fmt.Errorf("operator and user ids are required")
	}
	return e.relays.SetTarget(ctx, operatorID, userID)
}

// EndSession drops the user's stored session. The next event starts
// from the catalog root.
func (e *Engine) EndSession(ctx context.Context, userID string) error {
	return e.sessions.Delete(ctx, userID)
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcome label values.
const (
	OutcomeReset    = "reset"
	OutcomeOverlay  = "overlay"
	OutcomeQuiz     = "quiz"
	OutcomeMenu     = "menu"
	OutcomeNavigate = "navigate"
	OutcomeInvalid  = "invalid"
	OutcomeOperator = "operator"
)

// Delivery channel label values.
const (
	ChannelOperator = "operator"
	ChannelUser     = "user"
)

// Metrics aggregates the engine's prometheus collectors.
type Metrics struct {
	Events     *prometheus.CounterVec
	Deliveries *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miet",
			Name:      "events_total",
			Help:      "Inbound events handled by the dispatch router, by outcome.",
		}, []string{"outcome"}),
		Deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "miet",
			Name:      "deliveries_total",
			Help:      "Outbound notification attempts, by channel and status.",
		}, []string{"channel", "status"}),
	}
	if reg != nil {
		reg.MustRegister(m.Events, m.Deliveries)
	}
	return m
}

// Event records a dispatch outcome. Nil-safe so the router can run
// without metrics configured.
func (m *Metrics) Event(outcome string) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(outcome).Inc()
}

// Delivery records an outbound delivery attempt.
func (m *Metrics) Delivery(channel string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.Deliveries.WithLabelValues(channel, status).Inc()
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_commands_applied_total",
			Help: "The total number of commands that changed a board.",
		}, []string{"kind"}),
		CommandsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_commands_rejected_total",
			Help: "The total number of commands rejected by validation or empty history.",
		}, []string{"kind"}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_persist_failures_total",
			Help: "The total number of board saves that failed after retries.",
		}),
		NotifSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_notifications_sent_total",
			Help: "The total number of board notifications successfully delivered.",
		}, []string{"channel"}),
		NotifFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_notifications_failed_total",
			Help: "The total number of board notifications that failed to deliver.",
		}, []string{"channel"}),
		HistoryDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scoreboard_history_depth",
			Help: "The number of snapshots on each history stack.",
		}, []string{"board", "stack"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreboard_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsApplied,
		s.CommandsRejected,
		s.PersistFailures,
		s.NotifSent,
		s.NotifFailed,
		s.HistoryDepth,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandApplied(kind string) {
	s.CommandsApplied.WithLabelValues(kind).Inc()
}

func (s *Service) IncCommandRejected(kind string) {
	s.CommandsRejected.WithLabelValues(kind).Inc()
}

func (s *Service) IncPersistFailures() {
	s.PersistFailures.Inc()
}

func (s *Service) IncNotifSent(channel string) {
	s.NotifSent.WithLabelValues(channel).Inc()
}

func (s *Service) IncNotifFailed(channel string) {
	s.NotifFailed.WithLabelValues(channel).Inc()
}

func (s *Service) SetHistoryDepth(board string, undo, redo int) {
	s.HistoryDepth.WithLabelValues(board, "undo").Set(float64(undo))
	s.HistoryDepth.WithLabelValues(board, "redo").Set(float64(redo))
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

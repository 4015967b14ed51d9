package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	CommandsApplied    *prometheus.CounterVec
	CommandsRejected   *prometheus.CounterVec
	PersistFailures    prometheus.Counter
	NotifSent          *prometheus.CounterVec
	NotifFailed        *prometheus.CounterVec
	HistoryDepth       *prometheus.GaugeVec
	StartupTimeSeconds prometheus.Gauge
}

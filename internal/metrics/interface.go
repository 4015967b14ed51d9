package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncCommandApplied(kind string)
	IncCommandRejected(kind string)
	IncPersistFailures()
	IncNotifSent(channel string)
	IncNotifFailed(channel string)
	SetHistoryDepth(board string, undo, redo int)
	SetStartupTime(duration float64)
}

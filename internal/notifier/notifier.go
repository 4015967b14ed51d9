package notifier

import (
	"context"
	"time"

	"github.com/mauv0809/scoreboard/internal/view"
)

// Change describes a board after a committed command, undo or redo.
type Change struct {
	ID      string
	Command string
	Board   view.Board
	At      time.Time
}

// Notifier receives refreshed board views.
// This decouples the session from the specific delivery channel (e.g., Slack).
type Notifier interface {
	BoardChanged(ctx context.Context, change Change) error
}

type contextKey string

const dryRunKey contextKey = "dryRun"

// WithDryRun marks ctx so notifiers log instead of delivering.
func WithDryRun(ctx context.Context, dryRun bool) context.Context {
	return context.WithValue(ctx, dryRunKey, dryRun)
}

// IsDryRun reports whether ctx was marked by WithDryRun.
func IsDryRun(ctx context.Context) bool {
	dryRun, ok := ctx.Value(dryRunKey).(bool)
	return ok && dryRun
}

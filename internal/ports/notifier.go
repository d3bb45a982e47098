package ports

import "github.com/xvierd/daylog/internal/domain"

// Notifier delivers out-of-band alerts about the session.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifySleep reports a freshly computed sleep summary.
	NotifySleep(summary domain.SleepSummary) error

	// IsEnabled returns true if notifications will be delivered.
	IsEnabled() bool
}

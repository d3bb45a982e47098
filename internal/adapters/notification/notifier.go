// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/ports"
	"github.com/xvierd/daylog/internal/timefmt"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg  *config.NotificationConfig
	send func(title, message string, icon any) error
}

var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg, send: beeep.Notify}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return n.send(title, message, "")
}

// NotifySleep announces how long the user slept.
func (n *Notifier) NotifySleep(summary domain.SleepSummary) error {
	title := "🌙 Сън: " + timefmt.Duration(summary.Duration)
	return n.Notify(title, timefmt.Span(summary.Start, summary.End))
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

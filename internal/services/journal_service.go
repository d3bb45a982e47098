// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/logging"
	"github.com/xvierd/daylog/internal/ports"
)

// JournalService owns the session state and records every transition.
type JournalService struct {
	storage  ports.Storage
	clock    ports.Clock
	rule     domain.SleepRule
	notifier ports.Notifier
	logger   *slog.Logger

	mu    sync.Mutex
	state domain.State
}

// NewJournalService creates a new journal service.
func NewJournalService(storage ports.Storage, clock ports.Clock, rule domain.SleepRule) *JournalService {
	if clock == nil {
		clock = ports.SystemClock
	}
	return &JournalService{
		storage: storage,
		clock:   clock,
		rule:    rule,
		logger:  logging.Discard(),
	}
}

// SetNotifier sets the notifier used for sleep summaries.
func (s *JournalService) SetNotifier(notifier ports.Notifier) {
	s.notifier = notifier
}

// SetLogger sets the structured logger.
func (s *JournalService) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// State returns the current snapshot.
func (s *JournalService) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Confirm closes the running activity and starts selected.
// If the closed entry cannot be recorded the state is left as it was.
func (s *JournalService) Confirm(ctx context.Context, selected domain.ActivityName) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	out := domain.Transition(s.state.Active, selected, now, s.rule)

	if out.Finished != nil {
		out.Finished.ID = domain.NewEntryID()
		if err := s.storage.Entries().Append(ctx, out.Finished); err != nil {
			s.logger.Error("failed to record entry",
				"activity", string(out.Finished.Name),
				"error", err)
			return s.state, fmt.Errorf("failed to record %q: %w", out.Finished.Name, err)
		}
		s.logger.Info("activity finished",
			"activity", string(out.Finished.Name),
			"start", out.Finished.Start,
			"end", out.Finished.End,
			"duration", out.Finished.Duration().String())
	}

	s.state = s.state.Apply(out)
	s.logger.Info("activity started",
		"activity", string(out.Active.Name),
		"start", out.Active.Start)

	if out.Sleep != nil {
		s.logger.Info("sleep recorded",
			"duration_ms", out.Sleep.DurationMs(),
			"start", out.Sleep.Start,
			"end", out.Sleep.End)
		s.notifySleep(*out.Sleep)
	}

	return s.state, nil
}

// History returns the recorded entries, newest first.
func (s *JournalService) History(ctx context.Context) ([]*domain.LogEntry, error) {
	entries, err := s.storage.Entries().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

func (s *JournalService) notifySleep(summary domain.SleepSummary) {
	if s.notifier == nil || !s.notifier.IsEnabled() {
		return
	}
	if err := s.notifier.NotifySleep(summary); err != nil {
		s.logger.Warn("notification failed", "error", err)
	}
}

// Package domain contains the core entities of daylog: activities, the entries
// that record them and the transition rules that close one activity and start
// the next. Nothing in here touches a terminal, a clock or a database.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrEmptyCatalog   = errors.New("activity catalog is empty")
	ErrDuplicateEntry = errors.New("log entry already recorded")
)

// ActivityName is a label taken from the activity catalog.
type ActivityName string

// ActiveEntry is the activity that is currently running.
type ActiveEntry struct {
	Name  ActivityName
	Start time.Time
}

// Elapsed returns how long the activity has been running at now.
func (a ActiveEntry) Elapsed(now time.Time) time.Duration {
	if now.Before(a.Start) {
		return 0
	}
	return now.Sub(a.Start)
}

// LogEntry is a closed activity interval. End is never before Start.
// ID is empty until the entry is recorded.
type LogEntry struct {
	ID    string
	Name  ActivityName
	Start time.Time
	End   time.Time
}

// NewLogEntry closes an interval for name under a fresh ID.
func NewLogEntry(name ActivityName, start, end time.Time) *LogEntry {
	return &LogEntry{
		ID:    NewEntryID(),
		Name:  name,
		Start: start,
		End:   end,
	}
}

// Duration returns the length of the interval.
func (e LogEntry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// SleepSummary is the derived bedtime-to-wake-up interval.
type SleepSummary struct {
	Duration time.Duration
	Start    time.Time
	End      time.Time
}

// DurationMs returns the summary duration in whole milliseconds.
func (s SleepSummary) DurationMs() int64 {
	return s.Duration.Milliseconds()
}

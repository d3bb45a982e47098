package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/timefmt"
)

// PrintHistory writes the session log as plain text, one entry per line in
// the order given.
func PrintHistory(w io.Writer, entries []*domain.LogEntry, sleep *domain.SleepSummary) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, labelNoLog)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s (%d)\n", labelHistory, len(entries)); err != nil {
		return err
	}
	var total time.Duration
	for _, e := range entries {
		total += e.Duration()
		if _, err := fmt.Fprintf(w, "  %s\n", formatLogItem(*e)); err != nil {
			return err
		}
	}
	if sleep != nil {
		if _, err := fmt.Fprintf(w, "%s: %s  %s\n", labelSleep, timefmt.Duration(sleep.Duration), timefmt.Span(sleep.Start, sleep.End)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Общо: %s\n", timefmt.Duration(total))
	return err
}

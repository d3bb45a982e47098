package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/domain"
	"github.com/xvierd/daylog/internal/timefmt"
)

const (
	labelIdle    = "Няма активност"
	labelSince   = "от"
	labelNoLog   = "Няма записи"
	labelSleep   = "Сън"
	labelHistory = "Дневник"
)

// viewCurrentActivity renders the running activity with its start time and
// elapsed time.
func viewCurrentActivity(active *domain.ActiveEntry, now time.Time, theme config.ThemeConfig) string {
	if active == nil {
		return lipgloss.NewStyle().Faint(true).Render(labelIdle)
	}
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorActive))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorLog))

	meta := fmt.Sprintf("%s %s  (%s)", labelSince, timefmt.Clock(active.Start), timefmt.Duration(active.Elapsed(now)))
	return lipgloss.JoinVertical(lipgloss.Center, nameStyle.Render(string(active.Name)), metaStyle.Render(meta))
}

// viewSleepInfo renders the last sleep summary, or nothing.
func viewSleepInfo(sleep *domain.SleepSummary, theme config.ThemeConfig) string {
	if sleep == nil {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorSleep))
	text := fmt.Sprintf("%s %s: %s  %s", theme.IconSleep, labelSleep, timefmt.Duration(sleep.Duration), timefmt.Span(sleep.Start, sleep.End))
	return style.Render(text)
}

// formatLogItem is the plain text of one log line.
func formatLogItem(entry domain.LogEntry) string {
	return fmt.Sprintf("%s  %s  %s", entry.Name, timefmt.Span(entry.Start, entry.End), timefmt.Duration(entry.Duration()))
}

func viewLogItem(entry domain.LogEntry, theme config.ThemeConfig) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorLog)).Render(formatLogItem(entry))
}

// renderLog renders entries in the order given, which is newest first for a
// session log.
func renderLog(entries []domain.LogEntry, theme config.ThemeConfig) string {
	if len(entries) == 0 {
		return lipgloss.NewStyle().Faint(true).Render(labelNoLog)
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = viewLogItem(e, theme)
	}
	return strings.Join(lines, "\n")
}

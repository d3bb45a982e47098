// Package timefmt renders wall-clock times and durations the way daylog
// shows them on screen.
package timefmt

import (
	"fmt"
	"time"
)

const (
	hourUnit   = "ч"
	minuteUnit = "мин"
)

// Clock formats t as hour:minute in t's own location.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// Span formats an interval as "HH:MM – HH:MM".
func Span(start, end time.Time) string {
	return Clock(start) + " – " + Clock(end)
}

// Duration formats d as whole hours and remaining whole minutes, e.g.
// "2 ч 5 мин". The hour part is left out when zero; negative durations
// render as "0 мин".
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Minute)
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%d %s", m, minuteUnit)
	}
	return fmt.Sprintf("%d %s %d %s", h, hourUnit, m, minuteUnit)
}

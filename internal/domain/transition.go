package domain

import "time"

// Outcome is the result of confirming a new activity.
type Outcome struct {
	Active   ActiveEntry
	Finished *LogEntry
	Sleep    *SleepSummary
}

// Transition closes previous (if any) and starts selected at now.
//
// The selected name is taken as-is. Pressing confirm twice within the same
// millisecond yields a zero-length entry. The finished entry carries no ID,
// so equal inputs give equal outcomes.
func Transition(previous *ActiveEntry, selected ActivityName, now time.Time, rule SleepRule) Outcome {
	now = now.Truncate(time.Millisecond)
	out := Outcome{
		Active: ActiveEntry{Name: selected, Start: now},
	}
	if previous == nil {
		return out
	}

	out.Finished = &LogEntry{Name: previous.Name, Start: previous.Start, End: now}
	if rule.Matches(previous.Name, selected) {
		out.Sleep = &SleepSummary{
			Duration: now.Sub(previous.Start),
			Start:    previous.Start,
			End:      now,
		}
	}
	return out
}

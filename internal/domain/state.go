package domain

import "time"

// State is the whole in-memory session: the running activity, the closed
// entries newest first and the last sleep summary.
type State struct {
	Active *ActiveEntry
	Log    []LogEntry
	Sleep  *SleepSummary
}

// HasActive returns true once the first activity has been started.
func (s State) HasActive() bool {
	return s.Active != nil
}

// Apply folds an outcome into a new state. The receiver is left untouched.
func (s State) Apply(out Outcome) State {
	active := out.Active
	next := State{
		Active: &active,
		Sleep:  out.Sleep,
	}

	n := len(s.Log)
	if out.Finished != nil {
		n++
	}
	next.Log = make([]LogEntry, 0, n)
	if out.Finished != nil {
		next.Log = append(next.Log, *out.Finished)
	}
	next.Log = append(next.Log, s.Log...)
	return next
}

// Confirm runs the transition for selected at now and applies it.
func (s State) Confirm(selected ActivityName, now time.Time, rule SleepRule) (State, Outcome) {
	out := Transition(s.Active, selected, now, rule)
	return s.Apply(out), out
}

// TotalLogged sums the durations of all closed entries.
func (s State) TotalLogged() time.Duration {
	var total time.Duration
	for _, e := range s.Log {
		total += e.Duration()
	}
	return total
}

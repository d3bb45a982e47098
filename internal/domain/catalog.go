package domain

import "slices"

// SleepRule names the two activities whose direct succession produces a
// sleep summary.
type SleepRule struct {
	Start ActivityName
	End   ActivityName
}

// Matches reports whether closing previous in favour of selected is the
// bedtime-to-wake-up transition. An empty rule never matches.
func (r SleepRule) Matches(previous, selected ActivityName) bool {
	if r.Start == "" || r.End == "" {
		return false
	}
	return previous == r.Start && selected == r.End
}

// Catalog is the ordered list of selectable activities.
type Catalog struct {
	Activities []ActivityName
	Sleep      SleepRule
}

// NewCatalog builds a catalog from plain strings.
func NewCatalog(names []string, sleepStart, sleepEnd string) Catalog {
	activities := make([]ActivityName, 0, len(names))
	for _, n := range names {
		activities = append(activities, ActivityName(n))
	}
	return Catalog{
		Activities: activities,
		Sleep:      SleepRule{Start: ActivityName(sleepStart), End: ActivityName(sleepEnd)},
	}
}

// Validate checks the catalog can be shown at all.
func (c Catalog) Validate() error {
	if len(c.Activities) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// HasSleepPair reports whether both sentinels are present, i.e. whether a
// sleep summary can ever be produced.
func (c Catalog) HasSleepPair() bool {
	return c.Contains(c.Sleep.Start) && c.Contains(c.Sleep.End)
}

// Contains reports catalog membership.
func (c Catalog) Contains(name ActivityName) bool {
	return name != "" && slices.Contains(c.Activities, name)
}

// First returns the first catalog entry, or "" for an empty catalog.
func (c Catalog) First() ActivityName {
	if len(c.Activities) == 0 {
		return ""
	}
	return c.Activities[0]
}

// Middle returns the index of the middle entry.
func (c Catalog) Middle() int {
	return len(c.Activities) / 2
}

package provider

import "time"

// TimeValue carries either a parsed timestamp or, when the upstream
// value was not timestamp-typed, its raw string form.
type TimeValue struct {
	Time time.Time
	Raw  string
}

// Valid reports whether the value carries a parsed timestamp.
func (v TimeValue) Valid() bool { return !v.Time.IsZero() }

// Format renders the timestamp with the given layout, or falls back to
// the raw upstream string.
func (v TimeValue) Format(layout string) string {
	if v.Valid() {
		return v.Time.Format(layout)
	}
	return v.Raw
}

// ScheduledSession is one of the up-to-five session slots declared for a
// weekend in the published schedule. An empty Name marks an unused slot.
type ScheduledSession struct {
	Name  string
	Local TimeValue
	UTC   TimeValue
}

// ScheduleEntry is one weekend row of the published season schedule.
type ScheduleEntry struct {
	Round             int
	EventName         string
	OfficialEventName string
	Location          string
	Country           string
	Format            EventFormat
	EventDate         time.Time
	Sessions          []ScheduledSession
}

// Schedule is a season's published schedule, ordered by round.
type Schedule []ScheduleEntry

// Round returns the entry for the given round number.
func (s Schedule) Round(round int) (*ScheduleEntry, bool) {
	for i := range s {
		if s[i].Round == round {
			return &s[i], true
		}
	}
	return nil, false
}

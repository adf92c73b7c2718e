// Package provider defines the timing-data collaborator: the event,
// schedule and session tables the ingestion jobs consume, together with
// an HTTP client against a timing API.
package provider

import (
	"context"
	"errors"
	"time"
)

// ErrNotLoaded reports that the upstream has no data for the requested
// table yet. Callers treat it as absence, not as a failure.
var ErrNotLoaded = errors.New("provider: session data not loaded")

// EventFormat discriminates conventional race weekends from sprint ones.
type EventFormat string

const (
	FormatConventional     EventFormat = "conventional"
	FormatSprintQualifying EventFormat = "sprint_qualifying"
)

// Session names accepted by LoadSession.
const (
	SessionPractice1        = "Practice 1"
	SessionPractice2        = "Practice 2"
	SessionPractice3        = "Practice 3"
	SessionSprintQualifying = "Sprint Qualifying"
	SessionSprint           = "Sprint"
	SessionQualifying       = "Qualifying"
	SessionRace             = "Race"
)

// Event is a race weekend as reported by the provider. Fetched fresh per
// invocation and never mutated locally.
type Event struct {
	Year         int
	Round        int
	Name         string
	OfficialName string
	Location     string
	Country      string
	Format       EventFormat
	Date         time.Time
}

// HasSprint reports whether the weekend runs the sprint format.
func (e *Event) HasSprint() bool {
	return e.Format == FormatSprintQualifying
}

// Lap is a single timed lap within a session.
type Lap struct {
	Driver   string // three-letter abbreviation
	Number   string // car number
	Team     string
	Compound string
	LapTime  *time.Duration
}

// ResultRow is one classified entry of a session's official result table.
// Position is nil when the driver was not classified.
type ResultRow struct {
	DriverID           string
	Abbreviation       string
	TeamName           string
	Position           *int
	ClassifiedPosition string
	GridPosition       *int
	Status             string
	Points             *float64
	Time               *time.Duration
	Q1                 *time.Duration
	Q2                 *time.Duration
	Q3                 *time.Duration
}

// Session is a loaded timed activity within an event. A nil Laps or
// Results slice means that table was never loaded, which is distinct
// from a loaded-but-empty one.
type Session struct {
	Name     string
	Date     time.Time
	Duration time.Duration

	Laps      []Lap
	Results   []ResultRow
	TotalLaps *int
}

// Usable reports whether any of the three data probes (laps, results,
// total lap count) carries real data. Not-yet-run events typically fail
// all three.
func (s *Session) Usable() bool {
	if s == nil {
		return false
	}
	return len(s.Laps) > 0 || len(s.Results) > 0 || s.TotalLaps != nil
}

// EndTime is the session end, assuming one hour when the provider did
// not report a duration.
func (s *Session) EndTime() time.Time {
	if s.Duration > 0 {
		return s.Date.Add(s.Duration)
	}
	return s.Date.Add(time.Hour)
}

// Client is the timing-data provider. LoadSession returns ErrNotLoaded
// (possibly wrapped) when the upstream has published no data for the
// session yet.
type Client interface {
	Event(ctx context.Context, year, round int) (*Event, error)
	Schedule(ctx context.Context, year int) (Schedule, error)
	LoadSession(ctx context.Context, event *Event, name string) (*Session, error)
}

// Package ingest builds circuit and race documents from live session
// data, falling back to the published schedule when the weekend has not
// produced usable timing data yet.
package ingest

import (
	"errors"
	"fmt"

	"github.com/gridmetrics/ingest/internal/provider"
)

// ErrRoundNotInSchedule reports that the published schedule has no row
// for the requested round, so no document can be built at all.
var ErrRoundNotInSchedule = errors.New("ingest: round not found in schedule")

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	clockLayout    = "15:04:05"
)

// FallbackSession is a sub-session slot taken from the schedule.
type FallbackSession struct {
	Name      string `json:"name"`
	DateLocal string `json:"date_local"`
	DateUTC   string `json:"date_utc"`
}

// Fallback is the minimal event metadata derived from the published
// schedule, used when no live session data exists for a round.
type Fallback struct {
	Date         string
	OfficialName string
	Name         string
	Location     string
	Country      string
	Format       provider.EventFormat
	Sessions     []FallbackSession
}

// ResolveFallback derives fallback metadata for a round from the season
// schedule. Up to five declared sub-sessions are kept; empty slots are
// skipped. Values that are not timestamp-typed pass through in their raw
// string form.
func ResolveFallback(schedule provider.Schedule, round int) (*Fallback, error) {
	entry, ok := schedule.Round(round)
	if !ok {
		return nil, fmt.Errorf("round %d: %w", round, ErrRoundNotInSchedule)
	}

	fb := &Fallback{
		Date:         entry.EventDate.Format(dateLayout),
		OfficialName: entry.OfficialEventName,
		Name:         entry.EventName,
		Location:     entry.Location,
		Country:      entry.Country,
		Format:       entry.Format,
	}

	sessions := entry.Sessions
	if len(sessions) > 5 {
		sessions = sessions[:5]
	}
	for _, s := range sessions {
		if s.Name == "" {
			continue
		}
		fb.Sessions = append(fb.Sessions, FallbackSession{
			Name:      s.Name,
			DateLocal: s.Local.Format(dateTimeLayout),
			DateUTC:   s.UTC.Format(dateTimeLayout),
		})
	}
	return fb, nil
}

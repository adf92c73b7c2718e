// Package results turns a loaded session's raw tables into the ranked,
// ordinal-keyed records the output files and documents carry.
package results

import (
	"errors"
	"sort"
	"strings"

	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/timefmt"
)

// ErrNoLapData reports a session whose lap table is present but empty.
// ErrNoValidLaps reports one where every lap time is missing. Both mean
// the session produces no output and is skipped.
var (
	ErrNoLapData   = errors.New("results: session has no lap data")
	ErrNoValidLaps = errors.New("results: session has no valid lap times")
)

// QSegmentTimes holds the formatted times of the three qualifying
// segments. A nil segment means the driver did not run it.
type QSegmentTimes struct {
	Q1 *string `json:"Q1"`
	Q2 *string `json:"Q2"`
	Q3 *string `json:"Q3"`
}

// QualifyingRow is one classified qualifying entry.
type QualifyingRow struct {
	Driver    string        `json:"driver"`
	Position  int           `json:"position"`
	TotalTime QSegmentTimes `json:"total_time"`
}

// PositionDetail carries the three position views of a race result.
type PositionDetail struct {
	Position           int    `json:"Position"`
	ClassifiedPosition string `json:"ClassifiedPosition"`
	GridPosition       *int   `json:"GridPosition"`
}

// RaceRow is one classified race entry.
type RaceRow struct {
	Driver   string         `json:"driver"`
	Position PositionDetail `json:"position"`
	Status   string         `json:"status"`
	Time     *string        `json:"time"`
	Points   *float64       `json:"points"`
}

// PracticeRow is one ranked practice or sprint entry. Driver is nil when
// the abbreviation has no canonical id.
type PracticeRow struct {
	Position int     `json:"position"`
	Driver   *string `json:"driver"`
	Time     *string `json:"formattedtime"`
	Team     string  `json:"team"`
	Compound *string `json:"compound"`
}

// Qualifying extracts the official classified qualifying results in
// position order, capped at twenty. Rows without a classified position
// are dropped.
func Qualifying(session *provider.Session) ([]QualifyingRow, error) {
	rows, err := classified(session)
	if err != nil {
		return nil, err
	}

	out := make([]QualifyingRow, 0, len(rows))
	for _, r := range rows {
		if *r.Position > MaxRanked {
			continue
		}
		out = append(out, QualifyingRow{
			Driver:   strings.ToLower(r.DriverID),
			Position: *r.Position,
			TotalTime: QSegmentTimes{
				Q1: timefmt.LapTime(r.Q1),
				Q2: timefmt.LapTime(r.Q2),
				Q3: timefmt.LapTime(r.Q3),
			},
		})
	}
	return out, nil
}

// Race extracts the official classified race results in position order,
// capped at twenty.
func Race(session *provider.Session) ([]RaceRow, error) {
	rows, err := classified(session)
	if err != nil {
		return nil, err
	}

	out := make([]RaceRow, 0, len(rows))
	for _, r := range rows {
		if *r.Position > MaxRanked {
			continue
		}
		out = append(out, RaceRow{
			Driver: strings.ToLower(r.DriverID),
			Position: PositionDetail{
				Position:           *r.Position,
				ClassifiedPosition: r.ClassifiedPosition,
				GridPosition:       r.GridPosition,
			},
			Status: r.Status,
			Time:   timefmt.ElapsedTime(r.Time),
			Points: r.Points,
		})
	}
	return out, nil
}

// Practice groups a session's laps by driver, keeps each driver's
// fastest valid lap and ranks drivers by that lap ascending. Drivers
// with no valid lap are dropped; a session with none at all yields
// ErrNoValidLaps.
func Practice(session *provider.Session) ([]PracticeRow, error) {
	if session.Laps == nil {
		return nil, provider.ErrNotLoaded
	}
	if len(session.Laps) == 0 {
		return nil, ErrNoLapData
	}

	type fastest struct {
		lap   provider.Lap
		order int // first-seen order, stable tie-break
	}
	best := make(map[string]fastest)
	for i, lap := range session.Laps {
		if lap.LapTime == nil {
			continue
		}
		cur, ok := best[lap.Driver]
		if !ok || *lap.LapTime < *cur.lap.LapTime {
			order := i
			if ok {
				order = cur.order
			}
			best[lap.Driver] = fastest{lap: lap, order: order}
		}
	}
	if len(best) == 0 {
		return nil, ErrNoValidLaps
	}

	ranked := make([]fastest, 0, len(best))
	for _, f := range best {
		ranked = append(ranked, f)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := *ranked[i].lap.LapTime, *ranked[j].lap.LapTime
		if a != b {
			return a < b
		}
		return ranked[i].order < ranked[j].order
	})

	out := make([]PracticeRow, 0, len(ranked))
	for i, f := range ranked {
		out = append(out, PracticeRow{
			Position: i + 1,
			Driver:   canonical(f.lap.Driver),
			Time:     timefmt.LapTime(f.lap.LapTime),
			Team:     f.lap.Team,
			Compound: optional(f.lap.Compound),
		})
	}
	return out, nil
}

// OfficialShort extracts a short session's official classification the
// way sprint qualifying is reported: the driver's gap time in lap
// format, with no tire compound available.
func OfficialShort(session *provider.Session) ([]PracticeRow, error) {
	rows, err := classified(session)
	if err != nil {
		return nil, err
	}

	out := make([]PracticeRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, PracticeRow{
			Position: *r.Position,
			Driver:   canonical(r.Abbreviation),
			Time:     timefmt.LapTime(r.Time),
			Team:     r.TeamName,
			Compound: nil,
		})
	}
	return out, nil
}

// Ranked re-keys an ordered row list into the ordinal mapping, dropping
// anything past the twentieth entry.
func Ranked[T any](rows []T) *OrdinalResults {
	o := &OrdinalResults{}
	for _, r := range rows {
		o.Add(r)
	}
	return o
}

// classified returns a session's result rows sorted by official
// position, dropping unclassified rows.
func classified(session *provider.Session) ([]provider.ResultRow, error) {
	if session.Results == nil {
		return nil, provider.ErrNotLoaded
	}
	rows := make([]provider.ResultRow, 0, len(session.Results))
	for _, r := range session.Results {
		if r.Position == nil {
			continue
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return *rows[i].Position < *rows[j].Position
	})
	return rows, nil
}

func canonical(abbreviation string) *string {
	id, ok := CanonicalDriver(abbreviation)
	if !ok {
		return nil
	}
	return &id
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

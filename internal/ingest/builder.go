package ingest

import (
	"sort"
	"strings"
	"time"

	"github.com/gridmetrics/ingest/internal/models"
	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/refdata"
	"github.com/gridmetrics/ingest/internal/timefmt"
)

// firstGP is a fixed placeholder until the editorial value is curated
// through the catalog.
const firstGP = "2004-04-04"

// SessionOrder returns the fixed sub-session iteration order of a race
// document for the given weekend format.
func SessionOrder(format provider.EventFormat) []string {
	if format == provider.FormatSprintQualifying {
		return []string{
			provider.SessionPractice1,
			provider.SessionSprintQualifying,
			provider.SessionSprint,
			provider.SessionQualifying,
			provider.SessionRace,
		}
	}
	return []string{
		provider.SessionPractice1,
		provider.SessionPractice2,
		provider.SessionPractice3,
		provider.SessionQualifying,
		provider.SessionRace,
	}
}

// BuildCircuit composes the circuit document. Live event data wins when
// a usable race session exists; otherwise every corresponding field
// comes from the fallback. The lap record keeps its three keys even when
// no fastest lap is available.
func BuildCircuit(event *provider.Event, fb *Fallback, race *provider.Session, ref refdata.Table) models.Circuit {
	name, officialName := fb.Name, fb.OfficialName
	country, location := fb.Country, fb.Location
	var numberOfLaps *int
	if race.Usable() {
		name, officialName = event.Name, event.OfficialName
		country, location = event.Country, event.Location
		numberOfLaps = race.TotalLaps
	}

	var year *int
	if event != nil {
		y := event.Year
		year = &y
	}

	record := models.LapRecord{Time: models.LapRecordNA, Driver: models.LapRecordNA, Year: year}
	if fastest := fastestLap(race); fastest != nil {
		if formatted := timefmt.TotalTime(fastest.LapTime); formatted != nil {
			record.Time = *formatted
			record.Driver = fastest.Number
		}
	}

	circuit := models.Circuit{
		ID:           models.CircuitID(location),
		Name:         name,
		OfficialName: officialName,
		Country:      models.Country{Name: country},
		FirstGP:      firstGP,
		NumberOfLaps: numberOfLaps,
		LapRecord:    record,
	}
	if entry, ok := ref.Lookup(location); ok {
		circuit.Country.Flag = entry.CountryFlag
		circuit.Map = models.CircuitMap{
			Track:   models.TrackMap{Black: entry.Track.Black, White: entry.Track.White},
			Circuit: entry.Circuit,
		}
	}
	return circuit
}

// BuildSessionSummary turns a loaded session into a race-document
// summary plus its full result list. Rows without an official position
// fall back to their table order.
func BuildSessionSummary(session *provider.Session) (models.SessionSummary, []models.SessionResultRow) {
	start := session.Date.Format(clockLayout)
	end := session.EndTime().Format(clockLayout)
	summary := models.SessionSummary{
		Name:      session.Name,
		Date:      session.Date.Format(dateLayout),
		StartTime: &start,
		EndTime:   &end,
	}

	rows := make([]models.SessionResultRow, 0, len(session.Results))
	for i, r := range session.Results {
		position := i + 1
		if r.Position != nil {
			position = *r.Position
		}
		var driver *string
		if r.DriverID != "" {
			d := r.DriverID
			driver = &d
		}
		rows = append(rows, models.SessionResultRow{
			Driver:    driver,
			Position:  position,
			TotalTime: timefmt.TotalTime(r.Time),
		})
	}

	summary.Result = sessionResult(rows)
	return summary, rows
}

// FallbackSummaries builds minimal session summaries from schedule
// slots. End times assume a one-hour session.
func FallbackSummaries(fb *Fallback) []models.SessionSummary {
	summaries := make([]models.SessionSummary, 0, len(fb.Sessions))
	for _, s := range fb.Sessions {
		summary := models.SessionSummary{Name: s.Name, Date: s.DateLocal}
		if day, clock, ok := strings.Cut(s.DateLocal, " "); ok {
			summary.Date = day
			if t, err := time.Parse(clockLayout, clock); err == nil {
				start := clock
				end := t.Add(time.Hour).Format(clockLayout)
				summary.StartTime = &start
				summary.EndTime = &end
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// sessionResult picks the serialized shape: podium for three or more
// rows, the plain list for fewer, an empty object for none.
func sessionResult(rows []models.SessionResultRow) models.SessionResult {
	if len(rows) == 0 {
		return models.SessionResult{}
	}
	ordered := make([]models.SessionResultRow, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })
	if len(ordered) >= 3 {
		return models.SessionResult{Podium: &models.Podium{
			First:  ordered[0],
			Second: ordered[1],
			Third:  ordered[2],
		}}
	}
	return models.SessionResult{Rows: rows}
}

// fastestLap scans a session's laps for the lowest valid lap time.
func fastestLap(session *provider.Session) *provider.Lap {
	if session == nil {
		return nil
	}
	var best *provider.Lap
	for i := range session.Laps {
		lap := &session.Laps[i]
		if lap.LapTime == nil {
			continue
		}
		if best == nil || *lap.LapTime < *best.LapTime {
			best = lap
		}
	}
	return best
}

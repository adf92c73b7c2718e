package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient talks to the timing API over JSON. It performs a single
// attempt per call; callers decide what a failure means for their job.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient creates a client against the given API base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

type eventJSON struct {
	Year         int       `json:"year"`
	Round        int       `json:"round"`
	Name         string    `json:"name"`
	OfficialName string    `json:"official_name"`
	Location     string    `json:"location"`
	Country      string    `json:"country"`
	Format       string    `json:"format"`
	Date         time.Time `json:"date"`
}

type scheduleSessionJSON struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	DateUTC string `json:"date_utc"`
}

type scheduleEntryJSON struct {
	Round        int                   `json:"round"`
	Name         string                `json:"name"`
	OfficialName string                `json:"official_name"`
	Location     string                `json:"location"`
	Country      string                `json:"country"`
	Format       string                `json:"format"`
	Date         time.Time             `json:"date"`
	Sessions     []scheduleSessionJSON `json:"sessions"`
}

type lapJSON struct {
	Driver    string `json:"driver"`
	Number    string `json:"number"`
	Team      string `json:"team"`
	Compound  string `json:"compound"`
	LapTimeMS *int64 `json:"lap_time_ms"`
}

type resultRowJSON struct {
	DriverID           string   `json:"driver_id"`
	Abbreviation       string   `json:"abbreviation"`
	TeamName           string   `json:"team_name"`
	Position           *int     `json:"position"`
	ClassifiedPosition string   `json:"classified_position"`
	GridPosition       *int     `json:"grid_position"`
	Status             string   `json:"status"`
	Points             *float64 `json:"points"`
	TimeMS             *int64   `json:"time_ms"`
	Q1MS               *int64   `json:"q1_ms"`
	Q2MS               *int64   `json:"q2_ms"`
	Q3MS               *int64   `json:"q3_ms"`
}

type sessionJSON struct {
	Name       string          `json:"name"`
	Date       time.Time       `json:"date"`
	DurationMS int64           `json:"duration_ms"`
	Laps       []lapJSON       `json:"laps"`
	Results    []resultRowJSON `json:"results"`
	TotalLaps  *int            `json:"total_laps"`
}

// Event fetches the weekend identified by (year, round).
func (c *HTTPClient) Event(ctx context.Context, year, round int) (*Event, error) {
	var raw eventJSON
	path := fmt.Sprintf("/seasons/%d/rounds/%d/event", year, round)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("fetch event %d round %d: %w", year, round, err)
	}
	return &Event{
		Year:         raw.Year,
		Round:        raw.Round,
		Name:         raw.Name,
		OfficialName: raw.OfficialName,
		Location:     raw.Location,
		Country:      raw.Country,
		Format:       EventFormat(raw.Format),
		Date:         raw.Date,
	}, nil
}

// Schedule fetches the published schedule for a season.
func (c *HTTPClient) Schedule(ctx context.Context, year int) (Schedule, error) {
	var raw []scheduleEntryJSON
	path := fmt.Sprintf("/seasons/%d/schedule", year)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, fmt.Errorf("fetch schedule %d: %w", year, err)
	}
	schedule := make(Schedule, 0, len(raw))
	for _, e := range raw {
		entry := ScheduleEntry{
			Round:             e.Round,
			EventName:         e.Name,
			OfficialEventName: e.OfficialName,
			Location:          e.Location,
			Country:           e.Country,
			Format:            EventFormat(e.Format),
			EventDate:         e.Date,
		}
		for _, s := range e.Sessions {
			entry.Sessions = append(entry.Sessions, ScheduledSession{
				Name:  s.Name,
				Local: parseTimeValue(s.Date),
				UTC:   parseTimeValue(s.DateUTC),
			})
		}
		schedule = append(schedule, entry)
	}
	return schedule, nil
}

// LoadSession fetches one session's tables. A 404 or an empty body means
// the upstream has published nothing yet and maps to ErrNotLoaded.
func (c *HTTPClient) LoadSession(ctx context.Context, event *Event, name string) (*Session, error) {
	var raw sessionJSON
	path := fmt.Sprintf("/seasons/%d/rounds/%d/sessions/%s",
		event.Year, event.Round, url.PathEscape(name))
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}

	session := &Session{
		Name:      raw.Name,
		Date:      raw.Date,
		Duration:  time.Duration(raw.DurationMS) * time.Millisecond,
		TotalLaps: raw.TotalLaps,
	}
	if raw.Laps != nil {
		session.Laps = make([]Lap, 0, len(raw.Laps))
		for _, l := range raw.Laps {
			session.Laps = append(session.Laps, Lap{
				Driver:   l.Driver,
				Number:   l.Number,
				Team:     l.Team,
				Compound: l.Compound,
				LapTime:  millis(l.LapTimeMS),
			})
		}
	}
	if raw.Results != nil {
		session.Results = make([]ResultRow, 0, len(raw.Results))
		for _, r := range raw.Results {
			session.Results = append(session.Results, ResultRow{
				DriverID:           r.DriverID,
				Abbreviation:       r.Abbreviation,
				TeamName:           r.TeamName,
				Position:           r.Position,
				ClassifiedPosition: r.ClassifiedPosition,
				GridPosition:       r.GridPosition,
				Status:             r.Status,
				Points:             r.Points,
				Time:               millis(r.TimeMS),
				Q1:                 millis(r.Q1MS),
				Q2:                 millis(r.Q2MS),
				Q3:                 millis(r.Q3MS),
			})
		}
	}
	return session, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound, http.StatusNoContent:
		return fmt.Errorf("%s: %w", path, ErrNotLoaded)
	default:
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
}

func millis(ms *int64) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}

// parseTimeValue keeps the raw string when the upstream value is not a
// well-formed timestamp.
func parseTimeValue(s string) TimeValue {
	if s == "" {
		return TimeValue{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeValue{Time: t}
		}
	}
	return TimeValue{Raw: s}
}

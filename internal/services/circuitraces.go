package services

import (
	"context"
	"log/slog"

	"github.com/gridmetrics/ingest/internal/ingest"
	"github.com/gridmetrics/ingest/internal/models"
	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/refdata"
	"github.com/gridmetrics/ingest/internal/store"
)

// DocumentStore is the persistence surface the circuit/race job needs.
type DocumentStore interface {
	UpsertByID(ctx context.Context, collection, id string, fields any) (store.UpsertResult, error)
}

// CircuitRacesJob builds and upserts the circuit and race documents of
// one weekend, preferring live session data and falling back to the
// published schedule when the weekend has no usable data yet.
type CircuitRacesJob struct {
	provider provider.Client
	store    DocumentStore
	ref      refdata.Table
	log      *slog.Logger
}

// NewCircuitRacesJob creates a CircuitRacesJob instance.
func NewCircuitRacesJob(p provider.Client, s DocumentStore, ref refdata.Table, log *slog.Logger) *CircuitRacesJob {
	if log == nil {
		log = slog.Default()
	}
	return &CircuitRacesJob{provider: p, store: s, ref: ref, log: log}
}

// Process runs the job for one (year, round). A missing schedule row
// means no document can be written at all; anything less fatal degrades
// to a fallback-shaped document.
func (j *CircuitRacesJob) Process(ctx context.Context, year, round int) error {
	logCtx := j.log.With("year", year, "round", round)

	event, err := j.provider.Event(ctx, year, round)
	if err != nil {
		logCtx.Error("failed to fetch event", "error", err)
		return err
	}

	race := j.loadRaceSession(ctx, event, logCtx)

	schedule, err := j.provider.Schedule(ctx, year)
	if err != nil {
		logCtx.Error("failed to fetch schedule", "error", err)
		return err
	}
	fb, err := ingest.ResolveFallback(schedule, round)
	if err != nil {
		logCtx.Error("no schedule row for round", "error", err)
		return err
	}

	circuit := ingest.BuildCircuit(event, fb, race, j.ref)
	res, err := j.store.UpsertByID(ctx, store.CollectionCircuit, circuit.ID, circuit)
	if err != nil {
		logCtx.Error("circuit upsert failed", "error", err)
		return err
	}
	logCtx.Info("circuit upserted", "id", circuit.ID,
		"matched", res.Matched, "modified", res.Modified, "upserted", res.Upserted)

	raceDoc := j.buildRace(ctx, event, fb, race, circuit.ID, logCtx)
	res, err = j.store.UpsertByID(ctx, store.CollectionRaces, raceDoc.ID, raceDoc)
	if err != nil {
		logCtx.Error("race upsert failed", "error", err)
		return err
	}
	logCtx.Info("race upserted", "id", raceDoc.ID,
		"matched", res.Matched, "modified", res.Modified, "upserted", res.Upserted)
	return nil
}

// loadRaceSession probes the weekend's race session. Laps, results and
// total lap count are three independent probes; any one of them carrying
// data marks the session usable. Not-yet-run weekends fail all three.
func (j *CircuitRacesJob) loadRaceSession(ctx context.Context, event *provider.Event, logCtx *slog.Logger) *provider.Session {
	session, err := j.provider.LoadSession(ctx, event, provider.SessionRace)
	if err != nil {
		logCtx.Info("race session not loadable, using fallback", "error", err)
		return nil
	}
	if !session.Usable() {
		logCtx.Info("race session has no real data yet, using fallback")
		return nil
	}
	return session
}

func (j *CircuitRacesJob) buildRace(ctx context.Context, event *provider.Event, fb *ingest.Fallback, race *provider.Session, circuitID string, logCtx *slog.Logger) models.Race {
	location, name, date := fb.Location, fb.Name, fb.Date
	if race.Usable() {
		location, name = event.Location, event.Name
		date = event.Date.Format("2006-01-02")
	}

	doc := models.Race{
		ID:          models.RaceID(event.Year, location),
		Name:        name,
		Circuit:     circuitID,
		Date:        date,
		Finished:    race.Usable(),
		Sessions:    []models.SessionSummary{},
		RaceResults: []models.SessionResultRow{},
	}
	if race.Usable() && len(race.Results) > 0 {
		winner := race.Results[0].DriverID
		doc.Winner = &winner
	}

	if !race.Usable() {
		doc.Sessions = ingest.FallbackSummaries(fb)
		return doc
	}

	for _, sessionName := range ingest.SessionOrder(event.Format) {
		session, err := j.provider.LoadSession(ctx, event, sessionName)
		if err != nil {
			logCtx.Error("failed to load session for race document", "session", sessionName, "error", err)
			continue
		}
		summary, rows := ingest.BuildSessionSummary(session)
		doc.Sessions = append(doc.Sessions, summary)
		if sessionName == provider.SessionRace {
			doc.RaceResults = rows
		}
	}
	return doc
}

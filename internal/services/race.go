package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/results"
)

// RaceConfig holds configuration for the race job.
type RaceConfig struct {
	OutputDir string
}

// RaceJob extracts the official race classification of a weekend into
// race.json.
type RaceJob struct {
	provider provider.Client
	config   RaceConfig
	log      *slog.Logger
}

// NewRaceJob creates a RaceJob instance.
func NewRaceJob(p provider.Client, config RaceConfig, log *slog.Logger) *RaceJob {
	if log == nil {
		log = slog.Default()
	}
	return &RaceJob{provider: p, config: config, log: log}
}

// Process runs the race job for one (year, round).
func (j *RaceJob) Process(ctx context.Context, year, round int) (*JobResult, error) {
	logCtx := j.log.With("year", year, "round", round)
	logCtx.Info("processing race")

	dir, err := jobDir(j.config.OutputDir, year, round)
	if err != nil {
		return nil, err
	}

	event, err := j.provider.Event(ctx, year, round)
	if err != nil {
		logCtx.Error("failed to fetch event", "error", err)
		return nil, err
	}
	session, err := j.provider.LoadSession(ctx, event, provider.SessionRace)
	if err != nil {
		logCtx.Error("failed to load session", "error", err)
		return nil, err
	}

	rows, err := results.Race(session)
	if err != nil {
		logCtx.Error("no results found in session", "error", err)
		return nil, err
	}

	file := results.SessionFile{
		Session: session.Name,
		Event:   eventLabel(year, event.Name),
		Results: results.Ranked(rows),
	}
	path := filepath.Join(dir, "race.json")
	if err := writeJSON(path, file); err != nil {
		return nil, err
	}

	logCtx.Info("race results written", "path", path)
	return &JobResult{
		Message:  fmt.Sprintf("race for %d round %d processed", year, round),
		FilePath: path,
	}, nil
}

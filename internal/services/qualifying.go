package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/results"
)

// JobResult reports where a session job wrote its output.
type JobResult struct {
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
}

// QualifyingConfig holds configuration for the qualifying job.
type QualifyingConfig struct {
	OutputDir string
}

// QualifyingJob extracts the official qualifying classification of a
// weekend into qualifying.json.
type QualifyingJob struct {
	provider provider.Client
	config   QualifyingConfig
	log      *slog.Logger
}

// NewQualifyingJob creates a QualifyingJob instance.
func NewQualifyingJob(p provider.Client, config QualifyingConfig, log *slog.Logger) *QualifyingJob {
	if log == nil {
		log = slog.Default()
	}
	return &QualifyingJob{provider: p, config: config, log: log}
}

// Process runs the qualifying job for one (year, round).
func (j *QualifyingJob) Process(ctx context.Context, year, round int) (*JobResult, error) {
	logCtx := j.log.With("year", year, "round", round)
	logCtx.Info("processing qualifying")

	dir, err := jobDir(j.config.OutputDir, year, round)
	if err != nil {
		return nil, err
	}

	event, err := j.provider.Event(ctx, year, round)
	if err != nil {
		logCtx.Error("failed to fetch event", "error", err)
		return nil, err
	}
	session, err := j.provider.LoadSession(ctx, event, provider.SessionQualifying)
	if err != nil {
		logCtx.Error("failed to load session", "error", err)
		return nil, err
	}

	rows, err := results.Qualifying(session)
	if err != nil {
		logCtx.Error("no results found in session", "error", err)
		return nil, err
	}

	file := results.SessionFile{
		Session: session.Name,
		Event:   eventLabel(year, event.Name),
		Results: results.Ranked(rows),
	}
	path := filepath.Join(dir, "qualifying.json")
	if err := writeJSON(path, file); err != nil {
		return nil, err
	}

	logCtx.Info("qualifying results written", "path", path)
	return &JobResult{
		Message:  fmt.Sprintf("qualifying for %d round %d processed", year, round),
		FilePath: path,
	}, nil
}

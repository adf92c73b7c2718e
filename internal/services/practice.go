package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gridmetrics/ingest/internal/checkpoint"
	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/results"
)

// PracticeConfig holds configuration for the practice job.
type PracticeConfig struct {
	OutputDir string
}

// PracticeJob extracts practice and sprint session results for a
// weekend, writing one ordinal-keyed JSON file per session. Sessions
// already recorded in the checkpoint are skipped without fetching.
type PracticeJob struct {
	provider provider.Client
	config   PracticeConfig
	log      *slog.Logger
}

// NewPracticeJob creates a PracticeJob instance.
func NewPracticeJob(p provider.Client, config PracticeConfig, log *slog.Logger) *PracticeJob {
	if log == nil {
		log = slog.Default()
	}
	return &PracticeJob{provider: p, config: config, log: log}
}

// sessionPlan pairs a checkpoint key with the provider session name and
// the extraction path to use.
type sessionPlan struct {
	key      string
	session  string
	official bool // use the official classification instead of lap grouping
}

func practicePlan(event *provider.Event) []sessionPlan {
	plan := []sessionPlan{{key: "FP1", session: provider.SessionPractice1}}
	if event.HasSprint() {
		plan = append(plan,
			sessionPlan{key: "Sprint Qualifying", session: provider.SessionSprintQualifying, official: true},
			sessionPlan{key: "Sprint", session: provider.SessionSprint},
		)
	} else {
		plan = append(plan,
			sessionPlan{key: "FP2", session: provider.SessionPractice2},
			sessionPlan{key: "FP3", session: provider.SessionPractice3},
		)
	}
	return plan
}

// Process runs the practice job for one (year, round). The checkpoint
// map is saved once, at the end, even when individual sessions failed.
func (j *PracticeJob) Process(ctx context.Context, year, round int) error {
	logCtx := j.log.With("year", year, "round", round)

	dir, err := jobDir(j.config.OutputDir, year, round)
	if err != nil {
		return err
	}
	status, err := checkpoint.Load(dir)
	if err != nil {
		return err
	}

	event, err := j.provider.Event(ctx, year, round)
	if err != nil {
		return fmt.Errorf("fetch event: %w", err)
	}

	for _, plan := range practicePlan(event) {
		if status.Done(plan.key) {
			logCtx.Info("session already processed, skipping", "session", plan.key)
			continue
		}
		if err := j.processSession(ctx, event, plan, dir); err != nil {
			if errors.Is(err, results.ErrNoLapData) || errors.Is(err, results.ErrNoValidLaps) || errors.Is(err, provider.ErrNotLoaded) {
				logCtx.Info("session has no usable data yet, skipping", "session", plan.key, "reason", err)
				continue
			}
			logCtx.Error("session processing failed", "session", plan.key, "error", err)
			continue
		}
		status.Mark(plan.key)
		logCtx.Info("session processed", "session", plan.key)
	}

	if err := status.Save(dir); err != nil {
		return err
	}
	return nil
}

func (j *PracticeJob) processSession(ctx context.Context, event *provider.Event, plan sessionPlan, dir string) error {
	session, err := j.provider.LoadSession(ctx, event, plan.session)
	if err != nil {
		return err
	}

	var rows []results.PracticeRow
	if plan.official {
		rows, err = results.OfficialShort(session)
	} else {
		rows, err = results.Practice(session)
	}
	if err != nil {
		return err
	}

	file := results.SessionFile{
		Session: plan.key,
		Event:   eventLabel(event.Year, event.Name),
		Results: results.Ranked(rows),
	}
	name := fmt.Sprintf("practice_%s.json", strings.ToLower(plan.key))
	return writeJSON(filepath.Join(dir, name), file)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/gridmetrics/ingest/internal/config"
	"github.com/gridmetrics/ingest/internal/logging"
	"github.com/gridmetrics/ingest/internal/provider"
	"github.com/gridmetrics/ingest/internal/services"
)

func main() {
	year, round, ok := parseArgs()
	if !ok {
		fmt.Fprintln(os.Stderr, "usage: practice-results <year> <round>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closer := logging.NewJobLogger(cfg.LogDir, "practice_results")
	defer closer.Close()
	slog.SetDefault(logger)

	client := provider.NewHTTPClient(cfg.ProviderBaseURL)
	job := services.NewPracticeJob(client, services.PracticeConfig{OutputDir: cfg.OutputDir}, logger)

	if err := job.Process(context.Background(), year, round); err != nil {
		logger.Error("practice job failed", "year", year, "round", round, "error", err)
		fmt.Fprintf(os.Stderr, "practice job failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("sessions for %d round %d processed\n", year, round)
}

func parseArgs() (year, round int, ok bool) {
	if len(os.Args) != 3 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(os.Args[1])
	if err != nil {
		return 0, 0, false
	}
	round, err = strconv.Atoi(os.Args[2])
	if err != nil {
		return 0, 0, false
	}
	return year, round, true
}

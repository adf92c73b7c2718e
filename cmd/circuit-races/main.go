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
	"github.com/gridmetrics/ingest/internal/refdata"
	"github.com/gridmetrics/ingest/internal/services"
	"github.com/gridmetrics/ingest/internal/store"
)

func main() {
	year, round, ok := parseArgs()
	if !ok {
		fmt.Fprintln(os.Stderr, "usage: circuit-races <year> <round>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closer := logging.NewJobLogger(cfg.LogDir, "circuit_races")
	defer closer.Close()
	slog.SetDefault(logger)

	ctx := context.Background()

	mongoClient, err := store.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("failed to connect to document store", "error", err)
		fmt.Fprintf(os.Stderr, "failed to connect to document store: %v\n", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)

	ref, err := refdata.Load(cfg.RefDataPath)
	if err != nil {
		logger.Error("failed to load reference data", "path", cfg.RefDataPath, "error", err)
		fmt.Fprintf(os.Stderr, "failed to load reference data: %v\n", err)
		os.Exit(1)
	}

	client := provider.NewHTTPClient(cfg.ProviderBaseURL)
	job := services.NewCircuitRacesJob(client, store.New(mongoClient, cfg.MongoDatabase), ref, logger)

	if err := job.Process(ctx, year, round); err != nil {
		logger.Error("circuit-races job failed", "year", year, "round", round, "error", err)
		fmt.Fprintf(os.Stderr, "circuit-races job failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("circuit and race documents for %d round %d saved\n", year, round)
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

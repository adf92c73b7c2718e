// Command catalog maintains the hand-curated documents: drivers, teams
// and the editorial fields of circuits. Input documents are read from
// JSON files so the same payloads can be replayed across environments.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/gridmetrics/ingest/internal/catalog"
	"github.com/gridmetrics/ingest/internal/config"
	"github.com/gridmetrics/ingest/internal/gcp"
	"github.com/gridmetrics/ingest/internal/logging"
	"github.com/gridmetrics/ingest/internal/models"
	"github.com/gridmetrics/ingest/internal/store"
)

const usage = `usage: catalog <command> [args]

commands:
  save-driver <id> <driver.json> [translate]  upsert a driver document
  save-team <id> <team.json>                  upsert a team document
  update-circuit <id> <patch.json>            merge fields into a circuit
  delete <collection> <id>                    delete a circuit or race document
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closer := logging.NewJobLogger(cfg.LogDir, "catalog")
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

	var translator catalog.Translator
	if cfg.VertexProjectID != "" {
		vertex, err := gcp.NewVertexClient(ctx, cfg.VertexProjectID, cfg.VertexRegion)
		if err != nil {
			logger.Error("failed to create translation client", "error", err)
			fmt.Fprintf(os.Stderr, "failed to create translation client: %v\n", err)
			os.Exit(1)
		}
		defer vertex.Close()
		translator = vertex
	}

	cat := catalog.New(store.New(mongoClient, cfg.MongoDatabase), translator, cfg.TargetLanguage, logger)

	if err := run(ctx, cat, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("catalog command failed", "command", os.Args[1], "error", err)
		fmt.Fprintf(os.Stderr, "catalog %s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cat *catalog.Catalog, command string, args []string) error {
	switch command {
	case "save-driver":
		if len(args) < 2 {
			return fmt.Errorf("save-driver needs <id> and <driver.json>")
		}
		var driver models.Driver
		if err := readJSON(args[1], &driver); err != nil {
			return err
		}
		translateBio := len(args) > 2 && args[2] == "translate"
		res, err := cat.SaveDriver(ctx, args[0], driver, translateBio)
		if err != nil {
			return err
		}
		fmt.Printf("driver %s saved (matched=%d modified=%d)\n", args[0], res.Matched, res.Modified)
		return nil

	case "save-team":
		if len(args) != 2 {
			return fmt.Errorf("save-team needs <id> and <team.json>")
		}
		var team models.Team
		if err := readJSON(args[1], &team); err != nil {
			return err
		}
		res, err := cat.SaveTeam(ctx, args[0], team)
		if err != nil {
			return err
		}
		fmt.Printf("team %s saved (matched=%d modified=%d)\n", args[0], res.Matched, res.Modified)
		return nil

	case "update-circuit":
		if len(args) != 2 {
			return fmt.Errorf("update-circuit needs <id> and <patch.json>")
		}
		patch, err := readPatch(args[1])
		if err != nil {
			return err
		}
		res, err := cat.UpdateCircuit(ctx, args[0], patch)
		if err != nil {
			return err
		}
		fmt.Printf("circuit %s updated (matched=%d modified=%d)\n", args[0], res.Matched, res.Modified)
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("delete needs <collection> and <id>")
		}
		deleted, err := cat.Delete(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("deleted %d document(s)\n", deleted)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// circuitPatchFile is the on-disk shape of an update-circuit payload.
type circuitPatchFile struct {
	FirstGP      *string           `json:"first_gp"`
	NumberOfLaps *int              `json:"number_of_laps"`
	Length       *float64          `json:"length"`
	RaceDistance *float64          `json:"race_distance"`
	LapRecord    *models.LapRecord `json:"lap_record"`
	Questions    map[string]string `json:"questions"`
}

func readPatch(path string) (catalog.CircuitPatch, error) {
	var file circuitPatchFile
	if err := readJSON(path, &file); err != nil {
		return catalog.CircuitPatch{}, err
	}
	return catalog.CircuitPatch{
		FirstGP:      file.FirstGP,
		NumberOfLaps: file.NumberOfLaps,
		Length:       file.Length,
		RaceDistance: file.RaceDistance,
		LapRecord:    file.LapRecord,
		Questions:    file.Questions,
	}, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Package services wires the ingestion jobs: per-session result
// extraction with checkpointing, and the circuit/race document pipeline.
// Each job processes its sessions strictly sequentially; a failed
// session is logged and skipped, never aborting the rest of the job.
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// jobDir returns (and creates) the output directory of a (year, round)
// job.
func jobDir(outputDir string, year, round int) (string, error) {
	dir := filepath.Join(outputDir, strconv.Itoa(year), strconv.Itoa(round))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create job directory: %w", err)
	}
	return dir, nil
}

// writeJSON writes a document as indented JSON.
func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// eventLabel is the "event" field of a session file.
func eventLabel(year int, eventName string) string {
	return fmt.Sprintf("%d %s", year, eventName)
}

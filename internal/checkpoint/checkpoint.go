// Package checkpoint tracks which sessions of a (year, round) job have
// already been persisted, so re-runs skip them entirely. The map is read
// once at job start and written back once at job end; a crash mid-job
// loses that run's marks, which is acceptable because jobs are safely
// re-runnable from scratch.
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileName = "status.json"

// Status maps session names to "already persisted".
type Status map[string]bool

// Load reads the status file from the job directory. A missing file
// yields an empty status.
func Load(dir string) (Status, error) {
	raw, err := os.ReadFile(filepath.Join(dir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Status{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read status file: %w", err)
	}
	var s Status
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse status file: %w", err)
	}
	return s, nil
}

// Done reports whether a session was already persisted.
func (s Status) Done(session string) bool { return s[session] }

// Mark records a session as persisted. Written to disk only on Save.
func (s Status) Mark(session string) { s[session] = true }

// Save writes the whole map to the job directory.
func (s Status) Save(dir string) error {
	raw, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), raw, 0o644); err != nil {
		return fmt.Errorf("write status file: %w", err)
	}
	return nil
}

// Package refdata loads the static reference table keyed by event
// location: country flags and track map asset paths that the upstream
// provider does not carry.
package refdata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Track references the two track outline assets of a location.
type Track struct {
	Black *string `json:"black"`
	White *string `json:"white"`
}

// Entry is the static reference data of one location.
type Entry struct {
	CountryFlag *string `json:"country_flag"`
	Track       Track   `json:"track"`
	Circuit     *string `json:"circuit"`
}

// Table maps event locations to their static reference data.
type Table map[string]Entry

// Lookup returns the entry for a location. Unknown locations are normal;
// document builders fall back to nil asset references.
func (t Table) Lookup(location string) (Entry, bool) {
	e, ok := t[location]
	return e, ok
}

type refFile struct {
	GP map[string]Entry `json:"gp"`
}

// Load reads the reference table from a JSON file shaped as
// {"gp": {"<location>": {...}}}.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	var f refFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse reference data %s: %w", path, err)
	}
	return Table(f.GP), nil
}

package results

import (
	"bytes"
	"encoding/json"
)

// ordinals are the ranking keys of a session-result mapping. Anything
// beyond twentieth is dropped.
var ordinals = [...]string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth",
}

// MaxRanked is the number of entries an ordinal mapping can carry.
const MaxRanked = len(ordinals)

// OrdinalResults holds ranked rows as an ordered list and serializes
// them as an object keyed by English ordinal words, the shape the
// presentation layer consumes.
type OrdinalResults struct {
	rows []any
}

// Add appends a row at the next rank. Rows beyond the twentieth are
// silently dropped.
func (o *OrdinalResults) Add(row any) {
	if len(o.rows) >= MaxRanked {
		return
	}
	o.rows = append(o.rows, row)
}

// Len returns the number of ranked rows.
func (o *OrdinalResults) Len() int { return len(o.rows) }

// MarshalJSON writes the rows as an object in rank order.
func (o OrdinalResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, row := range o.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ordinals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SessionFile is the top-level shape of a per-session result file.
type SessionFile struct {
	Session string          `json:"session"`
	Event   string          `json:"event"`
	Results *OrdinalResults `json:"results"`
}

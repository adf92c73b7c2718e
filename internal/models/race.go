package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// SessionResultRow is one ranked entry of a session's result list inside
// a race document.
type SessionResultRow struct {
	Driver    *string `bson:"driver" json:"driver"`
	Position  int     `bson:"position" json:"position"`
	TotalTime *string `bson:"total_time" json:"total_time"`
}

// Podium is the denormalized top-three convenience object emitted for
// sessions with at least three classified results.
type Podium struct {
	First  SessionResultRow `bson:"first" json:"first"`
	Second SessionResultRow `bson:"second" json:"second"`
	Third  SessionResultRow `bson:"third" json:"third"`
}

// SessionResult is the session_result field of a session summary. It
// serializes as a podium object when three or more results exist, as the
// plain row list when fewer do, and as an empty object when the session
// produced no results.
type SessionResult struct {
	Podium *Podium
	Rows   []SessionResultRow
}

func (r SessionResult) value() any {
	switch {
	case r.Podium != nil:
		return *r.Podium
	case r.Rows != nil:
		return r.Rows
	default:
		return struct{}{}
	}
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (r SessionResult) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.value())
}

// MarshalJSON implements json.Marshaler.
func (r SessionResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

// SessionSummary is one entry of a race document's session list.
type SessionSummary struct {
	Name      string        `bson:"name" json:"name"`
	Date      string        `bson:"date" json:"date"`
	StartTime *string       `bson:"start_time" json:"start_time"`
	EndTime   *string       `bson:"end_time" json:"end_time"`
	Result    SessionResult `bson:"session_result" json:"session_result"`
}

// Race is the race-weekend document, identified by gp_<year>_<location>.
// Finished is true only when a live race session was loaded; Winner is
// nil until then. The race's own result list is duplicated at top level
// for the presentation layer.
type Race struct {
	ID          string             `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Circuit     string             `bson:"circuit" json:"circuit"`
	Date        string             `bson:"date" json:"date"`
	Finished    bool               `bson:"finished" json:"finished"`
	Winner      *string            `bson:"winner" json:"winner"`
	Sessions    []SessionSummary   `bson:"sessions" json:"sessions"`
	RaceResults []SessionResultRow `bson:"race_results" json:"race_results"`
}

// Package models defines the document shapes persisted to the store.
// Documents are addressed by deterministic string ids (circuit_<location>,
// gp_<year>_<location>, driver_<id>, team_<id>) so re-running a job
// upserts the same document.
package models

import "fmt"

// Country holds the denormalized country block of a circuit document.
type Country struct {
	Name string  `bson:"name" json:"name"`
	Flag *string `bson:"flag" json:"flag"`
}

// TrackMap references the two track outline assets for a circuit.
type TrackMap struct {
	Black *string `bson:"black" json:"black"`
	White *string `bson:"white" json:"white"`
}

// CircuitMap groups the static map assets of a circuit.
type CircuitMap struct {
	Track   TrackMap `bson:"track" json:"track"`
	Circuit *string  `bson:"circuit" json:"circuit"`
}

// LapRecord is the fastest-lap record of a circuit. Time and Driver hold
// the literal "N/A" when no fastest lap exists; Year stays populated
// when it can be derived from the event.
type LapRecord struct {
	Time   string `bson:"time" json:"time"`
	Driver string `bson:"driver" json:"driver"`
	Year   *int   `bson:"year" json:"year"`
}

// LapRecordNA is the sentinel value for the Time and Driver fields.
const LapRecordNA = "N/A"

// Circuit is the circuit document, identified by circuit_<location>.
type Circuit struct {
	ID           string     `bson:"_id" json:"_id"`
	Name         string     `bson:"name" json:"name"`
	OfficialName string     `bson:"official_name" json:"official_name"`
	Country      Country    `bson:"country" json:"country"`
	FirstGP      string     `bson:"first_gp" json:"first_gp"`
	Map          CircuitMap `bson:"map" json:"map"`
	NumberOfLaps *int       `bson:"number_of_laps" json:"number_of_laps"`
	Length       *float64   `bson:"length" json:"length"`
	RaceDistance *float64   `bson:"race_distance" json:"race_distance"`
	LapRecord    LapRecord  `bson:"lap_record" json:"lap_record"`
}

// CircuitID builds the document id for a circuit location.
func CircuitID(location string) string {
	return "circuit_" + location
}

// RaceID builds the document id for a race weekend.
func RaceID(year int, location string) string {
	return fmt.Sprintf("gp_%d_%s", year, location)
}

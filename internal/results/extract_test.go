package results

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmetrics/ingest/internal/provider"
)

func dur(d time.Duration) *time.Duration { return &d }
func intp(v int) *int                    { return &v }
func floatp(v float64) *float64          { return &v }

func TestRaceCapsAtTwenty(t *testing.T) {
	session := &provider.Session{Name: "Race"}
	for i := 22; i >= 1; i-- { // reverse order on purpose
		session.Results = append(session.Results, provider.ResultRow{
			DriverID:           fmt.Sprintf("Driver%02d", i),
			Position:           intp(i),
			ClassifiedPosition: fmt.Sprintf("%d", i),
			GridPosition:       intp(i),
			Status:             "Finished",
			Points:             floatp(float64(25 - i)),
			Time:               dur(time.Duration(90+i) * time.Minute),
		})
	}

	rows, err := Race(session)
	require.NoError(t, err)
	require.Len(t, rows, 20)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Position.Position, "rows must be in ascending official position")
	}
	assert.Equal(t, "driver01", rows[0].Driver)

	ranked := Ranked(rows)
	data, err := json.Marshal(ranked)
	require.NoError(t, err)

	var keyed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keyed))
	assert.Len(t, keyed, 20)
	assert.Contains(t, keyed, "first")
	assert.Contains(t, keyed, "twentieth")
	assert.NotContains(t, keyed, "twentyfirst")
}

func TestRaceDropsUnclassifiedRows(t *testing.T) {
	session := &provider.Session{
		Name: "Race",
		Results: []provider.ResultRow{
			{DriverID: "norris", Position: intp(1), Status: "Finished"},
			{DriverID: "stroll", Position: nil, Status: "DNS"},
		},
	}

	rows, err := Race(session)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "norris", rows[0].Driver)
}

func TestRaceNotLoaded(t *testing.T) {
	_, err := Race(&provider.Session{Name: "Race"})
	require.ErrorIs(t, err, provider.ErrNotLoaded)
}

func TestQualifyingFormatsSegments(t *testing.T) {
	session := &provider.Session{
		Name: "Qualifying",
		Results: []provider.ResultRow{
			{
				DriverID: "LECLERC",
				Position: intp(1),
				Q1:       dur(75*time.Second + 123*time.Millisecond),
				Q2:       dur(74*time.Second + 800*time.Millisecond),
				Q3:       nil,
			},
		},
	}

	rows, err := Qualifying(session)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "leclerc", rows[0].Driver)
	require.NotNil(t, rows[0].TotalTime.Q1)
	assert.Equal(t, "1:15.123", *rows[0].TotalTime.Q1)
	require.NotNil(t, rows[0].TotalTime.Q2)
	assert.Equal(t, "1:14.800", *rows[0].TotalTime.Q2)
	assert.Nil(t, rows[0].TotalTime.Q3)
}

func TestPracticeRanksFastestLaps(t *testing.T) {
	session := &provider.Session{
		Name: "Practice 1",
		Laps: []provider.Lap{
			{Driver: "NOR", Team: "McLaren", Compound: "SOFT", LapTime: dur(76 * time.Second)},
			{Driver: "NOR", Team: "McLaren", Compound: "MEDIUM", LapTime: dur(75 * time.Second)},
			{Driver: "VER", Team: "Red Bull Racing", Compound: "SOFT", LapTime: dur(74*time.Second + 500*time.Millisecond)},
			{Driver: "HAM", Team: "Ferrari", Compound: "SOFT", LapTime: nil},
		},
	}

	rows, err := Practice(session)
	require.NoError(t, err)
	require.Len(t, rows, 2, "driver with no valid lap is dropped")

	assert.Equal(t, 1, rows[0].Position)
	require.NotNil(t, rows[0].Driver)
	assert.Equal(t, "max_verstappen", *rows[0].Driver)
	require.NotNil(t, rows[0].Time)
	assert.Equal(t, "1:14.500", *rows[0].Time)

	assert.Equal(t, 2, rows[1].Position)
	require.NotNil(t, rows[1].Driver)
	assert.Equal(t, "norris", *rows[1].Driver)
	require.NotNil(t, rows[1].Compound)
	assert.Equal(t, "MEDIUM", *rows[1].Compound, "compound comes from the fastest lap")
}

func TestPracticeAllInvalidLapsYieldsNoOutput(t *testing.T) {
	session := &provider.Session{
		Name: "Practice 2",
		Laps: []provider.Lap{
			{Driver: "NOR", LapTime: nil},
			{Driver: "VER", LapTime: nil},
		},
	}

	rows, err := Practice(session)
	require.ErrorIs(t, err, ErrNoValidLaps)
	assert.Nil(t, rows)
}

func TestPracticeEmptyLapTable(t *testing.T) {
	_, err := Practice(&provider.Session{Name: "Practice 3", Laps: []provider.Lap{}})
	require.ErrorIs(t, err, ErrNoLapData)

	_, err = Practice(&provider.Session{Name: "Practice 3"})
	require.ErrorIs(t, err, provider.ErrNotLoaded)
}

func TestOfficialShort(t *testing.T) {
	session := &provider.Session{
		Name: "Sprint Qualifying",
		Results: []provider.ResultRow{
			{Abbreviation: "PIA", TeamName: "McLaren", Position: intp(1), Time: dur(71 * time.Second)},
			{Abbreviation: "XXX", TeamName: "Unknown", Position: intp(2)},
		},
	}

	rows, err := OfficialShort(session)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Driver)
	assert.Equal(t, "piastri", *rows[0].Driver)
	assert.Nil(t, rows[0].Compound, "compound is not available for short official results")
	assert.Nil(t, rows[1].Driver, "unknown abbreviation has no canonical id")
}

func TestOrdinalMarshalOrder(t *testing.T) {
	o := &OrdinalResults{}
	o.Add(map[string]int{"position": 1})
	o.Add(map[string]int{"position": 2})
	o.Add(map[string]int{"position": 3})

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"first":{"position":1},"second":{"position":2},"third":{"position":3}}`, string(data))
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestSessionResultMarshalsPodium(t *testing.T) {
	result := SessionResult{Podium: &Podium{
		First:  SessionResultRow{Driver: strptr("verstappen"), Position: 1, TotalTime: strptr("1:30:12:345")},
		Second: SessionResultRow{Driver: strptr("norris"), Position: 2, TotalTime: strptr("1:30:14:021")},
		Third:  SessionResultRow{Driver: strptr("leclerc"), Position: 3, TotalTime: strptr("1:30:20:777")},
	}}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]SessionResultRow
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "verstappen", *decoded["first"].Driver)
	assert.Equal(t, 3, decoded["third"].Position)
}

func TestSessionResultMarshalsShortList(t *testing.T) {
	result := SessionResult{Rows: []SessionResultRow{
		{Driver: strptr("alonso"), Position: 1, TotalTime: nil},
	}}

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"driver":"alonso","position":1,"total_time":null}]`, string(raw))
}

func TestSessionResultMarshalsEmptyObject(t *testing.T) {
	raw, err := json.Marshal(SessionResult{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestDocumentIDs(t *testing.T) {
	assert.Equal(t, "circuit_monza", CircuitID("monza"))
	assert.Equal(t, "gp_2025_monza", RaceID(2025, "monza"))
	assert.Equal(t, "driver_norris", DriverID("norris"))
	assert.Equal(t, "team_mclaren", TeamID("mclaren"))
}

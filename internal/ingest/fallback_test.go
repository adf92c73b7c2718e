package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmetrics/ingest/internal/provider"
)

func scheduleFixture() provider.Schedule {
	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04:05", s)
		return t
	}
	return provider.Schedule{
		{
			Round:             7,
			EventName:         "Emilia Romagna Grand Prix",
			OfficialEventName: "FORMULA 1 AWS GRAN PREMIO DEL MADE IN ITALY E DELL'EMILIA-ROMAGNA 2025",
			Location:          "Imola",
			Country:           "Italy",
			Format:            provider.FormatConventional,
			EventDate:         date("2025-05-18 00:00:00"),
			Sessions: []provider.ScheduledSession{
				{Name: "Practice 1", Local: provider.TimeValue{Time: date("2025-05-16 13:30:00")}, UTC: provider.TimeValue{Time: date("2025-05-16 11:30:00")}},
				{Name: "Practice 2", Local: provider.TimeValue{Time: date("2025-05-16 17:00:00")}, UTC: provider.TimeValue{Time: date("2025-05-16 15:00:00")}},
				{Name: ""},
				{Name: "Qualifying", Local: provider.TimeValue{Raw: "TBC"}, UTC: provider.TimeValue{Raw: "TBC"}},
				{Name: "Race", Local: provider.TimeValue{Time: date("2025-05-18 15:00:00")}, UTC: provider.TimeValue{Time: date("2025-05-18 13:00:00")}},
			},
		},
	}
}

func TestResolveFallback(t *testing.T) {
	fb, err := ResolveFallback(scheduleFixture(), 7)
	require.NoError(t, err)

	assert.Equal(t, "2025-05-18", fb.Date)
	assert.Equal(t, "Imola", fb.Location)
	assert.Equal(t, "Italy", fb.Country)

	require.Len(t, fb.Sessions, 4, "the empty slot must be skipped")
	assert.Equal(t, "Practice 1", fb.Sessions[0].Name)
	assert.Equal(t, "2025-05-16 13:30:00", fb.Sessions[0].DateLocal)
	assert.Equal(t, "2025-05-16 11:30:00", fb.Sessions[0].DateUTC)
	assert.Equal(t, "TBC", fb.Sessions[2].DateLocal, "non-timestamp values pass through raw")
}

func TestResolveFallbackMissingRound(t *testing.T) {
	fb, err := ResolveFallback(scheduleFixture(), 12)
	require.ErrorIs(t, err, ErrRoundNotInSchedule)
	assert.Nil(t, fb, "no document material may be produced for an unknown round")
}

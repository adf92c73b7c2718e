// Package timefmt renders durations as the display clocks used across
// session and circuit documents. The three variants pad differently and
// are kept as separate functions on purpose: TotalTime drops the hours
// field when it is zero, ElapsedTime always carries it, and LapTime never
// has one.
package timefmt

import (
	"fmt"
	"time"
)

// TotalTime formats a session duration as the race clock used in circuit
// and session-summary documents: "H:MM:SS:mmm" once the hour is reached,
// "MM:SS:mmm" otherwise. Returns nil for absent or negative durations.
func TotalTime(d *time.Duration) *string {
	ms, ok := splitMillis(d)
	if !ok {
		return nil
	}
	var s string
	if ms.hours > 0 {
		s = fmt.Sprintf("%d:%02d:%02d:%03d", ms.hours, ms.minutes, ms.seconds, ms.millis)
	} else {
		s = fmt.Sprintf("%02d:%02d:%03d", ms.minutes, ms.seconds, ms.millis)
	}
	return &s
}

// ElapsedTime formats a race elapsed time as "HH:MM:SS.mmm". The hours
// field is always present. Returns nil for absent or negative durations.
func ElapsedTime(d *time.Duration) *string {
	ms, ok := splitMillis(d)
	if !ok {
		return nil
	}
	s := fmt.Sprintf("%02d:%02d:%02d.%03d", ms.hours, ms.minutes, ms.seconds, ms.millis)
	return &s
}

// LapTime formats a lap or gap time as "M:SS.mmm" with unpadded minutes.
// Returns nil for absent or negative durations.
func LapTime(d *time.Duration) *string {
	ms, ok := splitMillis(d)
	if !ok {
		return nil
	}
	minutes := ms.hours*60 + ms.minutes
	s := fmt.Sprintf("%d:%02d.%03d", minutes, ms.seconds, ms.millis)
	return &s
}

type clock struct {
	hours   int64
	minutes int64
	seconds int64
	millis  int64
}

// splitMillis rounds to the nearest millisecond before decomposing, so a
// value like 59.9995s rolls into the next minute instead of printing 60
// seconds.
func splitMillis(d *time.Duration) (clock, bool) {
	if d == nil || *d < 0 {
		return clock{}, false
	}
	total := d.Round(time.Millisecond).Milliseconds()
	return clock{
		hours:   total / 3_600_000,
		minutes: total / 60_000 % 60,
		seconds: total / 1000 % 60,
		millis:  total % 1000,
	}, true
}

package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dur(d time.Duration) *time.Duration { return &d }

func TestTotalTime(t *testing.T) {
	cases := []struct {
		name string
		in   *time.Duration
		want string
	}{
		{"under a minute", dur(42*time.Second + 7*time.Millisecond), "00:42:007"},
		{"minute and a half", dur(90*time.Second + 500*time.Millisecond), "01:30:500"},
		{"over an hour", dur(2*time.Hour + 13*time.Minute + 45*time.Second + 123*time.Millisecond), "2:13:45:123"},
		{"zero", dur(0), "00:00:000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TotalTime(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestTotalTimeAbsent(t *testing.T) {
	assert.Nil(t, TotalTime(nil))
	assert.Nil(t, TotalTime(dur(-time.Second)))
}

func TestElapsedTime(t *testing.T) {
	got := ElapsedTime(dur(time.Hour + 31*time.Minute + 44*time.Second + 904*time.Millisecond))
	require.NotNil(t, got)
	assert.Equal(t, "01:31:44.904", *got)

	got = ElapsedTime(dur(90*time.Second + 500*time.Millisecond))
	require.NotNil(t, got)
	assert.Equal(t, "00:01:30.500", *got)

	assert.Nil(t, ElapsedTime(nil))
}

func TestLapTime(t *testing.T) {
	got := LapTime(dur(65*time.Second + 250*time.Millisecond))
	require.NotNil(t, got)
	assert.Equal(t, "1:05.250", *got)

	got = LapTime(dur(58*time.Second + 61*time.Millisecond))
	require.NotNil(t, got)
	assert.Equal(t, "0:58.061", *got)

	assert.Nil(t, LapTime(nil))
}

// Rounding at the millisecond boundary must carry into the next field
// rather than print a seconds value of 60.
func TestRoundingRollsOver(t *testing.T) {
	edge := dur(59*time.Second + 999*time.Millisecond + 500*time.Microsecond)

	got := LapTime(edge)
	require.NotNil(t, got)
	assert.Equal(t, "1:00.000", *got)

	got = TotalTime(edge)
	require.NotNil(t, got)
	assert.Equal(t, "01:00:000", *got)

	hourEdge := dur(59*time.Minute + 59*time.Second + 999*time.Millisecond + 700*time.Microsecond)
	got = TotalTime(hourEdge)
	require.NotNil(t, got)
	assert.Equal(t, "1:00:00:000", *got)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "9:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "12", wantErr: true},
		{in: "12:00:00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestDurationMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 90, DurationMinutes("09:00", "10:30"))
	assert.Equal(t, 0, DurationMinutes("12:00", "12:00"))

	// Honest about misordered input: callers guard, the calculator reports.
	assert.Equal(t, -60, DurationMinutes("10:00", "09:00"))

	// Malformed input degrades to zero instead of failing a whole day view.
	assert.Equal(t, 0, DurationMinutes("bogus", "10:00"))
	assert.Equal(t, 0, DurationMinutes("10:00", "bogus"))
}

func TestAddMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11:00", AddMinutes("10:00", 60))
	assert.Equal(t, "09:15", AddMinutes("08:45", 30))
	assert.Equal(t, "00:30", AddMinutes("23:30", 60), "wraps past midnight")
	assert.Equal(t, "23:00", AddMinutes("00:00", -60), "wraps backwards")
	assert.Equal(t, "bogus", AddMinutes("bogus", 60), "unparseable input passes through")
}

func TestFormatTimeOfDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "09:05", FormatTimeOfDay(545))
	assert.Equal(t, "00:10", FormatTimeOfDay(minutesPerDay+10))
	assert.Equal(t, "23:50", FormatTimeOfDay(-10))
}

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"21:00", 1260, false},
		{"23:59", 1439, false},
		{"09:30", 570, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
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

func TestTimeOfDayString(t *testing.T) {
	// Round trip preserves the zero-padded form, so minute comparison stays
	// equivalent to the original lexicographic string comparison.
	for _, s := range []string{"00:00", "08:05", "09:30", "21:00", "23:59"} {
		parsed, err := ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d)

	_, err = ParseDate("01-01-2024")
	assert.Error(t, err)
	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

package booking

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a single day, in minutes since
// midnight. Integer comparison preserves the chronological ordering that the
// zero-padded "HH:MM" string form guarantees lexicographically.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len("15:04") {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustTimeOfDay is ParseTimeOfDay for trusted constants; it panics on error.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseDate validates a calendar date in YYYY-MM-DD form and returns it
// normalized. Bookings carry dates as plain strings; equality is exact.
func ParseDate(s string) (string, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d.Format("2006-01-02"), nil
}

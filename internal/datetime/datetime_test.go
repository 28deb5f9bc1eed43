package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNow pins the package clock for the duration of one test.
func stubNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = prev })
}

var reference = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"RFC 3339", "2025-03-15T08:30:00Z", true},
		{"no zone", "2025-03-15T08:30:00", true},
		{"date only", "2025-03-15", true},
		{"space separated", "2025-03-15 08:30:00", true},
		{"garbage", "soon", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, ok := ParseDate(tc.input)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, 2025, parsed.Year())
			}
		})
	}

	// Date-only input resolves to midnight.
	parsed, ok := ParseDate("2025-03-15")
	require.True(t, ok)
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())
}

func TestParseClock(t *testing.T) {
	hour, minute, ok := ParseClock("14:30")
	require.True(t, ok)
	assert.Equal(t, 14, hour)
	assert.Equal(t, 30, minute)

	hour, minute, ok = ParseClock("9:05")
	require.True(t, ok)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 5, minute)

	for _, bad := range []string{"24:00", "12:60", "12:3", "noon", "", "12:30:00"} {
		_, _, ok := ParseClock(bad)
		assert.False(t, ok, bad)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 15, 2025", FormatDate(reference))
	assert.Equal(t, InvalidDate, FormatDate(time.Time{}))
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		clock string
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"14:30", "2:30 PM"},
		{"23:59", "11:59 PM"},
		{"24:00", InvalidTime},
		{"", InvalidTime},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTime(tc.clock), tc.clock)
	}
}

func TestRelativeTime(t *testing.T) {
	stubNow(t, reference)

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds ago", reference.Add(-30 * time.Second), "just now"},
		{"seconds ahead", reference.Add(30 * time.Second), "in a moment"},
		{"one minute ago", reference.Add(-90 * time.Second), "1 minute ago"},
		{"minutes ago", reference.Add(-5 * time.Minute), "5 minutes ago"},
		{"minutes ahead", reference.Add(5 * time.Minute), "in 5 minutes"},
		{"one hour ahead", reference.Add(90 * time.Minute), "in 1 hour"},
		{"hours ago", reference.Add(-3 * time.Hour), "3 hours ago"},
		{"days ago", reference.Add(-2 * 24 * time.Hour), "2 days ago"},
		{"days ahead", reference.Add(3 * 24 * time.Hour), "in 3 days"},
		{"a week out falls back to the date", reference.Add(8 * 24 * time.Hour), "Mar 23, 2025"},
		{"zero time", time.Time{}, InvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeTime(tc.at))
		})
	}
}

func TestIsToday(t *testing.T) {
	stubNow(t, reference)

	assert.True(t, IsToday(reference.Add(-11*time.Hour)))
	assert.True(t, IsToday(reference.Add(11*time.Hour)))
	assert.False(t, IsToday(reference.Add(24*time.Hour)))
	assert.False(t, IsToday(reference.Add(-24*time.Hour)))
	assert.False(t, IsToday(time.Time{}))
}

func TestIsWithinDays(t *testing.T) {
	stubNow(t, reference)

	assert.True(t, IsWithinDays(reference.Add(2*24*time.Hour), 3))
	assert.True(t, IsWithinDays(reference.Add(time.Hour), 1))
	assert.False(t, IsWithinDays(reference.Add(4*24*time.Hour), 3))
	assert.False(t, IsWithinDays(reference.Add(-time.Hour), 3)) // already past
	assert.False(t, IsWithinDays(reference.Add(time.Hour), -1))
	assert.False(t, IsWithinDays(time.Time{}, 3))
}

func TestIsAtLeastHoursAhead(t *testing.T) {
	stubNow(t, reference)

	assert.True(t, IsAtLeastHoursAhead(reference.Add(3*time.Hour), 2))
	assert.True(t, IsAtLeastHoursAhead(reference.Add(2*time.Hour), 2)) // boundary inclusive
	assert.False(t, IsAtLeastHoursAhead(reference.Add(time.Hour), 2))
	assert.False(t, IsAtLeastHoursAhead(reference.Add(-time.Hour), 0))
	assert.False(t, IsAtLeastHoursAhead(time.Time{}, 1))
}

func TestCombineDateAndTime(t *testing.T) {
	date := time.Date(2025, time.March, 15, 23, 45, 59, 0, time.UTC)

	combined, ok := CombineDateAndTime(date, "14:30")
	require.True(t, ok)
	assert.Equal(t, 14, combined.Hour())
	assert.Equal(t, 30, combined.Minute())
	assert.Equal(t, 0, combined.Second())
	assert.Equal(t, date.Year(), combined.Year())
	assert.Equal(t, date.Month(), combined.Month())
	assert.Equal(t, date.Day(), combined.Day())

	// The input date is untouched.
	assert.Equal(t, 23, date.Hour())

	_, ok = CombineDateAndTime(date, "25:00")
	assert.False(t, ok)
	_, ok = CombineDateAndTime(time.Time{}, "14:30")
	assert.False(t, ok)
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, "Saturday", DayOfWeek(reference))
	assert.Equal(t, InvalidDate, DayOfWeek(time.Time{}))
}

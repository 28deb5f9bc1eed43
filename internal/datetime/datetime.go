// Package datetime provides the presentation formatting and temporal
// comparisons shared by the validators and the API layer.
//
// Every function is total: malformed input resolves to a sentinel
// string, a false boolean, or ok=false, never a panic. "Now" is
// sampled at the instant of each call, never cached.
package datetime

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// InvalidDate is returned by formatters when the input is unusable.
	InvalidDate = "Invalid Date"
	// InvalidTime is returned by FormatTime for malformed clock strings.
	InvalidTime = "Invalid Time"
)

// clockRe matches H:MM or HH:MM with 0-23 hours and 0-59 minutes.
// No seconds component is accepted.
var clockRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// now is indirected for tests.
var now = time.Now

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDate parses wire-format date strings. Date-only values resolve
// to midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseClock parses a strict H:MM / HH:MM 24-hour clock string.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	fmt.Sscanf(m[1], "%d", &hour)
	fmt.Sscanf(m[2], "%d", &minute)
	return hour, minute, true
}

// FormatDate renders a date as e.g. "Jan 15, 2025".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.Format("Jan 2, 2006")
}

// FormatTime converts a 24-hour clock string to a 12-hour display,
// e.g. "14:30" -> "2:30 PM". Midnight renders as 12:MM AM.
func FormatTime(clock string) string {
	hour, minute, ok := ParseClock(clock)
	if !ok {
		return InvalidTime
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour > 12:
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// RelativeTime buckets a timestamp into a human phrase relative to now:
// "just now" / "in a moment", "N minute(s) ago" / "in N minute(s)",
// hours, days below a week, then falls back to FormatDate.
func RelativeTime(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}

	diff := t.Sub(now())
	past := diff < 0
	if past {
		diff = -diff
	}

	prefix, suffix := "in ", ""
	if past {
		prefix, suffix = "", " ago"
	}

	seconds := int(diff.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case seconds < 60:
		if past {
			return "just now"
		}
		return "in a moment"
	case minutes < 60:
		return fmt.Sprintf("%s%d %s%s", prefix, minutes, plural("minute", minutes), suffix)
	case hours < 24:
		return fmt.Sprintf("%s%d %s%s", prefix, hours, plural("hour", hours), suffix)
	case days < 7:
		return fmt.Sprintf("%s%d %s%s", prefix, days, plural("day", days), suffix)
	default:
		return FormatDate(t)
	}
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsWithinDays reports whether t is between now and now+days.
// Negative or NaN day counts are rejected.
func IsWithinDays(t time.Time, days float64) bool {
	if t.IsZero() || !(days >= 0) {
		return false
	}
	diffDays := t.Sub(now()).Hours() / 24
	return diffDays >= 0 && diffDays <= days
}

// IsAtLeastHoursAhead reports whether t is at least the given number of
// hours in the future. The comparison is boundary-inclusive.
func IsAtLeastHoursAhead(t time.Time, hours float64) bool {
	if t.IsZero() || !(hours >= 0) {
		return false
	}
	return t.Sub(now()).Hours() >= hours
}

// CombineDateAndTime applies a clock string to a date, returning a new
// value with seconds zeroed. The input date is left untouched. ok is
// false when either part is invalid.
func CombineDateAndTime(date time.Time, clock string) (time.Time, bool) {
	if date.IsZero() {
		return time.Time{}, false
	}
	hour, minute, ok := ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, date.Location()), true
}

// DayOfWeek returns the full weekday name, e.g. "Wednesday".
func DayOfWeek(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.Weekday().String()
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

package validate

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xinyujieHong/CSEN174-Project/internal/datetime"
)

// AllowFractionalSeats preserves the historical behavior of accepting
// fractional passenger counts and car capacities (4.5 seats passes).
// Flip to false for a strict integer check; no call sites change.
const AllowFractionalSeats = true

const (
	// MaxNotesLength is the default bound for IsValidNotes.
	MaxNotesLength = 500

	minPassengers = 1
	maxPassengers = 7
)

// IsValidDestination accepts 3-200 characters after trimming.
func IsValidDestination(destination string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(destination))
	return n >= 3 && n <= 200
}

// IsValidFutureDate reports whether the date parses and lies strictly
// after the instant of evaluation.
func IsValidFutureDate(date string) bool {
	t, ok := datetime.ParseDate(date)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

// IsValidTimeFormat accepts strict H:MM / HH:MM 24-hour clock strings.
func IsValidTimeFormat(clock string) bool {
	_, _, ok := datetime.ParseClock(clock)
	return ok
}

// IsValidPassengerCount accepts 1-7 passengers. Fractional counts pass
// while AllowFractionalSeats holds.
func IsValidPassengerCount(count float64) bool {
	if math.IsNaN(count) {
		return false
	}
	if !AllowFractionalSeats && count != math.Trunc(count) {
		return false
	}
	return count >= minPassengers && count <= maxPassengers
}

// IsValidRequestType accepts exactly "request" or "offer". No trimming,
// case-sensitive.
func IsValidRequestType(requestType string) bool {
	return requestType == "request" || requestType == "offer"
}

// IsValidNotes bounds the notes length. Empty notes are allowed. A
// non-positive maxLength falls back to MaxNotesLength.
func IsValidNotes(notes string, maxLength int) bool {
	if maxLength <= 0 {
		maxLength = MaxNotesLength
	}
	return utf8.RuneCountInString(notes) <= maxLength
}

// RequestFields carries the candidate fields of a new carpool post.
type RequestFields struct {
	Destination string
	Date        string
	Time        string
	Passengers  float64
	Type        string
}

// IsValidCarpoolRequest is the single composite gate applied before a
// new post is accepted.
func IsValidCarpoolRequest(r RequestFields) bool {
	return IsValidDestination(r.Destination) &&
		IsValidFutureDate(r.Date) &&
		IsValidTimeFormat(r.Time) &&
		IsValidPassengerCount(r.Passengers) &&
		IsValidRequestType(r.Type)
}

// DaysUntilCarpool returns ceil((target-now)/24h). Past dates produce
// negative values; unparseable dates are treated as the zero time and
// come back hugely negative, which downstream urgency checks reject.
func DaysUntilCarpool(date string) int {
	t, _ := datetime.ParseDate(date)
	diff := t.Sub(time.Now())
	return int(math.Ceil(diff.Hours() / 24))
}

// IsUrgentRequest reports whether the carpool is within the next 24
// hours (today or tomorrow by the ceiling day count).
func IsUrgentRequest(date string) bool {
	days := DaysUntilCarpool(date)
	return days >= 0 && days <= 1
}

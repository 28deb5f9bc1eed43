package validate_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xinyujieHong/CSEN174-Project/internal/validate"
)

func TestIsValidDestination(t *testing.T) {
	cases := []struct {
		name        string
		destination string
		want        bool
	}{
		{"typical destination", "San Jose Airport", true},
		{"minimum length", "SJC", true},
		{"maximum length", strings.Repeat("a", 200), true},
		{"two characters", "AB", false},
		{"over maximum", strings.Repeat("a", 201), false},
		{"two multibyte characters", "日本", false},
		{"three multibyte characters", "日本行", true},
		{"maximum multibyte length", strings.Repeat("駅", 200), true},
		{"over maximum multibyte", strings.Repeat("駅", 201), false},
		{"whitespace only", "   ", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.IsValidDestination(tc.destination))
		})
	}
}

func TestIsValidFutureDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.True(t, validate.IsValidFutureDate(tomorrow))
	assert.False(t, validate.IsValidFutureDate(yesterday))
	assert.False(t, validate.IsValidFutureDate("not-a-date"))
	assert.False(t, validate.IsValidFutureDate(""))
}

func TestIsValidTimeFormat(t *testing.T) {
	cases := []struct {
		name  string
		clock string
		want  bool
	}{
		{"afternoon", "14:30", true},
		{"midnight", "00:00", true},
		{"single-digit hour", "9:05", true},
		{"last minute of day", "23:59", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "12:60", false},
		{"seconds not accepted", "12:30:00", false},
		{"missing minutes", "12", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validate.IsValidTimeFormat(tc.clock))
		})
	}
}

func TestIsValidPassengerCount(t *testing.T) {
	assert.True(t, validate.IsValidPassengerCount(1))
	assert.True(t, validate.IsValidPassengerCount(7))
	assert.True(t, validate.IsValidPassengerCount(2.5)) // fractional counts tolerated
	assert.False(t, validate.IsValidPassengerCount(0))
	assert.False(t, validate.IsValidPassengerCount(8))
	assert.False(t, validate.IsValidPassengerCount(-3))
	assert.False(t, validate.IsValidPassengerCount(math.NaN()))
}

func TestIsValidRequestType(t *testing.T) {
	assert.True(t, validate.IsValidRequestType("request"))
	assert.True(t, validate.IsValidRequestType("offer"))
	assert.False(t, validate.IsValidRequestType("Request"))
	assert.False(t, validate.IsValidRequestType("offer "))
	assert.False(t, validate.IsValidRequestType("ride"))
	assert.False(t, validate.IsValidRequestType(""))
}

func TestIsValidNotes(t *testing.T) {
	assert.True(t, validate.IsValidNotes("", 0))
	assert.True(t, validate.IsValidNotes(strings.Repeat("a", 500), 0))
	assert.False(t, validate.IsValidNotes(strings.Repeat("a", 501), 0))
	assert.True(t, validate.IsValidNotes(strings.Repeat("荷", 500), 0))
	assert.False(t, validate.IsValidNotes(strings.Repeat("荷", 501), 0))
}

func TestIsValidCarpoolRequest(t *testing.T) {
	valid := validate.RequestFields{
		Destination: "San Jose Airport",
		Date:        time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		Time:        "08:30",
		Passengers:  3,
		Type:        "offer",
	}
	assert.True(t, validate.IsValidCarpoolRequest(valid))

	// Each invalid field independently fails the composite gate.
	for name, mutate := range map[string]func(*validate.RequestFields){
		"destination": func(r *validate.RequestFields) { r.Destination = "AB" },
		"date":        func(r *validate.RequestFields) { r.Date = "2020-01-01" },
		"time":        func(r *validate.RequestFields) { r.Time = "25:00" },
		"passengers":  func(r *validate.RequestFields) { r.Passengers = 0 },
		"type":        func(r *validate.RequestFields) { r.Type = "carpool" },
	} {
		t.Run("invalid "+name, func(t *testing.T) {
			r := valid
			mutate(&r)
			assert.False(t, validate.IsValidCarpoolRequest(r))
		})
	}
}

func TestDaysUntilCarpool(t *testing.T) {
	inThree := time.Now().Add(3 * 24 * time.Hour).Format(time.RFC3339)
	assert.Equal(t, 3, validate.DaysUntilCarpool(inThree))

	// A few hours out still rounds up to one day.
	soon := time.Now().Add(5 * time.Hour).Format(time.RFC3339)
	assert.Equal(t, 1, validate.DaysUntilCarpool(soon))

	past := time.Now().Add(-30 * time.Hour).Format(time.RFC3339)
	assert.Less(t, validate.DaysUntilCarpool(past), 0)
}

func TestIsUrgentRequest(t *testing.T) {
	assert.True(t, validate.IsUrgentRequest(time.Now().Add(6*time.Hour).Format(time.RFC3339)))
	assert.False(t, validate.IsUrgentRequest(time.Now().Add(3*24*time.Hour).Format(time.RFC3339)))
	assert.False(t, validate.IsUrgentRequest(time.Now().Add(-48*time.Hour).Format(time.RFC3339)))
	assert.False(t, validate.IsUrgentRequest("garbage"))
}

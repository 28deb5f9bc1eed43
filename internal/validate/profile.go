package validate

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxBioLength is the default bound for IsValidBio.
	MaxBioLength = 500

	minCarCapacity = 1
	maxCarCapacity = 8
)

var plateRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsValidCollegeName accepts 2-100 characters after trimming.
func IsValidCollegeName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 2 && n <= 100
}

// IsValidMajor accepts 2-50 characters after trimming.
func IsValidMajor(major string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(major))
	return n >= 2 && n <= 50
}

// IsValidGraduationYear accepts the current year through ten years out.
func IsValidGraduationYear(year int) bool {
	current := time.Now().Year()
	return year >= current && year <= current+10
}

// IsValidCarModel accepts 2-50 characters after trimming.
func IsValidCarModel(model string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(model))
	return n >= 2 && n <= 50
}

// IsValidCarCapacity accepts 1-8 passengers. Fractional capacities pass
// when AllowFractionalSeats is set; see that constant for why.
func IsValidCarCapacity(capacity float64) bool {
	if math.IsNaN(capacity) {
		return false
	}
	if !AllowFractionalSeats && capacity != math.Trunc(capacity) {
		return false
	}
	return capacity >= minCarCapacity && capacity <= maxCarCapacity
}

// IsValidLicensePlate strips internal whitespace and hyphens, then
// requires 2-10 alphanumeric characters, case-insensitive.
func IsValidLicensePlate(plate string) bool {
	stripped := strings.NewReplacer(" ", "", "\t", "", "-", "").Replace(strings.TrimSpace(plate))
	if n := utf8.RuneCountInString(stripped); n < 2 || n > 10 {
		return false
	}
	return plateRe.MatchString(stripped)
}

// IsValidBio bounds the bio length. Empty bios are allowed. A
// non-positive maxLength falls back to MaxBioLength.
func IsValidBio(bio string, maxLength int) bool {
	if maxLength <= 0 {
		maxLength = MaxBioLength
	}
	return utf8.RuneCountInString(bio) <= maxLength
}

// ProfileFields carries the subset of profile data the completeness
// checks look at.
type ProfileFields struct {
	College        string
	Major          string
	GraduationYear int
	CarModel       string
	CarCapacity    float64
	LicensePlate   string
}

// IsCompleteProfileWithoutCar requires a valid college, major and
// graduation year.
func IsCompleteProfileWithoutCar(p ProfileFields) bool {
	return IsValidCollegeName(p.College) &&
		IsValidMajor(p.Major) &&
		IsValidGraduationYear(p.GraduationYear)
}

// IsCompleteProfileWithCar additionally requires valid car details.
func IsCompleteProfileWithCar(p ProfileFields) bool {
	return IsCompleteProfileWithoutCar(p) &&
		IsValidCarModel(p.CarModel) &&
		IsValidCarCapacity(p.CarCapacity) &&
		IsValidLicensePlate(p.LicensePlate)
}

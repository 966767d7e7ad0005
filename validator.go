package jobscrape

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinDescriptionLen is the shortest description considered usable.
const DefaultMinDescriptionLen = 100

// DefaultErrorMarkers returns phrases that identify error, placeholder or
// empty shell pages.
func DefaultErrorMarkers() []string {
	return []string{
		"page not found",
		"404 not found",
		"access denied",
		"this job is no longer available",
		"this job has expired",
		"no longer accepting applications",
		"please enable javascript",
		"you need to enable javascript",
		"something went wrong",
		"verify you are a human",
		"are you a robot",
	}
}

// Validator decides whether an extracted description is usable.
type Validator struct {
	minLen  int
	markers []string
}

// NewValidator returns a Validator requiring at least minLen characters and
// rejecting text that contains any of the markers (case-insensitive).
func NewValidator(minLen int, markers []string) *Validator {
	lowered := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			lowered = append(lowered, m)
		}
	}
	return &Validator{minLen: minLen, markers: lowered}
}

// MinLen returns the minimum description length in characters.
func (v *Validator) MinLen() int {
	return v.minLen
}

// Valid reports whether description is long enough and free of error markers.
// Only the description matters; optional fields never affect validity.
func (v *Validator) Valid(description string) bool {
	description = strings.TrimSpace(description)
	if description == "" || utf8.RuneCountInString(description) < v.minLen {
		return false
	}
	lower := strings.ToLower(description)
	for _, m := range v.markers {
		if strings.Contains(lower, m) {
			return false
		}
	}
	return true
}

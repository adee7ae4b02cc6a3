package domain

import (
	"strconv"
	"strings"
)

// DefaultDurationMinutes is assumed for jobs with an unknown duration.
const DefaultDurationMinutes = 30

// ParseAmount coerces a decimal string to a float64. Malformed or empty
// values yield zero; a single bad record must never break parsing or route
// construction.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// PayoutAmount returns the job's base payout as a number, zero when the
// field is malformed.
func (j Job) PayoutAmount() float64 {
	return ParseAmount(j.Payout)
}

// DurationMinutes returns the job's estimated duration, substituting
// DefaultDurationMinutes when unset.
func (j Job) DurationMinutes() int {
	if j.EstimatedDuration > 0 {
		return j.EstimatedDuration
	}
	return DefaultDurationMinutes
}

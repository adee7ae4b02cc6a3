package reward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/reward"
)

func TestROI_PrecomputedPassthrough(t *testing.T) {
	job := domain.Job{Payout: "10.00", EstimatedDuration: 30, ROI: "45.50"}
	assert.InDelta(t, 45.5, reward.ROI(job), 1e-9)
}

func TestROI_ComputedFromPayoutAndDuration(t *testing.T) {
	job := domain.Job{Payout: "25.00", EstimatedDuration: 20}
	assert.InDelta(t, 75.0, reward.ROI(job), 1e-9)
}

func TestROI_DefaultDurationWhenUnset(t *testing.T) {
	// Missing duration falls back to the 30-minute default, not a divide by
	// zero.
	job := domain.Job{Payout: "10.00"}
	assert.InDelta(t, 20.0, reward.ROI(job), 1e-9)
}

func TestROI_MalformedPrecomputedFallsBackToZero(t *testing.T) {
	job := domain.Job{Payout: "10.00", EstimatedDuration: 30, ROI: "lots"}
	assert.Zero(t, reward.ROI(job))
}

func TestHourlyRate(t *testing.T) {
	assert.InDelta(t, 30.0, reward.HourlyRate(15, 30), 1e-9)
	assert.Zero(t, reward.HourlyRate(15, 0))
	assert.Zero(t, reward.HourlyRate(15, -5))
}

func TestScore_ColocatedCandidate(t *testing.T) {
	current := domain.Job{Payout: "10.00", EstimatedDuration: 30, Latitude: "47.60", Longitude: "-122.33"}
	candidate := domain.Job{Payout: "25.00", EstimatedDuration: 20, Latitude: "47.60", Longitude: "-122.33"}

	// No travel: payout/duration weighted by ROI/100 = 25/20 * 0.75.
	assert.InDelta(t, 0.9375, reward.Score(current, candidate), 1e-9)
}

func TestScore_TravelLowersScore(t *testing.T) {
	current := domain.Job{Payout: "10.00", EstimatedDuration: 30, Latitude: "47.60", Longitude: "-122.33"}
	near := domain.Job{Payout: "25.00", EstimatedDuration: 20, Latitude: "47.60", Longitude: "-122.33"}
	far := domain.Job{Payout: "25.00", EstimatedDuration: 20, Latitude: "47.70", Longitude: "-122.43"}

	assert.Greater(t, reward.Score(current, near), reward.Score(current, far))
}

func TestScore_MissingCoordinatesUseFallback(t *testing.T) {
	// Both jobs collapse onto the fallback coordinate, so no travel applies.
	current := domain.Job{Payout: "10.00", EstimatedDuration: 30}
	candidate := domain.Job{Payout: "25.00", EstimatedDuration: 20}

	assert.InDelta(t, 0.9375, reward.Score(current, candidate), 1e-9)
}

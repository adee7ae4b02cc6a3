// Package reward computes per-job earning rates and the candidate scoring
// function used by route construction.
//
// ROI here is not a true return-on-investment percentage: it is the job's
// effective hourly earnings rate, reused as a relative ranking signal. The
// naming is kept because the numeric contract is load-bearing: optimizer
// ordering and job-card sorting both compare these values across jobs.
package reward

import (
	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/geo"
)

// ROI returns the job's precomputed ROI when present, otherwise the payout
// per estimated hour.
func ROI(job domain.Job) float64 {
	if job.ROI != "" {
		return domain.ParseAmount(job.ROI)
	}
	hours := float64(job.DurationMinutes()) / 60
	if hours <= 0 {
		return 0
	}
	return job.PayoutAmount() / hours
}

// HourlyRate converts a payout and a duration in minutes to an hourly
// earnings rate. Zero duration yields zero rather than dividing by zero.
func HourlyRate(payout float64, durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return payout / float64(durationMinutes) * 60
}

// Score ranks a candidate job as the next stop after the current one:
// earnings per minute including travel, weighted by the candidate's ROI.
// Higher is better. Candidates with zero total time score zero.
func Score(current, candidate domain.Job) float64 {
	curLat, curLng := geo.Resolve(current.Latitude, current.Longitude)
	candLat, candLng := geo.Resolve(candidate.Latitude, candidate.Longitude)

	travel := geo.TravelTime(geo.Distance(curLat, curLng, candLat, candLng))
	totalTime := float64(candidate.DurationMinutes()) + travel
	if totalTime <= 0 {
		return 0
	}

	return candidate.PayoutAmount() / totalTime * (ROI(candidate) / 100)
}

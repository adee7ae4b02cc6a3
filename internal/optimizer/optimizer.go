// Package optimizer orders a set of jobs into a route that approximates
// maximizing earnings per minute.
//
// Construction is greedy best-next: seed with the job nearest the start
// location (or the highest-ROI job when no start is given), then repeatedly
// append the remaining candidate with the best reward score. No backtracking
// or lookahead, so the result is a known approximation rather than a global
// optimum. Ties always go
// to the earliest job in input order, so identical inputs produce identical
// routes.
package optimizer

import (
	"time"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/geo"
	"github.com/gigdash/gigdash/internal/reward"
)

// Optimize sequences jobs into a route with per-stop timing and exact-sum
// rollups. The start time is an explicit parameter so the computation stays
// pure; callers pass time.Now() for live routes. An empty job set returns a
// zero-valued route completing at startTime.
func Optimize(jobs []domain.Job, start *domain.Coordinate, startTime time.Time) domain.Route {
	route := domain.Route{
		JobIDs:                  []string{},
		Steps:                   []domain.RouteStep{},
		EstimatedCompletionTime: startTime,
		Optimized:               true,
	}
	if len(jobs) == 0 {
		return route
	}

	ordered := sequence(jobs, start)

	current := startTime
	for i, job := range ordered {
		var dist, travel float64
		if i > 0 {
			prevLat, prevLng := geo.Resolve(ordered[i-1].Latitude, ordered[i-1].Longitude)
			lat, lng := geo.Resolve(job.Latitude, job.Longitude)
			dist = geo.Distance(prevLat, prevLng, lat, lng)
			travel = geo.TravelTime(dist)
		}

		current = current.Add(durationMinutes(travel))
		route.Steps = append(route.Steps, domain.RouteStep{
			JobID:                job.ID,
			Job:                  job,
			Order:                i + 1,
			EstimatedArrival:     current,
			DistanceFromPrevious: dist,
			DurationFromPrevious: travel,
		})
		current = current.Add(durationMinutes(float64(job.DurationMinutes())))

		route.JobIDs = append(route.JobIDs, job.ID)
		route.TotalDistance += dist
		route.TotalDuration += travel + float64(job.DurationMinutes())
		route.TotalEarnings += job.PayoutAmount()
	}
	route.EstimatedCompletionTime = current

	return route
}

// Metrics computes aggregate statistics over a job set without ordering it.
func Metrics(jobs []domain.Job) domain.RouteMetrics {
	var m domain.RouteMetrics
	var totalROI float64
	var totalDuration int

	for _, job := range jobs {
		m.TotalEarnings += job.PayoutAmount()
		totalDuration += job.DurationMinutes()
		totalROI += reward.ROI(job)
	}

	m.TotalDuration = float64(totalDuration)
	if len(jobs) > 0 {
		m.AverageROI = totalROI / float64(len(jobs))
	}
	if totalDuration > 0 {
		m.EstimatedHourlyRate = m.TotalEarnings / float64(totalDuration) * 60
	}
	return m
}

// sequence produces the visiting order. The remaining candidate set is an
// index arena in input order; chosen entries are removed by position, which
// keeps tie-breaking stable.
func sequence(jobs []domain.Job, start *domain.Coordinate) []domain.Job {
	if len(jobs) <= 1 {
		return jobs
	}

	remaining := make([]int, len(jobs))
	for i := range jobs {
		remaining[i] = i
	}

	var seedPos int
	if start != nil {
		seedPos = nearestTo(jobs, remaining, *start)
	} else {
		seedPos = highestROI(jobs, remaining)
	}

	ordered := make([]domain.Job, 0, len(jobs))
	current := jobs[remaining[seedPos]]
	ordered = append(ordered, current)
	remaining = append(remaining[:seedPos], remaining[seedPos+1:]...)

	for len(remaining) > 0 {
		bestPos := 0
		bestScore := reward.Score(current, jobs[remaining[0]])
		for pos := 1; pos < len(remaining); pos++ {
			if s := reward.Score(current, jobs[remaining[pos]]); s > bestScore {
				bestScore = s
				bestPos = pos
			}
		}
		current = jobs[remaining[bestPos]]
		ordered = append(ordered, current)
		remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
	}

	return ordered
}

// nearestTo returns the arena position of the job closest to the start
// location. The first minimum wins on ties.
func nearestTo(jobs []domain.Job, remaining []int, start domain.Coordinate) int {
	bestPos := 0
	bestDist := distanceFrom(start, jobs[remaining[0]])
	for pos := 1; pos < len(remaining); pos++ {
		if d := distanceFrom(start, jobs[remaining[pos]]); d < bestDist {
			bestDist = d
			bestPos = pos
		}
	}
	return bestPos
}

// highestROI returns the arena position of the highest-ROI job. The first
// maximum wins on ties.
func highestROI(jobs []domain.Job, remaining []int) int {
	bestPos := 0
	bestROI := reward.ROI(jobs[remaining[0]])
	for pos := 1; pos < len(remaining); pos++ {
		if r := reward.ROI(jobs[remaining[pos]]); r > bestROI {
			bestROI = r
			bestPos = pos
		}
	}
	return bestPos
}

func distanceFrom(start domain.Coordinate, job domain.Job) float64 {
	lat, lng := geo.Resolve(job.Latitude, job.Longitude)
	return geo.Distance(start.Lat, start.Lng, lat, lng)
}

func durationMinutes(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}

package optimizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/geo"
	"github.com/gigdash/gigdash/internal/optimizer"
)

var start = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

// Three jobs around downtown Seattle. From job A, job B wins the next-stop
// score by a wide margin (closer and three times the hourly rate), so the
// greedy order is fully determined.
func testJobs() []domain.Job {
	return []domain.Job{
		{ID: "job-a", Payout: "10.00", EstimatedDuration: 30, Latitude: "47.60", Longitude: "-122.33"},
		{ID: "job-b", Payout: "25.00", EstimatedDuration: 20, Latitude: "47.61", Longitude: "-122.34"},
		{ID: "job-c", Payout: "15.00", EstimatedDuration: 40, Latitude: "47.59", Longitude: "-122.30"},
	}
}

func travelMinutes(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.TravelTime(geo.Distance(lat1, lng1, lat2, lng2))
}

func TestOptimize_EmptyJobSet(t *testing.T) {
	route := optimizer.Optimize(nil, nil, start)

	assert.Empty(t, route.JobIDs)
	assert.Empty(t, route.Steps)
	assert.Zero(t, route.TotalDistance)
	assert.Zero(t, route.TotalDuration)
	assert.Zero(t, route.TotalEarnings)
	assert.True(t, route.Optimized)
	assert.Equal(t, start, route.EstimatedCompletionTime)
}

func TestOptimize_SingleJob(t *testing.T) {
	jobs := testJobs()[:1]
	route := optimizer.Optimize(jobs, &domain.Coordinate{Lat: 47.60, Lng: -122.33}, start)

	require.Len(t, route.Steps, 1)
	step := route.Steps[0]
	assert.Equal(t, "job-a", step.JobID)
	assert.Equal(t, 1, step.Order)
	assert.Zero(t, step.DistanceFromPrevious)
	assert.Zero(t, step.DurationFromPrevious)
	assert.Equal(t, start, step.EstimatedArrival)

	assert.Equal(t, []string{"job-a"}, route.JobIDs)
	assert.InDelta(t, 10.0, route.TotalEarnings, 1e-9)
	assert.InDelta(t, 30.0, route.TotalDuration, 1e-9)
	assert.Equal(t, start.Add(30*time.Minute), route.EstimatedCompletionTime)
}

func TestOptimize_GreedyOrderFromStart(t *testing.T) {
	jobs := testJobs()
	route := optimizer.Optimize(jobs, &domain.Coordinate{Lat: 47.60, Lng: -122.33}, start)

	// Seeded at A (distance zero from the start), then B over C on score.
	require.Equal(t, []string{"job-a", "job-b", "job-c"}, route.JobIDs)
	require.Len(t, route.Steps, 3)

	travelAB := travelMinutes(47.60, -122.33, 47.61, -122.34)
	travelBC := travelMinutes(47.61, -122.34, 47.59, -122.30)

	assert.InDelta(t, 50.0, route.TotalEarnings, 1e-9)
	assert.InDelta(t, 90.0+travelAB+travelBC, route.TotalDuration, 1e-9)
	assert.InDelta(t, geo.Distance(47.60, -122.33, 47.61, -122.34)+geo.Distance(47.61, -122.34, 47.59, -122.30),
		route.TotalDistance, 1e-9)

	// Arrival at each stop accumulates prior service and travel time.
	assert.Equal(t, start, route.Steps[0].EstimatedArrival)
	assert.InDelta(t, 30.0+travelAB,
		route.Steps[1].EstimatedArrival.Sub(start).Minutes(), 1e-6)
	assert.InDelta(t, 30.0+travelAB+20.0+travelBC,
		route.Steps[2].EstimatedArrival.Sub(start).Minutes(), 1e-6)
	assert.InDelta(t, route.TotalDuration,
		route.EstimatedCompletionTime.Sub(start).Minutes(), 1e-6)

	for i, step := range route.Steps {
		assert.Equal(t, i+1, step.Order)
		assert.Equal(t, route.JobIDs[i], step.JobID)
	}
}

func TestOptimize_SeedsHighestROIWithoutStart(t *testing.T) {
	route := optimizer.Optimize(testJobs(), nil, start)

	// Hourly rates: A 20, B 75, C 22.5.
	require.NotEmpty(t, route.JobIDs)
	assert.Equal(t, "job-b", route.JobIDs[0])
}

func TestOptimize_VisitsEveryJobOnce(t *testing.T) {
	jobs := []domain.Job{testJobs()[2], testJobs()[0], testJobs()[1]}
	route := optimizer.Optimize(jobs, &domain.Coordinate{Lat: 47.60, Lng: -122.33}, start)

	assert.ElementsMatch(t, []string{"job-a", "job-b", "job-c"}, route.JobIDs)
	assert.Len(t, route.Steps, 3)
	assert.InDelta(t, 50.0, route.TotalEarnings, 1e-9)
}

func TestOptimize_Deterministic(t *testing.T) {
	startLoc := &domain.Coordinate{Lat: 47.60, Lng: -122.33}
	first := optimizer.Optimize(testJobs(), startLoc, start)
	second := optimizer.Optimize(testJobs(), startLoc, start)

	assert.Equal(t, first.JobIDs, second.JobIDs)
	assert.Equal(t, first.TotalDuration, second.TotalDuration)
	assert.Equal(t, first.EstimatedCompletionTime, second.EstimatedCompletionTime)
}

func TestMetrics(t *testing.T) {
	m := optimizer.Metrics(testJobs())

	assert.InDelta(t, 50.0, m.TotalEarnings, 1e-9)
	assert.InDelta(t, 90.0, m.TotalDuration, 1e-9)
	assert.InDelta(t, (20.0+75.0+22.5)/3, m.AverageROI, 1e-9)
	assert.InDelta(t, 50.0/90.0*60, m.EstimatedHourlyRate, 1e-9)
}

func TestMetrics_Empty(t *testing.T) {
	m := optimizer.Metrics(nil)

	assert.Zero(t, m.TotalEarnings)
	assert.Zero(t, m.TotalDuration)
	assert.Zero(t, m.AverageROI)
	assert.Zero(t, m.EstimatedHourlyRate)
}

package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigdash/gigdash/internal/geo"
)

func TestDistance_Symmetry(t *testing.T) {
	pairs := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
	}{
		{"downtown to capitol hill", 47.6062, -122.3321, 47.6230, -122.3126},
		{"cross hemisphere", -33.8688, 151.2093, 40.7128, -74.0060},
		{"tiny offset", 47.60, -122.33, 47.6001, -122.3301},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			forward := geo.Distance(p.lat1, p.lng1, p.lat2, p.lng2)
			backward := geo.Distance(p.lat2, p.lng2, p.lat1, p.lng1)
			assert.InDelta(t, forward, backward, 1e-9)
		})
	}
}

func TestDistance_IdenticalPointsAreZero(t *testing.T) {
	assert.Zero(t, geo.Distance(47.6062, -122.3321, 47.6062, -122.3321))
}

func TestDistance_KnownValue(t *testing.T) {
	// One hundredth of a degree in each direction at Seattle's latitude.
	d := geo.Distance(47.60, -122.33, 47.61, -122.34)
	assert.InDelta(t, 1.341, d, 0.01)
}

func TestTravelTime(t *testing.T) {
	assert.Zero(t, geo.TravelTime(0))
	// At 25 km/h, 25 km takes exactly an hour.
	assert.InDelta(t, 60.0, geo.TravelTime(25), 1e-9)

	// Strictly increasing with distance.
	prev := 0.0
	for _, km := range []float64{0.5, 1, 2, 10, 100} {
		minutes := geo.TravelTime(km)
		require.Greater(t, minutes, prev)
		prev = minutes
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng string
		wantLat  float64
		wantLng  float64
	}{
		{"valid pair", "47.61", "-122.34", 47.61, -122.34},
		{"whitespace trimmed", " 47.61 ", " -122.34 ", 47.61, -122.34},
		{"bad latitude", "north-ish", "-122.34", geo.DefaultLat, geo.DefaultLng},
		{"bad longitude", "47.61", "", geo.DefaultLat, geo.DefaultLng},
		{"both empty", "", "", geo.DefaultLat, geo.DefaultLng},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng := geo.Resolve(tt.lat, tt.lng)
			assert.InDelta(t, tt.wantLat, lat, 1e-9)
			assert.InDelta(t, tt.wantLng, lng, 1e-9)
		})
	}
}

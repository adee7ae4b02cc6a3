// Package geo provides great-circle distance and travel-time estimation for
// route planning. All computation is pure; no external routing API is
// consulted.
package geo

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// AverageSpeedKmh models typical urban driving speed. Travel-time estimates
// are linear in distance at this fixed speed.
const AverageSpeedKmh = 25.0

// Fallback coordinate (downtown Seattle) substituted for jobs without
// geocoded positions. A known approximation: jobs with no coordinates all
// collapse onto this point and contribute zero travel between each other.
const (
	DefaultLat = 47.6062
	DefaultLng = -122.3321
)

// Distance returns the haversine distance in kilometers between two points
// given in decimal degrees. Symmetric in its arguments; zero when the points
// coincide.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// TravelTime estimates driving minutes for a distance in kilometers,
// assuming AverageSpeedKmh. Monotonically increasing; zero distance yields
// zero minutes.
func TravelTime(distanceKm float64) float64 {
	return distanceKm / AverageSpeedKmh * 60
}

// Resolve parses a coordinate pair stored as decimal strings, substituting
// the fallback coordinate when either component is missing or malformed.
func Resolve(lat, lng string) (float64, float64) {
	latV, latErr := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	lngV, lngErr := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if latErr != nil || lngErr != nil {
		return DefaultLat, DefaultLng
	}
	return latV, lngV
}

func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

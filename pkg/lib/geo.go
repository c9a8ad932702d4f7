package lib

import (
	"fmt"
	"math"
)

const earthRadiusMeters = 6371000

// HaversineMeters returns the great-circle distance between two
// coordinates in meters.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// GeoBucket snaps a coordinate onto a coarse grid (two decimal places,
// roughly 1.1 km at the equator) and renders it as a stable string.
// Used to fold location into cache keys without making every small GPS
// jitter a cache miss.
func GeoBucket(lat, lng float64) string {
	return fmt.Sprintf("%.2f:%.2f", math.Round(lat*100)/100, math.Round(lng*100)/100)
}

// Clamp bounds v to the [min, max] interval.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package taxonomy

import "github.com/galaapp/gala/pkg/lib"

// DistanceBand snaps the 0-100 distance slider onto a named band with a
// canonical search radius. The mapping is a band lookup, not a linear
// interpolation.
type DistanceBand struct {
	ID           string
	MaxPercent   float64
	RadiusMeters int
}

var distanceBands = []DistanceBand{
	{ID: "very-close", MaxPercent: 20, RadiusMeters: 500},
	{ID: "walking-distance", MaxPercent: 40, RadiusMeters: 1000},
	{ID: "short-drive", MaxPercent: 60, RadiusMeters: 3000},
	{ID: "long-ride", MaxPercent: 80, RadiusMeters: 5000},
	{ID: "far", MaxPercent: 100, RadiusMeters: 10000},
}

// ClassifyDistance maps a slider percentage to its containing band.
// Out-of-range values are clamped first.
func ClassifyDistance(percent float64) DistanceBand {
	percent = lib.Clamp(percent, 0, 100)

	for _, band := range distanceBands {
		if percent <= band.MaxPercent {
			return band
		}
	}

	return distanceBands[len(distanceBands)-1]
}

// DistanceBands returns the full ordered catalog.
func DistanceBands() []DistanceBand {
	return append([]DistanceBand(nil), distanceBands...)
}

package places

import (
	"github.com/galaapp/gala/pkg/discovery/taxonomy"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
)

// FallbackSet is the static, offline candidate list served when the
// provider yields nothing usable. Discovery never hard-fails: it
// degrades to these lower-quality but non-empty results.
type FallbackSet struct {
	places []types.PlaceCandidate
}

func NewFallbackSet() *FallbackSet {
	return &FallbackSet{places: fallbackPlaces}
}

// Candidates returns the fallback places that pass the spec's strict
// filters and sit within the spec's distance band of the user. When
// filtering would empty the set, the unfiltered set is returned
// instead; a fallback must never be empty.
func (f *FallbackSet) Candidates(spec types.FilterSpec) []types.PlaceCandidate {
	spec = spec.Normalized()
	maxMeters := float64(taxonomy.ClassifyDistance(spec.DistanceRange).RadiusMeters)

	var matched []types.PlaceCandidate
	for _, place := range f.places {
		if !taxonomy.BudgetCompatible(place.PriceLevel, spec.Budget) {
			continue
		}
		if !taxonomy.TimeOfDayCompatible(place.Types, spec.TimeOfDay) {
			continue
		}
		distance := lib.HaversineMeters(
			spec.UserLocation.Lat, spec.UserLocation.Lng,
			place.Location.Lat, place.Location.Lng,
		)
		if distance > maxMeters {
			continue
		}
		matched = append(matched, place.Clone())
	}

	if len(matched) == 0 {
		matched = make([]types.PlaceCandidate, 0, len(f.places))
		for _, place := range f.places {
			matched = append(matched, place.Clone())
		}
	}

	return matched
}

func priceLevel(level int) *int { return &level }

var fallbackPlaces = []types.PlaceCandidate{
	{
		ID:          "fallback-kapehan-qc",
		Name:        "Kapehan sa Kanto",
		Address:     "Maginhawa St, Quezon City",
		Types:       []string{"cafe", "bakery"},
		Rating:      4.4,
		ReviewCount: 812,
		PriceLevel:  priceLevel(1),
		Location:    types.LatLng{Lat: 14.6466, Lng: 121.0587},
	},
	{
		ID:          "fallback-lutong-bahay",
		Name:        "Lutong Bahay Eatery",
		Address:     "Kalayaan Ave, Makati",
		Types:       []string{"restaurant", "meal_takeaway"},
		Rating:      4.2,
		ReviewCount: 1534,
		PriceLevel:  priceLevel(1),
		Location:    types.LatLng{Lat: 14.5657, Lng: 121.0245},
	},
	{
		ID:          "fallback-sining-gallery",
		Name:        "Sining Art Gallery",
		Address:     "Bonifacio High Street, Taguig",
		Types:       []string{"art_gallery", "museum"},
		Rating:      4.6,
		ReviewCount: 402,
		PriceLevel:  priceLevel(2),
		Location:    types.LatLng{Lat: 14.5507, Lng: 121.0513},
	},
	{
		ID:          "fallback-tagpuan-bar",
		Name:        "Tagpuan Bar & Grill",
		Address:     "Tomas Morato Ave, Quezon City",
		Types:       []string{"bar", "restaurant", "night_club"},
		Rating:      4.3,
		ReviewCount: 987,
		PriceLevel:  priceLevel(2),
		Location:    types.LatLng{Lat: 14.6335, Lng: 121.0350},
	},
	{
		ID:          "fallback-paraiso-park",
		Name:        "Paraiso City Park",
		Address:     "Roxas Blvd, Manila",
		Types:       []string{"park", "tourist_attraction"},
		Rating:      4.5,
		ReviewCount: 2201,
		Location:    types.LatLng{Lat: 14.5794, Lng: 120.9790},
	},
	{
		ID:          "fallback-bolera-lanes",
		Name:        "Bolera Bowling Lanes",
		Address:     "Araneta City, Quezon City",
		Types:       []string{"bowling_alley", "arcade"},
		Rating:      4.1,
		ReviewCount: 655,
		PriceLevel:  priceLevel(2),
		Location:    types.LatLng{Lat: 14.6197, Lng: 121.0530},
	},
	{
		ID:          "fallback-hapag-fine-dining",
		Name:        "Hapag Fine Dining",
		Address:     "Salcedo Village, Makati",
		Types:       []string{"restaurant"},
		Rating:      4.7,
		ReviewCount: 310,
		PriceLevel:  priceLevel(4),
		Location:    types.LatLng{Lat: 14.5609, Lng: 121.0199},
	},
	{
		ID:          "fallback-kanta-karaoke",
		Name:        "Kanta Karaoke Rooms",
		Address:     "Greenhills, San Juan",
		Types:       []string{"karaoke", "bar"},
		Rating:      4.0,
		ReviewCount: 521,
		PriceLevel:  priceLevel(2),
		Location:    types.LatLng{Lat: 14.6019, Lng: 121.0355},
	},
}

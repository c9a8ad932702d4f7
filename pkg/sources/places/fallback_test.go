package places

import (
	"testing"

	"github.com/galaapp/gala/pkg/discovery/types"
)

func TestFallbackSet_FiltersByStrictDimensions(t *testing.T) {
	set := NewFallbackSet()

	spec := types.FilterSpec{
		Budget:        types.BudgetPPP,
		DistanceRange: 100,
		UserLocation:  types.LatLng{Lat: 14.60, Lng: 121.02},
	}
	results := set.Candidates(spec)

	if len(results) == 0 {
		t.Fatal("fallback must never be empty")
	}
	for _, place := range results {
		if place.PriceLevel == nil || *place.PriceLevel < 3 {
			t.Errorf("place %s does not match PPP budget", place.ID)
		}
	}
}

func TestFallbackSet_NeverEmpty(t *testing.T) {
	set := &FallbackSet{places: []types.PlaceCandidate{
		{ID: "only", Types: []string{"cafe"}, PriceLevel: priceLevel(1)},
	}}

	// PPP excludes the only place; the unfiltered set is returned instead.
	results := set.Candidates(types.FilterSpec{Budget: types.BudgetPPP})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestFallbackSet_FiltersByDistance(t *testing.T) {
	set := NewFallbackSet()

	// Very-close band (500m) around Maginhawa keeps only the cafe there.
	spec := types.FilterSpec{
		DistanceRange: 10,
		UserLocation:  types.LatLng{Lat: 14.6466, Lng: 121.0587},
	}
	results := set.Candidates(spec)

	if len(results) != 1 || results[0].ID != "fallback-kapehan-qc" {
		ids := make([]string, 0, len(results))
		for _, place := range results {
			ids = append(ids, place.ID)
		}
		t.Errorf("got %v, want only fallback-kapehan-qc", ids)
	}
}

func TestFallbackSet_ClonesPlaces(t *testing.T) {
	set := NewFallbackSet()

	first := set.Candidates(types.FilterSpec{})
	first[0].Name = "mutated"

	second := set.Candidates(types.FilterSpec{})
	if second[0].Name == "mutated" {
		t.Error("fallback candidates share mutable state")
	}
}

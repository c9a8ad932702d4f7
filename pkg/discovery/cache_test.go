package discovery

import (
	"testing"
	"time"

	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/rs/zerolog"
)

func testResult(id string) types.DiscoveryResult {
	return types.DiscoveryResult{
		RequestID: id,
		Places: []types.PlaceCandidate{
			{ID: "p1", Name: "Place One", Types: []string{"cafe"}},
		},
		Source:       types.SourceAPI,
		TotalResults: 1,
	}
}

func newTestCache(capacity int) *ResultCache {
	logger := zerolog.Nop()
	return NewResultCache(capacity, &logger)
}

func TestResultCache_GetAfterSet(t *testing.T) {
	cache := newTestCache(10)

	cache.Set("key", testResult("r1"), time.Minute)

	got, ok := cache.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.RequestID != "r1" || len(got.Places) != 1 {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestResultCache_ExpiredReadEvictsAndCountsMiss(t *testing.T) {
	cache := newTestCache(10)

	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Set("key", testResult("r1"), 10*time.Minute)

	now = now.Add(11 * time.Minute)
	if _, ok := cache.Get("key"); ok {
		t.Fatal("expected expired entry to miss")
	}

	stats := cache.Stats()
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Size != 0 {
		t.Errorf("Size = %d, want 0 after expired-read eviction", stats.Size)
	}
}

func TestResultCache_CapacityEvictsOldest(t *testing.T) {
	cache := newTestCache(2)

	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Set("a", testResult("a"), time.Hour)
	now = now.Add(time.Second)
	cache.Set("b", testResult("b"), time.Hour)
	now = now.Add(time.Second)
	cache.Set("c", testResult("c"), time.Hour)

	if stats := cache.Stats(); stats.Size != 2 {
		t.Fatalf("Size = %d, want 2", stats.Size)
	}

	if _, ok := cache.Get("a"); ok {
		t.Error("expected oldest entry to be evicted")
	}
	if _, ok := cache.Get("b"); !ok {
		t.Error("expected newer entry to survive")
	}
	if _, ok := cache.Get("c"); !ok {
		t.Error("expected newest entry to survive")
	}
}

func TestResultCache_Stats(t *testing.T) {
	cache := newTestCache(10)

	cache.Set("key", testResult("r1"), time.Minute)
	cache.Get("key")
	cache.Get("key")
	cache.Get("absent")

	stats := cache.Stats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.TotalRequests != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.HitRate < 0.66 || stats.HitRate > 0.67 {
		t.Errorf("HitRate = %v", stats.HitRate)
	}
}

func TestResultCache_CopiesOnReadAndWrite(t *testing.T) {
	cache := newTestCache(10)

	original := testResult("r1")
	cache.Set("key", original, time.Minute)

	// Mutating the caller's copy must not affect the cached entry.
	original.Places[0].Name = "mutated by writer"

	got, _ := cache.Get("key")
	if got.Places[0].Name != "Place One" {
		t.Error("cache shares state with the writer")
	}

	// Mutating a read result must not affect later reads.
	got.Places[0].Name = "mutated by reader"

	again, _ := cache.Get("key")
	if again.Places[0].Name != "Place One" {
		t.Error("cache shares state with readers")
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	spec := types.FilterSpec{
		Mood:          50,
		Category:      types.CategoryFood,
		Budget:        types.BudgetPP,
		DistanceRange: 50,
		UserLocation:  types.LatLng{Lat: 14.5995, Lng: 120.9842},
	}

	if Fingerprint(spec) != Fingerprint(spec) {
		t.Error("identical specs must produce identical fingerprints")
	}
}

func TestFingerprint_SensitiveToFilterableFields(t *testing.T) {
	base := types.FilterSpec{
		Mood:          50,
		Category:      types.CategoryFood,
		Budget:        types.BudgetPP,
		SocialContext: types.SocialBarkada,
		TimeOfDay:     types.TimeNight,
		DistanceRange: 50,
		MinResults:    5,
	}

	mutations := []func(s *types.FilterSpec){
		func(s *types.FilterSpec) { s.Mood = 80 },
		func(s *types.FilterSpec) { s.Category = types.CategoryActivity },
		func(s *types.FilterSpec) { s.Budget = types.BudgetPPP },
		func(s *types.FilterSpec) { s.SocialContext = types.SocialSolo },
		func(s *types.FilterSpec) { s.TimeOfDay = types.TimeMorning },
		func(s *types.FilterSpec) { s.DistanceRange = 90 },
		func(s *types.FilterSpec) { s.MinResults = 10 },
	}

	baseKey := Fingerprint(base)
	for i, mutate := range mutations {
		spec := base
		mutate(&spec)
		if Fingerprint(spec) == baseKey {
			t.Errorf("mutation %d did not change the fingerprint", i)
		}
	}
}

func TestFingerprint_BucketsLocation(t *testing.T) {
	base := types.FilterSpec{
		Mood:         50,
		UserLocation: types.LatLng{Lat: 14.5995, Lng: 120.9842},
	}

	// GPS jitter within the same grid cell shares the key.
	near := base
	near.UserLocation = types.LatLng{Lat: 14.5996, Lng: 120.9843}
	if Fingerprint(base) != Fingerprint(near) {
		t.Error("nearby locations should share a fingerprint")
	}

	// A different city must not.
	far := base
	far.UserLocation = types.LatLng{Lat: 10.3157, Lng: 123.8854}
	if Fingerprint(base) == Fingerprint(far) {
		t.Error("distant locations must not share a fingerprint")
	}
}

package taxonomy

import "testing"

func TestClassifyDistance_BandLookup(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		wantID     string
		wantRadius int
	}{
		{name: "zero snaps to very-close", percent: 0, wantID: "very-close", wantRadius: 500},
		{name: "band boundary stays in band", percent: 20, wantID: "very-close", wantRadius: 500},
		{name: "just past first band", percent: 20.1, wantID: "walking-distance", wantRadius: 1000},
		{name: "middle slider", percent: 50, wantID: "short-drive", wantRadius: 3000},
		{name: "long ride", percent: 75, wantID: "long-ride", wantRadius: 5000},
		{name: "max slider", percent: 100, wantID: "far", wantRadius: 10000},
		{name: "above range clamps to far", percent: 140, wantID: "far", wantRadius: 10000},
		{name: "below range clamps to very-close", percent: -1, wantID: "very-close", wantRadius: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band := ClassifyDistance(tt.percent)
			if band.ID != tt.wantID {
				t.Errorf("ClassifyDistance(%v).ID = %v, want %v", tt.percent, band.ID, tt.wantID)
			}
			if band.RadiusMeters != tt.wantRadius {
				t.Errorf("ClassifyDistance(%v).RadiusMeters = %v, want %v", tt.percent, band.RadiusMeters, tt.wantRadius)
			}
		})
	}
}

func TestClassifyDistance_SnapsNotInterpolates(t *testing.T) {
	// Two different values within the same band must map to the same radius.
	a := ClassifyDistance(41)
	b := ClassifyDistance(59)
	if a.RadiusMeters != b.RadiusMeters {
		t.Errorf("expected same radius within a band, got %d and %d", a.RadiusMeters, b.RadiusMeters)
	}
}

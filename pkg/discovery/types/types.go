package types

// Category is the broad kind of outing the user is after.
type Category string

const (
	CategoryFood         Category = "food"
	CategoryActivity     Category = "activity"
	CategorySomethingNew Category = "something-new"
	CategoryNone         Category = "none"
)

// Budget is the user's spending tier. The single-to-triple peso notation
// mirrors the client UI.
type Budget string

const (
	BudgetP    Budget = "P"
	BudgetPP   Budget = "PP"
	BudgetPPP  Budget = "PPP"
	BudgetNone Budget = "none"
)

// SocialContext describes who the user is going out with.
type SocialContext string

const (
	SocialSolo    SocialContext = "solo"
	SocialWithBae SocialContext = "with-bae"
	SocialBarkada SocialContext = "barkada"
	SocialNone    SocialContext = "none"
)

// TimeOfDay is the part of the day the outing is planned for.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeNight     TimeOfDay = "night"
	TimeNone      TimeOfDay = "none"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultMinResults is the minimum usable result count the engine
// aims for when the filters do not ask for more.
const DefaultMinResults = 5

// FilterSpec is the structured set of user preferences driving one
// discovery call. All enum fields are optional; "none" (or empty)
// means the dimension is unfiltered.
type FilterSpec struct {
	Mood          float64       `json:"mood" validate:"min=0,max=100"`
	Category      Category      `json:"category" validate:"omitempty,oneof=food activity something-new none"`
	Budget        Budget        `json:"budget" validate:"omitempty,oneof=P PP PPP none"`
	SocialContext SocialContext `json:"socialContext" validate:"omitempty,oneof=solo with-bae barkada none"`
	TimeOfDay     TimeOfDay     `json:"timeOfDay" validate:"omitempty,oneof=morning afternoon night none"`
	DistanceRange float64       `json:"distanceRange" validate:"min=0,max=100"`
	UserLocation  LatLng        `json:"userLocation"`
	MinResults    int           `json:"minResults" validate:"min=0,max=20"`
}

// Normalized returns a copy with continuous fields clamped to [0,100],
// empty enum fields set to their explicit "none" value and MinResults
// defaulted.
func (s FilterSpec) Normalized() FilterSpec {
	out := s

	out.Mood = clamp(s.Mood, 0, 100)
	out.DistanceRange = clamp(s.DistanceRange, 0, 100)

	if out.Category == "" {
		out.Category = CategoryNone
	}
	if out.Budget == "" {
		out.Budget = BudgetNone
	}
	if out.SocialContext == "" {
		out.SocialContext = SocialNone
	}
	if out.TimeOfDay == "" {
		out.TimeOfDay = TimeNone
	}
	if out.MinResults <= 0 {
		out.MinResults = DefaultMinResults
	}

	return out
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// OpeningPeriod is a weekly open window. Days are 0 (Sunday) through 6,
// hours are 0-23 in the venue's local time.
type OpeningPeriod struct {
	OpenDay   int `json:"openDay"`
	OpenHour  int `json:"openHour"`
	CloseDay  int `json:"closeDay"`
	CloseHour int `json:"closeHour"`
}

// PlaceCandidate is a venue as returned by the place provider, after
// normalization and optional enrichment. Candidates live only for the
// duration of a discovery call plus the cache entry's TTL.
type PlaceCandidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Types       []string `json:"types"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	// PriceLevel is the provider's 0-4 scale; nil when the provider has
	// no price data for the venue.
	PriceLevel     *int            `json:"priceLevel,omitempty"`
	Location       LatLng          `json:"location"`
	OpeningPeriods []OpeningPeriod `json:"openingPeriods,omitempty"`
	Website        string          `json:"website,omitempty"`

	// Enrichment fields, filled by the engine.
	Budget      Budget `json:"budget,omitempty"`
	Description string `json:"description,omitempty"`
	OpenNow     *bool  `json:"openNow,omitempty"`
}

// Clone returns a deep copy of the candidate.
func (p PlaceCandidate) Clone() PlaceCandidate {
	out := p

	if p.Types != nil {
		out.Types = append([]string(nil), p.Types...)
	}
	if p.OpeningPeriods != nil {
		out.OpeningPeriods = append([]OpeningPeriod(nil), p.OpeningPeriods...)
	}
	if p.PriceLevel != nil {
		level := *p.PriceLevel
		out.PriceLevel = &level
	}
	if p.OpenNow != nil {
		open := *p.OpenNow
		out.OpenNow = &open
	}

	return out
}

// ResultSource tells where a discovery result came from.
type ResultSource string

const (
	SourceCache    ResultSource = "cache"
	SourceAPI      ResultSource = "api"
	SourceFallback ResultSource = "fallback"
)

// DiscoveryResult is the engine's output for one discovery call.
type DiscoveryResult struct {
	RequestID         string           `json:"requestId"`
	Places            []PlaceCandidate `json:"places"`
	Source            ResultSource     `json:"source"`
	CacheHit          bool             `json:"cacheHit"`
	ExpansionCount    int              `json:"expansionCount"`
	FinalRadiusMeters int              `json:"finalRadiusMeters"`
	TotalResults      int              `json:"totalResults"`
	FiltersApplied    []string         `json:"filtersApplied"`
	QueryOptimization string           `json:"queryOptimization"`
	State             ExpansionState   `json:"state"`
}

// Clone returns a deep copy so the cache never shares mutable slices
// with callers.
func (r DiscoveryResult) Clone() DiscoveryResult {
	out := r

	if r.Places != nil {
		out.Places = make([]PlaceCandidate, len(r.Places))
		for i, p := range r.Places {
			out.Places[i] = p.Clone()
		}
	}
	if r.FiltersApplied != nil {
		out.FiltersApplied = append([]string(nil), r.FiltersApplied...)
	}
	out.State = r.State.Clone()

	return out
}

package types

// Phase is one step of the radius-expansion state machine. The values
// are the authoritative contract between the engine and any
// progress-reporting consumer.
type Phase string

const (
	PhaseInitial      Phase = "initial"
	PhaseSearching    Phase = "searching"
	PhaseExpanding    Phase = "expanding-distance"
	PhaseComplete     Phase = "complete"
	PhaseLimitReached Phase = "limit-reached"
)

// ExpansionState is a serializable snapshot of the expansion state
// machine. It is a plain value: consumers can marshal it, diff it, or
// render progress from it without reaching into the engine.
type ExpansionState struct {
	Phase Phase `json:"phase"`
	// CurrentRadiusMeters is the radius of the most recent (or ongoing)
	// provider query.
	CurrentRadiusMeters int `json:"currentRadiusMeters"`
	// ExpansionCount is how many times the radius has been widened,
	// always in [0, 3].
	ExpansionCount int `json:"expansionCount"`
	// RadiusHistory lists every radius attempted so far, in order.
	// On limit-reached it backs "why no results" diagnostics.
	RadiusHistory []int `json:"radiusHistory"`
}

// Clone returns a deep copy of the state snapshot.
func (s ExpansionState) Clone() ExpansionState {
	out := s
	if s.RadiusHistory != nil {
		out.RadiusHistory = append([]int(nil), s.RadiusHistory...)
	}
	return out
}

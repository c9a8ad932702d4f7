package discovery

import "github.com/galaapp/gala/pkg/discovery/types"

const (
	// maxExpansions caps how many times a search radius is widened
	// before giving up.
	maxExpansions = 3
	// expansionStepMeters is added to the radius on every expansion.
	expansionStepMeters = 500
)

// expansionController drives the minimum-result guarantee: it widens
// the search radius step by step and tracks the state machine exposed
// to progress consumers. Expansion steps are strictly sequential; the
// controller is owned by a single discovery call and is not safe for
// concurrent use.
type expansionController struct {
	state types.ExpansionState
}

func newExpansionController() *expansionController {
	return &expansionController{
		state: types.ExpansionState{Phase: types.PhaseInitial},
	}
}

// beginSearch moves to the searching phase at the given radius and
// records it in the history.
func (c *expansionController) beginSearch(radiusMeters int) {
	c.state.Phase = types.PhaseSearching
	c.state.CurrentRadiusMeters = radiusMeters
	c.state.RadiusHistory = append(c.state.RadiusHistory, radiusMeters)
}

// canExpand reports whether another widening attempt is allowed.
func (c *expansionController) canExpand() bool {
	return c.state.ExpansionCount < maxExpansions
}

// expand widens the radius by one step and returns the new radius.
// Callers must check canExpand first.
func (c *expansionController) expand() int {
	c.state.Phase = types.PhaseExpanding
	c.state.ExpansionCount++
	c.state.CurrentRadiusMeters += expansionStepMeters
	return c.state.CurrentRadiusMeters
}

// complete marks the terminal success phase.
func (c *expansionController) complete() {
	c.state.Phase = types.PhaseComplete
}

// limitReached marks the alternate terminal phase: expansions are
// exhausted and the minimum result count was never met. The caller
// must restart with a relaxed FilterSpec to search further.
func (c *expansionController) limitReached() {
	c.state.Phase = types.PhaseLimitReached
}

// snapshot returns a serializable copy of the current state.
func (c *expansionController) snapshot() types.ExpansionState {
	return c.state.Clone()
}

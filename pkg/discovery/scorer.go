package discovery

import (
	"fmt"
	"strings"

	"github.com/galaapp/gala/pkg/discovery/taxonomy"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/rs/zerolog"
)

// maxQueryTypes is the provider's per-call included-types limit.
const maxQueryTypes = 5

// QueryPlan describes how the active filters shaped one provider query.
type QueryPlan struct {
	// Types is the included-type list sent to the provider, at most
	// maxQueryTypes entries.
	Types []string
	// InitialRadiusMeters comes from the distance band lookup.
	InitialRadiusMeters int
	// SoftFilters names the dimensions that shaped Types.
	SoftFilters []string
	// Optimization is a human-readable summary for observability.
	Optimization string
}

// Scorer decides whether candidates satisfy the active filter set.
//
// Budget and time-of-day are strict post-filters. Mood, social context
// and category are soft: they select the provider query's included
// types up front instead of rejecting results after the fact, which
// avoids over-filtering a result set that already matched the query.
type Scorer struct {
	logger *zerolog.Logger
}

func NewScorer(logger *zerolog.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Plan resolves the provider query shape from the soft filter
// dimensions. When every soft dimension is unset, the plan falls back
// to a generic venue type list.
func (s *Scorer) Plan(spec types.FilterSpec) QueryPlan {
	spec = spec.Normalized()

	var (
		queryTypes []string
		soft       []string
		seen       = make(map[string]struct{})
	)

	add := func(dimension string, dimTypes []string) {
		if len(dimTypes) == 0 {
			return
		}
		soft = append(soft, dimension)
		for _, t := range dimTypes {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			queryTypes = append(queryTypes, t)
		}
	}

	// Category is the strongest signal, then social context, then mood.
	// Later dimensions only top up remaining type slots.
	if spec.Category != types.CategoryNone {
		add("category", taxonomy.CategoryTypes(spec.Category))
	}
	if spec.SocialContext != types.SocialNone {
		add("socialContext", taxonomy.SocialTypes(spec.SocialContext))
	}
	add("mood", taxonomy.MoodTypes(taxonomy.ClassifyMood(spec.Mood)))

	if len(queryTypes) > maxQueryTypes {
		queryTypes = queryTypes[:maxQueryTypes]
	}

	band := taxonomy.ClassifyDistance(spec.DistanceRange)

	optimization := fmt.Sprintf(
		"query types from [%s], radius %dm from %s band",
		strings.Join(soft, ", "), band.RadiusMeters, band.ID,
	)

	s.logger.Debug().
		Strs("types", queryTypes).
		Int("radius_m", band.RadiusMeters).
		Msg("resolved query plan")

	return QueryPlan{
		Types:               queryTypes,
		InitialRadiusMeters: band.RadiusMeters,
		SoftFilters:         soft,
		Optimization:        optimization,
	}
}

// Filter applies the strict dimensions (budget, time of day) to the
// candidates and returns the survivors along with the list of filters
// that were actually evaluated. Unset dimensions are skipped, never
// treated as always-fail.
func (s *Scorer) Filter(spec types.FilterSpec, candidates []types.PlaceCandidate) ([]types.PlaceCandidate, []string) {
	spec = spec.Normalized()

	var applied []string
	if spec.Budget != types.BudgetNone {
		applied = append(applied, "budget")
	}
	if spec.TimeOfDay != types.TimeNone {
		applied = append(applied, "timeOfDay")
	}

	if len(applied) == 0 {
		return candidates, nil
	}

	passed := make([]types.PlaceCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if !taxonomy.BudgetCompatible(candidate.PriceLevel, spec.Budget) {
			continue
		}
		if !taxonomy.TimeOfDayCompatible(candidate.Types, spec.TimeOfDay) {
			continue
		}
		passed = append(passed, candidate)
	}

	s.logger.Debug().
		Int("in", len(candidates)).
		Int("out", len(passed)).
		Strs("applied", applied).
		Msg("applied strict filters")

	return passed, applied
}

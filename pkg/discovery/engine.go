package discovery

import (
	"context"
	"fmt"
	"sort"

	"github.com/alitto/pond/v2"
	"github.com/galaapp/gala/pkg/discovery/taxonomy"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine is the public entry point of the discovery subsystem. One
// Discover call sequences cache lookup, provider query, filtering,
// radius expansion and caching, and assembles the response envelope.
//
// It is responsible for:
// - Validating and normalizing the FilterSpec
// - Short-circuiting through the result cache
// - Driving the expansion controller until minResults is met
// - Degrading to the fallback set instead of failing
// - Enriching results (budget tier, open-now, details, descriptions)
type Engine struct {
	logger     *zerolog.Logger
	config     *Config
	cache      *ResultCache
	scorer     *Scorer
	source     placeSource
	fallback   fallbackSource
	describer  placeDescriber
	detailPool pond.Pool
}

// placeSource is the external-provider adapter contract. Both calls
// absorb provider failures: Search returns an empty slice and Details
// returns nil once retries are exhausted, never an error.
type placeSource interface {
	Search(ctx context.Context, center types.LatLng, radiusMeters int, placeTypes []string) []types.PlaceCandidate
	Details(ctx context.Context, id string) *types.PlaceCandidate
}

// fallbackSource supplies the static candidate set used when the
// provider yields nothing usable.
type fallbackSource interface {
	Candidates(spec types.FilterSpec) []types.PlaceCandidate
}

// placeDescriber produces a cosmetic one-paragraph description. It must
// never fail; implementations fall back to a templated description.
type placeDescriber interface {
	Describe(ctx context.Context, place types.PlaceCandidate, spec types.FilterSpec) string
}

func NewEngine(
	logger *zerolog.Logger,
	config *Config,
	source placeSource,
	fallback fallbackSource,
	describer placeDescriber,
) *Engine {
	return &Engine{
		logger:     logger,
		config:     config,
		cache:      NewResultCache(config.CacheCapacity, logger),
		scorer:     NewScorer(logger),
		source:     source,
		fallback:   fallback,
		describer:  describer,
		detailPool: pond.NewPool(config.DetailConcurrency),
	}
}

// Cache exposes the result cache for stats reporting.
func (e *Engine) Cache() *ResultCache {
	return e.cache
}

// Discover runs one discovery call, consulting the result cache first.
func (e *Engine) Discover(ctx context.Context, spec types.FilterSpec) (*types.DiscoveryResult, error) {
	return e.discover(ctx, spec, true)
}

// DiscoverFresh runs one discovery call bypassing the cache lookup.
// The final result is still written back to the cache.
func (e *Engine) DiscoverFresh(ctx context.Context, spec types.FilterSpec) (*types.DiscoveryResult, error) {
	return e.discover(ctx, spec, false)
}

func (e *Engine) discover(ctx context.Context, spec types.FilterSpec, useCache bool) (*types.DiscoveryResult, error) {
	spec = spec.Normalized()
	if err := lib.ValidateStruct(&spec); err != nil {
		return nil, fmt.Errorf("validate filter spec: %w", err)
	}

	requestID := uuid.NewString()
	reqLogger := e.logger.With().Str("request_id", requestID).Logger()

	fingerprint := Fingerprint(spec)

	if useCache {
		if cached, ok := e.cache.Get(fingerprint); ok {
			cached.RequestID = requestID
			cached.CacheHit = true
			cached.Source = types.SourceCache
			reqLogger.Debug().
				Str("fingerprint", fingerprint).
				Msg("serving discovery from cache")
			return &cached, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	plan := e.scorer.Plan(spec)
	controller := newExpansionController()

	var (
		passed  []types.PlaceCandidate
		applied []string
		radius  = plan.InitialRadiusMeters
	)

	for {
		controller.beginSearch(radius)

		candidates := e.source.Search(callCtx, spec.UserLocation, radius, plan.Types)
		passed, applied = e.scorer.Filter(spec, candidates)

		if len(passed) >= spec.MinResults {
			controller.complete()
			break
		}

		if !controller.canExpand() || callCtx.Err() != nil {
			controller.limitReached()
			break
		}

		radius = controller.expand()
		reqLogger.Debug().
			Int("radius_m", radius).
			Int("results", len(passed)).
			Msg("expanding search radius")
	}

	// Caller walked away: abandon the call, cache nothing.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	source := types.SourceAPI
	if len(passed) == 0 {
		passed = e.fallback.Candidates(spec)
		source = types.SourceFallback
		reqLogger.Warn().
			Ints("radius_history", controller.snapshot().RadiusHistory).
			Msg("provider yielded no usable results, serving fallback set")
	}

	sort.SliceStable(passed, func(i, j int) bool {
		if passed[i].Rating != passed[j].Rating {
			return passed[i].Rating > passed[j].Rating
		}
		return passed[i].ReviewCount > passed[j].ReviewCount
	})

	if source == types.SourceAPI && e.config.EnrichDetails {
		e.enrichDetails(callCtx, spec, passed)
	}
	e.annotate(callCtx, spec, passed)

	state := controller.snapshot()
	result := types.DiscoveryResult{
		RequestID:         requestID,
		Places:            passed,
		Source:            source,
		CacheHit:          false,
		ExpansionCount:    state.ExpansionCount,
		FinalRadiusMeters: state.CurrentRadiusMeters,
		TotalResults:      len(passed),
		FiltersApplied:    append(append([]string(nil), plan.SoftFilters...), applied...),
		QueryOptimization: plan.Optimization,
		State:             state,
	}

	ttl := e.config.CacheTTL
	if source == types.SourceFallback {
		ttl = e.config.FallbackCacheTTL
	}
	e.cache.Set(fingerprint, result, ttl)

	reqLogger.Info().
		Str("source", string(source)).
		Str("phase", string(state.Phase)).
		Int("results", len(passed)).
		Int("expansions", state.ExpansionCount).
		Int("final_radius_m", state.CurrentRadiusMeters).
		Msg("discovery complete")

	return &result, nil
}

// enrichDetails issues bounded-concurrency detail calls for the top
// candidates. Detail failures leave the candidate as-is.
func (e *Engine) enrichDetails(ctx context.Context, spec types.FilterSpec, places []types.PlaceCandidate) {
	limit := spec.MinResults
	if limit > len(places) {
		limit = len(places)
	}

	group := e.detailPool.NewGroup()
	for i := range places[:limit] {
		group.Submit(func() {
			details := e.source.Details(ctx, places[i].ID)
			if details == nil {
				return
			}
			if details.Website != "" {
				places[i].Website = details.Website
			}
			if len(details.OpeningPeriods) > 0 {
				places[i].OpeningPeriods = details.OpeningPeriods
			}
			if details.Rating > 0 {
				places[i].Rating = details.Rating
				places[i].ReviewCount = details.ReviewCount
			}
		})
	}
	group.Wait()
}

// annotate fills the enrichment fields derived from taxonomy plus the
// cosmetic description.
func (e *Engine) annotate(ctx context.Context, spec types.FilterSpec, places []types.PlaceCandidate) {
	for i := range places {
		places[i].Budget = taxonomy.ClassifyPriceLevel(places[i].PriceLevel)
		places[i].OpenNow = taxonomy.OpenDuring(places[i].OpeningPeriods, spec.TimeOfDay)

		if e.describer != nil {
			places[i].Description = e.describer.Describe(ctx, places[i], spec)
		} else {
			places[i].Description = TemplateDescription(places[i], spec)
		}
	}
}

package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// maxTypesPerRequest is the provider's included-types limit per
	// search call; longer type lists are split into batches.
	maxTypesPerRequest = 5

	searchMaxAttempts = 3
	detailMaxAttempts = 2

	searchFieldMask = "places.id,places.displayName,places.formattedAddress,places.types,places.rating,places.userRatingCount,places.priceLevel,places.location"
	detailFieldMask = "id,displayName,formattedAddress,types,rating,userRatingCount,priceLevel,location,websiteUri,regularOpeningHours"
)

// Client issues place-search and place-detail requests to the external
// provider with bounded retry, exponential backoff and a circuit
// breaker on the search path. It holds no mutable state between calls
// beyond the breaker's counters.
type Client struct {
	httpClient *http.Client
	config     *Config
	logger     *zerolog.Logger
	breaker    *gobreaker.CircuitBreaker[[]rawPlace]
}

func NewClient(config *Config, logger *zerolog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "places-search",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	}

	return &Client{
		httpClient: lib.DefaultHTTPClient,
		config:     config,
		logger:     logger,
		breaker:    gobreaker.NewCircuitBreaker[[]rawPlace](settings),
	}
}

// Search queries the provider for places of the given types around the
// center. Type lists longer than the provider limit are issued as
// concurrent batches and the responses merged and deduplicated by
// place ID. Provider failures are absorbed: after retries (or with the
// breaker open) the failed batch simply contributes no results.
func (c *Client) Search(ctx context.Context, center types.LatLng, radiusMeters int, placeTypes []string) []types.PlaceCandidate {
	batches := batchTypes(placeTypes, maxTypesPerRequest)
	if len(batches) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		merged []types.PlaceCandidate
		seen   = make(map[string]struct{})
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, batch := range batches {
		g.Go(func() error {
			raws, err := lib.Retry(gctx, searchMaxAttempts, c.config.SearchRetryBaseDelay,
				func(ctx context.Context) ([]rawPlace, error) {
					return c.breaker.Execute(func() ([]rawPlace, error) {
						return c.searchOnce(ctx, center, radiusMeters, batch)
					})
				})
			if err != nil {
				// Exhausted retries count as an empty batch, not a failure.
				c.logger.Warn().
					Err(err).
					Strs("types", batch).
					Int("radius_m", radiusMeters).
					Msg("search batch exhausted retries")
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			for _, raw := range raws {
				if _, ok := seen[raw.ID]; ok {
					continue
				}
				seen[raw.ID] = struct{}{}
				merged = append(merged, normalizePlace(raw))
			}
			return nil
		})
	}

	// Batch errors are absorbed above; Wait only observes ctx cancellation.
	_ = g.Wait()

	c.logger.Debug().
		Int("batches", len(batches)).
		Int("results", len(merged)).
		Msg("search complete")

	return merged
}

func (c *Client) searchOnce(ctx context.Context, center types.LatLng, radiusMeters int, placeTypes []string) ([]rawPlace, error) {
	reqBody := searchNearbyRequest{
		IncludedTypes:  placeTypes,
		MaxResultCount: c.config.MaxResults,
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: latLng{Latitude: center.Lat, Longitude: center.Lng},
				Radius: float64(radiusMeters),
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	url := fmt.Sprintf("%s/places:searchNearby", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.config.APIKey)
	req.Header.Set("X-Goog-FieldMask", searchFieldMask)

	response, err := lib.DecodeJSONFromRequest[searchNearbyResponse](c.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("search nearby: %w", err)
	}

	return response.Places, nil
}

// Details fetches the deeper fields for one place. It returns nil once
// retries are exhausted; callers must treat that as "no data".
func (c *Client) Details(ctx context.Context, id string) *types.PlaceCandidate {
	raw, err := lib.Retry(ctx, detailMaxAttempts, c.config.DetailRetryBaseDelay,
		func(ctx context.Context) (rawPlace, error) {
			return c.detailsOnce(ctx, id)
		})
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("place_id", id).
			Msg("detail call exhausted retries")
		return nil
	}

	candidate := normalizePlace(raw)
	return &candidate
}

func (c *Client) detailsOnce(ctx context.Context, id string) (rawPlace, error) {
	url := fmt.Sprintf("%s/places/%s", c.config.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return rawPlace{}, fmt.Errorf("create detail request: %w", err)
	}

	req.Header.Set("X-Goog-Api-Key", c.config.APIKey)
	req.Header.Set("X-Goog-FieldMask", detailFieldMask)

	raw, err := lib.DecodeJSONFromRequest[rawPlace](c.httpClient, req)
	if err != nil {
		return rawPlace{}, fmt.Errorf("place details: %w", err)
	}

	return raw, nil
}

func batchTypes(placeTypes []string, size int) [][]string {
	var batches [][]string
	for len(placeTypes) > size {
		batches = append(batches, placeTypes[:size])
		placeTypes = placeTypes[size:]
	}
	if len(placeTypes) > 0 {
		batches = append(batches, placeTypes)
	}
	return batches
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/galaapp/gala/pkg/discovery"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
	"github.com/galaapp/gala/pkg/nlp"
	"github.com/rs/zerolog"
)

type fakeEngine struct {
	cache         *discovery.ResultCache
	lastSpec      types.FilterSpec
	freshRequests int
	result        *types.DiscoveryResult
	err           error
}

func (f *fakeEngine) Discover(_ context.Context, spec types.FilterSpec) (*types.DiscoveryResult, error) {
	f.lastSpec = spec
	return f.result, f.err
}

func (f *fakeEngine) DiscoverFresh(_ context.Context, spec types.FilterSpec) (*types.DiscoveryResult, error) {
	f.freshRequests++
	f.lastSpec = spec
	return f.result, f.err
}

func (f *fakeEngine) Cache() *discovery.ResultCache {
	return f.cache
}

type fakeAnalyzer struct {
	hints *nlp.FilterHints
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ string) (*nlp.FilterHints, error) {
	return f.hints, nil
}

func newTestServer(t *testing.T, engine *fakeEngine, analyzer filterAnalyzer) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()
	if engine.cache == nil {
		engine.cache = discovery.NewResultCache(10, &logger)
	}
	server := NewServer(&logger, &Config{Host: "localhost", Port: 0}, engine, analyzer)
	ts := httptest.NewServer(server.http.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestDiscoverHandler(t *testing.T) {
	engine := &fakeEngine{result: &types.DiscoveryResult{
		RequestID: "req-1",
		Source:    types.SourceAPI,
		Places:    []types.PlaceCandidate{{ID: "p1", Name: "Kapehan sa Kanto"}},
	}}
	ts := newTestServer(t, engine, nil)

	body := `{"filters": {"mood": 20, "budget": "P", "userLocation": {"lat": 14.5995, "lng": 120.9842}}}`
	resp, err := http.Post(ts.URL+"/api/discover", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result types.DiscoveryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.RequestID != "req-1" {
		t.Errorf("RequestID = %q", result.RequestID)
	}
	if engine.lastSpec.Budget != types.BudgetP {
		t.Errorf("decoded budget = %v, want P", engine.lastSpec.Budget)
	}
	if engine.freshRequests != 0 {
		t.Error("Discover should not bypass the cache by default")
	}
}

func TestDiscoverHandler_FreshBypassesCache(t *testing.T) {
	engine := &fakeEngine{result: &types.DiscoveryResult{RequestID: "req-2"}}
	ts := newTestServer(t, engine, nil)

	body := `{"filters": {"userLocation": {"lat": 14.6, "lng": 121.0}}, "fresh": true}`
	resp, err := http.Post(ts.URL+"/api/discover", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if engine.freshRequests != 1 {
		t.Errorf("freshRequests = %d, want 1", engine.freshRequests)
	}
}

func TestDiscoverHandler_ValidationErrorIs400(t *testing.T) {
	engine := &fakeEngine{err: lib.ValidationErrors{Errors: []string{"Budget oneof"}}}
	ts := newTestServer(t, engine, nil)

	body := `{"filters": {"budget": "PPPP", "userLocation": {"lat": 14.6, "lng": 121.0}}}`
	resp, err := http.Post(ts.URL+"/api/discover", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDiscoverHandler_MalformedBodyIs400(t *testing.T) {
	ts := newTestServer(t, &fakeEngine{}, nil)

	resp, err := http.Post(ts.URL+"/api/discover", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnalyzeHandler(t *testing.T) {
	analyzer := &fakeAnalyzer{hints: &nlp.FilterHints{
		MoodScore:  20,
		Budget:     types.BudgetP,
		Categories: []types.Category{types.CategoryFood},
	}}
	ts := newTestServer(t, &fakeEngine{}, analyzer)

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"text": "chill coffee"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var hints nlp.FilterHints
	if err := json.NewDecoder(resp.Body).Decode(&hints); err != nil {
		t.Fatal(err)
	}
	if hints.Budget != types.BudgetP {
		t.Errorf("Budget = %v, want P", hints.Budget)
	}
}

func TestAnalyzeHandler_UnconfiguredIs503(t *testing.T) {
	ts := newTestServer(t, &fakeEngine{}, nil)

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"text": "anything"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestCacheStatsHandler(t *testing.T) {
	ts := newTestServer(t, &fakeEngine{}, nil)

	resp, err := http.Get(ts.URL + "/api/cache/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var stats discovery.CacheStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalRequests != 0 {
		t.Errorf("TotalRequests = %d, want 0", stats.TotalRequests)
	}
}

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t, &fakeEngine{}, nil)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, &fakeEngine{}, nil)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/discover", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "https://gala.example")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

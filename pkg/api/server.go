package api

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/galaapp/gala/pkg/discovery"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/nlp"
	"github.com/rs/zerolog"
	httpswagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.yaml
var openapiSpecYaml string

type discoveryEngine interface {
	Discover(ctx context.Context, spec types.FilterSpec) (*types.DiscoveryResult, error)
	DiscoverFresh(ctx context.Context, spec types.FilterSpec) (*types.DiscoveryResult, error)
	Cache() *discovery.ResultCache
}

type filterAnalyzer interface {
	Analyze(ctx context.Context, text string) (*nlp.FilterHints, error)
}

type Server struct {
	engine   discoveryEngine
	analyzer filterAnalyzer
	logger   *zerolog.Logger
	http     http.Server
}

// NewServer wires the HTTP surface. The analyzer may be nil when no
// completion model is configured; /api/analyze then returns 503.
func NewServer(
	logger *zerolog.Logger,
	config *Config,
	engine discoveryEngine,
	analyzer filterAnalyzer,
) *Server {
	mux := http.NewServeMux()

	server := &Server{
		logger:   logger,
		engine:   engine,
		analyzer: analyzer,
		http: http.Server{
			Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler: corsMiddleware(mux, config.CORSOrigin),
		},
	}

	mux.HandleFunc("POST /api/discover", server.discover)
	mux.HandleFunc("POST /api/analyze", server.analyze)
	mux.HandleFunc("GET /api/cache/stats", server.cacheStats)
	mux.HandleFunc("GET /health", server.health)
	server.registerApiDocsHandlers(mux)

	return server
}

func corsMiddleware(next http.Handler, originConfig string) http.Handler {
	origins := strings.Split(originConfig, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestOrigin := r.Header.Get("Origin")

		if len(origins) == 1 && origins[0] == "*" {
			// Allow all origins
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if requestOrigin != "" && slices.Contains(origins, requestOrigin) {
			// CORS doesn't support multiple origins,
			// so we either set the origin in the header or not at all.
			w.Header().Set("Access-Control-Allow-Origin", requestOrigin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerApiDocsHandlers(mux *http.ServeMux) {
	mux.Handle("/docs/", httpswagger.Handler(
		httpswagger.URL("/docs/openapi.yaml"),
	))
	mux.HandleFunc("/docs/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")

		_, err := w.Write([]byte(openapiSpecYaml))
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			s.logger.Error().Err(err).Msg("response write error")
		}
	})
}

func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	return s.http.Close()
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
)

type discoverRequest struct {
	Filters types.FilterSpec `json:"filters"`
	// Fresh bypasses the result cache for this request only.
	Fresh bool `json:"fresh,omitempty"`
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (s *Server) discover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	discoverFn := s.engine.Discover
	if req.Fresh {
		discoverFn = s.engine.DiscoverFresh
	}

	result, err := discoverFn(r.Context(), req.Filters)
	if err != nil {
		var validationErrs lib.ValidationErrors
		if errors.As(err, &validationErrs) {
			s.badRequest(w, err, "validate filters")
			return
		}
		s.internalError(w, err, "discover places")
		return
	}

	s.serializeRes(w, result)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		http.Error(w, "Text analysis is not configured", http.StatusServiceUnavailable)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Field 'text' is required", http.StatusBadRequest)
		return
	}

	hints, err := s.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		s.internalError(w, err, "analyze request text")
		return
	}

	s.serializeRes(w, hints)
}

func (s *Server) cacheStats(w http.ResponseWriter, _ *http.Request) {
	s.serializeRes(w, s.engine.Cache().Stats())
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.serializeRes(w, map[string]string{"status": "ok"})
}

func (s *Server) serializeRes(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) badRequest(w http.ResponseWriter, err error, msg string) {
	s.logger.Debug().Err(err).Msg("Bad request: " + msg)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (s *Server) internalError(w http.ResponseWriter, err error, msg string) {
	s.logger.Error().Err(err).Msg("Internal error: " + msg)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

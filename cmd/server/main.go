package main

import (
	"fmt"
	"os"

	"github.com/galaapp/gala/pkg/api"
	"github.com/galaapp/gala/pkg/config"
	"github.com/galaapp/gala/pkg/discovery"
	"github.com/galaapp/gala/pkg/lib/log"
	"github.com/galaapp/gala/pkg/nlp"
	"github.com/galaapp/gala/pkg/sources/places"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}

func run() error {
	err := godotenv.Load()
	if err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	server, err := initServer(logger, cfg)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	logger.Info().
		Str("host", cfg.API.Host).
		Uint16("port", cfg.API.Port).
		Msg("Starting server")

	if err := server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return nil
}

func initServer(logger *zerolog.Logger, cfg *config.Config) (*api.Server, error) {
	placeClient := places.NewClient(&cfg.Places, logger)
	fallbackSet := places.NewFallbackSet()

	var analyzer *nlp.FilterAnalyzer
	var describer *nlp.PlaceDescriber

	// Without an API key the analyzer stays off and descriptions are
	// templated rather than model generated.
	if os.Getenv("OPENAI_API_KEY") != "" {
		completionModel, err := openai.New(
			openai.WithModel(cfg.NLP.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create completion model: %w", err)
		}

		llmCache := nlp.NewCompletionCache(cfg.NLP.CacheTTL, logger)
		cachedModel := nlp.NewCachedModel(completionModel, llmCache)

		analyzer = nlp.NewFilterAnalyzer(cachedModel, logger)
		describer = nlp.NewPlaceDescriber(cachedModel, logger)
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, text analysis disabled")
		describer = nlp.NewPlaceDescriber(nil, logger)
	}

	engine := discovery.NewEngine(logger, &cfg.Discovery, placeClient, fallbackSet, describer)

	if analyzer != nil {
		return api.NewServer(logger, &cfg.API, engine, analyzer), nil
	}
	return api.NewServer(logger, &cfg.API, engine, nil), nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/galaapp/gala/pkg/config"
	"github.com/galaapp/gala/pkg/discovery"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib/log"
	"github.com/galaapp/gala/pkg/nlp"
	"github.com/galaapp/gala/pkg/sources/places"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// One-shot discovery from the command line. Reads filters from flags,
// prints the result as JSON on stdout.
func main() {
	var (
		mood       = flag.Float64("mood", 50, "mood score from 0 (chill) to 100 (hype)")
		category   = flag.String("category", "none", "category: food, activity, something-new or none")
		budget     = flag.String("budget", "none", "budget tier: P, PP, PPP or none")
		timeOfDay  = flag.String("time", "none", "time of day: morning, afternoon, night or none")
		social     = flag.String("social", "none", "social context: solo, with-bae, barkada or none")
		distance   = flag.Float64("distance", 50, "distance preference from 0 (very close) to 100 (far)")
		minResults = flag.Int("min-results", types.DefaultMinResults, "minimum acceptable result count")
		lat        = flag.Float64("lat", 14.5995, "search center latitude")
		lng        = flag.Float64("lng", 120.9842, "search center longitude")
		fresh      = flag.Bool("fresh", false, "bypass the result cache")
	)
	flag.Parse()

	logger := zerolog.New(os.Stderr)

	// A missing .env is fine here, flags and env defaults cover the CLI.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	fileLogger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create logger")
	}

	placeClient := places.NewClient(&cfg.Places, fileLogger)
	fallbackSet := places.NewFallbackSet()
	describer := nlp.NewPlaceDescriber(nil, fileLogger)

	engine := discovery.NewEngine(fileLogger, &cfg.Discovery, placeClient, fallbackSet, describer)

	spec := types.FilterSpec{
		Mood:          *mood,
		Category:      types.Category(*category),
		Budget:        types.Budget(*budget),
		TimeOfDay:     types.TimeOfDay(*timeOfDay),
		SocialContext: types.SocialContext(*social),
		DistanceRange: *distance,
		MinResults:    *minResults,
		UserLocation:  types.LatLng{Lat: *lat, Lng: *lng},
	}

	discoverFn := engine.Discover
	if *fresh {
		discoverFn = engine.DiscoverFresh
	}

	result, err := discoverFn(context.Background(), spec)
	if err != nil {
		logger.Fatal().Err(err).Msg("Discovery failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode result")
	}
}

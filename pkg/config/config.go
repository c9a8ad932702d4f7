package config

import (
	"fmt"

	"github.com/galaapp/gala/pkg/api"
	"github.com/galaapp/gala/pkg/discovery"
	"github.com/galaapp/gala/pkg/lib"
	"github.com/galaapp/gala/pkg/lib/log"
	"github.com/galaapp/gala/pkg/nlp"
	"github.com/galaapp/gala/pkg/sources/places"
	"github.com/joeshaw/envdecode"
)

type Config struct {
	API       api.Config       `env:""`
	Log       log.Config       `env:""`
	Discovery discovery.Config `env:""`
	Places    places.Config    `env:""`
	NLP       nlp.Config       `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

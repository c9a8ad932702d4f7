package places

import "time"

type Config struct {
	BaseURL string `env:"PLACES_BASE_URL,default=https://places.googleapis.com/v1" validate:"required,url"`
	APIKey  string `env:"PLACES_API_KEY,default="`
	// MaxResults caps how many places one search call asks for.
	MaxResults int `env:"PLACES_MAX_RESULTS,default=20" validate:"min=1,max=20"`
	// Retry backoff bases. Delay before retry n is base * 2^(n-1).
	SearchRetryBaseDelay time.Duration `env:"PLACES_SEARCH_RETRY_BASE_DELAY,default=1s"`
	DetailRetryBaseDelay time.Duration `env:"PLACES_DETAIL_RETRY_BASE_DELAY,default=500ms"`
}

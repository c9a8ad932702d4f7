package nlp

import "time"

type Config struct {
	// Model is the completion model identifier. An empty OPENAI_API_KEY
	// disables the analyzer and makes descriptions templated.
	Model    string        `env:"NLP_MODEL,default=gpt-4o-mini"`
	CacheTTL time.Duration `env:"NLP_CACHE_TTL,default=2h"`
}

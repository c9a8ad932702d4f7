package nlp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/galaapp/gala/pkg/discovery"
	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

// describeTimeout bounds one description call; discovery must never
// wait long for cosmetic text.
const describeTimeout = 3 * time.Second

// PlaceDescriber produces a one-paragraph description for a place.
// It is purely cosmetic enrichment: when the model is absent, slow or
// failing, it falls back to a templated description and never returns
// an error.
type PlaceDescriber struct {
	model  completionModel
	logger *zerolog.Logger
}

// NewPlaceDescriber accepts a nil model; the describer then always
// serves templated descriptions.
func NewPlaceDescriber(model completionModel, logger *zerolog.Logger) *PlaceDescriber {
	return &PlaceDescriber{model: model, logger: logger}
}

func (d *PlaceDescriber) Describe(ctx context.Context, place types.PlaceCandidate, spec types.FilterSpec) string {
	if d.model == nil {
		return discovery.TemplateDescription(place, spec)
	}

	ctx, cancel := context.WithTimeout(ctx, describeTimeout)
	defer cancel()

	template := prompts.NewPromptTemplate(`Write one short, inviting paragraph (2-3 sentences) describing this venue for someone choosing where to go out. Plain text only, no markdown.

Venue: {{.name}}
Address: {{.address}}
Kinds: {{.kinds}}
Rating: {{.rating}} from {{.reviews}} reviews
Occasion mood (0 chill - 100 hype): {{.mood}}
Going: {{.social}}
`, []string{"name", "address", "kinds", "rating", "reviews", "mood", "social"})

	prompt, err := template.Format(map[string]any{
		"name":    place.Name,
		"address": place.Address,
		"kinds":   strings.Join(place.Types, ", "),
		"rating":  fmt.Sprintf("%.1f", place.Rating),
		"reviews": place.ReviewCount,
		"mood":    spec.Mood,
		"social":  string(spec.SocialContext),
	})
	if err != nil {
		d.logger.Warn().Err(err).Msg("format describe prompt")
		return discovery.TemplateDescription(place, spec)
	}

	out, err := d.model.Call(ctx, prompt, llms.WithTemperature(0.7))
	if err != nil {
		d.logger.Warn().
			Err(err).
			Str("place_id", place.ID).
			Msg("describe completion failed, using template")
		return discovery.TemplateDescription(place, spec)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return discovery.TemplateDescription(place, spec)
	}

	return out
}

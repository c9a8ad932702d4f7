package discovery

import (
	"fmt"
	"strings"

	"github.com/galaapp/gala/pkg/discovery/taxonomy"
	"github.com/galaapp/gala/pkg/discovery/types"
)

// TemplateDescription renders a plain templated description for a
// place. It is the non-LLM fallback used when no text generator is
// configured or the generator fails.
func TemplateDescription(place types.PlaceCandidate, spec types.FilterSpec) string {
	spec = spec.Normalized()

	var parts []string

	kind := "spot"
	if len(place.Types) > 0 {
		kind = strings.ReplaceAll(place.Types[0], "_", " ")
	}

	switch taxonomy.ClassifyMood(spec.Mood) {
	case taxonomy.MoodChill:
		parts = append(parts, fmt.Sprintf("%s is a laid-back %s", place.Name, kind))
	case taxonomy.MoodHype:
		parts = append(parts, fmt.Sprintf("%s is a lively %s", place.Name, kind))
	default:
		parts = append(parts, fmt.Sprintf("%s is a %s", place.Name, kind))
	}

	if place.Rating > 0 {
		parts = append(parts, fmt.Sprintf("rated %.1f by %d reviewers", place.Rating, place.ReviewCount))
	}

	switch spec.SocialContext {
	case types.SocialSolo:
		parts = append(parts, "a good pick for some alone time")
	case types.SocialWithBae:
		parts = append(parts, "a good pick for a date")
	case types.SocialBarkada:
		parts = append(parts, "a good pick for the whole barkada")
	}

	return strings.Join(parts, ", ") + "."
}

package taxonomy

import (
	"strings"

	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var categoryTypes = map[types.Category][]string{
	types.CategoryFood:         {"restaurant", "cafe", "bakery", "bar", "meal_takeaway", "food_court"},
	types.CategoryActivity:     {"amusement_park", "bowling_alley", "movie_theater", "park", "tourist_attraction", "arcade"},
	types.CategorySomethingNew: {"art_gallery", "museum", "tourist_attraction", "night_club", "market", "spa"},
}

// Free-form words (from the text analyzer or search queries) that map
// onto a category.
var categoryAliases = map[types.Category][]string{
	types.CategoryFood:         {"food", "eat", "restaurant", "dinner", "lunch", "breakfast", "snack", "kain", "cafe", "coffee"},
	types.CategoryActivity:     {"activity", "play", "games", "bowling", "movies", "outdoors", "adventure", "fun"},
	types.CategorySomethingNew: {"new", "explore", "discover", "random", "surprise", "different"},
}

// CategoryTypes returns the place types a category favors; empty when
// the category is unset or unknown.
func CategoryTypes(category types.Category) []string {
	return categoryTypes[category]
}

// CategoryCompatible reports whether a candidate's types overlap the
// category's preferred types. An unset category never excludes.
func CategoryCompatible(candidateTypes []string, category types.Category) bool {
	if category == types.CategoryNone || category == "" {
		return true
	}
	return overlaps(candidateTypes, categoryTypes[category])
}

// ResolveCategory fuzzy-matches a free-form word onto a category.
// Returns CategoryNone when nothing matches closely enough.
func ResolveCategory(word string) types.Category {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return types.CategoryNone
	}

	best := types.CategoryNone
	bestRank := -1

	for category, aliases := range categoryAliases {
		for _, alias := range aliases {
			rank := fuzzy.RankMatchNormalizedFold(word, alias)
			if rank < 0 {
				continue
			}
			// Lower rank means a closer match.
			if bestRank == -1 || rank < bestRank {
				best = category
				bestRank = rank
			}
		}
	}

	return best
}

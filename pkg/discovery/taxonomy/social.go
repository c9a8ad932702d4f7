package taxonomy

import "github.com/galaapp/gala/pkg/discovery/types"

var socialTypes = map[types.SocialContext][]string{
	types.SocialSolo:    {"cafe", "library", "book_store", "museum", "art_gallery", "park"},
	types.SocialWithBae: {"restaurant", "cafe", "movie_theater", "park", "art_gallery", "spa"},
	types.SocialBarkada: {"restaurant", "bar", "karaoke", "bowling_alley", "amusement_park", "night_club"},
}

// SocialTypes returns the place types a social context favors; empty
// when the context is unset or unknown.
func SocialTypes(social types.SocialContext) []string {
	return socialTypes[social]
}

// SocialCompatible reports whether a candidate's types overlap the
// social context's preferred types. An unset context never excludes.
func SocialCompatible(candidateTypes []string, social types.SocialContext) bool {
	if social == types.SocialNone || social == "" {
		return true
	}
	return overlaps(candidateTypes, socialTypes[social])
}

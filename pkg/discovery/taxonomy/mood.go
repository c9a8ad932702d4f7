package taxonomy

import "github.com/galaapp/gala/pkg/lib"

// MoodBand partitions the continuous 0-100 mood score.
type MoodBand string

const (
	MoodChill   MoodBand = "chill"
	MoodNeutral MoodBand = "neutral"
	MoodHype    MoodBand = "hype"
)

// Band boundaries are shared with the client bit-for-bit and must not
// drift: chill = [0, 33.33], neutral = (33.33, 66.66], hype = (66.66, 100].
const (
	MoodChillMax   = 33.33
	MoodNeutralMax = 66.66
)

var moodTypes = map[MoodBand][]string{
	MoodChill:   {"cafe", "book_store", "library", "park", "art_gallery", "spa"},
	MoodNeutral: {"restaurant", "cafe", "shopping_mall", "museum", "movie_theater"},
	MoodHype:    {"bar", "night_club", "karaoke", "amusement_park", "bowling_alley", "arcade"},
}

// ClassifyMood maps a raw score to its band. Out-of-range scores are
// clamped first.
func ClassifyMood(score float64) MoodBand {
	score = lib.Clamp(score, 0, 100)

	switch {
	case score <= MoodChillMax:
		return MoodChill
	case score <= MoodNeutralMax:
		return MoodNeutral
	default:
		return MoodHype
	}
}

// MoodTypes returns the place types a mood band favors.
func MoodTypes(band MoodBand) []string {
	return moodTypes[band]
}

// MoodCompatible reports whether a candidate's types overlap the band's
// preferred types.
func MoodCompatible(candidateTypes []string, band MoodBand) bool {
	return overlaps(candidateTypes, moodTypes[band])
}

package places

import "github.com/galaapp/gala/pkg/discovery/types"

// Provider price levels are enum strings; the engine works with the
// 0-4 integer scale.
var priceLevelScale = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// normalizePlace is the single translation boundary from the provider's
// record shape to the engine's immutable PlaceCandidate.
func normalizePlace(raw rawPlace) types.PlaceCandidate {
	candidate := types.PlaceCandidate{
		ID:          raw.ID,
		Name:        raw.DisplayName.Text,
		Address:     raw.FormattedAddress,
		Types:       append([]string(nil), raw.Types...),
		Rating:      raw.Rating,
		ReviewCount: raw.UserRatingCount,
		Location: types.LatLng{
			Lat: raw.Location.Latitude,
			Lng: raw.Location.Longitude,
		},
		Website: raw.WebsiteURI,
	}

	if level, ok := priceLevelScale[raw.PriceLevel]; ok {
		candidate.PriceLevel = &level
	}

	if raw.RegularOpeningHours != nil {
		for _, p := range raw.RegularOpeningHours.Periods {
			period := types.OpeningPeriod{
				OpenDay:  p.Open.Day,
				OpenHour: p.Open.Hour,
			}
			if p.Close != nil {
				period.CloseDay = p.Close.Day
				period.CloseHour = p.Close.Hour
			} else {
				// No close point means always open.
				period.CloseDay = p.Open.Day
				period.CloseHour = p.Open.Hour + 24
			}
			candidate.OpeningPeriods = append(candidate.OpeningPeriods, period)
		}
	}

	return candidate
}

package taxonomy

import "github.com/galaapp/gala/pkg/discovery/types"

var timeOfDayTypes = map[types.TimeOfDay][]string{
	types.TimeMorning:   {"cafe", "bakery", "breakfast_restaurant", "park", "market"},
	types.TimeAfternoon: {"restaurant", "cafe", "museum", "shopping_mall", "park", "art_gallery"},
	types.TimeNight:     {"restaurant", "bar", "night_club", "karaoke", "movie_theater"},
}

// Local-hour windows per band. Night wraps past midnight.
var timeOfDayHours = map[types.TimeOfDay][2]int{
	types.TimeMorning:   {5, 12},
	types.TimeAfternoon: {12, 18},
	types.TimeNight:     {18, 29}, // 18:00 through 05:00 next day
}

// TimeOfDayTypes returns the place types a time-of-day band favors.
func TimeOfDayTypes(tod types.TimeOfDay) []string {
	return timeOfDayTypes[tod]
}

// TimeOfDayCompatible reports whether a candidate's types overlap the
// band's preferred types. An unset band never excludes.
func TimeOfDayCompatible(candidateTypes []string, tod types.TimeOfDay) bool {
	if tod == types.TimeNone || tod == "" {
		return true
	}
	return overlaps(candidateTypes, timeOfDayTypes[tod])
}

// OpenDuring reports whether any opening period intersects the
// time-of-day band on any weekday. It returns nil when periods are
// unavailable or the band is unset, true/false otherwise. The result
// annotates candidates; it is not an exclusion filter.
func OpenDuring(periods []types.OpeningPeriod, tod types.TimeOfDay) *bool {
	if len(periods) == 0 {
		return nil
	}

	window, ok := timeOfDayHours[tod]
	if !ok {
		return nil
	}

	for _, p := range periods {
		openHour := p.OpenHour
		closeHour := p.CloseHour
		if closeHour <= openHour {
			// Venue stays open past midnight.
			closeHour += 24
		}

		if openHour < window[1] && closeHour > window[0] {
			open := true
			return &open
		}
	}

	closed := false
	return &closed
}

// Package taxonomy holds the static preference catalogs (mood, budget,
// social context, time of day, distance, category) and the pure
// compatibility functions operating on them.
//
// Compatibility is always a set-overlap test: a candidate needs only
// one place type in common with a category's preferred types. An unset
// ("none") dimension never excludes a candidate.
package taxonomy

func overlaps(candidateTypes []string, preferred []string) bool {
	if len(preferred) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(preferred))
	for _, t := range preferred {
		set[t] = struct{}{}
	}

	for _, t := range candidateTypes {
		if _, ok := set[t]; ok {
			return true
		}
	}

	return false
}

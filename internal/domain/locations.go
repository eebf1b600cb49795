package domain

// Fixed allow-list of locations accepted on the write path. Matching is
// exact string equality, no trimming or case folding.
var validLocations = map[string]struct{}{
	"Albuquerque, New Mexico":    {},
	"Carlsbad, California":       {},
	"Chula Vista, California":    {},
	"Colorado Springs, Colorado": {},
	"Denver, Colorado":           {},
	"El Cajon, California":       {},
	"El Paso, Texas":             {},
	"Escondido, California":      {},
	"Fresno, California":         {},
	"La Mesa, California":        {},
	"Las Vegas, Nevada":          {},
	"Los Angeles, California":    {},
	"Oceanside, California":      {},
	"Phoenix, Arizona":           {},
	"Sacramento, California":     {},
	"Salt Lake City, Utah":       {},
	"San Diego, California":      {},
	"Tucson, Arizona":            {},
}

func ValidLocation(s string) bool {
	_, ok := validLocations[s]
	return ok
}

// Locations returns a copy of the allow-list for diagnostics.
func Locations() []string {
	out := make([]string, 0, len(validLocations))
	for l := range validLocations {
		out = append(out, l)
	}
	return out
}

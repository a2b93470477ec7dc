package artist

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/artistly/pkg/slice"
)

// Apply returns the artists matching every active constraint, in input order.
//
//   - category: some category of the artist contains it (case-insensitive)
//   - location: the location contains it (case-insensitive)
//   - priceRange: exact label equality
//   - query: name, bio or some category contains it (case-insensitive)
//
// The input is never modified. No match yields an empty, non-nil slice.
func Apply(artists []Artist, options FilterOptions, query string) []Artist {
	if artists == nil {
		return []Artist{}
	}

	// A Caser is stateful, so each call gets its own.
	caser := cases.Lower(language.Und)
	lower := func(s string) string { return caser.String(s) }

	category := lower(options.Category)
	location := lower(options.Location)
	search := lower(query)

	return slice.Filter(artists, func(a Artist) bool {
		if category != "" && !anyContains(a.Category, category, lower) {
			return false
		}
		if location != "" && !strings.Contains(lower(a.Location), location) {
			return false
		}
		if options.PriceRange != "" && a.PriceRange != options.PriceRange {
			return false
		}
		if search != "" &&
			!strings.Contains(lower(a.Name), search) &&
			!strings.Contains(lower(a.Bio), search) &&
			!anyContains(a.Category, search, lower) {
			return false
		}
		return true
	})
}

func anyContains(values []string, needle string, lower func(string) string) bool {
	for _, value := range values {
		if strings.Contains(lower(value), needle) {
			return true
		}
	}
	return false
}

package artist_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artistly/internal/core/artist"
)

func TestParseFilter(t *testing.T) {
	values := url.Values{
		"category":   {"All"},
		"location":   {"Mumbai, Maharashtra"},
		"priceRange": {""},
		"q":          {"ghazal"},
	}

	filter := artist.ParseFilter(values)

	assert.Equal(t, artist.Filter{
		Options: artist.FilterOptions{Location: "Mumbai, Maharashtra"},
		Query:   "ghazal",
	}, filter)
	assert.True(t, filter.Active())
	assert.True(t, filter.Options.Active())
}

func TestParseFilter_KeepsWhitespaceValues(t *testing.T) {
	filter := artist.ParseFilter(url.Values{"location": {" "}})

	assert.Equal(t, " ", filter.Options.Location)
	assert.True(t, filter.Options.Active())
}

func TestParseFilter_Empty(t *testing.T) {
	filter := artist.ParseFilter(url.Values{})
	assert.False(t, filter.Active())
}

func TestFilter_ValuesRoundTrip(t *testing.T) {
	filter := artist.Filter{Options: artist.FilterOptions{Category: "DJ", PriceRange: "₹20,000-40,000"}}

	values := filter.Values()
	assert.Equal(t, "DJ", values.Get("category"))
	assert.False(t, values.Has("location"))
	assert.Equal(t, filter, artist.ParseFilter(values))
}

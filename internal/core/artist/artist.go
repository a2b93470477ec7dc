// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist implements artist discovery: the performer catalogue, the
filter engine that narrows it, and the quote-request action.

The catalogue is a fixture loaded once at startup and never modified.
*/
package artist

import "net/url"

// Artist is a bookable performer profile.
//
// PriceRange is a labelled bucket ("₹20,000-40,000"), not a numeric interval.
type Artist struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      []string `json:"category"`
	PriceRange    string   `json:"priceRange"`
	Location      string   `json:"location"`
	Bio           string   `json:"bio"`
	Languages     []string `json:"languages"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	TotalBookings int      `json:"totalBookings"`
}

// FilterOptions is the select-driven part of a listing query.
// An empty field imposes no constraint.
type FilterOptions struct {
	Category   string `json:"category"`
	Location   string `json:"location"`
	PriceRange string `json:"priceRange"`
}

// Active reports whether any select narrows the listing.
func (o FilterOptions) Active() bool {
	return o.Category != "" || o.Location != "" || o.PriceRange != ""
}

// Filter combines the selects with the free-text search box.
type Filter struct {
	Options FilterOptions
	Query   string
}

// Active reports whether the filter narrows the listing at all.
func (f Filter) Active() bool {
	return f.Options.Active() || f.Query != ""
}

// ListResult is a filtered listing together with the catalogue size.
type ListResult struct {
	Artists []Artist `json:"artists"`
	Total   int      `json:"total"`
}

// allOption is the sentinel the filter selects use for "no constraint".
const allOption = "All"

// Query parameter names.
const (
	ParamCategory   = "category"
	ParamLocation   = "location"
	ParamPriceRange = "priceRange"
	ParamQuery      = "q"
)

// ParseFilter reads a [Filter] from URL query values.
//
// "All" and empty values clear the corresponding constraint. Anything else,
// whitespace included, is matched as given.
func ParseFilter(values url.Values) Filter {
	return Filter{
		Options: FilterOptions{
			Category:   option(values.Get(ParamCategory)),
			Location:   option(values.Get(ParamLocation)),
			PriceRange: option(values.Get(ParamPriceRange)),
		},
		Query: values.Get(ParamQuery),
	}
}

// Values renders f back into query parameters, omitting inactive fields.
func (f Filter) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set(ParamCategory, f.Options.Category)
	set(ParamLocation, f.Options.Location)
	set(ParamPriceRange, f.Options.PriceRange)
	set(ParamQuery, f.Query)
	return values
}

func option(value string) string {
	if value == "" || value == allOption {
		return ""
	}
	return value
}

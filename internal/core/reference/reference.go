/*
Package reference holds the option catalogues shared by the listing filters,
the onboarding form and the home page.

The lists are fixed at build time. Fee-range labels are additionally parsed
into numeric bounds for display; filtering still compares labels verbatim.

# Catalogues

  - Filters: category, location and price-range selects, each led by "All".
  - Onboarding: categories, languages and fee ranges offered in the wizard.
  - Featured: the four category cards on the home page.
*/
package reference

import (
	"github.com/shopspring/decimal"

	"github.com/taibuivan/artistly/pkg/slice"
)

// AllOption is the leading "no constraint" entry of every filter select.
const AllOption = "All"

// # Filter Domain

// FilterCatalogue lists the choices of the three listing selects.
type FilterCatalogue struct {
	Categories  []string `json:"categories"`
	Locations   []string `json:"locations"`
	PriceRanges []string `json:"priceRanges"`
}

// # Onboarding Domain

// FeeRange is a fee bucket label with its parsed bounds in rupees.
//
// Max is invalid (JSON null) for open-ended labels such as "₹1,00,000+".
type FeeRange struct {
	Label string              `json:"label"`
	Min   decimal.Decimal     `json:"min"`
	Max   decimal.NullDecimal `json:"max"`
}

// OpenEnded reports whether the range has no upper bound.
func (r FeeRange) OpenEnded() bool {
	return !r.Max.Valid
}

// Bounds renders the range as plain rupee amounts, such as "₹40000 to ₹100000"
// or "₹100000 and above".
func (r FeeRange) Bounds() string {
	if r.OpenEnded() {
		return "₹" + r.Min.String() + " and above"
	}
	return "₹" + r.Min.String() + " to ₹" + r.Max.Decimal.String()
}

// OnboardingCatalogue lists the choices offered by the wizard.
type OnboardingCatalogue struct {
	Categories []string   `json:"categories"`
	Languages  []string   `json:"languages"`
	FeeRanges  []FeeRange `json:"feeRanges"`
}

// Labels returns the fee-range labels in catalogue order.
func (c OnboardingCatalogue) Labels() []string {
	return slice.Map(c.FeeRanges, func(r FeeRange) string { return r.Label })
}

// # Home Domain

// FeaturedCategory is a home-page card linking to a pre-filtered listing.
type FeaturedCategory struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Filter      string `json:"filter"`
	Slug        string `json:"slug"`
}

// Feature is a selling point shown under the categories.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Featured groups the home page content.
type Featured struct {
	Categories []FeaturedCategory `json:"categories"`
	Features   []Feature          `json:"features"`
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"slices"

	"github.com/taibuivan/artistly/pkg/slug"
)

// # Service Layer

// Service serves the option catalogues.
//
// Catalogues are built once by [NewService]; every accessor returns copies.
type Service struct {
	filters    FilterCatalogue
	onboarding OnboardingCatalogue
	featured   Featured
}

/*
NewService builds the catalogues and parses every fee-range label.

Returns:
  - *Service: ready to serve
  - error: a malformed fee-range label
*/
func NewService() (*Service, error) {
	feeRanges := make([]FeeRange, 0, len(onboardingFeeRanges))
	for _, label := range onboardingFeeRanges {
		parsed, err := ParseFeeRange(label)
		if err != nil {
			return nil, err
		}
		feeRanges = append(feeRanges, parsed)
	}

	categories := make([]FeaturedCategory, len(featuredCategories))
	for i, category := range featuredCategories {
		category.Slug = slug.From(category.Title)
		categories[i] = category
	}

	return &Service{
		filters: FilterCatalogue{
			Categories:  filterCategories,
			Locations:   filterLocations,
			PriceRanges: filterPriceRanges,
		},
		onboarding: OnboardingCatalogue{
			Categories: onboardingCategories,
			Languages:  onboardingLanguages,
			FeeRanges:  feeRanges,
		},
		featured: Featured{
			Categories: categories,
			Features:   features,
		},
	}, nil
}

// Filters returns the listing select options.
func (service *Service) Filters() FilterCatalogue {
	return FilterCatalogue{
		Categories:  slices.Clone(service.filters.Categories),
		Locations:   slices.Clone(service.filters.Locations),
		PriceRanges: slices.Clone(service.filters.PriceRanges),
	}
}

// Onboarding returns the wizard's option lists.
func (service *Service) Onboarding() OnboardingCatalogue {
	return OnboardingCatalogue{
		Categories: slices.Clone(service.onboarding.Categories),
		Languages:  slices.Clone(service.onboarding.Languages),
		FeeRanges:  slices.Clone(service.onboarding.FeeRanges),
	}
}

// Featured returns the home page categories and features.
func (service *Service) Featured() Featured {
	return Featured{
		Categories: slices.Clone(service.featured.Categories),
		Features:   slices.Clone(service.featured.Features),
	}
}

// FeeRange looks up a wizard fee range by its label.
func (service *Service) FeeRange(label string) (FeeRange, bool) {
	for _, r := range service.onboarding.FeeRanges {
		if r.Label == label {
			return r, true
		}
	}
	return FeeRange{}, false
}

// Package poster implements the poster template rendering engine: pure
// functions that turn a job posting plus a style configuration into a
// complete, print-ready A4 HTML document. All sizes are precomputed from the
// listing count so the output needs no layout engine to fit the page.
package poster

import "math"

// ScaleConstants holds the per-theme base magnitudes fed to the scaling
// calculator. Templates differ in visual density, so each theme carries its
// own tuning numbers; the algorithm shape is shared.
type ScaleConstants struct {
	// Factor shape
	FactorStep  float64 // decrement per listing beyond the first
	FactorFloor float64 // smallest factor, reached at the listing ceiling
	SingleBoost float64 // factor for 0 or 1 listings, may exceed 1.0

	// Proportional base sizes in px, multiplied by the factor
	BaseTitleSize        float64
	BaseListingTitleSize float64
	BaseDetailSize       float64
	BaseContactSize      float64

	// Spacing, reduced linearly and clamped to a minimum
	BaseCardPadding float64
	CardPaddingStep float64
	CardPaddingMin  float64
	BaseSectionGap  float64
	SectionGapStep  float64
	SectionGapMin   float64

	// Call-to-action panel is dropped once the count reaches this, to keep
	// room for the mandatory content. Zero disables the panel entirely.
	CTAThreshold int
}

// ScalingPlan holds every derived magnitude for one render. It is recomputed
// on each call and never cached; all values are pure functions of the listing
// count and the theme constants.
type ScalingPlan struct {
	ListingCount int
	Factor       float64

	TitleSize        float64
	ListingTitleSize float64
	DetailSize       float64
	ContactSize      float64
	CardPadding      float64
	SectionGap       float64

	ShowCTA bool
}

// ComputeScaling derives the layout constants for the given listing count.
// The factor is SingleBoost for counts of 0 or 1, then decreases by
// FactorStep per additional listing, clamped at FactorFloor. Spacing
// properties use a floor-clamped linear reduction instead of the factor.
func ComputeScaling(listingCount int, c ScaleConstants) ScalingPlan {
	if listingCount < 0 {
		listingCount = 0
	}

	factor := c.SingleBoost
	if listingCount > 1 {
		factor = 1.0 - c.FactorStep*float64(listingCount-1)
		if factor < c.FactorFloor {
			factor = c.FactorFloor
		}
	}

	return ScalingPlan{
		ListingCount:     listingCount,
		Factor:           factor,
		TitleSize:        round2(c.BaseTitleSize * factor),
		ListingTitleSize: round2(c.BaseListingTitleSize * factor),
		DetailSize:       round2(c.BaseDetailSize * factor),
		ContactSize:      round2(c.BaseContactSize * factor),
		CardPadding:      clampedStep(c.BaseCardPadding, c.CardPaddingStep, c.CardPaddingMin, listingCount),
		SectionGap:       clampedStep(c.BaseSectionGap, c.SectionGapStep, c.SectionGapMin, listingCount),
		ShowCTA:          c.CTAThreshold > 0 && listingCount < c.CTAThreshold,
	}
}

// clampedStep computes max(min, base - step*(count-1)) with counts below 1
// treated as 1, then rounds to two decimals.
func clampedStep(base, step, minimum float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	v := base - step*float64(count-1)
	if v < minimum {
		v = minimum
	}
	return round2(v)
}

// round2 rounds to two decimal places so the emitted CSS stays stable
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

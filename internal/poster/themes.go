package poster

// The numeric tuning below differs per theme on purpose: denser designs start
// from smaller bases and shrink faster. The step and floor values are
// aesthetic parameters carried per theme, not derived from a shared constant.

var classicTheme = Theme{
	Name:    "Classic",
	Tagline: "We Are Hiring",
	CTAText: "Walk-in interviews every weekday. Bring your resume.",
	Constants: ScaleConstants{
		FactorStep:  0.07,
		FactorFloor: 0.58,
		SingleBoost: 1.1,

		BaseTitleSize:        38,
		BaseListingTitleSize: 26,
		BaseDetailSize:       15,
		BaseContactSize:      13,

		BaseCardPadding: 18,
		CardPaddingStep: 1.5,
		CardPaddingMin:  8,
		BaseSectionGap:  22,
		SectionGapStep:  2,
		SectionGapMin:   9,

		CTAThreshold: 5,
	},
	DecorCSS: `.hero { border-bottom: 2px solid #d8b24a; }
.hero-badge { border: 1px solid #d8b24a; padding: 4px 14px; border-radius: 2px; }`,
}

var gradientTheme = Theme{
	Name:    "Gradient",
	Tagline: "Join Our Team",
	CTAText: "Apply today and grow with us.",
	Constants: ScaleConstants{
		FactorStep:  0.08,
		FactorFloor: 0.55,
		SingleBoost: 1.15,

		BaseTitleSize:        40,
		BaseListingTitleSize: 27,
		BaseDetailSize:       15,
		BaseContactSize:      13,

		BaseCardPadding: 20,
		CardPaddingStep: 2,
		CardPaddingMin:  8,
		BaseSectionGap:  24,
		SectionGapStep:  2.5,
		SectionGapMin:   10,

		CTAThreshold: 5,
	},
	DecorCSS: `.hero { background: linear-gradient(135deg, #5b2a86 0%, #a2308d 100%); color: #ffffff; }
.hero-badge { color: #f6d9ff; }
.headline { color: #ffffff; }
.listing-card { border-left: none; border-radius: 8px; box-shadow: 0 1px 4px rgba(0,0,0,0.18); }`,
}

var modernTheme = Theme{
	Name:    "Modern",
	Tagline: "Now Hiring",
	CTAText: "Scan, call, or walk in. Immediate joining.",
	Constants: ScaleConstants{
		FactorStep:  0.06,
		FactorFloor: 0.62,
		SingleBoost: 1.05,

		BaseTitleSize:        36,
		BaseListingTitleSize: 24,
		BaseDetailSize:       14,
		BaseContactSize:      12,

		BaseCardPadding: 16,
		CardPaddingStep: 1.2,
		CardPaddingMin:  7,
		BaseSectionGap:  20,
		SectionGapStep:  1.8,
		SectionGapMin:   8,

		CTAThreshold: 6,
	},
	DecorCSS: `.hero { text-align: left; }
.hero-badge { background: #101418; color: #ffffff; padding: 5px 12px; }
.listing-card { border-left-width: 6px; }`,
}

var boldTheme = Theme{
	Name:    "Bold",
	Tagline: "Hiring Now",
	CTAText: "Limited seats. First come, first served.",
	Constants: ScaleConstants{
		FactorStep:  0.08,
		FactorFloor: 0.52,
		SingleBoost: 1.2,

		BaseTitleSize:        44,
		BaseListingTitleSize: 30,
		BaseDetailSize:       16,
		BaseContactSize:      14,

		BaseCardPadding: 22,
		CardPaddingStep: 2.2,
		CardPaddingMin:  9,
		BaseSectionGap:  26,
		SectionGapStep:  2.8,
		SectionGapMin:   10,

		CTAThreshold: 4,
	},
	DecorCSS: `.headline { text-transform: uppercase; letter-spacing: 1px; }
.listing-card { border: 3px solid #111111; border-left-width: 10px; }
.openings-count { font-size: 1.4em; }`,
}

var minimalTheme = Theme{
	Name:    "Minimal",
	Tagline: "Open Roles",
	Constants: ScaleConstants{
		FactorStep:  0.06,
		FactorFloor: 0.6,
		SingleBoost: 1.0,

		BaseTitleSize:        32,
		BaseListingTitleSize: 22,
		BaseDetailSize:       13,
		BaseContactSize:      12,

		BaseCardPadding: 14,
		CardPaddingStep: 1,
		CardPaddingMin:  7,
		BaseSectionGap:  18,
		SectionGapStep:  1.5,
		SectionGapMin:   8,

		// No call-to-action panel in this design
		CTAThreshold: 0,
	},
	DecorCSS: `.hero-badge { letter-spacing: 4px; }
.listing-card { border-left: 1px solid currentColor; }
.contact { border-top: none; }`,
}

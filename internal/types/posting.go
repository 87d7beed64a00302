// Package types provides type definitions for structured data used throughout the poster-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobListing represents a single job opening entry on a poster
type JobListing struct {
	PositionTitle         string `json:"position_title"`
	OpeningsCount         int    `json:"openings_count"`
	ExperienceRequirement string `json:"experience_requirement,omitempty"` // free text, e.g. "2-5 years"
	KeyRequirements       string `json:"key_requirements,omitempty"`       // free text, split on delimiters for display
}

// IsEmpty returns true if the listing carries no renderable content
func (l JobListing) IsEmpty() bool {
	return l.PositionTitle == "" && l.OpeningsCount == 0 &&
		l.ExperienceRequirement == "" && l.KeyRequirements == ""
}

// Organization holds the contact details rendered in the poster footer.
// Every field is optional; absent fields render no contact block at all.
type Organization struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// JobPosting represents the full job-advertisement record for one poster
type JobPosting struct {
	Title              string       `json:"title,omitempty"`
	PrimaryListing     JobListing   `json:"primary_listing"`
	AdditionalListings []JobListing `json:"additional_listings,omitempty"`
	Organization       Organization `json:"organization"`
}

// TotalListingCount returns the number of listings that will render:
// 1 for a non-empty primary listing plus all additional listings.
func (p *JobPosting) TotalListingCount() int {
	count := len(p.AdditionalListings)
	if !p.PrimaryListing.IsEmpty() {
		count++
	}
	return count
}

// StyleConfig carries the user-selected visual parameters for a render.
// The engine never hardcodes content colors; only template-specific chrome
// (a signature gradient, a corner ribbon) is allowed fixed colors.
type StyleConfig struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	FontFamily      string `json:"font_family"`
}

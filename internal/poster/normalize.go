package poster

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/poster-studio/internal/types"
)

// requirementDelimiters splits free-text requirement fields into display items
var requirementDelimiters = regexp.MustCompile(`[,.\n]+`)

// listingView is a single listing prepared for template interpolation.
// Every string field is already HTML-escaped.
type listingView struct {
	PositionTitle string
	Openings      string // display value, "N/A" when the count is unusable
	UnitLabel     string
	Experience    string   // empty when absent
	Requirements  []string // empty when absent
}

// contentView is the full normalized posting handed to the document template
type contentView struct {
	Title    string
	Listings []listingView

	OrgName    string
	OrgAddress string
	OrgEmail   string
	OrgPhone   string
	HasContact bool
}

// UnitLabel selects the singular or plural unit label for an openings count.
// The threshold rule is strictly value > 1; zero and one both read singular.
func UnitLabel(count int, singular, plural string) string {
	if count > 1 {
		return plural
	}
	return singular
}

// OpeningsDisplay formats an openings count for display. Negative counts are
// malformed input and degrade to "N/A" rather than rendering a negative.
func OpeningsDisplay(count int) string {
	if count < 0 {
		return "N/A"
	}
	return strconv.Itoa(count)
}

// SplitRequirements breaks a free-text requirements field on commas, periods
// and newlines, trims each segment and drops empties. This is a display
// transformation only; the stored text is untouched.
func SplitRequirements(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := requirementDelimiters.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeListing prepares one listing for interpolation
func normalizeListing(l types.JobListing) listingView {
	reqs := SplitRequirements(l.KeyRequirements)
	escaped := make([]string, len(reqs))
	for i, r := range reqs {
		escaped[i] = html.EscapeString(r)
	}
	return listingView{
		PositionTitle: html.EscapeString(strings.TrimSpace(l.PositionTitle)),
		Openings:      OpeningsDisplay(l.OpeningsCount),
		UnitLabel:     UnitLabel(l.OpeningsCount, "Position", "Positions"),
		Experience:    html.EscapeString(strings.TrimSpace(l.ExperienceRequirement)),
		Requirements:  escaped,
	}
}

// normalizePosting flattens a posting into escaped, presence-checked values.
// An empty primary listing is omitted entirely; additional listings follow in
// their given order.
func normalizePosting(p *types.JobPosting) contentView {
	view := contentView{
		Title: html.EscapeString(strings.TrimSpace(p.Title)),
	}

	if !p.PrimaryListing.IsEmpty() {
		view.Listings = append(view.Listings, normalizeListing(p.PrimaryListing))
	}
	for _, l := range p.AdditionalListings {
		view.Listings = append(view.Listings, normalizeListing(l))
	}

	org := p.Organization
	view.OrgName = html.EscapeString(strings.TrimSpace(org.Name))
	view.OrgAddress = html.EscapeString(strings.TrimSpace(org.Address))
	view.OrgEmail = html.EscapeString(strings.TrimSpace(org.Email))
	view.OrgPhone = html.EscapeString(strings.TrimSpace(org.Phone))
	view.HasContact = view.OrgName != "" || view.OrgAddress != "" || view.OrgEmail != "" || view.OrgPhone != ""

	return view
}

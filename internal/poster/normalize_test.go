package poster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/poster-studio/internal/types"
)

func TestUnitLabel(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"zero is singular", 0, "Position"},
		{"one is singular", 1, "Position"},
		{"two is plural", 2, "Positions"},
		{"five is plural", 5, "Positions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnitLabel(tt.count, "Position", "Positions"))
		})
	}
}

func TestOpeningsDisplay(t *testing.T) {
	assert.Equal(t, "0", OpeningsDisplay(0))
	assert.Equal(t, "3", OpeningsDisplay(3))
	assert.Equal(t, "N/A", OpeningsDisplay(-1))
}

func TestSplitRequirements(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"commas", "Good communication, MS Excel, Driving license", []string{"Good communication", "MS Excel", "Driving license"}},
		{"mixed delimiters", "Punctual. Team player,\nEnglish fluency", []string{"Punctual", "Team player", "English fluency"}},
		{"empty segments dropped", "a,,b,. ,c", []string{"a", "b", "c"}},
		{"blank input", "   ", nil},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRequirements(tt.in))
		})
	}
}

func TestNormalizeListing_EscapesUserText(t *testing.T) {
	v := normalizeListing(types.JobListing{
		PositionTitle:         `Sales <b>"Lead"</b>`,
		OpeningsCount:         2,
		ExperienceRequirement: "3+ years & references",
	})

	assert.Equal(t, "Sales &lt;b&gt;&#34;Lead&#34;&lt;/b&gt;", v.PositionTitle)
	assert.Equal(t, "3+ years &amp; references", v.Experience)
	assert.Equal(t, "2", v.Openings)
	assert.Equal(t, "Positions", v.UnitLabel)
}

func TestNormalizePosting_PrimaryOmittedWhenEmpty(t *testing.T) {
	posting := &types.JobPosting{
		AdditionalListings: []types.JobListing{
			{PositionTitle: "Clerk", OpeningsCount: 1},
		},
	}

	view := normalizePosting(posting)
	require.Len(t, view.Listings, 1)
	assert.Equal(t, "Clerk", view.Listings[0].PositionTitle)
}

func TestNormalizePosting_PrimaryFirst(t *testing.T) {
	posting := &types.JobPosting{
		PrimaryListing: types.JobListing{PositionTitle: "Cashier", OpeningsCount: 1},
		AdditionalListings: []types.JobListing{
			{PositionTitle: "Clerk", OpeningsCount: 2},
			{PositionTitle: "Driver", OpeningsCount: 1},
		},
	}

	view := normalizePosting(posting)
	require.Len(t, view.Listings, 3)
	assert.Equal(t, "Cashier", view.Listings[0].PositionTitle)
	assert.Equal(t, "Clerk", view.Listings[1].PositionTitle)
	assert.Equal(t, "Driver", view.Listings[2].PositionTitle)
}

func TestNormalizePosting_ContactPresence(t *testing.T) {
	view := normalizePosting(&types.JobPosting{})
	assert.False(t, view.HasContact)

	view = normalizePosting(&types.JobPosting{
		Organization: types.Organization{Phone: "555-0100"},
	})
	assert.True(t, view.HasContact)
	assert.Equal(t, "555-0100", view.OrgPhone)
	assert.Empty(t, view.OrgName)
	assert.Empty(t, view.OrgAddress)
	assert.Empty(t, view.OrgEmail)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobListing_IsEmpty(t *testing.T) {
	assert.True(t, JobListing{}.IsEmpty())
	assert.False(t, JobListing{PositionTitle: "Cook"}.IsEmpty())
	assert.False(t, JobListing{OpeningsCount: 2}.IsEmpty())
	assert.False(t, JobListing{ExperienceRequirement: "1 year"}.IsEmpty())
	assert.False(t, JobListing{KeyRequirements: "Punctual"}.IsEmpty())
}

func TestJobPosting_TotalListingCount(t *testing.T) {
	tests := []struct {
		name    string
		posting JobPosting
		want    int
	}{
		{"empty posting", JobPosting{}, 0},
		{"primary only", JobPosting{PrimaryListing: JobListing{PositionTitle: "Cook"}}, 1},
		{
			"additional only",
			JobPosting{AdditionalListings: []JobListing{{PositionTitle: "Clerk"}, {PositionTitle: "Driver"}}},
			2,
		},
		{
			"primary plus additional",
			JobPosting{
				PrimaryListing:     JobListing{PositionTitle: "Cook"},
				AdditionalListings: []JobListing{{PositionTitle: "Clerk"}},
			},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.posting.TotalListingCount())
		})
	}
}

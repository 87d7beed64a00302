package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/poster-studio/internal/types"
)

// Export format constants
const (
	ExportFormatPDF = "pdf"
	ExportFormatPNG = "png"
)

// Poster represents a stored poster: the posting content, the chosen
// template and the style configuration, all as the caller authored them.
// Scaling output is never persisted; it is recomputed on every render.
type Poster struct {
	ID         uuid.UUID         `json:"id"`
	Label      string            `json:"label"`
	TemplateID string            `json:"template_id"`
	Posting    types.JobPosting  `json:"posting"`
	Style      types.StyleConfig `json:"style"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// PosterInput is used when creating or updating a poster record
type PosterInput struct {
	Label      string
	TemplateID string
	Posting    types.JobPosting
	Style      types.StyleConfig
}

// Export records one rasterized artifact produced from a poster
type Export struct {
	ID        uuid.UUID `json:"id"`
	PosterID  uuid.UUID `json:"poster_id"`
	Format    string    `json:"format"`
	WidthPx   int       `json:"width_px"`
	SizeBytes int       `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPostersOptions controls pagination for poster listings
type ListPostersOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps pagination values into a sane range
func (o ListPostersOptions) Normalize() ListPostersOptions {
	if o.Limit <= 0 {
		o.Limit = 50
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

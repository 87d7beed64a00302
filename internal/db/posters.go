package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreatePoster inserts a new poster record and returns it
func (db *DB) CreatePoster(ctx context.Context, input PosterInput) (*Poster, error) {
	postingJSON, err := json.Marshal(input.Posting)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posting: %w", err)
	}
	styleJSON, err := json.Marshal(input.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal style: %w", err)
	}

	var p Poster
	var postingRaw, styleRaw []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO posters (label, template_id, posting, style)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, label, template_id, posting, style, created_at, updated_at`,
		input.Label, input.TemplateID, postingJSON, styleJSON,
	).Scan(&p.ID, &p.Label, &p.TemplateID, &postingRaw, &styleRaw, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create poster: %w", err)
	}

	if err := unmarshalPoster(&p, postingRaw, styleRaw); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPosterByID retrieves a poster by id. Returns nil without error when the
// poster does not exist.
func (db *DB) GetPosterByID(ctx context.Context, id uuid.UUID) (*Poster, error) {
	var p Poster
	var postingRaw, styleRaw []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, label, template_id, posting, style, created_at, updated_at
		 FROM posters WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Label, &p.TemplateID, &postingRaw, &styleRaw, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get poster: %w", err)
	}

	if err := unmarshalPoster(&p, postingRaw, styleRaw); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPosters returns a page of posters ordered by most recently updated,
// along with the total count.
func (db *DB) ListPosters(ctx context.Context, opts ListPostersOptions) ([]Poster, int, error) {
	opts = opts.Normalize()

	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posters`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posters: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, label, template_id, posting, style, created_at, updated_at
		 FROM posters
		 ORDER BY updated_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posters: %w", err)
	}
	defer rows.Close()

	posters := []Poster{}
	for rows.Next() {
		var p Poster
		var postingRaw, styleRaw []byte
		if err := rows.Scan(&p.ID, &p.Label, &p.TemplateID, &postingRaw, &styleRaw, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan poster: %w", err)
		}
		if err := unmarshalPoster(&p, postingRaw, styleRaw); err != nil {
			return nil, 0, err
		}
		posters = append(posters, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read posters: %w", err)
	}

	return posters, total, nil
}

// UpdatePoster replaces a poster's content. Returns nil without error when
// the poster does not exist.
func (db *DB) UpdatePoster(ctx context.Context, id uuid.UUID, input PosterInput) (*Poster, error) {
	postingJSON, err := json.Marshal(input.Posting)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal posting: %w", err)
	}
	styleJSON, err := json.Marshal(input.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal style: %w", err)
	}

	var p Poster
	var postingRaw, styleRaw []byte
	err = db.pool.QueryRow(ctx,
		`UPDATE posters
		 SET label = $1, template_id = $2, posting = $3, style = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING id, label, template_id, posting, style, created_at, updated_at`,
		input.Label, input.TemplateID, postingJSON, styleJSON, id,
	).Scan(&p.ID, &p.Label, &p.TemplateID, &postingRaw, &styleRaw, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update poster: %w", err)
	}

	if err := unmarshalPoster(&p, postingRaw, styleRaw); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePoster removes a poster and reports whether a row was deleted
func (db *DB) DeletePoster(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM posters WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete poster: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// unmarshalPoster decodes the JSONB columns into the record
func unmarshalPoster(p *Poster, postingRaw, styleRaw []byte) error {
	if err := json.Unmarshal(postingRaw, &p.Posting); err != nil {
		return fmt.Errorf("failed to unmarshal posting %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(styleRaw, &p.Style); err != nil {
		return fmt.Errorf("failed to unmarshal style %s: %w", p.ID, err)
	}
	return nil
}

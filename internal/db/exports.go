package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecordExport stores metadata for one produced artifact
func (db *DB) RecordExport(ctx context.Context, posterID uuid.UUID, format string, widthPx, sizeBytes int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO exports (poster_id, format, width_px, size_bytes)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		posterID, format, widthPx, sizeBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record export: %w", err)
	}
	return id, nil
}

// ListExportsByPoster returns export history for one poster, newest first
func (db *DB) ListExportsByPoster(ctx context.Context, posterID uuid.UUID) ([]Export, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, poster_id, format, width_px, size_bytes, created_at
		 FROM exports WHERE poster_id = $1
		 ORDER BY created_at DESC`,
		posterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	exports := []Export{}
	for rows.Next() {
		var e Export
		if err := rows.Scan(&e.ID, &e.PosterID, &e.Format, &e.WidthPx, &e.SizeBytes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		exports = append(exports, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exports: %w", err)
	}

	return exports, nil
}

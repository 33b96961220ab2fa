package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/watergo/tanktrip/internal/pkg/models"
)

// TelemetryRepo provides access to the append-only gps_locations log.
// One row per ingested sample, ordered by the server-assigned timestamp;
// rows are never updated or deleted so the full path stays reconstructable.
type TelemetryRepo struct {
	db *sqlx.DB
}

// NewTelemetryRepository creates a new telemetry repository
func NewTelemetryRepository(db *sqlx.DB) *TelemetryRepo {
	return &TelemetryRepo{db: db}
}

// AppendSample inserts a new GPS sample row
func (r *TelemetryRepo) AppendSample(ctx context.Context, sample *models.GpsLocation) error {
	query := `
		INSERT INTO gps_locations (
			id, trip_id, latitude, longitude, altitude, speed, heading, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		sample.ID,
		sample.TripID,
		sample.Latitude,
		sample.Longitude,
		sample.Altitude,
		sample.Speed,
		sample.Heading,
		sample.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append gps sample: %w", err)
	}
	return nil
}

// GetLastSample returns the most recent sample for a trip by timestamp,
// or nil when the trip has no samples yet.
func (r *TelemetryRepo) GetLastSample(ctx context.Context, tripID uuid.UUID) (*models.GpsLocation, error) {
	query := `
		SELECT id, trip_id, latitude, longitude, altitude, speed, heading, timestamp
		FROM gps_locations
		WHERE trip_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`

	sample := &models.GpsLocation{}
	err := r.db.GetContext(ctx, sample, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last gps sample: %w", err)
	}
	return sample, nil
}

// GetPath returns every sample for a trip in timestamp order
func (r *TelemetryRepo) GetPath(ctx context.Context, tripID uuid.UUID) ([]models.GpsLocation, error) {
	query := `
		SELECT id, trip_id, latitude, longitude, altitude, speed, heading, timestamp
		FROM gps_locations
		WHERE trip_id = $1
		ORDER BY timestamp ASC
	`

	var path []models.GpsLocation
	if err := r.db.SelectContext(ctx, &path, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to get trip path: %w", err)
	}
	return path, nil
}

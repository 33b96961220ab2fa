package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/models"
)

// TripRepo provides access to the trips table
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a new trip row
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, booking_id, vehicle_id, status,
			start_time, end_time, distance, photo, video, otp,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	_, err := r.db.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.BookingID,
		trip.VehicleID,
		trip.Status,
		trip.StartTime,
		trip.EndTime,
		trip.Distance,
		trip.Photo,
		trip.Video,
		trip.OTP,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, booking_id, vehicle_id, status,
			start_time, end_time, distance, photo, video, otp,
			created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("trip %s not found", tripID))
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// GetActiveTripByBooking retrieves the latest non-terminal trip for a booking
func (r *TripRepo) GetActiveTripByBooking(ctx context.Context, bookingID string) (*models.Trip, error) {
	query := `
		SELECT id, booking_id, vehicle_id, status,
			start_time, end_time, distance, photo, video, otp,
			created_at, updated_at
		FROM trips
		WHERE booking_id = $1
		AND status NOT IN ('completed', 'rejected', 'cancelled')
		ORDER BY created_at DESC
		LIMIT 1
	`

	trip := &models.Trip{}
	err := r.db.GetContext(ctx, trip, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("no active trip for booking %s", bookingID))
		}
		return nil, fmt.Errorf("failed to get trip by booking: %w", err)
	}
	return trip, nil
}

// TransitionStatus applies a conditional status update: the row changes only
// when its current status is one of the expected source states. Returns false
// when the precondition failed, which is how exactly one of two concurrent
// identical transitions wins.
func (r *TripRepo) TransitionStatus(ctx context.Context, tripID uuid.UUID, from []models.TripStatus, to models.TripStatus, effects models.TripSideEffects) (bool, error) {
	if len(from) == 0 {
		return false, fmt.Errorf("transition requires at least one source status")
	}

	sets := []string{"status = ?", "updated_at = ?"}
	args := []interface{}{to, time.Now()}

	if effects.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, *effects.StartTime)
	}
	if effects.EndTime != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, *effects.EndTime)
	}
	if effects.Photo != nil {
		sets = append(sets, "photo = ?")
		args = append(args, *effects.Photo)
	}
	if effects.Video != nil {
		sets = append(sets, "video = ?")
		args = append(args, *effects.Video)
	}
	if effects.Distance != nil {
		sets = append(sets, "distance = ?")
		args = append(args, *effects.Distance)
	}
	if effects.ClearOTP {
		sets = append(sets, "otp = NULL")
	} else if effects.OTP != nil {
		sets = append(sets, "otp = ?")
		args = append(args, *effects.OTP)
	}

	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}

	query := fmt.Sprintf(
		"UPDATE trips SET %s WHERE id = ? AND status IN (?)",
		strings.Join(sets, ", "),
	)
	args = append(args, tripID, statuses)

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to build transition query: %w", err)
	}
	query = r.db.Rebind(query)

	res, err := r.db.ExecContext(ctx, query, inArgs...)
	if err != nil {
		return false, fmt.Errorf("failed to transition trip status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

// SetOTP stores a fresh fallback code on a delivered trip, replacing any
// previously issued code.
func (r *TripRepo) SetOTP(ctx context.Context, tripID uuid.UUID, code string) (bool, error) {
	query := `
		UPDATE trips SET otp = $1, updated_at = $2
		WHERE id = $3 AND status = 'delivered'
	`

	res, err := r.db.ExecContext(ctx, query, code, time.Now(), tripID)
	if err != nil {
		return false, fmt.Errorf("failed to set trip otp: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

// AddDistance increments the running distance counter and returns the new total
func (r *TripRepo) AddDistance(ctx context.Context, tripID uuid.UUID, delta float64) (float64, error) {
	query := `
		UPDATE trips
		SET distance = COALESCE(distance, 0) + $1, updated_at = $2
		WHERE id = $3
		RETURNING distance
	`

	var total float64
	err := r.db.QueryRowContext(ctx, query, delta, time.Now(), tripID).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperr.NotFound(fmt.Sprintf("trip %s not found", tripID))
		}
		return 0, fmt.Errorf("failed to add trip distance: %w", err)
	}
	return total, nil
}

package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/watergo/tanktrip/internal/pkg/models"
)

// TripRepo defines the interface for trip row access. All status changes go
// through TransitionStatus, a compare-and-swap on the current status, so a
// transition applied twice yields one winner and one precondition failure.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/watergo/tanktrip/services/trips TripRepo,TelemetryRepo,LocationCache
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetActiveTripByBooking(ctx context.Context, bookingID string) (*models.Trip, error)
	TransitionStatus(ctx context.Context, tripID uuid.UUID, from []models.TripStatus, to models.TripStatus, effects models.TripSideEffects) (bool, error)
	SetOTP(ctx context.Context, tripID uuid.UUID, code string) (bool, error)
	AddDistance(ctx context.Context, tripID uuid.UUID, delta float64) (float64, error)
}

// TelemetryRepo is the append-only GPS sample log; the source of truth for
// path reconstruction and final-distance recomputation.
type TelemetryRepo interface {
	AppendSample(ctx context.Context, sample *models.GpsLocation) error
	GetLastSample(ctx context.Context, tripID uuid.UUID) (*models.GpsLocation, error)
	GetPath(ctx context.Context, tripID uuid.UUID) ([]models.GpsLocation, error)
}

// LocationCache is the last-known-position read optimization. It is never
// consulted for distance math.
type LocationCache interface {
	StoreLastPosition(ctx context.Context, tripID string, sample models.GpsLocation) error
	GetLastPosition(ctx context.Context, tripID string) (*models.GpsLocation, error)
}

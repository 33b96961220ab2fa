package trips

import (
	"context"

	"github.com/watergo/tanktrip/internal/pkg/models"
)

// TripUC defines the interface for trip lifecycle and telemetry business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/watergo/tanktrip/services/trips TripUC
type TripUC interface {
	// Lifecycle
	AcceptBooking(ctx context.Context, bookingID string, req models.BookingActionRequest) (*models.Trip, error)
	StartTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ReachHydrant(ctx context.Context, tripID string, photoURL string) (*models.Trip, error)
	DepartHydrant(ctx context.Context, tripID string) (*models.Trip, error)
	WaterDelivered(ctx context.Context, tripID string, videoURL string) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID string) (*models.Trip, error)
	CancelTripByBooking(ctx context.Context, bookingID string) error

	// Telemetry
	IngestLocation(ctx context.Context, tripID string, req models.LocationRequest) (*models.IngestResponse, error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetTracking(ctx context.Context, tripID string) (*models.TrackingInfo, error)

	// Completion gate
	IssueOTP(ctx context.Context, tripID string, req models.OTPIssueRequest) (*models.OTPIssueResponse, error)
	VerifyOTP(ctx context.Context, tripID string, req models.OTPVerifyRequest) (*models.OTPVerifyResponse, error)
}

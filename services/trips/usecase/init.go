package usecase

import (
	"github.com/watergo/tanktrip/internal/pkg/models"
	"github.com/watergo/tanktrip/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg         *models.Config
	tripRepo    trips.TripRepo
	telemetry   trips.TelemetryRepo
	cache       trips.LocationCache
	tripGW      trips.TripGW
	otpProvider trips.OTPProvider
	broadcaster trips.Broadcaster
	locks       *tripLocks
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	telemetry trips.TelemetryRepo,
	cache trips.LocationCache,
	tripGW trips.TripGW,
	otpProvider trips.OTPProvider,
	broadcaster trips.Broadcaster,
) (trips.TripUC, error) {
	return &tripUC{
		cfg:         cfg,
		tripRepo:    tripRepo,
		telemetry:   telemetry,
		cache:       cache,
		tripGW:      tripGW,
		otpProvider: otpProvider,
		broadcaster: broadcaster,
		locks:       newTripLocks(),
	}, nil
}

package trips

import (
	"context"

	"github.com/watergo/tanktrip/internal/pkg/models"
)

// TripGW defines the interface for outbound trip lifecycle events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/watergo/tanktrip/services/trips TripGW,OTPProvider,Broadcaster
type TripGW interface {
	PublishTripEvent(ctx context.Context, topic string, event models.TripEvent) error
}

// OTPProvider is the external verification service. Calls are bounded by
// the context deadline; failures degrade the external path to false rather
// than failing the overall verification.
type OTPProvider interface {
	SendOTP(ctx context.Context, phoneNumber string) (verificationID string, err error)
	VerifyOTP(ctx context.Context, verificationID, code string) (bool, error)
}

// Broadcaster fans a persisted sample out to live tracking subscribers
type Broadcaster interface {
	Publish(tripID string, update models.PositionUpdate)
}

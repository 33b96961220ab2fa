package gateway

import (
	"context"
	"time"

	"github.com/watergo/tanktrip/internal/pkg/models"
	nsqpkg "github.com/watergo/tanktrip/internal/pkg/nsq"
	"github.com/watergo/tanktrip/internal/pkg/retry"
	"github.com/watergo/tanktrip/services/trips"
)

// TripGW handles NSQ publishing for trip lifecycle events
type TripGW struct {
	producer *nsqpkg.Producer
	retryCfg retry.Config
}

// NewTripGW creates a new trip gateway
func NewTripGW(producer *nsqpkg.Producer) trips.TripGW {
	return &TripGW{
		producer: producer,
		retryCfg: retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   500 * time.Millisecond,
			Multiplier: 2.0,
		},
	}
}

// PublishTripEvent publishes a trip lifecycle event to the given topic
func (g *TripGW) PublishTripEvent(ctx context.Context, topic string, event models.TripEvent) error {
	return retry.Do(ctx, g.retryCfg, func(ctx context.Context) error {
		return g.producer.Publish(topic, event)
	})
}

package nsq

import (
	"context"
	"time"

	"github.com/watergo/tanktrip/internal/pkg/constants"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
	nsqpkg "github.com/watergo/tanktrip/internal/pkg/nsq"
	"github.com/watergo/tanktrip/services/trips"
)

const handlerTimeout = 10 * time.Second

// BookingHandler consumes booking lifecycle events from NSQ
type BookingHandler struct {
	tripUC    trips.TripUC
	cfg       *models.Config
	consumers []*nsqpkg.Consumer
}

// NewBookingHandler creates a new booking event consumer handler
func NewBookingHandler(tripUC trips.TripUC, cfg *models.Config) *BookingHandler {
	return &BookingHandler{
		tripUC: tripUC,
		cfg:    cfg,
	}
}

// InitConsumers connects the booking-event consumers to NSQ
func (h *BookingHandler) InitConsumers() error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicBookingCancelled,
		h.cfg.NSQ.Channel,
		h.cfg.NSQ.Address,
		h.handleBookingCancelled,
	)
	if err != nil {
		return err
	}

	if h.cfg.NSQ.LookupdAddress != "" {
		if err := consumer.ConnectToLookupd([]string{h.cfg.NSQ.LookupdAddress}); err != nil {
			return err
		}
	}

	h.consumers = append(h.consumers, consumer)
	return nil
}

// handleBookingCancelled cancels the active trip of a cancelled booking
func (h *BookingHandler) handleBookingCancelled(message []byte) error {
	var event models.BookingCancelledEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		// Malformed payloads are logged and dropped; requeueing cannot fix them
		logger.Error("Malformed booking.cancelled event", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	logger.Info("Processing booking cancellation",
		logger.String("booking_id", event.BookingID),
		logger.String("reason", event.Reason))

	return h.tripUC.CancelTripByBooking(ctx, event.BookingID)
}

// Stop stops all running consumers
func (h *BookingHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

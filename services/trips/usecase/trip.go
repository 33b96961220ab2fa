package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/constants"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
	"github.com/watergo/tanktrip/internal/utils"
)

// Transition event names, used in error messages and logs
const (
	eventStart          = "start"
	eventReachedHydrant = "reached_hydrant"
	eventDepart         = "depart"
	eventWaterDelivered = "water_delivered"
	eventComplete       = "complete"
	eventCancel         = "cancel"
)

// cancellableStatuses are every pre-completion state the injected
// booking-cancellation workflow may interrupt.
var cancellableStatuses = []models.TripStatus{
	models.TripStatusAccepted,
	models.TripStatusPickup,
	models.TripStatusOngoing,
	models.TripStatusDelivered,
}

// AcceptBooking creates a trip row for an accepted or rejected booking
func (uc *tripUC) AcceptBooking(ctx context.Context, bookingID string, req models.BookingActionRequest) (*models.Trip, error) {
	if bookingID == "" {
		return nil, apperr.Validation("booking id is required")
	}

	var status models.TripStatus
	switch req.Action {
	case "accept":
		if req.VehicleID == "" {
			return nil, apperr.Validation("vehicle id is required for accept action")
		}
		status = models.TripStatusAccepted
	case "reject":
		status = models.TripStatusRejected
	default:
		return nil, apperr.Validation("action must be accept or reject")
	}

	trip := &models.Trip{
		ID:        uuid.New(),
		BookingID: bookingID,
		VehicleID: req.VehicleID,
		Status:    status,
		Distance:  0,
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	topic := constants.TopicTripAccepted
	if status == models.TripStatusRejected {
		topic = constants.TopicTripRejected
	}
	uc.publishEvent(ctx, topic, trip)

	logger.Info("Trip created",
		logger.String("trip_id", trip.ID.String()),
		logger.String("booking_id", bookingID),
		logger.String("status", string(status)))
	return trip, nil
}

// StartTrip moves an accepted trip into ongoing and stamps the start time
func (uc *tripUC) StartTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip, err := uc.applyTransition(ctx, tid, eventStart,
		[]models.TripStatus{models.TripStatusAccepted},
		models.TripStatusOngoing,
		models.TripSideEffects{StartTime: &now})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.TopicTripStarted, trip)
	return trip, nil
}

// ReachHydrant records the hydrant photo and moves the trip into pickup
func (uc *tripUC) ReachHydrant(ctx context.Context, tripID string, photoURL string) (*models.Trip, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	if photoURL == "" {
		return nil, apperr.Validation("photo url is required")
	}

	trip, err := uc.applyTransition(ctx, tid, eventReachedHydrant,
		[]models.TripStatus{models.TripStatusOngoing},
		models.TripStatusPickup,
		models.TripSideEffects{Photo: &photoURL})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.TopicTripPickup, trip)
	return trip, nil
}

// DepartHydrant resumes the journey after water loading. Re-entrant: calling
// it on an already ongoing trip is a no-op, not an error.
func (uc *tripUC) DepartHydrant(ctx context.Context, tripID string) (*models.Trip, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	ok, err := uc.tripRepo.TransitionStatus(ctx, tid,
		[]models.TripStatus{models.TripStatusPickup},
		models.TripStatusOngoing,
		models.TripSideEffects{})
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tid)
	if err != nil {
		return nil, err
	}
	if !ok && trip.Status != models.TripStatusOngoing {
		return nil, apperr.InvalidTransition(string(trip.Status), eventDepart)
	}
	return trip, nil
}

// WaterDelivered records the delivery video, stamps the end time and
// overwrites the distance counter with the authoritative full-path sum.
func (uc *tripUC) WaterDelivered(ctx context.Context, tripID string, videoURL string) (*models.Trip, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	if videoURL == "" {
		return nil, apperr.Validation("video url is required")
	}

	// Hold the trip lock so the recompute and the transition see a stable
	// sample set relative to concurrent ingestion.
	unlock := uc.locks.Lock(tid.String())
	defer unlock()

	finalDistance, err := uc.recomputeDistance(ctx, tid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trip, err := uc.applyTransition(ctx, tid, eventWaterDelivered,
		[]models.TripStatus{models.TripStatusOngoing},
		models.TripStatusDelivered,
		models.TripSideEffects{
			Video:    &videoURL,
			EndTime:  &now,
			Distance: &finalDistance,
		})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.TopicTripDelivered, trip)

	logger.Info("Trip delivered",
		logger.String("trip_id", tid.String()),
		logger.Float64("final_distance_km", finalDistance))
	return trip, nil
}

// CancelTrip applies the injected booking-cancellation transition
func (uc *tripUC) CancelTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.applyTransition(ctx, tid, eventCancel,
		cancellableStatuses,
		models.TripStatusCancelled,
		models.TripSideEffects{})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.TopicTripCancelled, trip)
	return trip, nil
}

// CancelTripByBooking cancels the active trip of a cancelled booking.
// A booking without an active trip is not an error for the consumer.
func (uc *tripUC) CancelTripByBooking(ctx context.Context, bookingID string) error {
	trip, err := uc.tripRepo.GetActiveTripByBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apperr.NotFound("")) {
			logger.Debug("No active trip for cancelled booking",
				logger.String("booking_id", bookingID))
			return nil
		}
		return err
	}

	_, err = uc.CancelTrip(ctx, trip.ID.String())
	return err
}

// GetTrip returns a trip by id
func (uc *tripUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	return uc.tripRepo.GetTrip(ctx, tid)
}

// GetTracking returns the dashboard view: trip status plus its last known
// position, served from the cache with the telemetry store as fallback.
func (uc *tripUC) GetTracking(ctx context.Context, tripID string) (*models.TrackingInfo, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tid)
	if err != nil {
		return nil, err
	}

	last, err := uc.cache.GetLastPosition(ctx, tid.String())
	if err != nil || last == nil {
		if err != nil {
			logger.Warn("Last-position cache read failed, falling back to store",
				logger.String("trip_id", tid.String()),
				logger.Err(err))
		}
		last, err = uc.telemetry.GetLastSample(ctx, tid)
		if err != nil {
			return nil, err
		}
	}

	return &models.TrackingInfo{
		TripID:          trip.ID,
		Status:          trip.Status,
		Distance:        trip.Distance,
		CurrentLocation: last,
	}, nil
}

// applyTransition runs a compare-and-swap status update. On a precondition
// miss it re-reads the row and re-evaluates once before surfacing the
// conflict, so a racing unrelated write does not fail a legal transition.
func (uc *tripUC) applyTransition(ctx context.Context, tripID uuid.UUID, event string, from []models.TripStatus, to models.TripStatus, effects models.TripSideEffects) (*models.Trip, error) {
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := uc.tripRepo.TransitionStatus(ctx, tripID, from, to, effects)
		if err != nil {
			return nil, err
		}
		if ok {
			return uc.tripRepo.GetTrip(ctx, tripID)
		}

		trip, err := uc.tripRepo.GetTrip(ctx, tripID)
		if err != nil {
			return nil, err
		}
		if !statusIn(trip.Status, from) {
			return nil, apperr.InvalidTransition(string(trip.Status), event)
		}
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return nil, apperr.InvalidTransition(string(trip.Status), event)
}

// recomputeDistance sums the haversine distance over the full ordered path.
// No jitter threshold here: this is the one-time integrity pass and its
// result is the canonical figure.
func (uc *tripUC) recomputeDistance(ctx context.Context, tripID uuid.UUID) (float64, error) {
	path, err := uc.telemetry.GetPath(ctx, tripID)
	if err != nil {
		return 0, err
	}
	if len(path) < 2 {
		return 0, nil
	}

	var total float64
	for i := 1; i < len(path); i++ {
		total += utils.DistanceKm(
			path[i-1].Latitude, path[i-1].Longitude,
			path[i].Latitude, path[i].Longitude,
		)
	}
	return total, nil
}

// publishEvent notifies the booking subsystem. Best effort: a broker outage
// must not fail the trip operation itself.
func (uc *tripUC) publishEvent(ctx context.Context, topic string, trip *models.Trip) {
	event := models.TripEvent{
		TripID:    trip.ID,
		BookingID: trip.BookingID,
		VehicleID: trip.VehicleID,
		Status:    trip.Status,
		Distance:  trip.Distance,
		Timestamp: time.Now(),
	}
	if err := uc.tripGW.PublishTripEvent(ctx, topic, event); err != nil {
		logger.Error("Failed to publish trip event",
			logger.String("topic", topic),
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}
}

func parseTripID(tripID string) (uuid.UUID, error) {
	tid, err := uuid.Parse(tripID)
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid trip id")
	}
	return tid, nil
}

func statusIn(status models.TripStatus, set []models.TripStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

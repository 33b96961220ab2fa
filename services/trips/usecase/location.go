package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/logger"
	"github.com/watergo/tanktrip/internal/pkg/models"
	"github.com/watergo/tanktrip/internal/utils"
)

const geohashPrecision = 9

// IngestLocation stores one GPS sample for a trip and advances the distance
// counter when the sample moved far enough past the previous one. The whole
// fetch-previous, append, add-counter sequence runs under the per-trip lock
// so concurrent samples for one trip apply in order.
func (uc *tripUC) IngestLocation(ctx context.Context, tripID string, req models.LocationRequest) (*models.IngestResponse, error) {
	tid, err := parseTripID(tripID)
	if err != nil {
		return nil, err
	}
	if err := validateCoordinates(req); err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(tid.String())
	defer unlock()

	trip, err := uc.tripRepo.GetTrip(ctx, tid)
	if err != nil {
		return nil, err
	}
	// The distance written at delivery and completion is the audited figure;
	// samples arriving after a terminal status must not move it.
	if trip.Status.IsTerminal() {
		return nil, apperr.InvalidTransition(string(trip.Status), "ingest_location")
	}

	prev, err := uc.telemetry.GetLastSample(ctx, tid)
	if err != nil {
		return nil, err
	}

	sample := &models.GpsLocation{
		ID:        uuid.New(),
		TripID:    tid,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Altitude:  req.Altitude,
		Speed:     req.Speed,
		Heading:   req.Heading,
		// Server-assigned so client clock skew cannot corrupt ordering
		Timestamp: time.Now(),
	}

	if err := uc.telemetry.AppendSample(ctx, sample); err != nil {
		return nil, err
	}

	// Below-threshold deltas are stored for path fidelity but do not move
	// the counter; a stationary vehicle's GPS noise must not inflate distance.
	var delta float64
	total := trip.Distance
	if prev != nil {
		d := utils.DistanceKm(prev.Latitude, prev.Longitude, sample.Latitude, sample.Longitude)
		if d > uc.cfg.Telemetry.JitterThresholdKm {
			delta = d
		}
	}

	if delta > 0 {
		total, err = uc.tripRepo.AddDistance(ctx, tid, delta)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.cache.StoreLastPosition(ctx, tid.String(), *sample); err != nil {
		logger.Warn("Failed to update last-position cache",
			logger.String("trip_id", tid.String()),
			logger.Err(err))
	}

	// Fan out only after the sample is durable
	uc.broadcaster.Publish(tid.String(), models.PositionUpdate{
		TripID:    tid,
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Altitude:  sample.Altitude,
		Speed:     sample.Speed,
		Heading:   sample.Heading,
		Geohash:   utils.EncodeGeohash(sample.Latitude, sample.Longitude, geohashPrecision),
		Timestamp: sample.Timestamp,
	})

	return &models.IngestResponse{
		Accepted:      true,
		DistanceDelta: delta,
		TotalDistance: total,
	}, nil
}

func validateCoordinates(req models.LocationRequest) error {
	if req.Latitude == nil || req.Longitude == nil {
		return apperr.Validation("latitude and longitude are required")
	}
	// The service area sits in the north-eastern hemisphere; a negative
	// coordinate indicates a bad fix, not a southern position.
	if *req.Latitude < 0 || *req.Longitude < 0 {
		return apperr.Validation("latitude and longitude must be non-negative")
	}
	if *req.Latitude > 90 || *req.Longitude > 180 {
		return apperr.Validation("latitude or longitude out of range")
	}
	return nil
}

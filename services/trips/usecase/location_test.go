package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watergo/tanktrip/internal/pkg/apperr"
	"github.com/watergo/tanktrip/internal/pkg/models"
)

func ptr(v float64) *float64 { return &v }

func TestIngestLocation_FirstSampleNoDelta(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	m.telemetry.EXPECT().GetLastSample(gomock.Any(), tripID).Return(nil, nil)
	m.telemetry.EXPECT().
		AppendSample(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sample *models.GpsLocation) error {
			assert.Equal(t, tripID, sample.TripID)
			assert.False(t, sample.Timestamp.IsZero())
			return nil
		})
	m.cache.EXPECT().StoreLastPosition(gomock.Any(), tripID.String(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().Publish(tripID.String(), gomock.Any())

	resp, err := uc.IngestLocation(context.Background(), tripID.String(),
		models.LocationRequest{Latitude: ptr(28.6139), Longitude: ptr(77.2090)})

	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Zero(t, resp.DistanceDelta)
}

func TestIngestLocation_JitterBelowThreshold(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	// 0.00003 deg of longitude at the equator is ~3.3 m, under the 5 m threshold
	prev := &models.GpsLocation{TripID: tripID, Latitude: 0, Longitude: 0}

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing, Distance: 1.0}, nil)
	m.telemetry.EXPECT().GetLastSample(gomock.Any(), tripID).Return(prev, nil)
	m.telemetry.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().StoreLastPosition(gomock.Any(), tripID.String(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().Publish(tripID.String(), gomock.Any())

	// No AddDistance expectation: the sample is stored but the counter holds
	resp, err := uc.IngestLocation(context.Background(), tripID.String(),
		models.LocationRequest{Latitude: ptr(0), Longitude: ptr(0.00003)})

	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.Zero(t, resp.DistanceDelta)
	assert.Equal(t, 1.0, resp.TotalDistance)
}

func TestIngestLocation_MovementAboveThreshold(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	prev := &models.GpsLocation{TripID: tripID, Latitude: 0, Longitude: 0}

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing, Distance: 1.0}, nil)
	m.telemetry.EXPECT().GetLastSample(gomock.Any(), tripID).Return(prev, nil)
	m.telemetry.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(nil)
	m.tripRepo.EXPECT().
		AddDistance(gomock.Any(), tripID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta float64) (float64, error) {
			// 0.0001 deg of longitude at the equator is ~11 m
			assert.InDelta(t, 0.0111, delta, 0.0005)
			return 1.0 + delta, nil
		})
	m.cache.EXPECT().StoreLastPosition(gomock.Any(), tripID.String(), gomock.Any()).Return(nil)
	m.broadcaster.EXPECT().Publish(tripID.String(), gomock.Any())

	resp, err := uc.IngestLocation(context.Background(), tripID.String(),
		models.LocationRequest{Latitude: ptr(0), Longitude: ptr(0.0001)})

	require.NoError(t, err)
	assert.InDelta(t, 0.0111, resp.DistanceDelta, 0.0005)
	assert.InDelta(t, 1.0111, resp.TotalDistance, 0.0005)
}

func TestIngestLocation_MissingCoordinates(t *testing.T) {
	uc, _ := setupUC(t)
	tripID := uuid.New().String()
	ctx := context.Background()

	_, err := uc.IngestLocation(ctx, tripID, models.LocationRequest{Longitude: ptr(77.2)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = uc.IngestLocation(ctx, tripID, models.LocationRequest{Latitude: ptr(28.6)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestIngestLocation_NegativeCoordinatesRejected(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.IngestLocation(context.Background(), uuid.New().String(),
		models.LocationRequest{Latitude: ptr(-6.17), Longitude: ptr(106.82)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestIngestLocation_OutOfRangeRejected(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.IngestLocation(context.Background(), uuid.New().String(),
		models.LocationRequest{Latitude: ptr(91), Longitude: ptr(77)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = uc.IngestLocation(context.Background(), uuid.New().String(),
		models.LocationRequest{Latitude: ptr(28), Longitude: ptr(181)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestIngestLocation_TerminalTripRejected(t *testing.T) {
	uc, m := setupUC(t)

	for _, status := range []models.TripStatus{
		models.TripStatusCompleted,
		models.TripStatusCancelled,
		models.TripStatusRejected,
	} {
		tripID := uuid.New()
		m.tripRepo.EXPECT().
			GetTrip(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, Status: status, Distance: 10.0}, nil)

		// No AppendSample, AddDistance or broadcast expectations: the final
		// distance must stay untouched after the trip ends.
		_, err := uc.IngestLocation(context.Background(), tripID.String(),
			models.LocationRequest{Latitude: ptr(0), Longitude: ptr(0.0001)})
		assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
	}
}

func TestIngestLocation_UnknownTrip(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(nil, apperr.NotFound("trip not found"))

	_, err := uc.IngestLocation(context.Background(), tripID.String(),
		models.LocationRequest{Latitude: ptr(28.6), Longitude: ptr(77.2)})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestIngestLocation_CacheFailureTolerated(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	m.telemetry.EXPECT().GetLastSample(gomock.Any(), tripID).Return(nil, nil)
	m.telemetry.EXPECT().AppendSample(gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().
		StoreLastPosition(gomock.Any(), tripID.String(), gomock.Any()).
		Return(errors.New("redis down"))
	m.broadcaster.EXPECT().Publish(tripID.String(), gomock.Any())

	resp, err := uc.IngestLocation(context.Background(), tripID.String(),
		models.LocationRequest{Latitude: ptr(28.6), Longitude: ptr(77.2)})

	assert.NoError(t, err)
	assert.True(t, resp.Accepted)
}

func TestIngestLocation_AppendFailureAborts(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	m.telemetry.EXPECT().GetLastSample(gomock.Any(), tripID).Return(nil, nil)
	m.telemetry.EXPECT().
		AppendSample(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	// No cache write and no broadcast when persistence fails
	_, err := uc.IngestLocation(context.Background(), tripID.String(),
		models.LocationRequest{Latitude: ptr(28.6), Longitude: ptr(77.2)})
	assert.Error(t, err)
}

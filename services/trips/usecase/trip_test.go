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
	"github.com/watergo/tanktrip/internal/pkg/constants"
	"github.com/watergo/tanktrip/internal/pkg/models"
	"github.com/watergo/tanktrip/services/trips"
	"github.com/watergo/tanktrip/services/trips/mocks"
)

type ucMocks struct {
	tripRepo    *mocks.MockTripRepo
	telemetry   *mocks.MockTelemetryRepo
	cache       *mocks.MockLocationCache
	tripGW      *mocks.MockTripGW
	otpProvider *mocks.MockOTPProvider
	broadcaster *mocks.MockBroadcaster
}

func setupUC(t *testing.T) (trips.TripUC, *ucMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &ucMocks{
		tripRepo:    mocks.NewMockTripRepo(ctrl),
		telemetry:   mocks.NewMockTelemetryRepo(ctrl),
		cache:       mocks.NewMockLocationCache(ctrl),
		tripGW:      mocks.NewMockTripGW(ctrl),
		otpProvider: mocks.NewMockOTPProvider(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
	}

	cfg := &models.Config{}
	cfg.Telemetry.JitterThresholdKm = 0.005
	cfg.OTP.CodeLength = 6
	cfg.OTP.TimeoutSeconds = 1

	uc, err := NewTripUC(cfg, m.tripRepo, m.telemetry, m.cache, m.tripGW, m.otpProvider, m.broadcaster)
	require.NoError(t, err)
	return uc, m
}

func TestAcceptBooking_Accept(t *testing.T) {
	uc, m := setupUC(t)

	m.tripRepo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			assert.Equal(t, "booking-1", trip.BookingID)
			assert.Equal(t, "vehicle-9", trip.VehicleID)
			assert.Equal(t, models.TripStatusAccepted, trip.Status)
			assert.NotEqual(t, uuid.Nil, trip.ID)
			return nil
		})
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripAccepted, gomock.Any()).
		Return(nil)

	trip, err := uc.AcceptBooking(context.Background(), "booking-1",
		models.BookingActionRequest{Action: "accept", VehicleID: "vehicle-9"})

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusAccepted, trip.Status)
}

func TestAcceptBooking_Reject(t *testing.T) {
	uc, m := setupUC(t)

	m.tripRepo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripRejected, gomock.Any()).
		Return(nil)

	trip, err := uc.AcceptBooking(context.Background(), "booking-1",
		models.BookingActionRequest{Action: "reject"})

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusRejected, trip.Status)
}

func TestAcceptBooking_Validation(t *testing.T) {
	uc, _ := setupUC(t)
	ctx := context.Background()

	_, err := uc.AcceptBooking(ctx, "", models.BookingActionRequest{Action: "accept", VehicleID: "v"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = uc.AcceptBooking(ctx, "b", models.BookingActionRequest{Action: "accept"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = uc.AcceptBooking(ctx, "b", models.BookingActionRequest{Action: "maybe"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestStartTrip_Success(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID,
			[]models.TripStatus{models.TripStatusAccepted},
			models.TripStatusOngoing, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ []models.TripStatus, _ models.TripStatus, effects models.TripSideEffects) (bool, error) {
			assert.NotNil(t, effects.StartTime)
			return true, nil
		})
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripStarted, gomock.Any()).
		Return(nil)

	trip, err := uc.StartTrip(context.Background(), tripID.String())

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
}

func TestStartTrip_InvalidID(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.StartTrip(context.Background(), "not-a-uuid")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestStartTrip_IllegalFromCompleted(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusOngoing, gomock.Any()).
		Return(false, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCompleted}, nil)

	_, err := uc.StartTrip(context.Background(), tripID.String())
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
}

func TestStartTrip_RetriesOncePastTransientMiss(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	// First CAS attempt misses, but the re-read still shows an eligible
	// status, so a second attempt runs and wins.
	gomock.InOrder(
		m.tripRepo.EXPECT().
			TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusOngoing, gomock.Any()).
			Return(false, nil),
		m.tripRepo.EXPECT().
			GetTrip(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, Status: models.TripStatusAccepted}, nil),
		m.tripRepo.EXPECT().
			TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusOngoing, gomock.Any()).
			Return(true, nil),
		m.tripRepo.EXPECT().
			GetTrip(gomock.Any(), tripID).
			Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil),
	)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripStarted, gomock.Any()).
		Return(nil)

	trip, err := uc.StartTrip(context.Background(), tripID.String())

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
}

func TestReachHydrant_RequiresPhoto(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.ReachHydrant(context.Background(), uuid.New().String(), "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDepartHydrant_ReentrantNoOp(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	// CAS misses because the trip is already ongoing; treated as success
	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID,
			[]models.TripStatus{models.TripStatusPickup},
			models.TripStatusOngoing, gomock.Any()).
		Return(false, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)

	trip, err := uc.DepartHydrant(context.Background(), tripID.String())

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
}

func TestDepartHydrant_IllegalFromDelivered(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusOngoing, gomock.Any()).
		Return(false, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusDelivered}, nil)

	_, err := uc.DepartHydrant(context.Background(), tripID.String())
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
}

func TestWaterDelivered_RecomputesDistance(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	path := []models.GpsLocation{
		{TripID: tripID, Latitude: 0, Longitude: 0},
		{TripID: tripID, Latitude: 0, Longitude: 0.01},
		{TripID: tripID, Latitude: 0, Longitude: 0.02},
	}
	m.telemetry.EXPECT().GetPath(gomock.Any(), tripID).Return(path, nil)

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID,
			[]models.TripStatus{models.TripStatusOngoing},
			models.TripStatusDelivered, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ []models.TripStatus, _ models.TripStatus, effects models.TripSideEffects) (bool, error) {
			require.NotNil(t, effects.Distance)
			// 0.02 degrees of longitude at the equator is ~2.2 km
			assert.InDelta(t, 2.22, *effects.Distance, 0.05)
			assert.NotNil(t, effects.EndTime)
			require.NotNil(t, effects.Video)
			assert.Equal(t, "https://cdn/video.mp4", *effects.Video)
			return true, nil
		})
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusDelivered}, nil)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripDelivered, gomock.Any()).
		Return(nil)

	trip, err := uc.WaterDelivered(context.Background(), tripID.String(), "https://cdn/video.mp4")

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusDelivered, trip.Status)
}

func TestWaterDelivered_RequiresVideo(t *testing.T) {
	uc, _ := setupUC(t)

	_, err := uc.WaterDelivered(context.Background(), uuid.New().String(), "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCancelTrip_FromOngoing(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID, cancellableStatuses, models.TripStatusCancelled, gomock.Any()).
		Return(true, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCancelled}, nil)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripCancelled, gomock.Any()).
		Return(nil)

	trip, err := uc.CancelTrip(context.Background(), tripID.String())

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, trip.Status)
}

func TestCancelTrip_IllegalFromCompleted(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusCancelled, gomock.Any()).
		Return(false, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCompleted}, nil)

	_, err := uc.CancelTrip(context.Background(), tripID.String())
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
}

func TestCancelTripByBooking_NoActiveTrip(t *testing.T) {
	uc, m := setupUC(t)

	m.tripRepo.EXPECT().
		GetActiveTripByBooking(gomock.Any(), "booking-7").
		Return(nil, apperr.NotFound("no active trip for booking booking-7"))

	err := uc.CancelTripByBooking(context.Background(), "booking-7")
	assert.NoError(t, err)
}

func TestCancelTripByBooking_CancelsActiveTrip(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetActiveTripByBooking(gomock.Any(), "booking-7").
		Return(&models.Trip{ID: tripID, BookingID: "booking-7", Status: models.TripStatusOngoing}, nil)
	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusCancelled, gomock.Any()).
		Return(true, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusCancelled}, nil)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripCancelled, gomock.Any()).
		Return(nil)

	err := uc.CancelTripByBooking(context.Background(), "booking-7")
	assert.NoError(t, err)
}

func TestCancelTripByBooking_RepoError(t *testing.T) {
	uc, m := setupUC(t)

	dbErr := errors.New("connection reset")
	m.tripRepo.EXPECT().
		GetActiveTripByBooking(gomock.Any(), "booking-7").
		Return(nil, dbErr)

	err := uc.CancelTripByBooking(context.Background(), "booking-7")
	assert.Equal(t, dbErr, err)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		TransitionStatus(gomock.Any(), tripID, gomock.Any(), models.TripStatusOngoing, gomock.Any()).
		Return(true, nil)
	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing}, nil)
	m.tripGW.EXPECT().
		PublishTripEvent(gomock.Any(), constants.TopicTripStarted, gomock.Any()).
		Return(errors.New("nsqd unreachable"))

	trip, err := uc.StartTrip(context.Background(), tripID.String())

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
}

func TestGetTracking_CacheMissFallsBackToStore(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusOngoing, Distance: 3.5}, nil)
	m.cache.EXPECT().
		GetLastPosition(gomock.Any(), tripID.String()).
		Return(nil, nil)
	m.telemetry.EXPECT().
		GetLastSample(gomock.Any(), tripID).
		Return(&models.GpsLocation{TripID: tripID, Latitude: 28.6, Longitude: 77.2}, nil)

	info, err := uc.GetTracking(context.Background(), tripID.String())

	assert.NoError(t, err)
	require.NotNil(t, info.CurrentLocation)
	assert.Equal(t, 28.6, info.CurrentLocation.Latitude)
	assert.Equal(t, 3.5, info.Distance)
}

func TestGetTracking_NoSamplesYet(t *testing.T) {
	uc, m := setupUC(t)
	tripID := uuid.New()

	m.tripRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, Status: models.TripStatusAccepted}, nil)
	m.cache.EXPECT().
		GetLastPosition(gomock.Any(), tripID.String()).
		Return(nil, nil)
	m.telemetry.EXPECT().
		GetLastSample(gomock.Any(), tripID).
		Return(nil, nil)

	info, err := uc.GetTracking(context.Background(), tripID.String())

	assert.NoError(t, err)
	assert.Nil(t, info.CurrentLocation)
}

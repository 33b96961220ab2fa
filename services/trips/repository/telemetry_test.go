package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watergo/tanktrip/internal/pkg/models"
)

func sampleColumns() []string {
	return []string{"id", "trip_id", "latitude", "longitude", "altitude", "speed", "heading", "timestamp"}
}

func TestAppendSample(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTelemetryRepository(db)

	speed := 42.5
	sample := &models.GpsLocation{
		ID:        uuid.New(),
		TripID:    uuid.New(),
		Latitude:  28.6139,
		Longitude: 77.2090,
		Speed:     &speed,
		Timestamp: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO gps_locations")).
		WithArgs(
			sample.ID,
			sample.TripID,
			sample.Latitude,
			sample.Longitude,
			nil, // altitude
			speed,
			nil, // heading
			sample.Timestamp,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendSample(context.Background(), sample)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastSample_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTelemetryRepository(db)
	tripID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp DESC")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(sampleColumns()))

	sample, err := repo.GetLastSample(context.Background(), tripID)

	// No samples yet is not an error
	assert.NoError(t, err)
	assert.Nil(t, sample)
}

func TestGetLastSample_ReturnsLatest(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTelemetryRepository(db)
	tripID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(sampleColumns()).
		AddRow(uuid.New(), tripID, 28.6139, 77.2090, nil, nil, nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp DESC")).
		WithArgs(tripID).
		WillReturnRows(rows)

	sample, err := repo.GetLastSample(context.Background(), tripID)

	require.NoError(t, err)
	require.NotNil(t, sample)
	assert.Equal(t, 28.6139, sample.Latitude)
	assert.Nil(t, sample.Altitude)
}

func TestGetPath_Ordered(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTelemetryRepository(db)
	tripID := uuid.New()
	base := time.Now()

	rows := sqlmock.NewRows(sampleColumns()).
		AddRow(uuid.New(), tripID, 0.0, 0.0, nil, nil, nil, base).
		AddRow(uuid.New(), tripID, 0.0, 0.01, nil, nil, nil, base.Add(time.Second)).
		AddRow(uuid.New(), tripID, 0.0, 0.02, nil, nil, nil, base.Add(2*time.Second))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp ASC")).
		WithArgs(tripID).
		WillReturnRows(rows)

	path, err := repo.GetPath(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, 0.0, path[0].Longitude)
	assert.Equal(t, 0.02, path[2].Longitude)
}

func TestGetPath_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTelemetryRepository(db)
	tripID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY timestamp ASC")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(sampleColumns()))

	path, err := repo.GetPath(context.Background(), tripID)

	assert.NoError(t, err)
	assert.Empty(t, path)
}

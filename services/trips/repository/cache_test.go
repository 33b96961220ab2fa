package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watergo/tanktrip/internal/pkg/database"
	"github.com/watergo/tanktrip/internal/pkg/models"
)

func setupMockRedis(t *testing.T) *database.RedisClient {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}
}

func TestLocationCache_RoundTrip(t *testing.T) {
	cache := NewLocationCache(setupMockRedis(t), time.Hour)
	tripID := uuid.New()
	speed := 38.0

	sample := models.GpsLocation{
		TripID:    tripID,
		Latitude:  28.6139,
		Longitude: 77.2090,
		Speed:     &speed,
		Timestamp: time.Now().Truncate(time.Second),
	}

	err := cache.StoreLastPosition(context.Background(), tripID.String(), sample)
	require.NoError(t, err)

	got, err := cache.GetLastPosition(context.Background(), tripID.String())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, sample.Latitude, got.Latitude)
	assert.Equal(t, sample.Longitude, got.Longitude)
	assert.Equal(t, sample.Timestamp.Unix(), got.Timestamp.Unix())
	require.NotNil(t, got.Speed)
	assert.Equal(t, speed, *got.Speed)
	assert.Nil(t, got.Altitude)
}

func TestLocationCache_Miss(t *testing.T) {
	cache := NewLocationCache(setupMockRedis(t), time.Hour)

	got, err := cache.GetLastPosition(context.Background(), uuid.New().String())

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocationCache_OverwriteKeepsLatest(t *testing.T) {
	cache := NewLocationCache(setupMockRedis(t), time.Hour)
	tripID := uuid.New()
	ctx := context.Background()

	first := models.GpsLocation{TripID: tripID, Latitude: 1, Longitude: 1, Timestamp: time.Now()}
	second := models.GpsLocation{TripID: tripID, Latitude: 2, Longitude: 2, Timestamp: time.Now()}

	require.NoError(t, cache.StoreLastPosition(ctx, tripID.String(), first))
	require.NoError(t, cache.StoreLastPosition(ctx, tripID.String(), second))

	got, err := cache.GetLastPosition(ctx, tripID.String())
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Latitude)
}

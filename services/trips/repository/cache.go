package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/watergo/tanktrip/internal/pkg/constants"
	"github.com/watergo/tanktrip/internal/pkg/database"
	"github.com/watergo/tanktrip/internal/pkg/models"
)

// LocationCache mirrors the latest accepted sample per trip into a Redis
// hash with a TTL. Read optimization for the tracking view only; the
// gps_locations log remains the source of truth.
type LocationCache struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationCache creates a new last-known-position cache
func NewLocationCache(redisClient *database.RedisClient, ttl time.Duration) *LocationCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &LocationCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// StoreLastPosition upserts the latest position for a trip
func (c *LocationCache) StoreLastPosition(ctx context.Context, tripID string, sample models.GpsLocation) error {
	key := fmt.Sprintf(constants.KeyTripLocation, tripID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(sample.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(sample.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(sample.Timestamp.Unix(), 10),
	}
	if sample.Altitude != nil {
		fields[constants.FieldAltitude] = strconv.FormatFloat(*sample.Altitude, 'f', -1, 64)
	}
	if sample.Speed != nil {
		fields[constants.FieldSpeed] = strconv.FormatFloat(*sample.Speed, 'f', -1, 64)
	}
	if sample.Heading != nil {
		fields[constants.FieldHeading] = strconv.FormatFloat(*sample.Heading, 'f', -1, 64)
	}

	if err := c.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store last position: %w", err)
	}
	if err := c.redisClient.Expire(ctx, key, c.ttl); err != nil {
		return fmt.Errorf("failed to set last position TTL: %w", err)
	}
	return nil
}

// GetLastPosition returns the cached position for a trip, or nil on a miss
func (c *LocationCache) GetLastPosition(ctx context.Context, tripID string) (*models.GpsLocation, error) {
	key := fmt.Sprintf(constants.KeyTripLocation, tripID)

	values, err := c.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
		constants.FieldAltitude,
		constants.FieldSpeed,
		constants.FieldHeading,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get last position: %w", err)
	}

	if len(values) < 3 || values[0] == "" || values[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached timestamp: %w", err)
	}

	parsedTripID, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid trip id: %w", err)
	}

	sample := &models.GpsLocation{
		TripID:    parsedTripID,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0),
	}
	optional := []**float64{&sample.Altitude, &sample.Speed, &sample.Heading}
	for i, dst := range optional {
		idx := 3 + i
		if idx < len(values) && values[idx] != "" {
			if v, err := strconv.ParseFloat(values[idx], 64); err == nil {
				*dst = &v
			}
		}
	}

	return sample, nil
}

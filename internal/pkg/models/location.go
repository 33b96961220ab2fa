package models

import (
	"time"

	"github.com/google/uuid"
)

// GpsLocation is one GPS sample ingested for a trip. Samples are stored
// append-only, ordered by the server-assigned timestamp.
type GpsLocation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TripID    uuid.UUID `json:"trip_id" db:"trip_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Altitude  *float64  `json:"altitude,omitempty" db:"altitude"`
	Speed     *float64  `json:"speed,omitempty" db:"speed"`
	Heading   *float64  `json:"heading,omitempty" db:"heading"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationRequest is the ingestion payload from the driver app. Latitude and
// longitude are pointers so a missing field is distinguishable from zero.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

// IngestResponse reports the distance effect of one accepted sample
type IngestResponse struct {
	Accepted      bool    `json:"accepted"`
	DistanceDelta float64 `json:"distance_delta"`
	TotalDistance float64 `json:"total_distance"`
}

// TrackingInfo is the dashboard view of a trip's latest known position
type TrackingInfo struct {
	TripID          uuid.UUID    `json:"trip_id"`
	Status          TripStatus   `json:"status"`
	Distance        float64      `json:"distance"`
	CurrentLocation *GpsLocation `json:"current_location,omitempty"`
}

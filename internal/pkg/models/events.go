package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionUpdate is the live tracking event fanned out to room subscribers
// after a sample is persisted.
type PositionUpdate struct {
	TripID    uuid.UUID `json:"trip_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
	Geohash   string    `json:"geohash"`
	Timestamp time.Time `json:"timestamp"`
}

// TripEvent is published to the booking subsystem on every lifecycle change
type TripEvent struct {
	TripID    uuid.UUID  `json:"trip_id"`
	BookingID string     `json:"booking_id"`
	VehicleID string     `json:"vehicle_id"`
	Status    TripStatus `json:"status"`
	Distance  float64    `json:"distance"`
	Timestamp time.Time  `json:"timestamp"`
}

// BookingCancelledEvent arrives from the booking subsystem when a booking is
// cancelled; it forces the owning trip into the cancelled state.
type BookingCancelledEvent struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason,omitempty"`
}

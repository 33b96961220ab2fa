package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a delivery trip
type TripStatus string

const (
	TripStatusAccepted  TripStatus = "accepted"
	TripStatusPickup    TripStatus = "pickup"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusDelivered TripStatus = "delivered"
	TripStatusCompleted TripStatus = "completed"
	TripStatusRejected  TripStatus = "rejected"
	TripStatusCancelled TripStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s TripStatus) IsTerminal() bool {
	switch s {
	case TripStatusCompleted, TripStatusRejected, TripStatusCancelled:
		return true
	}
	return false
}

// Trip represents the tracked physical execution of a single booking by one vehicle
type Trip struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	BookingID string     `json:"booking_id" db:"booking_id"`
	VehicleID string     `json:"vehicle_id" db:"vehicle_id"`
	Status    TripStatus `json:"status" db:"status"`
	StartTime *time.Time `json:"start_time,omitempty" db:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" db:"end_time"`
	Distance  float64    `json:"distance" db:"distance"` // accumulated kilometers
	Photo     *string    `json:"photo,omitempty" db:"photo"`
	Video     *string    `json:"video,omitempty" db:"video"`
	OTP       *string    `json:"-" db:"otp"` // fallback verification code, never serialized
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// TripSideEffects carries the column updates applied together with a status
// transition. Nil fields are left untouched; ClearOTP nulls the stored code.
type TripSideEffects struct {
	StartTime *time.Time
	EndTime   *time.Time
	Photo     *string
	Video     *string
	Distance  *float64
	OTP       *string
	ClearOTP  bool
}

// BookingActionRequest is the accept/reject decision from a vehicle owner
type BookingActionRequest struct {
	Action    string `json:"action" validate:"required"` // "accept" or "reject"
	VehicleID string `json:"vehicle_id,omitempty"`
}

// TripMediaRequest carries a milestone attachment URL
type TripMediaRequest struct {
	PhotoURL string `json:"photo_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

package constants

// NSQ topics
const (
	// Published by the trips service
	TopicTripAccepted  = "trip.accepted"
	TopicTripRejected  = "trip.rejected"
	TopicTripStarted   = "trip.started"
	TopicTripPickup    = "trip.pickup"
	TopicTripDelivered = "trip.delivered"
	TopicTripCompleted = "trip.completed"
	TopicTripCancelled = "trip.cancelled"

	// Consumed from the booking subsystem
	TopicBookingCancelled = "booking.cancelled"
)

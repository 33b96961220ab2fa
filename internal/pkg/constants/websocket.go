package constants

// WebSocket event types
const (
	EventError          = "error"
	EventLocationUpdate = "location_update"
	EventLastKnown      = "last_known_position"
)

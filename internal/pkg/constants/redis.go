package constants

// Redis key formats
const (
	KeyTripLocation = "trips:location:%s" // Format: trips:location:{trip_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAltitude  = "alt"
	FieldSpeed     = "spd"
	FieldHeading   = "hdg"
	FieldTimestamp = "ts"
)

package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// earthRadiusKm is the mean Earth radius in kilometers
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula. The asin/sqrt form stays
// numerically stable for very small deltas, where the acos form can leave
// its domain near 1.0.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lon2 - lon1) * math.Pi / 180.0

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// CalculateDistance calculates the distance between two points in kilometers
func CalculateDistance(p1, p2 GeoPoint) float64 {
	return DistanceKm(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
}

// EncodeGeohash converts a coordinate pair to a geohash string
func EncodeGeohash(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

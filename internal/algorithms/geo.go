package algorithms

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// DefaultSearchRadiusKm bounds radius search. The boundary is inclusive:
// an artisan at exactly 30.0 km is a match.
const DefaultSearchRadiusKm = 30.0

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// WithinRadius reports whether a distance falls inside the search radius.
// The boundary is inclusive.
func WithinRadius(distanceKm, radiusKm float64) bool {
	return distanceKm <= radiusKm
}

// RoundKm rounds a distance to two decimals for display.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

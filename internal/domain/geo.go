package domain

import "math"

const (
	earthRadiusKm = 6371

	// averageSpeedKmh is the assumed door-to-door speed used for travel
	// estimates. The estimate is a straight-line heuristic, not a road
	// routing result.
	averageSpeedKmh = 30
)

// HaversineKm returns the great-circle distance in kilometers between two
// coordinates.
func HaversineKm(fromLat, fromLng, toLat, toLng float64) float64 {
	dLat := (toLat - fromLat) * math.Pi / 180
	dLng := (toLng - fromLng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(fromLat*math.Pi/180)*math.Cos(toLat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EstimateTravelMinutes estimates transit time between two coordinates:
// haversine distance at a fixed 30 km/h, rounded to the nearest minute.
// Symmetric in its arguments; zero for identical points.
func EstimateTravelMinutes(fromLat, fromLng, toLat, toLng float64) int {
	distanceKm := HaversineKm(fromLat, fromLng, toLat, toLng)
	return int(math.Round(distanceKm / averageSpeedKmh * 60))
}

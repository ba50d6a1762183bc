package geo

import "math"

// degToRad converts degrees to radians.
//
// Complexity: O(1).
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance returns the great-circle distance between a and b in kilometers,
// computed with the Haversine formula on a sphere of radius EarthRadiusKm.
//
// Properties:
//   - Symmetric: Distance(a, b) == Distance(b, a).
//   - Distance(a, a) == 0; coincident coordinates yield zero-length edges.
//   - Always defined for in-range coordinates; no error conditions.
//
// The haversine term is clamped to [0, 1] before the square root to guard
// against floating-point overshoot on near-antipodal pairs.
//
// Complexity: O(1).
func Distance(a, b Coordinate) float64 {
	var (
		lat1 = degToRad(a.Lat)
		lon1 = degToRad(a.Lon)
		lat2 = degToRad(b.Lat)
		lon2 = degToRad(b.Lon)
	)

	var (
		dLat = lat2 - lat1
		dLon = lon2 - lon1
	)

	// h = sin²(Δφ/2) + cosφ1·cosφ2·sin²(Δλ/2)
	var (
		sinLat = math.Sin(dLat / 2)
		sinLon = math.Sin(dLon / 2)
		h      = sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	)

	// Clamp against FP overshoot before Asin(Sqrt(h)).
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

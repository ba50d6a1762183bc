package geo

// EarthRadiusKm is the mean Earth radius used by the spherical model.
const EarthRadiusKm = 6371.0

// Coordinate is an immutable geographic point in degrees.
//
// Contract (documented precondition, not enforced here):
//   - Lat ∈ [-90, 90], Lon ∈ [-180, 180].
//
// The optimization core assumes callers hand it validated coordinates;
// ingestion layers should reject out-of-range values via InRange.
type Coordinate struct {
	// Lat is the latitude in degrees, positive north.
	Lat float64

	// Lon is the longitude in degrees, positive east.
	Lon float64
}

// InRange reports whether the coordinate lies within the documented
// latitude/longitude ranges. Intended for input-layer validation.
//
// Complexity: O(1).
func (c Coordinate) InRange() bool {
	if c.Lat < -90 || c.Lat > 90 {
		return false
	}

	return c.Lon >= -180 && c.Lon <= 180
}

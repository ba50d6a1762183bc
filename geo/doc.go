// Package geo provides the geographic primitives shared by the route
// optimizer: an immutable Coordinate value type and the Haversine
// great-circle distance over a spherical Earth model.
//
// Model:
//   - Coordinates are degrees of latitude/longitude.
//   - Distance treats the Earth as a sphere of radius EarthRadiusKm.
//     No ellipsoidal correction or map projection is applied.
//
// All functions are pure, deterministic, and allocation-free.
// Use this package when you need point-to-point geodesic distances;
// tour-level sums live in package route.
package geo

// Package route_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal
// and avoid duplicating functionality that lives in focused test files.
package route_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/route"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches route.DefaultEps: strict threshold to accept improvements.
	epsTiny = 1e-12

	// distTol is the absolute tolerance for comparing kilometer totals.
	distTol = 1e-6
)

// -----------------------------------------------------------------------------
// Geographic fixtures (degrees). Small spans keep curvature effects mild so
// planar intuition about "crossed" tours carries over to the sphere.
// -----------------------------------------------------------------------------

var (
	nyc    = geo.Coordinate{Lat: 40.7128, Lon: -74.0060}
	philly = geo.Coordinate{Lat: 39.9526, Lon: -75.1652}
	chi    = geo.Coordinate{Lat: 41.8781, Lon: -87.6298}

	// usCities is a 10-stop fixture for heuristic and Auto-policy tests.
	usCities = []geo.Coordinate{
		{Lat: 40.7128, Lon: -74.0060},  // New York
		{Lat: 34.0522, Lon: -118.2437}, // Los Angeles
		{Lat: 41.8781, Lon: -87.6298},  // Chicago
		{Lat: 29.7604, Lon: -95.3698},  // Houston
		{Lat: 33.4484, Lon: -112.0740}, // Phoenix
		{Lat: 39.9526, Lon: -75.1652},  // Philadelphia
		{Lat: 29.4241, Lon: -98.4936},  // San Antonio
		{Lat: 32.7157, Lon: -117.1611}, // San Diego
		{Lat: 32.7767, Lon: -96.7970},  // Dallas
		{Lat: 47.6062, Lon: -122.3321}, // Seattle
	}
)

// unitSquare returns the four corners of a one-degree square near the
// equator in perimeter order.
func unitSquare() []geo.Coordinate {
	return []geo.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 1},
		{Lat: 1, Lon: 0},
	}
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, numeric closeness, cycle comparison)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustFloatClose asserts |got-want| ≤ abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.12f want=%.12f (abs=%.1e)", got, want, abs)
	}
}

// coordsEqual compares coordinate slices element-wise (exact float equality:
// solvers reorder values, never recompute them).
func coordsEqual(a, b []geo.Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// sameCycleEitherDir reports whether two open tours describe the same cycle
// under rotation and reversal. Tours are compared as cyclic sequences of
// coordinate values.
func sameCycleEitherDir(a, b []geo.Coordinate) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	var shift, i int
	for shift = 0; shift < n; shift++ {
		// Forward rotation.
		match := true
		for i = 0; i < n; i++ {
			if a[i] != b[(shift+i)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
		// Reversed rotation.
		match = true
		for i = 0; i < n; i++ {
			if a[i] != b[(shift-i+n*2)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// rotateCoords returns tour cyclically shifted left by k positions.
func rotateCoords(tour []geo.Coordinate, k int) []geo.Coordinate {
	n := len(tour)
	out := make([]geo.Coordinate, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[(i+k)%n]
	}

	return out
}

// reverseCoords returns tour in reverse order.
func reverseCoords(tour []geo.Coordinate) []geo.Coordinate {
	n := len(tour)
	out := make([]geo.Coordinate, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}

	return out
}

// -----------------------------------------------------------------------------
// Reference enumeration - an independent brute-force oracle for tiny inputs
// -----------------------------------------------------------------------------

// minTourByEnumeration computes the optimal cycle length by enumerating all
// permutations of points (no anchoring, no shared code with the solver) and
// taking the minimum route.TotalDistance. Factorial; keep n ≤ 6.
func minTourByEnumeration(t *testing.T, points []geo.Coordinate) float64 {
	t.Helper()
	if len(points) > 6 {
		t.Fatalf("enumeration oracle capped at n=6, got n=%d", len(points))
	}

	best := math.Inf(1)
	perm := make([]geo.Coordinate, 0, len(points))
	used := make([]bool, len(points))

	var walk func()
	walk = func() {
		if len(perm) == len(points) {
			if d := route.TotalDistance(perm); d < best {
				best = d
			}

			return
		}
		var i int
		for i = 0; i < len(points); i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, points[i])
			walk()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	walk()

	return best
}

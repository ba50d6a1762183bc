package route

import "github.com/katalvlaran/georoute/geo"

// Tour utilities shared by the solvers. All solvers work on open index
// tours internally (a permutation of 0..n-1; the closing edge is implicit)
// and materialize coordinates only at the API boundary. Keeping the two
// representations separate means segment reversals and permutation scans
// shuffle ints, not structs.

// copyCoordinates returns an independent copy of points.
// A nil input yields an empty (non-nil) slice so callers can always
// range/append without nil checks.
//
// Complexity: O(n) time, O(n) space.
func copyCoordinates(points []geo.Coordinate) []geo.Coordinate {
	out := make([]geo.Coordinate, len(points))
	copy(out, points)

	return out
}

// identityTour returns the index tour 0,1,…,n-1.
//
// Complexity: O(n) time, O(n) space.
func identityTour(n int) []int {
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// materialize maps an index tour back onto the coordinates it indexes.
//
// Contract: tour is a permutation of 0..len(points)-1.
//
// Complexity: O(n) time, O(n) space.
func materialize(points []geo.Coordinate, tour []int) []geo.Coordinate {
	out := make([]geo.Coordinate, len(tour))

	var i int
	for i = 0; i < len(tour); i++ {
		out[i] = points[tour[i]]
	}

	return out
}

// reverseSegmentInPlace reverses the inclusive segment tour[i..k] in place.
// This is the 2-opt move primitive.
//
// Contract: 0 ≤ i ≤ k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

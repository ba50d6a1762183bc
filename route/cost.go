package route

import (
	"math"

	"github.com/katalvlaran/georoute/geo"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which tour wins.
const roundScale = 1e9

// TotalDistance returns the total cycle length of tour in kilometers: the
// sum of consecutive great-circle edges including the implicit closing
// edge from the last coordinate back to the first.
//
// Contract:
//   - tour is an ordered coordinate sequence; duplicate locations are
//     legal and contribute zero-length edges.
//   - For len(tour) ≤ 1 the total is 0.
//
// Pure, no side effects. The result is rounded to 1e-9 for cross-platform
// stability.
//
// Complexity: O(n) time, O(1) space.
func TotalDistance(tour []geo.Coordinate) float64 {
	n := len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += geo.Distance(tour[i], tour[i+1])
	}
	sum += geo.Distance(tour[n-1], tour[0]) // close the cycle

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

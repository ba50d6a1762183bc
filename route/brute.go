// Package route - exhaustive tour search.
//
// SolveBruteForce enumerates every distinct cyclic tour and keeps the
// minimum. Cyclic tours are rotation-invariant, so the first input point
// is fixed as an anchor and only the remaining n-1 points are permuted;
// that removes the n-fold rotational redundancy without losing optimality.
//
// Enumeration is lexicographic over input indices (smallest unused index
// first), and a candidate replaces the incumbent only on a strictly
// smaller cost, so ties resolve to the first-encountered tour. The whole
// procedure is deterministic.
//
// Complexity: O((n-1)!) candidates, O(n) cost evaluation each.
package route

import "github.com/katalvlaran/georoute/geo"

// SolveBruteForce returns the minimum-distance cyclic tour over points.
//
// Contract:
//   - points hold validated coordinates; duplicates in value are legal.
//   - The input slice is never mutated; the result is a fresh slice.
//
// Edge cases: n=0 → empty tour; n=1 → that point; n=2 → input order (only
// one tour exists up to direction).
//
// The solver imposes no size cap of its own - the Auto policy in Optimize
// owns the size tradeoff, and an explicit caller request is honored as-is.
func SolveBruteForce(points []geo.Coordinate) []geo.Coordinate {
	n := len(points)
	if n <= 2 {
		// n≤1 is trivial; for n=2 both directions cost 2·d(p0,p1).
		return copyCoordinates(points)
	}

	b := newDistBuffer(points)

	var (
		cur      = identityTour(n)    // cur[0] stays 0 (the anchor)
		used     = make([]bool, n)    // marks indices placed in cur
		best     = identityTour(n)    // incumbent tour
		bestCost = b.tourCost(cur)    // incumbent cost (input order)
	)
	used[0] = true

	permuteFrom(b, cur, used, 1, best, &bestCost)

	return materialize(points, best)
}

// permuteFrom extends cur from position depth with every unused index in
// ascending order, evaluating complete tours at the leaves and tightening
// the incumbent on strict improvement.
//
// Contract: cur[0..depth-1] is fixed; used mirrors cur's prefix.
//
// Complexity: O((n-depth)!) leaves from this frame.
func permuteFrom(b *distBuffer, cur []int, used []bool, depth int, best []int, bestCost *float64) {
	n := b.n
	if depth == n {
		cost := b.tourCost(cur)
		// Strict < keeps the first-encountered tour on ties.
		if cost < *bestCost {
			*bestCost = cost
			copy(best, cur)
		}

		return
	}

	var v int
	for v = 1; v < n; v++ { // index 0 is the anchor, never re-placed
		if used[v] {
			continue
		}
		cur[depth] = v
		used[v] = true
		permuteFrom(b, cur, used, depth+1, best, bestCost)
		used[v] = false
	}
}

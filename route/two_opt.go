// Package route - 2-opt local search engine.
//
// RefineTwoOpt performs deterministic first-improvement 2-opt on a closed
// tour: whenever replacing edges (t[i],t[i+1]) and (t[j],t[j+1]) with
// (t[i],t[j]) and (t[i+1],t[j+1]) shortens the cycle, the segment
// t[i+1..j] is reversed and the scan restarts from the beginning.
//
// Design:
//   - Δ = d(t[i],t[j]) + d(t[i+1],t[j+1]) − d(t[i],t[i+1]) − d(t[j],t[j+1]);
//     accept when Δ < −Eps.
//   - First-improvement with restart, not best-improvement. Simpler, and
//     the known performance lever if this ever needs to scan fewer passes
//     (best-improvement or don't-look bits would slot in here).
//   - Pass count is capped by Options.MaxPasses; on cap exhaustion the
//     best tour so far is returned. The cap is a non-termination guard,
//     never a user-visible error.
//
// Complexity: O(n²) candidate checks per pass; O(n) per accepted reversal.
package route

import "github.com/katalvlaran/georoute/geo"

// RefineTwoOpt improves tour with 2-opt edge swaps until no improving swap
// exists (or the defensive pass cap is reached). The refined tour visits
// the same coordinates; total distance never increases relative to the
// input, and a second invocation on a converged tour is a no-op.
//
// Contract:
//   - tour holds validated coordinates; the input slice is never mutated.
//   - Options.Eps < 0 is clamped to 0; Options.MaxPasses ≤ 0 falls back to
//     DefaultMaxPasses.
//   - n < 4 is returned unchanged (no non-adjacent edge pair exists).
func RefineTwoOpt(tour []geo.Coordinate, opts Options) []geo.Coordinate {
	n := len(tour)
	if n < 4 {
		return copyCoordinates(tour)
	}

	b := newDistBuffer(tour)
	idx := twoOptIndexTour(b, identityTour(n), opts)

	return materialize(tour, idx)
}

// twoOptIndexTour runs the 2-opt loop over an open index tour.
// The input slice is copied; the returned slice is freshly allocated.
func twoOptIndexTour(b *distBuffer, tour []int, opts Options) []int {
	var (
		n   = b.n
		cur = make([]int, n)
	)
	copy(cur, tour)

	// Policy knobs with defensive fallbacks (validateOptions has already
	// run on the Optimize path; direct RefineTwoOpt callers get clamps).
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	var (
		pass     int
		improved bool
		i, j     int     // candidate edge anchors: edges (i,i+1) and (j,j+1)
		a, bb    int     // endpoints of the first removed edge
		c, d     int     // endpoints of the second removed edge
		delta    float64 // new edges minus old edges; negative is better
	)
	for pass = 0; pass < maxPasses; pass++ {
		improved = false

		// Scan pairs with j ≥ i+2 so the removed edges never share a
		// vertex (adjacent edges make the reversal a no-op).
		for i = 0; i <= n-3; i++ {
			for j = i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					// Both edges touch t[0]; the "swap" is a full tour
					// reversal, which changes nothing. Skip.
					continue
				}

				a = cur[i]
				bb = cur[i+1]
				c = cur[j]
				d = cur[(j+1)%n] // j == n-1 wraps onto the closing edge

				delta = (b.at(a, c) + b.at(bb, d)) - (b.at(a, bb) + b.at(c, d))
				if delta < -eps {
					// Apply by reversing t[i+1..j] in place, then restart
					// the scan (first-improvement policy).
					reverseSegmentInPlace(cur, i+1, j)
					improved = true

					break
				}
			}
			if improved {
				break
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood.
			break
		}
	}

	return cur
}

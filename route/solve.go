// Package route - unified dispatcher for the tour solvers.
//
// Optimize is the canonical entry point: validate Options, resolve the
// Auto method by input size, run the requested pipeline, and report the
// tour with its total cycle distance and the terminal method executed.
//
// Design principles:
//   - Deterministic: no randomness anywhere; same input ⇒ same Result.
//   - Strict sentinels: only errors from types.go.
//   - Closed method set: a plain switch dispatches the three pipelines;
//     no interface hierarchy for what is a small, fixed set of algorithms.
//   - Stable cost: all returned distances are rounded to 1e−9.
package route

import "github.com/katalvlaran/georoute/geo"

// Optimize runs the requested (or automatically selected) optimization
// pipeline over points and returns the resulting tour, its total cycle
// distance in kilometers, and the terminal method actually executed.
//
// Method resolution:
//   - BruteForce, NearestNeighbor, TwoOpt run exactly as requested,
//     regardless of input size - an explicit BruteForce on a large n is
//     the caller's informed choice, never downgraded.
//   - Auto picks BruteForce when n ≤ Options.BruteForceMax (default 8)
//     and TwoOpt otherwise. The boundary is exact: n=8 → BruteForce,
//     n=9 → TwoOpt under the default threshold.
//   - TwoOpt means SolveNearestNeighbor followed by RefineTwoOpt.
//
// For n ≤ 1 every method short-circuits to the trivial tour (distance 0)
// without invoking any solver logic.
//
// Contract:
//   - points hold validated coordinates (see geo.Coordinate); the input
//     slice is never mutated and does not alias the Result.
//
// Errors: ErrInvalidOptions or ErrUnknownMethod from option validation;
// nothing else can fail.
//
// Complexity: per chosen pipeline - O((n−1)!) for BruteForce, O(n²) for
// NearestNeighbor, O(passes·n²) for TwoOpt.
func Optimize(points []geo.Coordinate, opts Options) (Result, error) {
	// Stage 1 - options sanity, then defaults for zero-valued knobs.
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	opts = normalizeOptions(opts)

	// Stage 2 - resolve Auto to a terminal method by input size.
	var (
		n      = len(points)
		method = opts.Method
	)
	if method == Auto {
		if n <= opts.BruteForceMax {
			method = BruteForce
		} else {
			method = TwoOpt
		}
	}

	// Stage 3 - trivial sizes short-circuit every pipeline.
	if n <= 1 {
		return Result{
			Tour:     copyCoordinates(points),
			Distance: 0,
			Method:   method,
		}, nil
	}

	// Stage 4 - run the terminal pipeline.
	var tour []geo.Coordinate
	switch method {
	case BruteForce:
		tour = SolveBruteForce(points)
	case NearestNeighbor:
		tour = SolveNearestNeighbor(points)
	case TwoOpt:
		tour = RefineTwoOpt(SolveNearestNeighbor(points), opts)
	default:
		// validateOptions admits only the four known methods and Auto was
		// resolved above; this arm is unreachable but keeps the switch total.
		return Result{}, ErrUnknownMethod
	}

	return Result{
		Tour:     tour,
		Distance: TotalDistance(tour),
		Method:   method,
	}, nil
}

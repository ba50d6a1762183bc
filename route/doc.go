// Package route computes approximately-shortest closed tours over sets of
// geographic coordinates using the great-circle metric from package geo.
//
// It includes three interchangeable tour strategies behind one dispatcher:
//
//   - SolveBruteForce — exhaustive search over all distinct cyclic tours.
//
//   - Complexity: O((n−1)!)
//
//   - Optimal; intended for small n (the Auto policy caps it at 8).
//
//   - SolveNearestNeighbor — greedy construction from the first input point.
//
//   - Complexity: O(n²)
//
//   - Deterministic; may be far from optimal on adversarial inputs.
//
//   - RefineTwoOpt — first-improvement 2-opt local search over any tour.
//
//   - Complexity: O(n²) per pass, pass count capped defensively.
//
//   - Never increases tour length; idempotent once converged.
//
// Optimize ties them together: it validates Options, resolves the Auto
// method by input size, runs the chosen pipeline (TwoOpt = nearest-neighbor
// construction followed by 2-opt refinement), and reports the tour, its
// total cycle distance in kilometers, and the terminal method executed.
//
// Tours are ordered coordinate sequences with an implicit closing edge from
// the last element back to the first. All entry points are pure with
// respect to their inputs: solvers reorder copies, never the caller's
// slices. Everything is deterministic; there is no randomness and no
// time-based behavior.
package route

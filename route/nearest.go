// Package route - greedy nearest-neighbor construction.
//
// SolveNearestNeighbor builds a tour by starting at the first input point
// and repeatedly extending to the closest unvisited point. The starting
// anchor is deterministic (input order, not randomized), and ties resolve
// to the earliest input index because the scan is ascending with a strict
// comparison. Fast but myopic: the result is a construction heuristic, not
// an optimum - feed it to RefineTwoOpt when quality matters.
//
// Complexity: O(n²) time, O(n) auxiliary space (visited markers).
package route

import "github.com/katalvlaran/georoute/geo"

// SolveNearestNeighbor returns a greedily constructed tour over points.
//
// Contract:
//   - points hold validated coordinates; the input slice is never mutated.
//   - n=0 yields an empty tour; no failure conditions for n ≥ 1.
func SolveNearestNeighbor(points []geo.Coordinate) []geo.Coordinate {
	n := len(points)
	if n <= 1 {
		return copyCoordinates(points)
	}

	b := newDistBuffer(points)

	return materialize(points, nearestNeighborTour(b))
}

// nearestNeighborTour runs the greedy construction over the index space.
// Returns an open index tour of length n starting at index 0.
func nearestNeighborTour(b *distBuffer) []int {
	var (
		n       = b.n
		visited = make([]bool, n)
		tour    = make([]int, 1, n)
		current = 0 // deterministic starting anchor: first input point
	)
	tour[0] = current
	visited[current] = true

	var (
		step, j  int
		bestIdx  int
		bestDist float64
		d        float64
	)
	for step = 1; step < n; step++ {
		bestIdx = -1

		// Ascending scan + strict < ⇒ earliest-index tie-break.
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = b.at(current, j)
			if bestIdx == -1 || d < bestDist {
				bestIdx = j
				bestDist = d
			}
		}

		visited[bestIdx] = true
		tour = append(tour, bestIdx)
		current = bestIdx
	}

	return tour
}

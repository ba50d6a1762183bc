package route

import "github.com/katalvlaran/georoute/geo"

// distBuffer caches all pairwise great-circle distances of an input set in
// a dense 1D slice linearized as w[u*n+v]. Solvers hit distances in tight
// O(n²)..O(n!) loops; precomputing once removes repeated trigonometry from
// the hot paths and keeps per-lookup cost at a single slice read.
//
// The buffer is symmetric with a zero diagonal by construction (Haversine
// is a metric), so only the upper triangle is computed and mirrored.
type distBuffer struct {
	n int
	w []float64
}

// newDistBuffer computes the pairwise distance buffer for points.
//
// Complexity: O(n²) time, O(n²) space.
func newDistBuffer(points []geo.Coordinate) *distBuffer {
	n := len(points)
	b := &distBuffer{n: n, w: make([]float64, n*n)}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geo.Distance(points[i], points[j])
			b.w[i*n+j] = d
			b.w[j*n+i] = d
		}
	}

	return b
}

// at returns the cached distance between vertex indices u and v.
// Callers guarantee 0 ≤ u,v < n; this is a hot-path accessor with no checks.
//
// Complexity: O(1).
func (b *distBuffer) at(u, v int) float64 {
	return b.w[u*b.n+v]
}

// tourCost sums the cycle cost of an open index tour (length n, closing
// edge tour[n-1]→tour[0] implicit) over the buffer. Returns 0 for n ≤ 1.
//
// Complexity: O(n).
func (b *distBuffer) tourCost(tour []int) float64 {
	n := len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += b.at(tour[i], tour[i+1])
	}
	sum += b.at(tour[n-1], tour[0]) // closing edge

	return sum
}

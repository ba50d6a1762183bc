// Package route_test exercises the exhaustive solver.
// Focus: optimality against an independent enumeration oracle, anchoring,
// determinism, and the documented edge cases.
package route_test

import (
	"testing"

	"github.com/katalvlaran/georoute/geo"
	"github.com/katalvlaran/georoute/route"
)

func TestSolveBruteForce_EdgeCases(t *testing.T) {
	// n=0 → empty tour.
	if tour := route.SolveBruteForce(nil); len(tour) != 0 {
		t.Fatalf("n=0: got %v, want empty", tour)
	}

	// n=1 → that single point, distance 0.
	one := route.SolveBruteForce([]geo.Coordinate{nyc})
	if len(one) != 1 || one[0] != nyc {
		t.Fatalf("n=1: got %v", one)
	}
	if d := route.TotalDistance(one); d != 0 {
		t.Fatalf("n=1 distance: got %v, want 0", d)
	}

	// n=2 → either ordering; cost is the out-and-back trip.
	two := route.SolveBruteForce([]geo.Coordinate{nyc, philly})
	if len(two) != 2 {
		t.Fatalf("n=2: got %d points", len(two))
	}
	mustFloatClose(t, route.TotalDistance(two), 2*geo.Distance(nyc, philly), distTol)
}

func TestSolveBruteForce_TriangleMatchesPairwiseSum(t *testing.T) {
	// Only one distinct cyclic tour exists for n=3; any starting rotation
	// must yield the perimeter sum.
	want := geo.Distance(nyc, philly) + geo.Distance(philly, chi) + geo.Distance(chi, nyc)

	rotations := [][]geo.Coordinate{
		{nyc, philly, chi},
		{philly, chi, nyc},
		{chi, nyc, philly},
	}

	var i int
	for i = 0; i < len(rotations); i++ {
		tour := route.SolveBruteForce(rotations[i])
		mustFloatClose(t, route.TotalDistance(tour), want, distTol)
	}
}

func TestSolveBruteForce_OptimalOnTinyFixtures(t *testing.T) {
	fixtures := [][]geo.Coordinate{
		{nyc, philly, chi},
		unitSquare(),
		usCities[:5],
	}

	var i int
	for i = 0; i < len(fixtures); i++ {
		var (
			tour = route.SolveBruteForce(fixtures[i])
			got  = route.TotalDistance(tour)
			want = minTourByEnumeration(t, fixtures[i])
		)
		mustFloatClose(t, got, want, distTol)
	}
}

func TestSolveBruteForce_AnchorsFirstPoint(t *testing.T) {
	// Fixing the first point removes rotational redundancy; the returned
	// tour must still start where the input starts.
	tour := route.SolveBruteForce(usCities[:6])
	if tour[0] != usCities[0] {
		t.Fatalf("anchor lost: tour starts at %+v, want %+v", tour[0], usCities[0])
	}
}

func TestSolveBruteForce_Deterministic(t *testing.T) {
	var first []geo.Coordinate

	Repeat(t, 3, func(t *testing.T) {
		tour := route.SolveBruteForce(usCities[:6])
		if first == nil {
			first = tour

			return
		}
		if !coordsEqual(tour, first) {
			t.Fatalf("nondeterministic result:\nfirst: %v\n this: %v", first, tour)
		}
	})
}

func TestSolveBruteForce_DoesNotMutateInput(t *testing.T) {
	in := []geo.Coordinate{chi, nyc, philly}
	snapshot := append([]geo.Coordinate(nil), in...)

	_ = route.SolveBruteForce(in)

	if !coordsEqual(in, snapshot) {
		t.Fatalf("input mutated: %v, want %v", in, snapshot)
	}
}

package route

import (
	"errors"

	"github.com/katalvlaran/georoute/geo"
)

// ErrUnknownMethod is returned when a Method value (or its wire name) does
// not identify one of the supported optimization methods.
var ErrUnknownMethod = errors.New("route: unknown optimization method")

// ErrInvalidOptions is returned when Options carry values outside their
// documented domains (negative tolerance, negative caps).
var ErrInvalidOptions = errors.New("route: invalid options")

// Default policy knobs. Exposed so callers can reason about (and tests can
// pin) the zero-configuration behavior.
const (
	// DefaultBruteForceMax is the largest input size the Auto policy routes
	// to exhaustive search. Beyond it, factorial cost stops being "a few
	// seconds" territory and Auto switches to the 2-opt pipeline.
	DefaultBruteForceMax = 8

	// DefaultEps is the minimum improvement a 2-opt move must deliver to be
	// accepted (acceptance rule: delta < -Eps). Strict enough to count any
	// real improvement, wide enough to ignore FP noise.
	DefaultEps = 1e-12

	// DefaultMaxPasses caps the number of 2-opt improvement passes. Purely
	// defensive: convergence is expected long before the cap, and hitting
	// it returns the best tour found so far rather than an error.
	DefaultMaxPasses = 1000
)

// Method identifies an optimization strategy.
//
// Auto is a meta-selector resolved by input size inside Optimize; it never
// appears as the terminal method of a Result.
type Method int

const (
	// Auto picks BruteForce for small inputs and TwoOpt otherwise.
	Auto Method = iota

	// BruteForce enumerates every distinct cyclic tour and keeps the best.
	BruteForce

	// NearestNeighbor builds a tour greedily from the first input point.
	NearestNeighbor

	// TwoOpt runs NearestNeighbor construction followed by 2-opt refinement.
	TwoOpt
)

// methodNames maps Method values to their wire names, shared by String and
// ParseMethod so the two can never drift apart.
var methodNames = map[Method]string{
	Auto:            "auto",
	BruteForce:      "brute_force",
	NearestNeighbor: "nearest_neighbor",
	TwoOpt:          "2opt",
}

// String returns the wire name of the method: "auto", "brute_force",
// "nearest_neighbor" or "2opt". Unknown values render as "unknown".
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return "unknown"
}

// ParseMethod resolves a wire name back into a Method.
// Returns ErrUnknownMethod for anything outside the four canonical names.
//
// Complexity: O(1).
func ParseMethod(s string) (Method, error) {
	var (
		m    Method
		name string
	)
	for m, name = range methodNames {
		if s == name {
			return m, nil
		}
	}

	return Auto, ErrUnknownMethod
}

// Options configures Optimize and RefineTwoOpt.
//
// Fields:
//   - Method        — requested strategy; Auto resolves by input size.
//   - BruteForceMax — Auto threshold for exhaustive search; 0 ⇒ DefaultBruteForceMax.
//   - Eps           — 2-opt acceptance tolerance (delta < -Eps); must be ≥ 0.
//   - MaxPasses     — defensive cap on 2-opt passes; 0 ⇒ DefaultMaxPasses.
//
// The zero value is usable: it behaves like DefaultOptions() with Eps = 0,
// which degenerates the acceptance rule to a plain "delta < 0".
type Options struct {
	Method        Method
	BruteForceMax int
	Eps           float64
	MaxPasses     int
}

// DefaultOptions returns the canonical configuration: Auto method selection
// with the documented default threshold, tolerance and pass cap.
func DefaultOptions() Options {
	return Options{
		Method:        Auto,
		BruteForceMax: DefaultBruteForceMax,
		Eps:           DefaultEps,
		MaxPasses:     DefaultMaxPasses,
	}
}

// Result holds the outcome of an optimization run.
type Result struct {
	// Tour is the optimized visiting order over the input coordinates.
	// The closing edge back to Tour[0] is implicit.
	Tour []geo.Coordinate

	// Distance is the total cycle length in kilometers, including the
	// closing edge, stabilized to 1e-9.
	Distance float64

	// Method is the terminal method actually executed; never Auto.
	Method Method
}

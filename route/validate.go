package route

// validateOptions checks internal consistency of Options without touching
// any coordinates. Only sentinel errors from types.go are returned.
//
// Rules:
//   - Eps must be ≥ 0 (a negative tolerance would invert the 2-opt
//     acceptance rule and "accept" worsening moves).
//   - MaxPasses and BruteForceMax must be ≥ 0 (0 means "use the default").
//   - Method must be one of the four known variants.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Eps < 0 {
		return ErrInvalidOptions
	}
	if opts.MaxPasses < 0 {
		return ErrInvalidOptions
	}
	if opts.BruteForceMax < 0 {
		return ErrInvalidOptions
	}

	switch opts.Method {
	case Auto, BruteForce, NearestNeighbor, TwoOpt:
		// ok
	default:
		return ErrUnknownMethod
	}

	return nil
}

// normalizeOptions resolves zero-valued knobs to their documented defaults.
// Eps is left as-is: zero is a legal tolerance (plain "delta < 0").
//
// Complexity: O(1).
func normalizeOptions(opts Options) Options {
	if opts.BruteForceMax == 0 {
		opts.BruteForceMax = DefaultBruteForceMax
	}
	if opts.MaxPasses == 0 {
		opts.MaxPasses = DefaultMaxPasses
	}

	return opts
}

package advanced

// Faces with less area than this are numerical slivers from nearly
// degenerate intersections.
const MinArea = 1e-8

type Options struct {
	// Bounded faces with smaller area are dropped from the result
	MinArea float64
	// Tolerance on the sign of direction components and cross products when
	// ordering edges around a vertex. Zero gives exact comparisons.
	AngleTolerance float64
	// Relative tolerance used by Validate when checking that edge endpoints lie
	// on their line
	OnLineTolerance float64
}

func DefaultOptions() Options {
	return Options{
		MinArea:         MinArea,
		AngleTolerance:  0,
		OnLineTolerance: 1e-9,
	}
}

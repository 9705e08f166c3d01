package advanced

import "sort"

// Ordering of directions around a vertex, without trigonometry. The upper half
// plane (strictly above, or horizontal pointing right) comes first, then the
// lower half. Within a half, a comes first if b is clockwise from it. The
// result is a clockwise cyclic order: angles descending from just under 180°
// down to 0°, then from just under 360° down to 180°.
//
// Returns -1 if a sorts before b, 1 if after, 0 if they point the same way.
func CompareDirections(a, b Vec, epsilon float64) int {
	aUpper := isUpper(a, epsilon)
	bUpper := isUpper(b, epsilon)
	if aUpper != bUpper {
		if aUpper {
			return -1
		}
		return 1
	}
	return Sign(a.Cross(b), epsilon)
}

func isUpper(v Vec, epsilon float64) bool {
	switch Sign(v.Y, epsilon) {
	case 1:
		return true
	case 0:
		return v.X > 0
	}
	return false
}

// Sort the incoming edges at every vertex by the direction back toward their
// origin, and link each one to the outgoing edge that follows it clockwise.
// Arriving at a vertex, the boundary of the face on the left continues along
// the next edge clockwise from the one we came in on, so bounded faces are
// traced counterclockwise.
//
// A vertex with a single incoming edge links it to its own twin, so dangling
// edges are walked there and back. Every edge ends up with exactly one Next and
// one Prev.
func (a *Arrangement) linkRotations() {
	epsilon := a.options.AngleTolerance
	for _, vertex := range a.Vertices {
		incoming := vertex.Incoming
		sort.SliceStable(incoming, func(i, j int) bool {
			return CompareDirections(a.backDirection(incoming[i]), a.backDirection(incoming[j]), epsilon) < 0
		})

		for i, e := range incoming {
			following := a.Edges[incoming[CircularIndex(i+1, len(incoming))]].Twin
			a.Edges[e].Next = following
			a.Edges[following].Prev = e
		}
	}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

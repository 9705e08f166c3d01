package advanced

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// This contains no actual tests, just helpers for building arrangements from
// literal coordinates and checking them.

func linesFrom(coords ...[4]int64) []Line {
	lines := make([]Line, 0, len(coords))
	for _, c := range coords {
		lines = append(lines, NewLine(IntPoint{c[0], c[1]}, IntPoint{c[2], c[3]}))
	}
	return lines
}

func buildFrom(coords ...[4]int64) *Arrangement {
	return Build(linesFrom(coords...), DefaultOptions())
}

// Lines tangent to y = x² at t = 0..n-1. No two are parallel and no three are
// concurrent, since a point outside a parabola has exactly two tangents.
func parabolaTangents(n int) [][4]int64 {
	coords := make([][4]int64, 0, n)
	for i := 0; i < n; i++ {
		t := int64(i)
		coords = append(coords, [4]int64{0, -t * t, 1, 2*t - t*t})
	}
	return coords
}

func requireValid(t *testing.T, a *Arrangement) {
	t.Helper()
	require.NoError(t, a.Validate(), "arrangement:\n%s", spew.Sdump(a.Vertices, a.Edges))
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

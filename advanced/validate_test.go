package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	build := func() *Arrangement {
		return buildFrom(
			[4]int64{0, 0, 4, 0},
			[4]int64{0, 0, 0, 4},
			[4]int64{4, 0, 0, 4},
		)
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, build().Validate())
	})

	t.Run("broken twin", func(t *testing.T) {
		a := build()
		a.Edges[0].Twin = 2
		assert.Error(t, a.Validate())
	})

	t.Run("unlinked", func(t *testing.T) {
		a := build()
		a.Edges[3].Next = NoEdge
		assert.EqualError(t, a.Validate(), "edge 3 is not linked")
	})

	t.Run("next does not continue from destination", func(t *testing.T) {
		a := build()
		// Swap the next links of two edges ending at different vertices
		e, f := EdgeIndex(0), EdgeIndex(1)
		a.Edges[e].Next, a.Edges[f].Next = a.Edges[f].Next, a.Edges[e].Next
		assert.Error(t, a.Validate())
	})

	t.Run("vertex off its line", func(t *testing.T) {
		a := build()
		a.Vertices[0].Point.Y += 0.5
		assert.Error(t, a.Validate())
	})
}

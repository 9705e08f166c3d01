package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLine(t *testing.T) {
	l := NewLine(IntPoint{4, 0}, IntPoint{0, 4})
	assert.Equal(t, int64(-4), l.A)
	assert.Equal(t, int64(-4), l.B)
	assert.Equal(t, int64(16), l.C)
	assert.Equal(t, 0.0, l.Eval(Point{4, 0}))
	assert.Equal(t, 0.0, l.Eval(Point{0, 4}))
	assert.Equal(t, 0.0, l.Eval(Point{2, 2}))
}

func TestLineParallelAndEqual(t *testing.T) {
	base := NewLine(IntPoint{0, 0}, IntPoint{2, 1})

	cases := []struct {
		name     string
		other    Line
		parallel bool
		equal    bool
	}{
		{"same points", NewLine(IntPoint{0, 0}, IntPoint{2, 1}), true, true},
		{"reversed", NewLine(IntPoint{2, 1}, IntPoint{0, 0}), true, true},
		{"other points on the same line", NewLine(IntPoint{-4, -2}, IntPoint{10, 5}), true, true},
		{"shifted", NewLine(IntPoint{0, 1}, IntPoint{2, 2}), true, false},
		{"crossing", NewLine(IntPoint{0, 0}, IntPoint{1, 2}), false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.parallel, base.IsParallel(c.other))
			assert.Equal(t, c.parallel, c.other.IsParallel(base))
			assert.Equal(t, c.equal, base.Equal(c.other))
			assert.Equal(t, c.equal, c.other.Equal(base))
		})
	}
}

func TestLineParallelAndEqual_LargeCoefficients(t *testing.T) {
	t.Run("products beyond int64", func(t *testing.T) {
		a := Line{A: 1 << 32, B: 1}
		b := Line{A: 0, B: 1 << 32}
		assert.False(t, a.IsParallel(b))
		assert.False(t, a.Equal(b))
	})

	t.Run("distinct parallels at the coordinate bound", func(t *testing.T) {
		a := NewLine(IntPoint{0, MaxCoordinate}, IntPoint{MaxCoordinate, 0})
		b := NewLine(IntPoint{0, MaxCoordinate - 16}, IntPoint{MaxCoordinate, -16})
		assert.True(t, a.IsParallel(b))
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	t.Run("same line at the coordinate bound", func(t *testing.T) {
		a := NewLine(IntPoint{-MaxCoordinate, -MaxCoordinate}, IntPoint{MaxCoordinate, MaxCoordinate})
		b := NewLine(IntPoint{1, 1}, IntPoint{2, 2})
		assert.True(t, a.Equal(b))
	})
}

func TestNewLine_CoordinateRange(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLine(IntPoint{-MaxCoordinate, MaxCoordinate}, IntPoint{MaxCoordinate, -MaxCoordinate})
	})
	for _, p := range []IntPoint{
		{MaxCoordinate + 1, 0},
		{0, -MaxCoordinate - 1},
		{1 << 32, 0},
	} {
		assert.Panics(t, func() { NewLine(IntPoint{0, 0}, p) }, "%v", p)
	}
}

func TestIntersection(t *testing.T) {
	t.Run("axes", func(t *testing.T) {
		x := NewLine(IntPoint{0, 0}, IntPoint{4, 0})
		y := NewLine(IntPoint{0, 0}, IntPoint{0, 4})
		assert.Equal(t, Point{0, 0}, x.Intersection(y))
	})

	t.Run("rational point", func(t *testing.T) {
		a := NewLine(IntPoint{0, 0}, IntPoint{3, 1})
		b := NewLine(IntPoint{0, 1}, IntPoint{1, 0})
		// x/3 = 1 - x  =>  x = 3/4, y = 1/4
		assert.Equal(t, Point{0.75, 0.25}, a.Intersection(b))
	})

	t.Run("independent of pair order", func(t *testing.T) {
		a := NewLine(IntPoint{-7, 3}, IntPoint{11, 5})
		b := NewLine(IntPoint{2, -9}, IntPoint{-3, 13})
		assert.Equal(t, a.Intersection(b), b.Intersection(a))
	})

	t.Run("concurrent lines give identical points", func(t *testing.T) {
		// Three lines through (1/3, 1/7), which has no exact float representation
		a := Line{A: 21, B: -49, C: 0}
		b := Line{A: 3, B: 0, C: -1}
		c := Line{A: 0, B: 7, C: -1}
		ab := a.Intersection(b)
		assert.Equal(t, ab, a.Intersection(c))
		assert.Equal(t, ab, b.Intersection(c))
		assert.Equal(t, 1.0/3, ab.X)
		assert.Equal(t, 1.0/7, ab.Y)
	})

	t.Run("no overflow on large coordinates", func(t *testing.T) {
		const m = 1000000
		a := NewLine(IntPoint{-m, -m}, IntPoint{m, m - 1})
		b := NewLine(IntPoint{-m, m}, IntPoint{m, -m + 1})
		p := a.Intersection(b)
		assert.InDelta(t, 0, a.Eval(p), 1e-3)
		assert.InDelta(t, 0, b.Eval(p), 1e-3)
	})

	t.Run("parallel lines panic", func(t *testing.T) {
		a := NewLine(IntPoint{0, 0}, IntPoint{1, 0})
		b := NewLine(IntPoint{0, 1}, IntPoint{1, 1})
		assert.Panics(t, func() { a.Intersection(b) })
	})
}

func TestContains(t *testing.T) {
	l := NewLine(IntPoint{0, 0}, IntPoint{4, 4})
	assert.True(t, l.Contains(Point{2, 2}, 1e-10))
	assert.True(t, l.Contains(Point{2, 2 + 1e-12}, 1e-10))
	assert.False(t, l.Contains(Point{2, 2.001}, 1e-10))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, Sign(0.5, 0))
	assert.Equal(t, -1, Sign(-0.5, 0))
	assert.Equal(t, 0, Sign(0, 0))
	assert.Equal(t, 0, Sign(math.Copysign(0, -1), 0))
	assert.Equal(t, 0, Sign(1e-12, 1e-9))
	assert.Equal(t, 0, Sign(-1e-12, 1e-9))
	assert.Equal(t, 1, Sign(1e-6, 1e-9))
}

func TestPointLess(t *testing.T) {
	assert.True(t, Point{0, 5}.Less(Point{1, 0}))
	assert.True(t, Point{1, 0}.Less(Point{1, 1}))
	assert.False(t, Point{1, 1}.Less(Point{1, 1}))
	assert.False(t, Point{2, 0}.Less(Point{1, 9}))
}

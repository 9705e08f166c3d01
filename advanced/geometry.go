package advanced

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Lines are kept in implicit form A*x + B*y + C = 0 with integer
// coefficients, alongside the two points that defined them.
type Line struct {
	S, E    IntPoint
	A, B, C int64
}

// Input coordinates are bounded so that the line coefficients fit in int64:
// |A|, |B| <= 2^31 and |C| <= 2^62.
const MaxCoordinate = 1 << 30

func NewLine(s, e IntPoint) Line {
	if s == e {
		throw(errors.Wrapf(ErrDegenerateLine, "both points are %v", s))
	}
	for _, v := range []int64{s.X, s.Y, e.X, e.Y} {
		if v > MaxCoordinate || v < -MaxCoordinate {
			throw(errors.Wrapf(ErrCoordinateRange, "coordinate %d", v))
		}
	}
	a := s.Y - e.Y
	b := e.X - s.X
	return Line{
		S: s,
		E: e,
		A: a,
		B: b,
		C: -a*s.X - b*s.Y,
	}
}

// Products of coefficients can exceed int64, so both predicates are exact.
func (l Line) IsParallel(other Line) bool {
	return cross64(l.A, other.B, l.B, other.A).Sign() == 0
}

// Two lines are equal if they are parallel and coincident, regardless of the
// points that defined them.
func (l Line) Equal(other Line) bool {
	return l.IsParallel(other) &&
		cross64(l.C, other.A, other.C, l.A).Sign() == 0 &&
		cross64(l.C, other.B, other.C, l.B).Sign() == 0
}

// Intersection point of two non-parallel lines, by Cramer's rule. The
// determinants are computed exactly, and each coordinate is the nearest float64
// to the exact rational. This matters for deduplication: three lines through
// the same point always produce bit-identical coordinates, whichever pair is
// intersected.
func (l Line) Intersection(other Line) Point {
	det := cross64(l.A, other.B, other.A, l.B)
	if det.Sign() == 0 {
		fatalf("intersection of parallel lines %v and %v", l, other)
	}
	x, _ := new(big.Rat).SetFrac(cross64(l.B, other.C, other.B, l.C), det).Float64()
	y, _ := new(big.Rat).SetFrac(cross64(other.A, l.C, l.A, other.C), det).Float64()
	return Point{x, y}
}

// Residual of the implicit equation at p.
func (l Line) Eval(p Point) float64 {
	return float64(l.A)*p.X + float64(l.B)*p.Y + float64(l.C)
}

func (l Line) Contains(p Point, epsilon float64) bool {
	return math.Abs(l.Eval(p)) < epsilon
}

// Magnitude of the terms summed by Eval, for turning an absolute tolerance into
// a relative one.
func (l Line) evalScale(p Point) float64 {
	return math.Max(1, math.Abs(float64(l.A)*p.X)+math.Abs(float64(l.B)*p.Y)+math.Abs(float64(l.C)))
}

// a*b - c*d without overflow
func cross64(a, b, c, d int64) *big.Int {
	ab := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	cd := new(big.Int).Mul(big.NewInt(c), big.NewInt(d))
	return ab.Sub(ab, cd)
}

// Lexicographic order, x then y. This is the order of the vertex table, and
// the order vertices are visited along each line.
func (p Point) Less(other Point) bool {
	return p.X < other.X || (p.X == other.X && p.Y < other.Y)
}

func (p Point) Sub(other Point) Vec {
	return Vec{p.X - other.X, p.Y - other.Y}
}

func (v Vec) Cross(other Vec) float64 {
	return v.X*other.Y - other.X*v.Y
}

// Sign of x, treating anything within epsilon of zero as zero.
func Sign(x, epsilon float64) int {
	if x > epsilon {
		return 1
	}
	if x < -epsilon {
		return -1
	}
	return 0
}

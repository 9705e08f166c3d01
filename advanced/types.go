package advanced

// Input points are integral. Arrangement vertices are derived from them by
// intersection, so they live in float64.
type IntPoint struct {
	X int64
	Y int64
}

type Point struct {
	X float64
	Y float64
}

// A direction vector, always relative to some vertex.
type Vec struct {
	X float64
	Y float64
}

// The half-edge structure is cyclic (twin, next and prev all point back into
// cycles), so everything lives in flat tables owned by the Arrangement and
// references are indices into those tables.
type VertexIndex int
type EdgeIndex int

// Sentinel for a next/prev/twin link that has not been filled in.
const NoEdge = EdgeIndex(-1)

type Vertex struct {
	Point Point
	// Indices of the (non-duplicate) lines passing through this vertex
	Lines []int
	// Half-edges whose destination is this vertex. This is the list that the
	// rotation linker sorts.
	Incoming []EdgeIndex
}

type HalfEdge struct {
	Origin VertexIndex
	Dest   VertexIndex
	// Index of the line this edge lies on
	Line int
	Twin EdgeIndex
	Next EdgeIndex
	Prev EdgeIndex
}

type Arrangement struct {
	Lines    []Line
	Vertices []Vertex
	Edges    []HalfEdge
	// Indices of input lines skipped because an earlier line is identical
	Duplicates []int

	options Options
}

// A face is a maximal cycle of half-edges found by following Next.
type Face struct {
	Edges    []EdgeIndex
	Vertices []VertexIndex
	// Shoelace area. Positive for counterclockwise (bounded) faces.
	SignedArea float64
	// False if the walk hit an edge with no Next link before coming back around
	Closed bool
}

func (f *Face) IsBounded() bool {
	return f.Closed && f.SignedArea > 0
}

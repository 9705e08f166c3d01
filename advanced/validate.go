package advanced

import "github.com/pkg/errors"

// Check the structural invariants of the half-edge tables. This is used by
// tests and by the CLI's --check flag; Build itself never produces an invalid
// arrangement from valid lines.
func (a *Arrangement) Validate() error {
	for i, edge := range a.Edges {
		e := EdgeIndex(i)
		if edge.Origin == edge.Dest {
			return errors.Errorf("edge %d is a loop at vertex %d", e, edge.Origin)
		}
		if edge.Twin == NoEdge || a.Edges[edge.Twin].Twin != e {
			return errors.Errorf("edge %d: twin of twin is not the edge", e)
		}
		twin := a.Edges[edge.Twin]
		if twin.Origin != edge.Dest || twin.Dest != edge.Origin {
			return errors.Errorf("edge %d: twin %d does not swap endpoints", e, edge.Twin)
		}
		if edge.Next == NoEdge || edge.Prev == NoEdge {
			return errors.Errorf("edge %d is not linked", e)
		}
		if a.Edges[edge.Next].Prev != e {
			return errors.Errorf("edge %d: prev of next is not the edge", e)
		}
		if a.Edges[edge.Next].Origin != edge.Dest {
			return errors.Errorf("edge %d: next edge %d does not start at vertex %d", e, edge.Next, edge.Dest)
		}

		line := a.Lines[edge.Line]
		for _, v := range []VertexIndex{edge.Origin, edge.Dest} {
			p := a.Vertices[v].Point
			if !line.Contains(p, a.options.OnLineTolerance*line.evalScale(p)) {
				return errors.Errorf("edge %d: vertex %d at %v is not on line %d", e, v, p, edge.Line)
			}
		}
	}

	seen := 0
	for _, face := range a.Faces() {
		if !face.Closed {
			return errors.Errorf("cycle starting at edge %d does not close", face.Edges[0])
		}
		seen += len(face.Edges)
	}
	if seen != len(a.Edges) {
		return errors.Errorf("faces cover %d of %d edges", seen, len(a.Edges))
	}
	return nil
}

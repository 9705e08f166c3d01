package advanced

// Build the full arrangement of a set of lines: vertices, twinned half-edges,
// and the rotation system linking them into face cycles.
//
// Identical lines after the first are skipped entirely. Lines that end up with
// fewer than two vertices contribute no edges.
func Build(lines []Line, options Options) *Arrangement {
	a := &Arrangement{options: options}
	for i, line := range lines {
		duplicate := false
		for _, kept := range a.Lines {
			if line.Equal(kept) {
				duplicate = true
				break
			}
		}
		if duplicate {
			a.Duplicates = append(a.Duplicates, i)
			continue
		}
		a.Lines = append(a.Lines, line)
	}

	a.buildVertices()
	a.buildHalfEdges()
	a.linkRotations()
	return a
}

// Areas of the bounded faces, filtered and sorted ascending.
func (a *Arrangement) Areas() []float64 {
	return FilterAreas(a.Faces(), a.options.MinArea)
}

func (a *Arrangement) Options() Options {
	return a.options
}

// The edge's direction seen from its destination, pointing back toward its
// origin.
func (a *Arrangement) backDirection(e EdgeIndex) Vec {
	edge := a.Edges[e]
	return a.Vertices[edge.Origin].Point.Sub(a.Vertices[edge.Dest].Point)
}

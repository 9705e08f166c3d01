package advanced

// Split every line at its vertices and emit a twinned pair of half-edges for
// each gap between consecutive vertices. Each half-edge is registered at its
// destination vertex, ready for the rotation linker.
func (a *Arrangement) buildHalfEdges() {
	// The vertex table is already sorted lexicographically, so walking it in
	// order visits the vertices of each line in order along the line.
	onLine := make([][]VertexIndex, len(a.Lines))
	for i, vertex := range a.Vertices {
		for _, line := range vertex.Lines {
			onLine[line] = append(onLine[line], VertexIndex(i))
		}
	}

	for line, vertices := range onLine {
		for i := 0; i+1 < len(vertices); i++ {
			a.addEdgePair(line, vertices[i], vertices[i+1])
		}
	}
}

func (a *Arrangement) addEdgePair(line int, p, q VertexIndex) {
	forward := EdgeIndex(len(a.Edges))
	backward := forward + 1
	a.Edges = append(a.Edges,
		HalfEdge{Origin: p, Dest: q, Line: line, Twin: backward, Next: NoEdge, Prev: NoEdge},
		HalfEdge{Origin: q, Dest: p, Line: line, Twin: forward, Next: NoEdge, Prev: NoEdge},
	)
	a.Vertices[q].Incoming = append(a.Vertices[q].Incoming, forward)
	a.Vertices[p].Incoming = append(a.Vertices[p].Incoming, backward)
}

package advanced

// Walk every Next cycle exactly once, in edge index order, recording the
// vertices visited and the signed shoelace area of each.
func (a *Arrangement) Faces() []Face {
	visited := make([]bool, len(a.Edges))
	var faces []Face
	for start := range a.Edges {
		if visited[start] {
			continue
		}
		faces = append(faces, a.walkFace(EdgeIndex(start), visited))
	}
	return faces
}

func (a *Arrangement) walkFace(start EdgeIndex, visited []bool) Face {
	var face Face
	var sum float64
	current := start
	for {
		visited[current] = true
		edge := a.Edges[current]
		face.Edges = append(face.Edges, current)
		face.Vertices = append(face.Vertices, edge.Origin)

		s := a.Vertices[edge.Origin].Point
		e := a.Vertices[edge.Dest].Point
		sum += s.X*e.Y - e.X*s.Y

		// Dead end. Not a face.
		if edge.Next == NoEdge {
			break
		}
		if edge.Next == start {
			face.Closed = true
			break
		}
		// Walked into a cycle that doesn't contain the start. Only possible if
		// the links are broken.
		if visited[edge.Next] {
			break
		}
		current = edge.Next
	}
	face.SignedArea = sum / 2
	return face
}

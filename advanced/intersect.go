package advanced

import "sort"

// Compute every pairwise intersection of the lines, deduplicated by exact
// coordinate, and store them as the vertex table in lexicographic order. Each
// vertex remembers which lines produced it.
func (a *Arrangement) buildVertices() {
	linesAt := make(map[Point][]int)
	for i := range a.Lines {
		for j := i + 1; j < len(a.Lines); j++ {
			// Duplicates were removed in Build, so parallel here means disjoint
			if a.Lines[i].IsParallel(a.Lines[j]) {
				continue
			}
			p := a.Lines[i].Intersection(a.Lines[j])
			linesAt[p] = appendLine(linesAt[p], i)
			linesAt[p] = appendLine(linesAt[p], j)
		}
	}

	points := make([]Point, 0, len(linesAt))
	for p := range linesAt {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})

	a.Vertices = make([]Vertex, len(points))
	for i, p := range points {
		lines := linesAt[p]
		sort.Ints(lines)
		a.Vertices[i] = Vertex{Point: p, Lines: lines}
	}
}

// Add a line index to a vertex's set of lines, if it isn't already there
func appendLine(lines []int, line int) []int {
	for _, l := range lines {
		if l == line {
			return lines
		}
	}
	return append(lines, line)
}

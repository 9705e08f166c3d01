package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/arrangement/dbg"
)

func (e EdgeIndex) DbgName() string {
	if e == NoEdge {
		return "Ø"
	}
	return dbg.Name(e)
}

func (a *Arrangement) EdgeString(e EdgeIndex) string {
	edge := a.Edges[e]
	return fmt.Sprintf("Edge %s %v -> %v <twin: %s, next: %s, prev: %s>",
		e.DbgName(),
		a.Vertices[edge.Origin].Point,
		a.Vertices[edge.Dest].Point,
		edge.Twin.DbgName(),
		edge.Next.DbgName(),
		edge.Prev.DbgName(),
	)
}

// Faces are named after their first edge, which is also the edge the
// extractor started walking from.
func (f *Face) Name() string {
	if len(f.Edges) == 0 {
		return "Ø"
	}
	return f.Edges[0].DbgName()
}

func (f *Face) DbgName() string {
	name := f.Name()
	if !f.IsBounded() { // Outer boundary, dead end, or a dangling edge walked both ways
		name = aurora.Cyan(name).String()
	} else if f.SignedArea < MinArea { // Sliver
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

func (f *Face) String() string {
	parts := make([]string, 0, len(f.Edges))
	for _, e := range f.Edges {
		parts = append(parts, e.DbgName())
	}
	return fmt.Sprintf("Face %s area %g [%s]", f.DbgName(), f.SignedArea, strings.Join(parts, ", "))
}

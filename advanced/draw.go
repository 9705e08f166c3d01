package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the arrangement so that edges on the boundary are visible
const drawPadding = 40

// Render the arrangement to a PNG file. Bounded faces are filled, every edge
// is stroked, and each bounded face is labelled with its debug name.
func (a *Arrangement) DrawPNG(path string, scale float64) error {
	c := a.NewContext(scale)
	a.Draw(c)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving arrangement drawing to %s", path)
	}
	return nil
}

// Render the arrangement and print it inline in the terminal (iTerm only).
func (a *Arrangement) Preview(path string, scale float64) error {
	if err := a.DrawPNG(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

// Set up a context sized to the arrangement's vertices, with the origin at
// the bottom left.
func (a *Arrangement) NewContext(scale float64) *gg.Context {
	minX, minY, maxX, maxY := a.bounds()

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)
	return c
}

func (a *Arrangement) Draw(c *gg.Context) {
	faces := a.Faces()
	for _, face := range faces {
		if !face.IsBounded() || face.SignedArea < a.options.MinArea {
			continue
		}
		a.tracePolygon(c, face.Vertices)
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.Fill()
	}

	c.SetLineWidth(2)
	for i, edge := range a.Edges {
		// Each segment has two half-edges; stroke it once
		if edge.Twin < EdgeIndex(i) {
			continue
		}
		p := a.Vertices[edge.Origin].Point
		q := a.Vertices[edge.Dest].Point
		c.MoveTo(p.X, p.Y)
		c.LineTo(q.X, q.Y)
	}
	c.SetRGB(0, 1, 0)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	for _, face := range faces {
		if !face.IsBounded() || face.SignedArea < a.options.MinArea {
			continue
		}
		center := a.centroid(face.Vertices)
		// Text has to be drawn in device space, or it comes out upside down
		x, y := c.TransformPoint(center.X, center.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(face.Name(), x, y, 0.5, 0.5)
		c.Pop()
	}
}

func (a *Arrangement) tracePolygon(c *gg.Context, vertices []VertexIndex) {
	first := a.Vertices[vertices[0]].Point
	c.MoveTo(first.X, first.Y)
	for _, v := range vertices[1:] {
		p := a.Vertices[v].Point
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Vertex average. Good enough to place a label inside a convex face, and all
// faces of a line arrangement are convex.
func (a *Arrangement) centroid(vertices []VertexIndex) Point {
	var sum Point
	for _, v := range vertices {
		sum.X += a.Vertices[v].Point.X
		sum.Y += a.Vertices[v].Point.Y
	}
	n := float64(len(vertices))
	return Point{sum.X / n, sum.Y / n}
}

func (a *Arrangement) bounds() (minX, minY, maxX, maxY float64) {
	if len(a.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, v := range a.Vertices {
		minX = math.Min(minX, v.Point.X)
		minY = math.Min(minY, v.Point.Y)
		maxX = math.Max(maxX, v.Point.X)
		maxY = math.Max(maxY, v.Point.Y)
	}
	return
}

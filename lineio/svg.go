package lineio

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/arrangement/advanced"
	"github.com/pkg/errors"
)

// Read every <line> element of an SVG document as an infinite line through its
// two endpoints. This is not a full SVG reader: transforms, units and every
// other element are ignored, and coordinates must be integers.
func ReadSVG(r io.Reader) ([]advanced.Line, error) {
	// The parser's own validation knows nothing about what we need from a line,
	// so it is skipped in favor of the checks below.
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("line")
	lines := make([]advanced.Line, 0, len(elements))
	for i, element := range elements {
		var coords [4]int64
		for j, name := range []string{"x1", "y1", "x2", "y2"} {
			value, ok := element.Attributes[name]
			if !ok {
				return nil, errors.Errorf("svg line %d: missing attribute %s", i, name)
			}
			coords[j], err = parseCoordinate(value)
			if err != nil {
				return nil, errors.Wrapf(err, "svg line %d", i)
			}
		}
		line, err := newLine(coords[0], coords[1], coords[2], coords[3])
		if err != nil {
			return nil, errors.Wrapf(err, "svg line %d", i)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

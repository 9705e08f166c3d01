// Package lineio reads line sets and writes face areas.
//
// Every reader returns lines already validated for the engine: integer
// coordinates within MaxCoordinate, and two distinct defining points.
package lineio

import (
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/arrangement/advanced"
	"github.com/pkg/errors"
)

// Coordinates are bounded so that line coefficients stay inside int64.
const MaxCoordinate = advanced.MaxCoordinate

type Format string

const (
	FormatText Format = "text"
	FormatSVG  Format = "svg"
	FormatYAML Format = "yaml"
)

var Formats = []string{string(FormatText), string(FormatSVG), string(FormatYAML)}

func Read(r io.Reader, format Format) ([]advanced.Line, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatSVG:
		return ReadSVG(r)
	case FormatYAML:
		scenario, err := ReadYAML(r)
		if err != nil {
			return nil, err
		}
		return scenario.Lines, nil
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Write the count of areas, then each area with fixed precision, one per line.
func WriteAreas(w io.Writer, areas []float64, precision int) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(areas)))
	sb.WriteByte('\n')
	for _, area := range areas {
		sb.WriteString(strconv.FormatFloat(area, 'f', precision, 64))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "writing areas")
}

func newLine(x1, y1, x2, y2 int64) (advanced.Line, error) {
	for _, v := range []int64{x1, y1, x2, y2} {
		if v > MaxCoordinate || v < -MaxCoordinate {
			return advanced.Line{}, errors.Wrapf(advanced.ErrCoordinateRange, "coordinate %d", v)
		}
	}
	s := advanced.IntPoint{X: x1, Y: y1}
	e := advanced.IntPoint{X: x2, Y: y2}
	if s == e {
		return advanced.Line{}, errors.Wrapf(advanced.ErrDegenerateLine, "point %v", s)
	}
	return advanced.NewLine(s, e), nil
}

func parseCoordinate(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "coordinate %q is not an integer", s)
	}
	return v, nil
}

// Faces of a line arrangement for Go.
//
// This package takes a set of infinite lines, each defined by two integer
// points, builds the planar subdivision they induce as a half-edge structure,
// and reports the areas of its bounded faces.
package arrangement

import "github.com/osuushi/arrangement/advanced"

type IntPoint = advanced.IntPoint
type Line = advanced.Line
type Options = advanced.Options

// Define a line by two distinct points. Both points equal is an error.
func NewLine(s, e IntPoint) (line Line, err error) {
	defer func() {
		err = advanced.HandleArrangementPanicRecover(recover())
	}()
	return advanced.NewLine(s, e), nil
}

// Areas of the bounded faces of the arrangement of lines, at least
// advanced.MinArea each, in ascending order.
//
// Parallel and identical lines are fine. Fewer than three lines in general
// never bound anything, so the result is empty.
func FaceAreas(lines ...Line) (result []float64, err error) {
	return FaceAreasWithOptions(advanced.DefaultOptions(), lines...)
}

func FaceAreasWithOptions(options Options, lines ...Line) (result []float64, err error) {
	defer func() {
		recoveredErr := advanced.HandleArrangementPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Build(lines, options).Areas(), nil
}

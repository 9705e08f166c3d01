package advanced

import "github.com/pkg/errors"

// Threading errors through every stage of the construction would add a lot of
// noise for conditions that can only arise from a bug or from input the
// readers should have rejected. Instead, we use panics, and the public API
// recovers to convert to an error.

// Wraps errors we panic with on purpose, so that they can be told apart from
// runtime panics, which must keep crashing.
type ArrangementError struct {
	err error
}

func (e *ArrangementError) Error() string {
	return e.err.Error()
}

func (e *ArrangementError) Cause() error {
	return e.err
}

var (
	ErrDegenerateLine  = errors.New("line defined by two equal points")
	ErrCoordinateRange = errors.Errorf("coordinate out of range [-%d, %d]", MaxCoordinate, MaxCoordinate)
)

func throw(err error) {
	panic(&ArrangementError{err})
}

// Panic with an ArrangementError.
func fatalf(format string, args ...interface{}) {
	throw(errors.Errorf(format, args...))
}

func HandleArrangementPanicRecover(r interface{}) error {
	if r != nil {
		if arrangementError, ok := r.(*ArrangementError); ok {
			return arrangementError.err
		}
		panic(r)
	}
	return nil
}

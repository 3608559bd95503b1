package advanced

import "github.com/pkg/errors"

// Threading errors up and down through insertion, legalization and removal
// would add a lot of noise to the mesh code. Instead, deep failures panic
// through fatalf, and every public method recovers to convert back to an error.

var (
	// ErrInvalidInput marks caller mistakes: too few points, removing a point
	// that is not in the set, two points at the same planar location.
	ErrInvalidInput = errors.New("invalid input")
	// ErrGeometricInconsistency means the mesh broke one of its own invariants,
	// for instance an interior edge with fewer than two incident triangles.
	ErrGeometricInconsistency = errors.New("geometric inconsistency")
	// ErrNumericalDegeneracy means edge legalization exceeded its flip budget,
	// which happens with (nearly) cocircular input and floating point drift.
	ErrNumericalDegeneracy = errors.New("numerical degeneracy")
)

// Wraps errors raised through fatalf, so that a recover can tell them apart
// from genuine runtime panics.
type triangulateError struct {
	error
}

func (e triangulateError) Unwrap() error {
	return e.error
}

// Panic with an error wrapping the given cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(triangulateError{errors.Wrapf(cause, format, args...)})
}

// Convert a value recovered from a fatalf panic back into an error. Any other
// panic is propagated.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.error
		}
		panic(r)
	}
	return nil
}

package axisscale

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedScale is returned when any axis uses a logarithmic scale.
	ErrUnsupportedScale = errors.New("axisscale: unsupported axis scale")

	// ErrDegenerateProjection is returned when the view collapses the
	// projected box, or one of its axis edges, to zero length.
	ErrDegenerateProjection = errors.New("axisscale: degenerate projection")

	// ErrInvalidInput is returned for non-finite values, non-positive axis
	// extents, aspect components or viewport sizes, and a zero up-vector.
	ErrInvalidInput = errors.New("axisscale: invalid input")

	// ErrNoContext is returned by FromContext when no plot context was
	// passed and no default context is registered.
	ErrNoContext = errors.New("axisscale: no plot context")
)

// InputError describes which input field was rejected.
// It unwraps to ErrUnsupportedScale or ErrInvalidInput.
type InputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s %s", e.Err, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// DegenerateError describes which projected quantity collapsed.
// It unwraps to ErrDegenerateProjection.
type DegenerateError struct {
	// What names the collapsed quantity, such as "z axis" or "vertical span".
	What string

	// Length is the projected length in world units.
	Length float64
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %s projects to length %g", ErrDegenerateProjection, e.What, e.Length)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateProjection
}

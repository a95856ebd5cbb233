package series

import (
	"errors"
	"fmt"
)

// Domain errors shared by the numeric packages and the runner.
var (
	// ErrEmptyRange indicates a grid or limit that produces no samples.
	ErrEmptyRange = errors.New("zetalab: empty sample range")

	// ErrInvalidParameter indicates a parameter outside its valid domain.
	ErrInvalidParameter = errors.New("zetalab: parameter out of valid bounds")

	// ErrCanceled indicates the computation was interrupted by its context.
	ErrCanceled = errors.New("zetalab: computation canceled by context")

	// ErrUnknownView indicates a view name missing from the registry.
	ErrUnknownView = errors.New("zetalab: unknown view")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Param, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// InvalidParam is shorthand for a ParamError wrapping ErrInvalidParameter.
func InvalidParam(name string, value float64) error {
	return &ParamError{Param: name, Value: value, Wrapped: ErrInvalidParameter}
}

package autograd

import "errors"

// Common errors.
var (
	// ErrNonScalarBackward is returned when Backward is invoked on a root
	// node whose value does not hold exactly one element.
	ErrNonScalarBackward = errors.New("backward requires a scalar root")
)

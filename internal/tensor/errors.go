package tensor

import "errors"

// Common errors.
var (
	// ErrShapeMismatch is returned when operand dimensions are incompatible.
	// Shape mismatches always indicate a programming error in how the core
	// is invoked; they are fatal and never retried.
	ErrShapeMismatch = errors.New("shape mismatch")
)

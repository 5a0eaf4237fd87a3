package tensor

import "fmt"

// Shape is the ordered dimension list of a tensor.
// Example: Shape{2, 3} is a 2x3 matrix.
type Shape []int

// NumElements returns how many elements a tensor of this shape holds.
// An empty shape is a scalar and holds one.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects shapes with non-positive dimensions.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("dimension %d must be > 0, got %d", i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if dim != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns row-major strides: stride[i] is the element
// distance between consecutive indices along dimension i, so the last
// dimension is contiguous.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

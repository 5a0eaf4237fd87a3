package tensor

import "fmt"

// Tensor is a dense multi-dimensional array of floating-point values.
//
// A Tensor owns a contiguous row-major buffer whose length always equals
// the product of its shape dimensions. The shape is immutable after
// creation; values are mutated in place only by the explicit in-place
// operations used by the optimizer and gradient accumulation.
//
// Type parameter T selects the floating-point precision.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	v := t.At(1, 0) // 3
type Tensor[T Float] struct {
	data   []T
	shape  Shape
	stride []int
}

// New creates a zero-filled tensor with the given shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's buffer.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// IsScalar reports whether the tensor holds exactly one element.
func (t *Tensor[T]) IsScalar() bool {
	return len(t.data) == 1
}

// Data returns a slice view of the tensor's buffer.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Item returns the scalar value of a single-element tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if !t.IsScalar() {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.offset(indices)] = value
}

// offset computes the flat index for the given coordinates using strides.
func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	clone := &Tensor[T]{
		data:   make([]T, len(t.data)),
		shape:  t.shape.Clone(),
		stride: t.shape.ComputeStrides(),
	}
	copy(clone.data, t.data)
	return clone
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}

// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/flint-ml/flint/internal/tensor"
)

// Type aliases for public API

// Float is the constraint for tensor element types.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2x3 matrix.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor over T.
type Tensor[T Float] = tensor.Tensor[T]

// ErrShapeMismatch reports incompatible operand shapes.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// Creation functions

// New creates a zero-valued tensor, validating the shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a tensor by copying the given slice into a fresh
// buffer. The slice length must match the shape's element count.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T Float](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T Float](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// RandUniform creates a tensor with values drawn uniformly from
// [-bound, bound) using the supplied source.
func RandUniform[T Float](shape Shape, bound float64, rng *rand.Rand) *Tensor[T] {
	return tensor.RandUniform[T](shape, bound, rng)
}

// RandNorm creates a tensor with values drawn from N(0, stddev).
func RandNorm[T Float](shape Shape, stddev float64, rng *rand.Rand) *Tensor[T] {
	return tensor.RandNorm[T](shape, stddev, rng)
}

// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense tensor operations in Flint.
//
// The package defines the core value type and helpers:
//   - Tensor[T]: generic dense tensor over float32 or float64
//   - Shape: dimension list with stride and validation helpers
//   - Creation functions: Zeros, Ones, Full, FromSlice, RandUniform, RandNorm
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y := tensor.Ones[float32](tensor.Shape{2, 3})
//	z, err := x.Add(y)
package tensor

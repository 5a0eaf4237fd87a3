// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autograd provides the public API for reverse-mode automatic
// differentiation in Flint.
//
// Every differentiable value is wrapped in a Node. Operations on nodes
// record how to route gradients back to their operands, and Backward
// walks the recorded graph from a scalar root, accumulating gradients
// into every node that requires them.
//
// Example:
//
//	x := autograd.Variable(tensor.Full(tensor.Shape{1}, float32(3)))
//	y := autograd.Pow(x, 2)
//	loss := autograd.Sum(y)
//	if err := autograd.Backward(loss); err != nil {
//	    return err
//	}
//	// x.Grad() now holds dy/dx = 6.
package autograd

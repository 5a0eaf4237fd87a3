// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autograd

import (
	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/tensor"
)

// Node is one value in the computation graph.
type Node[T tensor.Float] = autograd.Node[T]

// ErrNonScalarBackward reports a Backward call on a non-scalar root.
var ErrNonScalarBackward = autograd.ErrNonScalarBackward

// Variable wraps a tensor as a leaf that accumulates gradients.
func Variable[T tensor.Float](t *tensor.Tensor[T]) *Node[T] {
	return autograd.Variable(t)
}

// Constant wraps a tensor as a leaf that never receives gradients.
func Constant[T tensor.Float](t *tensor.Tensor[T]) *Node[T] {
	return autograd.Constant(t)
}

// Backward runs reverse-mode differentiation from a scalar root,
// accumulating into the Grad of every reachable node that requires it.
func Backward[T tensor.Float](root *Node[T]) error {
	return autograd.Backward(root)
}

// NoGrad runs fn with graph recording disabled. Operations performed
// inside produce detached nodes.
func NoGrad(fn func()) {
	autograd.NoGrad(fn)
}

// Operations

// Add returns a + b. b may be a [cols] bias broadcast across [rows, cols].
func Add[T tensor.Float](a, b *Node[T]) (*Node[T], error) {
	return autograd.Add(a, b)
}

// Mul returns the element-wise product a * b.
func Mul[T tensor.Float](a, b *Node[T]) (*Node[T], error) {
	return autograd.Mul(a, b)
}

// MatMul returns the matrix product of two 2-D nodes.
func MatMul[T tensor.Float](a, b *Node[T]) (*Node[T], error) {
	return autograd.MatMul(a, b)
}

// Pow raises every element of a to the given power.
func Pow[T tensor.Float](a *Node[T], power float64) *Node[T] {
	return autograd.Pow(a, power)
}

// Exp applies e^x element-wise.
func Exp[T tensor.Float](a *Node[T]) *Node[T] {
	return autograd.Exp(a)
}

// Log applies the natural logarithm element-wise.
func Log[T tensor.Float](a *Node[T]) *Node[T] {
	return autograd.Log(a)
}

// ReLU applies max(0, x) element-wise.
func ReLU[T tensor.Float](a *Node[T]) *Node[T] {
	return autograd.ReLU(a)
}

// Sigmoid applies 1/(1+e^-x) element-wise.
func Sigmoid[T tensor.Float](a *Node[T]) *Node[T] {
	return autograd.Sigmoid(a)
}

// Linear returns input @ weight + bias in a single fused node.
func Linear[T tensor.Float](input, weight, bias *Node[T]) (*Node[T], error) {
	return autograd.Linear(input, weight, bias)
}

// LogSoftmax applies a numerically stable log-softmax along each row.
func LogSoftmax[T tensor.Float](a *Node[T]) (*Node[T], error) {
	return autograd.LogSoftmax(a)
}

// NLLLoss returns the mean negative log-likelihood of the given labels
// under row-wise log-probabilities.
func NLLLoss[T tensor.Float](logProbs *Node[T], labels []int) (*Node[T], error) {
	return autograd.NLLLoss(logProbs, labels)
}

// Sum reduces a node to a scalar by summation.
func Sum[T tensor.Float](a *Node[T]) *Node[T] {
	return autograd.Sum(a)
}

// Mean reduces a node to its scalar mean.
func Mean[T tensor.Float](a *Node[T]) *Node[T] {
	return autograd.Mean(a)
}

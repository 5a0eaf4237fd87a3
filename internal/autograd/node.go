// Package autograd implements reverse-mode automatic differentiation.
//
// A Node wraps a tensor value with optional gradient-tracking metadata.
// Differentiable operations build the computation graph implicitly: each
// operation produces a child Node holding references to its parents and a
// backward closure encoding the chain-rule derivative for that operation.
// Backward walks the graph in reverse topological order from a scalar root
// and accumulates gradients onto every Node that requires them.
//
// Usage:
//
//	w := autograd.Variable(weights)
//	x := autograd.Constant(inputs)
//	y, _ := autograd.MatMul(x, w)
//	loss := autograd.Mean(y)
//	err := autograd.Backward(loss)
//	grad := w.Grad() // dloss/dw
package autograd

import "github.com/flint-ml/flint/internal/tensor"

// backwardFn computes the gradient contribution to each parent given the
// gradient flowing into the node. Entries align with the parents slice; a
// nil entry means no gradient flows to that parent.
type backwardFn[T tensor.Float] func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error)

// Node wraps exactly one tensor value in the computation graph.
//
// A Node exclusively owns its value and gradient buffers and holds
// non-owning references to its parent Nodes. The graph is acyclic by
// construction: nodes are only ever created from already-existing parents.
type Node[T tensor.Float] struct {
	value        *tensor.Tensor[T]
	grad         *tensor.Tensor[T] // Lazily allocated on first accumulation
	requiresGrad bool
	parents      []*Node[T]
	backward     backwardFn[T]
}

// Variable creates a leaf node that tracks gradients.
// Inside a NoGrad scope the node is created without tracking.
func Variable[T tensor.Float](t *tensor.Tensor[T]) *Node[T] {
	return &Node[T]{value: t, requiresGrad: gradEnabled}
}

// Constant creates a leaf node that never tracks gradients.
func Constant[T tensor.Float](t *tensor.Tensor[T]) *Node[T] {
	return &Node[T]{value: t}
}

// newOp creates an operation result node.
//
// When no parent requires a gradient (or grad mode is disabled), the
// parents and the backward closure are dropped entirely: the node becomes
// a leaf and the subgraph behind it is unreachable from any backward pass.
func newOp[T tensor.Float](value *tensor.Tensor[T], parents []*Node[T], backward backwardFn[T]) *Node[T] {
	n := &Node[T]{value: value}
	if !gradEnabled {
		return n
	}
	for _, p := range parents {
		if p.requiresGrad {
			n.requiresGrad = true
			n.parents = parents
			n.backward = backward
			break
		}
	}
	return n
}

// Value returns the node's value tensor.
func (n *Node[T]) Value() *tensor.Tensor[T] {
	return n.value
}

// Grad returns the node's gradient tensor.
// Returns nil before the first backward pass reaches this node.
func (n *Node[T]) Grad() *tensor.Tensor[T] {
	return n.grad
}

// RequiresGrad reports whether this node tracks gradients.
func (n *Node[T]) RequiresGrad() bool {
	return n.requiresGrad
}

// Shape returns the shape of the node's value.
func (n *Node[T]) Shape() tensor.Shape {
	return n.value.Shape()
}

// ZeroGrad releases the gradient buffer.
// It is lazily reallocated on the next accumulation. Required before each
// new forward/backward pass because gradients accumulate rather than reset.
func (n *Node[T]) ZeroGrad() {
	n.grad = nil
}

// Detach returns a new leaf node sharing the same value tensor but with no
// gradient tracking, stopping gradient flow at this point.
func (n *Node[T]) Detach() *Node[T] {
	return &Node[T]{value: n.value}
}

// accumulateGrad adds g into the node's gradient buffer, allocating a
// zero buffer on first use. Accumulation never overwrites: a node reached
// via multiple paths sums the contributions.
func (n *Node[T]) accumulateGrad(g *tensor.Tensor[T]) error {
	if n.grad == nil {
		n.grad = tensor.Zeros[T](n.value.Shape())
	}
	return n.grad.Accumulate(g)
}

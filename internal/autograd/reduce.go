package autograd

import "github.com/flint-ml/flint/internal/tensor"

// Sum reduces all elements to a scalar node of shape [1].
//
// Backward: every element contributed with weight 1, so the scalar
// gradient broadcasts back to the input shape.
func Sum[T tensor.Float](a *Node[T]) *Node[T] {
	value := a.value.Sum()

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		return []*tensor.Tensor[T]{tensor.Full[T](a.value.Shape(), grad.Item())}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

// Mean reduces all elements to their mean as a scalar node of shape [1].
//
// Backward: each element receives grad_out / n.
func Mean[T tensor.Float](a *Node[T]) *Node[T] {
	value := a.value.Mean()
	n := T(a.value.NumElements())

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		return []*tensor.Tensor[T]{tensor.Full[T](a.value.Shape(), grad.Item()/n)}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

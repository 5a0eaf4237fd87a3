package autograd

import "github.com/flint-ml/flint/internal/tensor"

// Exp computes the element-wise exponential: out = e^a.
//
// Backward: d(e^a)/da = e^a, so grad_a = grad_out * out.
// The forward value is reused; the exponential is never recomputed.
func Exp[T tensor.Float](a *Node[T]) *Node[T] {
	value := a.value.Exp()

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA, err := grad.Mul(value)
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor[T]{gradA}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

package autograd

import "github.com/flint-ml/flint/internal/tensor"

// Log computes the element-wise natural logarithm: out = ln(a).
// Input values must be positive; no clamping is applied.
//
// Backward: d(ln(a))/da = 1/a, so grad_a = grad_out / a.
func Log[T tensor.Float](a *Node[T]) *Node[T] {
	value := a.value.Log()

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA, err := grad.Mul(a.value.Pow(-1))
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor[T]{gradA}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

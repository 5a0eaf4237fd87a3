package autograd

import "github.com/flint-ml/flint/internal/tensor"

// Mul performs element-wise multiplication: out = a * b.
// Shapes must match exactly.
//
// Backward:
//   - d(a*b)/da = b, so grad_a = grad_out * b
//   - d(a*b)/db = a, so grad_b = grad_out * a
func Mul[T tensor.Float](a, b *Node[T]) (*Node[T], error) {
	value, err := a.value.Mul(b.value)
	if err != nil {
		return nil, err
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA, err := grad.Mul(b.value)
		if err != nil {
			return nil, err
		}
		gradB, err := grad.Mul(a.value)
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor[T]{gradA, gradB}, nil
	}

	return newOp(value, []*Node[T]{a, b}, backward), nil
}

package autograd

import "github.com/flint-ml/flint/internal/tensor"

// Pow raises every element to a fixed power: out = a^p.
//
// Backward: d(a^p)/da = p * a^(p-1), so grad_a = grad_out * p * a^(p-1).
func Pow[T tensor.Float](a *Node[T], power float64) *Node[T] {
	value := a.value.Pow(power)

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		deriv := a.value.Pow(power - 1).Scale(T(power))
		gradA, err := grad.Mul(deriv)
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor[T]{gradA}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

package autograd

import "github.com/flint-ml/flint/internal/tensor"

// ReLU applies the rectified linear unit: out = max(0, a).
//
// Backward: d(ReLU(a))/da = 1 if a > 0, else 0. The gradient is masked
// by the sign of the input.
func ReLU[T tensor.Float](a *Node[T]) *Node[T] {
	value := a.value.Clone()
	for i, v := range value.Data() {
		if v < 0 {
			value.Data()[i] = 0
		}
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA := grad.Clone()
		input := a.value.Data()
		out := gradA.Data()
		for i := range out {
			if input[i] <= 0 {
				out[i] = 0
			}
		}
		return []*tensor.Tensor[T]{gradA}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

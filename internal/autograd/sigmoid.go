package autograd

import (
	"math"

	"github.com/flint-ml/flint/internal/tensor"
)

// Sigmoid applies the logistic function: out = 1 / (1 + exp(-a)).
//
// Backward: dσ/da = σ(a) * (1 - σ(a)). The forward value is reused:
// grad_a = grad_out * out * (1 - out).
func Sigmoid[T tensor.Float](a *Node[T]) *Node[T] {
	value := a.value.Clone()
	data := value.Data()
	for i, v := range data {
		data[i] = T(1.0 / (1.0 + math.Exp(float64(-v))))
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA := grad.Clone()
		out := value.Data()
		gd := gradA.Data()
		for i := range gd {
			gd[i] *= out[i] * (1 - out[i])
		}
		return []*tensor.Tensor[T]{gradA}, nil
	}

	return newOp(value, []*Node[T]{a}, backward)
}

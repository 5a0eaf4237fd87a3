package autograd

import (
	"fmt"
	"math"

	"github.com/flint-ml/flint/internal/tensor"
)

// LogSoftmax computes the row-wise log-softmax of a [batch, classes] input:
//
//	out_i = x_i - max(x) - log(Σ_j exp(x_j - max(x)))
//
// Subtracting the row maximum before exponentiation keeps the computation
// numerically stable for large logits. No further special-casing is applied
// to degenerate rows.
//
// Backward:
//
//	grad_x_j = grad_out_j - softmax(x)_j * Σ_i grad_out_i
func LogSoftmax[T tensor.Float](a *Node[T]) (*Node[T], error) {
	shape := a.value.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("log softmax: expected 2D input [batch, classes], got %v: %w",
			shape, tensor.ErrShapeMismatch)
	}
	batch, classes := shape[0], shape[1]

	value := a.value.Clone()
	data := value.Data()
	for b := 0; b < batch; b++ {
		row := data[b*classes : (b+1)*classes]

		rowMax := row[0]
		for _, v := range row[1:] {
			if v > rowMax {
				rowMax = v
			}
		}

		var sumExp float64
		for _, v := range row {
			sumExp += math.Exp(float64(v - rowMax))
		}
		logSumExp := T(math.Log(sumExp)) + rowMax

		for i := range row {
			row[i] -= logSumExp
		}
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA := grad.Clone()
		gd := gradA.Data()
		out := value.Data()
		for b := 0; b < batch; b++ {
			gRow := gd[b*classes : (b+1)*classes]
			oRow := out[b*classes : (b+1)*classes]

			var gradSum T
			for _, g := range gRow {
				gradSum += g
			}
			for i := range gRow {
				softmax := T(math.Exp(float64(oRow[i])))
				gRow[i] -= softmax * gradSum
			}
		}
		return []*tensor.Tensor[T]{gradA}, nil
	}

	return newOp(value, []*Node[T]{a}, backward), nil
}

package autograd

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// Linear performs the affine transformation: out = input @ weight + bias.
//
// Shapes:
//   - input:  [batch, in_features]
//   - weight: [in_features, out_features]
//   - bias:   [out_features]
//   - out:    [batch, out_features]
//
// Backward:
//   - grad_input  = grad_out @ weight^T
//   - grad_weight = input^T @ grad_out
//   - grad_bias   = column-sum(grad_out)
func Linear[T tensor.Float](input, weight, bias *Node[T]) (*Node[T], error) {
	biasShape := bias.value.Shape()
	weightShape := weight.value.Shape()
	if len(biasShape) != 1 || len(weightShape) != 2 || biasShape[0] != weightShape[1] {
		return nil, fmt.Errorf("linear: weight %v incompatible with bias %v: %w",
			weightShape, biasShape, tensor.ErrShapeMismatch)
	}

	product, err := input.value.MatMul(weight.value)
	if err != nil {
		return nil, err
	}
	value, err := product.Add(bias.value)
	if err != nil {
		return nil, err
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		wT, err := weight.value.Transpose()
		if err != nil {
			return nil, err
		}
		gradInput, err := grad.MatMul(wT)
		if err != nil {
			return nil, err
		}

		inT, err := input.value.Transpose()
		if err != nil {
			return nil, err
		}
		gradWeight, err := inT.MatMul(grad)
		if err != nil {
			return nil, err
		}

		gradBias, err := grad.ColumnSum()
		if err != nil {
			return nil, err
		}

		return []*tensor.Tensor[T]{gradInput, gradWeight, gradBias}, nil
	}

	return newOp(value, []*Node[T]{input, weight, bias}, backward), nil
}

package autograd

import "github.com/flint-ml/flint/internal/tensor"

// Add performs element-wise addition: out = a + b.
//
// Shapes must match exactly, or b may be a trailing-dimension bias
// ([cols] added across [rows, cols]).
//
// Backward:
//   - d(a+b)/da = 1, so grad_a = grad_out
//   - d(a+b)/db = 1, so grad_b = grad_out, column-summed when b was
//     broadcast across rows.
func Add[T tensor.Float](a, b *Node[T]) (*Node[T], error) {
	value, err := a.value.Add(b.value)
	if err != nil {
		return nil, err
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		gradA, err := reduceTo(grad, a.value.Shape())
		if err != nil {
			return nil, err
		}
		gradB, err := reduceTo(grad, b.value.Shape())
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor[T]{gradA, gradB}, nil
	}

	return newOp(value, []*Node[T]{a, b}, backward), nil
}

// reduceTo sums grad along the broadcast rows when the target shape is the
// trailing dimension, and passes it through unchanged otherwise.
func reduceTo[T tensor.Float](grad *tensor.Tensor[T], shape tensor.Shape) (*tensor.Tensor[T], error) {
	if grad.Shape().Equal(shape) {
		return grad, nil
	}
	return grad.ColumnSum()
}

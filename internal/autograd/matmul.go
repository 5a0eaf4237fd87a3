package autograd

import "github.com/flint-ml/flint/internal/tensor"

// MatMul performs 2-D matrix multiplication: out = a @ b.
//
// Backward:
//   - d(A@B)/dA = grad_out @ B^T
//   - d(A@B)/dB = A^T @ grad_out
func MatMul[T tensor.Float](a, b *Node[T]) (*Node[T], error) {
	value, err := a.value.MatMul(b.value)
	if err != nil {
		return nil, err
	}

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		bT, err := b.value.Transpose()
		if err != nil {
			return nil, err
		}
		gradA, err := grad.MatMul(bT)
		if err != nil {
			return nil, err
		}

		aT, err := a.value.Transpose()
		if err != nil {
			return nil, err
		}
		gradB, err := aT.MatMul(grad)
		if err != nil {
			return nil, err
		}

		return []*tensor.Tensor[T]{gradA, gradB}, nil
	}

	return newOp(value, []*Node[T]{a, b}, backward), nil
}

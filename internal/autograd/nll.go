package autograd

import (
	"fmt"

	"github.com/flint-ml/flint/internal/tensor"
)

// NLLLoss computes the negative log-likelihood loss from log-probabilities
// and integer class labels:
//
//	loss = -1/batch * Σ_b logProbs[b, labels[b]]
//
// logProbs has shape [batch, classes] (typically the output of LogSoftmax)
// and labels holds one class index per row. The result is a scalar node.
//
// Backward:
//
//	grad_logProbs[b, labels[b]] = -grad_out / batch, zero elsewhere.
func NLLLoss[T tensor.Float](logProbs *Node[T], labels []int) (*Node[T], error) {
	shape := logProbs.value.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("nll loss: expected 2D log-probs [batch, classes], got %v: %w",
			shape, tensor.ErrShapeMismatch)
	}
	batch, classes := shape[0], shape[1]
	if len(labels) != batch {
		return nil, fmt.Errorf("nll loss: %d labels for batch of %d: %w",
			len(labels), batch, tensor.ErrShapeMismatch)
	}
	for b, label := range labels {
		if label < 0 || label >= classes {
			return nil, fmt.Errorf("nll loss: label %d at row %d out of range [0, %d)", label, b, classes)
		}
	}

	var total T
	data := logProbs.value.Data()
	for b, label := range labels {
		total -= data[b*classes+label]
	}
	value := tensor.Full[T](tensor.Shape{1}, total/T(batch))

	backward := func(grad *tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
		scale := grad.Item() / T(batch)
		gradLP := tensor.Zeros[T](shape)
		gd := gradLP.Data()
		for b, label := range labels {
			gd[b*classes+label] = -scale
		}
		return []*tensor.Tensor[T]{gradLP}, nil
	}

	return newOp(value, []*Node[T]{logProbs}, backward), nil
}

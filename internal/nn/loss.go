package nn

import "github.com/flint-ml/flint/internal/autograd"

// NLLLoss computes the negative log-likelihood loss from log-probabilities
// and integer class labels, averaged over the batch.
type NLLLoss struct{}

// NewNLLLoss creates a new NLL loss.
func NewNLLLoss() *NLLLoss {
	return &NLLLoss{}
}

// Forward computes the scalar loss from [batch, classes] log-probabilities.
func (l *NLLLoss) Forward(logProbs *autograd.Node[float32], labels []int) (*autograd.Node[float32], error) {
	return autograd.NLLLoss(logProbs, labels)
}

// CrossEntropyLoss combines LogSoftmax and NLLLoss over raw logits.
//
// The decomposition into log-softmax followed by negative log-likelihood
// keeps the computation numerically stable via the log-sum-exp trick; the
// model should output raw logits, not probabilities.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes the scalar loss from [batch, classes] logits and
// integer class labels.
func (l *CrossEntropyLoss) Forward(logits *autograd.Node[float32], labels []int) (*autograd.Node[float32], error) {
	logProbs, err := autograd.LogSoftmax(logits)
	if err != nil {
		return nil, err
	}
	return autograd.NLLLoss(logProbs, labels)
}

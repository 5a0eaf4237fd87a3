package nn

import "github.com/flint-ml/flint/internal/autograd"

// ReLU applies the rectified linear unit element-wise: max(0, x).
// Holds no parameters.
type ReLU struct{}

// NewReLU creates a new ReLU activation.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU to the input.
func (r *ReLU) Forward(input *autograd.Node[float32]) (*autograd.Node[float32], error) {
	return autograd.ReLU(input), nil
}

// Parameters returns an empty slice: ReLU has no trainable parameters.
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid applies the logistic function element-wise: 1 / (1 + exp(-x)).
// Holds no parameters.
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies the sigmoid to the input.
func (s *Sigmoid) Forward(input *autograd.Node[float32]) (*autograd.Node[float32], error) {
	return autograd.Sigmoid(input), nil
}

// Parameters returns an empty slice: Sigmoid has no trainable parameters.
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}

// LogSoftmax applies a row-wise, numerically stabilized log-softmax.
// Holds no parameters.
type LogSoftmax struct{}

// NewLogSoftmax creates a new LogSoftmax module.
func NewLogSoftmax() *LogSoftmax {
	return &LogSoftmax{}
}

// Forward applies log-softmax along the last dimension.
func (l *LogSoftmax) Forward(input *autograd.Node[float32]) (*autograd.Node[float32], error) {
	return autograd.LogSoftmax(input)
}

// Parameters returns an empty slice: LogSoftmax has no trainable parameters.
func (l *LogSoftmax) Parameters() []*Parameter {
	return nil
}

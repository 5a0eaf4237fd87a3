package nn

import (
	"fmt"
	"math/rand"

	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output with shape [batch_size, out_features]
//
// Weights are initialized from a uniform distribution scaled by
// 1/sqrt(in_features); biases are initialized to zeros.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features]
}

// NewLinear creates a new Linear layer.
// The caller supplies the random source so initialization is reproducible.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	weight := NewParameter("weight",
		ScaledUniform(inFeatures, tensor.Shape{inFeatures, outFeatures}, rng))
	bias := NewParameter("bias", Zeros(tensor.Shape{outFeatures}))

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}
}

// Forward computes y = x @ W + b.
//
// Input shape: [batch_size, in_features].
// Output shape: [batch_size, out_features].
func (l *Linear) Forward(input *autograd.Node[float32]) (*autograd.Node[float32], error) {
	shape := input.Shape()
	if len(shape) != 2 || shape[1] != l.inFeatures {
		return nil, fmt.Errorf("linear forward: expected input [batch, %d], got %v: %w",
			l.inFeatures, shape, tensor.ErrShapeMismatch)
	}
	return autograd.Linear(input, l.weight.Node(), l.bias.Node())
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

package nn

import (
	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter is a gradient-tracking Node that persists across training
// steps: it is created once at model construction, mutated in place only
// by the optimizer, and destroyed with the model.
type Parameter struct {
	name string
	node *autograd.Node[float32]
}

// NewParameter creates a new trainable parameter from an initialized tensor.
func NewParameter(name string, t *tensor.Tensor[float32]) *Parameter {
	return &Parameter{
		name: name,
		node: autograd.Variable(t),
	}
}

// Name returns the parameter name (e.g. "weight", "bias").
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the underlying graph node.
func (p *Parameter) Node() *autograd.Node[float32] {
	return p.node
}

// Value returns the parameter's value tensor.
func (p *Parameter) Value() *tensor.Tensor[float32] {
	return p.node.Value()
}

// Grad returns the accumulated gradient tensor.
// Returns nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Tensor[float32] {
	return p.node.Grad()
}

// ZeroGrad releases the gradient buffer.
// Must be called before each new forward/backward pass: gradients
// accumulate across passes rather than resetting automatically.
func (p *Parameter) ZeroGrad() {
	p.node.ZeroGrad()
}

// Package nn implements neural network modules for the Flint ML library.
//
// This package provides building blocks for constructing feed-forward
// networks:
//   - Module interface: base interface for all NN components
//   - Parameter: trainable parameters with gradient tracking
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid
//   - LogSoftmax and loss functions: NLLLoss, CrossEntropyLoss
//   - Sequential: container for stacking layers
package nn

import "github.com/flint-ml/flint/internal/autograd"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build networks:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	)
type Module interface {
	// Forward computes the output of the module given an input node.
	// Shape errors surface immediately as ShapeMismatch.
	Forward(input *autograd.Node[float32]) (*autograd.Node[float32], error)

	// Parameters returns all trainable parameters of this module, in
	// insertion order. Modules without parameters (activations) return
	// an empty slice.
	Parameters() []*Parameter
}

// Package optim implements optimization algorithms for training.
//
// Example usage:
//
//	optimizer, err := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.1})
//
//	// Training loop
//	optimizer.ZeroGrad()
//	loss, _ := criterion.Forward(model.Forward(x), y)
//	autograd.Backward(loss)
//	err = optimizer.Step()
package optim

import (
	"errors"

	"github.com/flint-ml/flint/internal/nn"
)

// Common errors.
var (
	// ErrMissingGradient is returned by Step when a parameter has no
	// gradient. Stepping before a backward pass is a usage-order bug
	// and must surface rather than silently no-op.
	ErrMissingGradient = errors.New("parameter has no gradient (missing backward pass before step?)")
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers are the only component that mutates parameter values, and
// they do so strictly between backward passes.
type Optimizer interface {
	// Step applies the update rule to every parameter in place.
	// Returns ErrMissingGradient if any parameter lacks a gradient.
	Step() error

	// ZeroGrad clears every parameter's gradient. Must be called before
	// each backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float32
}

// Config is the base configuration for optimizers.
type Config struct {
	LR float32 // Learning rate, must be > 0
}

// zeroGrads clears gradients on a parameter collection.
func zeroGrads(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

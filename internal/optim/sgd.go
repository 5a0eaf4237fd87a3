package optim

import (
	"fmt"

	"github.com/flint-ml/flint/internal/nn"
)

// SGD implements vanilla stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Gradients are applied exactly as accumulated: no momentum, clamping,
// or clipping.
//
// Example:
//
//	optimizer, err := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.01})
type SGD struct {
	params []*nn.Parameter
	lr     float32
}

// NewSGD creates a new SGD optimizer over the given parameter collection.
// The learning rate must be positive.
func NewSGD(params []*nn.Parameter, config Config) (*SGD, error) {
	if config.LR <= 0 {
		return nil, fmt.Errorf("sgd: learning rate must be > 0, got %v", config.LR)
	}
	return &SGD{
		params: params,
		lr:     config.LR,
	}, nil
}

// Step performs a single in-place descent update on every parameter.
//
// Fails with ErrMissingGradient if any parameter's gradient has not been
// populated by a backward pass; no parameter is updated in that case.
func (s *SGD) Step() error {
	for _, param := range s.params {
		if param.Grad() == nil {
			return fmt.Errorf("sgd step: %s: %w", param.Name(), ErrMissingGradient)
		}
	}
	for _, param := range s.params {
		if err := param.Value().AddScaled(param.Grad(), -s.lr); err != nil {
			return fmt.Errorf("sgd step: %s: %w", param.Name(), err)
		}
	}
	return nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrads(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float32 {
	return s.lr
}

// SetLR updates the learning rate, for external schedules.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}

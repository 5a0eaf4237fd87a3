// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// ErrMissingGradient reports a Step over a parameter that has no
// gradient, usually a Step without a preceding Backward.
var ErrMissingGradient = optim.ErrMissingGradient

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd, err := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.01})
func NewSGD(params []*nn.Parameter, config Config) (*SGD, error) {
	return optim.NewSGD(params, config)
}

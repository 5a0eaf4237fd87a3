// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// Module is the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor[float32]) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a linear layer with uniform fan-in scaled
// initialization drawn from the supplied source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(784, 128, rng)
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// Activations

// ReLU represents the rectified linear unit activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the logistic sigmoid activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// LogSoftmax applies a row-wise log-softmax.
type LogSoftmax = nn.LogSoftmax

// NewLogSoftmax creates a new LogSoftmax layer.
func NewLogSoftmax() *LogSoftmax {
	return nn.NewLogSoftmax()
}

// Losses

// NLLLoss computes mean negative log-likelihood over log-probabilities.
type NLLLoss = nn.NLLLoss

// NewNLLLoss creates a new NLL loss.
func NewNLLLoss() *NLLLoss {
	return nn.NewNLLLoss()
}

// CrossEntropyLoss composes LogSoftmax and NLLLoss over raw logits.
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a new cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// Composition

// Sequential chains modules in order.
type Sequential = nn.Sequential

// NewSequential creates a Sequential over the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

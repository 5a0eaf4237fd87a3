// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network layers in Flint.
//
// # Overview
//
// This package contains:
//   - Linear: fully connected layer
//   - ReLU, Sigmoid, LogSoftmax: activation layers
//   - NLLLoss, CrossEntropyLoss: classification losses
//   - Sequential: ordered module composition
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 32, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(32, 3, rng),
//	)
//	out, err := model.Forward(autograd.Constant(inputs))
package nn

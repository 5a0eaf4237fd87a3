// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks.
//
// # Basic Usage
//
//	sgd, err := optim.NewSGD(model.Parameters(), optim.Config{LR: 0.01})
//	if err != nil {
//	    return err
//	}
//
//	for batch := range batches {
//	    sgd.ZeroGrad()
//	    loss, err := forwardAndLoss(model, batch)
//	    if err != nil {
//	        return err
//	    }
//	    if err := autograd.Backward(loss); err != nil {
//	        return err
//	    }
//	    if err := sgd.Step(); err != nil {
//	        return err
//	    }
//	}
package optim

package optim_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/optim"
	"github.com/flint-ml/flint/internal/tensor"
)

// runBackward performs one forward/backward pass through the layer.
func runBackward(t *testing.T, layer *nn.Linear) {
	t.Helper()
	input := autograd.Constant(tensor.Ones[float32](tensor.Shape{1, layer.InFeatures()}))
	out, err := layer.Forward(input)
	require.NoError(t, err)
	require.NoError(t, autograd.Backward(autograd.Sum(out)))
}

// TestSGD_StepUpdatesParameters tests param = old - lr * grad exactly.
func TestSGD_StepUpdatesParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layer := nn.NewLinear(2, 2, rng)
	lr := float32(0.1)

	sgd, err := optim.NewSGD(layer.Parameters(), optim.Config{LR: lr})
	require.NoError(t, err)

	sgd.ZeroGrad()
	runBackward(t, layer)

	oldWeight := layer.Weight().Value().Clone()
	grad := layer.Weight().Grad().Clone()

	require.NoError(t, sgd.Step())

	newWeight := layer.Weight().Value().Data()
	for i := range newWeight {
		want := oldWeight.Data()[i] - lr*grad.Data()[i]
		assert.InDelta(t, want, newWeight[i], 1e-7)
	}
}

// TestSGD_StepWithoutBackward tests that stepping before any backward
// pass fails with MissingGradient.
func TestSGD_StepWithoutBackward(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	layer := nn.NewLinear(2, 2, rng)

	sgd, err := optim.NewSGD(layer.Parameters(), optim.Config{LR: 0.1})
	require.NoError(t, err)

	err = sgd.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, optim.ErrMissingGradient))
}

// TestSGD_StepAfterZeroGrad tests that clearing gradients restores the
// missing-gradient failure mode.
func TestSGD_StepAfterZeroGrad(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	layer := nn.NewLinear(2, 2, rng)

	sgd, err := optim.NewSGD(layer.Parameters(), optim.Config{LR: 0.1})
	require.NoError(t, err)

	runBackward(t, layer)
	require.NoError(t, sgd.Step())

	sgd.ZeroGrad()
	err = sgd.Step()
	require.Error(t, err)
	assert.True(t, errors.Is(err, optim.ErrMissingGradient))
}

// TestSGD_InvalidLR tests learning-rate validation.
func TestSGD_InvalidLR(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	layer := nn.NewLinear(2, 2, rng)

	_, err := optim.NewSGD(layer.Parameters(), optim.Config{LR: 0})
	require.Error(t, err)

	_, err = optim.NewSGD(layer.Parameters(), optim.Config{LR: -0.1})
	require.Error(t, err)
}

// TestSGD_ZeroGradResetsAccumulation tests the accumulate-then-clear cycle
// across two training iterations.
func TestSGD_ZeroGradResetsAccumulation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	layer := nn.NewLinear(2, 2, rng)

	sgd, err := optim.NewSGD(layer.Parameters(), optim.Config{LR: 0.1})
	require.NoError(t, err)

	runBackward(t, layer)
	first := layer.Weight().Grad().Clone()

	// Without ZeroGrad, the second pass accumulates.
	runBackward(t, layer)
	doubled := layer.Weight().Grad().Data()
	for i, v := range first.Data() {
		assert.InDelta(t, 2*v, doubled[i], 1e-6)
	}

	// With ZeroGrad, the next pass starts fresh.
	sgd.ZeroGrad()
	runBackward(t, layer)
	fresh := layer.Weight().Grad().Data()
	for i, v := range first.Data() {
		assert.InDelta(t, v, fresh[i], 1e-6)
	}
}

package nn_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		module nn.Module
		in     int
	}{
		{"Linear", nn.NewLinear(10, 5, rng), 10},
		{"ReLU", nn.NewReLU(), 4},
		{"Sigmoid", nn.NewSigmoid(), 4},
		{"LogSoftmax", nn.NewLogSoftmax(), 4},
		{"Sequential", nn.NewSequential(nn.NewLinear(10, 5, rng), nn.NewReLU()), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := autograd.Constant(tensor.Ones[float32](tensor.Shape{2, tt.in}))
			out, err := tt.module.Forward(input)
			require.NoError(t, err)
			require.NotNil(t, out)

			// Parameters never returns an error path; may be empty.
			_ = tt.module.Parameters()
		})
	}
}

// TestLinear_Shapes tests output shape and input validation.
func TestLinear_Shapes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	layer := nn.NewLinear(3, 4, rng)

	out, err := layer.Forward(autograd.Constant(tensor.Ones[float32](tensor.Shape{5, 3})))
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{5, 4}))

	_, err = layer.Forward(autograd.Constant(tensor.Ones[float32](tensor.Shape{5, 7})))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

// TestLinear_Initialization tests the 1/sqrt(in_features) uniform bound
// and zero biases.
func TestLinear_Initialization(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	layer := nn.NewLinear(100, 10, rng)

	bound := float32(1.0 / math.Sqrt(100))
	for _, w := range layer.Weight().Value().Data() {
		assert.LessOrEqual(t, w, bound)
		assert.GreaterOrEqual(t, w, -bound)
	}
	for _, b := range layer.Bias().Value().Data() {
		assert.Equal(t, float32(0), b)
	}
}

// TestParameter_GradLifecycle tests lazy allocation and ZeroGrad.
func TestParameter_GradLifecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	layer := nn.NewLinear(2, 2, rng)

	require.Nil(t, layer.Weight().Grad(), "gradient should be nil before backward")

	input := autograd.Constant(tensor.Ones[float32](tensor.Shape{1, 2}))
	out, err := layer.Forward(input)
	require.NoError(t, err)
	require.NoError(t, autograd.Backward(autograd.Sum(out)))

	require.NotNil(t, layer.Weight().Grad())
	require.NotNil(t, layer.Bias().Grad())

	layer.Weight().ZeroGrad()
	assert.Nil(t, layer.Weight().Grad())
}

// TestSequential_ParameterOrder tests flattened insertion-order parameters.
func TestSequential_ParameterOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	l1 := nn.NewLinear(4, 3, rng)
	l2 := nn.NewLinear(3, 2, rng)
	model := nn.NewSequential(l1, nn.NewReLU(), l2)

	params := model.Parameters()
	require.Len(t, params, 4)
	assert.Same(t, l1.Weight(), params[0])
	assert.Same(t, l1.Bias(), params[1])
	assert.Same(t, l2.Weight(), params[2])
	assert.Same(t, l2.Bias(), params[3])
}

// TestCrossEntropy_MatchesManualComposition tests that CrossEntropyLoss
// equals LogSoftmax followed by NLLLoss.
func TestCrossEntropy_MatchesManualComposition(t *testing.T) {
	logitsT, err := tensor.FromSlice([]float32{2, 1, 0.1, 0.5, 0.2, 3}, tensor.Shape{2, 3})
	require.NoError(t, err)
	labels := []int{0, 2}

	ce, err := nn.NewCrossEntropyLoss().Forward(autograd.Constant(logitsT), labels)
	require.NoError(t, err)

	lp, err := autograd.LogSoftmax(autograd.Constant(logitsT))
	require.NoError(t, err)
	manual, err := autograd.NLLLoss(lp, labels)
	require.NoError(t, err)

	assert.InDelta(t, manual.Value().Item(), ce.Value().Item(), 1e-6)
}

// TestSequential_ForwardComposition tests left-to-right composition.
func TestSequential_ForwardComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	l1 := nn.NewLinear(3, 3, rng)
	relu := nn.NewReLU()
	l2 := nn.NewLinear(3, 2, rng)
	model := nn.NewSequential(l1, relu, l2)

	input := autograd.Constant(tensor.Ones[float32](tensor.Shape{1, 3}))

	got, err := model.Forward(input)
	require.NoError(t, err)

	h, err := l1.Forward(input)
	require.NoError(t, err)
	h, err = relu.Forward(h)
	require.NoError(t, err)
	want, err := l2.Forward(h)
	require.NoError(t, err)

	assert.InDeltaSlice(t, toFloat64(want.Value().Data()), toFloat64(got.Value().Data()), 1e-6)
}

func toFloat64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

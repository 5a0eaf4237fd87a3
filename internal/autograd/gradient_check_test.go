package autograd_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/tensor"
)

const (
	gradCheckEps = 1e-6
	gradCheckTol = 1e-4
)

// checkGradient compares the backward-computed gradient of a scalarized
// operation against a central finite-difference estimate, element by element.
//
// forward maps the checked node to the operation output; the output is
// summed to a scalar so every element contributes to the gradient.
func checkGradient(t *testing.T, input *tensor.Tensor[float64],
	forward func(*autograd.Node[float64]) (*autograd.Node[float64], error),
) {
	t.Helper()

	// Analytic gradient.
	x := autograd.Variable(input.Clone())
	out, err := forward(x)
	require.NoError(t, err)
	require.NoError(t, autograd.Backward(autograd.Sum(out)))
	require.NotNil(t, x.Grad())
	analytic := x.Grad().Data()

	// Scalar loss at a given input, outside any graph.
	eval := func(at *tensor.Tensor[float64]) float64 {
		var loss float64
		autograd.NoGrad(func() {
			node, err := forward(autograd.Constant(at))
			require.NoError(t, err)
			loss = node.Value().Sum().Item()
		})
		return loss
	}

	for i := range input.Data() {
		plus := input.Clone()
		plus.Data()[i] += gradCheckEps
		minus := input.Clone()
		minus.Data()[i] -= gradCheckEps

		numeric := (eval(plus) - eval(minus)) / (2 * gradCheckEps)
		assert.InDelta(t, numeric, analytic[i], gradCheckTol,
			"element %d: analytic %v vs numeric %v", i, analytic[i], numeric)
	}
}

// randTensor fills a tensor with reproducible values in [-1, 1).
func randTensor(shape tensor.Shape, seed int64) *tensor.Tensor[float64] {
	rng := rand.New(rand.NewSource(seed))
	return tensor.RandUniform[float64](shape, 1.0, rng)
}

// offsetTensor shifts every element by delta (to keep inputs positive or
// away from non-differentiable points).
func offsetTensor(t *tensor.Tensor[float64], delta float64) *tensor.Tensor[float64] {
	out := t.Clone()
	for i := range out.Data() {
		out.Data()[i] += delta
	}
	return out
}

func TestGradCheck_Add(t *testing.T) {
	other := autograd.Constant(randTensor(tensor.Shape{3, 4}, 2))
	checkGradient(t, randTensor(tensor.Shape{3, 4}, 1),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Add(x, other)
		})
}

func TestGradCheck_AddBias(t *testing.T) {
	rows := autograd.Constant(randTensor(tensor.Shape{3, 4}, 3))
	// Gradient with respect to the broadcast bias operand.
	checkGradient(t, randTensor(tensor.Shape{4}, 4),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Add(rows, x)
		})
}

func TestGradCheck_Mul(t *testing.T) {
	other := autograd.Constant(randTensor(tensor.Shape{2, 3}, 5))
	checkGradient(t, randTensor(tensor.Shape{2, 3}, 6),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Mul(x, other)
		})
}

func TestGradCheck_MatMul(t *testing.T) {
	right := autograd.Constant(randTensor(tensor.Shape{3, 2}, 7))
	checkGradient(t, randTensor(tensor.Shape{2, 3}, 8),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.MatMul(x, right)
		})

	left := autograd.Constant(randTensor(tensor.Shape{2, 3}, 9))
	checkGradient(t, randTensor(tensor.Shape{3, 2}, 10),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.MatMul(left, x)
		})
}

func TestGradCheck_Pow(t *testing.T) {
	// Keep inputs positive so fractional powers stay real.
	input := offsetTensor(randTensor(tensor.Shape{2, 2}, 11), 2.0)
	checkGradient(t, input,
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Pow(x, 3), nil
		})
}

func TestGradCheck_Exp(t *testing.T) {
	checkGradient(t, randTensor(tensor.Shape{2, 3}, 12),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Exp(x), nil
		})
}

func TestGradCheck_Log(t *testing.T) {
	input := offsetTensor(randTensor(tensor.Shape{2, 3}, 13), 2.0)
	checkGradient(t, input,
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Log(x), nil
		})
}

func TestGradCheck_ReLU(t *testing.T) {
	// Shift away from zero: ReLU is not differentiable there and the
	// finite difference would straddle the kink.
	input := randTensor(tensor.Shape{3, 3}, 14)
	for i, v := range input.Data() {
		if v > -0.05 && v < 0.05 {
			input.Data()[i] = 0.1
		}
	}
	checkGradient(t, input,
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.ReLU(x), nil
		})
}

func TestGradCheck_Sigmoid(t *testing.T) {
	checkGradient(t, randTensor(tensor.Shape{2, 3}, 15),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Sigmoid(x), nil
		})
}

func TestGradCheck_LogSoftmax(t *testing.T) {
	checkGradient(t, randTensor(tensor.Shape{3, 4}, 16),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.LogSoftmax(x)
		})
}

func TestGradCheck_Linear(t *testing.T) {
	input := autograd.Constant(randTensor(tensor.Shape{4, 3}, 17))
	weight := autograd.Constant(randTensor(tensor.Shape{3, 2}, 18))
	bias := autograd.Constant(randTensor(tensor.Shape{2}, 19))

	// With respect to the input.
	checkGradient(t, randTensor(tensor.Shape{4, 3}, 20),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Linear(x, weight, bias)
		})

	// With respect to the weight.
	checkGradient(t, randTensor(tensor.Shape{3, 2}, 21),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Linear(input, x, bias)
		})

	// With respect to the bias.
	checkGradient(t, randTensor(tensor.Shape{2}, 22),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Linear(input, weight, x)
		})
}

func TestGradCheck_NLLLoss(t *testing.T) {
	labels := []int{1, 0, 2}
	checkGradient(t, randTensor(tensor.Shape{3, 3}, 23),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.NLLLoss(x, labels)
		})
}

func TestGradCheck_LogSoftmaxNLL(t *testing.T) {
	// The full classification loss as used in training.
	labels := []int{2, 0, 1, 1}
	checkGradient(t, randTensor(tensor.Shape{4, 3}, 24),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			lp, err := autograd.LogSoftmax(x)
			if err != nil {
				return nil, err
			}
			return autograd.NLLLoss(lp, labels)
		})
}

func TestGradCheck_Mean(t *testing.T) {
	checkGradient(t, randTensor(tensor.Shape{2, 5}, 25),
		func(x *autograd.Node[float64]) (*autograd.Node[float64], error) {
			return autograd.Mean(x), nil
		})
}

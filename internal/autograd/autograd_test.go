package autograd_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/autograd"
	"github.com/flint-ml/flint/internal/tensor"
)

// TestBackward_Simple tests d(x*x)/dx = 2x.
func TestBackward_Simple(t *testing.T) {
	x := autograd.Variable(tensor.Full[float64](tensor.Shape{1}, 3))
	y, err := autograd.Mul(x, x)
	require.NoError(t, err)

	require.NoError(t, autograd.Backward(y))
	require.NotNil(t, x.Grad())
	assert.InDelta(t, 6.0, x.Grad().Item(), 1e-12)
}

// TestBackward_Composite tests d((x+2)*3)/dx = 3.
func TestBackward_Composite(t *testing.T) {
	x := autograd.Variable(tensor.Full[float64](tensor.Shape{1}, 5))
	two := autograd.Constant(tensor.Full[float64](tensor.Shape{1}, 2))
	three := autograd.Constant(tensor.Full[float64](tensor.Shape{1}, 3))

	sum, err := autograd.Add(x, two)
	require.NoError(t, err)
	y, err := autograd.Mul(sum, three)
	require.NoError(t, err)

	require.NoError(t, autograd.Backward(y))
	assert.InDelta(t, 3.0, x.Grad().Item(), 1e-12)

	// Constants never receive gradients.
	assert.Nil(t, two.Grad())
	assert.Nil(t, three.Grad())
}

// TestBackward_MultiPath tests that a node reached via multiple paths
// sums its contributions: y = x*x + x has dy/dx = 2x + 1.
func TestBackward_MultiPath(t *testing.T) {
	x := autograd.Variable(tensor.Full[float64](tensor.Shape{1}, 4))

	sq, err := autograd.Mul(x, x)
	require.NoError(t, err)
	y, err := autograd.Add(sq, x)
	require.NoError(t, err)

	require.NoError(t, autograd.Backward(y))
	assert.InDelta(t, 9.0, x.Grad().Item(), 1e-12)
}

// TestBackward_NonScalarRoot tests the scalar-root contract.
func TestBackward_NonScalarRoot(t *testing.T) {
	x := autograd.Variable(tensor.Ones[float64](tensor.Shape{2, 2}))
	y, err := autograd.Mul(x, x)
	require.NoError(t, err)

	err = autograd.Backward(y)
	require.Error(t, err)
	assert.True(t, errors.Is(err, autograd.ErrNonScalarBackward))
}

// TestBackward_Accumulates tests that a second backward pass on the same
// graph doubles every gradient instead of overwriting it.
func TestBackward_Accumulates(t *testing.T) {
	x := autograd.Variable(tensor.Full[float64](tensor.Shape{1}, 3))
	y, err := autograd.Mul(x, x)
	require.NoError(t, err)

	require.NoError(t, autograd.Backward(y))
	assert.InDelta(t, 6.0, x.Grad().Item(), 1e-12)

	require.NoError(t, autograd.Backward(y))
	assert.InDelta(t, 12.0, x.Grad().Item(), 1e-12)
}

// TestBackward_AfterZeroGrad tests that clearing gradients resets accumulation.
func TestBackward_AfterZeroGrad(t *testing.T) {
	x := autograd.Variable(tensor.Full[float64](tensor.Shape{1}, 3))
	y, err := autograd.Mul(x, x)
	require.NoError(t, err)

	require.NoError(t, autograd.Backward(y))
	x.ZeroGrad()
	require.Nil(t, x.Grad())

	require.NoError(t, autograd.Backward(y))
	assert.InDelta(t, 6.0, x.Grad().Item(), 1e-12)
}

// TestRequiresGrad_Propagation tests that grad tracking follows parents.
func TestRequiresGrad_Propagation(t *testing.T) {
	v := autograd.Variable(tensor.Ones[float32](tensor.Shape{2}))
	c := autograd.Constant(tensor.Ones[float32](tensor.Shape{2}))

	fromVar, err := autograd.Add(v, c)
	require.NoError(t, err)
	assert.True(t, fromVar.RequiresGrad())

	fromConst, err := autograd.Add(c, c)
	require.NoError(t, err)
	assert.False(t, fromConst.RequiresGrad())
}

// TestNoGrad tests the scoped no-grad context and mode restoration.
func TestNoGrad(t *testing.T) {
	var inside *autograd.Node[float32]
	autograd.NoGrad(func() {
		v := autograd.Variable(tensor.Ones[float32](tensor.Shape{2}))
		assert.False(t, v.RequiresGrad())

		var err error
		inside, err = autograd.Add(v, v)
		require.NoError(t, err)
	})
	assert.False(t, inside.RequiresGrad())

	// Prior mode restored after the scope exits.
	outside := autograd.Variable(tensor.Ones[float32](tensor.Shape{2}))
	assert.True(t, outside.RequiresGrad())
}

// TestNoGrad_RestoresOnPanic tests the guaranteed-restore contract.
func TestNoGrad_RestoresOnPanic(t *testing.T) {
	func() {
		defer func() { _ = recover() }()
		autograd.NoGrad(func() { panic("boom") })
	}()

	v := autograd.Variable(tensor.Ones[float32](tensor.Shape{1}))
	assert.True(t, v.RequiresGrad(), "grad mode should be restored after panic")
}

// TestDetach tests that a detached node stops gradient flow.
func TestDetach(t *testing.T) {
	x := autograd.Variable(tensor.Full[float64](tensor.Shape{1}, 2))
	d := x.Detach()
	assert.False(t, d.RequiresGrad())

	y, err := autograd.Mul(d, d)
	require.NoError(t, err)
	assert.False(t, y.RequiresGrad())
}

// TestShapeMismatch_Surfaces tests that incompatible operands fail fast.
func TestShapeMismatch_Surfaces(t *testing.T) {
	a := autograd.Variable(tensor.Ones[float32](tensor.Shape{2, 3}))
	b := autograd.Variable(tensor.Ones[float32](tensor.Shape{3, 3}))

	_, err := autograd.Mul(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

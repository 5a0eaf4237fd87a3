package tensor

import (
	"fmt"
	"math"

	"github.com/flint-ml/flint/internal/parallel"
)

// Add performs element-wise addition, returning a new tensor.
//
// Shapes must match exactly, with one exception used for bias addition:
// a trailing-dimension operand of shape [cols] broadcasts across a
// [rows, cols] operand row by row.
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	if t.shape.Equal(other.shape) {
		out := t.Clone()
		for i, v := range other.data {
			out.data[i] += v
		}
		return out, nil
	}
	if rows, cols, ok := biasBroadcast(t.shape, other.shape); ok {
		out := t.Clone()
		for r := 0; r < rows; r++ {
			row := out.data[r*cols : (r+1)*cols]
			for c := 0; c < cols; c++ {
				row[c] += other.data[c]
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("add: %v vs %v: %w", t.shape, other.shape, ErrShapeMismatch)
}

// biasBroadcast reports whether b of shape [cols] can broadcast across
// a of shape [rows, cols].
func biasBroadcast(a, b Shape) (rows, cols int, ok bool) {
	if len(a) != 2 || len(b) != 1 || a[1] != b[0] {
		return 0, 0, false
	}
	return a[0], a[1], true
}

// Sub performs element-wise subtraction, returning a new tensor.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("sub: %v vs %v: %w", t.shape, other.shape, ErrShapeMismatch)
	}
	out := t.Clone()
	for i, v := range other.data {
		out.data[i] -= v
	}
	return out, nil
}

// Mul performs element-wise multiplication, returning a new tensor.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("mul: %v vs %v: %w", t.shape, other.shape, ErrShapeMismatch)
	}
	out := t.Clone()
	for i, v := range other.data {
		out.data[i] *= v
	}
	return out, nil
}

// MatMul performs 2-D matrix multiplication: (M, K) @ (K, N) → (M, N).
func (t *Tensor[T]) MatMul(other *Tensor[T]) (*Tensor[T], error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, fmt.Errorf("matmul: expected 2D operands, got %v and %v: %w", t.shape, other.shape, ErrShapeMismatch)
	}
	if t.shape[1] != other.shape[0] {
		return nil, fmt.Errorf("matmul: inner dimensions %d and %d differ (%v @ %v): %w",
			t.shape[1], other.shape[0], t.shape, other.shape, ErrShapeMismatch)
	}

	m, k, n := t.shape[0], t.shape[1], other.shape[1]
	out := Zeros[T](Shape{m, n})
	// Output rows are disjoint, so they can be filled concurrently.
	parallel.For(m, func(i int) {
		aRow := t.data[i*k : (i+1)*k]
		outRow := out.data[i*n : (i+1)*n]
		for p := 0; p < k; p++ {
			a := aRow[p]
			if a == 0 {
				continue
			}
			bRow := other.data[p*n : (p+1)*n]
			for j := 0; j < n; j++ {
				outRow[j] += a * bRow[j]
			}
		}
	})
	return out, nil
}

// Transpose returns the 2-D transpose of the tensor.
func (t *Tensor[T]) Transpose() (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("transpose: expected 2D tensor, got %v: %w", t.shape, ErrShapeMismatch)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros[T](Shape{cols, rows})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = t.data[r*cols+c]
		}
	}
	return out, nil
}

// Scale multiplies every element by a scalar, returning a new tensor.
func (t *Tensor[T]) Scale(alpha T) *Tensor[T] {
	out := t.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}
	return out
}

// Neg returns the element-wise negation.
func (t *Tensor[T]) Neg() *Tensor[T] {
	return t.Scale(-1)
}

// Pow raises every element to the given power, returning a new tensor.
func (t *Tensor[T]) Pow(power float64) *Tensor[T] {
	return t.apply(func(v float64) float64 { return math.Pow(v, power) })
}

// Exp computes the element-wise exponential, returning a new tensor.
func (t *Tensor[T]) Exp() *Tensor[T] {
	return t.apply(math.Exp)
}

// Log computes the element-wise natural logarithm, returning a new tensor.
// Inputs must be positive; no clamping is applied.
func (t *Tensor[T]) Log() *Tensor[T] {
	return t.apply(math.Log)
}

// apply maps f over every element into a new tensor.
func (t *Tensor[T]) apply(f func(float64) float64) *Tensor[T] {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = T(f(float64(v)))
	}
	return out
}

// Sum returns the sum of all elements as a scalar tensor of shape [1].
func (t *Tensor[T]) Sum() *Tensor[T] {
	var total T
	for _, v := range t.data {
		total += v
	}
	return Full[T](Shape{1}, total)
}

// Mean returns the mean of all elements as a scalar tensor of shape [1].
func (t *Tensor[T]) Mean() *Tensor[T] {
	sum := t.Sum()
	sum.data[0] /= T(len(t.data))
	return sum
}

// ColumnSum sums a [rows, cols] tensor over rows, returning shape [cols].
// Used by the linear backward rule for the bias gradient.
func (t *Tensor[T]) ColumnSum() (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("column sum: expected 2D tensor, got %v: %w", t.shape, ErrShapeMismatch)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros[T](Shape{cols})
	for r := 0; r < rows; r++ {
		row := t.data[r*cols : (r+1)*cols]
		for c := 0; c < cols; c++ {
			out.data[c] += row[c]
		}
	}
	return out, nil
}

// Accumulate adds other into the tensor in place.
//
// In-place mutation is reserved for gradient accumulation and the
// optimizer update; everything else returns new tensors.
func (t *Tensor[T]) Accumulate(other *Tensor[T]) error {
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("accumulate: %v vs %v: %w", t.shape, other.shape, ErrShapeMismatch)
	}
	for i, v := range other.data {
		t.data[i] += v
	}
	return nil
}

// AddScaled adds alpha * other into the tensor in place.
// This is the optimizer update primitive: value ← value + alpha·grad.
func (t *Tensor[T]) AddScaled(other *Tensor[T], alpha T) error {
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("add scaled: %v vs %v: %w", t.shape, other.shape, ErrShapeMismatch)
	}
	for i, v := range other.data {
		t.data[i] += alpha * v
	}
	return nil
}

// Zero resets every element to zero in place.
func (t *Tensor[T]) Zero() {
	for i := range t.data {
		t.data[i] = 0
	}
}

package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
// Panics on an invalid shape; creation helpers are used with literal
// shapes where validation failures are programming errors.
func Zeros[T Float](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full[T Float](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// RandUniform creates a tensor with values drawn uniformly from [-bound, bound).
//
// The caller supplies the random source so runs stay reproducible.
// Note: math/rand is appropriate here; initialization is not security-critical.
func RandUniform[T Float](shape Shape, bound float64, rng *rand.Rand) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = T((rng.Float64()*2.0 - 1.0) * bound)
	}
	return t
}

// RandNorm creates a tensor with values drawn from N(0, stddev).
func RandNorm[T Float](shape Shape, stddev float64, rng *rand.Rand) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = T(rng.NormFloat64() * stddev)
	}
	return t
}

package nn

import (
	"math"
	"math/rand"

	"github.com/flint-ml/flint/internal/tensor"
)

// ScaledUniform initializes weights from U(-1/sqrt(fan_in), 1/sqrt(fan_in)).
//
// Scaling by the inverse square root of the fan-in keeps the variance of
// activations roughly constant across layers at small depth.
func ScaledUniform(fanIn int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor[float32] {
	bound := 1.0 / math.Sqrt(float64(fanIn))
	return tensor.RandUniform[float32](shape, bound, rng)
}

// Zeros creates a zero-filled tensor, commonly used for bias initialization.
func Zeros(shape tensor.Shape) *tensor.Tensor[float32] {
	return tensor.Zeros[float32](shape)
}

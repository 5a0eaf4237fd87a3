package autograd

// gradEnabled is the package-level gradient mode. Execution is
// single-goroutine (forward and backward are strictly sequential), so a
// plain variable with scoped save/restore is sufficient.
var gradEnabled = true

// NoGrad runs fn with gradient tracking disabled.
//
// Every Node created inside fn is a plain leaf: requiresGrad is forced to
// false and no backward closures are captured. The prior mode is restored
// when fn returns, including on panic.
//
// Example:
//
//	autograd.NoGrad(func() {
//	    logits, _ = model.Forward(inputs) // evaluation only, no graph
//	})
func NoGrad(fn func()) {
	prev := gradEnabled
	gradEnabled = false
	defer func() { gradEnabled = prev }()
	fn()
}

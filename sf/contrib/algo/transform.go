package algo

import "github.com/ajroetker/go-specfun/sf"

type (
	// ScalarFunc64 is a one-argument evaluator such as faddeeva.Erfcx.
	ScalarFunc64 func(float64) float64

	// ScalarFunc64x2 is a two-argument evaluator whose first argument is
	// held fixed across the slice, such as gamma.GammaP.
	ScalarFunc64x2 func(a, x float64) float64
)

// Transform64 stores fn(input[i]) in output[i].
func Transform64(input, output []float64, fn ScalarFunc64) {
	n := min(len(input), len(output))
	for i := range n {
		output[i] = fn(input[i])
	}
}

// Transform64x2 stores fn(a, input[i]) in output[i].
func Transform64x2(a float64, input, output []float64, fn ScalarFunc64x2) {
	n := min(len(input), len(output))
	for i := range n {
		output[i] = fn(a, input[i])
	}
}

// Apply runs a Vec-to-Vec function over input one batch of
// sf.MaxLanes[T]() elements at a time. The final batch may be shorter.
//
// Example usage:
//
//	Apply(xs, ys, lambertw.W0Vec[float32])
func Apply[T sf.Floats](input, output []T, fn func(sf.Vec[T]) sf.Vec[T]) {
	n := min(len(input), len(output))
	lanes := sf.MaxLanes[T]()
	for i := 0; i < n; i += lanes {
		end := min(i+lanes, n)
		sf.Store(fn(sf.Load(input[i:end])), output[i:end])
	}
}

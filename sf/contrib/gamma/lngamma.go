package gamma

import "math"

// Lanczos approximation constants (g = 671/128, 14 terms).
var (
	lanczosCoeffs = [...]float64{
		57.1562356658629235,
		-59.5979603554754912,
		14.1360979747417471,
		-0.491913816097620199,
		.339946499848118887e-4,
		.465236289270485756e-4,
		-.983744753048795646e-4,
		.158088703224912494e-3,
		-.210264441724104883e-3,
		.217439618115212643e-3,
		-.164318106536763890e-3,
		.844182239838527433e-4,
		-.261908384015814087e-4,
		.368991826595316234e-5,
	}
	lanczosBase float64 = 0.999999999999997092
	lanczosG    float64 = 671.0 / 128
	sqrt2Pi     float64 = 2.5066282746310005
)

// LnGamma returns the natural logarithm of Γ(x) for x > 0.
//
// The Lanczos sum is accumulated as a rational correction and combined
// with (x+½)·ln(x+g) - (x+g) in log space, so neither tiny (1e-10) nor
// huge (1e10) arguments overflow an intermediate.
//
// Special cases:
//   - LnGamma(1) = LnGamma(2) = 0 exactly
//   - LnGamma(+Inf) = +Inf
//   - LnGamma(x) = NaN for x <= 0
//   - LnGamma(NaN) = NaN
func LnGamma(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x <= 0:
		return math.NaN()
	case math.IsInf(x, 1):
		return x
	case x == 1 || x == 2:
		return 0
	}

	tmp := x + lanczosG
	tmp = (x+0.5)*math.Log(tmp) - tmp
	ser := lanczosBase
	y := x
	for _, c := range lanczosCoeffs {
		y++
		ser += c / y
	}
	return tmp + math.Log(sqrt2Pi*ser/x)
}

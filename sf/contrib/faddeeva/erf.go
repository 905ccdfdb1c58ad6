package faddeeva

import (
	"math"

	"github.com/ajroetker/go-specfun/sf"
)

// sqrtPiOver2 is √π/2, the factor between Im w(x) and the Dawson integral.
const sqrtPiOver2 = 0.886226925452758

// erfcZero is where erfc(x) drops below half the smallest subnormal.
const erfcZero = 27.3

// erfSeriesLimit bounds the |x| range where Erf uses its own series; past
// it 1 - Erfc(x) no longer cancels.
const erfSeriesLimit = 0.5

// Dawson returns the Dawson integral D(x) = exp(-x²)·∫₀ˣ exp(t²) dt.
//
// Special cases:
//   - Dawson(±0) = ±0
//   - Dawson(±Inf) = ±0
//   - Dawson(NaN) = NaN
func Dawson(x float64) float64 {
	return sqrtPiOver2 * ImWOfX(x)
}

// Erfc returns the complementary error function 1 - erf(x).
//
// Special cases:
//   - Erfc(+Inf) = 0
//   - Erfc(-Inf) = 2
//   - Erfc(NaN) = NaN
func Erfc(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if x < 0 {
		return 2 - Erfc(-x)
	}
	if x > erfcZero {
		return 0
	}
	// exp(-(hi+lo)) ≈ exp(-hi)·(1-lo); lo is at most half an ulp of hi.
	hi, lo := sf.TwoProd(x, x)
	return math.Exp(-hi) * (1 - lo) * Erfcx(x)
}

// Erf returns the error function.
//
// Special cases:
//   - Erf(±0) = ±0
//   - Erf(±Inf) = ±1
//   - Erf(NaN) = NaN
func Erf(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if math.Abs(x) >= erfSeriesLimit {
		return 1 - Erfc(x)
	}
	// erf(x) = exp(-x²)·x·Σ x^(2k)/Γ(k+3/2), the odd part of erfcx.
	x2 := x * x
	n := (len(erfcxSeries) - 2) / 2
	sum := -erfcxSeries[2*n+1]
	for k := n - 1; k >= 0; k-- {
		sum = sum*x2 - erfcxSeries[2*k+1]
	}
	return math.Exp(-x2) * x * sum
}

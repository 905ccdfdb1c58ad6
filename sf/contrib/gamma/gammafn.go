package gamma

import (
	"math"

	"github.com/ajroetker/go-specfun/sf/regime"
)

// lnMaxFloat64 is ln(math.MaxFloat64).
const lnMaxFloat64 = 709.782712893384

// gammaRegimes splits Γ(x) at zero: negative arguments are reflected onto
// the positive Lanczos path.
var gammaRegimes = regime.Partition{
	Name: "Gamma",
	Regimes: []regime.Regime{
		{Below: 0, Strategy: regime.Strategy{Kind: regime.Reflection, Order: 1}},
	},
	Beyond: regime.Strategy{Kind: regime.Series, Order: len(lanczosCoeffs)},
}

// Gamma returns Γ(x).
//
// For x > 0 it is exp(LnGamma(x)), which overflows to +Inf past
// x ≈ 171.62. For negative non-integers the reflection identity
// Γ(x)Γ(1-x) = π/sin(πx) is used with sin evaluated on the distance from x
// to the nearest integer; the sign is taken from the parity of ⌊x⌋
// (negative when ⌊x⌋ is odd) rather than from sin itself.
//
// Past x ≈ -171.6, where Γ(1-x) overflows, the reflection is carried out in
// log space, so Γ(x) decays through the subnormals to zero near x = -178.
//
// Special cases:
//   - Gamma(+Inf) = +Inf
//   - Gamma(x) = NaN for x = 0, -1, -2, ... and x = -Inf
//   - Gamma(NaN) = NaN
func Gamma(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if gammaRegimes.Select(x).Kind == regime.Reflection {
		return reflect(x)
	}
	if x == 0 {
		return math.NaN()
	}
	return math.Exp(LnGamma(x))
}

func reflect(x float64) float64 {
	fl := math.Floor(x)
	if x == fl {
		return math.NaN()
	}
	// x - round(x) is exact, so sin stays accurate next to the poles.
	r := math.Abs(x - math.Round(x))
	s := math.Sin(math.Pi * r)
	var m float64
	if lg := LnGamma(1 - x); lg < lnMaxFloat64 {
		m = math.Pi / (s * math.Exp(lg))
	} else {
		// Γ(1-x) overflows while Γ(x) is still a subnormal.
		m = math.Exp(math.Log(math.Pi/s) - lg)
	}
	if math.Mod(fl, 2) != 0 {
		return -m
	}
	return m
}

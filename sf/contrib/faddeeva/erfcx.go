package faddeeva

import (
	"math"

	"github.com/ajroetker/go-specfun/sf"
	"github.com/ajroetker/go-specfun/sf/regime"
)

// erfcxSeries[n] = (-1)^n / Γ(n/2 + 1), the Maclaurin coefficients of
// erfcx. The odd entries are -|imwSeries|.
var erfcxSeries = [...]float64{
	1.0,
	-1.1283791670955126,
	1.0,
	-0.7522527780636751,
	0.5,
	-0.30090111122547003,
	0.16666666666666666,
	-0.08597174606442,
	0.041666666666666664,
	-0.01910483245876,
	0.008333333333333333,
	-0.0034736059015927274,
	0.001388888888888889,
	-0.0005344009079373427,
	0.0001984126984126984,
	-7.125345439164569e-05,
	2.48015873015873e-05,
	-8.38275934019361e-06,
	2.7557319223985893e-06,
	-8.823957200203801e-07,
	2.755731922398589e-07,
	-8.403768762098858e-08,
	2.505210838544172e-08,
	-7.307625010520746e-09,
	2.08767569878681e-09,
	-5.846100008416597e-10,
	1.6059043836821613e-10,
}

// erfcxPartition selects the Erfcx regime on signed x. Erfcx is not
// symmetric: below -0.51 it is reached through erfcx(x) = 2·exp(x²) -
// erfcx(-x), whose second term is dropped once it falls below an ulp of
// the first (Reflection order 0), and past -26.7 exp(x²) overflows.
var erfcxPartition = regime.Partition{
	Name: "Erfcx",
	Regimes: []regime.Regime{
		{Below: -26.7, Strategy: regime.Strategy{Kind: regime.Exact}},
		{Below: -6.1, Strategy: regime.Strategy{Kind: regime.Reflection, Order: 0}},
		{Below: -0.51, Strategy: regime.Strategy{Kind: regime.Reflection, Order: 1}},
		{Below: -0.272, Strategy: regime.Strategy{Kind: regime.Series, Order: 26}},
		{Below: -0.083, Strategy: regime.Strategy{Kind: regime.Series, Order: 20}},
		{Below: -0.003, Strategy: regime.Strategy{Kind: regime.Series, Order: 13}},
		{Below: 0.003, Strategy: regime.Strategy{Kind: regime.Series, Order: 6}},
		{Below: 0.083, Strategy: regime.Strategy{Kind: regime.Series, Order: 13}},
		{Below: 0.272, Strategy: regime.Strategy{Kind: regime.Series, Order: 20}},
		{Below: 0.51, Strategy: regime.Strategy{Kind: regime.Series, Order: 26}},
		{Below: 12, Strategy: regime.Strategy{Kind: regime.Interpolation, Order: panelCount}},
	},
	Beyond: regime.Strategy{Kind: regime.Asymptotic, Order: 10},
}

// Erfcx returns the scaled complementary error function
// exp(x²)·erfc(x).
//
// Erfcx decays like 1/(x√π) for large positive x and grows like
// 2·exp(x²) for negative x. For x <= -0.51, x² is formed exactly as a
// double-double with sf.TwoProd so that exp(x²) keeps full precision.
//
// Special cases:
//   - Erfcx(0) = 1
//   - Erfcx(+Inf) = 0
//   - Erfcx(x) = +Inf for x < -26.7 (and -Inf)
//   - Erfcx(NaN) = NaN
func Erfcx(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	s := erfcxPartition.Select(x)
	switch s.Kind {
	case regime.Exact:
		return math.Inf(1)
	case regime.Reflection:
		hi, lo := sf.TwoProd(x, x)
		e := 2 * math.Exp(hi)
		e += e * lo
		if s.Order == 0 {
			return e
		}
		return e - Erfcx(-x)
	case regime.Series:
		sum := erfcxSeries[s.Order]
		for k := s.Order - 1; k >= 0; k-- {
			sum = sum*x + erfcxSeries[k]
		}
		return sum
	case regime.Interpolation:
		return evalPanel(erfcxP[:], erfcxQ[:], x)
	default:
		return asymptotic(x, true)
	}
}

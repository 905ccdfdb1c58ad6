package faddeeva

import (
	"math"

	"github.com/ajroetker/go-specfun/sf"
	"github.com/ajroetker/go-specfun/sf/regime"
)

// imwSeries holds the Maclaurin coefficients of Im w(x)/x in powers of x²:
// (-1)^n·2^(n+1)/((2n+1)!!·√π).
var imwSeries = [...]float64{
	1.1283791670955126,
	-0.7522527780636751,
	0.30090111122547003,
	-0.08597174606442,
	0.01910483245876,
	-0.0034736059015927274,
	0.0005344009079373427,
	-7.125345439164569e-05,
	8.38275934019361e-06,
	-8.823957200203801e-07,
	8.403768762098858e-08,
	-7.307625010520746e-09,
	5.846100008416597e-10,
}

// imwPartition selects the ImWOfX regime on |x|. Series orders are the
// index of the highest coefficient of imwSeries used.
var imwPartition = regime.Partition{
	Name: "ImWOfX",
	Regimes: []regime.Regime{
		{Below: 0.003, Strategy: regime.Strategy{Kind: regime.Series, Order: 3}},
		{Below: 0.083, Strategy: regime.Strategy{Kind: regime.Series, Order: 6}},
		{Below: 0.272, Strategy: regime.Strategy{Kind: regime.Series, Order: 9}},
		{Below: 0.51, Strategy: regime.Strategy{Kind: regime.Series, Order: 12}},
		{Below: 12, Strategy: regime.Strategy{Kind: regime.Interpolation, Order: panelCount}},
	},
	Beyond: regime.Strategy{Kind: regime.Asymptotic, Order: 10},
}

// ImWOfX returns Im w(x), the imaginary part of the Faddeeva function
// w(z) = exp(-z²)·erfc(-iz) for real z = x. It equals (2/√π)·D(x), where
// D is the Dawson integral, and is odd in x.
//
// Special cases:
//   - ImWOfX(±0) = ±0
//   - ImWOfX(±Inf) = ±0
//   - ImWOfX(NaN) = NaN
func ImWOfX(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	ax := math.Abs(x)
	s := imwPartition.Select(ax)
	switch s.Kind {
	case regime.Series:
		x2 := x * x
		sum := imwSeries[s.Order]
		for k := s.Order - 1; k >= 0; k-- {
			sum = sum*x2 + imwSeries[k]
		}
		return sum * x
	case regime.Interpolation:
		return sf.CopySign(evalPanel(imwP[:], imwQ[:], ax), x)
	default:
		return asymptotic(x, false)
	}
}

package faddeeva

import "github.com/ajroetker/go-specfun/sf/regime"

// asymCoeffs[n] = (2n-1)!!/(2^n·√π); asymCoeffs[0] = 1/√π.
var asymCoeffs = [...]float64{
	0.5641895835477563,
	0.28209479177387814,
	0.42314218766081724,
	1.057855469152043,
	3.7024941420321507,
	16.661223639144676,
	91.63673001529573,
	595.6387450994222,
	4467.290588245667,
	37971.970000088164,
	360733.7150008376,
}

// asymptoticPartition picks the truncation order for |x| >= 12. Past
// 6.9e7 only the leading term is kept, which cannot overflow.
var asymptoticPartition = regime.Partition{
	Name: "asymptotic",
	Regimes: []regime.Regime{
		{Below: 23.2, Strategy: regime.Strategy{Kind: regime.Asymptotic, Order: 10}},
		{Below: 150, Strategy: regime.Strategy{Kind: regime.Asymptotic, Order: 6}},
		{Below: 6.9e7, Strategy: regime.Strategy{Kind: regime.Asymptotic, Order: 3}},
	},
	Beyond: regime.Strategy{Kind: regime.Asymptotic, Order: 0},
}

// asymptotic sums Σ a_n·(±1/x²)^n / x for |x| >= 12. With alternate set
// the odd terms are negated (erfcx); otherwise all terms are positive
// (Im w). The result has the sign of x.
func asymptotic(x float64, alternate bool) float64 {
	ax := x
	if ax < 0 {
		ax = -ax
	}
	n := asymptoticPartition.Select(ax).Order
	if n == 0 {
		return asymCoeffs[0] / x
	}
	r2 := 1 / (x * x)
	if alternate {
		r2 = -r2
	}
	s := asymCoeffs[n]
	for k := n - 1; k >= 0; k-- {
		s = s*r2 + asymCoeffs[k]
	}
	return s / x
}

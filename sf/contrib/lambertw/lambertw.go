package lambertw

import (
	"math"

	"github.com/ajroetker/go-specfun/sf"
	"github.com/ajroetker/go-specfun/sf/regime"
)

const (
	// 1/e split into a double-double; invEHi is the nearest double.
	invEHi = 0.36787944117144233
	invELo = -1.2428753672788363e-17

	// negInvE is the branch point, -1/e rounded to the nearest double.
	negInvE = -invEHi

	// fritschTol ends refinement once the relative correction is smaller.
	fritschTol = 1e-15

	// tinyX switches the update to a difference of logarithms, since x/w
	// loses bits for subnormal x.
	tinyX = 1e-300
)

// branchSeries holds the coefficients of W in powers of
// p = √(2(e·x + 1)) about the branch point x = -1/e (Corless et al.).
// The lower branch uses -p.
var branchSeries = [...]float64{
	-1,
	1,
	-1.0 / 3,
	11.0 / 72,
	-43.0 / 540,
	769.0 / 17280,
	-221.0 / 8505,
	680863.0 / 43545600,
	-1963.0 / 204120,
	226287557.0 / 37623398400,
	-5776369.0 / 1515591000,
	169709463197.0 / 69528040243200,
	-1118511313.0 / 709296588000,
}

// nearBranch is evaluated on p. Close to the branch point the full series
// is already converged and refinement would only lose bits to the
// ill-conditioned logarithm.
var nearBranch = regime.Partition{
	Name: "branch point",
	Regimes: []regime.Regime{
		{Below: 0.05, Strategy: regime.Strategy{Kind: regime.Series, Order: len(branchSeries)}},
	},
	Beyond: regime.Strategy{Kind: regime.Iteration, Order: 5},
}

// w0Guess picks the W0 starting estimate by x.
var w0Guess = regime.Partition{
	Name: "W0 guess",
	Regimes: []regime.Regime{
		{Below: -0.25, Strategy: regime.Strategy{Kind: regime.Series, Order: 10}},
		{Below: 1, Strategy: regime.Strategy{Kind: regime.Rational, Order: 2}},
		{Below: 8, Strategy: regime.Strategy{Kind: regime.Rational, Order: 1}},
	},
	Beyond: regime.Strategy{Kind: regime.Asymptotic, Order: 2},
}

// wm1Guess picks the Wm1 starting estimate by x.
var wm1Guess = regime.Partition{
	Name: "Wm1 guess",
	Regimes: []regime.Regime{
		{Below: -0.2, Strategy: regime.Strategy{Kind: regime.Series, Order: 10}},
	},
	Beyond: regime.Strategy{Kind: regime.Asymptotic, Order: 2},
}

var (
	fullSteps = nearBranch.Beyond
	spSteps   = regime.Strategy{Kind: regime.Iteration, Order: 1}
)

// W0 returns the principal branch of the Lambert W function, the
// solution w >= -1 of w·exp(w) = x.
//
// Special cases:
//   - W0(-1/e) = -1
//   - W0(±0) = ±0
//   - W0(+Inf) = +Inf
//   - W0(x) = NaN for x < -1/e and NaN
func W0(x float64) float64 {
	return w0(x, fullSteps.Order)
}

// SpW0 is W0 with a single refinement step, accurate to about 1e-7.
func SpW0(x float64) float64 {
	return w0(x, spSteps.Order)
}

// Wm1 returns the lower branch of the Lambert W function, the solution
// w <= -1 of w·exp(w) = x.
//
// Special cases:
//   - Wm1(-1/e) = -1
//   - Wm1(x) = NaN for x < -1/e, x >= 0 (including -0) and NaN
//   - Wm1(x) → -Inf as x → 0⁻; Wm1 of the smallest subnormal is about -751
func Wm1(x float64) float64 {
	return wm1(x, fullSteps.Order)
}

// SpWm1 is Wm1 with a single refinement step, accurate to about 1e-7.
func SpWm1(x float64) float64 {
	return wm1(x, spSteps.Order)
}

func w0(x float64, steps int) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < negInvE:
		return math.NaN()
	case x == negInvE:
		return -1
	case x == 0:
		return x
	}

	p := branchDistance(x)
	if s := nearBranch.Select(p); s.Kind == regime.Series {
		return series(p, s.Order)
	}

	var w float64
	switch s := w0Guess.Select(x); {
	case s.Kind == regime.Series:
		w = series(p, s.Order)
	case s.Kind == regime.Rational && s.Order == 2:
		// Padé approximant about the origin.
		w = x * (60 + 114*x + 17*x*x) / (60 + 174*x + 101*x*x)
	case s.Kind == regime.Rational:
		// Winitzki.
		l := math.Log1p(x)
		w = l * (1 - math.Log1p(l)/(2+l))
	default:
		w = asymptotic(sf.Log(x))
	}
	return fritsch(x, w, steps)
}

func wm1(x float64, steps int) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < negInvE || x >= 0:
		return math.NaN()
	case x == negInvE:
		return -1
	}

	p := branchDistance(x)
	if s := nearBranch.Select(p); s.Kind == regime.Series {
		return series(-p, s.Order)
	}

	var w float64
	if s := wm1Guess.Select(x); s.Kind == regime.Series {
		w = series(-p, s.Order)
	} else {
		w = asymptotic(sf.Log(-x))
	}
	return fritsch(x, w, steps)
}

// branchDistance returns p = √(2(e·x + 1)) with 1/e carried in two parts
// so that x + 1/e does not cancel to zero next to the branch point.
func branchDistance(x float64) float64 {
	return math.Sqrt(2 * math.E * ((x + invEHi) + invELo))
}

// series sums the first n terms of the branch-point expansion.
func series(p float64, n int) float64 {
	s := branchSeries[n-1]
	for k := n - 2; k >= 0; k-- {
		s = s*p + branchSeries[k]
	}
	return s
}

// asymptotic returns L1 - L2 + L2/L1 + L2(L2-2)/(2·L1²) with
// L2 = ln|L1|, the large-|x| expansion of both branches given L1 = ln|x|.
func asymptotic(l1 float64) float64 {
	l2 := math.Log(math.Abs(l1))
	return l1 - l2 + l2/l1 + l2*(l2-2)/(2*l1*l1)
}

// fritsch applies up to steps iterations of the Fritsch-Shafer-Crowley
// update w ← w·(1 + ε), stopping early once |ε| < fritschTol.
func fritsch(x, w float64, steps int) float64 {
	for range steps {
		var z float64
		if math.Abs(x) < tinyX {
			z = sf.Log(math.Abs(x)) - math.Log(math.Abs(w)) - w
		} else {
			z = math.Log(x/w) - w
		}
		w1 := 1 + w
		q := 2 * w1 * (w1 + 2*z/3)
		eps := z / w1 * (q - z) / (q - 2*z)
		w *= 1 + eps
		if math.Abs(eps) < fritschTol {
			break
		}
	}
	return w
}

package main

import "github.com/shopspring/decimal"

// dawson is e^{-x²} Σ x^{2n+1}/(n!(2n+1)) for x ≥ 0.
func (g *generator) dawson(x decimal.Decimal) decimal.Decimal {
	x2 := g.mul(x, x)
	term, sum := x, decimal.Zero
	for n := int64(0); ; n++ {
		if n > 0 {
			term = g.div(g.mul(term, x2), decimal.NewFromInt(n))
		}
		v := g.div(term, decimal.NewFromInt(2*n+1))
		if v.IsZero() && n > 0 {
			break
		}
		sum = sum.Add(v)
	}
	return g.div(sum, g.exp(x2))
}

// imw is Im w(x) = 2·dawson(x)/√π.
func (g *generator) imw(x decimal.Decimal) decimal.Decimal {
	d := g.dawson(x)
	return g.div(d.Add(d), g.sqrtPi)
}

// erfcx is e^{x²} - (2/√π) Σ 2^n x^{2n+1}/(2n+1)!!, the series being
// e^{x²}·(√π/2)·erf(x). Both terms are near 1e62 at the top of the
// table; the fixed-point arithmetic keeps the difference exact enough.
func (g *generator) erfcx(x decimal.Decimal) decimal.Decimal {
	x2 := g.mul(x, x)
	twoX2 := x2.Add(x2)
	term, sum := x, x
	for n := int64(1); ; n++ {
		term = g.div(g.mul(term, twoX2), decimal.NewFromInt(2*n+1))
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	series := g.div(sum.Add(sum), g.sqrtPi)
	return g.exp(x2).Sub(series)
}

package main

import (
	"math"

	"github.com/shopspring/decimal"
)

// minDigits leaves enough guard digits for the cancellation in erfcx near
// x = 12, where e^{x²} and the erf series both reach 1e62.
const minDigits = 100

var (
	one  = decimal.NewFromInt(1)
	half = decimal.New(5, -1)
)

// arith is fixed-point decimal arithmetic: every product and quotient is
// rounded to places digits after the decimal point.
type arith struct {
	places int32
}

func (a arith) mul(x, y decimal.Decimal) decimal.Decimal {
	return x.Mul(y).Round(a.places)
}

func (a arith) div(x, y decimal.Decimal) decimal.Decimal {
	return x.DivRound(y, a.places)
}

// pi sums the series 3 + 3/24 + 3·9/(24·80) + ... until the terms round to zero.
func (a arith) pi() decimal.Decimal {
	t := decimal.NewFromInt(3)
	s := t
	var n, na, d, da int64 = 1, 0, 0, 24
	for {
		n, na = n+na, na+8
		d, da = d+da, da+32
		t = a.div(t.Mul(decimal.NewFromInt(n)), decimal.NewFromInt(d))
		if t.IsZero() {
			return s
		}
		s = s.Add(t)
	}
}

// sqrt refines the float64 square root by Newton's method.
func (a arith) sqrt(x decimal.Decimal) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero
	}
	f, _ := x.Float64()
	y := decimal.NewFromFloat(math.Sqrt(f))
	eps := decimal.New(1, -a.places+1)
	for range 64 {
		next := a.mul(y.Add(a.div(x, y)), half)
		if next.Sub(y).Abs().Cmp(eps) <= 0 {
			return next
		}
		y = next
	}
	return y
}

// exp halves the argument below 1, sums the Taylor series, and squares back.
func (a arith) exp(x decimal.Decimal) decimal.Decimal {
	if x.IsNegative() {
		return a.div(one, a.exp(x.Neg()))
	}
	k := 0
	for x.Cmp(one) > 0 {
		x = x.Mul(half)
		k++
	}
	x = x.Round(a.places)
	sum, term := one, one
	for n := int64(1); ; n++ {
		term = a.div(a.mul(term, x), decimal.NewFromInt(n))
		if term.IsZero() {
			break
		}
		sum = sum.Add(term)
	}
	for range k {
		sum = a.mul(sum, sum)
	}
	return sum
}

func (a arith) cos(x decimal.Decimal) decimal.Decimal {
	x2 := a.mul(x, x)
	sum, term := one, one
	for n := int64(2); ; n += 2 {
		term = a.div(a.mul(term, x2), decimal.NewFromInt(n*(n-1))).Neg()
		if term.IsZero() {
			return sum
		}
		sum = sum.Add(term)
	}
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sf

import "math"

// IEEE-754 binary64 layout.
const (
	mask     = 0x7FF
	shift    = 64 - 11 - 1
	bias     = 1023
	signBit  = 1 << 63
	fracBits = 52

	// smallestNormal is 2**-1022.
	smallestNormal = 2.2250738585072014e-308

	// splitFactor is 2**27 + 1, the Veltkamp constant for binary64.
	splitFactor = 1<<27 + 1
)

// Frexp breaks f into a normalized fraction and an integral power of two.
// It returns frac and exp satisfying f == frac × 2**exp exactly, with the
// absolute value of frac in the interval [½, 1). Subnormal inputs are
// normalized first, so their exponent goes below -1021.
//
// The Chebyshev panel lookups in contrib/faddeeva index their tables with
// the (frac, exp) pair.
//
// Special cases are:
//
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func Frexp(f float64) (frac float64, exp int) {
	switch {
	case f == 0:
		return f, 0 // keeps the sign of -0
	case math.IsInf(f, 0) || math.IsNaN(f):
		return f, 0
	}
	if math.Abs(f) < smallestNormal {
		f *= 1 << fracBits
		exp = -fracBits
	}
	x := math.Float64bits(f)
	exp += int((x>>shift)&mask) - bias + 1
	x &^= mask << shift
	x |= (-1 + bias) << shift
	frac = math.Float64frombits(x)
	return
}

// CopySign returns a value with the magnitude of mag and the sign of sign.
// NaN magnitudes stay NaN with the sign bit of sign.
func CopySign(mag, sign float64) float64 {
	return math.Float64frombits(math.Float64bits(mag)&^signBit | math.Float64bits(sign)&signBit)
}

// Log returns the natural logarithm of x.
//
// Normal arguments go straight to math.Log. Subnormal ones are split with
// Frexp and returned as log(frac) + exp·ln 2, because the amd64 math.Log
// flattens to about -709.09 below 2**-1022.
func Log(x float64) float64 {
	if x > 0 && x < smallestNormal {
		frac, exp := Frexp(x)
		return math.Log(frac) + float64(exp)*math.Ln2
	}
	return math.Log(x)
}

// TwoProd returns hi = fl(a*b) and the rounding error lo, so that
// hi + lo == a*b exactly as long as the product neither overflows nor
// underflows.
//
// At DispatchFMA the error is recovered with one fused multiply-add. At
// DispatchScalar both operands are split into 26-bit halves (Dekker);
// that path requires |a|, |b| < 2**996 so the split does not overflow.
func TwoProd(a, b float64) (hi, lo float64) {
	if currentLevel == DispatchFMA {
		return twoProdFMA(a, b)
	}
	return twoProdSplit(a, b)
}

func twoProdFMA(a, b float64) (hi, lo float64) {
	hi = a * b
	lo = math.FMA(a, b, -hi)
	return
}

func twoProdSplit(a, b float64) (hi, lo float64) {
	// The conversions keep the compiler from fusing these products.
	hi = float64(a * b)
	ah, al := split(a)
	bh, bl := split(b)
	lo = ((ah*bh - hi) + ah*bl + al*bh) + al*bl
	return
}

// split returns hi, lo with a == hi + lo and hi holding the top 26 bits.
func split(a float64) (hi, lo float64) {
	c := float64(splitFactor * a)
	hi = c - (c - a)
	lo = a - hi
	return
}

package sf

import (
	"math"
	"math/big"
	"testing"
)

func TestFrexp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		wantFrac float64
		wantExp  int
	}{
		{"one", 1, 0.5, 1},
		{"half", 0.5, 0.5, 0},
		{"panel start", 0.51, 0.51, 0},
		{"twelve", 12, 0.75, 4},
		{"negative", -12.5, -0.78125, 4},
		{"max", math.MaxFloat64, math.MaxFloat64 / 0x1p1023 / 2, 1024},
		{"smallest normal", smallestNormal, 0.5, -1021},
		{"subnormal", 0x1p-1074, 0.5, -1073},
		{"subnormal odd", 3 * 0x1p-1074, 0.75, -1072},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frac, exp := Frexp(tt.input)
			if frac != tt.wantFrac || exp != tt.wantExp {
				t.Errorf("Frexp(%v) = %v, %d, want %v, %d", tt.input, frac, exp, tt.wantFrac, tt.wantExp)
			}
		})
	}
}

func TestFrexpSpecialCases(t *testing.T) {
	frac, exp := Frexp(math.Copysign(0, -1))
	if frac != 0 || !math.Signbit(frac) || exp != 0 {
		t.Errorf("Frexp(-0) = %v, %d, want -0, 0", frac, exp)
	}
	for _, x := range []float64{math.Inf(1), math.Inf(-1)} {
		if frac, exp := Frexp(x); frac != x || exp != 0 {
			t.Errorf("Frexp(%v) = %v, %d", x, frac, exp)
		}
	}
	if frac, exp := Frexp(math.NaN()); !math.IsNaN(frac) || exp != 0 {
		t.Errorf("Frexp(NaN) = %v, %d", frac, exp)
	}
}

func TestFrexpMatchesStdlib(t *testing.T) {
	x := 0x1p-1074
	for x < math.MaxFloat64/3 {
		frac, exp := Frexp(x)
		wantFrac, wantExp := math.Frexp(x)
		if frac != wantFrac || exp != wantExp {
			t.Fatalf("Frexp(%v) = %v, %d, want %v, %d", x, frac, exp, wantFrac, wantExp)
		}
		if math.Ldexp(frac, exp) != x {
			t.Fatalf("Frexp(%v) does not reconstruct: %v * 2**%d", x, frac, exp)
		}
		x *= 2.718281828
	}
}

func TestLog(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"smallest subnormal", 5e-324, -744.4400719213812},
		{"subnormal", 1e-315, -725.3143042946427},
		{"near normal", 1e-310, -713.8013788281542},
		{"smallest normal", smallestNormal, -708.3964185322641},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Log(tt.input); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Log(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogMatchesStdlib(t *testing.T) {
	for x := smallestNormal; x < math.MaxFloat64/3; x *= 3.1 {
		if got, want := Log(x), math.Log(x); got != want {
			t.Fatalf("Log(%v) = %v, want %v", x, got, want)
		}
	}
	for _, x := range []float64{0, -1, math.Inf(1), math.NaN()} {
		got, want := Log(x), math.Log(x)
		if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("Log(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestLogSubnormalIsMonotone(t *testing.T) {
	prev := Log(0x1p-1074)
	for x := 0x1p-1073; x < smallestNormal; x *= 2 {
		got := Log(x)
		if d := got - prev; math.Abs(d-math.Ln2) > 1e-12 {
			t.Fatalf("Log(%v) - Log(%v) = %v, want ln 2", x, x/2, d)
		}
		prev = got
	}
}

func TestCopySign(t *testing.T) {
	tests := []struct {
		mag, sign, want float64
	}{
		{3, 1, 3},
		{3, -1, -3},
		{-3, 1, 3},
		{-3, -1, -3},
		{0, -1, math.Copysign(0, -1)},
		{math.Inf(1), -2, math.Inf(-1)},
		{2, math.Copysign(0, -1), -2},
	}

	for _, tt := range tests {
		got := CopySign(tt.mag, tt.sign)
		if got != tt.want || math.Signbit(got) != math.Signbit(tt.want) {
			t.Errorf("CopySign(%v, %v) = %v, want %v", tt.mag, tt.sign, got, tt.want)
		}
	}
	if got := CopySign(math.NaN(), -1); !math.IsNaN(got) || !math.Signbit(got) {
		t.Errorf("CopySign(NaN, -1) = %v, want -NaN", got)
	}
}

// exactProduct reports whether hi+lo equals a*b in exact arithmetic.
func exactProduct(a, b, hi, lo float64) bool {
	want := new(big.Float).SetPrec(2048).Mul(big.NewFloat(a).SetPrec(2048), big.NewFloat(b))
	got := new(big.Float).SetPrec(2048).Add(big.NewFloat(hi).SetPrec(2048), big.NewFloat(lo))
	return want.Cmp(got) == 0
}

func TestTwoProd(t *testing.T) {
	inputs := [][2]float64{
		{0.1, 0.1},
		{-26.7, -26.7},
		{-6.1, -6.1},
		{1.0000000000000002, 0.9999999999999999},
		{3, 7},
		{1e150, 1e-150},
		{-0.51, -0.51},
		{123456.789, -0.000321},
	}

	kernels := []struct {
		name string
		fn   func(a, b float64) (float64, float64)
	}{
		{"fma", twoProdFMA},
		{"split", twoProdSplit},
		{"dispatch", TwoProd},
	}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for _, in := range inputs {
				hi, lo := k.fn(in[0], in[1])
				if hi != in[0]*in[1] {
					t.Errorf("hi(%v, %v) = %v, want %v", in[0], in[1], hi, in[0]*in[1])
				}
				if !exactProduct(in[0], in[1], hi, lo) {
					t.Errorf("%v * %v: hi+lo = %v + %v is not exact", in[0], in[1], hi, lo)
				}
			}
		})
	}
}

func TestTwoProdKernelsAgree(t *testing.T) {
	x := -26.7
	for x < 26.7 {
		h1, l1 := twoProdFMA(x, x)
		h2, l2 := twoProdSplit(x, x)
		if h1 != h2 || l1 != l2 {
			t.Fatalf("x=%v: fma (%v, %v) != split (%v, %v)", x, h1, l1, h2, l2)
		}
		x += 0.0137
	}
}

func BenchmarkTwoProd(b *testing.B) {
	b.Run("fma", func(b *testing.B) {
		b.ReportAllocs()
		var s float64
		for i := 0; i < b.N; i++ {
			_, lo := twoProdFMA(1.1, float64(i))
			s += lo
		}
		_ = s
	})
	b.Run("split", func(b *testing.B) {
		b.ReportAllocs()
		var s float64
		for i := 0; i < b.N; i++ {
			_, lo := twoProdSplit(1.1, float64(i))
			s += lo
		}
		_ = s
	})
}

package gamma

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-specfun/sf"
)

func TestLnGammaTable(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-8, 1e-10)
	for _, tt := range lnGammaTable {
		if got := LnGamma(tt.x); !cmp.Equal(got, tt.want, opt) {
			t.Errorf("LnGamma(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestLnGammaExact(t *testing.T) {
	for _, x := range []float64{1, 2} {
		if got := LnGamma(x); got != 0 {
			t.Errorf("LnGamma(%v) = %v, want exactly 0", x, got)
		}
	}
}

func TestLnGammaSpecialCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"LnGamma(+Inf) = +Inf", math.Inf(1), math.Inf(1)},
		{"LnGamma(0) = NaN", 0, math.NaN()},
		{"LnGamma(-0) = NaN", math.Copysign(0, -1), math.NaN()},
		{"LnGamma(-1) = NaN", -1, math.NaN()},
		{"LnGamma(-2.5) = NaN", -2.5, math.NaN()},
		{"LnGamma(-Inf) = NaN", math.Inf(-1), math.NaN()},
		{"LnGamma(NaN) = NaN", math.NaN(), math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LnGamma(tt.input)
			if !cmp.Equal(got, tt.want, cmpopts.EquateNaNs()) {
				t.Errorf("LnGamma(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLnGammaMatchesStdlib(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-13, 1e-14)
	for x := 0.01; x < 1e6; x *= 1.0137 {
		want, _ := math.Lgamma(x)
		if got := LnGamma(x); !cmp.Equal(got, want, opt) {
			t.Fatalf("LnGamma(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestGammaTable(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-10, 0)
	for _, tt := range gammaTable {
		if got := Gamma(tt.x); !cmp.Equal(got, tt.want, opt) {
			t.Errorf("Gamma(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestGammaReflection(t *testing.T) {
	tests := []struct {
		input float64
		sign  float64
	}{
		{-0.5, -1},
		{-1.5, 1},
		{-2.5, -1},
		{-3.25, 1},
		{-10.5, -1},
		{-11.5, 1},
		{-1e-300, -1},
		{-0.9999999, -1},
		{-1.0000001, 1},
	}

	opt := cmpopts.EquateApprox(1e-13, 0)
	for _, tt := range tests {
		got := Gamma(tt.input)
		if math.Copysign(1, got) != tt.sign {
			t.Errorf("Gamma(%v) = %v, want sign %v", tt.input, got, tt.sign)
		}
		if tt.input == -1e-300 {
			if !cmp.Equal(got, -1e300, opt) {
				t.Errorf("Gamma(%v) = %v, want -1e300", tt.input, got)
			}
			continue
		}
		if want := math.Gamma(tt.input); !cmp.Equal(got, want, cmpopts.EquateApprox(1e-9, 0)) {
			t.Errorf("Gamma(%v) = %v, want %v", tt.input, got, want)
		}
	}
}

func TestGammaMatchesStdlib(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-12, 0)
	for x := -20.375; x < 170; x += 0.5 {
		want := math.Gamma(x)
		if got := Gamma(x); !cmp.Equal(got, want, opt) {
			t.Errorf("Gamma(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestGammaSpecialCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"Gamma(0) = NaN", 0, math.NaN()},
		{"Gamma(-0) = NaN", math.Copysign(0, -1), math.NaN()},
		{"Gamma(-1) = NaN", -1, math.NaN()},
		{"Gamma(-170) = NaN", -170, math.NaN()},
		{"Gamma(-2^60) = NaN", -0x1p60, math.NaN()},
		{"Gamma(-Inf) = NaN", math.Inf(-1), math.NaN()},
		{"Gamma(NaN) = NaN", math.NaN(), math.NaN()},
		{"Gamma(+Inf) = +Inf", math.Inf(1), math.Inf(1)},
		{"Gamma(172) = +Inf", 172, math.Inf(1)},
		{"Gamma(-200.5) underflows", -200.5, 0},
		{"Gamma(-180.5) underflows", -180.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gamma(tt.input)
			if !cmp.Equal(got, tt.want, cmpopts.EquateNaNs()) {
				t.Errorf("Gamma(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGammaSubnormal(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{-170.5, -3.312739521538679e-308},
		{-171.5, 1.93162654317124e-310},
		{-175.5, 2.1075e-319},
	}

	opt := cmpopts.EquateApprox(1e-10, 1e-321)
	for _, tt := range tests {
		if got := Gamma(tt.input); !cmp.Equal(got, tt.want, opt) {
			t.Errorf("Gamma(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if got := Gamma(-177.25); !(got > 0) {
		t.Errorf("Gamma(-177.25) = %v, want a positive subnormal", got)
	}
}

func TestGammaMatchesLnGamma(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-10, 0)
	for x := 1e-3; x < 171; x *= 1.07 {
		if got, want := Gamma(x), math.Exp(LnGamma(x)); !cmp.Equal(got, want, opt) {
			t.Errorf("Gamma(%v) = %v, exp(LnGamma) = %v", x, got, want)
		}
	}
}

func TestGammaRegimes(t *testing.T) {
	if err := gammaRegimes.Validate(); err != nil {
		t.Error(err)
	}
	if err := incGammaSplit.Validate(); err != nil {
		t.Error(err)
	}
	if err := incGammaLarge.Validate(); err != nil {
		t.Error(err)
	}
	if err := invGuess.Validate(); err != nil {
		t.Error(err)
	}
}

func TestVec(t *testing.T) {
	v := sf.Load([]float64{0.5, 1, 2.5, 10})
	n := v.NumLanes()
	xs := v.Data()

	checks := []struct {
		name string
		got  sf.Vec[float64]
		fn   func(float64) float64
	}{
		{"LnGammaVec", LnGammaVec(v), LnGamma},
		{"GammaVec", GammaVec(v), Gamma},
		{"GammaPVec", GammaPVec(2, v), func(x float64) float64 { return GammaP(2, x) }},
		{"GammaQVec", GammaQVec(2, v), func(x float64) float64 { return GammaQ(2, x) }},
	}
	for _, c := range checks {
		want := make([]float64, n)
		for i, x := range xs {
			want[i] = c.fn(x)
		}
		if diff := cmp.Diff(want, c.got.Data()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}

	ps := sf.Load([]float32{0.1, 0.5})
	got := InvGammaPVec(3, ps).Data()
	for i, p := range ps.Data() {
		if want := float32(InvGammaP(float64(p), 3)); got[i] != want {
			t.Errorf("InvGammaPVec lane %d = %v, want %v", i, got[i], want)
		}
	}
}

func BenchmarkLnGamma(b *testing.B) {
	b.ReportAllocs()
	var s float64
	for i := 0; i < b.N; i++ {
		s += LnGamma(0.5 + float64(i&1023))
	}
	_ = s
}

func BenchmarkGamma(b *testing.B) {
	b.ReportAllocs()
	var s float64
	for i := 0; i < b.N; i++ {
		s += Gamma(-10.5 + float64(i&31))
	}
	_ = s
}

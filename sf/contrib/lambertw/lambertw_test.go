package lambertw

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-specfun/sf"
	"github.com/ajroetker/go-specfun/sf/regime"
)

// branchPoint is -1/e as written in decimal; it parses to negInvE.
const branchPoint = -0.36787944117144232

var w0Table = []struct{ x, want float64 }{
	{1.00000000000000e-01, 9.12765271608623e-02},
	{2.00000000000000e-01, 1.68915973499110e-01},
	{5.00000000000000e-01, 3.51733711249196e-01},
	{1.00000000000000e+00, 5.67143290409784e-01},
	{1.50000000000000e+00, 7.25861357766226e-01},
	{2.00000000000000e+00, 8.52605502013725e-01},
	{2.50000000000000e+00, 9.58586356728703e-01},
	{3.00000000000000e+00, 1.04990889496404e+00},
	{4.00000000000000e+00, 1.20216787319704e+00},
	{5.00000000000000e+00, 1.32672466524220e+00},
	{1.00000000000000e+01, 1.74552800274070e+00},
	{2.00000000000000e+01, 2.20500327802406e+00},
	{5.00000000000000e+01, 2.86089017798221e+00},
	{2.50000000000000e-01, 2.03888354702240e-01},
	{7.50000000000000e-01, 4.69150210694988e-01},
	{1.00000000000000e-05, 9.99990000149997e-06},
	{1.00000000000000e-10, 9.99999999900000e-11},
	{1.00000000000000e+05, 9.28457142862211e+00},
	{1.00000000000000e+10, 2.00286854133050e+01},
	{1.00000000000000e+308, 7.02641362034107e+02},
}

var wm1Table = []struct{ x, want float64 }{
	{-1.62330466849397e-01, -2.87373297576420e+00},
	{-1.41318890794931e-02, -6.06123496778854e+00},
	{-1.78131724758206e-01, -2.72926392333150e+00},
	{-1.03843592031058e-01, -3.52465080303420e+00},
	{-3.64876111085733e-01, -1.13356447829203e+00},
	{-5.46821782149597e-02, -4.38423187070222e+00},
	{-3.63270038872334e-01, -1.16731536489767e+00},
	{-1.02171094066010e-02, -6.44736274096470e+00},
	{-2.37699099525656e-01, -2.24582072744266e+00},
	{-3.03767654679841e-01, -1.75258268173280e+00},
	{-1.00000000000000e-03, -9.11800647040274e+00},
	{-3.10000000000000e-05, -1.29420012897721e+01},
	{-1.00000000000000e-100, -2.35721158875685e+02},
}

func TestW0Table(t *testing.T) {
	full := cmpopts.EquateApprox(1e-14, 0)
	sp := cmpopts.EquateApprox(1e-7, 0)
	for _, tt := range w0Table {
		if got := W0(tt.x); !cmp.Equal(got, tt.want, full) {
			t.Errorf("W0(%v) = %v, want %v", tt.x, got, tt.want)
		}
		if got := SpW0(tt.x); !cmp.Equal(got, tt.want, sp) {
			t.Errorf("SpW0(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestWm1Table(t *testing.T) {
	full := cmpopts.EquateApprox(1e-14, 0)
	sp := cmpopts.EquateApprox(1e-7, 0)
	for _, tt := range wm1Table {
		if got := Wm1(tt.x); !cmp.Equal(got, tt.want, full) {
			t.Errorf("Wm1(%v) = %v, want %v", tt.x, got, tt.want)
		}
		if got := SpWm1(tt.x); !cmp.Equal(got, tt.want, sp) {
			t.Errorf("SpWm1(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSpecialCases(t *testing.T) {
	nan := math.NaN()
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"W0(-1) = NaN", W0, -1, nan},
		{"SpW0(-1) = NaN", SpW0, -1, nan},
		{"Wm1(-1) = NaN", Wm1, -1, nan},
		{"SpWm1(-1) = NaN", SpWm1, -1, nan},
		{"W0(branch) = -1", W0, branchPoint, -1},
		{"Wm1(branch) = -1", Wm1, branchPoint, -1},
		{"SpW0(branch) = -1", SpW0, branchPoint, -1},
		{"SpWm1(branch) = -1", SpWm1, branchPoint, -1},
		{"W0(0) = 0", W0, 0, 0},
		{"W0(+Inf) = +Inf", W0, math.Inf(1), math.Inf(1)},
		{"SpW0(+Inf) = +Inf", SpW0, math.Inf(1), math.Inf(1)},
		{"W0(-Inf) = NaN", W0, math.Inf(-1), nan},
		{"W0(NaN) = NaN", W0, nan, nan},
		{"SpW0(NaN) = NaN", SpW0, nan, nan},
		{"Wm1(NaN) = NaN", Wm1, nan, nan},
		{"SpWm1(NaN) = NaN", SpWm1, nan, nan},
		{"Wm1(0) = NaN", Wm1, 0, nan},
		{"Wm1(-0) = NaN", Wm1, negZero, nan},
		{"Wm1(1) = NaN", Wm1, 1, nan},
		{"Wm1(-Inf) = NaN", Wm1, math.Inf(-1), nan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.in)
			if !cmp.Equal(got, tt.want, cmpopts.EquateNaNs()) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if got := W0(negZero); got != 0 || !math.Signbit(got) {
		t.Errorf("W0(-0) = %v, want -0", got)
	}
	if got := Wm1(-5e-324); math.IsNaN(got) || got > -750 {
		t.Errorf("Wm1(-5e-324) = %v, want about -751", got)
	}
}

func TestWm1Subnormal(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{-5e-324, -751.061559539879},
		{-1e-315, -731.9099617980304},
		{-1e-310, -720.3811592879879},
		{-1e-300, -697.3227762954601},
	}

	opt := cmpopts.EquateApprox(1e-14, 0)
	for _, tt := range tests {
		if got := Wm1(tt.input); !cmp.Equal(got, tt.want, opt) {
			t.Errorf("Wm1(%v) = %v, want %v", tt.input, got, tt.want)
		}
		if got := SpWm1(tt.input); !cmp.Equal(got, tt.want, cmpopts.EquateApprox(1e-12, 0)) {
			t.Errorf("SpWm1(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}

	// Every halving of x lowers Wm1.
	prev := Wm1(-0x1p-1022)
	for x := -0x1p-1023; x <= -0x1p-1074; x /= 2 {
		got := Wm1(x)
		if !(got < prev) {
			t.Fatalf("Wm1(%v) = %v, not below Wm1(%v) = %v", x, got, 2*x, prev)
		}
		prev = got
	}
}

func TestNearBranchPoint(t *testing.T) {
	// Approaching -1/e from above both branches tend to -1.
	for _, d := range []float64{1e-16, 1e-12, 1e-8, 1e-4} {
		x := negInvE + d
		w, m := W0(x), Wm1(x)
		if !(w > -1 && w < -1+1e-1) {
			t.Errorf("W0(-1/e + %g) = %v, want just above -1", d, w)
		}
		if !(m < -1 && m > -1-1e-1) {
			t.Errorf("Wm1(-1/e + %g) = %v, want just below -1", d, m)
		}
	}
}

func TestW0RoundTrip(t *testing.T) {
	for w := -0.5; w <= 100; w += 0.037 {
		x := w * math.Exp(w)
		if got := W0(x); math.Abs(got-w) > 1e-13 {
			t.Errorf("W0(%v) = %v, want %v", x, got, w)
		}
	}
}

func TestWm1RoundTrip(t *testing.T) {
	opt := cmpopts.EquateApprox(1e-14, 0)
	for w := -700.0; w <= -1.5; w += 0.173 {
		x := w * math.Exp(w)
		if got := Wm1(x); !cmp.Equal(got, w, opt) {
			t.Errorf("Wm1(%v) = %v, want %v", x, got, w)
		}
	}
}

func TestPartitions(t *testing.T) {
	for _, p := range []*regime.Partition{&nearBranch, &w0Guess, &wm1Guess} {
		if err := p.Validate(); err != nil {
			t.Error(err)
		}
	}
}

func TestVec(t *testing.T) {
	v := sf.Load([]float64{-0.3, -0.01, 0.5, 40})
	xs := v.Data()

	checks := []struct {
		name string
		got  sf.Vec[float64]
		fn   func(float64) float64
	}{
		{"W0Vec", W0Vec(v), W0},
		{"Wm1Vec", Wm1Vec(v), Wm1},
		{"SpW0Vec", SpW0Vec(v), SpW0},
		{"SpWm1Vec", SpWm1Vec(v), SpWm1},
	}
	for _, c := range checks {
		want := make([]float64, len(xs))
		for i, x := range xs {
			want[i] = c.fn(x)
		}
		if diff := cmp.Diff(want, c.got.Data(), cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func BenchmarkW0(b *testing.B) {
	xs := []float64{-0.3, 0.2, 3, 1e6}
	b.ReportAllocs()
	var s float64
	for i := 0; i < b.N; i++ {
		s += W0(xs[i%len(xs)])
	}
	_ = s
}

func BenchmarkSpW0(b *testing.B) {
	xs := []float64{-0.3, 0.2, 3, 1e6}
	b.ReportAllocs()
	var s float64
	for i := 0; i < b.N; i++ {
		s += SpW0(xs[i%len(xs)])
	}
	_ = s
}

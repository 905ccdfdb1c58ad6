package faddeeva

//go:generate go run ../../../cmd/sfgen --out tables_gen.go

import (
	"math"

	"github.com/ajroetker/go-specfun/sf"
)

// Panel layout of the interpolation tables. Each octave [2^(e-1), 2^e) is
// cut into panelsPerOctave equal panels; a panel stores its polynomial in
// the local variable t ∈ [-1, 1] as qCoeffs low-order coefficients in the
// Q table and pCoeffs higher ones in the P table.
const (
	panelsPerOctave = 64
	panelOffset     = 64 // slot of the first panel of the [0.5, 1) octave
	panelCount      = 288
	pCoeffs         = 8
	qCoeffs         = 2
)

// panelIndex maps x ∈ [0.5, 12) to its panel and the local variable t.
// ok is false for any x outside the tables.
func panelIndex(x float64) (idx int, t float64, ok bool) {
	frac, exp := sf.Frexp(x)
	slot := int(2 * panelsPerOctave * frac)
	idx = exp*panelsPerOctave + slot - panelOffset
	if idx < 0 || idx >= panelCount {
		return 0, 0, false
	}
	t = 4*panelsPerOctave*frac - float64(2*slot+1)
	return idx, t, true
}

// evalPanel evaluates the panel polynomial for x ∈ [0.5, 12) from the
// given P and Q tables, returning NaN outside that range.
func evalPanel(p, q []float64, x float64) float64 {
	i, t, ok := panelIndex(x)
	if !ok {
		return math.NaN()
	}
	c := p[i*pCoeffs:][:pCoeffs]
	s := c[pCoeffs-1]
	for k := pCoeffs - 2; k >= 0; k-- {
		s = s*t + c[k]
	}
	return q[qCoeffs*i] + t*(q[qCoeffs*i+1]+t*s)
}

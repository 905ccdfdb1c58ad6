package main

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-specfun/sf/contrib/workerpool"
)

// Panel layout of sf/contrib/faddeeva: 64 panels per octave starting at
// 0.5, each interpolated by a degree 9 polynomial in t ∈ [-1, 1].
const (
	panelsPerOctave = 64
	panelOffset     = 64
	panelCount      = 288
	nodeCount       = 10
	qCoeffs         = 2
)

type generator struct {
	arith
	sqrtPi decimal.Decimal
	nodes  [nodeCount]decimal.Decimal
	cheb   [nodeCount][nodeCount]decimal.Decimal // T_k(nodes[j])
	mono   [nodeCount][nodeCount]int64           // coefficient of t^m in T_k
}

func newGenerator(places int32) *generator {
	g := &generator{arith: arith{places: places}}
	pi := g.pi()
	g.sqrtPi = g.sqrt(pi)

	twoN := decimal.NewFromInt(2 * nodeCount)
	for j := range nodeCount {
		g.nodes[j] = g.cos(g.div(pi.Mul(decimal.NewFromInt(int64(2*j+1))), twoN))
	}
	for j, t := range g.nodes {
		g.cheb[0][j] = one
		g.cheb[1][j] = t
		for k := 2; k < nodeCount; k++ {
			g.cheb[k][j] = g.mul(t.Add(t), g.cheb[k-1][j]).Sub(g.cheb[k-2][j])
		}
	}

	g.mono[0][0] = 1
	g.mono[1][1] = 1
	for k := 2; k < nodeCount; k++ {
		for m := range nodeCount {
			c := -g.mono[k-2][m]
			if m > 0 {
				c += 2 * g.mono[k-1][m-1]
			}
			g.mono[k][m] = c
		}
	}
	return g
}

// panelBounds returns the interval [lo, hi) covered by panel idx.
func panelBounds(idx int) (lo, hi float64) {
	scale := math.Ldexp(1, idx/panelsPerOctave)
	slot := idx%panelsPerOctave + panelOffset
	return float64(slot) / 128 * scale, float64(slot+1) / 128 * scale
}

// fit interpolates f at the Chebyshev nodes of panel idx and returns the
// monomial coefficients of the interpolant in the panel variable
// t = 256·x/2^e - (2·slot+1).
func (g *generator) fit(f func(decimal.Decimal) decimal.Decimal, idx int) [nodeCount]decimal.Decimal {
	slot := idx%panelsPerOctave + panelOffset
	h := g.div(decimal.NewFromInt(1<<(idx/panelsPerOctave)), decimal.NewFromInt(256))
	c := h.Mul(decimal.NewFromInt(int64(2*slot + 1)))

	var fv [nodeCount]decimal.Decimal
	for j, t := range g.nodes {
		fv[j] = f(c.Add(g.mul(h, t)))
	}

	n := decimal.NewFromInt(nodeCount)
	var coeffs [nodeCount]decimal.Decimal
	for k := range nodeCount {
		var s decimal.Decimal
		for j := range nodeCount {
			s = s.Add(g.mul(fv[j], g.cheb[k][j]))
		}
		if k > 0 {
			s = s.Add(s)
		}
		ak := g.div(s, n)
		for m, cm := range g.mono[k] {
			if cm != 0 {
				coeffs[m] = coeffs[m].Add(ak.Mul(decimal.NewFromInt(cm)))
			}
		}
	}
	return coeffs
}

type table struct {
	name   string // variable prefix
	title  string // function name used in the doc comments
	panels [][nodeCount]float64
}

func (g *generator) build(pool *workerpool.Pool, name, title string, f func(decimal.Decimal) decimal.Decimal) table {
	t := table{name: name, title: title, panels: make([][nodeCount]float64, panelCount)}
	pool.ParallelForAtomic(panelCount, func(idx int) {
		for m, c := range g.fit(f, idx) {
			t.panels[idx][m], _ = c.Float64()
		}
	})
	return t
}

// emit renders the tables as the tables_gen.go source of package faddeeva.
func emit(tables []table) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by sfgen. DO NOT EDIT.\n\npackage faddeeva\n")
	for _, t := range tables {
		writeBlock(&b, t, "P", "pCoeffs", qCoeffs, nodeCount,
			fmt.Sprintf("%sP holds the degree 2..9 monomial coefficients of each %s panel.", t.name, t.title))
		writeBlock(&b, t, "Q", "qCoeffs", 0, qCoeffs,
			fmt.Sprintf("%sQ holds the degree 0 and 1 coefficients of each %s panel.", t.name, t.title))
	}
	return imports.Process("tables_gen.go", b.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

func writeBlock(b *bytes.Buffer, t table, suffix, per string, from, to int, doc string) {
	fmt.Fprintf(b, "\n// %s\nvar %s%s = [panelCount * %s]float64{\n", doc, t.name, suffix, per)
	for idx, row := range t.panels {
		lo, hi := panelBounds(idx)
		fmt.Fprintf(b, "\t// [%s, %s)\n", formatFloat(lo), formatFloat(hi))
		for i := from; i < to; i += 4 {
			b.WriteByte('\t')
			for j := i; j < min(i+4, to); j++ {
				if j > i {
					b.WriteByte(' ')
				}
				b.WriteString(formatFloat(row[j]))
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
	}
	b.WriteString("}\n")
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var jsonOut = jsoniter.Config{
	IndentionStep: 2,
	EscapeHTML:    true,
	SortMapKeys:   true,
}.Froze()

// number is a float64 that survives JSON: non-finite values are written as
// the strings "NaN", "+Inf" and "-Inf".
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type point struct {
	X     number `json:"x"`
	Value number `json:"value"`
}

// result is the JSON document written by eval and grid.
type result struct {
	Function string  `json:"function"`
	A        *number `json:"a,omitempty"`
	Points   []point `json:"points"`
}

func newResult(f function, a float64, xs, ys []float64) result {
	r := result{Function: f.Name, Points: make([]point, len(xs))}
	if f.Shape {
		an := number(a)
		r.A = &an
	}
	for i := range xs {
		r.Points[i] = point{X: number(xs[i]), Value: number(ys[i])}
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// write prints r in the selected format.
func (a *app) write(w io.Writer, r result) error {
	if a.format == formatJSON {
		return jsonOut.NewEncoder(w).Encode(r)
	}
	for _, p := range r.Points {
		if _, err := fmt.Fprintf(w, "%s %s\n", formatFloat(float64(p.X)), formatFloat(float64(p.Value))); err != nil {
			return err
		}
	}
	return nil
}

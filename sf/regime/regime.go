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

// Package regime describes how an evaluator splits its input range into
// intervals, each served by one approximation strategy.
//
// A Partition is plain data: an ordered list of upper breakpoints plus the
// strategy used past the last one. Evaluators keep their partitions in
// package variables and dispatch with Select, so the breakpoints can be
// listed, validated and tested without running any arithmetic:
//
//	var erfcxSmall = regime.Partition{
//		Name: "erfcx",
//		Regimes: []regime.Regime{
//			{Below: 0.003, Strategy: regime.Strategy{Kind: regime.Series, Order: 6}},
//			{Below: 0.51, Strategy: regime.Strategy{Kind: regime.Series, Order: 26}},
//			{Below: 12, Strategy: regime.Strategy{Kind: regime.Interpolation, Order: 288}},
//		},
//		Beyond: regime.Strategy{Kind: regime.Asymptotic, Order: 10},
//	}
//
//	switch s := erfcxSmall.Select(math.Abs(x)); s.Kind {
//	case regime.Series:
//		...
//	}
package regime

import (
	"errors"
	"fmt"
	"math"
)

// Kind names an approximation technique.
type Kind int

const (
	// Exact marks a closed-form or saturated result (a pole, an overflow).
	Exact Kind = iota

	// Series is a truncated power series; Order is the highest term index.
	Series

	// ContinuedFraction is a continued fraction evaluated to convergence.
	ContinuedFraction

	// Interpolation is a panelled polynomial fit; Order is the panel count.
	Interpolation

	// Rational is a closed-form rational or log-rational estimate.
	Rational

	// Asymptotic is a truncated asymptotic expansion; Order is the number
	// of correction terms after the leading one.
	Asymptotic

	// Reflection maps the input onto another regime through an identity.
	Reflection

	// Iteration is a root refinement loop; Order is the step budget.
	Iteration

	// Quadrature is a fixed Gauss rule over a finite window; Order is the
	// node count.
	Quadrature
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Series:
		return "series"
	case ContinuedFraction:
		return "continued-fraction"
	case Interpolation:
		return "interpolation"
	case Rational:
		return "rational"
	case Asymptotic:
		return "asymptotic"
	case Reflection:
		return "reflection"
	case Iteration:
		return "iteration"
	case Quadrature:
		return "quadrature"
	default:
		return "unknown"
	}
}

// Strategy is a technique plus its size parameter.
type Strategy struct {
	Kind  Kind
	Order int
}

func (s Strategy) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Order)
}

// Regime is the strategy used for inputs below Below that are not claimed
// by an earlier regime.
type Regime struct {
	Below float64
	Strategy
}

// Partition is an ordered set of regimes covering the real line.
// A breakpoint value belongs to the regime above it.
type Partition struct {
	Name    string
	Regimes []Regime
	Beyond  Strategy
}

var (
	// ErrEmpty is returned by Validate for a partition without breakpoints.
	ErrEmpty = errors.New("regime: partition has no breakpoints")

	// ErrUnordered is returned by Validate when breakpoints do not increase.
	ErrUnordered = errors.New("regime: breakpoints are not strictly increasing")

	// ErrNonFinite is returned by Validate for a NaN or infinite breakpoint.
	ErrNonFinite = errors.New("regime: breakpoint is not finite")
)

// Index returns the position of the regime that owns x, or len(p.Regimes)
// when x is at or past the last breakpoint. NaN compares false against
// every breakpoint and therefore lands past the end; evaluators screen NaN
// before selecting.
func (p *Partition) Index(x float64) int {
	for i := range p.Regimes {
		if x < p.Regimes[i].Below {
			return i
		}
	}
	return len(p.Regimes)
}

// Select returns the strategy that owns x.
func (p *Partition) Select(x float64) Strategy {
	if i := p.Index(x); i < len(p.Regimes) {
		return p.Regimes[i].Strategy
	}
	return p.Beyond
}

// Breakpoints returns the breakpoints in order.
func (p *Partition) Breakpoints() []float64 {
	out := make([]float64, len(p.Regimes))
	for i, r := range p.Regimes {
		out[i] = r.Below
	}
	return out
}

// Validate checks that the breakpoints are finite and strictly increasing.
func (p *Partition) Validate() error {
	if len(p.Regimes) == 0 {
		return fmt.Errorf("%s: %w", p.Name, ErrEmpty)
	}
	prev := math.Inf(-1)
	for i, r := range p.Regimes {
		if math.IsNaN(r.Below) || math.IsInf(r.Below, 0) {
			return fmt.Errorf("%s: regime %d: %w", p.Name, i, ErrNonFinite)
		}
		if r.Below <= prev {
			return fmt.Errorf("%s: regime %d (%v after %v): %w", p.Name, i, r.Below, prev, ErrUnordered)
		}
		prev = r.Below
	}
	return nil
}

// String renders the partition as "name: [-Inf, b0) kind(order), ...".
func (p *Partition) String() string {
	s := p.Name + ":"
	lo := math.Inf(-1)
	for _, r := range p.Regimes {
		s += fmt.Sprintf(" [%g, %g) %s,", lo, r.Below, r.Strategy)
		lo = r.Below
	}
	return s + fmt.Sprintf(" [%g, +Inf) %s", lo, p.Beyond)
}

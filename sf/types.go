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

// Package sf holds the floating-point primitives shared by the special
// function families under sf/contrib: exact mantissa/exponent
// decomposition, sign transfer, error-free products, and a small lane
// batch type used by the vector entry points.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-specfun/sf"
//
//	frac, exp := sf.Frexp(12.5) // 0.78125, 4
//	hi, lo := sf.TwoProd(x, x)  // hi+lo == x*x exactly
//
//	v := sf.Load(points)
//	out := sf.Map(v, faddeeva.Erfcx)
//	sf.Store(out, results)
package sf

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	constraints.Float
}

// Vec is a batch of lanes evaluated together by the Vec entry points of
// the contrib packages. Lanes are processed one at a time in float64;
// the width only fixes how many elements a Load consumes.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Floats] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the lanes as a slice. The slice aliases the vector.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
// This is the method form of the sf.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

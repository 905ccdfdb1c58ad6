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

// Package faddeeva evaluates the Faddeeva function on the real axis and
// the error functions derived from it.
//
// ImWOfX returns Im w(x) for real x, the scaled Dawson integral, and
// Erfcx returns exp(x²)·erfc(x). Both split |x| into three regimes:
//
//	|x| < 0.51        Maclaurin series, fewer terms as |x| shrinks
//	0.51 <= |x| < 12  288 polynomial panels, 64 per octave
//	|x| >= 12         asymptotic series in 1/x²
//
// The panel tables in tables_gen.go are produced by cmd/sfgen.
//
// Dawson, Erf and Erfc are thin wrappers over the two evaluators.
//
// Special cases follow IEEE-754: NaN in, NaN out. No function panics.
package faddeeva

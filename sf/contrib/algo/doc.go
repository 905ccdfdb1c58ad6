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

// Package algo applies the scalar evaluators of sf/contrib to whole slices.
//
// # Transform API
//
//   - Transform64(input, output, fn) for one-argument functions
//   - Transform64x2(a, input, output, fn) for two-argument functions with a
//     shared first argument, such as gamma.GammaP
//   - Apply(input, output, vecFn) for the Vec forms, one batch at a time
//   - ParallelTransform64 and ParallelTransform64x2 split the work over a
//     workerpool.Pool
//
// Every transform processes min(len(input), len(output)) elements.
//
// # Grids
//
// Grid builds the evaluation points from, from+step, ... up to and
// including to. Points are computed as from + i·step rather than by
// repeated addition, so the last point does not drift.
//
// # Example Usage
//
//	xs, err := algo.Grid(-5, 5, 0.01)
//	if err != nil {
//	    return err
//	}
//	ys := make([]float64, len(xs))
//	algo.ParallelTransform64(pool, xs, ys, faddeeva.Erfcx)
//
//	ps := make([]float64, len(xs))
//	algo.Transform64x2(2.5, xs, ps, gamma.GammaP)
package algo

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

// Command sfgen regenerates the interpolation tables of sf/contrib/faddeeva.
//
// Usage:
//
//	sfgen --out sf/contrib/faddeeva/tables_gen.go
//	sfgen --digits 200 --workers 8 --out -   # write to stdout
//
// Or via go:generate in the faddeeva package:
//
//	//go:generate go run ../../../cmd/sfgen --out tables_gen.go
//
// For every panel of [0.5, 12), 64 per octave, Im w(x) and erfcx(x) are
// evaluated in decimal arithmetic at the 10 Chebyshev nodes of the panel.
// The interpolating Chebyshev series is converted to monomials in the
// panel variable t ∈ [-1, 1] and rounded to float64 once at the end.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

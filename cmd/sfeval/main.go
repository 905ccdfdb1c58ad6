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

// Command sfeval evaluates the special functions from the command line.
//
// Usage:
//
//	sfeval eval erfcx 0.1 2 -3
//	sfeval eval --a 2.5 gammp 0.5 1 10
//	sfeval grid w0 --from -0.3 --to 10 --step 0.01 --workers 8 --format json
//	sfeval list
//	sfeval cpu
//
// Flags of eval go before the function name, so that negative points
// such as -3 are never taken for flags.
//
// Results are printed one "x value" pair per line, or as a JSON document
// with --format json. NaN and infinities are written as the strings
// "NaN", "+Inf" and "-Inf" in JSON.
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

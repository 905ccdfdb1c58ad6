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

//go:build amd64

package sf

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// math.FMA is only a single instruction when the CPU has FMA3; without
	// it the runtime emulates the fused operation in software, which is
	// slower than splitting the operands ourselves.
	if !cpu.X86.HasFMA {
		setScalarMode()
		return
	}

	currentLevel = DispatchFMA
	switch {
	case cpu.X86.HasAVX512F:
		currentWidth = 64
		currentName = "avx512-fma"
	case cpu.X86.HasAVX2:
		currentWidth = 32
		currentName = "avx2-fma"
	default:
		currentWidth = 16
		currentName = "fma"
	}
}

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

package hwy

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
	} else {
		detectCPUFeatures()
	}
	resolveStrategy()
}

func detectCPUFeatures() {
	switch {
	case hasAVX512():
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	case cpu.X86.HasSSE2:
		currentLevel = DispatchSSE2
		currentWidth = 16
	default:
		setScalarMode()
	}
}

// hasAVX512 requires both the foundation and the byte/word extension: the
// masked compares used by early-exit loops over 8/16-bit lanes need BW.
// x/sys/cpu only reports OS support for the ZMM state, so cpuid is asked to
// confirm the feature bits as well.
func hasAVX512() bool {
	if !cpu.X86.HasAVX512F || !cpu.X86.HasAVX512BW {
		return false
	}
	return cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW)
}

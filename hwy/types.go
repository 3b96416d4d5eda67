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

// Package hwy detects the SIMD capabilities of the host and fixes, once per
// process, the strategy the batch kernels in hwy/contrib/batch use for their
// search loops.
//
// Detection runs in init(). The dispatch level comes from CPU feature bits;
// the search strategy then follows, in order of precedence:
//
//   - the hwy_earlyexit or hwy_noearlyexit build tag,
//   - the HWY_EARLY_EXIT environment variable,
//   - the level's default (early exit on scalar and predicated targets).
//
// HWY_NO_SIMD forces the scalar level regardless of CPU capabilities.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-hwybatch/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.CurrentStrategy())
//	if hwy.EarlyExitCapable() {
//	    // search kernels stop at the first match
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

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

// Package batch provides sequential batch kernels over contiguous ranges:
// element-wise application, existence and first-match search, counting,
// mask computation, stream compaction, fill/generate, adjacent-pair search,
// subsequence search and fused transform-reduction.
//
// The kernels are single threaded. They are written as fixed-size blocks with
// branch-free bodies so that each block maps onto SIMD lanes; a caller that
// splits a large range across goroutines calls one kernel per partition and
// combines the per-partition results itself.
//
// # Ranges and results
//
// A range is a slice. Kernels that search return an index into it, and
// len(s) when nothing matches, so that per-partition results combine with min.
// Output and mask slices are owned by the caller and must hold at least
// len(src) elements; a shorter one panics before any element is written.
// Kernels never allocate.
//
// # Search strategy
//
// AnyOf, FindIf, FindIf2 and AdjacentFind each have two implementations. The
// one used is fixed at startup by [hwy.EarlyExitCapable]:
//
//   - early exit: a single pass that returns at the first match.
//   - blocked: predicates are evaluated for a whole block into a lane buffer
//     while OR-reducing into a found flag; only a block with a hit is
//     re-scanned to locate the first matching lane.
//
// Both strategies return identical results for side-effect-free callables.
//
// # Callables
//
// Predicates, operations and generators must not depend on invocation order:
// each is called exactly once per element, but not necessarily left to right.
// A panic inside a callable propagates to the caller unchanged.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-hwybatch/hwy/contrib/batch"
//
//	data := []int{1, 2, 2, 3, 3, 3, 4}
//	out := make([]int, len(data))
//	n := batch.UniqueCopy(data, out, batch.EqualTo[int])
//	// out[:n] == [1 2 3 4]
//
//	idx := batch.FindIfP(data, batch.GreaterThan[int]{Threshold: 2})
//	// idx == 3
package batch

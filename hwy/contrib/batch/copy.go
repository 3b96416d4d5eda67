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

package batch

// Stream compaction kernels. Each keeps an output counter k that starts at
// zero and only ever increments, by one, on an element that passes its test;
// k <= i holds at every input index i, so writes stay inside dst[:len(src)].

// CopyIf copies the elements of src for which pred returns true into
// consecutive positions of dst, preserving their order, and returns the
// number of elements written. dst must hold at least len(src) elements.
//
// Example: keep only positive values
//
//	n := CopyIf(src, dst, func(v float32) bool { return v > 0 })
//	kept := dst[:n]
func CopyIf[T any](src, dst []T, pred func(T) bool) int {
	mustHold("CopyIf", "dst", len(dst), len(src))
	dst = dst[:len(src)]
	k := 0
	for _, v := range src {
		if pred(v) {
			dst[k] = v
			k++
		}
	}
	return k
}

// UniqueCopy copies src into dst dropping every element equivalent, per eq,
// to its predecessor in src, and returns the number of elements written.
// The first element is always copied. dst must hold at least len(src)
// elements.
func UniqueCopy[T any](src, dst []T, eq func(cur, prev T) bool) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	mustHold("UniqueCopy", "dst", len(dst), n)
	dst = dst[:n]

	dst[0] = src[0]
	k := 1
	for i := 1; i < n; i++ {
		if !eq(src[i], src[i-1]) {
			dst[k] = src[i]
			k++
		}
	}
	return k
}

// CopyByMask copies src[i] for every i with mask[i] set into consecutive
// positions of dst and returns the number of elements written. The mask is
// usually produced by CalcMask1 or CalcMask2. mask and dst must hold at
// least len(src) elements.
func CopyByMask[T any](src []T, mask []bool, dst []T) int {
	n := len(src)
	mustHold("CopyByMask", "mask", len(mask), n)
	mustHold("CopyByMask", "dst", len(dst), n)
	mask = mask[:n]
	dst = dst[:n]
	k := 0
	for i, v := range src {
		if mask[i] {
			dst[k] = v
			k++
		}
	}
	return k
}

// CopyN copies all of src into the front of dst and returns len(src).
// Unlike the built-in copy it does not truncate: dst must hold at least
// len(src) elements.
func CopyN[T any](src, dst []T) int {
	mustHold("CopyN", "dst", len(dst), len(src))
	return copy(dst, src)
}

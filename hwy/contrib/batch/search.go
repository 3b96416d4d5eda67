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

// Search returns the start of a window of haystack equal, element by element
// under eq, to needle. eq receives the haystack element first.
//
// With firstOccurrence set the leftmost match is returned; otherwise the
// rightmost one. An empty needle, a needle longer than haystack, or no match
// returns len(haystack).
//
// Candidate windows are tried from the last valid start back to 0. Each
// window is compared with FindIf2 looking for a mismatch, so the comparison
// itself runs in blocks. Worst case cost is
// O((len(haystack)-len(needle)+1) * len(needle)).
//
// Example:
//
//	Search([]int{1, 2, 3, 4, 5}, []int{3, 4}, EqualTo[int], true) // 2
func Search[T any](haystack, needle []T, eq func(h, n T) bool, firstOccurrence bool) int {
	n1, n2 := len(haystack), len(needle)
	if n2 < 1 || n1 < n2 {
		return n1
	}

	mismatch := func(nv, hv T) bool { return !eq(hv, nv) }
	result := n1
	for i := n1 - n2; i >= 0; i-- {
		if FindIf2(needle, haystack[i:i+n2], mismatch) == n2 {
			result = i
			if !firstOccurrence {
				break
			}
		}
	}
	return result
}

// FindEnd returns the start of the last occurrence of needle in haystack, or
// len(haystack) if there is none.
func FindEnd[T any](haystack, needle []T, eq func(h, n T) bool) int {
	return Search(haystack, needle, eq, false)
}

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

// AdjacentFind returns the first index i such that pred(s[i], s[i+1]) is
// true, or len(s) if there is none (always len(s) when len(s) < 2).
//
// With orSemantic set the caller only asks whether such a pair exists: the
// result is 0 when one does and len(s) otherwise, and the blocked scan skips
// resolving which lane matched.
func AdjacentFind[T any](s []T, pred func(a, b T) bool, orSemantic bool) int {
	if earlyExit {
		return adjacentFindEarlyExit(s, pred, orSemantic)
	}
	return adjacentFindBlocked(s, pred, orSemantic)
}

func adjacentFindEarlyExit[T any](s []T, pred func(a, b T) bool, orSemantic bool) int {
	n := len(s)
	for i := 0; i < n-1; i++ {
		if pred(s[i], s[i+1]) {
			if orSemantic {
				return 0
			}
			return i
		}
	}
	return n
}

func adjacentFindBlocked[T any](s []T, pred func(a, b T) bool, orSemantic bool) int {
	n := len(s)
	if n < 2 {
		return n
	}

	var lane [laneWidth]uint8
	i := 0
	for ; n-i >= laneWidth; i += laneWidth {
		blk := (*[laneWidth]T)(s[i : i+laneWidth])
		var found uint8
		for j := range laneWidth - 1 {
			t := uint8(b2i(pred(blk[j], blk[j+1])))
			lane[j] = t
			found |= t
		}

		// The last lane pairs this block with the first element of the next
		// one, so no pair is lost at a block boundary.
		lane[laneWidth-1] = 0
		if i+laneWidth < n && pred(blk[laneWidth-1], s[i+laneWidth]) {
			lane[laneWidth-1] = 1
			found = 1
		}

		if found != 0 {
			if orSemantic {
				return 0
			}
			return i + firstLane(&lane)
		}
	}

	// Process the remaining pairs
	for ; n-i > 1; i++ {
		if pred(s[i], s[i+1]) {
			if orSemantic {
				return 0
			}
			return i
		}
	}
	return n
}

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

// AnyOf returns true if pred returns true for any element of s.
// It returns false for an empty slice.
func AnyOf[T any](s []T, pred func(T) bool) bool {
	if earlyExit {
		return anyOfEarlyExit(s, pred)
	}
	return anyOfBlocked(s, pred)
}

func anyOfEarlyExit[T any](s []T, pred func(T) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// anyOfBlocked OR-reduces blocks that start at 4 elements and double while
// at least two more blocks of the current size remain; otherwise the next
// block takes whatever is left. Every element is tested at most once, and a
// hit is reported once the block holding it has been fully evaluated.
func anyOfBlocked[T any](s []T, pred func(T) bool) bool {
	block := min(4, len(s))
	for len(s) > 0 {
		flag := 0
		for _, v := range s[:block] {
			flag |= b2i(pred(v))
		}
		if flag != 0 {
			return true
		}

		s = s[block:]
		if len(s) >= block<<1 {
			block <<= 1
		} else {
			block = len(s)
		}
	}
	return false
}

// AllOf returns true if pred returns true for every element of s.
// It returns true for an empty slice.
func AllOf[T any](s []T, pred func(T) bool) bool {
	return !AnyOf(s, func(v T) bool { return !pred(v) })
}

// NoneOf returns true if pred returns false for every element of s.
// This is equivalent to !AnyOf(s, pred).
func NoneOf[T any](s []T, pred func(T) bool) bool {
	return !AnyOf(s, pred)
}

// FindIf returns the index of the first element for which pred returns true,
// or len(s) if there is none.
func FindIf[T any](s []T, pred func(T) bool) int {
	if earlyExit {
		return findIfEarlyExit(s, pred)
	}
	return findIfBlocked(s, pred)
}

func findIfEarlyExit[T any](s []T, pred func(T) bool) int {
	i := 0
	for ; i < len(s); i++ {
		if pred(s[i]) {
			break
		}
	}
	return i
}

func findIfBlocked[T any](s []T, pred func(T) bool) int {
	n := len(s)
	var lane [laneWidth]uint8
	i := 0

	// Process full blocks: evaluate every lane, then tie-break on a hit.
	for ; n-i >= laneWidth; i += laneWidth {
		blk := (*[laneWidth]T)(s[i : i+laneWidth])
		var found uint8
		for j := range laneWidth {
			t := uint8(b2i(pred(blk[j])))
			lane[j] = t
			found |= t
		}
		if found != 0 {
			return i + firstLane(&lane)
		}
	}

	// Keep the remainder scalar
	for ; i < n; i++ {
		if pred(s[i]) {
			return i
		}
	}
	return n
}

// FindIf2 walks a and b in lockstep and returns the first index i for which
// pred(a[i], b[i]) is true, or len(a) if there is none. b must hold at least
// len(a) elements.
func FindIf2[T, U any](a []T, b []U, pred func(T, U) bool) int {
	mustHold("FindIf2", "b", len(b), len(a))
	b = b[:len(a)]
	if earlyExit {
		return findIf2EarlyExit(a, b, pred)
	}
	return findIf2Blocked(a, b, pred)
}

func findIf2EarlyExit[T, U any](a []T, b []U, pred func(T, U) bool) int {
	i := 0
	for ; i < len(a); i++ {
		if pred(a[i], b[i]) {
			break
		}
	}
	return i
}

func findIf2Blocked[T, U any](a []T, b []U, pred func(T, U) bool) int {
	n := len(a)
	b = b[:n]
	var lane [laneWidth]uint8
	i := 0

	for ; n-i >= laneWidth; i += laneWidth {
		blkA := (*[laneWidth]T)(a[i : i+laneWidth])
		blkB := (*[laneWidth]U)(b[i : i+laneWidth])
		var found uint8
		for j := range laneWidth {
			t := uint8(b2i(pred(blkA[j], blkB[j])))
			lane[j] = t
			found |= t
		}
		if found != 0 {
			return i + firstLane(&lane)
		}
	}

	for ; i < n; i++ {
		if pred(a[i], b[i]) {
			return i
		}
	}
	return n
}

// Find returns the index of the first element equal to value, or len(s) if
// not found.
func Find[T comparable](s []T, value T) int {
	return FindIf(s, func(v T) bool { return v == value })
}

// Contains returns true if s contains value.
// This is a convenience wrapper around AnyOf.
func Contains[T comparable](s []T, value T) bool {
	return AnyOf(s, func(v T) bool { return v == value })
}

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

// CalcMask1 sets mask[i] = pred(s[i]) for every index and returns the number
// of true entries. mask must hold at least len(s) elements.
func CalcMask1[T any](s []T, mask []bool, pred func(T) bool) int {
	mustHold("CalcMask1", "mask", len(mask), len(s))
	mask = mask[:len(s)]
	count := 0
	for i, v := range s {
		m := pred(v)
		mask[i] = m
		count += b2i(m)
	}
	return count
}

// CalcMask2 flags the first element of every run of equivalent neighbours:
// mask[0] is true for a non-empty s, and for i >= 1 mask[i] is
// !eq(s[i], s[i-1]). It returns the number of true entries, which equals the
// length UniqueCopy would produce for the same input and relation.
//
// mask must hold at least len(s) elements.
func CalcMask2[T any](s []T, mask []bool, eq func(cur, prev T) bool) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	mustHold("CalcMask2", "mask", len(mask), n)
	mask = mask[:n]

	mask[0] = true
	count := 1
	for i := 1; i < n; i++ {
		m := !eq(s[i], s[i-1])
		mask[i] = m
		count += b2i(m)
	}
	return count
}

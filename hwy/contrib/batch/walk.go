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

// Walk1 invokes f once for each element of s, passing a pointer so f may
// update the element in place.
func Walk1[T any](s []T, f func(*T)) {
	for i := range s {
		f(&s[i])
	}
}

// Walk2 invokes f once for each index of a, with the matching element of b.
// b must hold at least len(a) elements. It returns len(a), the end of the
// processed part of b.
func Walk2[T, U any](a []T, b []U, f func(*T, *U)) int {
	mustHold("Walk2", "b", len(b), len(a))
	b = b[:len(a)]
	for i := range a {
		f(&a[i], &b[i])
	}
	return len(a)
}

// Walk3 is Walk2 over three zipped slices. b and c must hold at least len(a)
// elements. It returns len(a).
func Walk3[T, U, V any](a []T, b []U, c []V, f func(*T, *U, *V)) int {
	n := len(a)
	mustHold("Walk3", "b", len(b), n)
	mustHold("Walk3", "c", len(c), n)
	b = b[:n]
	c = c[:n]
	for i := range a {
		f(&a[i], &b[i], &c[i])
	}
	return n
}

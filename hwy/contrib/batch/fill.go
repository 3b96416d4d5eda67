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

// Fill assigns value to every element of dst.
func Fill[T any](dst []T, value T) {
	n := len(dst)
	if n == 0 {
		return
	}

	// Seed one element, then copy the filled prefix onto the rest until it
	// covers dst: log2(n) memmoves instead of n stores.
	dst[0] = value
	for done := 1; done < n; done <<= 1 {
		copy(dst[done:], dst[:done])
	}
}

// Generate assigns g() to every element of dst. g is invoked exactly
// len(dst) times; generators whose results depend on call order across
// elements must not be used.
func Generate[T any](dst []T, g func() T) {
	for i := range dst {
		dst[i] = g()
	}
}

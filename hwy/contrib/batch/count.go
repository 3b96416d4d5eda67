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

// CountIf returns the number of elements for which pred returns true.
// The count is a plain sum of 0/1 terms, so it may be accumulated in any order.
func CountIf[T any](s []T, pred func(T) bool) int {
	count := 0
	for _, v := range s {
		count += b2i(pred(v))
	}
	return count
}

// Count returns the number of elements equal to value.
func Count[T comparable](s []T, value T) int {
	return CountIf(s, func(v T) bool { return v == value })
}

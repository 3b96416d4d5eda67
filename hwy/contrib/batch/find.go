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

// =============================================================================
// Predicate-based API (for typed predicates)
// =============================================================================

// AnyOfP is AnyOf for a typed Predicate.
//
// Example: any element greater than 10
//
//	ok := AnyOfP(data, GreaterThan[float32]{Threshold: 10})
func AnyOfP[T any, P Predicate[T]](s []T, pred P) bool {
	return AnyOf(s, pred.Test)
}

// AllOfP is AllOf for a typed Predicate.
func AllOfP[T any, P Predicate[T]](s []T, pred P) bool {
	return AllOf(s, pred.Test)
}

// NoneOfP is NoneOf for a typed Predicate.
func NoneOfP[T any, P Predicate[T]](s []T, pred P) bool {
	return NoneOf(s, pred.Test)
}

// FindIfP returns the index of the first element satisfying pred, or len(s).
//
// Example: first element in [0, 1]
//
//	idx := FindIfP(data, InRange[float64]{Min: 0, Max: 1})
func FindIfP[T any, P Predicate[T]](s []T, pred P) int {
	return FindIf(s, pred.Test)
}

// CountIfP is CountIf for a typed Predicate.
func CountIfP[T any, P Predicate[T]](s []T, pred P) int {
	return CountIf(s, pred.Test)
}

// CopyIfP is CopyIf for a typed Predicate.
func CopyIfP[T any, P Predicate[T]](src, dst []T, pred P) int {
	return CopyIf(src, dst, pred.Test)
}

// CalcMask1P is CalcMask1 for a typed Predicate.
func CalcMask1P[T any, P Predicate[T]](s []T, mask []bool, pred P) int {
	return CalcMask1(s, mask, pred.Test)
}

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

import "github.com/ajroetker/go-hwybatch/hwy"

// Predicate tests a single value. The P-suffixed kernels accept any
// Predicate; the comparison types below are the built-in ones.
type Predicate[T any] interface {
	// Test returns true if the value satisfies the predicate.
	Test(value T) bool
}

// Func wraps a callback function as a Predicate.
type Func[T any] func(T) bool

func (f Func[T]) Test(value T) bool {
	return f(value)
}

// Not inverts a Predicate.
type Not[T any] struct {
	P Predicate[T]
}

func (p Not[T]) Test(value T) bool {
	return !p.P.Test(value)
}

// GreaterThan returns true for values where v > threshold.
type GreaterThan[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool {
	return value > p.Threshold
}

// LessThan returns true for values where v < threshold.
type LessThan[T hwy.Lanes] struct {
	Threshold T
}

func (p LessThan[T]) Test(value T) bool {
	return value < p.Threshold
}

// GreaterEqual returns true for values where v >= threshold.
type GreaterEqual[T hwy.Lanes] struct {
	Threshold T
}

func (p GreaterEqual[T]) Test(value T) bool {
	return value >= p.Threshold
}

// LessEqual returns true for values where v <= threshold.
type LessEqual[T hwy.Lanes] struct {
	Threshold T
}

func (p LessEqual[T]) Test(value T) bool {
	return value <= p.Threshold
}

// Equal returns true for values where v == value.
type Equal[T comparable] struct {
	Value T
}

func (p Equal[T]) Test(value T) bool {
	return value == p.Value
}

// NotEqual returns true for values where v != value.
type NotEqual[T comparable] struct {
	Value T
}

func (p NotEqual[T]) Test(value T) bool {
	return value != p.Value
}

// InRange returns true for values where min <= v <= max.
type InRange[T hwy.Lanes] struct {
	Min T
	Max T
}

func (p InRange[T]) Test(value T) bool {
	return value >= p.Min && value <= p.Max
}

// OutOfRange returns true for values where v < min or v > max.
type OutOfRange[T hwy.Lanes] struct {
	Min T
	Max T
}

func (p OutOfRange[T]) Test(value T) bool {
	return value < p.Min || value > p.Max
}

// IsZero returns true for values where v == 0.
type IsZero[T hwy.Lanes] struct{}

func (IsZero[T]) Test(value T) bool {
	return value == 0
}

// IsNonZero returns true for values where v != 0.
type IsNonZero[T hwy.Lanes] struct{}

func (IsNonZero[T]) Test(value T) bool {
	return value != 0
}

// IsPositive returns true for values where v > 0.
type IsPositive[T hwy.Lanes] struct{}

func (IsPositive[T]) Test(value T) bool {
	return value > 0
}

// IsNegative returns true for values where v < 0.
type IsNegative[T hwy.Lanes] struct{}

func (IsNegative[T]) Test(value T) bool {
	return value < 0
}

// EqualTo is the equivalence relation for comparable types, for use with
// UniqueCopy, CalcMask2, AdjacentFind and Search.
func EqualTo[T comparable](a, b T) bool {
	return a == b
}

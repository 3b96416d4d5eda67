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

import (
	"fmt"
	"testing"
)

// strategies lists both search implementations; withStrategy pins one for
// the duration of a test.
var strategies = []struct {
	name      string
	earlyExit bool
}{
	{"early_exit", true},
	{"blocked", false},
}

func withStrategy(t *testing.T, early bool) {
	t.Helper()
	saved := earlyExit
	earlyExit = early
	t.Cleanup(func() { earlyExit = saved })
}

// sizes straddle the lane width and the block-doubling boundaries.
var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 12, 15, 16, 17, 23, 24, 25, 31, 32, 33, 100}

func TestAnyOf(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			for _, n := range sizes {
				s := make([]int, n)
				if AnyOf(s, func(v int) bool { return v != 0 }) {
					t.Errorf("AnyOf(zeros[%d]) = true, want false", n)
				}
				for p := range n {
					s[p] = 1
					if !AnyOf(s, func(v int) bool { return v != 0 }) {
						t.Errorf("AnyOf(n=%d, match at %d) = false, want true", n, p)
					}
					s[p] = 0
				}
			}
		})
	}
}

func TestAnyOf_Empty(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			called := false
			if AnyOf([]float32{}, func(float32) bool { called = true; return true }) {
				t.Error("AnyOf(empty) = true, want false")
			}
			if called {
				t.Error("AnyOf(empty) invoked the predicate")
			}
		})
	}
}

func TestAnyOfBlocked_TestsEachElementOnce(t *testing.T) {
	for _, n := range sizes {
		seen := make([]int, n)
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}
		anyOfBlocked(s, func(v int) bool { seen[v]++; return false })
		for i, c := range seen {
			if c != 1 {
				t.Errorf("n=%d: element %d tested %d times, want 1", n, i, c)
			}
		}
	}
}

func TestAnyOfBlocked_BlockDoubling(t *testing.T) {
	// Blocks for n=100: 4, 8, 16, 32, then the remaining 40 in one block.
	// A match at index 10 sits in the second block, so 4+8 elements are tested.
	s := make([]int, 100)
	s[10] = 1
	calls := 0
	if !anyOfBlocked(s, func(v int) bool { calls++; return v == 1 }) {
		t.Fatal("anyOfBlocked missed the match")
	}
	if calls != 12 {
		t.Errorf("anyOfBlocked evaluated %d elements, want 12", calls)
	}

	// A match in the last element is only reached in the final short block.
	s[10], s[99] = 0, 1
	calls = 0
	if !anyOfBlocked(s, func(v int) bool { calls++; return v == 1 }) {
		t.Fatal("anyOfBlocked missed the last element")
	}
	if calls != 100 {
		t.Errorf("anyOfBlocked evaluated %d elements, want 100", calls)
	}
}

func TestFindIf(t *testing.T) {
	tests := []struct {
		name   string
		slice  []float32
		value  float32
		expect int
	}{
		{"first", []float32{1, 2, 3, 4, 5}, 1, 0},
		{"middle", []float32{1, 2, 3, 4, 5}, 3, 2},
		{"last", []float32{1, 2, 3, 4, 5}, 5, 4},
		{"not_found", []float32{1, 2, 3, 4, 5}, 6, 5},
		{"empty", []float32{}, 1, 0},
		{"single_found", []float32{42}, 42, 0},
		{"single_not_found", []float32{42}, 1, 1},
		{"duplicates", []float32{1, 2, 3, 2, 5}, 2, 1}, // Returns first occurrence
		{"second_block", []float32{0, 0, 0, 0, 0, 0, 0, 0, 0, 7, 0, 7, 0, 0, 0, 0, 0}, 7, 9},
		{"block_tail", []float32{0, 0, 0, 0, 0, 0, 0, 7}, 7, 7},
	}

	for _, st := range strategies {
		for _, tt := range tests {
			t.Run(st.name+"/"+tt.name, func(t *testing.T) {
				withStrategy(t, st.earlyExit)
				got := FindIf(tt.slice, func(v float32) bool { return v == tt.value })
				if got != tt.expect {
					t.Errorf("FindIf(%v, ==%v) = %d, want %d", tt.slice, tt.value, got, tt.expect)
				}
			})
		}
	}
}

func TestFindIf_EveryPosition(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			for _, n := range sizes {
				s := make([]int32, n)
				for p := range n {
					// Two matches: the later one must never win.
					s[p] = 1
					if p+1 < n {
						s[n-1] = 1
					}
					if got := FindIf(s, func(v int32) bool { return v == 1 }); got != p {
						t.Errorf("n=%d: FindIf = %d, want %d", n, got, p)
					}
					s[p], s[n-1] = 0, 0
				}
				if got := FindIf(s, func(v int32) bool { return v == 1 }); got != n {
					t.Errorf("n=%d: FindIf(no match) = %d, want %d", n, got, n)
				}
			}
		})
	}
}

func TestFindIfBlocked_EvaluatesWholeBlock(t *testing.T) {
	s := make([]int, 20)
	s[3] = 1

	calls := 0
	if got := findIfBlocked(s, func(v int) bool { calls++; return v == 1 }); got != 3 {
		t.Fatalf("findIfBlocked = %d, want 3", got)
	}
	if calls != laneWidth {
		t.Errorf("findIfBlocked evaluated %d elements, want %d", calls, laneWidth)
	}

	calls = 0
	if got := findIfEarlyExit(s, func(v int) bool { calls++; return v == 1 }); got != 3 {
		t.Fatalf("findIfEarlyExit = %d, want 3", got)
	}
	if calls != 4 {
		t.Errorf("findIfEarlyExit evaluated %d elements, want 4", calls)
	}
}

func TestFindIf2(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			for _, n := range sizes {
				a := make([]int, n)
				b := make([]string, n+3) // longer second stream is allowed
				for i := range a {
					a[i] = i
					b[i] = fmt.Sprint(i)
				}
				same := func(x int, y string) bool { return fmt.Sprint(x) == y }
				if got := FindIf2(a, b, same); n > 0 && got != 0 {
					t.Errorf("n=%d: FindIf2(equal streams) = %d, want 0", n, got)
				}
				differ := func(x int, y string) bool { return fmt.Sprint(x) != y }
				if got := FindIf2(a, b, differ); got != n {
					t.Errorf("n=%d: FindIf2(no mismatch) = %d, want %d", n, got, n)
				}
				if n > 0 {
					p := n / 2
					b[p] = "x"
					if got := FindIf2(a, b, differ); got != p {
						t.Errorf("n=%d: FindIf2(mismatch at %d) = %d", n, p, got)
					}
				}
			}
		})
	}
}

func TestFindIf2_ShortSecondStreamPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FindIf2 with short second stream did not panic")
		}
	}()
	FindIf2([]int{1, 2, 3}, []int{1}, func(a, b int) bool { return a == b })
}

func TestFind_Int32(t *testing.T) {
	slice := []int32{10, 20, 30, 40, 50}
	if got := Find(slice, int32(30)); got != 2 {
		t.Errorf("Find int32: got %d, want 2", got)
	}
	if got := Find(slice, int32(99)); got != len(slice) {
		t.Errorf("Find int32 not found: got %d, want %d", got, len(slice))
	}
}

func TestContains(t *testing.T) {
	slice := []string{"a", "b", "c"}

	if !Contains(slice, "b") {
		t.Error("Contains should find b")
	}
	if Contains(slice, "z") {
		t.Error("Contains should not find z")
	}
}

func TestAllNone(t *testing.T) {
	positive := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	mixed := []float64{1, 2, 3, 4, 5, 6, 7, 8, -9}
	isPositive := func(v float64) bool { return v > 0 }
	isNegative := func(v float64) bool { return v < 0 }

	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			if !AllOf(positive, isPositive) {
				t.Error("AllOf should return true for all positive")
			}
			if AllOf(mixed, isPositive) {
				t.Error("AllOf should return false for mixed")
			}
			if !AllOf([]float64{}, isPositive) {
				t.Error("AllOf should return true for empty")
			}
			if !NoneOf(positive, isNegative) {
				t.Error("NoneOf should return true when nothing is negative")
			}
			if NoneOf(mixed, isNegative) {
				t.Error("NoneOf should return false for mixed")
			}
		})
	}
}

func TestPredicateAPI(t *testing.T) {
	data := []int{-5, -3, -1, 0, 1, 3, 5, 7, 9}

	if got := FindIfP(data, GreaterThan[int]{Threshold: 2}); got != 5 {
		t.Errorf("FindIfP(>2) = %d, want 5", got)
	}
	if got := CountIfP(data, IsPositive[int]{}); got != 5 {
		t.Errorf("CountIfP(positive) = %d, want 5", got)
	}
	if !AnyOfP(data, IsZero[int]{}) {
		t.Error("AnyOfP(zero) = false, want true")
	}
	if !AllOfP(data, InRange[int]{Min: -5, Max: 9}) {
		t.Error("AllOfP(InRange) = false, want true")
	}
	if !NoneOfP(data, OutOfRange[int]{Min: -5, Max: 9}) {
		t.Error("NoneOfP(OutOfRange) = false, want true")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		slice  []float32
		value  float32
		expect int
	}{
		{"single", []float32{1, 2, 3, 4, 5}, 3, 1},
		{"multiple", []float32{1, 2, 2, 2, 5}, 2, 3},
		{"none", []float32{1, 2, 3, 4, 5}, 6, 0},
		{"all", []float32{7, 7, 7, 7}, 7, 4},
		{"empty", []float32{}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.slice, tt.value)
			if got != tt.expect {
				t.Errorf("Count(%v, %v) = %d, want %d", tt.slice, tt.value, got, tt.expect)
			}
		})
	}
}

func TestCountIf_Large(t *testing.T) {
	slice := make([]int, 100)
	for i := range slice {
		if i%3 == 0 {
			slice[i] = 42
		} else {
			slice[i] = i
		}
	}

	// indices 0, 3, 6, ..., 99
	got := CountIf(slice, func(v int) bool { return v == 42 })
	if want := (99 / 3) + 1; got != want {
		t.Errorf("CountIf large: got %d, want %d", got, want)
	}
}

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

import "testing"

func TestAdjacentFind(t *testing.T) {
	tests := []struct {
		name   string
		slice  []int
		expect int
	}{
		{"empty", []int{}, 0},
		{"single", []int{1}, 1},
		{"pair_equal", []int{4, 4}, 0},
		{"pair_distinct", []int{4, 5}, 2},
		{"middle", []int{1, 2, 3, 3, 4}, 2},
		{"none", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 10},
		{"first_of_several", []int{1, 2, 2, 3, 3, 4}, 1},
		// Pair (7, 8) straddles the first block boundary.
		{"block_boundary", []int{0, 1, 2, 3, 4, 5, 6, 7, 7, 9, 10, 11}, 7},
		// Pair (15, 16) straddles the second block boundary.
		{"second_boundary", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 15, 17}, 15},
		// Last element of an exact block has no right neighbour.
		{"exact_block_no_match", []int{0, 1, 2, 3, 4, 5, 6, 7}, 8},
		{"exact_block_last_pair", []int{0, 1, 2, 3, 4, 5, 6, 6}, 6},
		{"remainder", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10}, 10},
	}

	for _, st := range strategies {
		for _, tt := range tests {
			t.Run(st.name+"/"+tt.name, func(t *testing.T) {
				withStrategy(t, st.earlyExit)
				if got := AdjacentFind(tt.slice, EqualTo[int], false); got != tt.expect {
					t.Errorf("AdjacentFind(%v) = %d, want %d", tt.slice, got, tt.expect)
				}

				wantOr := len(tt.slice)
				if tt.expect != len(tt.slice) {
					wantOr = 0
				}
				if got := AdjacentFind(tt.slice, EqualTo[int], true); got != wantOr {
					t.Errorf("AdjacentFind(%v, or) = %d, want %d", tt.slice, got, wantOr)
				}
			})
		}
	}
}

func TestAdjacentFind_EveryPosition(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			for _, n := range sizes {
				s := make([]int, n)
				for i := range s {
					s[i] = i
				}
				for p := 0; p+1 < n; p++ {
					s[p+1] = s[p]
					if got := AdjacentFind(s, EqualTo[int], false); got != p {
						t.Errorf("n=%d: AdjacentFind = %d, want %d", n, got, p)
					}
					s[p+1] = p + 1
				}
			}
		})
	}
}

func TestAdjacentFind_Descending(t *testing.T) {
	// First position where the sequence stops ascending.
	s := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 3, 12}
	desc := func(a, b float64) bool { return a > b }
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			withStrategy(t, st.earlyExit)
			if got := AdjacentFind(s, desc, false); got != 10 {
				t.Errorf("AdjacentFind(desc) = %d, want 10", got)
			}
		})
	}
}

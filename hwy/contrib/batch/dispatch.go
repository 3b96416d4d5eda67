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

// earlyExit is read once, after hwy has resolved the strategy in its init.
var earlyExit = hwy.EarlyExitCapable()

// laneWidth is the block size of the blocked first-match scans.
const laneWidth = 8

// b2i converts without a branch; the compiler lowers it to SETcc/CSET.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// mustHold panics unless an output or secondary stream of length have can
// take n elements. Reslicing alone is not enough: s[:n] only fails past cap(s).
func mustHold(kernel, arg string, have, n int) {
	if have < n {
		panic("batch: " + kernel + " " + arg + " shorter than input")
	}
}

// firstLane returns the index of the first non-zero lane, or laneWidth.
func firstLane(lane *[laneWidth]uint8) int {
	i := 0
	for ; i < laneWidth; i++ {
		if lane[i] != 0 {
			break
		}
	}
	return i
}

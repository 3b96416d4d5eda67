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

package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-hwybatch/hwy/contrib/batch"
)

var errUnknownKernel = errors.New("unknown kernel")

// valueRange bounds the synthetic values; rareValue is drawn with
// probability 1/valueRange so searches usually scan far into the input.
const (
	valueRange = 1024
	rareValue  = valueRange - 1
)

// workload is the synthetic input every benchmarked kernel runs on.
type workload struct {
	data   []int32 // uniform in [0, valueRange)
	other  []int32 // uniform in [0, valueRange), zipped with data
	runs   []int32 // non-decreasing, runs of 1 to 4 equal values
	needle []int32 // the last min(8, n) elements of data
	out    []int32
	mask   []bool
	seq    int32
}

func newWorkload(n int, seed uint64) *workload {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	w := &workload{
		data:  make([]int32, n),
		other: make([]int32, n),
		runs:  make([]int32, n),
		out:   make([]int32, n),
		mask:  make([]bool, n),
	}
	var run int32
	for i := range n {
		w.data[i] = r.Int32N(valueRange)
		w.other[i] = r.Int32N(valueRange)
		if r.IntN(4) == 0 {
			run++
		}
		w.runs[i] = run
	}
	w.needle = w.data[n-min(8, n):]
	return w
}

func (w *workload) rare(v int32) bool         { return v == rareValue }
func (w *workload) low(v int32) bool          { return v < valueRange/2 }
func (w *workload) both(a, b int32) bool      { return a == rareValue && b == rareValue }
func (w *workload) next() int32               { w.seq++; return w.seq }
func (w *workload) square(v int32) int64      { return int64(v) * int64(v) }
func (w *workload) product(a, b int32) int64  { return int64(a) * int64(b) }
func (w *workload) ascending(a, b int32) bool { return a > b }

// kernel is one benchmarkable entry point. run returns a value derived from
// the kernel's result so the call cannot be optimized away.
type kernel struct {
	name string
	run  func(w *workload) int
}

var kernels = []kernel{
	{"any_of", func(w *workload) int { return boolInt(batch.AnyOf(w.data, w.rare)) }},
	{"find_if", func(w *workload) int { return batch.FindIf(w.data, w.rare) }},
	{"find_if2", func(w *workload) int { return batch.FindIf2(w.data, w.other, w.both) }},
	{"count_if", func(w *workload) int { return batch.CountIf(w.data, w.low) }},
	{"calc_mask1", func(w *workload) int { return batch.CalcMask1(w.data, w.mask, w.low) }},
	{"calc_mask2", func(w *workload) int { return batch.CalcMask2(w.runs, w.mask, batch.EqualTo[int32]) }},
	{"copy_if", func(w *workload) int { return batch.CopyIf(w.data, w.out, w.low) }},
	{"unique_copy", func(w *workload) int { return batch.UniqueCopy(w.runs, w.out, batch.EqualTo[int32]) }},
	{"copy_by_mask", func(w *workload) int {
		batch.CalcMask1(w.data, w.mask, w.low)
		return batch.CopyByMask(w.data, w.mask, w.out)
	}},
	{"fill", func(w *workload) int { batch.Fill(w.out, rareValue); return len(w.out) }},
	{"generate", func(w *workload) int { batch.Generate(w.out, w.next); return int(w.seq) }},
	{"walk2", func(w *workload) int {
		return batch.Walk2(w.data, w.out, func(src, dst *int32) { *dst = *src + 1 })
	}},
	{"adjacent_find", func(w *workload) int { return batch.AdjacentFind(w.runs, w.ascending, false) }},
	{"search", func(w *workload) int { return batch.Search(w.data, w.needle, batch.EqualTo[int32], true) }},
	{"transform_reduce", func(w *workload) int { return int(batch.TransformReduce(w.data, int64(0), w.square)) }},
	{"transform_reduce2", func(w *workload) int {
		return int(batch.TransformReduce2(w.data, w.other, int64(0), w.product))
	}},
}

func kernelNames() []string {
	return lo.Map(kernels, func(k kernel, _ int) string { return k.name })
}

// selectKernels resolves names to kernels, in registry order. No names
// selects every kernel.
func selectKernels(names []string) ([]kernel, error) {
	if len(names) == 0 {
		return kernels, nil
	}
	names = lo.Uniq(lo.Compact(lo.Map(names, func(n string, _ int) string { return strings.TrimSpace(n) })))
	if len(names) == 0 {
		return kernels, nil
	}

	known := lo.KeyBy(kernels, func(k kernel) string { return k.name })
	unknown := lo.Filter(names, func(n string, _ int) bool {
		_, ok := known[n]
		return !ok
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (available: %s)", errUnknownKernel,
			strings.Join(unknown, ", "), strings.Join(kernelNames(), ", "))
	}
	return lo.Filter(kernels, func(k kernel, _ int) bool { return lo.Contains(names, k.name) }), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

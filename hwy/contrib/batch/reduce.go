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

// reduceLanes is the number of independent partial sums kept by the
// transform-reduce kernels.
const reduceLanes = 4

// TransformReduce returns init plus the sum of op(v) over s.
//
// The sum is accumulated in reduceLanes independent partial sums that are
// folded into init at the end. Integer results are exact; floating-point
// results may differ from a strict left-to-right sum by rounding.
//
// Example:
//
//	TransformReduce([]int{1, 2, 3}, 0, func(x int) int { return x * x }) // 14
func TransformReduce[T any, R hwy.Lanes](s []T, init R, op func(T) R) R {
	var acc [reduceLanes]R
	i := 0
	for ; len(s)-i >= reduceLanes; i += reduceLanes {
		blk := (*[reduceLanes]T)(s[i : i+reduceLanes])
		for j := range reduceLanes {
			acc[j] += op(blk[j])
		}
	}
	for ; i < len(s); i++ {
		acc[0] += op(s[i])
	}
	return init + foldLanes(&acc)
}

// TransformReduce2 returns init plus the sum of op(a[i], b[i]) over the
// indices of a. b must hold at least len(a) elements.
//
// Example: dot product
//
//	TransformReduce2(x, y, 0.0, func(a, b float64) float64 { return a * b })
func TransformReduce2[T, U any, R hwy.Lanes](a []T, b []U, init R, op func(T, U) R) R {
	n := len(a)
	mustHold("TransformReduce2", "b", len(b), n)
	b = b[:n]
	var acc [reduceLanes]R
	i := 0
	for ; n-i >= reduceLanes; i += reduceLanes {
		blkA := (*[reduceLanes]T)(a[i : i+reduceLanes])
		blkB := (*[reduceLanes]U)(b[i : i+reduceLanes])
		for j := range reduceLanes {
			acc[j] += op(blkA[j], blkB[j])
		}
	}
	for ; i < n; i++ {
		acc[0] += op(a[i], b[i])
	}
	return init + foldLanes(&acc)
}

func foldLanes[R hwy.Lanes](acc *[reduceLanes]R) R {
	return (acc[0] + acc[1]) + (acc[2] + acc[3])
}

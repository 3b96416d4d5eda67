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
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwybatch/hwy"
)

type benchOptions struct {
	n          int
	seed       uint64
	iterations int
	kernels    []string
}

// benchResult is the timing of one kernel.
type benchResult struct {
	name    string
	result  int
	perOp   time.Duration
	nsPerEl float64
}

func newBenchCmd(a *app) *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the batch kernels on synthetic int32 data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runBench(a, opts)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.n, "size", "n", 1<<20, "number of elements per kernel call")
	flags.Uint64Var(&opts.seed, "seed", 1, "seed for the synthetic data")
	flags.IntVar(&opts.iterations, "iterations", 10, "calls per kernel")
	flags.StringSliceVar(&opts.kernels, "kernel", nil, "kernels to run (default all)")
	return cmd
}

func runBench(a *app, opts benchOptions) ([]benchResult, error) {
	if opts.n <= 0 {
		return nil, fmt.Errorf("invalid --size %d: must be positive", opts.n)
	}
	if opts.iterations <= 0 {
		return nil, fmt.Errorf("invalid --iterations %d: must be positive", opts.iterations)
	}
	selected, err := selectKernels(opts.kernels)
	if err != nil {
		return nil, err
	}

	logger := a.log().With("n", opts.n, "iterations", opts.iterations)
	logger.Info("benchmarking kernels",
		"level", hwy.CurrentName(), "strategy", hwy.CurrentStrategy().String(), "kernels", len(selected))

	w := newWorkload(opts.n, opts.seed)
	results := make([]benchResult, 0, len(selected))
	for _, k := range selected {
		var result int
		start := time.Now()
		for range opts.iterations {
			result = k.run(w)
		}
		perOp := time.Since(start) / time.Duration(opts.iterations)

		logger.Debug("kernel done", "kernel", k.name, "per_op", perOp)
		results = append(results, benchResult{
			name:    k.name,
			result:  result,
			perOp:   perOp,
			nsPerEl: float64(perOp.Nanoseconds()) / float64(opts.n),
		})
	}
	return results, nil
}

func writeResults(w io.Writer, results []benchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "kernel\tresult\ttime/op\tns/elem\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%.3f\t\n", r.name, r.result, r.perOp, r.nsPerEl)
	}
	return tw.Flush()
}

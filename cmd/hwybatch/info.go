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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-hwybatch/hwy"
)

// capabilityReport is what "hwybatch info" prints.
type capabilityReport struct {
	CPU            string         `json:"cpu"`
	Vendor         string         `json:"vendor"`
	Level          string         `json:"level"`
	WidthBytes     int            `json:"width_bytes"`
	Strategy       string         `json:"strategy"`
	StrategySource string         `json:"strategy_source"`
	EarlyExit      bool           `json:"early_exit"`
	Lanes          map[string]int `json:"lanes"`
}

func currentReport() capabilityReport {
	return capabilityReport{
		CPU:            cpuid.CPU.BrandName,
		Vendor:         cpuid.CPU.VendorString,
		Level:          hwy.CurrentName(),
		WidthBytes:     hwy.CurrentWidth(),
		Strategy:       hwy.CurrentStrategy().String(),
		StrategySource: hwy.CurrentStrategySource().String(),
		EarlyExit:      hwy.EarlyExitCapable(),
		Lanes: map[string]int{
			"int8":    hwy.MaxLanes[int8](),
			"int16":   hwy.MaxLanes[int16](),
			"int32":   hwy.MaxLanes[int32](),
			"int64":   hwy.MaxLanes[int64](),
			"float32": hwy.MaxLanes[float32](),
			"float64": hwy.MaxLanes[float64](),
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level and search strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := currentReport()
			a.log().Debug("capabilities detected",
				"level", report.Level, "strategy", report.Strategy, "source", report.StrategySource)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				return nil
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func writeReport(w io.Writer, r capabilityReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "cpu\t%s (%s)\n", r.CPU, r.Vendor)
	fmt.Fprintf(tw, "level\t%s\n", r.Level)
	fmt.Fprintf(tw, "width\t%d bytes\n", r.WidthBytes)
	fmt.Fprintf(tw, "strategy\t%s (%s)\n", r.Strategy, r.StrategySource)
	for _, name := range []string{"int8", "int16", "int32", "int64", "float32", "float64"} {
		fmt.Fprintf(tw, "lanes[%s]\t%d\n", name, r.Lanes[name])
	}
	return tw.Flush()
}

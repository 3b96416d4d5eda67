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
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app holds what the subcommands share: output streams and the logger built
// from the persistent flags.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logFormat string
	logLevel  string
	logger    *slog.Logger
}

// log returns the configured logger, or a text logger on stderr if the
// flags have not been processed yet.
func (a *app) log() *slog.Logger {
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(a.stderr, nil))
	}
	return a.logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "hwybatch",
		Short:         "Inspect and benchmark the hwy batch kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.stderr, a.logFormat, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logFormat, "log-format", "text", "log output format (text, json)")
	flags.StringVar(&a.logLevel, "log-level", "info", "minimum log level (debug, info, warn, error)")

	root.AddCommand(newInfoCmd(a), newBenchCmd(a))
	return root
}

// newLogger builds a slog.Logger writing to w.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}

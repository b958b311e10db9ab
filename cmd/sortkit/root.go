// Copyright 2025 go-simplesort Authors
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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-simplesort/sorts"
)

// app carries the I/O streams and logger of one sortkit invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger
	opts   options
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{in: in, out: out, errOut: errOut, opts: defaultOptions()}
	lvl, err := parseLogLevel(a.opts.logLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	a.log = newLogger(errOut, lvl)
	return a
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Str("cmd", "sortkit").
		Logger()
}

// reportError logs err regardless of the configured log level, so a failing
// run never exits silently.
func (a *app) reportError(err error) {
	l := newLogger(a.errOut, zerolog.TraceLevel)
	l.Error().Err(err).Msg("sortkit failed")
}

// run executes sortkit with args and returns the process exit code.
func (a *app) run(args []string) int {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sortkit",
		Short:         "Sort numbers with bubble sort or insertion sort",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.opts.validate(); err != nil {
				return err
			}
			lvl, _ := parseLogLevel(a.opts.logLevel)
			a.log = a.log.Level(lvl)
			return nil
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	a.opts.bind(root.PersistentFlags())

	for _, algo := range sorts.Algorithms() {
		root.AddCommand(a.sortCmd(algo))
	}
	root.AddCommand(a.listCmd())
	return root
}

func (a *app) sortCmd(algo sorts.Algorithm) *cobra.Command {
	return &cobra.Command{
		Use:   string(algo) + " [numbers...]",
		Short: "Sort numbers with " + string(algo) + " sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSort(cmd, algo, args)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, algo := range sorts.Algorithms() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), algo); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) runSort(cmd *cobra.Command, algo sorts.Algorithm, args []string) error {
	tokens, err := collectTokens(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	a.log.Debug().Str("algorithm", algo.String()).Int("count", len(tokens)).Bool("float", a.opts.float).Msg("sorting")

	if a.opts.float {
		values, err := parseNumbers(tokens, parseFloat64)
		if err != nil {
			return err
		}
		return sortAndRender(a, cmd.OutOrStdout(), algo, values)
	}
	values, err := parseNumbers(tokens, parseInt64)
	if err != nil {
		return err
	}
	return sortAndRender(a, cmd.OutOrStdout(), algo, values)
}

func sortAndRender[T sorts.Number](a *app, w io.Writer, algo sorts.Algorithm, values []T) error {
	out, st, err := sorts.Run(algo, values)
	if err != nil {
		return err
	}
	a.log.Debug().Str("algorithm", algo.String()).Stringer("stats", st).Msg("sorted")

	var stats *sorts.Stats
	if a.opts.stats {
		stats = &st
	}
	return render(w, a.opts.format, report[T]{Algorithm: algo.String(), Result: out, Stats: stats})
}

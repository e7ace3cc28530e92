// Copyright 2025 go-parstl Authors
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
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-parstl/parstl"
)

// Defaults when positional arguments are absent or unparsable.
const (
	defaultSize = 6_000_000
	defaultStep = stepAll
)

// Step selectors. Trig and dot keep their historical numbers; the
// later operations extend the sequence.
const (
	stepAll     = 0
	stepTrig    = 2
	stepDot     = 3
	stepPoints  = 4
	stepPricing = 5
)

var rootCmd = &cobra.Command{
	Use:   "parbench [size] [step]",
	Short: "Time data-parallel slice operations under each execution policy",
	Long: `parbench runs four data-parallel operations (trigonometric transform,
dot product, point sort, index-driven pricing) under the parstl
execution policies and prints the min/max wall-clock latency per
policy.

size is the input buffer length (default 6000000). step selects the
operations to run: 0 runs all, 2 trigonometry only, 3 dot product only,
4 point sort only, 5 pricing only. Arguments that fail to parse fall
back to the defaults.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		size, step := parseArgs(args)
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, size)
		fmt.Fprintf(w, "goroutines: %d, simd: %s\n", runtime.GOMAXPROCS(0), parstl.SimdName())

		if step == stepAll || step == stepTrig {
			runTrig(w, size)
		}
		if step == stepAll || step == stepDot {
			runDot(w, size)
		}
		if step == stepAll || step == stepPoints {
			runPoints(w, size)
		}
		if step == stepAll || step == stepPricing {
			runPricing(w, size)
		}
	},
}

// parseArgs interprets the positional arguments. Unparsable or negative
// values keep the defaults; the tool always proceeds to run rather than
// failing on its arguments.
func parseArgs(args []string) (size, step int) {
	size, step = defaultSize, defaultStep
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v >= 0 {
			size = v
		}
	}
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil && v >= 0 {
			step = v
		}
	}
	return size, step
}

// Execute runs the root command. Exit code 0 on any normal run; the
// only error path is cobra rejecting the argument count.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

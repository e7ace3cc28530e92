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
	"io"
	"slices"

	"github.com/ajroetker/go-parstl/parstl"
	"github.com/ajroetker/go-parstl/parstl/bench"
	"github.com/ajroetker/go-parstl/parstl/contrib/dot"
	"github.com/ajroetker/go-parstl/parstl/contrib/points"
	"github.com/ajroetker/go-parstl/parstl/contrib/pricing"
	"github.com/ajroetker/go-parstl/parstl/contrib/trig"
)

// Each flow generates its input once, then times the operation under
// every applicable policy against that same buffer, so the per-policy
// rows are directly comparable.

func runTrig(w io.Writer, size int) {
	in := make([]float64, size)
	out := make([]float64, size)
	trig.FillAngles(parstl.Seq, in)

	fmt.Fprintln(w, "sqrt(sin*cos):")
	for _, p := range parstl.All {
		bench.RunAndMeasure(w, p.String(), func() float64 {
			trig.SqrtSinCos(p, in, out)
			return first(out)
		})
	}
}

func runDot(w io.Writer, size int) {
	v1 := make([]float64, size)
	v2 := make([]float64, size)
	dot.Fill(parstl.Par, v1, 0, 1)
	dot.Fill(parstl.Par, v2, 0, 1)

	fmt.Fprintln(w, "dot product:")
	for _, p := range parstl.All {
		bench.RunAndMeasure(w, p.String(), func() float64 {
			return dot.Dot(p, v1, v2)
		})
	}
}

func runPoints(w io.Writer, size int) {
	base := make([]points.Vec4, size)
	points.Fill(parstl.Par, base)

	fmt.Fprintln(w, "sort points by x:")
	// Sorting mutates its input, so each invocation clones the base
	// buffer. The clone is inside the timed region for every policy
	// alike, keeping rows comparable.
	for _, p := range []parstl.Policy{parstl.Seq, parstl.Par} {
		bench.RunAndMeasure(w, p.String(), func() float64 {
			work := slices.Clone(base)
			points.SortByX(p, work)
			if len(work) == 0 {
				return 0
			}
			return float64(work[0].X)
		})
	}
}

func runPricing(w io.Writer, size int) {
	ledger := pricing.NewLedger(size)

	fmt.Fprintln(w, "pricing profit:")
	for _, p := range parstl.All {
		bench.RunAndMeasure(w, p.String(), func() float64 {
			ledger.Fill(p)
			ledger.Profit(p)
			return first(ledger.Profits)
		})
	}
}

func first(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

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

// Package bench is the manual timing flow: run a labeled computation a
// fixed small number of times, keep the minimum and maximum wall-clock
// latency, and print a one-line summary. It is deliberately cruder than
// testing.B — no iteration scaling, no statistics — because its job is
// a quick console read-out, not a measurement of record.
package bench

import (
	"fmt"
	"io"
	"slices"
	"time"
)

// RunTimes is how many timed invocations each trial performs.
const RunTimes = 5

// Result is one trial's outcome: the spread of observed latencies plus
// a representative output value used only for eyeballing correctness.
type Result struct {
	Label string
	Min   time.Duration
	Max   time.Duration
	// Value is the result of the first timed invocation.
	Value float64
}

// Run times fn RunTimes times and returns the observed spread.
//
// One extra invocation happens before any timing starts and its result
// is discarded. This is an explicit discard-first-sample policy: the
// warm-up run pulls code and data into caches so the timed samples
// reflect steady state, not first-touch cost.
//
// fn must be deterministic enough in cost that the min/max spread
// reflects system noise rather than algorithmic divergence. There is no
// failure handling; if fn panics, the trial aborts with it.
func Run(label string, fn func() float64) Result {
	fn() // warm-up, result discarded

	times := make([]time.Duration, RunTimes)
	var value float64
	for i := 0; i < RunTimes; i++ {
		start := time.Now()
		ret := fn()
		times[i] = time.Since(start)
		if i == 0 {
			value = ret
		}
	}
	return Result{
		Label: label,
		Min:   slices.Min(times),
		Max:   slices.Max(times),
		Value: value,
	}
}

// RunAndMeasure runs a trial and prints its one-line summary to w:
// label, minimum latency in milliseconds, maximum, representative value.
func RunAndMeasure(w io.Writer, label string, fn func() float64) Result {
	res := Run(label, fn)
	fmt.Fprintf(w, "%s:\t %.4gms (max was %.4g) %v\n",
		res.Label, millis(res.Min), millis(res.Max), res.Value)
	return res
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

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

// Package trig is the trigonometric transform operation: the
// element-wise map sqrt(sin(x)·cos(x)) over a buffer of angles in
// [0, π/2]. Purely data-parallel with no cross-element dependency, so
// every execution policy applies and all of them must produce
// bit-identical output on the same input.
package trig

import (
	"math"

	"github.com/ajroetker/go-parstl/parstl"
	"github.com/ajroetker/go-parstl/parstl/randgen"
)

// MaxAngle is the upper bound of the generated input range, π/2.
// Over [0, MaxAngle] sin·cos is non-negative, so the square root is
// always real, and sqrt(sin·cos) ≤ sqrt(1/2) with the maximum at π/4.
const MaxAngle = math.Pi / 2

// FillAngles fills dst with uniform random angles in [0, π/2] under p.
// Each parallel shard draws from its own engine.
func FillAngles(p parstl.Policy, dst []float64) {
	parstl.GenerateFrom(p, dst, func() func() float64 {
		rng := randgen.New()
		return func() float64 { return rng.Float64(0, MaxAngle) }
	})
}

// SqrtSinCos writes sqrt(sin(in[i])·cos(in[i])) into out[i] for every
// element, under p. If the slices have different lengths, the shorter
// one bounds the work. The kernel is identical under every policy;
// Unseq and ParUnseq only change how the loop is unrolled, not the
// arithmetic, so outputs match Seq bit for bit.
func SqrtSinCos(p parstl.Policy, in, out []float64) {
	kernel := sqrtSinCosScalar
	if p.Vectorized() && !parstl.NoSimdEnv() {
		kernel = sqrtSinCosUnrolled4
	}
	n := min(len(in), len(out))
	parstl.ForEachShard(p, n, func(lo, hi int) {
		kernel(in[lo:hi], out[lo:hi])
	})
}

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

// Package dot is the dot product operation: a fused transform-reduce
// that multiplies two equal-length buffers element-wise and sums the
// products into a single scalar.
//
// The summation order is policy-dependent. Seq folds left to right;
// Unseq accumulates in SIMD lanes or unrolled chains; Par and ParUnseq
// fold per-shard partials. All orders are valid groupings of the same
// associative sum, so results agree within floating-point reassociation
// tolerance but not necessarily bit for bit. Documented nondeterminism,
// not a defect.
package dot

import (
	"github.com/ajroetker/go-parstl/parstl"
	"github.com/ajroetker/go-parstl/parstl/randgen"
)

// Fill fills dst with uniform random values in [lower, upper] under p,
// one engine per parallel shard. The manual timing flow fills its
// inputs under Par, like the benchmark-registration flow.
func Fill(p parstl.Policy, dst []float64, lower, upper float64) {
	parstl.GenerateFrom(p, dst, func() func() float64 {
		rng := randgen.New()
		return func() float64 { return rng.Float64(lower, upper) }
	})
}

// Dot computes the dot product of a and b under p. If the slices have
// different lengths, the shorter one bounds the work. Empty input
// returns 0.
func Dot(p parstl.Policy, a, b []float64) float64 {
	kernel := dotScalar
	if p.Vectorized() && !parstl.NoSimdEnv() {
		kernel = dotVectorized
	}
	n := min(len(a), len(b))
	return parstl.ReduceShards(p, n, 0,
		func(x, y float64) float64 { return x + y },
		func(lo, hi int) float64 { return kernel(a[lo:hi], b[lo:hi]) })
}

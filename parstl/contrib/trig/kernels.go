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

package trig

import "math"

// sqrtSinCosScalar is the portable reference kernel.
func sqrtSinCosScalar(in, out []float64) {
	for i, v := range in {
		out[i] = math.Sqrt(math.Sin(v) * math.Cos(v))
	}
}

// sqrtSinCosUnrolled4 processes four elements per iteration. Sin/Cos
// dominate the cost and have no vectorized form in the standard
// library, so the unroll buys ILP across the four independent chains
// rather than SIMD lanes. The arithmetic per element is exactly the
// scalar kernel's, keeping outputs bit-identical across policies.
func sqrtSinCosUnrolled4(in, out []float64) {
	n := len(in)
	if len(out) < n {
		n = len(out)
	}
	i := 0
	for ; i+4 <= n; i += 4 {
		v0, v1, v2, v3 := in[i], in[i+1], in[i+2], in[i+3]
		out[i] = math.Sqrt(math.Sin(v0) * math.Cos(v0))
		out[i+1] = math.Sqrt(math.Sin(v1) * math.Cos(v1))
		out[i+2] = math.Sqrt(math.Sin(v2) * math.Cos(v2))
		out[i+3] = math.Sqrt(math.Sin(v3) * math.Cos(v3))
	}
	for ; i < n; i++ {
		out[i] = math.Sqrt(math.Sin(in[i]) * math.Cos(in[i]))
	}
}

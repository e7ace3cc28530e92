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

package dot

import "github.com/tphakala/simd/f64"

// dotScalar is the portable reference kernel: a left-to-right fold.
func dotScalar(a, b []float64) float64 {
	n := min(len(a), len(b))
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// dotVectorized is the Unseq kernel. f64.DotProduct dispatches to the
// widest multiply-accumulate the CPU offers and handles the tail
// internally; on architectures without a SIMD path it degrades to an
// unrolled loop, which is still a valid regrouping of the sum.
func dotVectorized(a, b []float64) float64 {
	if len(a) != len(b) {
		n := min(len(a), len(b))
		a, b = a[:n], b[:n]
	}
	if len(a) == 0 {
		return 0
	}
	return f64.DotProduct(a, b)
}

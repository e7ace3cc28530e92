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

package parstl

import "os"

var (
	simdName  = "scalar"
	simdLanes = 1
)

// SimdName reports the widest SIMD feature level detected on this CPU:
// "avx512", "avx2", "sse2", "neon", or "scalar". Setting PARSTL_NOSIMD
// in the environment forces "scalar" regardless of hardware, which also
// makes the Unseq kernel variants fall back to their portable forms.
func SimdName() string {
	if NoSimdEnv() {
		return "scalar"
	}
	return simdName
}

// SimdLanes reports how many float64 lanes the detected feature level
// carries per vector register (1 in scalar mode).
func SimdLanes() int {
	if NoSimdEnv() {
		return 1
	}
	return simdLanes
}

// NoSimdEnv reports whether SIMD kernels are disabled via the
// PARSTL_NOSIMD environment variable. Any non-empty value except "0"
// disables them.
func NoSimdEnv() bool {
	v := os.Getenv("PARSTL_NOSIMD")
	return v != "" && v != "0"
}

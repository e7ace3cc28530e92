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

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-parstl/parstl"
)

var benchSizes = []int{1000, 10_000, 100_000, 1_000_000}

var benchSink float64

func BenchmarkDot(b *testing.B) {
	for _, p := range parstl.All {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/%d", p, n), func(b *testing.B) {
				v1 := make([]float64, n)
				v2 := make([]float64, n)
				Fill(parstl.Par, v1, -1, 1)
				Fill(parstl.Par, v2, -1, 1)
				b.SetBytes(int64(n * 16))
				b.ResetTimer()
				var sum float64
				for i := 0; i < b.N; i++ {
					sum = Dot(p, v1, v2)
				}
				benchSink = sum
			})
		}
	}
}

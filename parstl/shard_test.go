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

import (
	"sync/atomic"
	"testing"
)

func TestShardBoundsCoverExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 8, 100, 2047, 2048, 65537} {
		for _, s := range []int{1, 2, 3, 4, 7, 8, 16} {
			if s > n {
				continue
			}
			seen := make([]int, n)
			prevHi := 0
			for i := 0; i < s; i++ {
				lo, hi := shardBounds(i, s, n)
				if lo != prevHi {
					t.Fatalf("n=%d s=%d shard %d: lo=%d, want %d", n, s, i, lo, prevHi)
				}
				if hi < lo {
					t.Fatalf("n=%d s=%d shard %d: hi=%d < lo=%d", n, s, i, hi, lo)
				}
				for j := lo; j < hi; j++ {
					seen[j]++
				}
				prevHi = hi
			}
			if prevHi != n {
				t.Fatalf("n=%d s=%d: last hi=%d, want %d", n, s, prevHi, n)
			}
			for j, c := range seen {
				if c != 1 {
					t.Fatalf("n=%d s=%d: index %d visited %d times", n, s, j, c)
				}
			}
		}
	}
}

func TestShardBoundsBalance(t *testing.T) {
	// Shard sizes differ by at most one element.
	n, s := 100003, 8
	minSz, maxSz := n, 0
	for i := 0; i < s; i++ {
		lo, hi := shardBounds(i, s, n)
		sz := hi - lo
		if sz < minSz {
			minSz = sz
		}
		if sz > maxSz {
			maxSz = sz
		}
	}
	if maxSz-minSz > 1 {
		t.Errorf("shard size spread = %d, want <= 1", maxSz-minSz)
	}
}

func TestForEachShardVisitsEveryIndexOnce(t *testing.T) {
	for _, p := range All {
		for _, n := range []int{0, 1, 100, MinParallelLen - 1, MinParallelLen, 3 * MinParallelLen} {
			visits := make([]atomic.Int32, n)
			ForEachShard(p, n, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					visits[i].Add(1)
				}
			})
			for i := range visits {
				if c := visits[i].Load(); c != 1 {
					t.Fatalf("policy %v n=%d: index %d visited %d times", p, n, i, c)
				}
			}
		}
	}
}

func TestForEachShardEmpty(t *testing.T) {
	for _, p := range All {
		called := false
		ForEachShard(p, 0, func(lo, hi int) { called = true })
		ForEachShard(p, -5, func(lo, hi int) { called = true })
		if called {
			t.Errorf("policy %v: shard func called for empty range", p)
		}
	}
}

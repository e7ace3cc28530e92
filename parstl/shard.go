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
	"runtime"

	"github.com/grailbio/base/traverse"
)

// MinParallelLen is the input length below which parallel policies run
// sequentially. Fan-out overhead (goroutine wake-up plus the traverse
// bookkeeping) exceeds the benefit for short buffers.
const MinParallelLen = 2048

// numShards returns how many shards a parallel policy splits n elements
// into. At most one shard per P, never more shards than elements.
func numShards(n int) int {
	s := runtime.GOMAXPROCS(0)
	if s > n {
		s = n
	}
	if s < 1 {
		s = 1
	}
	return s
}

// shardBounds returns the half-open element range [lo, hi) owned by
// shard i of s. Every index in [0, n) belongs to exactly one shard,
// and leading shards are at most one element larger than trailing ones.
func shardBounds(i, s, n int) (lo, hi int) {
	q, r := n/s, n%s
	lo = i*q + min(i, r)
	hi = lo + q
	if i < r {
		hi++
	}
	return lo, hi
}

// ForEachShard partitions [0, n) and invokes fn once per shard.
//
// Under Seq and Unseq there is a single shard and fn runs on the calling
// goroutine. Under Par and ParUnseq each shard runs on its own goroutine
// via traverse; the call blocks until every shard has returned. fn must
// be safe to run concurrently with itself on disjoint ranges.
//
// This is the single fan-out primitive all policy-aware algorithms are
// built on; anything expressible as independent work over an index range
// reduces to it.
func ForEachShard(p Policy, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if !p.Parallel() || n < MinParallelLen {
		fn(0, n)
		return
	}
	s := numShards(n)
	if s == 1 {
		fn(0, n)
		return
	}
	// fn has no error path; traverse's error is always nil here.
	_ = traverse.Each(s, func(shard int) error {
		lo, hi := shardBounds(shard, s, n)
		fn(lo, hi)
		return nil
	})
}

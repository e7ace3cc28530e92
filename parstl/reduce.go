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

import "github.com/grailbio/base/traverse"

// TransformReduce fuses an element-wise combine of a and b with an
// aggregation, in one pass: it computes
//
//	init ⊕ (a[0] ⊗ b[0]) ⊕ (a[1] ⊗ b[1]) ⊕ ...
//
// where ⊗ is transform and ⊕ is reduce. If the slices have different
// lengths, the shorter one bounds the work. Empty input returns init.
//
// reduce must be associative and commutative: under parallel policies
// each shard folds its own partial and the partials are combined in
// shard order, so the grouping differs from the sequential left fold.
// For floating point this reassociation can move the result by a few
// ulps relative to Seq. That drift is inherent, not a bug.
//
// Example (dot product):
//
//	dot := parstl.TransformReduce(parstl.Par, a, b, 0.0,
//		func(x, y float64) float64 { return x + y },
//		func(x, y float64) float64 { return x * y })
func TransformReduce[T, R any](p Policy, a, b []T, init R, reduce func(R, R) R, transform func(T, T) R) R {
	n := min(len(a), len(b))
	return ReduceShards(p, n, init, reduce, func(lo, hi int) R {
		acc := transform(a[lo], b[lo])
		for i := lo + 1; i < hi; i++ {
			acc = reduce(acc, transform(a[i], b[i]))
		}
		return acc
	})
}

// ReduceShards runs kernel over each shard of [0, n) under p and folds
// the per-shard partial results with reduce, seeded by init. It is the
// block-kernel counterpart of TransformReduce: operations with SIMD or
// unrolled reduction kernels (contrib/dot) hand the whole shard to the
// kernel instead of going through a per-element closure.
//
// kernel is never invoked with an empty range; n <= 0 returns init.
func ReduceShards[R any](p Policy, n int, init R, reduce func(R, R) R, kernel func(lo, hi int) R) R {
	if n <= 0 {
		return init
	}
	if !p.Parallel() || n < MinParallelLen {
		return reduce(init, kernel(0, n))
	}
	s := numShards(n)
	partials := make([]R, s)
	_ = traverse.Each(s, func(shard int) error {
		lo, hi := shardBounds(shard, s, n)
		partials[shard] = kernel(lo, hi)
		return nil
	})
	acc := init
	for i := 0; i < s; i++ {
		acc = reduce(acc, partials[i])
	}
	return acc
}

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
	"slices"

	"github.com/grailbio/base/traverse"
)

// minParallelSortLen is the length below which SortFunc ignores parallel
// policies. Sorting a shard this small is cheaper than the merge rounds.
const minParallelSortLen = 4096

// SortFunc sorts s in ascending order as determined by cmp, which must
// return a negative number when a < b, zero when a == b, and a positive
// number when a > b. The sort is not stable.
//
// Comparison sorting has no vectorized form, so Unseq folds to Seq and
// ParUnseq to Par. Under parallel policies the slice is split into one
// shard per P, shards are sorted concurrently, and sorted runs are
// merged pairwise, also concurrently, until one run remains.
func SortFunc[T any](p Policy, s []T, cmp func(a, b T) int) {
	if !p.Parallel() || len(s) < minParallelSortLen {
		slices.SortFunc(s, cmp)
		return
	}
	parallelSortFunc(s, cmp)
}

// parallelSortFunc is a merge sort over concurrently pre-sorted shards.
// It ping-pongs between s and one scratch buffer of equal length; after
// the final round the sorted data is copied back into s if it ended up
// in the scratch.
func parallelSortFunc[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	shards := numShards(n)
	// Merging wants a power-of-two run count so rounds pair up evenly.
	runs := 1
	for runs*2 <= shards {
		runs *= 2
	}

	bounds := make([]int, runs+1)
	for i := 0; i <= runs; i++ {
		bounds[i] = i * n / runs
	}

	_ = traverse.Each(runs, func(r int) error {
		slices.SortFunc(s[bounds[r]:bounds[r+1]], cmp)
		return nil
	})
	if runs == 1 {
		return
	}

	scratch := make([]T, n)
	src, dst := s, scratch
	for width := 1; width < runs; width *= 2 {
		pairs := runs / (width * 2)
		_ = traverse.Each(pairs, func(pr int) error {
			lo := bounds[pr*width*2]
			mid := bounds[pr*width*2+width]
			hi := bounds[pr*width*2+width*2]
			mergeRuns(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
			return nil
		})
		src, dst = dst, src
	}
	if &src[0] != &s[0] {
		copy(s, src)
	}
}

// mergeRuns merges the sorted runs a and b into out.
// len(out) must equal len(a)+len(b).
func mergeRuns[T any](out, a, b []T, cmp func(x, y T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}

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

// Transform applies fn to each element of in, writing results into out.
// If the slices have different lengths, the shorter one bounds the work.
// fn must be free of cross-element side effects: under parallel policies
// it runs concurrently against disjoint elements.
//
// The per-element function cannot be vectorized by the core, so Unseq
// behaves like Seq here. Operations with unrolled kernel variants should
// build on ForEachShard directly and elect their kernel from
// Policy.Vectorized; see the contrib packages.
//
// Example:
//
//	in := []float64{1, 4, 9}
//	out := make([]float64, len(in))
//	parstl.Transform(parstl.Par, in, out, math.Sqrt)
//	// out = [1, 2, 3]
func Transform[T, U any](p Policy, in []T, out []U, fn func(T) U) {
	n := min(len(in), len(out))
	ForEachShard(p, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = fn(in[i])
		}
	})
}

// Generate fills dst by invoking fn once per element. Under parallel
// policies fn is called concurrently, so it must either be stateless or
// manage its own per-goroutine state (see randgen).
//
// For generators with meaningful per-worker state, GenerateFrom is
// usually the better fit.
func Generate[T any](p Policy, dst []T, fn func() T) {
	ForEachShard(p, len(dst), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn()
		}
	})
}

// GenerateFrom fills dst like Generate, but calls newFn once per shard
// and uses the returned generator for that shard's elements. This keeps
// generator state explicitly per-worker instead of shared: each parallel
// shard owns an independent generator for its lifetime.
//
// Example:
//
//	parstl.GenerateFrom(parstl.Par, dst, func() func() float64 {
//		rng := randgen.New()
//		return func() float64 { return rng.Float64(0, 1) }
//	})
func GenerateFrom[T any](p Policy, dst []T, newFn func() func() T) {
	ForEachShard(p, len(dst), func(lo, hi int) {
		fn := newFn()
		for i := lo; i < hi; i++ {
			dst[i] = fn()
		}
	})
}

// ForEachIndex invokes fn for every index in the virtual ascending range
// [0, n), without materializing a backing container. Under parallel
// policies indexes are sharded across goroutines; fn must write only to
// state owned by its own index.
//
// n <= 0 completes immediately without invoking fn.
func ForEachIndex(p Policy, n int, fn func(i int)) {
	ForEachShard(p, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

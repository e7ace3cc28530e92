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

// Package parstl provides slice algorithms parameterized by an execution
// policy, in the shape of the C++17 parallel algorithms: the same call
// runs as a sequential loop, an unrolled single-thread loop, a
// multi-goroutine fan-out, or both, depending on the Policy passed.
//
// # Policies
//
// Four policies form a closed set: Seq, Unseq, Par, ParUnseq. Seq is
// the reference implementation; the others are scheduling strategies
// that must agree with it. Element-wise algorithms (Transform,
// ForEachIndex) produce bit-identical output under every policy.
// Reductions (TransformReduce) may differ from Seq in the last bits
// under parallel policies because shard partials are reassociated.
//
// # Algorithms
//
//   - Transform: element-wise map into an output slice.
//   - Generate / GenerateFrom: fill a slice from a generator, with
//     per-shard generator state for parallel safety.
//   - SortFunc: comparison sort; parallel policies shard-sort and merge.
//   - TransformReduce / ReduceShards: fused combine-then-aggregate.
//   - ForEachIndex / ForEachShard: per-index work over a virtual
//     ascending range, no backing container.
//
// # Concurrency model
//
// Parallel policies fan out over at most GOMAXPROCS goroutines via
// grailbio traverse and block until all shards return. The library
// itself holds no locks and no shared mutable state; caller-supplied
// functions run concurrently against disjoint index ranges and must
// keep their side effects confined to their own elements.
//
// Operations with vectorized kernel variants live under contrib; they
// elect kernels from Policy.Vectorized and the detected CPU features
// (see SimdName). PARSTL_NOSIMD=1 forces the portable kernels.
package parstl

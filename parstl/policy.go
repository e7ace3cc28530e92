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

import "fmt"

// Policy selects how an algorithm schedules its per-element work.
// It is a closed enumeration modeled on the C++17 execution policies:
// a sequential loop, a vectorized (unrolled single-thread) loop, a
// multi-goroutine fan-out, or both combined.
//
// Seq is the reference policy: for element-wise algorithms every other
// policy must produce bit-identical output on the same input, and for
// reductions output equal within floating-point reassociation tolerance.
type Policy uint8

const (
	// Seq runs the algorithm as a plain sequential loop.
	Seq Policy = iota

	// Unseq runs single-threaded but uses the unrolled/SIMD kernel
	// variants where an operation provides them.
	Unseq

	// Par fans the index range out across GOMAXPROCS goroutines,
	// each running the scalar kernel over its shard.
	Par

	// ParUnseq combines Par's fan-out with Unseq's kernels.
	ParUnseq
)

// All lists every policy in dispatch order. Benchmark grids and the
// manual timing flow iterate this.
var All = []Policy{Seq, Unseq, Par, ParUnseq}

// Parallel reports whether p fans work out across goroutines.
func (p Policy) Parallel() bool { return p == Par || p == ParUnseq }

// Vectorized reports whether p selects the unrolled/SIMD kernel variants.
func (p Policy) Vectorized() bool { return p == Unseq || p == ParUnseq }

func (p Policy) String() string {
	switch p {
	case Seq:
		return "seq"
	case Unseq:
		return "unseq"
	case Par:
		return "par"
	case ParUnseq:
		return "par_unseq"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy converts a policy name back into its Policy value.
// Accepted names are exactly the String() forms: "seq", "unseq",
// "par", "par_unseq".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "seq":
		return Seq, nil
	case "unseq":
		return Unseq, nil
	case "par":
		return Par, nil
	case "par_unseq":
		return ParUnseq, nil
	}
	return Seq, fmt.Errorf("parstl: unknown policy %q", s)
}

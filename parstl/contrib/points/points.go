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

// Package points is the vector sort operation: a buffer of 4-component
// points ordered by their X coordinate, with a comparison that inspects
// only that one field.
//
// Comparison sorting cannot be vectorized across lanes, so only the
// sequential and parallel policies are meaningful; parstl.SortFunc
// folds the vectorized policies to their non-vectorized counterparts.
package points

import (
	"github.com/ajroetker/go-parstl/parstl"
	"github.com/ajroetker/go-parstl/parstl/randgen"
)

// Vec4 is a 4-component point. W is a homogeneous coordinate carried
// along untouched; nothing here computes with it.
type Vec4 struct {
	X, Y, Z, W float32
}

// Fill fills pts with points whose X, Y, Z are uniform in [-1, 1] and
// whose W is 1, under p, one random engine per parallel shard.
func Fill(p parstl.Policy, pts []Vec4) {
	parstl.GenerateFrom(p, pts, func() func() Vec4 {
		rng := randgen.New()
		return func() Vec4 {
			return Vec4{
				X: rng.Float32(-1, 1),
				Y: rng.Float32(-1, 1),
				Z: rng.Float32(-1, 1),
				W: 1,
			}
		}
	})
}

// SortByX sorts pts ascending by X under p. The sort is not stable:
// points with equal X keep no particular relative order.
func SortByX(p parstl.Policy, pts []Vec4) {
	parstl.SortFunc(p, pts, func(a, b Vec4) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})
}

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

package points

import (
	"slices"
	"sort"
	"testing"

	"github.com/ajroetker/go-parstl/parstl"
)

func TestFillBoundsAndW(t *testing.T) {
	pts := make([]Vec4, 10_000)
	Fill(parstl.Par, pts)
	for i, pt := range pts {
		if pt.X < -1 || pt.X > 1 || pt.Y < -1 || pt.Y > 1 || pt.Z < -1 || pt.Z > 1 {
			t.Fatalf("pts[%d] = %+v has a coordinate outside [-1, 1]", i, pt)
		}
		if pt.W != 1 {
			t.Fatalf("pts[%d].W = %v, want 1", i, pt.W)
		}
	}
}

func TestSortByXAdjacency(t *testing.T) {
	// Both below and above the parallel sort threshold.
	for _, n := range []int{0, 1, 100, 5000, 50_000} {
		for _, p := range parstl.All {
			pts := make([]Vec4, n)
			Fill(parstl.Seq, pts)
			SortByX(p, pts)
			for i := 1; i < len(pts); i++ {
				if pts[i-1].X > pts[i].X {
					t.Fatalf("policy %v n=%d: pts[%d].X=%v > pts[%d].X=%v", p, n, i-1, pts[i-1].X, i, pts[i].X)
				}
			}
		}
	}
}

func TestSortByXPreservesPoints(t *testing.T) {
	n := 20_000
	pts := make([]Vec4, n)
	Fill(parstl.Seq, pts)
	orig := slices.Clone(pts)

	SortByX(parstl.Par, pts)

	// The sort is not stable, so compare the X coordinate sequence
	// against a reference sort of the original rather than whole
	// points.
	sort.Slice(orig, func(i, j int) bool { return orig[i].X < orig[j].X })
	for i := range pts {
		if pts[i].X != orig[i].X {
			t.Fatalf("X sequence diverges at %d: %v vs %v", i, pts[i].X, orig[i].X)
		}
	}
}

func TestSortByXSeqParAgree(t *testing.T) {
	n := 30_000
	base := make([]Vec4, n)
	Fill(parstl.Seq, base)

	seq := slices.Clone(base)
	par := slices.Clone(base)
	SortByX(parstl.Seq, seq)
	SortByX(parstl.Par, par)

	for i := range seq {
		if seq[i].X != par[i].X {
			t.Fatalf("X order diverges at %d: seq %v vs par %v", i, seq[i].X, par[i].X)
		}
	}
}

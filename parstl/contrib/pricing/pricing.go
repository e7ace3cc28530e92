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

// Package pricing is the index-driven computation: per-index population
// of three parallel buffers (price, quantity, discount) followed by a
// profit computation that is a pure function of the index. It exists to
// exercise ForEachIndex, the counting-iterator analog, where nothing is
// iterated but a virtual integer range.
package pricing

import (
	"github.com/ajroetker/go-parstl/parstl"
	"github.com/ajroetker/go-parstl/parstl/randgen"
)

// Generation bounds. Prices in [0.5, 100], quantities in [1, 100],
// discounts capped at 50%.
const (
	MinPrice    = 0.5
	MaxPrice    = 100.0
	MinQuantity = 1
	MaxQuantity = 100
	MaxDiscount = 0.5
)

// Ledger holds the four parallel buffers of one trial. Index i across
// all four slices describes one line item.
type Ledger struct {
	Prices     []float64
	Quantities []int
	Discounts  []float64
	Profits    []float64
}

// NewLedger allocates a ledger of n line items.
func NewLedger(n int) *Ledger {
	return &Ledger{
		Prices:     make([]float64, n),
		Quantities: make([]int, n),
		Discounts:  make([]float64, n),
		Profits:    make([]float64, n),
	}
}

// Len returns the number of line items.
func (l *Ledger) Len() int { return len(l.Prices) }

// Fill populates price, quantity, and discount for every index under p.
// Each index is written independently; parallel shards draw from their
// own random engines.
func (l *Ledger) Fill(p parstl.Policy) {
	parstl.ForEachShard(p, l.Len(), func(lo, hi int) {
		rng := randgen.New()
		for i := lo; i < hi; i++ {
			l.Prices[i] = rng.Float64(MinPrice, MaxPrice)
			l.Quantities[i] = rng.Int(MinQuantity, MaxQuantity)
			l.Discounts[i] = rng.Float64(0, MaxDiscount)
		}
	})
}

// Profit computes profit[i] = price[i] × (1 − discount[i]) × quantity[i]
// for every index under p, reading the three input buffers and writing
// only the profit buffer. The arithmetic is identical under every
// policy, so outputs match Seq bit for bit.
func (l *Ledger) Profit(p parstl.Policy) {
	kernel := profitScalar
	if p.Vectorized() && !parstl.NoSimdEnv() {
		kernel = profitUnrolled4
	}
	parstl.ForEachShard(p, l.Len(), func(lo, hi int) {
		kernel(l.Profits[lo:hi], l.Prices[lo:hi], l.Discounts[lo:hi], l.Quantities[lo:hi])
	})
}

func profitScalar(profit, price, discount []float64, quantity []int) {
	for i := range profit {
		profit[i] = price[i] * (1 - discount[i]) * float64(quantity[i])
	}
}

// profitUnrolled4 is the Unseq kernel: four independent
// multiply-subtract chains per iteration, same arithmetic per element
// as the scalar kernel.
func profitUnrolled4(profit, price, discount []float64, quantity []int) {
	n := len(profit)
	i := 0
	for ; i+4 <= n; i += 4 {
		profit[i] = price[i] * (1 - discount[i]) * float64(quantity[i])
		profit[i+1] = price[i+1] * (1 - discount[i+1]) * float64(quantity[i+1])
		profit[i+2] = price[i+2] * (1 - discount[i+2]) * float64(quantity[i+2])
		profit[i+3] = price[i+3] * (1 - discount[i+3]) * float64(quantity[i+3])
	}
	for ; i < n; i++ {
		profit[i] = price[i] * (1 - discount[i]) * float64(quantity[i])
	}
}

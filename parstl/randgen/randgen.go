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

// Package randgen supplies uniform random values for synthesizing
// benchmark inputs. It is a best-effort numeric utility, not a
// validated API: ranges are taken on faith (lower > upper is not
// guarded) and no randomness quality beyond math/rand is promised.
//
// Concurrent generation never shares engine state. Each Source is a
// single-goroutine engine; parallel fills create one Source per worker
// shard (parstl.GenerateFrom), mirroring a thread-local engine but with
// the ownership explicit in the code. Sources are independently seeded,
// so results are not reproducible across runs. That is accepted: the
// buffers exist only to be timed over.
package randgen

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

var seedCounter atomic.Int64

// Source is a uniform random generator owned by one goroutine.
// It must not be shared across goroutines; create one per worker.
type Source struct {
	rng *rand.Rand
}

// New returns an independently seeded Source. Every call produces a
// distinct stream, including calls made concurrently.
func New() *Source {
	seed := time.Now().UnixNano() + seedCounter.Add(1)
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewSeeded returns a Source with a fixed seed, for tests that want a
// deterministic stream.
func NewSeeded(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [lower, upper].
func (s *Source) Float64(lower, upper float64) float64 {
	return lower + s.rng.Float64()*(upper-lower)
}

// Float32 returns a uniform value in [lower, upper].
func (s *Source) Float32(lower, upper float32) float32 {
	return lower + s.rng.Float32()*(upper-lower)
}

// Int returns a uniform value in [lower, upper], both ends inclusive.
func (s *Source) Int(lower, upper int) int {
	return lower + s.rng.Intn(upper-lower+1)
}

// pool recycles Sources for the package-level convenience functions, so
// a one-off call does not pay seeding cost and concurrent callers never
// contend on a shared engine.
var pool = sync.Pool{New: func() any { return New() }}

// Float64 returns a uniform value in [lower, upper] from a pooled
// engine. Safe for concurrent use. Hot loops should hold their own
// Source instead; the pool round-trip costs more than the draw.
func Float64(lower, upper float64) float64 {
	s := pool.Get().(*Source)
	v := s.Float64(lower, upper)
	pool.Put(s)
	return v
}

// Float32 returns a uniform value in [lower, upper] from a pooled engine.
func Float32(lower, upper float32) float32 {
	s := pool.Get().(*Source)
	v := s.Float32(lower, upper)
	pool.Put(s)
	return v
}

// Int returns a uniform value in [lower, upper] from a pooled engine.
func Int(lower, upper int) int {
	s := pool.Get().(*Source)
	v := s.Int(lower, upper)
	pool.Put(s)
	return v
}

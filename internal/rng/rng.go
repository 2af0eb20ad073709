// Copyright 2026 The gctrace Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rng provides the seeded, cloneable source of randomness used by
// the workload generator.
//
// It is built on math/rand/v2, the only PRNG the teacher pack ever reaches
// for (testdata/repeated/gen.go, internal/swiss/table_bench_test.go): there
// is no third-party PRNG anywhere in the retrieved corpus to wire in
// instead.
package rng

import "math/rand/v2"

// Source is a seeded PRNG whose state can be captured by value. PCG is a
// plain two-uint64 struct, so copying it by value (as [Source.Clone] does)
// is what gives spec.md §8 scenario S6 (PRNG clone independence) for free
// from Go's value semantics: a clone shares no mutable state with its
// origin.
type Source struct {
	pcg  rand.PCG
	rand *rand.Rand
}

// New constructs a Source seeded deterministically from seed.
func New(seed uint64) *Source {
	s := &Source{pcg: *rand.NewPCG(seed, seed)}
	s.rand = rand.New(&s.pcg)
	return s
}

// Clone returns an independent copy of s: advancing the clone never
// affects s, and vice versa.
func (s *Source) Clone() *Source {
	clone := &Source{pcg: s.pcg}
	clone.rand = rand.New(&clone.pcg)
	return clone
}

// IntN returns a pseudo-random number in [0, n).
func (s *Source) IntN(n int) int { return s.rand.IntN(n) }

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (s *Source) Float64() float64 { return s.rand.Float64() }

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

// Package arena provides a fixed-capacity, densely-indexed slot store.
//
// Unlike a general-purpose allocator, a [Slots] value never grows: its
// capacity is fixed at construction, exactly as spec.md requires ("a dense
// vector of Node slots of fixed capacity N, allocated eagerly at
// initialization"). Reclamation is bulk, not per-slot: the owner clears and
// rearranges slots itself (see the mark-compact and stop-and-copy
// collectors), and Slots only supplies the swap/clear primitives that make
// those rearrangements safe.
package arena

// Slots is a fixed-capacity, zero-indexed vector of T.
type Slots[T any] struct {
	data []T
}

// New allocates a Slots with the given capacity, eagerly default-filled.
func New[T any](capacity int) *Slots[T] {
	return &Slots[T]{data: make([]T, capacity)}
}

// FromSlice wraps an existing slice as a Slots, taking ownership of it.
// Used to rebuild a Slots from a deep-copied backing slice (see Clone on
// the two heap types).
func FromSlice[T any](data []T) *Slots[T] {
	return &Slots[T]{data: data}
}

// Raw returns the underlying slice. Callers must not retain it past any
// subsequent call to Swap/Clear/ClearRange on this Slots, except to take an
// independent copy of it (e.g. for Clone).
func (s *Slots[T]) Raw() []T { return s.data }

// Cap returns the total number of slots.
func (s *Slots[T]) Cap() int { return len(s.data) }

// At returns a pointer to the slot at index i.
//
// The caller is responsible for bounds-checking; this mirrors the
// teacher's own "bounds-checked indexed access lives one layer up"
// convention (see the Heap contract's Get/GetMut).
func (s *Slots[T]) At(i int) *T { return &s.data[i] }

// Swap exchanges the contents of slots i and j.
func (s *Slots[T]) Swap(i, j int) { s.data[i], s.data[j] = s.data[j], s.data[i] }

// Clear resets the slot at index i to its zero value.
func (s *Slots[T]) Clear(i int) { var z T; s.data[i] = z }

// ClearRange resets every slot in [lo, hi) to its zero value.
func (s *Slots[T]) ClearRange(lo, hi int) {
	var z T
	for i := lo; i < hi; i++ {
		s.data[i] = z
	}
}

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

// Package gc implements two classical tracing garbage collectors — a
// LISP-2 sliding mark-compact collector and a Cheney semi-space
// stop-and-copy collector — over a shared, index-addressed arena object
// graph, plus the traversal primitives and seeded workload generator
// needed to compare them.
//
// Both collectors implement the same [Heap] contract, so a driver (see
// cmd/gcbench) and the workload generator (see workload.go) are written
// once against that contract and never need to know which algorithm is
// backing a given run.
package gc

// Heap is the abstract arena contract presented to a mutator. Both
// [MarkCompactHeap] and [CopyHeap] implement it.
type Heap interface {
	// Allocate places node into the active region and returns a handle to
	// it. If no slot is available, Allocate runs Collect once against
	// roots and retries; if the heap is still full, it returns
	// ErrHeapExhausted. The returned handle is valid until the next
	// Collect.
	Allocate(roots *Roots, node Node) (NodePointer, error)

	// Collect reclaims unreachable nodes and rewrites roots and
	// intra-heap child handles to their new positions, preserving each
	// surviving node's child insertion order. It restores the
	// no-forwarding-address invariant before returning.
	Collect(roots *Roots) error

	// Get returns a copy of the node at h, or an error if h is out of
	// bounds of the active region.
	Get(h NodePointer) (Node, error)

	// GetMut returns a pointer into the node at h for in-place mutation
	// (e.g. to pop a child), or an error if h is out of bounds of the
	// active region. The pointer is valid only until the next Collect.
	GetMut(h NodePointer) (*Node, error)

	// FreeCount returns the number of occupied slots in the active
	// region.
	FreeCount() int

	// Capacity returns the total usable capacity: the active region size.
	// For a semi-space heap this is half of the physical arena.
	Capacity() int

	// Bound returns an exclusive upper bound on any NodePointer this heap
	// could ever hand back: traversal helpers size their visited bitsets
	// to it. For a mark-compact heap this equals Capacity(); for a
	// semi-space heap it is the physical arena size (2x Capacity()),
	// since handles address either half directly.
	Bound() int
}

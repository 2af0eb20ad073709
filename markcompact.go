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

package gc

import (
	"github.com/tiendc/go-deepcopy"

	"gctrace.dev/gc/internal/arena"
	"gctrace.dev/gc/internal/dbg"
)

// MarkCompactHeap is a single contiguous arena of N slots collected with
// the LISP-2 sliding mark-compact algorithm: four passes (mark, compute
// forwarding addresses, update references, relocate) that slide survivors
// down to [0, free) in place.
//
// A zero MarkCompactHeap is not ready to use; construct one with
// [NewMarkCompactHeap].
type MarkCompactHeap struct {
	slots *arena.Slots[Node]
	free  int // Bump cursor: [0, free) is the occupied prefix.
}

var _ Heap = (*MarkCompactHeap)(nil)

// NewMarkCompactHeap constructs a mark-compact heap with capacity N nodes.
func NewMarkCompactHeap(n int) *MarkCompactHeap {
	return &MarkCompactHeap{slots: arena.New[Node](n)}
}

// Capacity implements [Heap].
func (h *MarkCompactHeap) Capacity() int { return h.slots.Cap() }

// Bound implements [Heap].
func (h *MarkCompactHeap) Bound() int { return h.slots.Cap() }

// FreeCount implements [Heap].
func (h *MarkCompactHeap) FreeCount() int { return h.free }

// Get implements [Heap].
func (h *MarkCompactHeap) Get(p NodePointer) (Node, error) {
	n, err := h.getMut(p)
	if err != nil {
		return Node{}, err
	}
	return *n, nil
}

// GetMut implements [Heap].
func (h *MarkCompactHeap) GetMut(p NodePointer) (*Node, error) {
	return h.getMut(p)
}

func (h *MarkCompactHeap) getMut(p NodePointer) (*Node, error) {
	if int(p) >= h.free {
		return nil, newError(KindInvalidHandle, "handle %d out of bounds of active region [0, %d)", p, h.free)
	}
	return h.slots.At(int(p)), nil
}

// Allocate implements [Heap].
func (h *MarkCompactHeap) Allocate(roots *Roots, node Node) (NodePointer, error) {
	if h.free == h.slots.Cap() {
		if err := h.Collect(roots); err != nil {
			return NoPointer, err
		}
	}
	if h.free == h.slots.Cap() {
		return NoPointer, newError(KindHeapExhausted, "capacity %d exhausted after collection", h.slots.Cap())
	}

	p := NodePointer(h.free)
	*h.slots.At(h.free) = node
	h.free++
	dbg.Log([]any{"%p free=%d", h, h.free}, "allocate", "-> %d", p)
	return p, nil
}

// Collect implements [Heap]. See spec.md §4.2 for the four-pass algorithm.
func (h *MarkCompactHeap) Collect(roots *Roots) error {
	dbg.Log([]any{"%p free=%d", h, h.free}, "collect", "begin")

	// Pass 1: mark, via BFS from every root child.
	worklist := make([]NodePointer, 0, h.free)
	for i := range roots.Nodes {
		worklist = append(worklist, roots.Nodes[i].Children...)
	}
	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]

		if int(p) >= h.free {
			return newError(KindCorrupt, "reference to out-of-bounds handle %d during mark", p)
		}
		n := h.slots.At(int(p))
		if n.Marked() {
			continue
		}
		n.Mark(NoPointer) // Sentinel: marked, relocation not yet computed.
		worklist = append(worklist, n.Children...)
	}

	// Pass 2: compute forwarding addresses by ascending sweep.
	f := 0
	for i := 0; i < h.free; i++ {
		n := h.slots.At(i)
		if n.Marked() {
			n.ForwardingAddress = NodePointer(f)
			f++
		}
	}

	// Pass 3: update references (roots, then intra-heap children) using
	// the forwarding addresses just computed.
	for i := range roots.Nodes {
		for j, c := range roots.Nodes[i].Children {
			t, err := h.forwardOf(c)
			if err != nil {
				return err
			}
			roots.Nodes[i].Children[j] = t
		}
	}
	for i := 0; i < h.free; i++ {
		n := h.slots.At(i)
		if !n.Marked() {
			continue
		}
		for j, c := range n.Children {
			t, err := h.forwardOf(c)
			if err != nil {
				return err
			}
			n.Children[j] = t
		}
	}

	// Pass 4: relocate and unmark. Ascending sweep; t <= i always holds
	// because forwarding addresses only ever move nodes down (or leave
	// them in place), so swapping preserves the invariant that the
	// not-yet-visited suffix still holds all remaining marked nodes in
	// their original relative order.
	for i := 0; i < h.free; i++ {
		n := h.slots.At(i)
		if !n.Marked() {
			continue
		}
		t := int(n.ForwardingAddress)
		n.Unmark()
		if t != i {
			h.slots.Swap(i, t)
		}
	}
	h.slots.ClearRange(f, h.free)
	h.free = f

	dbg.Log([]any{"%p free=%d", h, h.free}, "collect", "end")
	return nil
}

// forwardOf returns the forwarding address of the node at c, which is
// guaranteed to be marked because it was reached from a marked node (or a
// root) during the mark pass.
func (h *MarkCompactHeap) forwardOf(c NodePointer) (NodePointer, error) {
	if int(c) >= h.free {
		return NoPointer, newError(KindCorrupt, "reference to out-of-bounds handle %d during reference update", c)
	}
	n := h.slots.At(int(c))
	if !n.Marked() {
		return NoPointer, newError(KindCorrupt, "reference to unmarked handle %d during reference update", c)
	}
	return n.ForwardingAddress, nil
}

// Clone returns an independent deep copy of h, suitable for running a
// benchmark sweep from a shared baseline (see cmd/gcbench).
func (h *MarkCompactHeap) Clone() *MarkCompactHeap {
	var data []Node
	if err := deepcopy.Copy(&data, h.slots.Raw()); err != nil {
		panic(err)
	}
	return &MarkCompactHeap{slots: arena.FromSlice(data), free: h.free}
}

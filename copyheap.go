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

// CopyHeap is a Cheney semi-space stop-and-copy collector. One physical
// arena of size 2*N is partitioned into two equal semi-spaces of size N;
// collect swaps their roles and copies every reachable node from the old
// to-space (now from-space) into the new one, in BFS order, using the
// not-yet-scanned tail of the destination as its own worklist.
//
// A zero CopyHeap is not ready to use; construct one with [NewCopyHeap].
type CopyHeap struct {
	slots  *arena.Slots[Node]
	extent int // N: size of one semi-space.

	toSpace int // Base offset of the current to-space.
	free    int // Next allocation cursor within [toSpace, top).
	top     int // Exclusive upper bound of the current to-space.
}

var _ Heap = (*CopyHeap)(nil)

// NewCopyHeap constructs a stop-and-copy heap with N usable nodes per
// semi-space (2*N nodes of physical storage).
func NewCopyHeap(n int) *CopyHeap {
	return &CopyHeap{
		slots:   arena.New[Node](2 * n),
		extent:  n,
		toSpace: 0,
		free:    0,
		top:     n,
	}
}

// Capacity implements [Heap]: the usable, single-semi-space capacity.
func (h *CopyHeap) Capacity() int { return h.extent }

// Bound implements [Heap]: handles may address either half of the
// physical arena.
func (h *CopyHeap) Bound() int { return h.slots.Cap() }

// FreeCount implements [Heap]: used cells in the active semi-space.
func (h *CopyHeap) FreeCount() int { return h.free - h.toSpace }

func (h *CopyHeap) fromSpace() int {
	if h.toSpace == 0 {
		return h.extent
	}
	return 0
}

// Get implements [Heap].
func (h *CopyHeap) Get(p NodePointer) (Node, error) {
	n, err := h.getMut(p)
	if err != nil {
		return Node{}, err
	}
	return *n, nil
}

// GetMut implements [Heap].
func (h *CopyHeap) GetMut(p NodePointer) (*Node, error) {
	return h.getMut(p)
}

func (h *CopyHeap) getMut(p NodePointer) (*Node, error) {
	if int(p) < h.toSpace || int(p) >= h.free {
		return nil, newError(KindInvalidHandle, "handle %d out of bounds of active region [%d, %d)", p, h.toSpace, h.free)
	}
	return h.slots.At(int(p)), nil
}

// Allocate implements [Heap].
func (h *CopyHeap) Allocate(roots *Roots, node Node) (NodePointer, error) {
	if h.free == h.top {
		if err := h.Collect(roots); err != nil {
			return NoPointer, err
		}
	}
	if h.free == h.top {
		return NoPointer, newError(KindHeapExhausted, "capacity %d exhausted after collection", h.extent)
	}

	p := NodePointer(h.free)
	*h.slots.At(h.free) = node
	h.free++
	dbg.Log([]any{"%p free=%d", h, h.free}, "allocate", "-> %d", p)
	return p, nil
}

// Collect implements [Heap]. See spec.md §4.3 for the Cheney algorithm.
func (h *CopyHeap) Collect(roots *Roots) error {
	dbg.Log([]any{"%p free=%d", h, h.free}, "collect", "begin")

	// Swap the roles of from-space and to-space.
	h.toSpace = h.fromSpace()
	h.free = h.toSpace
	h.top = h.toSpace + h.extent

	// Open Question (b) of spec.md §9, resolved as strategy (a): the new
	// to-space must start with no forwarding addresses, since copy()
	// relies on HasForward meaning "already relocated" exclusively for
	// from-space nodes. Explicitly clear it up front rather than relying
	// on every writer into from-space having cleared behind itself.
	h.slots.ClearRange(h.toSpace, h.top)

	scan := h.free
	for i := range roots.Nodes {
		for j, c := range roots.Nodes[i].Children {
			t, err := h.copy(c)
			if err != nil {
				return err
			}
			roots.Nodes[i].Children[j] = t
		}
	}
	for scan < h.free {
		n := h.slots.At(scan)
		for j, c := range n.Children {
			t, err := h.copy(c)
			if err != nil {
				return err
			}
			n.Children[j] = t
		}
		scan++
	}

	dbg.Log([]any{"%p free=%d", h, h.free}, "collect", "end")
	return nil
}

// copy relocates the node at h (in from-space) into to-space, returning its
// new handle. If h has already been relocated (it carries a forwarding
// address), copy just returns that address.
func (h *CopyHeap) copy(p NodePointer) (NodePointer, error) {
	from := h.fromSpace()
	if int(p) < from || int(p) >= from+h.extent {
		return NoPointer, newError(KindCorrupt, "reference to handle %d outside from-space during copy", p)
	}

	n := h.slots.At(int(p))
	if n.Marked() {
		return n.ForwardingAddress, nil
	}

	target := h.free
	h.slots.Swap(int(p), target)
	// The node is now at target (to-space). It was unmarked when checked
	// above, so this clear only restates that; the from-space slot at p now
	// holds the cleared to-space contents and receives the forwarding
	// address.
	h.slots.At(target).Unmark()
	n.Mark(NodePointer(target))
	h.free++

	return NodePointer(target), nil
}

// Clone returns an independent deep copy of h, suitable for running a
// benchmark sweep from a shared baseline (see cmd/gcbench).
func (h *CopyHeap) Clone() *CopyHeap {
	var data []Node
	if err := deepcopy.Copy(&data, h.slots.Raw()); err != nil {
		panic(err)
	}
	clone := *h
	clone.slots = arena.FromSlice(data)
	return &clone
}

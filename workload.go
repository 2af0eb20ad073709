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

import "gctrace.dev/gc/internal/rng"

// DefaultSeed is the recommended deterministic seed for the workload
// generator (spec.md §4.4).
const DefaultSeed = 1234

// InflateBinary grows a width-2 binary tree from frontier, breadth-first,
// giving each frontier node children one at a time until h has no free
// slots left. The capacity check is per child, not per pair, so the last
// parent can receive a single child when only one slot remains — this is
// what lets the tree saturate an arena of any parity exactly, the same
// way the per-child check does in the original generator. It returns the
// updated frontier: the nodes not yet given any children, in the order
// they would next receive them. A parent that received only one child
// before the heap filled is not in it.
//
// counter supplies each new node's Value and advances by one per node
// created, so that repeated calls sharing the same counter assign values
// in a single ascending sequence. Callers must not span a call to
// [Heap.Collect] between a frontier obtained from one call and its use in
// another: collect invalidates handles that are not freshly re-read from
// roots (spec.md §5). LinkHeap never needs to, since it pre-checks
// capacity before allocating and therefore never triggers an internal
// collect.
func InflateBinary(h Heap, roots *Roots, frontier []NodePointer, counter *uint32) ([]NodePointer, error) {
	for len(frontier) > 0 && h.FreeCount() < h.Capacity() {
		parent := frontier[0]
		frontier = frontier[1:]

		var children []NodePointer
		for i := 0; i < 2 && h.FreeCount() < h.Capacity(); i++ {
			c, err := h.Allocate(roots, Node{Value: *counter, HasValue: true})
			if err != nil {
				return nil, err
			}
			*counter++
			children = append(children, c)
		}

		pn, err := h.GetMut(parent)
		if err != nil {
			return nil, err
		}
		pn.Children = append(pn.Children, children...)
		frontier = append(frontier, children...)
	}
	return frontier, nil
}

// LinkHeap builds the standard benchmark workload (spec.md §4.4): a root
// seed node (value 1) attached as the sole child of roots' first root,
// breadth-first inflated into a width-2 binary tree until h's capacity is
// saturated, then wired with Capacity() additional cross-edges, each a
// directed child link from a uniformly random node to a uniformly random
// node in the upper half of the arena. The result is a DAG-with-cycles
// whose out-degree distribution is heavy in the upper half.
func LinkHeap(h Heap, roots *Roots, source *rng.Source) error {
	seed, err := h.Allocate(roots, Node{Value: 1, HasValue: true})
	if err != nil {
		return err
	}
	roots.AddChild(0, seed)

	var counter uint32
	if _, err := InflateBinary(h, roots, []NodePointer{seed}, &counter); err != nil {
		return err
	}

	n := h.FreeCount()
	upper := n / 2
	for i := 0; i < h.Capacity(); i++ {
		from := NodePointer(source.IntN(n))
		to := NodePointer(upper + source.IntN(n-upper))

		fn, err := h.GetMut(from)
		if err != nil {
			return err
		}
		fn.Children = append(fn.Children, to)
	}
	return nil
}

// MakeGarbage performs ⌊4·(hi-lo)·ratio⌋ random child-pops within a fixed
// index window [lo, hi) of the arena, each removing the last child of a
// randomly chosen node in the window. This manufactures unreachability
// whose quantity is monotone in ratio (spec.md §4.4).
//
// The window is [2^12, 2^14), as spec.md names literally, when h's
// capacity is at least 2^14. Below that threshold the window is
// undefined by spec.md (Open Question (a), §9); this implementation
// rescales it to [capacity/4, capacity) instead of leaving the behavior
// unspecified, and rejects capacities too small for that rescaled window
// to be meaningful (< 4) with a precondition error, rather than silently
// clamping to an empty or near-empty window.
func MakeGarbage(h Heap, ratio float64, source *rng.Source) error {
	capacity := h.Capacity()
	if capacity < 4 {
		return newError(KindPrecondition, "capacity %d is too small for a make_garbage window", capacity)
	}

	lo, hi := 1<<12, 1<<14
	if capacity < hi {
		lo, hi = capacity/4, capacity
	}

	pops := int(4 * float64(hi-lo) * ratio)
	for i := 0; i < pops; i++ {
		idx := NodePointer(lo + source.IntN(hi-lo))
		n, err := h.GetMut(idx)
		if err != nil {
			return err
		}
		if len(n.Children) > 0 {
			n.Children = n.Children[:len(n.Children)-1]
		}
	}
	return nil
}

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

package gc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	gc "gctrace.dev/gc"
)

// TestCopyHeapSanity mirrors TestMarkCompactSanity under the Cheney
// collector (spec.md §8, scenario S2): same operations, same dump output,
// same terminal exhaustion behavior, with a physical arena twice the
// usable capacity.
func TestCopyHeapSanity(t *testing.T) {
	t.Parallel()

	h := gc.NewCopyHeap(5)
	require.Equal(t, 10, h.Bound())
	roots := gc.NewRoots(1)

	seed, err := h.Allocate(roots, gc.Node{Value: 1, HasValue: true})
	require.NoError(t, err)
	roots.AddChild(0, seed)

	var counter uint32
	_, err = gc.InflateBinary(h, roots, []gc.NodePointer{seed}, &counter)
	require.NoError(t, err)
	require.Equal(t, 5, h.FreeCount())

	dump, err := gc.Dump(h, roots)
	require.NoError(t, err)
	require.Equal(t, "[0] 1, 0, 1, 2, 3", dump)

	_, err = h.Allocate(roots, gc.Node{Value: 99, HasValue: true})
	require.True(t, errors.Is(err, gc.ErrHeapExhausted))

	// The collect run by the failed allocate above copied the seed into the
	// other semi-space, so re-read it from the roots.
	seedNode, err := h.GetMut(roots.Nodes[0].Children[0])
	require.NoError(t, err)
	seedNode.Children = seedNode.Children[1:]

	dump, err = gc.Dump(h, roots)
	require.NoError(t, err)
	require.Equal(t, "[0] 1, 1", dump)

	// InflateBinary never collects on its own, so reclaim the dropped
	// subtree explicitly, then re-derive the live frontier from the roots.
	require.NoError(t, h.Collect(roots))
	seedNode, err = h.GetMut(roots.Nodes[0].Children[0])
	require.NoError(t, err)
	liveChild := seedNode.Children[0]
	frontier, err := gc.InflateBinary(h, roots, []gc.NodePointer{liveChild}, &counter)
	require.NoError(t, err)
	require.NotEmpty(t, frontier)
	require.Equal(t, 5, h.FreeCount())

	_, err = h.Allocate(roots, gc.Node{Value: 100, HasValue: true})
	require.True(t, errors.Is(err, gc.ErrHeapExhausted))
}

// TestCopyHeapSemiSpaceInvariant checks spec.md §8 property 4: after
// collect, every root-child and intra-heap child handle points into the
// new to-space, and free - to_space equals the number of reachable nodes.
func TestCopyHeapSemiSpaceInvariant(t *testing.T) {
	t.Parallel()

	const capacity = 64
	h := gc.NewCopyHeap(capacity)
	roots := gc.NewRoots(1)

	seed, err := h.Allocate(roots, gc.Node{Value: 1, HasValue: true})
	require.NoError(t, err)
	roots.AddChild(0, seed)

	var counter uint32
	_, err = gc.InflateBinary(h, roots, []gc.NodePointer{seed}, &counter)
	require.NoError(t, err)

	nodesBefore, _, err := gc.Count(h, roots)
	require.NoError(t, err)

	require.NoError(t, h.Collect(roots))

	nodesAfter, _, err := gc.Count(h, roots)
	require.NoError(t, err)
	require.Equal(t, nodesBefore, nodesAfter)
	require.Equal(t, nodesAfter, h.FreeCount())

	// Every handle in the active semi-space is contiguous: exactly
	// FreeCount() of the Bound() possible indices resolve successfully.
	var live int
	for i := 0; i < h.Bound(); i++ {
		if _, err := h.Get(gc.NodePointer(i)); err == nil {
			live++
		}
	}
	require.Equal(t, h.FreeCount(), live)
}

// TestCopyHeapLargeGraph exercises spec.md §8 scenario S4's shape: the
// same manual cross-edge graph as TestMarkCompactLargeGraph, run under
// stop-and-copy, checking the same reachability-preservation and
// BFS/DFS-agreement invariants.
func TestCopyHeapLargeGraph(t *testing.T) {
	const capacity = 1_000_000

	h := gc.NewCopyHeap(capacity)
	require.Equal(t, 2*capacity, h.Bound())
	roots := gc.NewRoots(1)

	seed, err := h.Allocate(roots, gc.Node{Value: 1, HasValue: true})
	require.NoError(t, err)
	roots.AddChild(0, seed)

	var counter uint32
	_, err = gc.InflateBinary(h, roots, []gc.NodePointer{seed}, &counter)
	require.NoError(t, err)
	require.Equal(t, capacity, h.FreeCount())

	link := func(from, to int) {
		n, err := h.GetMut(gc.NodePointer(from))
		require.NoError(t, err)
		n.Children = append(n.Children, gc.NodePointer(to))
	}
	link(100, 16383)
	link(100, 300)
	link(300, 8191)
	link(500, 5000)
	link(400, 9000)
	link(9000, 10000)
	link(10000, 9000)

	node8000, err := h.GetMut(8000)
	require.NoError(t, err)
	require.NotEmpty(t, node8000.Children)
	node8000.Children = node8000.Children[:len(node8000.Children)-1]

	sumBefore, err := gc.SumBFS(h, roots)
	require.NoError(t, err)

	freeBefore := h.FreeCount()
	require.NoError(t, h.Collect(roots))
	require.Less(t, h.FreeCount(), freeBefore)

	sumAfter, err := gc.SumBFS(h, roots)
	require.NoError(t, err)
	require.Equal(t, sumBefore, sumAfter)

	sumDFS, err := gc.SumDFS(h, roots)
	require.NoError(t, err)
	require.Equal(t, sumAfter, sumDFS)
}

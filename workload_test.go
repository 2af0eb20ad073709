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
	"testing"

	"github.com/stretchr/testify/require"

	gc "gctrace.dev/gc"
	"gctrace.dev/gc/internal/rng"
)

func TestLinkHeapSaturatesCapacity(t *testing.T) {
	t.Parallel()

	const capacity = 4096
	h := gc.NewMarkCompactHeap(capacity)
	roots := gc.NewRoots(1)
	source := rng.New(1)

	require.NoError(t, gc.LinkHeap(h, roots, source))
	require.Equal(t, capacity, h.FreeCount())

	nodes, _, err := gc.Count(h, roots)
	require.NoError(t, err)
	require.Equal(t, capacity, nodes)
}

func TestLinkHeapDeterministicForSameSeed(t *testing.T) {
	t.Parallel()

	const capacity = 2048

	build := func(seed uint64) string {
		h := gc.NewMarkCompactHeap(capacity)
		roots := gc.NewRoots(1)
		require.NoError(t, gc.LinkHeap(h, roots, rng.New(seed)))
		dump, err := gc.Dump(h, roots)
		require.NoError(t, err)
		return dump
	}

	require.Equal(t, build(42), build(42))
	require.NotEqual(t, build(42), build(43))
}

func TestMakeGarbageIsMonotoneInRatio(t *testing.T) {
	t.Parallel()

	const capacity = 1 << 14

	run := func(ratio float64) int {
		h := gc.NewMarkCompactHeap(capacity)
		roots := gc.NewRoots(1)
		source := rng.New(7)
		require.NoError(t, gc.LinkHeap(h, roots, source))
		require.NoError(t, gc.MakeGarbage(h, ratio, source))

		nodes, _, err := gc.Count(h, roots)
		require.NoError(t, err)
		return nodes
	}

	reachableNone := run(0.0)
	reachableSome := run(0.5)
	reachableLots := run(1.5)

	require.GreaterOrEqual(t, reachableNone, reachableSome)
	require.GreaterOrEqual(t, reachableSome, reachableLots)
}

func TestMakeGarbageRejectsTinyCapacity(t *testing.T) {
	t.Parallel()

	h := gc.NewMarkCompactHeap(2)
	err := gc.MakeGarbage(h, 0.5, rng.New(1))
	require.ErrorIs(t, err, gc.ErrPrecondition)
}

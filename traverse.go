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
	"fmt"
	"strconv"
	"strings"
)

// visited is a dense bitset over NodePointer, sized to a heap's Bound().
// A plain []bool is the right structure here: NodePointer is a small,
// contiguous integer domain, not a sparse or non-integer key space (see
// DESIGN.md for why this isn't a job for a hash-map library).
type visited struct {
	seen []bool
}

func newVisited(capacity int) *visited { return &visited{seen: make([]bool, capacity)} }

func (v *visited) mark(p NodePointer) (wasNew bool) {
	if v.seen[p] {
		return false
	}
	v.seen[p] = true
	return true
}

// SumBFS returns the sum of the Value of every node reachable from roots,
// visiting the graph breadth-first. Cycles and shared subgraphs are
// handled via a visited set, so each reachable node contributes exactly
// once regardless of how many paths reach it.
func SumBFS(h Heap, roots *Roots) (uint32, error) {
	v := newVisited(h.Bound())
	var sum uint32

	queue := rootChildren(roots)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !v.mark(p) {
			continue
		}
		n, err := h.Get(p)
		if err != nil {
			return 0, err
		}
		sum += n.Value
		queue = append(queue, n.Children...)
	}
	return sum, nil
}

// SumDFS is like [SumBFS], but traverses depth-first. Invariant 2 (§8 of
// spec.md) requires SumBFS and SumDFS to agree on every graph; both visit
// every reachable node exactly once, so they always do.
func SumDFS(h Heap, roots *Roots) (uint32, error) {
	v := newVisited(h.Bound())
	var sum uint32

	var stack []NodePointer
	stack = append(stack, rootChildren(roots)...)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !v.mark(p) {
			continue
		}
		n, err := h.Get(p)
		if err != nil {
			return 0, err
		}
		sum += n.Value
		stack = append(stack, n.Children...)
	}
	return sum, nil
}

// Count returns the number of distinct reachable nodes and the total
// out-edge count traversed from roots (duplicate edges into an
// already-visited node, or into the same node from two different parents,
// both count).
func Count(h Heap, roots *Roots) (nodes, edges int, err error) {
	v := newVisited(h.Bound())

	queue := rootChildren(roots)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !v.mark(p) {
			continue
		}
		nodes++

		n, getErr := h.Get(p)
		if getErr != nil {
			return 0, 0, getErr
		}
		edges += len(n.Children)
		queue = append(queue, n.Children...)
	}
	return nodes, edges, nil
}

// Dump renders a BFS-ordered, comma-separated list of values per root,
// joined by " - " between a root's distinct children chains and "\n"
// between roots. Each root line is prefixed with "[<root-value>] ".
//
// Each of a root's direct children starts its own fresh visited set, so a
// node reachable from two of the root's own children is printed once per
// chain that reaches it, not just the first.
func Dump(h Heap, roots *Roots) (string, error) {
	var lines []string
	for _, root := range roots.Nodes {
		var chains []string
		for _, child := range root.Children {
			values, err := bfsChain(h, newVisited(h.Bound()), child)
			if err != nil {
				return "", err
			}
			if len(values) > 0 {
				chains = append(chains, strings.Join(values, ", "))
			}
		}

		lines = append(lines, fmt.Sprintf("[%d] %s", root.Value, strings.Join(chains, " - ")))
	}
	return strings.Join(lines, "\n"), nil
}

func bfsChain(h Heap, v *visited, start NodePointer) ([]string, error) {
	var values []string
	queue := []NodePointer{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !v.mark(p) {
			continue
		}

		n, err := h.Get(p)
		if err != nil {
			return nil, err
		}
		values = append(values, strconv.FormatUint(uint64(n.Value), 10))
		queue = append(queue, n.Children...)
	}
	return values, nil
}

func rootChildren(roots *Roots) []NodePointer {
	var out []NodePointer
	for i := range roots.Nodes {
		out = append(out, roots.Nodes[i].Children...)
	}
	return out
}

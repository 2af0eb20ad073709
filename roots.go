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

import "github.com/tiendc/go-deepcopy"

// Roots is a small ordered sequence of Node values that live outside the
// arena. Only their Children lists matter to a collector: those entries
// enumerate the root set of arena handles. Collectors rewrite root
// children in place when they relocate the objects those handles name.
type Roots struct {
	Nodes []Node
}

// NewRoots constructs an empty Roots container with n root slots, each
// ready to have children attached via AddChild.
func NewRoots(n int) *Roots {
	return &Roots{Nodes: make([]Node, n)}
}

// AddChild appends h to the children list of root i, preserving insertion
// order.
func (r *Roots) AddChild(i int, h NodePointer) {
	r.Nodes[i].Children = append(r.Nodes[i].Children, h)
}

// Clone returns an independent deep copy of r: mutating the clone's node
// slices never affects r's, and vice versa. This is what lets a benchmark
// driver measure repeated operations against the same starting state (see
// cmd/gcbench).
func (r *Roots) Clone() *Roots {
	var out Roots
	if err := deepcopy.Copy(&out, r); err != nil {
		// deepcopy.Copy only fails on unsupported shapes (channels, funcs);
		// Roots contains neither, so this is unreachable in practice.
		panic(err)
	}
	return &out
}

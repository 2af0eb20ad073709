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

// NodePointer is an opaque handle: a non-negative index into an arena.
//
// It is totally ordered and directly comparable. No pointer arithmetic is
// exposed outside a Heap implementation. The zero value, NoPointer, means
// index 0 and is only meaningful as a marker sentinel (see MarkCompactHeap's
// use of it as "marked, relocation not yet computed").
type NodePointer uint32

// NoPointer is the default-constructed NodePointer: index 0.
const NoPointer NodePointer = 0

// Node is a fixed-shape record occupying one arena slot.
//
// Between collections, ForwardingAddress is always absent (HasForward ==
// false) from the mutator's point of view: collectors restore this
// invariant before returning control.
type Node struct {
	// Value is an optional mutator-visible payload. HasValue distinguishes
	// "no value" from a value of zero, since Value itself carries no
	// sentinel.
	Value    uint32
	HasValue bool

	// Children is the ordered, duplicate-permitting out-edge list used for
	// reachability. Insertion order is preserved across collection.
	Children []NodePointer

	// Parent is informational only; neither collector consults it for
	// reachability.
	Parent    NodePointer
	HasParent bool

	// ForwardingAddress is reserved for the collector. In mark-compact it
	// doubles as the mark bit (HasForward == true means "marked") and then
	// as the relocation target. In stop-and-copy it holds the relocation
	// target in from-space.
	ForwardingAddress NodePointer
	HasForward        bool
}

// Marked reports whether this node carries a forwarding address, i.e. it
// has been visited by the current collection pass.
func (n *Node) Marked() bool { return n.HasForward }

// Mark sets the forwarding address to t and marks the node.
func (n *Node) Mark(t NodePointer) {
	n.ForwardingAddress = t
	n.HasForward = true
}

// Unmark clears the forwarding address, restoring the no-forwarding-address
// invariant that must hold between collections.
func (n *Node) Unmark() {
	n.ForwardingAddress = NoPointer
	n.HasForward = false
}

// Reset zeroes n in place; its children slice is set to nil.
func (n *Node) Reset() {
	n.Value, n.HasValue = 0, false
	n.Children = nil
	n.Parent, n.HasParent = NoPointer, false
	n.Unmark()
}

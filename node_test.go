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

	"github.com/stretchr/testify/assert"

	gc "gctrace.dev/gc"
)

func TestNodeMarkUnmark(t *testing.T) {
	t.Parallel()

	var n gc.Node
	assert.False(t, n.Marked())

	n.Mark(gc.NodePointer(7))
	assert.True(t, n.Marked())
	assert.Equal(t, gc.NodePointer(7), n.ForwardingAddress)

	n.Unmark()
	assert.False(t, n.Marked())
	assert.Equal(t, gc.NoPointer, n.ForwardingAddress)
}

func TestNodeReset(t *testing.T) {
	t.Parallel()

	n := gc.Node{
		Value:     5,
		HasValue:  true,
		Children:  []gc.NodePointer{1, 2, 3},
		Parent:    9,
		HasParent: true,
	}
	n.Mark(3)

	n.Reset()
	assert.Equal(t, gc.Node{}, n)
}

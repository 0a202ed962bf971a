// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package scopegc

import "fmt"

// nodeRef is the polymorphic interface the Collector uses to store nodes
// of arbitrarily many different payload types in one list. It is
// implemented only by *Node[T, E] and never appears in the public API —
// hosts interact with concrete *Node[T, E] values and RootRef[T, E]
// handles instead.
type nodeRef interface {
	head() *nodeHead
	markAndCollect(stack *worklist)
	preDrop()
	destroy()
	fmt.Stringer
}

// Node fuses a payload value with its declared edge set and the
// collector's own bookkeeping into one heap-allocated entity. Its address
// is stable from allocation until reclamation.
type Node[T Target[E], E EdgeSet] struct {
	h     nodeHead
	edges E
	value T
}

func newNode[T Target[E], E EdgeSet](value T) *Node[T, E] {
	return &Node[T, E]{
		edges: value.NewEdges(),
		value: value,
	}
}

// Edges returns the node's declared outgoing edge set, so the host can
// wire or rewire references between nodes.
func (n *Node[T, E]) Edges() *E {
	return &n.edges
}

// Value returns the managed payload.
func (n *Node[T, E]) Value() *T {
	return &n.value
}

func (n *Node[T, E]) head() *nodeHead {
	return &n.h
}

// markAndCollect is called by Sweep on every node popped off the worklist.
// The node must currently be markTrace; anything else means the worklist
// was corrupted by something other than normal sweep bookkeeping.
func (n *Node[T, E]) markAndCollect(stack *worklist) {
	if n.h.mark != markTrace {
		panic("scopegc: mark_and_collect called on a node that was not enqueued for tracing")
	}
	n.h.mark = markStrong
	n.edges.collect(stack)
}

// preDropper is the optional hook a payload may implement to observe its
// edges one last time before being destroyed. A payload that does not
// implement it simply receives no callback.
type preDropper[E EdgeSet] interface {
	PreDrop(edges *E)
}

// destroyer is the optional destructor hook. See SPEC_FULL.md §3 for why
// this exists alongside PreDrop: Go has no implicit Drop, so payloads that
// need teardown logic of their own implement this instead.
type destroyer interface {
	Destroy()
}

func (n *Node[T, E]) preDrop() {
	if pd, ok := any(&n.value).(preDropper[E]); ok {
		pd.PreDrop(&n.edges)
	}
}

func (n *Node[T, E]) destroy() {
	if d, ok := any(&n.value).(destroyer); ok {
		d.Destroy()
	}
}

func (n *Node[T, E]) String() string {
	return fmt.Sprintf("Node{root=%d, mark=%s}", n.h.rootCount.Load(), n.h.mark)
}

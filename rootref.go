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

// RootRef is a non-owning handle to a Node whose existence keeps the
// target reachable regardless of the edge graph. Constructing one
// increments the target's root count; Release decrements it. A RootRef
// whose zero value has never been assigned (node == nil) is inert — the
// shape StrongRef.Get returns when a slot is empty.
//
// Go has no destructor to run Release automatically the way
// original_source's RootRef runs dec_root on Drop, so hosts must call
// Release explicitly once a RootRef is no longer needed.
type RootRef[T Target[E], E EdgeSet] struct {
	node *Node[T, E]
}

func newRootRef[T Target[E], E EdgeSet](n *Node[T, E]) RootRef[T, E] {
	n.h.incRoot()
	return RootRef[T, E]{node: n}
}

// Clone constructs a new RootRef to the same target, incrementing its root
// count again.
func (r RootRef[T, E]) Clone() RootRef[T, E] {
	return newRootRef[T, E](r.node)
}

// Release decrements the target's root count. Releasing a RootRef more than
// once is a host bug; it panics when it would take the root count below
// zero. A second Release of one handle while other handles to the same
// node are still held is not detected and lowers the count those handles
// rely on.
func (r RootRef[T, E]) Release() {
	if r.node == nil {
		return
	}
	r.node.h.decRoot()
}

// Node returns the handle's target.
func (r RootRef[T, E]) Node() *Node[T, E] {
	return r.node
}

// Value returns the target's payload.
func (r RootRef[T, E]) Value() *T {
	return r.node.Value()
}

// Edges returns the target's declared edge set.
func (r RootRef[T, E]) Edges() *E {
	return r.node.Edges()
}

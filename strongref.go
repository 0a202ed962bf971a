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

// strongRefCell is the mutable state behind a StrongRef. Keeping it behind
// a pointer lets StrongRef itself stay a small value type with
// value-receiver methods while still sharing interior-mutable state the
// way original_source/src/strong_ref.rs uses a Cell — the closest Go
// analog of a single-threaded interior-mutability cell.
type strongRefCell[T Target[E], E EdgeSet] struct {
	target *Node[T, E]
}

// StrongRef is a single optional, non-owning reference to a node: the
// simplest edge container, and the building block the others compose.
type StrongRef[T Target[E], E EdgeSet] struct {
	cell *strongRefCell[T, E]
}

// NewStrongRef builds a fresh, empty StrongRef. A payload's NewEdges
// method calls this once per node, matching the "build() returns a fresh
// instance holding no edges" contract.
func NewStrongRef[T Target[E], E EdgeSet]() StrongRef[T, E] {
	return StrongRef[T, E]{cell: &strongRefCell[T, E]{}}
}

// Get returns a freshly rooted reference to the slot's current target, or
// false if the slot is empty. Constructing the RootRef increments the
// target's root count.
func (s StrongRef[T, E]) Get() (RootRef[T, E], bool) {
	if s.cell.target == nil {
		return RootRef[T, E]{}, false
	}
	return newRootRef[T, E](s.cell.target), true
}

// SetRef overwrites the slot with a reference to n. The slot itself does
// not hold a root, so this does not change n's root count.
func (s StrongRef[T, E]) SetRef(n *Node[T, E]) {
	s.cell.target = n
}

// Set overwrites the slot, accepting nil to clear it.
func (s StrongRef[T, E]) Set(n *Node[T, E]) {
	s.cell.target = n
}

// SetNone clears the slot.
func (s StrongRef[T, E]) SetNone() {
	s.cell.target = nil
}

func (s StrongRef[T, E]) collect(stack *worklist) {
	if s.cell.target != nil {
		stack.push(s.cell.target)
	}
}

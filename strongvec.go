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

type strongVecCell[T Target[E], E EdgeSet] struct {
	items []*Node[T, E]
}

// StrongVec is a growable sequence of non-owning node references.
type StrongVec[T Target[E], E EdgeSet] struct {
	cell *strongVecCell[T, E]
}

// NewStrongVec builds a fresh, empty StrongVec.
func NewStrongVec[T Target[E], E EdgeSet]() StrongVec[T, E] {
	return StrongVec[T, E]{cell: &strongVecCell[T, E]{}}
}

// Len reports how many slots the vector currently holds.
func (v StrongVec[T, E]) Len() int {
	return len(v.cell.items)
}

// Push appends a reference to n.
func (v StrongVec[T, E]) Push(n *Node[T, E]) {
	v.cell.items = append(v.cell.items, n)
}

// Extend appends references to every node in ns, in order.
func (v StrongVec[T, E]) Extend(ns []*Node[T, E]) {
	v.cell.items = append(v.cell.items, ns...)
}

// Clear empties the vector without touching any referenced node.
func (v StrongVec[T, E]) Clear() {
	v.cell.items = v.cell.items[:0]
}

// Get returns a freshly rooted reference to the node at index, or an error
// wrapping ErrIndexOutOfRange if index is out of range.
func (v StrongVec[T, E]) Get(index int) (RootRef[T, E], error) {
	if index < 0 || index >= len(v.cell.items) {
		return RootRef[T, E]{}, wrapIndexErr(index, len(v.cell.items))
	}
	return newRootRef[T, E](v.cell.items[index]), nil
}

// Set overwrites the slot at index, or returns an error wrapping
// ErrIndexOutOfRange if index is out of range.
func (v StrongVec[T, E]) Set(index int, n *Node[T, E]) error {
	if index < 0 || index >= len(v.cell.items) {
		return wrapIndexErr(index, len(v.cell.items))
	}
	v.cell.items[index] = n
	return nil
}

// GetAll collects every current target as a freshly rooted reference.
func (v StrongVec[T, E]) GetAll() []RootRef[T, E] {
	out := make([]RootRef[T, E], len(v.cell.items))
	for i, n := range v.cell.items {
		out[i] = newRootRef[T, E](n)
	}
	return out
}

func (v StrongVec[T, E]) collect(stack *worklist) {
	for _, n := range v.cell.items {
		stack.push(n)
	}
}

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

// Tuple1 through Tuple4 compose heterogeneous edge sets — an edge set
// built from several differently-typed edge containers, each visited in
// order during collect. original_source/src/struct_ref.rs generates this
// family up to arity 12 via a Rust macro; Go has no variadic generics, so
// SPEC_FULL.md caps the generated family at 4 (the common case) and adds
// Group (below) for wider, homogeneous composition instead of hand-rolling
// eight more near-identical types.

// Tuple1 composes a single EdgeSet; it exists mainly so a payload can name
// a one-element composite type distinctly from using A directly.
type Tuple1[A EdgeSet] struct {
	A A
}

func (t Tuple1[A]) collect(stack *worklist) {
	t.A.collect(stack)
}

// Tuple2 composes two edge sets of possibly different types.
type Tuple2[A EdgeSet, B EdgeSet] struct {
	A A
	B B
}

func (t Tuple2[A, B]) collect(stack *worklist) {
	t.A.collect(stack)
	t.B.collect(stack)
}

// Tuple3 composes three edge sets.
type Tuple3[A EdgeSet, B EdgeSet, C EdgeSet] struct {
	A A
	B B
	C C
}

func (t Tuple3[A, B, C]) collect(stack *worklist) {
	t.A.collect(stack)
	t.B.collect(stack)
	t.C.collect(stack)
}

// Tuple4 composes four edge sets.
type Tuple4[A EdgeSet, B EdgeSet, C EdgeSet, D EdgeSet] struct {
	A A
	B B
	C C
	D D
}

func (t Tuple4[A, B, C, D]) collect(stack *worklist) {
	t.A.collect(stack)
	t.B.collect(stack)
	t.C.collect(stack)
	t.D.collect(stack)
}

// Group composes an arbitrary number of edge sets of the same type,
// decided at construction time rather than baked into the type — the
// homogeneous, variable-width counterpart to the fixed-arity Tuple family.
type Group struct {
	members []EdgeSet
}

// NewGroup builds a Group from the given members.
func NewGroup(members ...EdgeSet) Group {
	return Group{members: members}
}

func (g Group) collect(stack *worklist) {
	for _, m := range g.members {
		m.collect(stack)
	}
}

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

// FixedArray wraps N instances of an EdgeSet whose count is fixed at
// construction and never grows or shrinks — unlike StrongVec. Go cannot
// parameterize an array's length by a type parameter, so the length lives
// as a runtime value rather than in the type, which is the pragmatic
// equivalent of original_source/src/struct_ref.rs's `[T; N]` impl.
type FixedArray[E EdgeSet] struct {
	items []E
}

// NewFixedArray builds a FixedArray of n elements, each produced by build.
func NewFixedArray[E EdgeSet](n int, build func() E) FixedArray[E] {
	items := make([]E, n)
	for i := range items {
		items[i] = build()
	}
	return FixedArray[E]{items: items}
}

// Len reports the array's fixed length.
func (a FixedArray[E]) Len() int {
	return len(a.items)
}

// At returns a pointer to the element at index so the host can mutate it
// in place (e.g. call SetRef on a StrongRef element), or an error wrapping
// ErrIndexOutOfRange if index is out of range.
func (a FixedArray[E]) At(index int) (*E, error) {
	if index < 0 || index >= len(a.items) {
		return nil, wrapIndexErr(index, len(a.items))
	}
	return &a.items[index], nil
}

func (a FixedArray[E]) collect(stack *worklist) {
	for i := range a.items {
		a.items[i].collect(stack)
	}
}

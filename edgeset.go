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

// EdgeSet is the contract every edge container satisfies: it knows how to
// walk its own outgoing edges during a mark phase. Implementations must
// visit every stored edge exactly once per call and must never leak a raw
// node reference outside of this package — the only way a caller may hold
// onto an edge's target is through a freshly constructed RootRef, which
// increments the target's root count.
type EdgeSet interface {
	collect(stack *worklist)
}

// worklist is the mark-phase stack. push centralizes the marking rule
// ("if the target is Unknown, mark it Trace and enqueue it; otherwise skip
// it") in one place so every edge container shares the same idempotent
// behavior instead of re-deriving it.
type worklist struct {
	items []nodeRef
}

func newWorklist(capacity int) *worklist {
	return &worklist{items: make([]nodeRef, 0, capacity)}
}

func (w *worklist) push(n nodeRef) {
	if n == nil {
		return
	}
	h := n.head()
	if h.mark == markUnknown {
		h.mark = markTrace
		w.items = append(w.items, n)
	}
}

func (w *worklist) pop() (nodeRef, bool) {
	if len(w.items) == 0 {
		return nil, false
	}
	n := w.items[len(w.items)-1]
	w.items = w.items[:len(w.items)-1]
	return n, true
}

func (w *worklist) empty() bool {
	return len(w.items) == 0
}

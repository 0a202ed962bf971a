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

import "go.uber.org/atomic"

// nodeHead holds the per-node bookkeeping shared by every payload type:
// how many RootRefs currently point at the node, and where it stands in
// the current mark phase. The two fields are distinct concerns — a rooted
// node is always reachable regardless of its mark.
type nodeHead struct {
	rootCount atomic.Int64
	mark      markState
}

func (h *nodeHead) incRoot() {
	h.rootCount.Inc()
}

// decRoot decrements the root count. A negative result means a RootRef was
// released more than once, a host bug that must not be allowed to silently
// under-count reachability.
func (h *nodeHead) decRoot() {
	if h.rootCount.Dec() < 0 {
		panic("scopegc: root count underflow (RootRef released more than once)")
	}
}

func (h *nodeHead) rooted() bool {
	return h.rootCount.Load() > 0
}

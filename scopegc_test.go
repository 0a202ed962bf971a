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

// Payload types shared across the test files in this package, analogous to
// dig_test_helper.go in the teacher corpus.

// counters tallies hook invocations for a test's lifetime, shared by value
// across every node created from it.
type counters struct {
	preDrops *int
	destroys *int
}

func newCounters() counters {
	pd, d := 0, 0
	return counters{preDrops: &pd, destroys: &d}
}

// link is a self-referential payload with a single outgoing edge, used for
// the cycle/chain scenarios (S1-S4).
type link struct {
	counters
}

type linkEdges struct {
	StrongRef[link, linkEdges]
}

func (l link) NewEdges() linkEdges {
	return linkEdges{StrongRef: NewStrongRef[link, linkEdges]()}
}

func (l link) PreDrop(edges *linkEdges) {
	*l.preDrops++
}

func (l link) Destroy() {
	*l.destroys++
}

// multiLink is a self-referential payload with a vector of outgoing edges,
// used for the vector-of-edges scenario (S7).
type multiLink struct {
	counters
}

type multiLinkEdges struct {
	StrongVec[multiLink, multiLinkEdges]
}

func (m multiLink) NewEdges() multiLinkEdges {
	return multiLinkEdges{StrongVec: NewStrongVec[multiLink, multiLinkEdges]()}
}

func (m multiLink) Destroy() {
	*m.destroys++
}

// forgettable is a leaf payload (no edges) whose Destroy must never run
// when allocated via AllocateForgotten.
type forgettable struct {
	counters
}

func (f forgettable) NewEdges() Unit {
	return Unit{}
}

func (f forgettable) PreDrop(edges *Unit) {
	*f.preDrops++
}

func (f forgettable) Destroy() {
	*f.destroys++
}

// plain is a leaf payload with no optional hooks at all, used wherever a
// test only cares about reachability bookkeeping.
type plain struct {
	n int
}

func (plain) NewEdges() Unit {
	return Unit{}
}

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

// Package scopegc is a scope-bounded, mark-and-sweep collector for managed
// object graphs that may contain cycles.
//
// A host opens a scope with WithScope, allocates payloads through the
// Collector handle it receives, wires references between the resulting
// nodes through each node's declared edge set, and periodically calls
// Sweep to reclaim whatever is no longer reachable. Everything still held
// by the collector is reclaimed when the scope ends, whether or not the
// body returned normally.
//
// # Declaring a payload
//
// A payload type opts into collection by implementing Target, which
// supplies the shape of its outgoing edges. A self-referential graph (the
// common case — a node pointing at other nodes of its own type) needs a
// named edge-set type to close the recursion:
//
//	type Pair struct{}
//
//	type PairEdges struct {
//		scopegc.StrongRef[Pair, PairEdges]
//	}
//
//	func (Pair) NewEdges() PairEdges {
//		return PairEdges{StrongRef: scopegc.NewStrongRef[Pair, PairEdges]()}
//	}
//
// A payload with no managed edges can use Raw instead of writing its own
// Target implementation.
//
// # Allocating and wiring
//
//	scopegc.WithScope(scopegc.DefaultConfig(), func(c *scopegc.Collector) int {
//		a := scopegc.Allocate[Pair, PairEdges](c, Pair{})
//		b := scopegc.Allocate[Pair, PairEdges](c, Pair{})
//		a.Edges().SetRef(b.Node())
//		b.Edges().SetRef(a.Node())
//		a.Release()
//		b.Release()
//		c.Sweep() // both nodes are unreachable; both get reclaimed
//		return c.LiveCount()
//	})
//
// # Root references
//
// Allocate and AllocateForgotten return a RootRef, a value handle whose
// existence keeps its target reachable regardless of the edge graph. A
// RootRef must be released with Release once the host no longer needs it;
// failing to do so simply keeps the node alive across sweeps (it is not a
// memory-safety hazard the way a dangling pointer would be, since Go's own
// garbage collector still owns the underlying memory).
package scopegc

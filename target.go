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

// Target is the contract a payload type must satisfy to be placed under
// collector management. NewEdges is called exactly once, when the payload
// is allocated, to build the node's (initially empty) edge set.
//
// A payload may additionally implement PreDrop(edges *E) to observe its
// edges one last time before being destroyed, and Destroy() to run its own
// cleanup; both are optional and detected structurally, not declared here,
// since spec.md describes the pre-drop hook as optional and Go has no
// built-in destructor for Destroy to override.
type Target[E EdgeSet] interface {
	NewEdges() E
}

// Raw wraps a value that has no managed edges, saving a payload author
// from hand-writing a trivial NewEdges() Unit method. Grounded on
// original_source/src/raw_type.rs's RawType, which serves the same role
// for values that only need to ride along in the collector without ever
// pointing at another node.
//
// Value is held under a named field, not embedded — Go forbids embedding a
// type parameter directly. Because of that, Value's own PreDrop/Destroy
// methods are not promoted onto Raw the way original_source's RawType lets
// a wrapped value's own Drop run automatically; Raw instead forwards to
// them explicitly below, so a wrapped value's optional hooks still fire.
type Raw[T any] struct {
	Value T
}

// NewEdges implements Target[Unit].
func (Raw[T]) NewEdges() Unit {
	return Unit{}
}

// rawPreDropper is the hook a value wrapped in Raw may implement to observe
// its own pending destruction. Unlike the general preDropper[E] hook, it
// takes no edges argument, since a Raw payload never has any.
type rawPreDropper interface {
	PreDrop()
}

// PreDrop implements the optional collector hook by forwarding to Value's
// own PreDrop, if it has one.
func (r Raw[T]) PreDrop(*Unit) {
	if pd, ok := any(&r.Value).(rawPreDropper); ok {
		pd.PreDrop()
	}
}

// Destroy implements the optional collector hook by forwarding to Value's
// own Destroy, if it has one.
func (r Raw[T]) Destroy() {
	if d, ok := any(&r.Value).(destroyer); ok {
		d.Destroy()
	}
}

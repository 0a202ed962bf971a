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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootRefIncrementsRootCount(t *testing.T) {
	n := newNode[plain, Unit](plain{n: 1})
	assert.False(t, n.h.rooted())

	r := newRootRef[plain, Unit](n)
	assert.True(t, n.h.rooted())
	assert.Same(t, n, r.Node())
}

func TestRootRefCloneIncrementsAgain(t *testing.T) {
	n := newNode[plain, Unit](plain{n: 1})
	r := newRootRef[plain, Unit](n)
	r2 := r.Clone()

	assert.Equal(t, int64(2), n.h.rootCount.Load())
	r.Release()
	assert.True(t, n.h.rooted())
	r2.Release()
	assert.False(t, n.h.rooted())
}

func TestRootRefReleaseOnZeroValueIsNoOp(t *testing.T) {
	var r RootRef[plain, Unit]
	assert.NotPanics(t, func() {
		r.Release()
	})
}

func TestRootRefValueAndEdges(t *testing.T) {
	n := newNode[plain, Unit](plain{n: 42})
	r := newRootRef[plain, Unit](n)
	assert.Equal(t, 42, r.Value().n)
	assert.NotNil(t, r.Edges())
}

func TestRootRefDoubleReleasePanics(t *testing.T) {
	n := newNode[plain, Unit](plain{n: 1})
	r := newRootRef[plain, Unit](n)
	r.Release()
	assert.Panics(t, func() {
		r.Release()
	})
}

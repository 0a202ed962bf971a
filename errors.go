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

import "github.com/pkg/errors"

// ErrIndexOutOfRange is the root cause wrapped by out-of-range accesses on
// StrongVec and FixedArray. Callers that need to distinguish this failure
// from other errors should compare with errors.Is / errors.Cause, not a
// string match on Error().
var ErrIndexOutOfRange = errors.New("scopegc: index out of range")

// wrapIndexErr builds a descriptive error for an out-of-range index access,
// retaining ErrIndexOutOfRange as its root cause. Centralized here so every
// edge container reports the same message shape.
func wrapIndexErr(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d (len %d)", index, length)
}

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

// markState tracks a node's progress through one mark phase.
type markState uint8

const (
	// markUnknown is the default state. At the end of a mark phase it means
	// "proven unreachable".
	markUnknown markState = iota

	// markTrace means the node is enqueued for visiting; its edges have not
	// been walked yet.
	markTrace

	// markStrong means the node has been proven reachable: it was markTrace
	// and its edges have been walked.
	markStrong
)

func (s markState) String() string {
	switch s {
	case markUnknown:
		return "unknown"
	case markTrace:
		return "trace"
	case markStrong:
		return "strong"
	default:
		return "invalid"
	}
}

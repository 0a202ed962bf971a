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

import "fmt"

// Config holds construction-time tuning for a Collector.
type Config struct {
	// PreDrop, if true, invokes a payload's optional PreDrop hook on every
	// unreachable node during Sweep and on every remaining live node at
	// scope teardown. Forgotten nodes never receive PreDrop regardless of
	// this setting.
	PreDrop bool

	// InitCap is the capacity reserved for the live list, both at
	// construction and after each Sweep (on top of the surviving count).
	InitCap int

	// ForgetCap is the analogous reserved capacity for the forget list.
	ForgetCap int

	// StackFactor scales the live+forgotten node count to estimate the
	// mark worklist's initial capacity.
	StackFactor float64
}

// DefaultConfig returns the collector's default tuning.
func DefaultConfig() Config {
	return Config{
		PreDrop:     false,
		InitCap:     32,
		ForgetCap:   0,
		StackFactor: 0.10,
	}
}

// Collector owns every node allocated within one scope. It is obtained only
// through WithScope and must not be retained past the body's return.
type Collector struct {
	config    Config
	closed    bool
	live      []nodeRef
	forgotten []nodeRef
}

func newCollector(cfg Config) *Collector {
	return &Collector{
		config:    cfg,
		live:      make([]nodeRef, 0, cfg.InitCap),
		forgotten: make([]nodeRef, 0, cfg.ForgetCap),
	}
}

// WithScope opens a collector scope, runs body with a handle to it, tears
// the scope down, and returns body's result. Teardown runs regardless of
// whether body panics, matching the "teardown proceeds regardless of
// whether body returned normally" guarantee.
func WithScope[R any](cfg Config, body func(*Collector) R) R {
	c := newCollector(cfg)
	defer c.teardown()
	return body(c)
}

// Allocate boxes value into a new node owned by c's live list and returns a
// RootRef to it (root count becomes 1). T and E must both be given
// explicitly at the call site — Go cannot infer E from T's Target[E]
// constraint alone.
func Allocate[T Target[E], E EdgeSet](c *Collector, value T) RootRef[T, E] {
	c.assertOpen()
	n := newNode[T, E](value)
	c.live = append(c.live, n)
	return newRootRef[T, E](n)
}

// AllocateForgotten is identical to Allocate except the node is stored in
// the parallel forget list: on reclamation neither PreDrop nor Destroy is
// invoked, regardless of Config.PreDrop. Use for payloads whose lifetime
// cannot be proven to outlive the scope but whose values are safe to simply
// drop unobserved.
func AllocateForgotten[T Target[E], E EdgeSet](c *Collector, value T) RootRef[T, E] {
	c.assertOpen()
	n := newNode[T, E](value)
	c.forgotten = append(c.forgotten, n)
	return newRootRef[T, E](n)
}

// Reserve ensures the live list can admit n more entries without
// reallocation.
func (c *Collector) Reserve(n int) {
	c.assertOpen()
	if cap(c.live)-len(c.live) < n {
		grown := make([]nodeRef, len(c.live), len(c.live)+n)
		copy(grown, c.live)
		c.live = grown
	}
}

// ReserveForgotten is Reserve's analog for the forget list.
func (c *Collector) ReserveForgotten(n int) {
	c.assertOpen()
	if cap(c.forgotten)-len(c.forgotten) < n {
		grown := make([]nodeRef, len(c.forgotten), len(c.forgotten)+n)
		copy(grown, c.forgotten)
		c.forgotten = grown
	}
}

// LiveCount reports how many nodes the live list currently holds.
func (c *Collector) LiveCount() int {
	return len(c.live)
}

// ForgottenCount reports how many nodes the forget list currently holds.
func (c *Collector) ForgottenCount() int {
	return len(c.forgotten)
}

// Sweep runs one full mark-and-sweep, reclaiming every node (live or
// forgotten) that is not rooted and not reachable from a rooted node. This
// follows the normative algorithm: seed the worklist from root counts, mark
// until the worklist drains, optionally pre-drop every live node left Unknown,
// then rebuild the live and forget lists from the Strong survivors.
func (c *Collector) Sweep() {
	c.assertOpen()

	total := len(c.live) + len(c.forgotten)
	capacity := int(float64(total) * c.config.StackFactor)
	stack := newWorklist(capacity)

	// Seed: anything currently rooted starts Trace and enqueued; everything
	// else starts Unknown.
	for _, n := range c.live {
		seed(n, stack)
	}
	for _, n := range c.forgotten {
		seed(n, stack)
	}

	// Mark: drain the worklist, flipping each Trace node to Strong and
	// enqueueing its Unknown neighbors.
	for {
		n, ok := stack.pop()
		if !ok {
			break
		}
		if n.head().mark != markTrace {
			panic("scopegc: worklist held a node that was not marked Trace")
		}
		n.markAndCollect(stack)
	}

	// Pre-drop pass: every live node left Unknown gets one PreDrop call,
	// strictly before any Destroy. Forgotten nodes never receive PreDrop.
	if c.config.PreDrop {
		for _, n := range c.live {
			if n.head().mark == markUnknown {
				n.preDrop()
			}
		}
	}

	// Reclaim live: keep the Strong survivors, destroy the rest.
	survivors := make([]nodeRef, 0, len(c.live)+c.config.InitCap)
	for _, n := range c.live {
		if n.head().mark == markUnknown {
			n.destroy()
			continue
		}
		survivors = append(survivors, n)
	}
	c.live = survivors

	// Reclaim forgotten: keep the Strong survivors, free the rest without
	// running any hook.
	keptForgotten := make([]nodeRef, 0, len(c.forgotten)+c.config.ForgetCap)
	for _, n := range c.forgotten {
		if n.head().mark == markUnknown {
			continue
		}
		keptForgotten = append(keptForgotten, n)
	}
	c.forgotten = keptForgotten
}

// seed resets n to markUnknown and, if it is currently rooted, hands it to
// push so the Unknown→Trace transition (and the enqueue) happens in the one
// place that knows how to perform it. Setting markTrace here directly
// would make push's "only enqueue if still Unknown" guard reject the node,
// leaving the worklist empty and the mark phase a no-op.
func seed(n nodeRef, stack *worklist) {
	n.head().mark = markUnknown
	if n.head().rooted() {
		stack.push(n)
	}
}

// teardown runs at scope exit: if configured, PreDrop every remaining live
// node, then Destroy it; forgotten nodes are dropped with no hook at all.
// Teardown is unconditional — it destroys every remaining node regardless
// of root count, since no RootRef may outlive the scope.
func (c *Collector) teardown() {
	if c.closed {
		return
	}
	if c.config.PreDrop {
		for _, n := range c.live {
			n.preDrop()
		}
	}
	for _, n := range c.live {
		n.destroy()
	}
	c.live = nil
	c.forgotten = nil
	c.closed = true
}

func (c *Collector) assertOpen() {
	if c.closed {
		panic("scopegc: collector used after its scope has torn down")
	}
}

// String reports aggregate node counts and whether the scope has torn
// down, nothing per node. Graph-dump/debug-print output
// is explicitly out of scope; this mirrors the teacher's shallow String
// methods rather than the original crate's full recursive Debug dump.
func (c *Collector) String() string {
	return fmt.Sprintf("Collector{live=%d, forgotten=%d, closed=%t}", len(c.live), len(c.forgotten), c.closed)
}

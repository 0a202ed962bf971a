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
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.PreDrop)
	assert.Equal(t, 32, cfg.InitCap)
	assert.Equal(t, 0, cfg.ForgetCap)
	assert.Equal(t, 0.10, cfg.StackFactor)
}

// S1 — Simple cycle collection.
func TestSweepReclaimsUnrootedCycle(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		a := Allocate[link, linkEdges](c, link{counters: counters})
		b := Allocate[link, linkEdges](c, link{counters: counters})
		a.Edges().SetRef(b.Node())
		b.Edges().SetRef(a.Node())
		a.Release()
		b.Release()

		c.Sweep()

		assert.Equal(t, 2, *counters.destroys)
		assert.Equal(t, 0, c.LiveCount())
		return struct{}{}
	})
}

// S2 — Rooted cycle survival.
func TestSweepPreservesRootedCycleUntilRootDropped(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		a := Allocate[link, linkEdges](c, link{counters: counters})
		b := Allocate[link, linkEdges](c, link{counters: counters})
		a.Edges().SetRef(b.Node())
		b.Edges().SetRef(a.Node())
		b.Release()

		c.Sweep()
		assert.Equal(t, 2, c.LiveCount())
		assert.Equal(t, 0, *counters.destroys)

		a.Release()
		c.Sweep()
		assert.Equal(t, 0, c.LiveCount())
		assert.Equal(t, 2, *counters.destroys)
		return struct{}{}
	})
}

// S3 — Chain reachability.
func TestSweepChainReachability(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		a := Allocate[link, linkEdges](c, link{counters: counters})
		b := Allocate[link, linkEdges](c, link{counters: counters})
		cc := Allocate[link, linkEdges](c, link{counters: counters})
		a.Edges().SetRef(b.Node())
		b.Edges().SetRef(cc.Node())
		b.Release()
		cc.Release()

		c.Sweep()
		assert.Equal(t, 3, c.LiveCount(), "all three reachable from A")

		a.Edges().SetNone()
		c.Sweep()
		assert.Equal(t, 1, c.LiveCount(), "only A survives")
		assert.Equal(t, 2, *counters.destroys)
		return struct{}{}
	})
}

// S4 — Scope teardown reclaims everything.
func TestScopeTeardownReclaimsAllLiveNodes(t *testing.T) {
	counters := newCounters()
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		for i := 0; i < 10; i++ {
			r := Allocate[link, linkEdges](c, link{counters: counters})
			r.Release()
		}
		// deliberately no Sweep() call before scope exit
		return struct{}{}
	})
	assert.Equal(t, 10, *counters.destroys)
}

// S5 — Forget mode skips destructors.
func TestForgottenNodesSkipDestructorsOnSweep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreDrop = false
	WithScope(cfg, func(c *Collector) struct{} {
		counters := newCounters()
		r := AllocateForgotten[forgettable, Unit](c, forgettable{counters: counters})
		r.Release()

		c.Sweep()

		assert.Equal(t, 0, *counters.destroys)
		assert.Equal(t, 0, *counters.preDrops)
		assert.Equal(t, 0, c.ForgottenCount())
		return struct{}{}
	})
}

// S6 — Pre-drop ordering: every pre_drop must precede every destroy.
func TestSweepPreDropOrderingPrecedesDestroy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreDrop = true
	WithScope(cfg, func(c *Collector) struct{} {
		var order []string

		a := Allocate[orderedLink, orderedLinkEdges](c, orderedLink{order: &order, name: "a"})
		b := Allocate[orderedLink, orderedLinkEdges](c, orderedLink{order: &order, name: "b"})
		a.Edges().SetRef(b.Node())
		b.Edges().SetRef(a.Node())
		a.Release()
		b.Release()

		c.Sweep()

		require.Len(t, order, 4)
		preDropEvents := map[string]bool{}
		destroyIndex := map[string]int{}
		for i, ev := range order {
			switch ev {
			case "predrop:a", "predrop:b":
				preDropEvents[ev] = true
			case "destroy:a", "destroy:b":
				destroyIndex[ev] = i
			}
		}
		assert.Len(t, preDropEvents, 2)
		for _, ev := range order[:2] {
			assert.Contains(t, ev, "predrop:", "first two events must be pre-drops")
		}
		return struct{}{}
	})
}

// S7 — Vector of edges.
func TestSweepVectorOfEdges(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		hub := Allocate[multiLink, multiLinkEdges](c, multiLink{counters: counters})

		const leafCount = 100
		for i := 0; i < leafCount; i++ {
			leaf := Allocate[multiLink, multiLinkEdges](c, multiLink{counters: counters})
			hub.Edges().Push(leaf.Node())
			leaf.Release()
		}

		c.Sweep()
		assert.Equal(t, leafCount+1, c.LiveCount())

		hub.Edges().Clear()
		c.Sweep()
		assert.Equal(t, 1, c.LiveCount())
		assert.Equal(t, leafCount, *counters.destroys)
		return struct{}{}
	})
}

// Invariant 5: sweeping twice with no mutation in between is idempotent.
func TestSweepIsIdempotentWithNoMutation(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		r := Allocate[link, linkEdges](c, link{counters: counters})
		_ = r

		c.Sweep()
		first := c.LiveCount()
		c.Sweep()
		assert.Equal(t, first, c.LiveCount())
		return struct{}{}
	})
}

// Invariant 4: every surviving node is left Strong after a sweep.
func TestSweepLeavesSurvivorsStrong(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		r := Allocate[link, linkEdges](c, link{counters: counters})
		c.Sweep()
		assert.Equal(t, markStrong, r.Node().h.mark)
		return struct{}{}
	})
}

func TestReserveGrowsCapacityWithoutChangingLength(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		before := c.LiveCount()
		c.Reserve(100)
		assert.Equal(t, before, c.LiveCount())
		assert.GreaterOrEqual(t, cap(c.live)-len(c.live), 100)
		return struct{}{}
	})
}

func TestCollectorOperationsPanicAfterTeardown(t *testing.T) {
	var closed *Collector
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		closed = c
		return struct{}{}
	})

	assert.Panics(t, func() {
		Allocate[plain, Unit](closed, plain{n: 1})
	})
	assert.Panics(t, func() {
		closed.Sweep()
	})
}

func TestCollectorString(t *testing.T) {
	WithScope(DefaultConfig(), func(c *Collector) struct{} {
		counters := newCounters()
		r := Allocate[link, linkEdges](c, link{counters: counters})
		_ = r
		assert.Contains(t, c.String(), "live=1")
		return struct{}{}
	})
}

// orderedLink records pre_drop/destroy events into a shared log so
// TestSweepPreDropOrderingPrecedesDestroy can assert their relative order
// across two nodes.
type orderedLink struct {
	order *[]string
	name  string
}

type orderedLinkEdges struct {
	StrongRef[orderedLink, orderedLinkEdges]
}

func (o orderedLink) NewEdges() orderedLinkEdges {
	return orderedLinkEdges{StrongRef: NewStrongRef[orderedLink, orderedLinkEdges]()}
}

func (o orderedLink) PreDrop(edges *orderedLinkEdges) {
	*o.order = append(*o.order, "predrop:"+o.name)
}

func (o orderedLink) Destroy() {
	*o.order = append(*o.order, "destroy:"+o.name)
}

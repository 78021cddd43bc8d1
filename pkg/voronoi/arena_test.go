package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaRecyclesSlots(t *testing.T) {
	var a arena[int]

	h0, p0 := a.alloc()
	*p0 = 7
	h1, _ := a.alloc()
	assert.Equal(t, 2, a.stat().Live)
	assert.Equal(t, 7, *a.get(h0))

	a.release(h0)
	assert.False(t, a.alive(h0))
	assert.True(t, a.alive(h1))

	h2, p2 := a.alloc()
	assert.Equal(t, h0.idx, h2.idx, "freed slot is reused")
	assert.NotEqual(t, h0.gen, h2.gen)
	assert.Equal(t, 0, *p2, "reused slot is zeroed")

	stat := a.stat()
	assert.Equal(t, PoolStat{Live: 2, Capacity: 2, HighWater: 2}, stat)
}

func TestArenaStaleHandlePanics(t *testing.T) {
	var a arena[int]
	h, _ := a.alloc()
	a.release(h)

	assert.Panics(t, func() { a.get(h) })
	assert.Panics(t, func() { a.release(h) })
	assert.Panics(t, func() { a.get(noHandle) })
}

func TestArenaReserveAndFlush(t *testing.T) {
	var a arena[int]
	a.reserve(16)
	assert.Equal(t, PoolStat{Capacity: 16}, a.stat())

	h, _ := a.alloc()
	assert.Equal(t, 16, a.stat().Capacity, "reserved slots are used first")
	assert.Panics(t, a.flush)

	a.release(h)
	a.flush()
	assert.Equal(t, PoolStat{}, a.stat())
}

func TestFreeList(t *testing.T) {
	var f freeList[Edge, *Edge]
	f.warm(2)
	assert.Equal(t, PoolStat{Capacity: 2}, f.stat())

	e := f.get()
	e.a, e.clipped = 3, true
	assert.False(t, e.pooled)
	f.put(e)
	assert.True(t, e.pooled)
	assert.Zero(t, e.a)
	assert.False(t, e.clipped)

	assert.Panics(t, func() { f.put(e) })

	live := f.get()
	f.flush()
	assert.Equal(t, PoolStat{Live: 1, Capacity: 1, HighWater: 1}, f.stat())
	f.put(live)
}

func TestPoolsInitIsOnlyAHint(t *testing.T) {
	pools := NewPools()
	pools.Init(64, 32, 6, 16)

	stats := pools.Stats()
	assert.Equal(t, 64, stats.Halfedges.Capacity)
	assert.Equal(t, 16, stats.Vertices.Capacity)
	assert.Equal(t, 32, stats.Edges.Capacity)
	assert.Contains(t, pools.String(), "edges per site 6")

	d := New(squarePoints(), squareBounds(), WithPools(pools))
	require.Len(t, d.Edges(), 5)
	for _, s := range d.Sites() {
		assert.GreaterOrEqual(t, cap(s.edges), 6)
	}

	stats = pools.Stats()
	assert.Equal(t, 64, stats.Halfedges.Capacity, "pre-warmed pool is large enough")
	assert.Zero(t, stats.Halfedges.Live)
	assert.Zero(t, stats.Vertices.Live)
	assert.Equal(t, 5, stats.Edges.Live)

	d.FlushPools()
	stats = pools.Stats()
	assert.Zero(t, stats.Halfedges.Capacity)
	assert.Equal(t, 5, stats.Edges.Capacity, "live edges survive a flush")
}

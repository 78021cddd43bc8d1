package voronoi

import "github.com/pkg/errors"

// handle addresses an arena slot. A handle whose generation no longer matches
// the slot is stale: the slot was released (and maybe reused) since the handle
// was taken.
type handle struct {
	idx int32
	gen uint32
}

var noHandle = handle{idx: -1}

func (h handle) valid() bool { return h.idx >= 0 }

// arena is a slot array with a free list. Pointers returned by alloc, get and
// at are only valid until the next alloc.
type arena[T any] struct {
	slots []T
	gens  []uint32
	live  []bool
	free  []int32

	nLive int
	high  int
}

func (a *arena[T]) alloc() (handle, *T) {
	var i int32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		var zero T
		a.slots = append(a.slots, zero)
		a.gens = append(a.gens, 0)
		a.live = append(a.live, false)
		i = int32(len(a.slots) - 1)
	}
	a.live[i] = true
	a.nLive++
	if a.nLive > a.high {
		a.high = a.nLive
	}
	return handle{idx: i, gen: a.gens[i]}, &a.slots[i]
}

// alive reports whether h still addresses the value it was issued for.
func (a *arena[T]) alive(h handle) bool {
	return h.idx >= 0 && int(h.idx) < len(a.slots) && a.live[h.idx] && a.gens[h.idx] == h.gen
}

func (a *arena[T]) get(h handle) *T {
	if !a.alive(h) {
		panic(errors.Errorf("voronoi: stale handle %d/%d", h.idx, h.gen))
	}
	return &a.slots[h.idx]
}

// at dereferences a raw slot index taken from an internal link.
func (a *arena[T]) at(i int32) *T {
	return &a.slots[i]
}

func (a *arena[T]) handleAt(i int32) handle {
	return handle{idx: i, gen: a.gens[i]}
}

func (a *arena[T]) release(h handle) {
	if !a.alive(h) {
		panic(errors.Errorf("voronoi: release of stale handle %d/%d", h.idx, h.gen))
	}
	var zero T
	a.slots[h.idx] = zero
	a.live[h.idx] = false
	a.gens[h.idx]++
	a.free = append(a.free, h.idx)
	a.nLive--
}

// reserve grows the arena to at least n slots, all of them free.
func (a *arena[T]) reserve(n int) {
	var zero T
	for len(a.slots) < n {
		a.slots = append(a.slots, zero)
		a.gens = append(a.gens, 0)
		a.live = append(a.live, false)
		a.free = append(a.free, int32(len(a.slots)-1))
	}
}

// flush drops every slot. It panics if any slot is still live.
func (a *arena[T]) flush() {
	if a.nLive != 0 {
		panic(errors.Errorf("voronoi: flush with %d live entries", a.nLive))
	}
	a.slots, a.gens, a.live, a.free = nil, nil, nil, nil
	a.high = 0
}

func (a *arena[T]) stat() PoolStat {
	return PoolStat{Live: a.nLive, Capacity: len(a.slots), HighWater: a.high}
}

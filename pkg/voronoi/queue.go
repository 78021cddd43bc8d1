package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
)

// eventQueue holds the halfedges with a pending circle event, ordered by
// ystar and then by the vertex x. Each bucket is a sorted singly linked list.
type eventQueue struct {
	arena *arena[halfedge]

	ymin, deltay float64
	heads        []int32

	count     int
	minBucket int
}

func (q *eventQueue) reset(a *arena[halfedge], ymin, deltay float64, sqrtN int) {
	q.arena = a
	q.ymin, q.deltay = ymin, deltay

	size := 4 * sqrtN
	if cap(q.heads) < size {
		q.heads = make([]int32, size)
	}
	q.heads = q.heads[:size]
	for i := range q.heads {
		q.heads[i] = -1
	}
	q.count = 0
	q.minBucket = 0
}

func (q *eventQueue) bucket(h *halfedge) int {
	return bucketIndex(h.ystar, q.ymin, q.deltay, len(q.heads))
}

// insert queues i. Its vertex and ystar must be set.
func (q *eventQueue) insert(i int32) {
	a := q.arena
	h := a.at(i)
	b := q.bucket(h)
	if b < q.minBucket {
		q.minBucket = b
	}

	prev, next := int32(-1), q.heads[b]
	for next >= 0 {
		n := a.at(next)
		if h.ystar < n.ystar || (h.ystar == n.ystar && h.vertex.coord.X <= n.vertex.coord.X) {
			break
		}
		prev, next = next, n.next
	}

	h.next = next
	if prev < 0 {
		q.heads[b] = i
	} else {
		a.at(prev).next = i
	}
	h.inQueue = true
	q.count++
}

// remove takes i out of the queue and clears its vertex. It reports whether
// i was queued at all.
func (q *eventQueue) remove(i int32) bool {
	a := q.arena
	h := a.at(i)
	if !h.inQueue {
		return false
	}

	b := q.bucket(h)
	prev, cur := int32(-1), q.heads[b]
	for cur >= 0 && cur != i {
		prev, cur = cur, a.at(cur).next
	}
	if cur < 0 {
		panic(errors.Errorf("voronoi: queued halfedge %d missing from bucket %d", i, b))
	}

	if prev < 0 {
		q.heads[b] = h.next
	} else {
		a.at(prev).next = h.next
	}
	h.next = -1
	h.inQueue = false
	h.vertex = Vertex{}
	q.count--
	return true
}

func (q *eventQueue) empty() bool {
	return q.count == 0
}

func (q *eventQueue) adjustMinBucket() {
	for q.minBucket < len(q.heads)-1 && q.heads[q.minBucket] < 0 {
		q.minBucket++
	}
}

// min returns the x of the next circle event's vertex and its ystar. The
// queue must not be empty.
func (q *eventQueue) min() geom.Point {
	q.adjustMinBucket()
	h := q.arena.at(q.heads[q.minBucket])
	return geom.Pt(h.vertex.coord.X, h.ystar)
}

func (q *eventQueue) extractMin() int32 {
	q.adjustMinBucket()
	i := q.heads[q.minBucket]
	h := q.arena.at(i)
	q.heads[q.minBucket] = h.next
	h.next = -1
	h.inQueue = false
	q.count--
	return i
}

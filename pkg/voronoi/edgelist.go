package voronoi

import "github.com/0x0FACED/go-delaunay/pkg/geom"

// edgeList is the beach line: halfedges in left to right order between two
// sentinels, with a bucketed x index of hints into the list.
type edgeList struct {
	arena *arena[halfedge]

	xmin, deltax float64
	hash         []handle

	leftEnd, rightEnd int32
}

// reset empties the list for a new sweep. The hash is reused if it is large
// enough.
func (l *edgeList) reset(a *arena[halfedge], xmin, deltax float64, sqrtN int, leftEnd, rightEnd handle) {
	l.arena = a
	l.xmin, l.deltax = xmin, deltax

	size := 2 * sqrtN
	if cap(l.hash) < size {
		l.hash = make([]handle, size)
	}
	l.hash = l.hash[:size]
	for i := range l.hash {
		l.hash[i] = noHandle
	}

	l.leftEnd, l.rightEnd = leftEnd.idx, rightEnd.idx
	a.get(leftEnd).right = rightEnd.idx
	a.get(rightEnd).left = leftEnd.idx

	l.hash[0] = leftEnd
	l.hash[size-1] = rightEnd
}

// insert links nh immediately right of lb.
func (l *edgeList) insert(lb, nh int32) {
	left := l.arena.at(lb)
	h := l.arena.at(nh)
	h.left = lb
	h.right = left.right
	l.arena.at(left.right).left = nh
	left.right = nh
}

// remove unlinks h. Sentinels are never removed.
func (l *edgeList) remove(i int32) {
	h := l.arena.at(i)
	l.arena.at(h.left).right = h.right
	l.arena.at(h.right).left = h.left
	h.left, h.right = -1, -1
}

func (l *edgeList) rightOf(i int32) int32 { return l.arena.at(i).right }
func (l *edgeList) leftOf(i int32) int32  { return l.arena.at(i).left }

// empty reports whether only the sentinels are left.
func (l *edgeList) empty() bool {
	return l.arena.at(l.leftEnd).right == l.rightEnd
}

// leftNeighbor returns the halfedge immediately left of p.
func (l *edgeList) leftNeighbor(p geom.Point) int32 {
	a := l.arena
	bucket := bucketIndex(p.X, l.xmin, l.deltax, len(l.hash))

	he, ok := l.getHash(bucket)
	if !ok {
		for i := 1; ; i++ {
			if he, ok = l.getHash(bucket - i); ok {
				break
			}
			if he, ok = l.getHash(bucket + i); ok {
				break
			}
		}
	}

	if he == l.leftEnd || (he != l.rightEnd && a.at(he).isLeftOf(p)) {
		for {
			he = a.at(he).right
			if he == l.rightEnd || !a.at(he).isLeftOf(p) {
				break
			}
		}
		he = a.at(he).left
	} else {
		for {
			he = a.at(he).left
			if he == l.leftEnd || a.at(he).isLeftOf(p) {
				break
			}
		}
	}

	if bucket > 0 && bucket < len(l.hash)-1 {
		l.hash[bucket] = a.handleAt(he)
	}
	return he
}

// getHash returns the hint stored in bucket b, dropping it if the halfedge it
// names has left the list since.
func (l *edgeList) getHash(b int) (int32, bool) {
	if b < 0 || b >= len(l.hash) {
		return -1, false
	}
	h := l.hash[b]
	if !h.valid() {
		return -1, false
	}
	if !l.arena.alive(h) || !l.arena.at(h.idx).listed() {
		l.hash[b] = noHandle
		return -1, false
	}
	return h.idx, true
}

// bucketIndex maps v into [0, size) relative to the range min..min+delta.
// A degenerate range puts everything in bucket 0.
func bucketIndex(v, min, delta float64, size int) int {
	f := (v - min) / delta * float64(size)
	switch {
	case !(f > 0):
		return 0
	case f >= float64(size):
		return size - 1
	}
	return int(f)
}

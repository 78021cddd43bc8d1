package voronoi

import "github.com/pkg/errors"

// Criterion selects which pair of endpoints chains edges together.
type Criterion int

const (
	// ByVertex chains edges through shared Voronoi vertices (region boundaries).
	ByVertex Criterion = iota
	// BySite chains edges through shared sites (the convex hull).
	BySite
)

type endpoint struct {
	vertex Vertex
	site   *Site
}

func (a endpoint) same(b endpoint) bool {
	if a.site != nil || b.site != nil {
		return a.site == b.site
	}
	return a.vertex.Same(b.vertex)
}

func endpoints(e *Edge, c Criterion) (left, right endpoint) {
	if c == BySite {
		return endpoint{site: e.sites[Left]}, endpoint{site: e.sites[Right]}
	}
	return endpoint{vertex: e.vertices[Left]}, endpoint{vertex: e.vertices[Right]}
}

// EdgeReorderer puts an unordered set of edges into traversal order. It keeps
// its buffers between calls and stops allocating once they are large enough.
// The zero value is ready to use.
type EdgeReorderer struct {
	edges []*Edge
	sides []Side
	done  []bool

	head, tail int
}

func NewEdgeReorderer() *EdgeReorderer {
	return &EdgeReorderer{}
}

func (r *EdgeReorderer) grow(n int) {
	if cap(r.edges) < 2*n {
		r.edges = make([]*Edge, 2*n)
		r.sides = make([]Side, 2*n)
	}
	r.edges = r.edges[:2*n]
	r.sides = r.sides[:2*n]
	if cap(r.done) < n {
		r.done = make([]bool, n)
	}
	r.done = r.done[:n]
	clear(r.done)
	r.head, r.tail = n, n
}

func (r *EdgeReorderer) pushBack(e *Edge, s Side) {
	r.edges[r.tail] = e
	r.sides[r.tail] = s
	r.tail++
}

func (r *EdgeReorderer) pushFront(e *Edge, s Side) {
	r.head--
	r.edges[r.head] = e
	r.sides[r.head] = s
}

// Reorder returns edges in traversal order together with the side of each
// edge the traversal enters from. The returned slices belong to r and are
// overwritten by the next call.
func (r *EdgeReorderer) Reorder(edges []*Edge, c Criterion) ([]*Edge, []Side, error) {
	n := len(edges)
	if n == 0 {
		return nil, nil, nil
	}
	r.grow(n)

	first, last := endpoints(edges[0], c)
	if first.vertex.IsAtInfinity() || last.vertex.IsAtInfinity() {
		return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "edge %d ends at infinity", edges[0].index)
	}
	r.pushBack(edges[0], Left)
	r.done[0] = true

	for placed := 1; placed < n; {
		progress := false
		for i := 1; i < n; i++ {
			if r.done[i] {
				continue
			}
			e := edges[i]
			left, right := endpoints(e, c)
			if left.vertex.IsAtInfinity() || right.vertex.IsAtInfinity() {
				return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "edge %d ends at infinity", e.index)
			}
			switch {
			case left.same(last):
				last = right
				r.pushBack(e, Left)
			case right.same(first):
				first = left
				r.pushFront(e, Left)
			case left.same(first):
				first = right
				r.pushFront(e, Right)
			case right.same(last):
				last = left
				r.pushBack(e, Right)
			default:
				continue
			}
			r.done[i] = true
			placed++
			progress = true
		}
		if !progress {
			return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "%d of %d edges do not chain", n-placed, n)
		}
	}

	return r.edges[r.head:r.tail], r.sides[r.head:r.tail], nil
}

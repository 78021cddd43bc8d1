package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainEdge(index int, left, right Vertex) *Edge {
	return &Edge{index: index, vertices: [2]Vertex{left, right}}
}

// square ring v0 -> v1 -> v2 -> v3 -> v0 with every other edge flipped
func ringEdges() []*Edge {
	v := make([]Vertex, 4)
	for i := range v {
		v[i] = finiteVertex(geom.Pt(float64(i), 0), i)
	}
	return []*Edge{
		chainEdge(0, v[0], v[1]),
		chainEdge(1, v[3], v[2]),
		chainEdge(2, v[1], v[2]),
		chainEdge(3, v[0], v[3]),
	}
}

func TestReorderByVertex(t *testing.T) {
	r := NewEdgeReorderer()
	edges, sides, err := r.Reorder(ringEdges(), ByVertex)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	indices := make([]int, len(edges))
	for i, e := range edges {
		indices[i] = e.Index()
	}
	assert.Equal(t, []int{1, 3, 0, 2}, indices)
	assert.Equal(t, []Side{Right, Right, Left, Left}, sides)

	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		exit := e.Vertex(sides[i].Other())
		entry := next.Vertex(sides[(i+1)%len(edges)])
		assert.True(t, exit.Same(entry), "edge %d does not lead into edge %d", e.Index(), next.Index())
	}
}

func TestReorderOpenChain(t *testing.T) {
	v0, v1 := finiteVertex(geom.Pt(0, 0), 0), finiteVertex(geom.Pt(1, 0), 1)
	in := []*Edge{
		chainEdge(0, v0, v1),
		chainEdge(1, Vertex{}, v0),
		chainEdge(2, v1, Vertex{}),
	}
	edges, sides, err := NewEdgeReorderer().Reorder(in, ByVertex)
	require.NoError(t, err)
	assert.Equal(t, []*Edge{in[1], in[0], in[2]}, edges)
	assert.Equal(t, []Side{Left, Left, Left}, sides)
}

func TestReorderBySite(t *testing.T) {
	s := []*Site{site(0, 0, 0), site(1, 0, 1), site(1, 1, 2)}
	in := []*Edge{
		{index: 0, sites: [2]*Site{s[1], s[2]}},
		{index: 1, sites: [2]*Site{s[0], s[1]}},
		{index: 2, sites: [2]*Site{s[0], s[2]}},
	}
	edges, sides, err := NewEdgeReorderer().Reorder(in, BySite)
	require.NoError(t, err)
	require.Len(t, edges, 3)

	var walked []*Site
	for i, e := range edges {
		walked = append(walked, e.Site(sides[i]))
	}
	assert.ElementsMatch(t, s, walked)
}

func TestReorderErrors(t *testing.T) {
	r := NewEdgeReorderer()

	_, _, err := r.Reorder([]*Edge{chainEdge(0, AtInfinity, finiteVertex(geom.Point{}, 0))}, ByVertex)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	v := make([]Vertex, 4)
	for i := range v {
		v[i] = finiteVertex(geom.Pt(float64(i), 1), i)
	}
	_, _, err = r.Reorder([]*Edge{chainEdge(0, v[0], v[1]), chainEdge(1, v[2], v[3])}, ByVertex)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.Contains(t, err.Error(), "1 of 2 edges do not chain")

	edges, sides, err := r.Reorder(nil, ByVertex)
	assert.NoError(t, err)
	assert.Empty(t, edges)
	assert.Empty(t, sides)
}

func TestReorderReusesBuffers(t *testing.T) {
	r := NewEdgeReorderer()
	in := ringEdges()
	_, _, err := r.Reorder(in, ByVertex)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = r.Reorder(in, ByVertex)
	})
	assert.Zero(t, allocs)
}

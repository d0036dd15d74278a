package cdt

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
)

// hexagon is a convex hexagon around a center vertex of degree six.
func hexagon() Input {
	return Input{
		Points: [][]float64{{0, 0}, {2, 0}, {1, 2}, {-1, 2}, {-2, 0}, {-1, -2}, {1, -2}},
	}
}

func degree(m *Mesh, v *Vertex) int {
	o := v.Tri()
	n := 0
	for {
		n++
		o = o.Onext()
		if m.IsOuter(o) || o.Equal(v.Tri()) {
			return n
		}
	}
}

func TestDeleteVertex(t *testing.T) {
	m := triangulate(t, hexagon())
	center := m.InputVertex(0)
	require.Equal(t, 6, m.NumberOfTriangles())
	require.Equal(t, 6, degree(m, center))

	require.NoError(t, m.DeleteVertex(center.Tri()))
	require.True(t, center.IsDead())
	require.Equal(t, 6, m.NumberOfVertices())
	require.Equal(t, 4, m.NumberOfTriangles())
	require.Equal(t, 6, m.HullSize())
	require.NoError(t, m.Check())
}

func TestDeleteVertexAfterInsert(t *testing.T) {
	m := triangulate(t, box(10))
	before := fingerprint(m)

	_, o, err := m.InsertPoint(r2.Point{X: 3, Y: 4}, Otri{}, false, false)
	require.NoError(t, err)
	_, _, err = m.InsertPoint(r2.Point{X: 6, Y: 7}, o, false, false)
	require.NoError(t, err)

	for _, p := range []r2.Point{{X: 3, Y: 4}, {X: 6, Y: 7}} {
		r, o := m.Locate(p, Otri{})
		require.Equal(t, OnVertex, r)
		require.NoError(t, m.DeleteVertex(o))
		require.NoError(t, m.Check())
	}
	require.Equal(t, 4, m.NumberOfVertices())
	require.Equal(t, 2, m.NumberOfTriangles())
	// Either diagonal of the square is Delaunay, so only the counts are
	// compared.
	require.Len(t, fingerprint(m), len(before))
}

func TestDeleteVertexRefused(t *testing.T) {
	m := triangulate(t, hexagon())
	err := m.DeleteVertex(m.InputVertex(1).Tri())
	require.ErrorIs(t, err, ErrVertexOnBoundary)
	require.Equal(t, 7, m.NumberOfVertices())

	in := hexagon()
	in.Segments = [][2]int{{0, 1}}
	m = triangulate(t, in)
	err = m.DeleteVertex(m.InputVertex(0).Tri())
	require.ErrorIs(t, err, ErrVertexOnSegment)
	require.Equal(t, 7, m.NumberOfVertices())
	require.NoError(t, m.Check())

	require.ErrorIs(t, m.DeleteVertex(Otri{}), ErrDeadHandle)
}

func TestLocate(t *testing.T) {
	m := triangulate(t, hexagon())

	for _, v := range m.Vertices() {
		r, o := m.Locate(v.Point, Otri{})
		require.Equal(t, OnVertex, r)
		require.Same(t, v, o.Org())
	}

	// The midpoint of a hull edge.
	p := r2.Point{X: 1.5, Y: 1}
	r, o := m.Locate(p, Otri{})
	require.Equal(t, OnEdge, r)
	require.Zero(t, Orient2D(o.Org().Point, o.Dest().Point, p))

	r, o = m.Locate(r2.Point{X: 100, Y: 100}, Otri{})
	require.Equal(t, Outside, r)
	require.True(t, m.IsOuter(o.Sym()))
	require.Less(t, Orient2D(o.Org().Point, o.Dest().Point, r2.Point{X: 100, Y: 100}), 0.0)

	p = r2.Point{X: 0.5, Y: 0.3}
	r, o = m.Locate(p, m.InputVertex(4).Tri())
	require.Equal(t, InTriangle, r)
	for i := 0; i < 3; i++ {
		require.Greater(t, Orient2D(o.Org().Point, o.Dest().Point, p), 0.0)
		o = o.Lnext()
	}
}

func TestLocateStrings(t *testing.T) {
	require.Equal(t, "on edge", OnEdge.String())
	require.Equal(t, "encroaching", Encroaching.String())
	require.Equal(t, "unknown", LocateResult(10).String())
}

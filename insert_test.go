package cdt

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
)

func TestInsertPointRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := triangulate(t, box(10))

	var hint Otri
	for i := 0; i < 50; i++ {
		p := r2.Point{X: 0.5 + 9*r.Float64(), Y: 0.5 + 9*r.Float64()}
		res, o, err := m.InsertPoint(p, hint, false, false)
		require.NoError(t, err)
		require.Equal(t, Successful, res)
		require.Equal(t, p, o.Org().Point)
		require.NoError(t, m.Check())
		hint = o
	}
	require.Equal(t, 54, m.NumberOfVertices())
	require.Equal(t, 4, m.HullSize())
	require.Equal(t, 2*54-4-2, m.NumberOfTriangles())
}

func TestInsertPointDuplicate(t *testing.T) {
	m := triangulate(t, box(10))
	res, o, err := m.InsertPoint(r2.Point{X: 10, Y: 10}, Otri{}, false, false)
	require.NoError(t, err)
	require.Equal(t, Duplicate, res)
	require.Same(t, m.InputVertex(2), o.Org())
	require.Equal(t, 4, m.NumberOfVertices())
}

func TestInsertPointOutside(t *testing.T) {
	m := triangulate(t, box(10))
	_, _, err := m.InsertPoint(r2.Point{X: 20, Y: 20}, Otri{}, false, false)
	require.ErrorIs(t, err, ErrPointOutside)
	require.Equal(t, 4, m.NumberOfVertices())
	require.NoError(t, m.Check())
}

func TestInsertPointSteinerLimit(t *testing.T) {
	m := triangulate(t, box(10), WithSteinerLimit(1))
	require.Equal(t, 1, m.SteinerLeft())

	res, _, err := m.InsertPoint(r2.Point{X: 3, Y: 4}, Otri{}, false, true)
	require.NoError(t, err)
	require.Equal(t, Successful, res)
	require.Zero(t, m.SteinerLeft())

	_, _, err = m.InsertPoint(r2.Point{X: 6, Y: 7}, Otri{}, false, true)
	require.ErrorIs(t, err, ErrNoSteinerPoints)
	require.Equal(t, 5, m.NumberOfVertices())

	// The refused insertion leaves the first one undoable.
	m.UndoVertex()
	require.Equal(t, 1, m.SteinerLeft())
	require.Equal(t, 4, m.NumberOfVertices())
	require.NoError(t, m.Check())
}

func TestUndoTrisect(t *testing.T) {
	m := triangulate(t, box(10), WithQuality(20))
	before := fingerprint(m)

	res, _, err := m.InsertPoint(r2.Point{X: 3, Y: 4}, Otri{}, false, true)
	require.NoError(t, err)
	require.Equal(t, Successful, res)
	require.Equal(t, 5, m.NumberOfVertices())
	require.NoError(t, m.Check())

	m.UndoVertex()
	require.Equal(t, before, fingerprint(m))
	require.NoError(t, m.Check())

	// A second undo has nothing left to revert.
	m.UndoVertex()
	require.Equal(t, before, fingerprint(m))
}

func TestUndoBisect(t *testing.T) {
	m := triangulate(t, box(10), WithQuality(20), WithConvexHull())
	before := fingerprint(m)
	bottom := findSubseg(m, r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0})
	require.NotNil(t, bottom)

	v := m.MakeVertex(r2.Point{X: 5, Y: 0})
	res, o, err := m.InsertVertex(v, Otri{}, bottom.Edge(0), false, true)
	require.NoError(t, err)
	require.Equal(t, Successful, res)
	require.Same(t, v, o.Org())
	require.Equal(t, SegmentVertex, v.Type)
	require.Equal(t, 1, v.Mark)
	require.Equal(t, 5, m.NumberOfSubsegs())
	require.Equal(t, 5, m.HullSize())
	require.NoError(t, m.Check())

	ends := []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	for _, s := range m.Subsegs() {
		if s.Org().Y != 0 || s.Dest().Y != 0 {
			continue
		}
		require.ElementsMatch(t, ends, []r2.Point{s.SegOrg().Point, s.SegDest().Point})
	}

	m.UndoVertex()
	require.True(t, v.IsDead())
	require.Equal(t, before, fingerprint(m))
	require.NoError(t, m.Check())
}

// interiorMidpoint returns the midpoint of a random interior edge that is
// not a subsegment.
func interiorMidpoint(m *Mesh, r *rand.Rand) r2.Point {
	var edges []Otri
	for _, t := range m.Triangles() {
		for i := 0; i < 3; i++ {
			o := t.Edge(i)
			if !m.IsOuter(o.Sym()) && m.IsNoSubseg(o.SegPivot()) {
				edges = append(edges, o)
			}
		}
	}
	o := edges[r.Intn(len(edges))]
	return o.Org().Point.Add(o.Dest().Point).Mul(0.5)
}

func TestUndoRandom(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	in := box(10)
	in.Points = append(in.Points, randomPoints(r, 40, 10)...)
	m := triangulate(t, in, WithQuality(20))

	for i := 0; i < 60; i++ {
		before, links := fingerprint(m), adjacency(m)
		var p r2.Point
		if i%2 == 0 {
			p = r2.Point{X: 0.5 + 9*r.Float64(), Y: 0.5 + 9*r.Float64()}
		} else {
			p = interiorMidpoint(m, r)
		}
		res, _, err := m.InsertPoint(p, Otri{}, false, true)
		require.NoError(t, err)
		require.Equal(t, Successful, res)
		require.NoError(t, m.Check())
		if i%5 == 4 {
			// Keep some insertions so that later ones see a changed mesh.
			continue
		}

		m.UndoVertex()
		require.Equal(t, before, fingerprint(m), "insertion %d at %v", i, p)
		require.Equal(t, links, adjacency(m), "insertion %d at %v", i, p)
		require.NoError(t, m.Check())
	}
}

func TestInsertVertexAtSubsegEnd(t *testing.T) {
	m := triangulate(t, box(10), WithQuality(20), WithConvexHull())
	bottom := findSubseg(m, r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0})
	require.NotNil(t, bottom)

	for _, p := range []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}} {
		v := m.MakeVertex(p)
		res, o, err := m.InsertVertex(v, Otri{}, bottom.Edge(0), false, false)
		require.NoError(t, err)
		require.Equal(t, Duplicate, res)
		require.Equal(t, p, o.Org().Point)
		m.VertexDealloc(v)
	}
	require.Equal(t, 4, m.NumberOfSubsegs())
	require.NoError(t, m.Check())
}

func TestUndoClearedByLaterChange(t *testing.T) {
	m := triangulate(t, box(10), WithQuality(20))
	_, _, err := m.InsertPoint(r2.Point{X: 3, Y: 4}, Otri{}, false, true)
	require.NoError(t, err)
	// Insertions without quality checking cannot be undone, and discard
	// the log of the previous one.
	_, _, err = m.InsertPoint(r2.Point{X: 6, Y: 7}, Otri{}, false, false)
	require.NoError(t, err)

	m.UndoVertex()
	require.Equal(t, 6, m.NumberOfVertices())
}

func TestInsertPointEncroaching(t *testing.T) {
	q := NewFlawQueue()
	m := triangulate(t, box(4), WithQuality(20), WithConvexHull(), WithFlawSink(q))

	res, _, err := m.InsertPoint(r2.Point{X: 2, Y: 0.5}, Otri{}, true, false)
	require.NoError(t, err)
	require.Equal(t, Encroaching, res)
	require.NoError(t, m.Check())

	var found bool
	for {
		s, ok := q.PopBadSubseg()
		if !ok {
			break
		}
		require.False(t, s.IsStale())
		if s.Org.Y == 0 && s.Dest.Y == 0 {
			found = true
		}
	}
	require.True(t, found)
}

func TestInsertPointViolating(t *testing.T) {
	q := NewFlawQueue()
	m := triangulate(t, box(4), WithQuality(20), WithConvexHull(), WithFlawSink(q))

	res, _, err := m.InsertPoint(r2.Point{X: 2, Y: 0}, Otri{}, true, false)
	require.NoError(t, err)
	require.Equal(t, Violating, res)
	require.Equal(t, 4, m.NumberOfVertices())
	require.Equal(t, 1, q.BadSubsegs())

	s, _ := q.PopBadSubseg()
	require.ElementsMatch(t, []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}, []r2.Point{s.Org.Point, s.Dest.Point})

	// With NoBisect set to 2 nothing is reported.
	q.Reset()
	m = triangulate(t, box(4), WithQuality(20), WithConvexHull(), WithFlawSink(q), WithNoBisect(2))
	res, _, err = m.InsertPoint(r2.Point{X: 2, Y: 0}, Otri{}, true, false)
	require.NoError(t, err)
	require.Equal(t, Violating, res)
	require.Zero(t, q.BadSubsegs())
}

func TestInsertPointMaxArea(t *testing.T) {
	q := NewFlawQueue()
	m := triangulate(t, box(10), WithMaxArea(1), WithFlawSink(q))

	_, _, err := m.InsertPoint(r2.Point{X: 3, Y: 4}, Otri{}, false, false)
	require.NoError(t, err)
	require.Zero(t, q.BadTriangles())

	_, _, err = m.InsertPoint(r2.Point{X: 6, Y: 7}, Otri{}, false, true)
	require.NoError(t, err)
	require.Greater(t, q.BadTriangles(), 0)
	b, ok := q.PeekBadTriangle()
	require.True(t, ok)
	require.False(t, b.IsStale())
}

func TestInsertVertexDeadHandle(t *testing.T) {
	m := triangulate(t, box(10))
	_, _, err := m.InsertVertex(nil, Otri{}, Osub{}, false, false)
	require.ErrorIs(t, err, ErrDeadHandle)
}

func TestInsertSegmentExisting(t *testing.T) {
	in := box(1)
	in.Segments = [][2]int{{0, 2}}
	in.SegmentMarkers = []int{4}
	m := triangulate(t, in)

	require.NoError(t, m.InsertSegment(m.InputVertex(0), m.InputVertex(2), 5))
	require.Equal(t, 1, m.NumberOfSubsegs())
	// The existing marker is kept.
	require.Equal(t, 4, findSubseg(m, r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}).Boundary)

	require.NoError(t, m.InsertSegment(m.InputVertex(0), m.InputVertex(1), 3))
	require.Equal(t, 2, m.NumberOfSubsegs())
	require.Equal(t, 3, findSubseg(m, r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}).Boundary)
	require.NoError(t, m.Check())

	require.ErrorIs(t, m.InsertSegment(nil, m.InputVertex(1), 0), ErrDeadHandle)
}

func TestInsertSegmentAfterPoints(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	m := triangulate(t, box(10))
	for i := 0; i < 30; i++ {
		p := r2.Point{X: 0.5 + 9*r.Float64(), Y: 0.5 + 9*r.Float64()}
		_, _, err := m.InsertPoint(p, Otri{}, false, false)
		require.NoError(t, err)
	}
	require.NoError(t, m.InsertSegment(m.InputVertex(0), m.InputVertex(2), 1))
	require.NoError(t, m.InsertSegment(m.InputVertex(1), m.InputVertex(3), 2))
	require.NoError(t, m.Check())

	// The diagonals cross at the center.
	require.NotNil(t, findVertex(m, r2.Point{X: 5, Y: 5}))
	require.GreaterOrEqual(t, m.NumberOfSubsegs(), 4)
	for _, s := range m.Subsegs() {
		require.Contains(t, []int{1, 2}, s.Boundary)
	}
}

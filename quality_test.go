package cdt

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
)

func TestCheckSubsegEncroachment(t *testing.T) {
	q := NewFlawQueue()
	m := triangulate(t, box(4), WithQuality(20), WithConvexHull(), WithFlawSink(q))
	bottom := findSubseg(m, r2.Point{X: 0, Y: 0}, r2.Point{X: 4, Y: 0})
	require.NotNil(t, bottom)

	// Orient s so that its own side has the triangle.
	s := bottom.Edge(0)
	if m.IsOuter(s.TriPivot()) {
		s = s.Sym()
	}
	require.Zero(t, m.CheckSubsegEncroachment(s))
	require.Zero(t, q.BadSubsegs())

	_, _, err := m.InsertPoint(r2.Point{X: 2, Y: 0.5}, Otri{}, false, false)
	require.NoError(t, err)
	require.Zero(t, q.BadSubsegs())

	require.Equal(t, 1, m.CheckSubsegEncroachment(s))
	require.Equal(t, 2, m.CheckSubsegEncroachment(s.Sym()))
	require.Equal(t, 2, q.BadSubsegs())
	for i := 0; i < 2; i++ {
		b, ok := q.PopBadSubseg()
		require.True(t, ok)
		require.True(t, b.Subseg.Equal(s))
	}
}

func TestEncroachmentBySetting(t *testing.T) {
	p := r2.Point{X: 2, Y: 1.9}
	tests := []struct {
		name string
		opts []Option
		want bool
	}{
		// The apex sees the subsegment at an angle just over 90 degrees.
		{"lens", []Option{WithQuality(20)}, false},
		{"circle", []Option{WithQuality(20), WithConformingDelaunay()}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMesh(tc.opts...)
			a := m.MakeVertex(r2.Point{X: 0, Y: 0})
			b := m.MakeVertex(r2.Point{X: 4, Y: 0})
			c := m.MakeVertex(p)
			require.Equal(t, tc.want, m.encroaches(a, b, c))
		})
	}
}

func TestNoBisectOne(t *testing.T) {
	// A hull subsegment has a triangle on one side only, so it is not
	// reported with NoBisect set to 1.
	q := NewFlawQueue()
	m := triangulate(t, box(4), WithQuality(20), WithConvexHull(), WithFlawSink(q), WithNoBisect(1))
	res, _, err := m.InsertPoint(r2.Point{X: 2, Y: 0.5}, Otri{}, true, false)
	require.NoError(t, err)
	require.Equal(t, Encroaching, res)
	require.Zero(t, q.BadSubsegs())
}

func TestTestTriangle(t *testing.T) {
	q := NewFlawQueue()
	m := NewMesh(WithQuality(30), WithFlawSink(q))
	a := m.MakeVertex(r2.Point{X: 0, Y: 0})
	b := m.MakeVertex(r2.Point{X: 10, Y: 0})
	c := m.MakeVertex(r2.Point{X: 5, Y: 1})
	d := m.MakeVertex(r2.Point{X: 5, Y: 8})

	thin := m.MakeTriangle()
	thin.SetOrg(a)
	thin.SetDest(b)
	thin.SetApex(c)
	m.testTriangle(thin)
	require.Equal(t, 1, q.BadTriangles())

	fat := m.MakeTriangle()
	fat.SetOrg(a)
	fat.SetDest(b)
	fat.SetApex(d)
	m.testTriangle(fat)
	require.Equal(t, 1, q.BadTriangles())

	bad, ok := q.PopBadTriangle()
	require.True(t, ok)
	require.True(t, bad.Tri.Equal(thin))
	// Both short edges have a squared length of 26.
	require.InDelta(t, 26, bad.MinEdge, 1e-9)
	require.False(t, bad.IsStale())
	thin.SetApex(d)
	require.True(t, bad.IsStale())
}

func TestFlawQueue(t *testing.T) {
	q := NewFlawQueue()
	_, ok := q.PopBadTriangle()
	require.False(t, ok)
	_, ok = q.PeekBadTriangle()
	require.False(t, ok)
	_, ok = q.PopBadSubseg()
	require.False(t, ok)

	for i, key := range []float64{0.5, 0.9, 0.7, 0.9, 0.5} {
		q.AddBadTriangle(BadTriangle{Key: key, MinEdge: float64(i)})
	}
	require.Equal(t, 5, q.BadTriangles())
	top, ok := q.PeekBadTriangle()
	require.True(t, ok)
	require.Equal(t, 0.9, top.Key)
	require.Equal(t, 5, q.BadTriangles())

	// Worst first, and in arrival order among equals.
	var order []float64
	for {
		b, ok := q.PopBadTriangle()
		if !ok {
			break
		}
		order = append(order, b.MinEdge)
	}
	require.Equal(t, []float64{1, 3, 2, 0, 4}, order)

	m := NewMesh()
	s1 := m.MakeSubseg()
	s2 := m.MakeSubseg()
	q.AddBadSubseg(BadSubseg{Subseg: s1})
	q.AddBadSubseg(BadSubseg{Subseg: s2})
	require.Equal(t, 2, q.BadSubsegs())
	b, _ := q.PopBadSubseg()
	require.True(t, b.Subseg.Equal(s1))

	q.AddBadTriangle(BadTriangle{Key: 1})
	q.Reset()
	require.Zero(t, q.BadTriangles())
	require.Zero(t, q.BadSubsegs())
}

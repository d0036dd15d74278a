package cdt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTriangulateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		err  error
	}{
		{"too few", Input{Points: [][]float64{{0, 0}, {1, 0}}}, ErrTooFewVertices},
		{"dimension", Input{Points: [][]float64{{0, 0}, {1, 0}, {0, 1, 2}}}, ErrDimension},
		{"nan", Input{Points: [][]float64{{0, 0}, {1, 0}, {math.NaN(), 1}}}, ErrInvalidCoordinate},
		{"inf", Input{Points: [][]float64{{0, 0}, {math.Inf(1), 0}, {0, 1}}}, ErrInvalidCoordinate},
		{"point markers", Input{Points: [][]float64{{0, 0}, {1, 0}, {0, 1}}, PointMarkers: []int{1}}, ErrMismatchedMarkers},
		{"point attributes", Input{Points: [][]float64{{0, 0}, {1, 0}, {0, 1}}, PointAttributes: [][]float64{{1}, {1}, {1, 2}}}, ErrMismatchedMarkers},
		{"segment markers", Input{Points: [][]float64{{0, 0}, {1, 0}, {0, 1}}, Segments: [][2]int{{0, 1}}, SegmentMarkers: []int{1, 2}}, ErrMismatchedMarkers},
		{"collinear", Input{Points: [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}}}, ErrCollinearInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Triangulate(tc.in)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.err)
			require.True(t, errors.Is(err, tc.err))
		})
	}
}

func TestTriangulateSquareWithDiagonal(t *testing.T) {
	in := box(1)
	in.Segments = [][2]int{{0, 2}}
	in.SegmentMarkers = []int{5}
	m := triangulate(t, in)

	require.Equal(t, 4, m.NumberOfVertices())
	require.Equal(t, 2, m.NumberOfTriangles())
	require.Equal(t, 4, m.HullSize())
	require.Equal(t, 5, m.EdgeCount())
	require.Equal(t, 1, m.NumberOfSubsegs())

	s := findSubseg(m, r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
	require.NotNil(t, s)
	require.Equal(t, 5, s.Boundary)
	require.Equal(t, 5, m.InputVertex(0).Mark)
	require.Equal(t, 5, m.InputVertex(2).Mark)
	require.Zero(t, m.InputVertex(1).Mark)
}

func TestTriangulateDuplicate(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := Input{Points: [][]float64{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}
	m := triangulate(t, in, WithLogger(zap.New(core)))

	require.Equal(t, 3, m.NumberOfVertices())
	require.Equal(t, 1, m.NumberOfTriangles())
	require.Same(t, m.InputVertex(0), m.InputVertex(3))
	require.Nil(t, m.InputVertex(4))
	require.Equal(t, 1, logs.FilterMessage("duplicate vertex ignored").Len())
}

func TestTriangulateCrossingSegments(t *testing.T) {
	in := box(2)
	in.Segments = [][2]int{{0, 2}, {1, 3}}
	in.PointAttributes = [][]float64{{0}, {2}, {2}, {0}}
	m := triangulate(t, in, WithSteinerLimit(5))

	require.Equal(t, 5, m.NumberOfVertices())
	require.Equal(t, 4, m.NumberOfTriangles())
	require.Equal(t, 4, m.NumberOfSubsegs())
	require.Equal(t, 4, m.SteinerLeft())

	v := findVertex(m, r2.Point{X: 1, Y: 1})
	require.NotNil(t, v)
	require.Equal(t, SegmentVertex, v.Type)
	require.InDelta(t, 1, v.Attributes[0], 1e-12)

	// Every subsegment lies within the segment it remembers.
	for _, s := range m.Subsegs() {
		ends := []r2.Point{s.SegOrg().Point, s.SegDest().Point}
		require.Contains(t, ends, s.Org().Point)
		require.Contains(t, ends, s.Dest().Point)
	}
	for _, c := range in.Points {
		require.NotNil(t, findSubseg(m, r2.Point{X: c[0], Y: c[1]}, v.Point))
	}
}

func TestTriangulateSegmentThroughVertices(t *testing.T) {
	in := Input{
		Points:   [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {1.5, 2}, {1.5, -2}},
		Segments: [][2]int{{0, 3}},
	}
	m := triangulate(t, in)

	require.Equal(t, 6, m.NumberOfVertices())
	require.Equal(t, 3, m.NumberOfSubsegs())
	for i := 0; i < 3; i++ {
		a := r2.Point{X: float64(i), Y: 0}
		b := r2.Point{X: float64(i + 1), Y: 0}
		require.NotNil(t, findSubseg(m, a, b), "subsegment %v-%v", a, b)
	}
}

func TestTriangulateDigsSegment(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var in Input
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			in.Points = append(in.Points, []float64{
				float64(x) + 0.4*(r.Float64()-0.5),
				float64(y) + 0.4*(r.Float64()-0.5),
			})
		}
	}
	// From the middle of the left column to the middle of the right one.
	in.Segments = [][2]int{{10, 14}}
	m := triangulate(t, in)

	require.Equal(t, 25, m.NumberOfVertices())
	require.Equal(t, 1, m.NumberOfSubsegs())
	a := m.InputVertex(10).Point
	b := m.InputVertex(14).Point
	require.NotNil(t, findSubseg(m, a, b))
	require.True(t, hasEdge(m, a, b))
}

func TestTriangulateConcurrentSegments(t *testing.T) {
	// The diagonals of the lattice cross at (3.5, 3.5), off the lattice.
	// The segment from (2, 0) to (5, 7) crosses the row y = 2 and then
	// passes through that crossing.
	in := grid(8)
	in.Segments = [][2]int{{0, 63}, {7, 56}, {16, 23}, {2, 61}}
	m := triangulate(t, in)
	requireDistinct(t, m)

	center := r2.Point{X: 3.5, Y: 3.5}
	require.NotNil(t, findVertex(m, center))
	require.Equal(t, 66, m.NumberOfVertices())
	require.Equal(t, 27, m.NumberOfSubsegs())
	for _, end := range []r2.Point{{X: 3, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 3}, {X: 3, Y: 4}, {X: 5, Y: 7}} {
		require.NotNil(t, findSubseg(m, center, end), "subsegment to %v", end)
	}

	// Inserted the other way around, the crossings are made on pieces
	// that start at rounded vertices.
	in.Segments = [][2]int{{16, 23}, {2, 61}, {0, 63}, {7, 56}}
	m = triangulate(t, in)
	requireDistinct(t, m)
	n := 0
	for _, v := range m.Vertices() {
		if math.Abs(v.X-3.5) < 1e-9 && math.Abs(v.Y-3.5) < 1e-9 {
			n++
		}
	}
	require.Equal(t, 1, n)
}

func TestTriangulateConcurrentSegmentsRandom(t *testing.T) {
	// Segments through common crossings on a lattice, in random order.
	r := rand.New(rand.NewSource(13))
	segs := [][2]int{{0, 63}, {7, 56}, {16, 23}, {2, 61}, {58, 5}, {24, 31}, {3, 60}}
	for i := 0; i < 10; i++ {
		in := grid(8)
		r.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })
		in.Segments = append([][2]int(nil), segs...)
		m := triangulate(t, in)
		requireDistinct(t, m)
	}
}

func TestTriangulateMarkers(t *testing.T) {
	in := box(10)
	in.Points = append(in.Points, []float64{5, 5})
	m := triangulate(t, in)

	// Without segments or hull subsegments, only the hull vertices are
	// marked.
	require.Zero(t, m.NumberOfSubsegs())
	for i := 0; i < 4; i++ {
		require.Equal(t, 1, m.InputVertex(i).Mark)
	}
	require.Zero(t, m.InputVertex(4).Mark)

	m = triangulate(t, in, WithConvexHull())
	require.Equal(t, 4, m.NumberOfSubsegs())
	for _, s := range m.Subsegs() {
		require.Equal(t, 1, s.Boundary)
	}
}

func TestTriangulateConvexWithSegments(t *testing.T) {
	in := box(10)
	in.Points = append(in.Points, []float64{3, 3}, []float64{7, 7})
	in.Segments = [][2]int{{4, 5}}
	in.SegmentMarkers = []int{2}

	m := triangulate(t, in)
	require.Equal(t, 1, m.NumberOfSubsegs())

	m = triangulate(t, in, WithConvexHull())
	require.Equal(t, 5, m.NumberOfSubsegs())
	require.Equal(t, 2, findSubseg(m, r2.Point{X: 3, Y: 3}, r2.Point{X: 7, Y: 7}).Boundary)
}

func TestTriangulateSkipsBadSegments(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := box(1)
	in.Segments = [][2]int{{0, 9}, {-1, 2}, {1, 1}}
	m := triangulate(t, in, WithLogger(zap.New(core)))

	require.Zero(t, m.NumberOfSubsegs())
	require.Equal(t, 1, logs.FilterMessage("invalid second endpoint of segment").Len())
	require.Equal(t, 1, logs.FilterMessage("invalid first endpoint of segment").Len())
	require.Equal(t, 1, logs.FilterMessage("endpoints of segment are coincident").Len())
}

func TestTriangulateRandom(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		seed := seed
		t.Run("", func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(seed))
			in := Input{Points: randomPoints(r, 200, 100)}
			for i := 0; i < 10; i++ {
				a := r.Intn(200)
				b := (a + 1 + r.Intn(199)) % 200
				in.Segments = append(in.Segments, [2]int{a, b})
			}
			m, err := Triangulate(in, WithSeed(seed))
			require.NoError(t, err)
			require.NoError(t, m.Check())
			require.GreaterOrEqual(t, m.NumberOfSubsegs(), 10)
			for _, v := range m.Vertices() {
				require.Same(t, v, v.Tri().Org())
			}
		})
	}
}

func TestElements(t *testing.T) {
	m := triangulate(t, box(1))
	elements, vertices := m.Elements()
	require.Len(t, vertices, 4)
	require.Len(t, elements, 6)
	for i := 0; i < len(elements); i += 3 {
		a, b, c := vertices[elements[i]], vertices[elements[i+1]], vertices[elements[i+2]]
		require.Greater(t, Orient2D(a.Point, b.Point, c.Point), 0.0)
	}
}

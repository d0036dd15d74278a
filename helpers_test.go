package cdt

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
)

func box(size float64) Input {
	return Input{
		Points: [][]float64{{0, 0}, {size, 0}, {size, size}, {0, size}},
	}
}

// grid is an n by n lattice with unit spacing. Point y*n+x is at (x, y).
func grid(n int) Input {
	var in Input
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			in.Points = append(in.Points, []float64{float64(x), float64(y)})
		}
	}
	return in
}

func randomPoints(r *rand.Rand, n int, size float64) [][]float64 {
	ps := make([][]float64, n)
	for i := range ps {
		ps[i] = []float64{r.Float64() * size, r.Float64() * size}
	}
	return ps
}

func triangulate(t *testing.T, in Input, opts ...Option) *Mesh {
	t.Helper()
	m, err := Triangulate(in, opts...)
	require.NoError(t, err)
	require.NoError(t, m.Check())
	return m
}

// fingerprint describes the mesh by its geometry only.
func fingerprint(m *Mesh) []string {
	var r []string
	for _, t := range m.Triangles() {
		vs := t.Vertices()
		ps := []string{vs[0].Point.String(), vs[1].Point.String(), vs[2].Point.String()}
		sort.Strings(ps)
		r = append(r, fmt.Sprintf("t %v", ps))
	}
	for _, s := range m.Subsegs() {
		ps := []string{s.Org().Point.String(), s.Dest().Point.String()}
		sort.Strings(ps)
		r = append(r, fmt.Sprintf("s %v %d", ps, s.Boundary))
	}
	for _, v := range m.Vertices() {
		r = append(r, fmt.Sprintf("v %v %d", v.Point, v.Mark))
	}
	r = append(r, fmt.Sprintf("hull %d", m.HullSize()))
	sort.Strings(r)
	return r
}

func findVertex(m *Mesh, p r2.Point) *Vertex {
	for _, v := range m.Vertices() {
		if v.Point == p {
			return v
		}
	}
	return nil
}

func findSubseg(m *Mesh, a, b r2.Point) *Subseg {
	for _, s := range m.Subsegs() {
		if (s.Org().Point == a && s.Dest().Point == b) || (s.Org().Point == b && s.Dest().Point == a) {
			return s
		}
	}
	return nil
}

// hasEdge reports whether some triangle has an edge from a to b.
func hasEdge(m *Mesh, a, b r2.Point) bool {
	for _, t := range m.Triangles() {
		for i := 0; i < 3; i++ {
			o := t.Edge(i)
			if (o.Org().Point == a && o.Dest().Point == b) || (o.Org().Point == b && o.Dest().Point == a) {
				return true
			}
		}
	}
	return false
}

// adjacency lists every triangle edge with the apex of the triangle across
// it.
func adjacency(m *Mesh) []string {
	var r []string
	for _, t := range m.Triangles() {
		for i := 0; i < 3; i++ {
			o := t.Edge(i)
			across := "hull"
			if oppo := o.Sym(); !m.IsOuter(oppo) {
				across = oppo.Apex().Point.String()
			}
			r = append(r, fmt.Sprintf("%v %v %s", o.Org().Point, o.Dest().Point, across))
		}
	}
	sort.Strings(r)
	return r
}

// requireDistinct fails if two vertices share coordinates.
func requireDistinct(t *testing.T, m *Mesh) {
	t.Helper()
	seen := make(map[r2.Point]int)
	for _, v := range m.Vertices() {
		if id, ok := seen[v.Point]; ok {
			require.Failf(t, "duplicate vertex", "vertices %d and %d at %v", id, v.ID, v.Point)
		}
		seen[v.Point] = v.ID
	}
}

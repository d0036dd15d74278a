// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package cdt

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// VertexType tells where a vertex came from.
type VertexType int

const (
	// InputVertex is a vertex of the input point set.
	InputVertex VertexType = iota
	// SegmentVertex is a Steiner vertex lying on a segment.
	SegmentVertex
	// FreeVertex is a Steiner vertex inserted away from any segment.
	FreeVertex
	// DeadVertex is a vertex that was removed from the mesh.
	DeadVertex
)

func (t VertexType) String() string {
	switch t {
	case InputVertex:
		return "input"
	case SegmentVertex:
		return "segment"
	case FreeVertex:
		return "free"
	case DeadVertex:
		return "dead"
	}
	return "unknown"
}

// Vertex is a mesh vertex.
type Vertex struct {
	r2.Point

	ID         int
	Mark       int
	Type       VertexType
	Attributes []float64

	tri Otri
	pos int
}

// Tri returns the vertex's back-reference: a handle to some triangle whose
// origin was this vertex when it was set. It may be stale.
func (v *Vertex) Tri() Otri {
	return v.tri
}

// SetTri sets the vertex's back-reference.
func (v *Vertex) SetTri(o Otri) {
	v.tri = o
}

// IsDead reports whether the vertex has been deallocated.
func (v *Vertex) IsDead() bool {
	return v.Type == DeadVertex
}

func (v *Vertex) slot() int       { return v.pos }
func (v *Vertex) setSlot(i int)   { v.pos = i }
func (v *Vertex) id() int         { return v.ID }
func (t *Triangle) slot() int     { return t.pos }
func (t *Triangle) setSlot(i int) { t.pos = i }
func (t *Triangle) id() int       { return t.ID }
func (s *Subseg) slot() int       { return s.pos }
func (s *Subseg) setSlot(i int)   { s.pos = i }
func (s *Subseg) id() int         { return s.ID }

// Triangle is a mesh triangle. Its vertices are stored in counterclockwise
// order.
type Triangle struct {
	ID         int
	Attributes []float64

	// Area is the area constraint. A value of zero or less means none.
	Area float64

	vertices  [3]*Vertex
	neighbors [3]Otri
	subsegs   [3]Osub
	dead      bool
	pos       int
}

// Vertices returns the triangle's corners in counterclockwise order.
func (t *Triangle) Vertices() [3]*Vertex {
	return t.vertices
}

// Edge returns a handle to the triangle at the given orientation.
func (t *Triangle) Edge(orient int) Otri {
	return Otri{tri: t, orient: orient}
}

// IsDead reports whether the triangle has been deallocated.
func (t *Triangle) IsDead() bool {
	return t.dead
}

// Subseg is a subsegment: a piece of an input segment that is an edge of
// the mesh.
//
// vertices holds the current org and dest followed by the persistent
// segment org and dest, which survive splitting.
type Subseg struct {
	ID       int
	Boundary int

	vertices  [4]*Vertex
	subsegs   [2]Osub
	triangles [2]Otri
	dead      bool
	pos       int
}

// Edge returns a handle to the subsegment at the given orientation.
func (s *Subseg) Edge(orient int) Osub {
	return Osub{seg: s, orient: orient}
}

// Org returns the current origin.
func (s *Subseg) Org() *Vertex { return s.vertices[0] }

// Dest returns the current destination.
func (s *Subseg) Dest() *Vertex { return s.vertices[1] }

// SegOrg returns the origin of the segment the subsegment is part of.
func (s *Subseg) SegOrg() *Vertex { return s.vertices[2] }

// SegDest returns the destination of the segment the subsegment is part of.
func (s *Subseg) SegDest() *Vertex { return s.vertices[3] }

// IsDead reports whether the subsegment has been deallocated.
func (s *Subseg) IsDead() bool {
	return s.dead
}

// Mesh is a constrained Delaunay triangulation.
//
// A Mesh is not safe for concurrent use. Independent meshes share nothing
// and can be used from different goroutines.
type Mesh struct {
	behavior Behavior
	logger   *zap.Logger
	flaws    FlawSink
	rand     *rand.Rand

	vertices  pool[*Vertex]
	triangles pool[*Triangle]
	subsegs   pool[*Subseg]

	// dummytri is the triangle that fills every missing neighbor, and
	// dummysub the subsegment that fills every unconstrained edge.
	dummytri *Triangle
	dummysub *Subseg

	// The corners of the bounding triangle during bootstrap.
	infvertex1 *Vertex
	infvertex2 *Vertex
	infvertex3 *Vertex

	recenttri Otri
	samples   int

	// The endpoints of the segment being inserted, as given.
	forcing [2]*Vertex

	hullsize    int
	steinerleft int
	nextras     int

	// The steps of the last insertion, recorded for UndoVertex.
	undo        []undoRecord
	undoV       *Vertex
	undoSteiner bool

	// inputs holds the input vertices by index. A duplicate maps to the
	// vertex it coincides with.
	inputs     []*Vertex
	insegments int
	bounds     r2.Rect
}

// NewMesh returns an empty mesh. Vertices, triangles and subsegments are
// added with MakeVertex, MakeTriangle and MakeSubseg, or by Triangulate.
func NewMesh(opts ...Option) *Mesh {
	b := defaultBehavior()
	for _, o := range opts {
		o(&b)
	}
	m := &Mesh{
		behavior:    b,
		logger:      b.Logger,
		flaws:       b.Flaws,
		rand:        rand.New(rand.NewSource(b.Seed)),
		steinerleft: b.Steiner,
		bounds:      r2.EmptyRect(),
		samples:     1,
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}

	m.dummytri = &Triangle{pos: -1}
	m.dummysub = &Subseg{pos: -1}
	outer := Otri{tri: m.dummytri}
	noseg := Osub{seg: m.dummysub}
	for i := 0; i < 3; i++ {
		m.dummytri.neighbors[i] = outer
		m.dummytri.subsegs[i] = noseg
	}
	for i := 0; i < 2; i++ {
		m.dummysub.subsegs[i] = noseg
		m.dummysub.triangles[i] = outer
	}
	m.recenttri = outer
	return m
}

// poly reports whether the mesh was built from a planar straight line
// graph rather than a bare point set.
func (m *Mesh) poly() bool {
	return m.insegments > 0
}

// useSegments reports whether the mesh carries subsegments.
func (m *Mesh) useSegments() bool {
	return m.poly() || m.behavior.Quality || m.behavior.Convex
}

// Behavior returns the settings the mesh was created with.
func (m *Mesh) Behavior() Behavior {
	return m.behavior
}

// Logger returns the mesh's logger.
func (m *Mesh) Logger() *zap.Logger {
	return m.logger
}

// MakeVertex creates a vertex at p and registers it with the mesh. The
// vertex is not part of the triangulation until it is inserted.
func (m *Mesh) MakeVertex(p r2.Point) *Vertex {
	v := &Vertex{
		Point: p,
		ID:    m.vertices.newID(),
		Type:  FreeVertex,
	}
	if m.nextras > 0 {
		v.Attributes = make([]float64, m.nextras)
	}
	v.tri = m.outer()
	m.vertices.add(v)
	m.bounds = m.bounds.AddPoint(p)
	return v
}

// MakeTriangle creates a triangle with no vertices whose neighbors and
// subsegments are all the sentinels, and returns a handle to it at
// orientation zero.
func (m *Mesh) MakeTriangle() Otri {
	t := &Triangle{
		ID:   m.triangles.newID(),
		Area: -1,
	}
	if n := m.behavior.TriangleAttributes; n > 0 {
		t.Attributes = make([]float64, n)
	}
	for i := 0; i < 3; i++ {
		t.neighbors[i] = m.outer()
		t.subsegs[i] = m.noSubseg()
	}
	m.triangles.add(t)
	return Otri{tri: t}
}

// MakeSubseg creates a subsegment bonded only to the sentinels, and returns
// a handle to it at orientation zero.
func (m *Mesh) MakeSubseg() Osub {
	s := &Subseg{
		ID: m.subsegs.newID(),
	}
	for i := 0; i < 2; i++ {
		s.subsegs[i] = m.noSubseg()
		s.triangles[i] = m.outer()
	}
	m.subsegs.add(s)
	return Osub{seg: s}
}

// TriangleDealloc marks t dead and removes it from the mesh.
func (m *Mesh) TriangleDealloc(t *Triangle) {
	t.dead = true
	m.triangles.remove(t)
}

// SubsegDealloc marks s dead and removes it from the mesh.
func (m *Mesh) SubsegDealloc(s *Subseg) {
	s.dead = true
	m.subsegs.remove(s)
}

// VertexDealloc marks v dead and removes it from the mesh.
func (m *Mesh) VertexDealloc(v *Vertex) {
	v.Type = DeadVertex
	v.tri = m.outer()
	m.vertices.remove(v)
}

// outer returns a handle to the sentinel triangle.
func (m *Mesh) outer() Otri {
	return Otri{tri: m.dummytri}
}

// hullEdge returns an edge on the boundary of the mesh, with the outside
// on its right, or the sentinel if the mesh is empty.
func (m *Mesh) hullEdge() Otri {
	if o := m.outer().Sym(); m.valid(o) && m.IsOuter(o.Sym()) {
		return o
	}
	for _, t := range m.triangles.items {
		for orient := 0; orient < 3; orient++ {
			if o := (Otri{tri: t, orient: orient}); m.IsOuter(o.Sym()) {
				m.dummytri.neighbors[0] = o
				return o
			}
		}
	}
	return m.outer()
}

// noSubseg returns a handle to the sentinel subsegment.
func (m *Mesh) noSubseg() Osub {
	return Osub{seg: m.dummysub}
}

// IsOuter reports whether o refers to the sentinel triangle, which stands
// for the space outside the mesh.
func (m *Mesh) IsOuter(o Otri) bool {
	return o.tri == m.dummytri
}

// IsNoSubseg reports whether s refers to the sentinel subsegment, which
// marks an unconstrained edge.
func (m *Mesh) IsNoSubseg(s Osub) bool {
	return s.seg == m.dummysub
}

// valid reports whether o refers to a live, real triangle.
func (m *Mesh) valid(o Otri) bool {
	return o.tri != nil && o.tri != m.dummytri && !o.tri.dead
}

// Vertices returns the live vertices ordered by identity.
func (m *Mesh) Vertices() []*Vertex {
	return m.vertices.sorted()
}

// Triangles returns the live triangles ordered by identity.
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles.sorted()
}

// Subsegs returns the live subsegments ordered by identity.
func (m *Mesh) Subsegs() []*Subseg {
	return m.subsegs.sorted()
}

// NumberOfVertices returns the number of live vertices.
func (m *Mesh) NumberOfVertices() int {
	return m.vertices.len()
}

// NumberOfTriangles returns the number of live triangles.
func (m *Mesh) NumberOfTriangles() int {
	return m.triangles.len()
}

// NumberOfSubsegs returns the number of live subsegments.
func (m *Mesh) NumberOfSubsegs() int {
	return m.subsegs.len()
}

// HullSize returns the number of edges on the boundary of the mesh.
func (m *Mesh) HullSize() int {
	return m.hullsize
}

// EdgeCount returns the number of edges of the mesh.
func (m *Mesh) EdgeCount() int {
	return (3*m.triangles.len() + m.hullsize) / 2
}

// SteinerLeft returns how many Steiner vertices may still be added, or -1
// when there is no limit.
func (m *Mesh) SteinerLeft() int {
	return m.steinerleft
}

// Bounds returns the bounding rectangle of every vertex the mesh has
// created.
func (m *Mesh) Bounds() r2.Rect {
	return m.bounds
}

// MakeVertexMap sets the back-reference of every vertex of the
// triangulation to a triangle whose origin is that vertex.
func (m *Mesh) MakeVertexMap() {
	for _, t := range m.triangles.items {
		for orient := 0; orient < 3; orient++ {
			o := Otri{tri: t, orient: orient}
			o.Org().tri = o
		}
	}
}

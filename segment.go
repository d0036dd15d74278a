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
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// direction is where a segment leaves its origin, relative to a triangle
// with that origin.
type direction int

const (
	within direction = iota
	leftCollinear
	rightCollinear
)

// findDirection:
// Rotates searchtri around its origin until the ray from the origin toward
// searchpoint passes through the triangle, and returns the rotated handle.
//
// leftCollinear means the apex lies on that ray, and rightCollinear that
// the destination does. The ray may not leave the triangulation.
func (m *Mesh) findDirection(searchtri Otri, searchpoint *Vertex) (direction, Otri) {
	startvertex := searchtri.Org()
	rightvertex := searchtri.Dest()
	leftvertex := searchtri.Apex()

	// Is searchpoint to the left?
	leftccw := Orient2D(searchpoint.Point, startvertex.Point, leftvertex.Point)
	leftflag := leftccw > 0
	// Is searchpoint to the right?
	rightccw := Orient2D(startvertex.Point, searchpoint.Point, rightvertex.Point)
	rightflag := rightccw > 0

	if leftflag && rightflag {
		// searchtri faces directly away from searchpoint. Pick a side
		// that does not lead out of the mesh.
		if m.IsOuter(searchtri.Onext()) {
			leftflag = false
		} else {
			rightflag = false
		}
	}
	for leftflag {
		searchtri = searchtri.Onext()
		if m.IsOuter(searchtri) {
			throw(errors.Wrapf(ErrNoPath, "(%g, %g) toward (%g, %g)", startvertex.X, startvertex.Y, searchpoint.X, searchpoint.Y))
		}
		leftvertex = searchtri.Apex()
		rightccw = leftccw
		leftccw = Orient2D(searchpoint.Point, startvertex.Point, leftvertex.Point)
		leftflag = leftccw > 0
	}
	for rightflag {
		searchtri = searchtri.Oprev()
		if m.IsOuter(searchtri) {
			throw(errors.Wrapf(ErrNoPath, "(%g, %g) toward (%g, %g)", startvertex.X, startvertex.Y, searchpoint.X, searchpoint.Y))
		}
		rightvertex = searchtri.Dest()
		leftccw = rightccw
		rightccw = Orient2D(startvertex.Point, searchpoint.Point, rightvertex.Point)
		rightflag = rightccw > 0
	}

	// A vertex ahead on the segment being inserted counts as collinear even
	// when a rounded origin puts it slightly off the ray.
	ahead := func(v *Vertex) bool {
		return m.onSegment(v) && v.Point.Sub(startvertex.Point).Dot(searchpoint.Point.Sub(startvertex.Point)) > 0
	}
	switch {
	case leftccw == 0 || ahead(leftvertex):
		return leftCollinear, searchtri
	case rightccw == 0 || ahead(rightvertex):
		return rightCollinear, searchtri
	}
	return within, searchtri
}

// collinearEps bounds how far from the segment being inserted a vertex may
// lie and still be taken to be on it.
const collinearEps = 1e-12

// onSegment reports whether v lies on the line through the endpoints of
// the segment being inserted.
func (m *Mesh) onSegment(v *Vertex) bool {
	a, b := m.forcing[0], m.forcing[1]
	return a != nil && b != nil && nearLine(a.Point, b.Point, v.Point, collinearEps)
}

// segmentIntersection:
// Finds where the segment from the apex of splittri to endpoint2 crosses
// the subsegment splitsubseg on the edge of splittri, and inserts the
// subsegment from the apex to the crossing. The crossing splits the
// subsegment at a new vertex, and each half of the split segment becomes a
// segment of its own, starting there. A crossing at a corner of the edge
// uses that vertex instead.
//
// Returns a handle whose origin is the crossing vertex, and whether a new
// vertex was made.
func (m *Mesh) segmentIntersection(splittri Otri, splitsubseg Osub, endpoint2 *Vertex, marker int) (Otri, bool) {
	endpoint1 := splittri.Apex()
	torg := splittri.Org()
	tdest := splittri.Dest()

	// The edges from endpoint1 to both corners are edges of splittri.
	atOrg := func() (Otri, bool) {
		m.InsertSubseg(splittri.Lprev(), marker)
		return splittri, false
	}
	atDest := func() (Otri, bool) {
		o := splittri.Lnext()
		m.InsertSubseg(o, marker)
		return o, false
	}
	switch {
	case m.onSegment(torg):
		return atOrg()
	case m.onSegment(tdest):
		return atDest()
	}

	split, ok := intersectionParam(torg.Point, tdest.Point, endpoint1.Point, endpoint2.Point)
	if !ok {
		throw(errors.Wrapf(ErrParallelSegments, "(%g, %g)-(%g, %g) and (%g, %g)-(%g, %g)",
			torg.X, torg.Y, tdest.X, tdest.Y, endpoint1.X, endpoint1.Y, endpoint2.X, endpoint2.Y))
	}
	p := r2.Point{
		X: torg.X + split*(tdest.X-torg.X),
		Y: torg.Y + split*(tdest.Y-torg.Y),
	}
	switch {
	case split <= 0 || p == torg.Point:
		return atOrg()
	case split >= 1 || p == tdest.Point:
		return atDest()
	}

	newvertex := m.MakeVertex(p)
	if a := interpolate(torg.Attributes, tdest.Attributes, split); a != nil {
		newvertex.Attributes = a
	}
	newvertex.Mark = splitsubseg.seg.Boundary
	newvertex.Type = SegmentVertex

	result, splittri := m.insertVertex(newvertex, splittri, &splitsubseg, false, false)
	if result != Successful {
		throw(errors.Wrapf(ErrSplitFailed, "at (%g, %g)", newvertex.X, newvertex.Y))
	}
	newvertex.tri = splittri
	m.useSteiner()

	// Divide the segment into two at the new vertex.
	splitsubseg = splitsubseg.Sym()
	opposubseg := splitsubseg.Pivot()
	m.SubsegDissolve(splitsubseg)
	m.SubsegDissolve(opposubseg)
	for !m.IsNoSubseg(splitsubseg) {
		splitsubseg.SetSegOrg(newvertex)
		splitsubseg = splitsubseg.Next()
	}
	for !m.IsNoSubseg(opposubseg) {
		opposubseg.SetSegOrg(newvertex)
		opposubseg = opposubseg.Next()
	}

	// Flips may have moved the edge from the new vertex to endpoint1.
	_, splittri = m.findDirection(splittri, endpoint1)
	rightvertex := splittri.Dest()
	leftvertex := splittri.Apex()
	if leftvertex.Point == endpoint1.Point {
		splittri = splittri.Onext()
	} else if rightvertex.Point != endpoint1.Point {
		throw(errors.Wrapf(ErrTopology, "at (%g, %g)", newvertex.X, newvertex.Y))
	}
	m.InsertSubseg(splittri, marker)
	return splittri, true
}

// fixupCorner finishes both polygons of a dig that ended on a subsegment
// at the origin of o, the way a collision with a vertex does. The edge
// from the origin to endpoint1 must exist.
func (m *Mesh) fixupCorner(o Otri, endpoint1 *Vertex) Otri {
	_, o = m.findDirection(o, endpoint1)
	var right, left Otri
	var hasRight, hasLeft bool
	switch {
	case o.Dest() == endpoint1:
		right, hasRight = o, true
		if sym := o.Sym(); !m.IsOuter(sym) {
			left, hasLeft = sym.Lnext(), true
		}
	case o.Apex() == endpoint1:
		left, hasLeft = o, true
		if sym := o.Lprev().Sym(); !m.IsOuter(sym) {
			right, hasRight = sym, true
		}
	default:
		throw(errors.Wrapf(ErrTopology, "at (%g, %g)", o.Org().X, o.Org().Y))
	}
	if hasRight {
		o = m.delaunayFixup(right, false)
	}
	if hasLeft {
		o = m.delaunayFixup(left, true)
	}
	return o
}

// scoutSegment:
// Walks from the origin of searchtri toward endpoint2, inserting
// subsegments as long as the walk follows existing edges. Returns true if
// endpoint2 was reached.
//
// Along the way, a vertex lying exactly on the segment ends one subsegment
// and starts the next, and a subsegment crossing the segment is split at
// the crossing. Otherwise the segment enters the interior of a triangle,
// and the returned handle is that triangle with the current origin.
func (m *Mesh) scoutSegment(searchtri Otri, endpoint2 *Vertex, marker int) (bool, Otri) {
	collinear, searchtri := m.findDirection(searchtri, endpoint2)
	rightvertex := searchtri.Dest()
	leftvertex := searchtri.Apex()
	if leftvertex.Point == endpoint2.Point || rightvertex.Point == endpoint2.Point {
		// The segment is already an edge of the mesh.
		if leftvertex.Point == endpoint2.Point {
			searchtri = searchtri.Lprev()
		}
		m.InsertSubseg(searchtri, marker)
		return true, searchtri
	}

	switch collinear {
	case leftCollinear:
		// The apex lies between the endpoints. Make it the origin.
		searchtri = searchtri.Lprev()
		m.InsertSubseg(searchtri, marker)
		return m.scoutSegment(searchtri, endpoint2, marker)
	case rightCollinear:
		m.InsertSubseg(searchtri, marker)
		searchtri = searchtri.Lnext()
		return m.scoutSegment(searchtri, endpoint2, marker)
	}

	crosstri := searchtri.Lnext()
	crosssubseg := crosstri.SegPivot()
	if m.IsNoSubseg(crosssubseg) {
		return false, searchtri
	}
	searchtri, _ = m.segmentIntersection(crosstri, crosssubseg, endpoint2, marker)
	return m.scoutSegment(searchtri, endpoint2, marker)
}

// delaunayFixup:
// Restores the Delaunay property on one side of a segment being dug into
// the mesh. The polygon on that side is triangulated like a stack: a
// triangle is left alone when its far vertex is reflex, and an inverted
// triangle, or an edge that is not locally Delaunay, is removed by a flip
// and both resulting triangles are processed again.
//
// fixuptri's edge lies on the segment. leftside tells which side of the
// segment the polygon is on. Returns fixuptri with its origin restored.
func (m *Mesh) delaunayFixup(fixuptri Otri, leftside bool) Otri {
	neartri := fixuptri.Lnext()
	fartri := neartri.Sym()
	// The edge opposite the origin can only be flipped if it is an
	// interior edge and not a subsegment.
	if m.IsOuter(fartri) {
		return fixuptri
	}
	if !m.IsNoSubseg(neartri.SegPivot()) {
		return fixuptri
	}

	nearvertex := neartri.Apex()
	leftvertex := neartri.Org()
	rightvertex := neartri.Dest()
	farvertex := fartri.Apex()

	// Nothing can be done until a convex part of the polygon is found.
	if leftside {
		if Orient2D(nearvertex.Point, leftvertex.Point, farvertex.Point) <= 0 {
			return fixuptri
		}
	} else {
		if Orient2D(farvertex.Point, rightvertex.Point, nearvertex.Point) <= 0 {
			return fixuptri
		}
	}
	if Orient2D(rightvertex.Point, leftvertex.Point, farvertex.Point) > 0 {
		// fartri is not inverted, so the edge between the two triangles
		// only needs flipping if it is not locally Delaunay.
		if InCircle(leftvertex.Point, farvertex.Point, rightvertex.Point, nearvertex.Point) <= 0 {
			return fixuptri
		}
	}
	m.flip(neartri)
	fixuptri = fixuptri.Lprev()
	fixuptri = m.delaunayFixup(fixuptri, leftside)
	m.delaunayFixup(fartri, leftside)
	return fixuptri
}

// constrainedEdge:
// Forces the segment from the origin of starttri to endpoint2 into the
// mesh by digging: every edge that crosses the segment is flipped, and
// each flip exposes a new vertex of the polygon on either side of the
// segment. delaunayFixup keeps both polygons triangulated as the dig
// proceeds.
//
// starttri must be the triangle the segment leaves its origin through.
func (m *Mesh) constrainedEdge(starttri Otri, endpoint2 *Vertex, marker int) {
	endpoint1 := starttri.Org()
	fixuptri := starttri.Lnext()
	m.flip(fixuptri)

	// collision is set when the dig runs into a vertex or subsegment
	// between the endpoints. crossed means segmentIntersection has already
	// inserted the subsegment ending the dig.
	collision, crossed := false, false
	for done := false; !done; {
		// farvertex is the tip of the polygon being dug.
		farvertex := fixuptri.Org()
		if farvertex.Point == endpoint2.Point {
			fixuptri2 := fixuptri.Oprev()
			fixuptri = m.delaunayFixup(fixuptri, false)
			m.delaunayFixup(fixuptri2, true)
			done = true
			continue
		}

		area := Orient2D(endpoint1.Point, endpoint2.Point, farvertex.Point)
		if area == 0 || m.onSegment(farvertex) {
			// farvertex lies on the segment.
			collision = true
			fixuptri2 := fixuptri.Oprev()
			fixuptri = m.delaunayFixup(fixuptri, false)
			m.delaunayFixup(fixuptri2, true)
			done = true
			continue
		}
		if area > 0 {
			// farvertex is to the left of the segment.
			fixuptri2 := fixuptri.Oprev()
			m.delaunayFixup(fixuptri2, true)
			fixuptri = fixuptri.Lprev()
		} else {
			fixuptri = m.delaunayFixup(fixuptri, false)
			fixuptri = fixuptri.Oprev()
		}

		// fixuptri now crosses the segment.
		crosssubseg := fixuptri.SegPivot()
		if m.IsNoSubseg(crosssubseg) {
			m.flip(fixuptri)
		} else {
			var split bool
			fixuptri, split = m.segmentIntersection(fixuptri, crosssubseg, endpoint2, marker)
			if !split {
				// No insertion follows to repair the polygons.
				fixuptri = m.fixupCorner(fixuptri, endpoint1)
			}
			collision, crossed = true, true
			done = true
		}
	}

	if !crossed {
		m.InsertSubseg(fixuptri, marker)
	}
	if collision {
		// Insert the rest of the segment, from the vertex that stopped
		// the dig.
		if ok, t := m.scoutSegment(fixuptri, endpoint2, marker); !ok {
			m.constrainedEdge(t, endpoint2, marker)
		}
	}
}

// InsertSegment forces the segment from a to b into the mesh as a chain
// of subsegments with the given marker. Vertices lying on the segment, up
// to the rounding of earlier crossings, split it, and crossing subsegments
// are split where they cross.
//
// A segment whose endpoints coincide is logged and skipped.
func (m *Mesh) InsertSegment(a, b *Vertex, marker int) (err error) {
	defer m.catch(&err)
	if a == nil || b == nil || a.IsDead() || b.IsDead() {
		return errors.Wrap(ErrDeadHandle, "cdt: InsertSegment")
	}
	if a.Point == b.Point {
		m.logger.Warn("endpoints of segment are coincident",
			zap.Float64("x", a.X), zap.Float64("y", a.Y))
		return nil
	}
	m.clearUndo()
	m.insertSegment(a, b, marker)
	return nil
}

// vertexTri returns a handle whose origin is at the coordinates of v.
func (m *Mesh) vertexTri(v *Vertex) Otri {
	if t := v.tri; m.valid(t) && t.Org() == v {
		return t
	}
	r, t := m.Locate(v.Point, Otri{})
	if r != OnVertex {
		throw(errors.Wrapf(ErrVertexNotFound, "vertex %d at (%g, %g)", v.ID, v.X, v.Y))
	}
	return t
}

func (m *Mesh) insertSegment(endpoint1, endpoint2 *Vertex, marker int) {
	m.forcing = [2]*Vertex{endpoint1, endpoint2}
	defer func() { m.forcing = [2]*Vertex{} }()
	searchtri1 := m.vertexTri(endpoint1)
	m.recenttri = searchtri1
	done, searchtri1 := m.scoutSegment(searchtri1, endpoint2, marker)
	if done {
		return
	}
	// The origin may have moved along the segment.
	endpoint1 = searchtri1.Org()

	searchtri2 := m.vertexTri(endpoint2)
	m.recenttri = searchtri2
	done, searchtri2 = m.scoutSegment(searchtri2, endpoint1, marker)
	if done {
		return
	}
	endpoint2 = searchtri2.Org()

	// Scouting from endpoint2 may have changed the triangles around
	// endpoint1, so find the way out of endpoint1 again before digging.
	done, searchtri1 = m.scoutSegment(m.vertexTri(endpoint1), endpoint2, marker)
	if done {
		return
	}
	m.constrainedEdge(searchtri1, endpoint2, marker)
}

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
	"github.com/pkg/errors"
)

// DeleteVertex removes the origin of o from the mesh and retriangulates the
// hole it leaves. The vertex must be interior and must not be an endpoint
// of any subsegment; otherwise nothing is changed and an error is
// returned.
func (m *Mesh) DeleteVertex(o Otri) (err error) {
	defer m.catch(&err)
	if !m.valid(o) {
		return errors.Wrap(ErrDeadHandle, "cdt: DeleteVertex")
	}
	delvertex := o.Org()

	// Count the degree of the vertex, and make sure it can be deleted.
	edgecount := 0
	countingtri := o
	for {
		if !m.IsNoSubseg(countingtri.SegPivot()) {
			return errors.Wrapf(ErrVertexOnSegment, "(%g, %g)", delvertex.X, delvertex.Y)
		}
		edgecount++
		countingtri = countingtri.Onext()
		if m.IsOuter(countingtri) {
			return errors.Wrapf(ErrVertexOnBoundary, "(%g, %g)", delvertex.X, delvertex.Y)
		}
		if countingtri.Equal(o) {
			break
		}
	}
	assert(edgecount >= 3)

	m.clearUndo()
	m.deleteVertex(o, edgecount)
	return nil
}

func (m *Mesh) deleteVertex(deltri Otri, edgecount int) {
	delvertex := deltri.Org()
	triflaws := m.behavior.Quality && m.behavior.NoBisect == 0

	if edgecount > 3 {
		// Triangulate the polygon defined by the union of all triangles
		// adjacent to the vertex, leaving three edges to splice out.
		firstedge := deltri.Onext()
		lastedge := deltri.Oprev()
		m.triangulatePolygon(firstedge, lastedge, edgecount, false, triflaws)
	}

	// Splice out two triangles.
	deltriright := deltri.Lprev()
	lefttri := deltri.Dnext()
	leftcasing := lefttri.Sym()
	righttri := deltriright.Oprev()
	rightcasing := righttri.Sym()
	deltri.Bond(leftcasing)
	deltriright.Bond(rightcasing)
	if s := lefttri.SegPivot(); !m.IsNoSubseg(s) {
		deltri.SegBond(s)
	}
	if s := righttri.SegPivot(); !m.IsNoSubseg(s) {
		deltriright.SegBond(s)
	}

	neworg := lefttri.Org()
	deltri.SetOrg(neworg)
	neworg.tri = deltri
	if triflaws {
		m.testTriangle(deltri)
	}

	m.TriangleDealloc(lefttri.tri)
	m.TriangleDealloc(righttri.tri)
	m.VertexDealloc(delvertex)
	m.recenttri = deltri
}

// triangulatePolygon:
// Triangulates a polygon of edgecount edges, given as a fan of edges
// around one of its vertices, by choosing the vertex that forms a Delaunay
// triangle with the base and recursing on both sides of it.
//
// firstedge and lastedge are the first and last edges of the fan, counted
// counterclockwise, and the base runs from the apex of lastedge to the
// destination of firstedge. The polygon's interior edges must be those of
// the fan. If doflip is set, the edge found is the one that must be
// flipped to join the base to the chosen vertex. Returns the edge from the
// fan vertex to the chosen vertex, or the flipped edge.
func (m *Mesh) triangulatePolygon(firstedge, lastedge Otri, edgecount int, doflip, triflaws bool) Otri {
	leftbasevertex := lastedge.Apex()
	rightbasevertex := firstedge.Dest()

	// Find the best vertex to connect the base to.
	besttri := firstedge.Onext()
	bestvertex := besttri.Dest()
	testtri := besttri
	bestnumber := 1
	for i := 2; i <= edgecount-2; i++ {
		testtri = testtri.Onext()
		testvertex := testtri.Dest()
		if InCircle(leftbasevertex.Point, rightbasevertex.Point, bestvertex.Point, testvertex.Point) > 0 {
			besttri = testtri
			bestvertex = testvertex
			bestnumber = i
		}
	}

	if bestnumber > 1 {
		// Recursively triangulate the polygon on the right.
		m.triangulatePolygon(firstedge, besttri.Oprev(), bestnumber+1, true, triflaws)
	}
	if bestnumber < edgecount-2 {
		// And the polygon on the left.
		tempedge := besttri.Sym()
		m.triangulatePolygon(besttri, lastedge, edgecount-bestnumber, true, triflaws)
		besttri = tempedge.Sym()
	}
	if doflip {
		m.flip(besttri)
		if triflaws {
			m.testTriangle(besttri.Sym())
		}
	}
	return besttri
}

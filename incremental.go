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

// boundingBox:
// Forms a triangle large enough to enclose every input vertex, whose
// corners are treated as infinitely distant by insertVertex.
func (m *Mesh) boundingBox() {
	b := m.bounds
	width := b.X.Length()
	if h := b.Y.Length(); h > width {
		width = h
	}
	if width == 0 {
		width = 1
	}
	m.infvertex1 = &Vertex{ID: -1, Point: r2.Point{X: b.X.Lo - 50*width, Y: b.Y.Lo - 40*width}}
	m.infvertex2 = &Vertex{ID: -2, Point: r2.Point{X: b.X.Hi + 50*width, Y: b.Y.Lo - 40*width}}
	m.infvertex3 = &Vertex{ID: -3, Point: r2.Point{X: 0.5 * (b.X.Lo + b.X.Hi), Y: b.Y.Hi + 60*width}}

	inftri := m.MakeTriangle()
	inftri.SetOrg(m.infvertex1)
	inftri.SetDest(m.infvertex2)
	inftri.SetApex(m.infvertex3)
	// The bounding triangle is the only triangle and has no neighbor, so
	// the sentinel points at it.
	m.dummytri.neighbors[0] = inftri
}

// removeBox:
// Removes every triangle with a corner of the bounding triangle, and
// returns the number of edges on the convex hull of what is left.
func (m *Mesh) removeBox() int {
	// Find a boundary triangle, and mark a place to stop.
	nextedge := m.outer().Sym()
	finaledge := nextedge.Lprev()
	nextedge = nextedge.Lnext().Sym()

	// Find a triangle on the hull of the vertex set that is not a
	// bounding triangle.
	searchedge := nextedge.Lprev().Sym()
	if checkedge := nextedge.Lnext().Sym(); m.IsOuter(checkedge) {
		// nextedge is another bounding triangle next to the first one. The
		// one after it cannot be the third.
		searchedge = searchedge.Lprev().Sym()
	}
	m.dummytri.neighbors[0] = searchedge

	hullsize := -2
	for !nextedge.Equal(finaledge) {
		hullsize++
		dissolveedge := nextedge.Lprev().Sym()
		// Without segments, hull vertices are marked here. Otherwise
		// MarkHull does it.
		if !m.poly() && !m.IsOuter(dissolveedge) {
			if org := dissolveedge.Org(); org.Mark == 0 {
				org.Mark = 1
			}
		}
		m.Dissolve(dissolveedge)
		deadtriangle := nextedge.Lnext()
		nextedge = deadtriangle.Sym()
		m.TriangleDealloc(deadtriangle.tri)
		if m.IsOuter(nextedge) {
			// Turn the corner.
			nextedge = dissolveedge
		}
	}
	m.TriangleDealloc(finaledge.tri)
	return hullsize
}

// incrementalDelaunay builds the Delaunay triangulation of the input
// vertices by inserting them one at a time into the bounding triangle.
// Returns the number of edges on the convex hull.
func (m *Mesh) incrementalDelaunay() int {
	m.boundingBox()
	for i, v := range m.inputs {
		r, o := m.insertVertex(v, m.outer(), nil, false, false)
		if r == Duplicate {
			m.logger.Warn("duplicate vertex ignored",
				zap.Int("vertex", i), zap.Float64("x", v.X), zap.Float64("y", v.Y))
			m.inputs[i] = o.Org()
			m.VertexDealloc(v)
		}
	}

	found := false
	for _, t := range m.triangles.items {
		if !m.isInfinite(t.vertices[0]) && !m.isInfinite(t.vertices[1]) && !m.isInfinite(t.vertices[2]) {
			found = true
			break
		}
	}
	if !found {
		throw(errors.Wrapf(ErrCollinearInput, "%d vertices", m.vertices.len()))
	}

	hullsize := m.removeBox()
	m.infvertex1 = nil
	m.infvertex2 = nil
	m.infvertex3 = nil
	m.recenttri = m.outer().Sym()
	return hullsize
}

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

type undoKind int

const (
	// undoTrisect reverts a vertex inserted inside a triangle.
	undoTrisect undoKind = iota
	// undoBisect reverts a vertex inserted on an edge.
	undoBisect
	// undoFlip reverts an edge flip.
	undoFlip
)

// undoRecord is one reversible step of a vertex insertion.
//
// For a split, tri is the original triangle, kept with the edge opposite
// the new vertex (trisect) or with the new vertex as its origin (bisect).
// For a flip, tri is the flipped edge.
type undoRecord struct {
	kind   undoKind
	tri    Otri
	vertex *Vertex

	// hull is set if a bisected edge was on the boundary.
	hull bool

	// seg and newseg are the two pieces of a bisected subsegment. seg
	// runs from the far end to the new vertex.
	seg    Osub
	newseg Osub
}

func (m *Mesh) clearUndo() {
	m.undo = m.undo[:0]
	m.undoV = nil
	m.undoSteiner = false
}

// UndoVertex reverts the last vertex insertion made with quality checking.
// Any later insertion, segment insertion or deletion discards the log.
// With nothing to revert it does nothing.
func (m *Mesh) UndoVertex() {
	for i := len(m.undo) - 1; i >= 0; i-- {
		rec := m.undo[i]
		switch rec.kind {
		case undoFlip:
			m.unflip(rec.tri)
		case undoTrisect:
			m.undoTrisect(rec.tri)
		case undoBisect:
			m.undoBisect(rec)
		}
	}
	if m.undoV != nil {
		m.VertexDealloc(m.undoV)
	}
	if m.undoSteiner && m.steinerleft >= 0 {
		m.steinerleft++
	}
	m.clearUndo()
}

// undoTrisect merges the three triangles around a vertex inserted in a
// triangle back into fliptri.
func (m *Mesh) undoTrisect(fliptri Otri) {
	botleft := fliptri.Dprev().Lnext()
	botright := fliptri.Onext().Lprev()
	botlcasing := botleft.Sym()
	botrcasing := botright.Sym()
	botvertex := botleft.Dest()

	fliptri.SetApex(botvertex)
	fliptri = fliptri.Lnext()
	fliptri.Bond(botlcasing)
	m.segRebond(fliptri, botleft.SegPivot())
	fliptri = fliptri.Lnext()
	fliptri.Bond(botrcasing)
	m.segRebond(fliptri, botright.SegPivot())

	m.TriangleDealloc(botleft.tri)
	m.TriangleDealloc(botright.tri)
	m.recenttri = fliptri
}

// undoBisect merges the triangles on both sides of a vertex inserted on an
// edge back into two, or one on the boundary.
func (m *Mesh) undoBisect(rec undoRecord) {
	fliptri := rec.tri
	gluetri := fliptri.Lprev()
	botright := gluetri.Sym().Lnext()
	botrcasing := botright.Sym()
	rightvertex := botright.Dest()

	fliptri.SetOrg(rightvertex)
	gluetri.Bond(botrcasing)
	m.segRebond(gluetri, botright.SegPivot())
	m.TriangleDealloc(botright.tri)

	gluetri = fliptri.Sym()
	if !m.IsOuter(gluetri) {
		gluetri = gluetri.Lnext()
		topright := gluetri.Dnext()
		toprcasing := topright.Sym()

		gluetri.SetOrg(rightvertex)
		gluetri.Bond(toprcasing)
		m.segRebond(gluetri, topright.SegPivot())
		m.TriangleDealloc(topright.tri)
	}
	if rec.hull {
		m.hullsize--
	}

	if rec.newseg.seg != nil {
		// Join the two pieces of the split subsegment back together.
		seg := rec.seg
		seg.SetDest(rightvertex)
		rightsubseg := rec.newseg.Sym().Pivot()
		if m.IsNoSubseg(rightsubseg) {
			m.SubsegDissolve(seg.Sym())
		} else {
			seg.Sym().Bond(rightsubseg)
		}
		m.SubsegDealloc(rec.newseg.seg)
	}
	m.recenttri = fliptri
}

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
)

// InsertResult is the outcome of a vertex insertion.
type InsertResult int

const (
	// Successful means the vertex was inserted.
	Successful InsertResult = iota
	// Encroaching means the vertex was inserted and encroaches upon a
	// subsegment.
	Encroaching
	// Violating means the vertex lies on a subsegment and was not inserted.
	Violating
	// Duplicate means a vertex already exists at the same coordinates and
	// the new one was not inserted.
	Duplicate
)

func (r InsertResult) String() string {
	switch r {
	case Successful:
		return "successful"
	case Encroaching:
		return "encroaching"
	case Violating:
		return "violating"
	case Duplicate:
		return "duplicate"
	}
	return "unknown"
}

// InsertVertex inserts v, which must have been made with MakeVertex, and
// restores the constrained Delaunay property by flipping edges.
//
// hint is a triangle to start searching from; a zero hint searches the
// whole mesh. If split is a live subsegment, v is inserted on it without
// searching, and hint is ignored. v must then lie on split.
//
// With checkEncroach set, subsegments that v encroaches upon, or lies on,
// are reported to the flaw sink. With checkQuality set, every triangle the
// insertion creates is tested for quality, and the insertion can be
// reverted with UndoVertex.
//
// The returned handle has v as its origin, or the vertex that stopped the
// insertion for Duplicate and Violating. Duplicate and Violating leave v
// out of the triangulation.
func (m *Mesh) InsertVertex(v *Vertex, hint Otri, split Osub, checkEncroach, checkQuality bool) (result InsertResult, o Otri, err error) {
	defer m.catch(&err)
	if v == nil || v.IsDead() {
		return Successful, Otri{}, errors.Wrap(ErrDeadHandle, "cdt: InsertVertex")
	}
	var splitseg *Osub
	if split.seg != nil && !split.IsDead() && !m.IsNoSubseg(split) {
		hint = split.TriPivot()
		if !m.valid(hint) {
			split = split.Sym()
			hint = split.TriPivot()
		}
		if !m.valid(hint) {
			return Successful, Otri{}, errors.Wrap(ErrDeadHandle, "cdt: InsertVertex: subsegment has no triangle")
		}
		splitseg = &split
	}
	r, o := m.insertVertex(v, hint, splitseg, checkEncroach, checkQuality)
	return r, o, nil
}

// InsertPoint makes a free vertex at p and inserts it like InsertVertex.
// The vertex is dropped again if the insertion is Duplicate or Violating.
// A successful insertion uses up one Steiner vertex.
func (m *Mesh) InsertPoint(p r2.Point, hint Otri, checkEncroach, checkQuality bool) (result InsertResult, o Otri, err error) {
	var v *Vertex
	defer func() {
		if err != nil && v != nil {
			m.VertexDealloc(v)
		}
	}()
	defer m.catch(&err)
	if m.steinerleft == 0 {
		return Successful, Otri{}, ErrNoSteinerPoints
	}
	v = m.MakeVertex(p)
	r, o := m.insertVertex(v, hint, nil, checkEncroach, checkQuality)
	switch r {
	case Duplicate, Violating:
		m.VertexDealloc(v)
	default:
		m.useSteiner()
		m.undoSteiner = len(m.undo) > 0
	}
	return r, o, nil
}

// useSteiner records that a Steiner vertex was added.
func (m *Mesh) useSteiner() {
	if m.steinerleft > 0 {
		m.steinerleft--
	}
}

// insertVertex:
// Inserts newvertex into the triangulation. If splitseg is not nil, the
// vertex is inserted on that subsegment, and searchtri must be the
// triangle edge it is bonded to.
//
// Before the flips begin, the new vertex splits either the triangle it
// lies in, into three, or the edge it lies on, making two triangles out of
// each triangle sharing that edge. The edges opposite the new vertex are
// then checked in a full circuit around it. Every edge that is not locally
// Delaunay is flipped, and the two edges it exposes are checked in turn.
func (m *Mesh) insertVertex(newvertex *Vertex, searchtri Otri, splitseg *Osub, segmentflaws, triflaws bool) (InsertResult, Otri) {
	m.clearUndo()

	var horiz Otri
	var intersect LocateResult
	if splitseg == nil {
		if !m.valid(searchtri) {
			intersect, horiz = m.Locate(newvertex.Point, Otri{})
		} else {
			intersect, horiz = m.locateFrom(newvertex.Point, searchtri)
		}
	} else {
		horiz = searchtri
		intersect = OnEdge
		// A split at an endpoint of the subsegment would duplicate it.
		switch newvertex.Point {
		case horiz.Org().Point:
			intersect = OnVertex
		case horiz.Dest().Point:
			horiz = horiz.Lnext()
			intersect = OnVertex
		}
	}

	if intersect == OnVertex {
		m.recenttri = horiz
		return Duplicate, horiz
	}

	if intersect == OnEdge || intersect == Outside {
		if splitseg == nil {
			brokensubseg := horiz.SegPivot()
			if !m.IsNoSubseg(brokensubseg) {
				if segmentflaws {
					enq := m.behavior.NoBisect != 2
					if enq && m.behavior.NoBisect == 1 {
						// Only internal boundaries may be split.
						enq = !m.IsOuter(horiz.Sym())
					}
					if enq {
						m.addBadSubseg(brokensubseg)
					}
				}
				m.recenttri = horiz
				return Violating, horiz
			}
			if intersect == Outside {
				throw(errors.Wrapf(ErrPointOutside, "(%g, %g)", newvertex.X, newvertex.Y))
			}
		}
		horiz = m.splitEdge(newvertex, horiz, splitseg, triflaws)
	} else {
		m.splitTriangle(newvertex, horiz, triflaws)
	}

	success := Successful
	first := horiz.Org()
	rightvertex := first
	leftvertex := horiz.Dest()
	for {
		doflip := true

		if checksubseg := horiz.SegPivot(); !m.IsNoSubseg(checksubseg) {
			// Subsegments are never flipped.
			doflip = false
			if segmentflaws && m.CheckSubsegEncroachment(checksubseg) != 0 {
				success = Encroaching
			}
		}

		if doflip {
			top := horiz.Sym()
			if m.IsOuter(top) {
				doflip = false
			} else {
				farvertex := top.Apex()
				switch {
				case m.isInfinite(leftvertex):
					// leftvertex is infinitely distant. Only the convexity
					// of the boundary matters. farvertex may be infinite
					// too, and the same test still applies.
					doflip = Orient2D(newvertex.Point, rightvertex.Point, farvertex.Point) > 0
				case m.isInfinite(rightvertex):
					doflip = Orient2D(farvertex.Point, leftvertex.Point, newvertex.Point) > 0
				case m.isInfinite(farvertex):
					// An infinite vertex is never inside a circumcircle.
					doflip = false
				default:
					doflip = InCircle(leftvertex.Point, newvertex.Point, rightvertex.Point, farvertex.Point) > 0
				}
				if doflip {
					m.flip(horiz)
					averageAttributes(horiz.tri, top.tri, m.behavior.VarArea)
					if triflaws {
						m.undo = append(m.undo, undoRecord{kind: undoFlip, tri: horiz})
					}
					// Check the two edges the flip exposed to the new vertex.
					horiz = horiz.Lprev()
					leftvertex = farvertex
				}
			}
		}

		if !doflip {
			// horiz is locally Delaunay.
			if triflaws {
				m.testTriangle(horiz)
			}
			horiz = horiz.Lnext()
			testtri := horiz.Sym()
			// Stop after a full circle, or at the boundary when the vertex
			// was inserted on it.
			if leftvertex == first || m.IsOuter(testtri) {
				o := horiz.Lnext()
				m.recenttri = o
				newvertex.tri = o
				return success, o
			}
			horiz = testtri.Lnext()
			rightvertex = leftvertex
			leftvertex = horiz.Dest()
		}
	}
}

// splitEdge:
// Inserts newvertex on the edge of horiz, splitting the triangle on each
// side of it in two. Returns the first edge to check for the Delaunay
// property.
func (m *Mesh) splitEdge(newvertex *Vertex, horiz Otri, splitseg *Osub, triflaws bool) Otri {
	botright := horiz.Lprev()
	botrcasing := botright.Sym()
	topright := horiz.Sym()

	var toprcasing, newtopright Otri
	mirror := !m.IsOuter(topright)
	if mirror {
		topright = topright.Lnext()
		toprcasing = topright.Sym()
		newtopright = m.MakeTriangle()
	} else {
		m.hullsize++
	}
	newbotright := m.MakeTriangle()

	rightvertex := horiz.Org()
	botvertex := horiz.Apex()
	newbotright.SetOrg(botvertex)
	newbotright.SetDest(rightvertex)
	newbotright.SetApex(newvertex)
	horiz.SetOrg(newvertex)
	inheritAttributes(newbotright.tri, botright.tri)

	if mirror {
		topvertex := topright.Dest()
		newtopright.SetOrg(rightvertex)
		newtopright.SetDest(topvertex)
		newtopright.SetApex(newvertex)
		topright.SetOrg(newvertex)
		inheritAttributes(newtopright.tri, topright.tri)
	}

	// Move subsegments onto the new triangles.
	if s := botright.SegPivot(); !m.IsNoSubseg(s) {
		m.SegDissolve(botright)
		newbotright.SegBond(s)
	}
	if mirror {
		if s := topright.SegPivot(); !m.IsNoSubseg(s) {
			m.SegDissolve(topright)
			newtopright.SegBond(s)
		}
	}

	newbotright.Bond(botrcasing)
	newbotright = newbotright.Lprev()
	newbotright.Bond(botright)
	newbotright = newbotright.Lprev()
	if mirror {
		newtopright.Bond(toprcasing)
		newtopright = newtopright.Lnext()
		newtopright.Bond(topright)
		newtopright = newtopright.Lnext()
		newtopright.Bond(newbotright)
	}

	rec := undoRecord{kind: undoBisect, tri: horiz, vertex: newvertex, hull: !mirror}
	if splitseg != nil {
		// Split the subsegment in two. Both pieces keep the segment's
		// persistent endpoints and marker.
		seg := *splitseg
		seg.SetDest(newvertex)
		segmentorg := seg.SegOrg()
		segmentdest := seg.SegDest()
		rightsubseg := seg.Sym().Pivot()
		m.InsertSubseg(newbotright, seg.seg.Boundary)
		newsubseg := newbotright.SegPivot()
		newsubseg.SetSegOrg(segmentorg)
		newsubseg.SetSegDest(segmentdest)
		seg.Sym().Bond(newsubseg)
		newsubseg.Sym().Bond(rightsubseg)
		if newvertex.Mark == 0 {
			newvertex.Mark = seg.seg.Boundary
		}
		newvertex.Type = SegmentVertex
		rec.seg = seg
		rec.newseg = newsubseg
	}

	if triflaws {
		m.undo = append(m.undo, rec)
		m.undoV = newvertex
	}
	return horiz.Lnext()
}

// splitTriangle inserts newvertex inside the triangle of horiz, splitting
// it into three. horiz keeps the edge opposite the new vertex.
func (m *Mesh) splitTriangle(newvertex *Vertex, horiz Otri, triflaws bool) {
	botleft := horiz.Lnext()
	botright := horiz.Lprev()
	botlcasing := botleft.Sym()
	botrcasing := botright.Sym()
	newbotleft := m.MakeTriangle()
	newbotright := m.MakeTriangle()

	rightvertex := horiz.Org()
	leftvertex := horiz.Dest()
	botvertex := horiz.Apex()
	newbotleft.SetOrg(leftvertex)
	newbotleft.SetDest(botvertex)
	newbotleft.SetApex(newvertex)
	newbotright.SetOrg(botvertex)
	newbotright.SetDest(rightvertex)
	newbotright.SetApex(newvertex)
	horiz.SetApex(newvertex)
	inheritAttributes(newbotleft.tri, horiz.tri)
	inheritAttributes(newbotright.tri, horiz.tri)

	if s := botleft.SegPivot(); !m.IsNoSubseg(s) {
		m.SegDissolve(botleft)
		newbotleft.SegBond(s)
	}
	if s := botright.SegPivot(); !m.IsNoSubseg(s) {
		m.SegDissolve(botright)
		newbotright.SegBond(s)
	}

	newbotleft.Bond(botlcasing)
	newbotright.Bond(botrcasing)
	newbotleft = newbotleft.Lnext()
	newbotright = newbotright.Lprev()
	newbotleft.Bond(newbotright)
	newbotleft = newbotleft.Lnext()
	botleft.Bond(newbotleft)
	newbotright = newbotright.Lprev()
	botright.Bond(newbotright)

	if triflaws {
		m.undo = append(m.undo, undoRecord{kind: undoTrisect, tri: horiz, vertex: newvertex})
		m.undoV = newvertex
	}
}

// inheritAttributes copies the attributes and area constraint of t to a
// triangle split off from it.
func inheritAttributes(dst, t *Triangle) {
	copy(dst.Attributes, t.Attributes)
	dst.Area = t.Area
}

// averageAttributes gives the two triangles of a flip the mean of their
// attributes. With varArea, area constraints are averaged too, so that
// small ones do not travel far through repeated flips.
func averageAttributes(a, b *Triangle, varArea bool) {
	for i := range a.Attributes {
		attr := 0.5 * (a.Attributes[i] + b.Attributes[i])
		a.Attributes[i] = attr
		b.Attributes[i] = attr
	}
	if !varArea {
		return
	}
	area := -1.0
	if a.Area > 0 && b.Area > 0 {
		area = 0.5 * (a.Area + b.Area)
	}
	a.Area = area
	b.Area = area
}

func (m *Mesh) isInfinite(v *Vertex) bool {
	return v != nil && (v == m.infvertex1 || v == m.infvertex2 || v == m.infvertex3)
}

// Flip transforms the two triangles on either side of the edge of o,
// rotating their shared edge a quarter turn counterclockwise. Afterward o
// runs from the former apex of the far triangle to the former apex of o.
//
//	     right               right
//	      / \                 /|\
//	     /   \               / | \
//	bot < - o - > far  =>  bot | far
//	     \   /               \ | /
//	      \ /                 \|/
//	     left                left
//
// The edge must not be a subsegment or a boundary edge.
func (m *Mesh) Flip(o Otri) {
	m.flip(o)
}

func (m *Mesh) flip(flipedge Otri) {
	rightvertex := flipedge.Org()
	leftvertex := flipedge.Dest()
	botvertex := flipedge.Apex()
	top := flipedge.Sym()
	farvertex := top.Apex()

	topleft := top.Lprev()
	toplcasing := topleft.Sym()
	topright := top.Lnext()
	toprcasing := topright.Sym()
	botleft := flipedge.Lnext()
	botlcasing := botleft.Sym()
	botright := flipedge.Lprev()
	botrcasing := botright.Sym()

	topleft.Bond(botlcasing)
	botleft.Bond(botrcasing)
	botright.Bond(toprcasing)
	topright.Bond(toplcasing)

	toplsubseg := topleft.SegPivot()
	botlsubseg := botleft.SegPivot()
	botrsubseg := botright.SegPivot()
	toprsubseg := topright.SegPivot()
	m.segRebond(topright, toplsubseg)
	m.segRebond(topleft, botlsubseg)
	m.segRebond(botleft, botrsubseg)
	m.segRebond(botright, toprsubseg)

	flipedge.SetOrg(farvertex)
	flipedge.SetDest(botvertex)
	flipedge.SetApex(rightvertex)
	top.SetOrg(botvertex)
	top.SetDest(farvertex)
	top.SetApex(leftvertex)
}

// Unflip is the inverse of Flip: it rotates the edge of o a quarter turn
// clockwise.
func (m *Mesh) Unflip(o Otri) {
	m.unflip(o)
}

func (m *Mesh) unflip(flipedge Otri) {
	rightvertex := flipedge.Org()
	leftvertex := flipedge.Dest()
	botvertex := flipedge.Apex()
	top := flipedge.Sym()
	farvertex := top.Apex()

	topleft := top.Lprev()
	toplcasing := topleft.Sym()
	topright := top.Lnext()
	toprcasing := topright.Sym()
	botleft := flipedge.Lnext()
	botlcasing := botleft.Sym()
	botright := flipedge.Lprev()
	botrcasing := botright.Sym()

	topleft.Bond(toprcasing)
	botleft.Bond(toplcasing)
	botright.Bond(botlcasing)
	topright.Bond(botrcasing)

	toplsubseg := topleft.SegPivot()
	botlsubseg := botleft.SegPivot()
	botrsubseg := botright.SegPivot()
	toprsubseg := topright.SegPivot()
	m.segRebond(botleft, toplsubseg)
	m.segRebond(botright, botlsubseg)
	m.segRebond(topright, botrsubseg)
	m.segRebond(topleft, toprsubseg)

	flipedge.SetOrg(botvertex)
	flipedge.SetDest(farvertex)
	flipedge.SetApex(leftvertex)
	top.SetOrg(farvertex)
	top.SetDest(botvertex)
	top.SetApex(rightvertex)
}

// segRebond bonds s to the edge of o, or clears the edge if s is the
// sentinel.
func (m *Mesh) segRebond(o Otri, s Osub) {
	if m.IsNoSubseg(s) {
		m.SegDissolve(o)
	} else {
		o.SegBond(s)
	}
}

// InsertSubseg makes the edge of o a subsegment with the given marker. If
// it already is one, its marker is only set if it was zero. The endpoints
// of the edge take the marker too, unless they already have one.
func (m *Mesh) InsertSubseg(o Otri, marker int) {
	triorg := o.Org()
	tridest := o.Dest()
	if triorg.Mark == 0 {
		triorg.Mark = marker
	}
	if tridest.Mark == 0 {
		tridest.Mark = marker
	}

	newsubseg := o.SegPivot()
	if !m.IsNoSubseg(newsubseg) {
		if newsubseg.seg.Boundary == 0 {
			newsubseg.seg.Boundary = marker
		}
		return
	}

	newsubseg = m.MakeSubseg()
	newsubseg.SetOrg(tridest)
	newsubseg.SetDest(triorg)
	newsubseg.SetSegOrg(tridest)
	newsubseg.SetSegDest(triorg)
	// The facing triangle may be the sentinel. The subsegment is bonded to
	// it all the same.
	o.SegBond(newsubseg)
	oppotri := o.Sym()
	newsubseg = newsubseg.Sym()
	oppotri.SegBond(newsubseg)
	newsubseg.seg.Boundary = marker
}

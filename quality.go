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
	"math"
)

// BadTriangle is a triangle that fails a quality test.
type BadTriangle struct {
	Tri Otri

	// Key is the squared cosine of the smallest angle. Larger is worse.
	Key float64
	// MinEdge is the squared length of the shortest edge.
	MinEdge float64

	// The corners of the triangle when it was tested.
	Org, Dest, Apex *Vertex
}

// IsStale reports whether the triangle has been deallocated or changed
// since it was tested.
func (b *BadTriangle) IsStale() bool {
	return b.Tri.IsDead() || b.Tri.Org() != b.Org || b.Tri.Dest() != b.Dest || b.Tri.Apex() != b.Apex
}

// BadSubseg is an encroached subsegment.
type BadSubseg struct {
	Subseg Osub

	// The endpoints of the subsegment when it was tested.
	Org, Dest *Vertex
}

// IsStale reports whether the subsegment has been deallocated or split
// since it was tested.
func (b *BadSubseg) IsStale() bool {
	return b.Subseg.IsDead() || b.Subseg.Org() != b.Org || b.Subseg.Dest() != b.Dest
}

// FlawSink receives the flaws found while the mesh changes.
type FlawSink interface {
	AddBadTriangle(BadTriangle)
	AddBadSubseg(BadSubseg)
}

func (m *Mesh) addBadSubseg(s Osub) {
	if m.flaws == nil {
		return
	}
	m.flaws.AddBadSubseg(BadSubseg{Subseg: s, Org: s.Org(), Dest: s.Dest()})
}

func (m *Mesh) addBadTriangle(o Otri, key, minedge float64) {
	if m.flaws == nil {
		return
	}
	m.flaws.AddBadTriangle(BadTriangle{
		Tri:     o,
		Key:     key,
		MinEdge: minedge,
		Org:     o.Org(),
		Dest:    o.Dest(),
		Apex:    o.Apex(),
	})
}

// CheckSubsegEncroachment reports which sides of s have an apex that
// encroaches upon it: bit 0 for the triangle on the side of s, bit 1 for
// the triangle on the other side. A vertex encroaches if it lies inside
// the diametral lens of the subsegment, or inside its diametral circle
// when ConformDel is set.
//
// An encroached subsegment is reported to the flaw sink, oriented so that
// the encroaching apex is on its side, unless NoBisect forbids splitting
// it.
func (m *Mesh) CheckSubsegEncroachment(s Osub) int {
	encroached := 0
	sides := 0
	eorg := s.Org()
	edest := s.Dest()

	if neighbortri := s.TriPivot(); !m.IsOuter(neighbortri) && neighbortri.tri != nil {
		sides++
		if m.encroaches(eorg, edest, neighbortri.Apex()) {
			encroached = 1
		}
	}
	testsym := s.Sym()
	if neighbortri := testsym.TriPivot(); !m.IsOuter(neighbortri) && neighbortri.tri != nil {
		sides++
		if m.encroaches(eorg, edest, neighbortri.Apex()) {
			encroached += 2
		}
	}

	if encroached != 0 && (m.behavior.NoBisect == 0 || (m.behavior.NoBisect == 1 && sides == 2)) {
		if encroached == 1 {
			m.addBadSubseg(s)
		} else {
			m.addBadSubseg(testsym)
		}
	}
	return encroached
}

// encroaches reports whether eapex is too close to the subsegment from
// eorg to edest.
func (m *Mesh) encroaches(eorg, edest, eapex *Vertex) bool {
	a := eorg.Sub(eapex.Point)
	b := edest.Sub(eapex.Point)
	dotproduct := a.Dot(b)
	if dotproduct >= 0 {
		return false
	}
	if m.behavior.ConformDel {
		return true
	}
	g := 2*m.behavior.goodAngle() - 1
	return dotproduct*dotproduct >= g*g*a.Dot(a)*b.Dot(b)
}

// testTriangle reports the triangle of o to the flaw sink if its smallest
// angle is too small, its largest angle too large, or its area too big.
//
// A small angle between two segments that meet at an input vertex cannot
// be fixed by refinement. Such a triangle is skipped if both ends of its
// shortest edge are segment vertices at the same distance from where the
// segments meet.
func (m *Mesh) testTriangle(o Otri) {
	torg := o.Org()
	tdest := o.Dest()
	tapex := o.Apex()
	dxod := torg.X - tdest.X
	dyod := torg.Y - tdest.Y
	dxda := tdest.X - tapex.X
	dyda := tdest.Y - tapex.Y
	dxao := tapex.X - torg.X
	dyao := tapex.Y - torg.Y
	apexlen := dxod*dxod + dyod*dyod
	orglen := dxda*dxda + dyda*dyda
	destlen := dxao*dxao + dyao*dyao

	// Find the shortest edge and the angle opposite it.
	var minedge, angle float64
	var base1, base2 *Vertex
	var tri1 Otri
	switch {
	case apexlen < orglen && apexlen < destlen:
		minedge = apexlen
		angle = dxda*dxao + dyda*dyao
		angle = angle * angle / (orglen * destlen)
		base1, base2 = torg, tdest
		tri1 = o
	case orglen < destlen:
		minedge = orglen
		angle = dxod*dxao + dyod*dyao
		angle = angle * angle / (apexlen * destlen)
		base1, base2 = tdest, tapex
		tri1 = o.Lnext()
	default:
		minedge = destlen
		angle = dxod*dxda + dyod*dyda
		angle = angle * angle / (apexlen * orglen)
		base1, base2 = tapex, torg
		tri1 = o.Lprev()
	}

	b := &m.behavior
	if b.VarArea || b.fixedArea() {
		area := 0.5 * (dxod*dyda - dyod*dxda)
		if b.fixedArea() && area > b.MaxArea {
			m.addBadTriangle(o, angle, minedge)
			return
		}
		if b.VarArea && area > o.tri.Area && o.tri.Area > 0 {
			m.addBadTriangle(o, angle, minedge)
			return
		}
	}

	if b.MaxAngle > 0 {
		// The largest angle is opposite the longest edge.
		maxlen, l1, l2 := apexlen, orglen, destlen
		if orglen > maxlen {
			maxlen, l1, l2 = orglen, apexlen, destlen
		}
		if destlen > maxlen {
			maxlen, l1, l2 = destlen, apexlen, orglen
		}
		if c := (l1 + l2 - maxlen) / (2 * math.Sqrt(l1*l2)); c < b.maxGoodAngle() {
			m.addBadTriangle(o, angle, minedge)
			return
		}
	}

	if angle <= b.goodAngle() {
		return
	}
	if base1.Type == SegmentVertex && base2.Type == SegmentVertex && m.IsNoSubseg(tri1.SegPivot()) {
		if m.splitsAtSameDistance(tri1, base1, base2) {
			return
		}
	}
	m.addBadTriangle(o, angle, minedge)
}

// splitsAtSameDistance reports whether base1 and base2, the ends of the
// edge of tri1, lie on two segments that share an endpoint, at the same
// distance from it.
func (m *Mesh) splitsAtSameDistance(tri1 Otri, base1, base2 *Vertex) bool {
	// Find a subsegment at each end of the edge.
	tri2 := tri1
	testsub := m.noSubseg()
	for m.IsNoSubseg(testsub) {
		tri1 = tri1.Oprev()
		if m.IsOuter(tri1) {
			return false
		}
		testsub = tri1.SegPivot()
	}
	org1 := testsub.SegOrg()
	dest1 := testsub.SegDest()

	testsub = m.noSubseg()
	for m.IsNoSubseg(testsub) {
		tri2 = tri2.Dnext()
		if m.IsOuter(tri2) {
			return false
		}
		testsub = tri2.SegPivot()
	}
	org2 := testsub.SegOrg()
	dest2 := testsub.SegDest()

	var joinvertex *Vertex
	switch {
	case dest1.Point == org2.Point:
		joinvertex = dest1
	case org1.Point == dest2.Point:
		joinvertex = org1
	default:
		return false
	}
	dist1 := squaredDist(base1.Point, joinvertex.Point)
	dist2 := squaredDist(base2.Point, joinvertex.Point)
	return dist1 < 1.001*dist2 && dist1 > 0.999*dist2
}

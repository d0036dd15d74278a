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

// Osub is an oriented subsegment. Orientation 1 reverses its origin and
// destination.
type Osub struct {
	seg    *Subseg
	orient int
}

// Subseg returns the subsegment s refers to.
func (s Osub) Subseg() *Subseg {
	return s.seg
}

// Orient returns the orientation of s, 0 or 1.
func (s Osub) Orient() int {
	return s.orient
}

// IsDead reports whether s was zero or its subsegment was deallocated.
func (s Osub) IsDead() bool {
	return s.seg == nil || s.seg.dead
}

// Equal reports whether s and s2 refer to the same subsegment with the same
// orientation.
func (s Osub) Equal(s2 Osub) bool {
	return s.seg == s2.seg && s.orient == s2.orient
}

// Sym returns the subsegment with the opposite orientation.
func (s Osub) Sym() Osub {
	return Osub{seg: s.seg, orient: 1 - s.orient}
}

// Pivot returns the subsegment adjoining s at its origin.
func (s Osub) Pivot() Osub {
	return s.seg.subsegs[s.orient]
}

// Next returns the subsegment adjoining s at its destination, oriented to
// continue in the same direction.
func (s Osub) Next() Osub {
	return s.seg.subsegs[1-s.orient]
}

// Org returns the current origin.
func (s Osub) Org() *Vertex {
	return s.seg.vertices[s.orient]
}

// Dest returns the current destination.
func (s Osub) Dest() *Vertex {
	return s.seg.vertices[1-s.orient]
}

// SetOrg sets the current origin.
func (s Osub) SetOrg(v *Vertex) {
	s.seg.vertices[s.orient] = v
}

// SetDest sets the current destination.
func (s Osub) SetDest(v *Vertex) {
	s.seg.vertices[1-s.orient] = v
}

// SegOrg returns the origin of the whole segment.
func (s Osub) SegOrg() *Vertex {
	return s.seg.vertices[2+s.orient]
}

// SegDest returns the destination of the whole segment.
func (s Osub) SegDest() *Vertex {
	return s.seg.vertices[3-s.orient]
}

// SetSegOrg sets the origin of the whole segment.
func (s Osub) SetSegOrg(v *Vertex) {
	s.seg.vertices[2+s.orient] = v
}

// SetSegDest sets the destination of the whole segment.
func (s Osub) SetSegDest(v *Vertex) {
	s.seg.vertices[3-s.orient] = v
}

// Bond glues s and s2 together end to end, at the origin of each.
func (s Osub) Bond(s2 Osub) {
	s.seg.subsegs[s.orient] = s2
	s2.seg.subsegs[s2.orient] = s
}

// TriPivot returns the triangle edge s is bonded to.
func (s Osub) TriPivot() Otri {
	return s.seg.triangles[s.orient]
}

// SubsegDissolve detaches s from the subsegment adjoining it at its origin.
func (m *Mesh) SubsegDissolve(s Osub) {
	s.seg.subsegs[s.orient] = m.noSubseg()
}

// TriDissolve detaches s from its triangle.
func (m *Mesh) TriDissolve(s Osub) {
	s.seg.triangles[s.orient] = m.outer()
}

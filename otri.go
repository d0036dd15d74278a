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

var (
	plus1Mod3  = [3]int{1, 2, 0}
	minus1Mod3 = [3]int{2, 0, 1}
)

// Otri is an oriented triangle: a triangle together with one of its three
// edges. The edge runs from Org to Dest, and Apex is the opposite corner.
//
// An Otri is a plain value. It is only meaningful while its triangle is
// alive.
type Otri struct {
	tri    *Triangle
	orient int
}

// Triangle returns the triangle o refers to.
func (o Otri) Triangle() *Triangle {
	return o.tri
}

// Orient returns the orientation of o, in [0, 3).
func (o Otri) Orient() int {
	return o.orient
}

// IsDead reports whether o was zero or its triangle was deallocated.
func (o Otri) IsDead() bool {
	return o.tri == nil || o.tri.dead
}

// Equal reports whether o and o2 refer to the same edge of the same
// triangle.
func (o Otri) Equal(o2 Otri) bool {
	return o.tri == o2.tri && o.orient == o2.orient
}

// Org returns the origin of the edge.
func (o Otri) Org() *Vertex {
	return o.tri.vertices[plus1Mod3[o.orient]]
}

// Dest returns the destination of the edge.
func (o Otri) Dest() *Vertex {
	return o.tri.vertices[minus1Mod3[o.orient]]
}

// Apex returns the corner opposite the edge.
func (o Otri) Apex() *Vertex {
	return o.tri.vertices[o.orient]
}

// SetOrg sets the origin of the edge.
func (o Otri) SetOrg(v *Vertex) {
	o.tri.vertices[plus1Mod3[o.orient]] = v
}

// SetDest sets the destination of the edge.
func (o Otri) SetDest(v *Vertex) {
	o.tri.vertices[minus1Mod3[o.orient]] = v
}

// SetApex sets the corner opposite the edge.
func (o Otri) SetApex(v *Vertex) {
	o.tri.vertices[o.orient] = v
}

// Sym returns the same edge seen from the neighboring triangle.
func (o Otri) Sym() Otri {
	return o.tri.neighbors[o.orient]
}

// Lnext returns the next edge counterclockwise in the same triangle.
func (o Otri) Lnext() Otri {
	return Otri{tri: o.tri, orient: plus1Mod3[o.orient]}
}

// Lprev returns the next edge clockwise in the same triangle.
func (o Otri) Lprev() Otri {
	return Otri{tri: o.tri, orient: minus1Mod3[o.orient]}
}

// Onext returns the next edge counterclockwise with the same origin.
func (o Otri) Onext() Otri {
	return o.Lprev().Sym()
}

// Oprev returns the next edge clockwise with the same origin.
func (o Otri) Oprev() Otri {
	return o.Sym().Lnext()
}

// Dnext returns the next edge counterclockwise with the same destination.
func (o Otri) Dnext() Otri {
	return o.Sym().Lprev()
}

// Dprev returns the next edge clockwise with the same destination.
func (o Otri) Dprev() Otri {
	return o.Lnext().Sym()
}

// Rnext returns the next edge counterclockwise of the adjacent triangle.
func (o Otri) Rnext() Otri {
	return o.Sym().Lnext().Sym()
}

// Rprev returns the next edge clockwise of the adjacent triangle.
func (o Otri) Rprev() Otri {
	return o.Sym().Lprev().Sym()
}

// Bond glues o and o2 together along their edges.
func (o Otri) Bond(o2 Otri) {
	o.tri.neighbors[o.orient] = o2
	o2.tri.neighbors[o2.orient] = o
}

// SegPivot returns the subsegment bonded to the edge.
func (o Otri) SegPivot() Osub {
	return o.tri.subsegs[o.orient]
}

// SegBond glues the subsegment s to the edge.
func (o Otri) SegBond(s Osub) {
	o.tri.subsegs[o.orient] = s
	s.seg.triangles[s.orient] = o
}

// Dissolve detaches the edge from its neighbor. The neighbor keeps its own
// link.
func (m *Mesh) Dissolve(o Otri) {
	o.tri.neighbors[o.orient] = m.outer()
}

// SegDissolve detaches the subsegment from the edge.
func (m *Mesh) SegDissolve(o Otri) {
	o.tri.subsegs[o.orient] = m.noSubseg()
}

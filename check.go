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

// Check verifies the topology and geometry of the mesh:
//   - every triangle is counterclockwise and its neighbor links are mutual,
//   - every subsegment link on a triangle edge points back at that edge,
//   - every subsegment lies on the line of its segment, and its links to
//     neighboring subsegments and triangles are mutual,
//   - every edge that is not a subsegment is locally Delaunay,
//   - the numbers of triangles, vertices and hull edges satisfy Euler's
//     formula.
//
// It returns the first violation found.
func (m *Mesh) Check() error {
	for _, t := range m.triangles.sorted() {
		if t.dead {
			return errors.Errorf("cdt: dead triangle %d in the mesh", t.ID)
		}
		for orient := 0; orient < 3; orient++ {
			o := Otri{tri: t, orient: orient}
			org, dest, apex := o.Org(), o.Dest(), o.Apex()
			if org == nil || dest == nil || apex == nil {
				return errors.Errorf("cdt: triangle %d has no corner", t.ID)
			}
			if orient == 0 && Orient2D(org.Point, dest.Point, apex.Point) <= 0 {
				return errors.Errorf("cdt: triangle %d (%v, %v, %v) is not counterclockwise", t.ID, org.Point, dest.Point, apex.Point)
			}

			if s := o.SegPivot(); !m.IsNoSubseg(s) {
				if s.IsDead() {
					return errors.Errorf("cdt: triangle %d has dead subsegment %d", t.ID, s.seg.ID)
				}
				if !s.TriPivot().Equal(o) {
					return errors.Errorf("cdt: subsegment %d does not point back at triangle %d", s.seg.ID, t.ID)
				}
				if !(s.Org() == dest && s.Dest() == org) {
					return errors.Errorf("cdt: subsegment %d endpoints do not match triangle %d", s.seg.ID, t.ID)
				}
			}

			oppo := o.Sym()
			if m.IsOuter(oppo) {
				continue
			}
			if oppo.IsDead() {
				return errors.Errorf("cdt: triangle %d has dead neighbor %d", t.ID, oppo.tri.ID)
			}
			if !oppo.Sym().Equal(o) {
				return errors.Errorf("cdt: neighbor links of triangles %d and %d are not mutual", t.ID, oppo.tri.ID)
			}
			if oppo.Org() != dest || oppo.Dest() != org {
				return errors.Errorf("cdt: triangles %d and %d disagree on their shared edge", t.ID, oppo.tri.ID)
			}

			// Each interior edge is visited twice. Test it once.
			if t.ID < oppo.tri.ID && m.IsNoSubseg(o.SegPivot()) {
				if InCircle(org.Point, dest.Point, apex.Point, oppo.Apex().Point) > 0 {
					return errors.Errorf("cdt: edge (%v, %v) between triangles %d and %d is not locally Delaunay", org.Point, dest.Point, t.ID, oppo.tri.ID)
				}
			}
		}
	}

	for _, seg := range m.subsegs.sorted() {
		if err := m.checkSubseg(seg); err != nil {
			return err
		}
	}

	if n := m.triangles.len(); n > 0 {
		if want := 2*m.vertices.len() - m.hullsize - 2; n != want {
			return errors.Errorf("cdt: %d triangles for %d vertices and %d hull edges, want %d", n, m.vertices.len(), m.hullsize, want)
		}
	}
	return nil
}

// checkEps is the tolerance for subsegment vertices placed by rounded
// crossings.
const checkEps = 1e-9

func (m *Mesh) checkSubseg(seg *Subseg) error {
	if seg.dead {
		return errors.Errorf("cdt: dead subsegment %d in the mesh", seg.ID)
	}
	for orient := 0; orient < 2; orient++ {
		s := Osub{seg: seg, orient: orient}
		org, dest := s.Org(), s.Dest()
		segorg, segdest := s.SegOrg(), s.SegDest()
		if org == nil || dest == nil || segorg == nil || segdest == nil {
			return errors.Errorf("cdt: subsegment %d has no endpoint", seg.ID)
		}
		if orient == 0 {
			for _, v := range []*Vertex{org, dest} {
				if !nearLine(segorg.Point, segdest.Point, v.Point, checkEps) {
					return errors.Errorf("cdt: subsegment %d vertex %v is off its segment (%v, %v)", seg.ID, v.Point, segorg.Point, segdest.Point)
				}
			}
		}

		if n := s.Pivot(); !m.IsNoSubseg(n) {
			if n.IsDead() {
				return errors.Errorf("cdt: subsegment %d has dead neighbor %d", seg.ID, n.seg.ID)
			}
			if !n.Pivot().Equal(s) {
				return errors.Errorf("cdt: links of subsegments %d and %d are not mutual", seg.ID, n.seg.ID)
			}
		}

		if o := s.TriPivot(); !m.IsOuter(o) {
			if o.IsDead() {
				return errors.Errorf("cdt: subsegment %d has dead triangle %d", seg.ID, o.tri.ID)
			}
			if !o.SegPivot().Equal(s) {
				return errors.Errorf("cdt: triangle %d does not point back at subsegment %d", o.tri.ID, seg.ID)
			}
		}
	}
	return nil
}

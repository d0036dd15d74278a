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

import "go.uber.org/zap"

// MarkHull encloses the convex hull of the mesh with subsegments marked 1.
// Edges that already are subsegments keep their marker unless it is zero.
func (m *Mesh) MarkHull() {
	hulltri := m.hullEdge()
	if !m.valid(hulltri) {
		return
	}
	starttri := hulltri
	for {
		m.InsertSubseg(hulltri, 1)
		// Go to the next boundary edge counterclockwise.
		hulltri = hulltri.Lnext()
		nexttri := hulltri.Oprev()
		for !m.IsOuter(nexttri) {
			hulltri = nexttri
			nexttri = hulltri.Oprev()
		}
		if hulltri.Equal(starttri) {
			return
		}
	}
}

// formSkeleton inserts the input segments, and the convex hull if the
// mesh must be enclosed by one.
func (m *Mesh) formSkeleton(in *Input) {
	if m.poly() {
		m.MakeVertexMap()
		for i, s := range in.Segments {
			marker := 0
			if in.SegmentMarkers != nil {
				marker = in.SegmentMarkers[i]
			}
			end1, end2 := s[0], s[1]
			switch {
			case end1 < 0 || end1 >= len(m.inputs):
				m.logger.Warn("invalid first endpoint of segment",
					zap.Int("segment", i), zap.Int("endpoint", end1))
			case end2 < 0 || end2 >= len(m.inputs):
				m.logger.Warn("invalid second endpoint of segment",
					zap.Int("segment", i), zap.Int("endpoint", end2))
			default:
				a := m.inputs[end1]
				b := m.inputs[end2]
				if a.Point == b.Point {
					m.logger.Warn("endpoints of segment are coincident",
						zap.Int("segment", i), zap.Float64("x", a.X), zap.Float64("y", a.Y))
					continue
				}
				m.insertSegment(a, b, marker)
			}
		}
	}
	if m.behavior.Convex || !m.poly() {
		m.MarkHull()
	}
}

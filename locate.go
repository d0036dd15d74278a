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
)

// LocateResult tells where a point was found.
type LocateResult int

const (
	InTriangle LocateResult = iota
	OnEdge
	OnVertex
	Outside
)

func (l LocateResult) String() string {
	switch l {
	case InTriangle:
		return "in triangle"
	case OnEdge:
		return "on edge"
	case OnVertex:
		return "on vertex"
	case Outside:
		return "outside"
	}
	return "unknown"
}

// samplefactor controls how many triangles are sampled: the sample size s
// is the smallest with samplefactor*s³ >= the number of triangles.
const samplefactor = 11

// Locate finds the triangle, edge or vertex containing p.
//
// The result handle depends on the outcome:
//   - OnVertex: its origin is the vertex at p.
//   - OnEdge: p lies on its edge.
//   - InTriangle: p lies inside its triangle.
//   - Outside: p lies to the right of its edge, which is on the boundary.
//
// hint is a triangle to start the search from. A zero hint starts from the
// most recently visited triangle or a random sample, whichever is nearer.
// The walk assumes the triangulation is convex.
func (m *Mesh) Locate(p r2.Point, hint Otri) (LocateResult, Otri) {
	searchtri := hint
	if !m.valid(searchtri) {
		searchtri = m.anyTriangle()
		if !m.valid(searchtri) {
			return Outside, m.outer()
		}
	}
	r, o := m.locate(p, searchtri)
	m.recenttri = o
	return r, o
}

// anyTriangle returns a triangle on the boundary if one is known, and
// otherwise some live triangle.
func (m *Mesh) anyTriangle() Otri {
	if o := m.outer().Sym(); m.valid(o) {
		return o
	}
	return m.hullEdge()
}

// locate:
// Starts from whichever of searchtri, the recent triangle and a random
// sample of triangles has the origin nearest p, then walks toward p.
func (m *Mesh) locate(p r2.Point, searchtri Otri) (LocateResult, Otri) {
	searchdist := squaredDist(p, searchtri.Org().Point)

	if m.valid(m.recenttri) {
		org := m.recenttri.Org()
		if org.Point == p {
			return OnVertex, m.recenttri
		}
		if d := squaredDist(p, org.Point); d < searchdist {
			searchtri = m.recenttri
			searchdist = d
		}
	}

	n := m.triangles.len()
	for samplefactor*m.samples*m.samples*m.samples < n {
		m.samples++
	}
	for i := 0; i < m.samples && n > 0; i++ {
		t := m.triangles.at(m.rand.Intn(n))
		sample := Otri{tri: t}
		if d := squaredDist(p, sample.Org().Point); d < searchdist {
			searchtri = sample
			searchdist = d
		}
	}

	org := searchtri.Org()
	dest := searchtri.Dest()
	if org.Point == p {
		return OnVertex, searchtri
	}
	if dest.Point == p {
		return OnVertex, searchtri.Lnext()
	}

	// Orient searchtri so that p is to the left of its edge.
	ahead := Orient2D(org.Point, dest.Point, p)
	if ahead < 0 {
		sym := searchtri.Sym()
		if m.IsOuter(sym) {
			return Outside, searchtri
		}
		searchtri = sym
	} else if ahead == 0 {
		if (org.X < p.X) == (p.X < dest.X) && (org.Y < p.Y) == (p.Y < dest.Y) {
			return OnEdge, searchtri
		}
	}
	return m.preciseLocate(p, searchtri, false)
}

// preciseLocate:
// Walks from searchtri straight toward p. p must lie to the left of the
// edge of searchtri, or on it.
//
// At each triangle, p is tested against the two edges other than the one
// the walk entered through. If p is beyond both, the exit is chosen by the
// side of the perpendicular through the apex that p falls on.
//
// If stopAtSubseg is set, the walk never crosses a subsegment; it returns
// Outside at the triangle before it instead.
func (m *Mesh) preciseLocate(p r2.Point, searchtri Otri, stopAtSubseg bool) (LocateResult, Otri) {
	forg := searchtri.Org()
	fdest := searchtri.Dest()
	fapex := searchtri.Apex()
	for {
		if fapex.Point == p {
			return OnVertex, searchtri.Lprev()
		}
		destorient := Orient2D(forg.Point, fapex.Point, p)
		orgorient := Orient2D(fapex.Point, fdest.Point, p)

		var moveleft bool
		if destorient > 0 {
			if orgorient > 0 {
				moveleft = (fapex.X-p.X)*(fdest.X-forg.X)+(fapex.Y-p.Y)*(fdest.Y-forg.Y) > 0
			} else {
				moveleft = true
			}
		} else {
			if orgorient > 0 {
				moveleft = false
			} else {
				if destorient == 0 {
					return OnEdge, searchtri.Lprev()
				}
				if orgorient == 0 {
					return OnEdge, searchtri.Lnext()
				}
				return InTriangle, searchtri
			}
		}

		// backtracktri leads back in case roundoff walks us off the mesh.
		var backtracktri Otri
		if moveleft {
			backtracktri = searchtri.Lprev()
			fdest = fapex
		} else {
			backtracktri = searchtri.Lnext()
			forg = fapex
		}
		searchtri = backtracktri.Sym()

		if stopAtSubseg && !m.IsNoSubseg(backtracktri.SegPivot()) {
			return Outside, backtracktri
		}
		if m.IsOuter(searchtri) {
			return Outside, backtracktri
		}
		fapex = searchtri.Apex()
	}
}

// locateFrom orients hint toward p and walks from it, stopping at
// subsegments. It falls back to Locate when hint is not a live triangle.
func (m *Mesh) locateFrom(p r2.Point, hint Otri) (LocateResult, Otri) {
	if !m.valid(hint) {
		return m.Locate(p, Otri{})
	}
	org := hint.Org()
	dest := hint.Dest()
	if org.Point == p {
		return OnVertex, hint
	}
	if dest.Point == p {
		return OnVertex, hint.Lnext()
	}
	if Orient2D(org.Point, dest.Point, p) < 0 {
		sym := hint.Sym()
		if m.IsOuter(sym) || !m.IsNoSubseg(hint.SegPivot()) {
			return Outside, hint
		}
		hint = sym
	}
	return m.preciseLocate(p, hint, true)
}

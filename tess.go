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

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Input is a planar straight line graph: points, and segments between
// them given as pairs of point indices.
type Input struct {
	Points [][]float64

	// PointMarkers, when given, has one marker per point.
	PointMarkers []int
	// PointAttributes, when given, has one slice per point, all of the
	// same length.
	PointAttributes [][]float64

	Segments [][2]int
	// SegmentMarkers, when given, has one marker per segment.
	SegmentMarkers []int
}

func (in *Input) validate() error {
	if len(in.Points) < 3 {
		return errors.Wrapf(ErrTooFewVertices, "%d points", len(in.Points))
	}
	for i, p := range in.Points {
		if len(p) != 2 {
			return errors.Wrapf(ErrDimension, "point %d has %d coordinates", i, len(p))
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return errors.Wrapf(ErrInvalidCoordinate, "point %d", i)
			}
		}
	}
	if in.PointMarkers != nil && len(in.PointMarkers) != len(in.Points) {
		return errors.Wrapf(ErrMismatchedMarkers, "%d point markers for %d points", len(in.PointMarkers), len(in.Points))
	}
	if in.PointAttributes != nil {
		if len(in.PointAttributes) != len(in.Points) {
			return errors.Wrapf(ErrMismatchedMarkers, "%d point attributes for %d points", len(in.PointAttributes), len(in.Points))
		}
		for i, a := range in.PointAttributes {
			if len(a) != len(in.PointAttributes[0]) {
				return errors.Wrapf(ErrMismatchedMarkers, "point %d has %d attributes, want %d", i, len(a), len(in.PointAttributes[0]))
			}
		}
	}
	if in.SegmentMarkers != nil && len(in.SegmentMarkers) != len(in.Segments) {
		return errors.Wrapf(ErrMismatchedMarkers, "%d segment markers for %d segments", len(in.SegmentMarkers), len(in.Segments))
	}
	return nil
}

// Triangulate builds the constrained Delaunay triangulation of in.
//
// Segments whose endpoints are out of range or coincide are logged and
// skipped. Duplicate points are merged into the first point at the same
// coordinates.
func Triangulate(in Input, opts ...Option) (*Mesh, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := NewMesh(opts...)
	if err := m.triangulate(&in); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) triangulate(in *Input) (err error) {
	defer m.catch(&err)
	m.transferNodes(in)
	m.insegments = len(in.Segments)

	m.hullsize = m.incrementalDelaunay()
	m.logger.Debug("delaunay triangulation built",
		zap.Int("vertices", m.vertices.len()),
		zap.Int("triangles", m.triangles.len()),
		zap.Int("hull", m.hullsize))

	if m.useSegments() {
		m.formSkeleton(in)
	}
	m.MakeVertexMap()
	m.logger.Debug("triangulation done",
		zap.Int("vertices", m.vertices.len()),
		zap.Int("triangles", m.triangles.len()),
		zap.Int("subsegments", m.subsegs.len()),
		zap.Int("hull", m.hullsize))
	return nil
}

// transferNodes creates the input vertices.
func (m *Mesh) transferNodes(in *Input) {
	if len(in.PointAttributes) > 0 {
		m.nextras = len(in.PointAttributes[0])
	}
	m.inputs = make([]*Vertex, 0, len(in.Points))
	for i, p := range in.Points {
		v := m.MakeVertex(r2.Point{X: p[0], Y: p[1]})
		v.Type = InputVertex
		if in.PointMarkers != nil {
			v.Mark = in.PointMarkers[i]
		}
		if in.PointAttributes != nil {
			copy(v.Attributes, in.PointAttributes[i])
		}
		m.inputs = append(m.inputs, v)
	}
}

// Elements returns the live vertices and, for every live triangle in
// order of identity, the indices of its corners into the vertex slice.
func (m *Mesh) Elements() ([]int, []*Vertex) {
	vertices := m.Vertices()
	index := make(map[*Vertex]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	triangles := m.Triangles()
	elements := make([]int, 0, 3*len(triangles))
	for _, t := range triangles {
		for _, v := range t.vertices {
			elements = append(elements, index[v])
		}
	}
	return elements, vertices
}

// InputVertex returns the vertex made from the i-th input point. A
// duplicate point maps to the vertex it was merged into.
func (m *Mesh) InputVertex(i int) *Vertex {
	if i < 0 || i >= len(m.inputs) {
		return nil
	}
	return m.inputs[i]
}

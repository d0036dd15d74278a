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
	"go.uber.org/zap"
)

// Input errors returned by Triangulate.
var (
	ErrTooFewVertices    = errors.New("cdt: input must have at least three vertices")
	ErrDimension         = errors.New("cdt: input points must have two coordinates")
	ErrInvalidCoordinate = errors.New("cdt: input coordinates must be finite")
	ErrMismatchedMarkers = errors.New("cdt: markers or attributes do not match their points or segments")
	ErrCollinearInput    = errors.New("cdt: input vertices are all collinear")
)

// Errors returned by operations on an existing mesh.
var (
	ErrPointOutside     = errors.New("cdt: point lies outside the triangulation")
	ErrNoSteinerPoints  = errors.New("cdt: no Steiner points left")
	ErrVertexOnBoundary = errors.New("cdt: vertex lies on the boundary of the triangulation")
	ErrVertexOnSegment  = errors.New("cdt: vertex lies on a segment")
	ErrDeadHandle       = errors.New("cdt: handle refers to a dead or sentinel entity")
)

// Fatal errors. They mean the input contains overlapping constraints or the
// mesh is corrupted, and the mesh must be discarded.
var (
	ErrParallelSegments = errors.New("cdt: attempt to find intersection of parallel segments")
	ErrNoPath           = errors.New("cdt: unable to find a triangle on path")
	ErrVertexNotFound   = errors.New("cdt: unable to locate PSLG vertex in triangulation")
	ErrSplitFailed      = errors.New("cdt: failure to split a segment")
	ErrTopology         = errors.New("cdt: topological inconsistency after splitting a segment")
)

// fatal carries an error out of deeply nested mesh code to the public
// entry point that recovers it.
type fatal struct {
	err error
}

func throw(err error) {
	panic(fatal{err: err})
}

// catch turns a thrown error back into a return value. Other panics are
// passed on.
func (m *Mesh) catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(fatal)
	if !ok {
		panic(r)
	}
	m.logger.Error("mesh operation failed", zap.Error(f.err))
	*err = f.err
}

func assert(cond bool) {
	if !cond {
		panic("cdt: assertion error")
	}
}

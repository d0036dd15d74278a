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

// Package render draws meshes for debugging.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/golang/geo/r2"
	"github.com/hajimehoshi/go-cdt"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/pkg/errors"
)

// Options controls the drawing.
type Options struct {
	// Width and Height are the size of the picture. The mesh is scaled to
	// fit, keeping its aspect ratio.
	Width, Height float64
	// Margin is left blank around the mesh.
	Margin float64
	// Subsegs draws subsegments over the plain edges.
	Subsegs bool
	// Vertices draws a dot at every vertex.
	Vertices bool
}

// DefaultOptions returns options for a 512x512 picture with everything
// drawn.
func DefaultOptions() Options {
	return Options{
		Width:    512,
		Height:   512,
		Margin:   16,
		Subsegs:  true,
		Vertices: true,
	}
}

// transform maps mesh coordinates to picture coordinates, with y growing
// downward.
type transform struct {
	bounds r2.Rect
	scale  float64
	margin float64
	height float64
}

func newTransform(m *cdt.Mesh, opts Options) transform {
	b := m.Bounds()
	scale := 1.0
	w := b.X.Length()
	h := b.Y.Length()
	if w > 0 || h > 0 {
		sx := (opts.Width - 2*opts.Margin) / w
		sy := (opts.Height - 2*opts.Margin) / h
		if w == 0 || sy < sx {
			scale = sy
		} else {
			scale = sx
		}
	}
	return transform{bounds: b, scale: scale, margin: opts.Margin, height: opts.Height}
}

func (t transform) apply(p r2.Point) (float64, float64) {
	x := t.margin + (p.X-t.bounds.X.Lo)*t.scale
	y := t.height - t.margin - (p.Y-t.bounds.Y.Lo)*t.scale
	return x, y
}

// SVG writes the mesh as an SVG document.
func SVG(w io.Writer, m *cdt.Mesh, opts Options) error {
	if m.Bounds().IsEmpty() {
		return errors.New("render: empty mesh")
	}
	t := newTransform(m, opts)
	s := svg.New(w)
	s.Start(opts.Width, opts.Height)
	for _, tri := range m.Triangles() {
		vs := tri.Vertices()
		for i := 0; i < 3; i++ {
			x1, y1 := t.apply(vs[i].Point)
			x2, y2 := t.apply(vs[(i+1)%3].Point)
			s.Line(x1, y1, x2, y2, "stroke:gray;stroke-width:1")
		}
	}
	if opts.Subsegs {
		for _, seg := range m.Subsegs() {
			x1, y1 := t.apply(seg.Org().Point)
			x2, y2 := t.apply(seg.Dest().Point)
			s.Line(x1, y1, x2, y2, "stroke:blue;stroke-width:2")
		}
	}
	if opts.Vertices {
		for _, v := range m.Vertices() {
			x, y := t.apply(v.Point)
			style := "fill:black;stroke:none"
			if v.Type != cdt.InputVertex {
				style = "fill:red;stroke:none"
			}
			s.Circle(x, y, 2.5, style)
		}
	}
	s.End()
	return nil
}

// PNG writes the mesh as a PNG image.
func PNG(w io.Writer, m *cdt.Mesh, opts Options) error {
	if m.Bounds().IsEmpty() {
		return errors.New("render: empty mesh")
	}
	t := newTransform(m, opts)
	dest := image.NewRGBA(image.Rect(0, 0, int(opts.Width), int(opts.Height)))
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetFillColor(color.White)
	gc.Clear()

	gc.SetStrokeColor(color.RGBA{0x80, 0x80, 0x80, 0xff})
	gc.SetLineWidth(1)
	for _, tri := range m.Triangles() {
		vs := tri.Vertices()
		x, y := t.apply(vs[0].Point)
		gc.MoveTo(x, y)
		for i := 1; i <= 3; i++ {
			x, y := t.apply(vs[i%3].Point)
			gc.LineTo(x, y)
		}
		gc.Stroke()
	}

	if opts.Subsegs {
		gc.SetStrokeColor(color.RGBA{0, 0, 0xff, 0xff})
		gc.SetLineWidth(2)
		for _, seg := range m.Subsegs() {
			x1, y1 := t.apply(seg.Org().Point)
			x2, y2 := t.apply(seg.Dest().Point)
			gc.MoveTo(x1, y1)
			gc.LineTo(x2, y2)
			gc.Stroke()
		}
	}

	if opts.Vertices {
		for _, v := range m.Vertices() {
			c := color.RGBA{0, 0, 0, 0xff}
			if v.Type != cdt.InputVertex {
				c = color.RGBA{0xff, 0, 0, 0xff}
			}
			x, y := t.apply(v.Point)
			gc.SetFillColor(c)
			gc.MoveTo(x+2.5, y)
			gc.ArcTo(x, y, 2.5, 2.5, 0, 2*math.Pi)
			gc.Close()
			gc.Fill()
		}
	}

	if err := png.Encode(w, dest); err != nil {
		return errors.Wrap(err, "render: encoding PNG")
	}
	return nil
}

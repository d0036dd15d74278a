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

	"go.uber.org/zap"
)

// Behavior holds the settings of a mesh. Settings that follow from other
// settings are methods, not fields.
type Behavior struct {
	// Convex encloses the convex hull with subsegments even when segments
	// are given.
	Convex bool

	// Quality enables the angle and area tests that feed the flaw queues.
	Quality bool

	// MinAngle and MaxAngle are in degrees. Zero disables the test.
	MinAngle float64
	MaxAngle float64

	// MaxArea bounds the area of every triangle. Zero or less disables it.
	MaxArea float64

	// VarArea enables the per-triangle area constraint Triangle.Area.
	VarArea bool

	// ConformDel uses diametral circles instead of diametral lenses for
	// encroachment.
	ConformDel bool

	// NoBisect restricts which encroached subsegments are reported: 0
	// reports all of them, 1 only those with triangles on both sides, 2
	// none.
	NoBisect int

	// Steiner is the number of Steiner vertices that may be added, or -1
	// for no limit.
	Steiner int

	// TriangleAttributes is the length of every Triangle.Attributes.
	TriangleAttributes int

	// Seed seeds the random sampling of point location.
	Seed int64

	Logger *zap.Logger
	Flaws  FlawSink
}

func defaultBehavior() Behavior {
	return Behavior{
		Steiner: -1,
		Seed:    1,
	}
}

// goodAngle is the squared cosine of the minimum angle.
func (b *Behavior) goodAngle() float64 {
	c := math.Cos(b.MinAngle * math.Pi / 180)
	return c * c
}

// maxGoodAngle is the cosine of the maximum angle.
func (b *Behavior) maxGoodAngle() float64 {
	return math.Cos(b.MaxAngle * math.Pi / 180)
}

func (b *Behavior) fixedArea() bool {
	return b.MaxArea > 0
}

// An Option changes a Behavior.
type Option func(*Behavior)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Behavior) {
		b.Logger = l
	}
}

// WithConvexHull encloses the convex hull with subsegments.
func WithConvexHull() Option {
	return func(b *Behavior) {
		b.Convex = true
	}
}

// WithQuality enables quality tests with the given minimum angle in
// degrees.
func WithQuality(minAngle float64) Option {
	return func(b *Behavior) {
		b.Quality = true
		b.MinAngle = minAngle
	}
}

// WithMaxAngle sets the maximum angle in degrees.
func WithMaxAngle(maxAngle float64) Option {
	return func(b *Behavior) {
		b.Quality = true
		b.MaxAngle = maxAngle
	}
}

// WithMaxArea bounds the area of every triangle.
func WithMaxArea(area float64) Option {
	return func(b *Behavior) {
		b.Quality = true
		b.MaxArea = area
	}
}

// WithVarArea enables per-triangle area constraints.
func WithVarArea() Option {
	return func(b *Behavior) {
		b.Quality = true
		b.VarArea = true
	}
}

// WithConformingDelaunay uses diametral circles for encroachment.
func WithConformingDelaunay() Option {
	return func(b *Behavior) {
		b.ConformDel = true
	}
}

// WithNoBisect restricts which encroached subsegments are reported.
func WithNoBisect(level int) Option {
	return func(b *Behavior) {
		b.NoBisect = level
	}
}

// WithSteinerLimit limits the number of Steiner vertices. A negative limit
// means no limit.
func WithSteinerLimit(n int) Option {
	return func(b *Behavior) {
		if n < 0 {
			n = -1
		}
		b.Steiner = n
	}
}

// WithSeed seeds the random sampling of point location.
func WithSeed(seed int64) Option {
	return func(b *Behavior) {
		b.Seed = seed
	}
}

// WithTriangleAttributes gives every triangle n attributes.
func WithTriangleAttributes(n int) Option {
	return func(b *Behavior) {
		b.TriangleAttributes = n
	}
}

// WithFlawSink sets where bad triangles and encroached subsegments are
// reported.
func WithFlawSink(s FlawSink) Option {
	return func(b *Behavior) {
		b.Flaws = s
	}
}

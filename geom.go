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
	"math/big"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Direction is the turn direction of three points.
type Direction int

const (
	Clockwise        Direction = -1
	Indeterminate    Direction = 0
	CounterClockwise Direction = 1
)

const (
	// epsilon is half a unit in the last place of 1.0.
	epsilon = 1.0 / (1 << 53)

	ccwerrboundA = (3.0 + 16.0*epsilon) * epsilon
	iccerrboundA = (10.0 + 96.0*epsilon) * epsilon
)

// Orient2D:
// Returns a positive value if a, b and c occur in counterclockwise order,
// a negative value if they occur in clockwise order, and zero if they are
// collinear. The result is also a rough approximation of twice the signed
// area of the triangle.
//
// The sign is always correct. When the floating-point determinant is too
// close to zero to be trusted, it is recomputed exactly, and then only the
// sign of the result is meaningful.
func Orient2D(a, b, c r2.Point) float64 {
	detleft := (a.X - c.X) * (b.Y - c.Y)
	detright := (a.Y - c.Y) * (b.X - c.X)
	det := detleft - detright

	var detsum float64
	switch {
	case detleft > 0:
		if detright <= 0 {
			return det
		}
		detsum = detleft + detright
	case detleft < 0:
		if detright >= 0 {
			return det
		}
		detsum = -detleft - detright
	default:
		return det
	}

	errbound := ccwerrboundA * detsum
	if det >= errbound || -det >= errbound {
		return det
	}
	return float64(orient2DExact(a, b, c))
}

func orient2DExact(a, b, c r2.Point) int {
	pc := r3.NewPreciseVector(c.X, c.Y, 0)
	ac := r3.NewPreciseVector(a.X, a.Y, 0).Sub(pc)
	bc := r3.NewPreciseVector(b.X, b.Y, 0).Sub(pc)
	return ac.Cross(bc).Z.Sign()
}

// InCircle:
// Returns a positive value if d lies inside the circle through a, b and c,
// a negative value if it lies outside, and zero if the four points are
// cocircular. a, b and c must be in counterclockwise order, or the sign is
// reversed.
//
// As with Orient2D, the sign is exact.
func InCircle(a, b, c, d r2.Point) float64 {
	adx := a.X - d.X
	bdx := b.X - d.X
	cdx := c.X - d.X
	ady := a.Y - d.Y
	bdy := b.Y - d.Y
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	errbound := iccerrboundA * permanent
	if det > errbound || -det > errbound {
		return det
	}
	return float64(inCircleExact(a, b, c, d))
}

// inCircleExact lifts the points onto the paraboloid z = x² + y² around d
// and returns the sign of the triple product of the lifted vectors.
func inCircleExact(a, b, c, d r2.Point) int {
	pd := r3.NewPreciseVector(d.X, d.Y, 0)
	ad := lift(r3.NewPreciseVector(a.X, a.Y, 0).Sub(pd))
	bd := lift(r3.NewPreciseVector(b.X, b.Y, 0).Sub(pd))
	cd := lift(r3.NewPreciseVector(c.X, c.Y, 0).Sub(pd))
	return ad.Dot(bd.Cross(cd)).Sign()
}

func lift(v r3.PreciseVector) r3.PreciseVector {
	xx := newBigFloat().Mul(v.X, v.X)
	yy := newBigFloat().Mul(v.Y, v.Y)
	v.Z = newBigFloat().Add(xx, yy)
	return v
}

func newBigFloat() *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec)
}

// Orientation returns the turn direction of a, b and c.
func Orientation(a, b, c r2.Point) Direction {
	switch o := Orient2D(a, b, c); {
	case o > 0:
		return CounterClockwise
	case o < 0:
		return Clockwise
	}
	return Indeterminate
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// intersectionParam:
// Given the edge (torg, tdest) and the segment (e1, e2) that crosses it,
// returns the parameter s such that torg + s*(tdest - torg) is the crossing
// point. ok is false if the two lines are parallel.
func intersectionParam(torg, tdest, e1, e2 r2.Point) (s float64, ok bool) {
	tx := tdest.X - torg.X
	ty := tdest.Y - torg.Y
	ex := e2.X - e1.X
	ey := e2.Y - e1.Y
	etx := torg.X - e2.X
	ety := torg.Y - e2.Y
	denom := ty*ex - tx*ey
	if denom == 0 {
		return 0, false
	}
	return (ey*etx - ex*ety) / denom, true
}

// nearLine reports whether c lies within eps of the line through a and b.
// eps is relative to the larger of the length of ab and the magnitude of
// its endpoints.
func nearLine(a, b, c r2.Point, eps float64) bool {
	d := b.Sub(a)
	l := d.Norm()
	if l == 0 {
		return false
	}
	if Orient2D(a, b, c) == 0 {
		return true
	}
	dist := math.Abs(d.Cross(c.Sub(a))) / l
	return dist <= eps*math.Max(l, math.Max(a.Norm(), b.Norm()))
}

// interpolate returns a + s*(b - a) for every element.
func interpolate(a, b []float64, s float64) []float64 {
	if len(a) == 0 {
		return nil
	}
	r := make([]float64, len(a))
	for i := range a {
		r[i] = a[i] + s*(b[i]-a[i])
	}
	return r
}

// squaredDist returns the squared distance between a and b.
func squaredDist(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

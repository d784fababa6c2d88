// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathdata

import (
	"math"

	"cogentcore.org/svgdraw/math32"
)

// maxCubicDepth bounds the cubic-to-quadratic recursion.
const maxCubicDepth = 8

// defaultTolerance is the fallback subdivision tolerance when the
// caller passes a non-positive value.
const defaultTolerance = 0.05

// quadSeg is one emitted quadratic-or-line primitive in SVG (pre-remap)
// space: a straight line if Bend is nil, otherwise a quadratic Bezier
// with that control point.
type quadSeg struct {
	P0, P1    math32.Vector2
	Bend      *math32.Vector2
	fromClose bool
}

// cubicToQuads reduces a cubic Bezier to one or more quadratics via
// adaptive subdivision: a single best-fit quadratic control point is
// compared against the true cubic midpoint, splitting the cubic in half
// (de Casteljau) and recursing when the fit is not tight enough.
func cubicToQuads(p0, p1, p2, p3 math32.Vector2, tolerance float64, depth int) []quadSeg {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	q := bestFitQuadControl(p0, p1, p2, p3)
	cmid := cubicPoint(p0, p1, p2, p3, 0.5)
	qmid := quadPoint(p0, q, p3, 0.5)
	if cmid.Sub(qmid).Length() <= tolerance || depth >= maxCubicDepth {
		return []quadSeg{{P0: p0, P1: p3, Bend: &q}}
	}
	l0, l1, l2, l3, r0, r1, r2, r3 := splitCubic(p0, p1, p2, p3)
	left := cubicToQuads(l0, l1, l2, l3, tolerance, depth+1)
	right := cubicToQuads(r0, r1, r2, r3, tolerance, depth+1)
	return append(left, right...)
}

func bestFitQuadControl(p0, p1, p2, p3 math32.Vector2) math32.Vector2 {
	a := p1.MulScalar(3).Sub(p0)
	b := p2.MulScalar(3).Sub(p3)
	return a.Add(b).MulScalar(0.25)
}

func cubicPoint(p0, p1, p2, p3 math32.Vector2, t float64) math32.Vector2 {
	mt := 1 - t
	c0 := mt * mt * mt
	c1 := 3 * mt * mt * t
	c2 := 3 * mt * t * t
	c3 := t * t * t
	return math32.Vector2{
		X: c0*p0.X + c1*p1.X + c2*p2.X + c3*p3.X,
		Y: c0*p0.Y + c1*p1.Y + c2*p2.Y + c3*p3.Y,
	}
}

func quadPoint(p0, p1, p2 math32.Vector2, t float64) math32.Vector2 {
	mt := 1 - t
	c0 := mt * mt
	c1 := 2 * mt * t
	c2 := t * t
	return math32.Vector2{
		X: c0*p0.X + c1*p1.X + c2*p2.X,
		Y: c0*p0.Y + c1*p1.Y + c2*p2.Y,
	}
}

// splitCubic splits a cubic Bezier at t=0.5 via de Casteljau, returning
// the two halves' four control points each.
func splitCubic(p0, p1, p2, p3 math32.Vector2) (la, lb, lc, ld, ra, rb, rc, rd math32.Vector2) {
	mid := func(a, b math32.Vector2) math32.Vector2 {
		return math32.Vector2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	p0123 := mid(p012, p123)
	return p0, p01, p012, p0123, p0123, p123, p23, p3
}

// arcToQuads converts an endpoint-parameterized elliptical arc to a
// sequence of quadratics, following the SVG endpoint-to-center
// conversion and splitting into sub-arcs of at most pi/2 each.
func arcToQuads(p0, p1 math32.Vector2, rx, ry, xAxisRotDeg float64, largeArc, sweep bool) []quadSeg {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p0 == p1 {
		return []quadSeg{{P0: p0, P1: p1}}
	}
	phi := math32.DegToRad(xAxisRotDeg)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		if lenProd == 0 {
			return 0
		}
		c := dot / lenProd
		c = math.Max(-1, math.Min(1, c))
		a := math.Acos(c)
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := dtheta / float64(n)

	center := math32.Vector2{X: cx, Y: cy}
	rot := math32.Rotate2D(phi)
	ellipsePoint := func(theta float64) math32.Vector2 {
		local := math32.Vector2{X: rx * math.Cos(theta), Y: ry * math.Sin(theta)}
		return center.Add(rot.MulPoint(local))
	}

	segs := make([]quadSeg, 0, n)
	theta := theta1
	for i := 0; i < n; i++ {
		a, b := theta, theta+step
		thetaM := (a + b) / 2
		h := (b - a) / 2
		cosH := math.Cos(h)
		var bend math32.Vector2
		if cosH != 0 {
			local := math32.Vector2{X: rx * math.Cos(thetaM) / cosH, Y: ry * math.Sin(thetaM) / cosH}
			bend = center.Add(rot.MulPoint(local))
		} else {
			bend = ellipsePoint(thetaM)
		}
		start := ellipsePoint(a)
		end := ellipsePoint(b)
		segs = append(segs, quadSeg{P0: start, P1: end, Bend: &bend})
		theta = b
	}
	// Endpoint correction: force exact input endpoints, absorbing any
	// floating-point drift from the trigonometric round trip.
	if len(segs) > 0 {
		segs[0].P0 = p0
		segs[len(segs)-1].P1 = p1
	}
	return segs
}

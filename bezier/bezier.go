// seehuhn.de/go/tessellate - triangulation of filled 2D paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bezier implements quadratic and cubic Bézier curves in the plane.
//
// The package provides evaluation, subdivision, exact bounding boxes,
// flattening into straight line segments, and curve-curve intersection.
package bezier

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Quad is a quadratic Bézier curve from P0 to P2 with control point P1.
type Quad struct {
	P0, P1, P2 vec.Vec2
}

// Eval returns the point of the curve at parameter t.
func (q Quad) Eval(t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return q.P0.Mul(omt * omt).Add(q.P1.Mul(2 * omt * t)).Add(q.P2.Mul(t * t))
}

// Split divides the curve at parameter t.
func (q Quad) Split(t float64) (Quad, Quad) {
	a := lerp(q.P0, q.P1, t)
	b := lerp(q.P1, q.P2, t)
	m := lerp(a, b, t)
	return Quad{q.P0, a, m}, Quad{m, b, q.P2}
}

// Cubic returns the same curve as a cubic Bézier curve.
func (q Quad) Cubic() Cubic {
	return Cubic{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3)),
		P3: q.P2,
	}
}

// Bounds returns the smallest rectangle which contains the curve.
func (q Quad) Bounds() rect.Rect {
	r := pointRect(q.P0)
	extend(&r, q.P2)
	for _, t := range quadExtrema(q.P0.X, q.P1.X, q.P2.X, nil) {
		extend(&r, q.Eval(t))
	}
	for _, t := range quadExtrema(q.P0.Y, q.P1.Y, q.P2.Y, nil) {
		extend(&r, q.Eval(t))
	}
	return r
}

// AppendFlattened replaces the curve by straight line segments and appends
// the end points of these segments to dst. The start point P0 is not
// included; the final point is exactly P2.
//
// The curve is given in user space. The number of segments is chosen so
// that, after transformation by the linear part of m, the segments deviate
// from the curve by at most tolerance.
func (q Quad) AppendFlattened(dst []vec.Vec2, m matrix.Matrix, tolerance float64) []vec.Vec2 {
	// error vector e = (P0 - 2*P1 + P2) / 4
	e := q.P0.Sub(q.P1.Mul(2)).Add(q.P2).Mul(0.25)
	errDev := transformLinear(m, e).Length()

	n := 1
	if errDev > tolerance {
		n = int(math.Ceil(math.Sqrt(errDev / tolerance)))
	}
	for i := 1; i < n; i++ {
		dst = append(dst, q.Eval(float64(i)/float64(n)))
	}
	return append(dst, q.P2)
}

// Cubic is a cubic Bézier curve from P0 to P3 with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 vec.Vec2
}

// Line returns the straight segment from a to b as a cubic curve.
func Line(a, b vec.Vec2) Cubic {
	return Cubic{P0: a, P1: lerp(a, b, 1.0/3), P2: lerp(a, b, 2.0/3), P3: b}
}

// Eval returns the point of the curve at parameter t.
func (c Cubic) Eval(t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return c.P0.Mul(omt2 * omt).
		Add(c.P1.Mul(3 * omt2 * t)).
		Add(c.P2.Mul(3 * omt * t2)).
		Add(c.P3.Mul(t2 * t))
}

// Split divides the curve at parameter t, using de Casteljau's algorithm.
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	a := lerp(c.P0, c.P1, t)
	b := lerp(c.P1, c.P2, t)
	d := lerp(c.P2, c.P3, t)
	ab := lerp(a, b, t)
	bd := lerp(b, d, t)
	m := lerp(ab, bd, t)
	return Cubic{c.P0, a, ab, m}, Cubic{m, bd, d, c.P3}
}

// Bounds returns the smallest rectangle which contains the curve.
func (c Cubic) Bounds() rect.Rect {
	r := pointRect(c.P0)
	extend(&r, c.P3)
	var buf [2]float64
	for _, t := range cubicExtrema(c.P0.X, c.P1.X, c.P2.X, c.P3.X, buf[:0]) {
		extend(&r, c.Eval(t))
	}
	for _, t := range cubicExtrema(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, buf[:0]) {
		extend(&r, c.Eval(t))
	}
	return r
}

// hull returns the bounding box of the control polygon.
// This contains the curve and is cheaper to compute than Bounds.
func (c Cubic) hull() rect.Rect {
	r := pointRect(c.P0)
	extend(&r, c.P1)
	extend(&r, c.P2)
	extend(&r, c.P3)
	return r
}

// AppendFlattened replaces the curve by straight line segments and appends
// the end points of these segments to dst. The start point P0 is not
// included; the final point is exactly P3.
//
// The curve is given in user space. The number of segments is chosen
// using Wang's formula, so that after transformation by the linear part
// of m the segments deviate from the curve by at most tolerance.
func (c Cubic) AppendFlattened(dst []vec.Vec2, m matrix.Matrix, tolerance float64) []vec.Vec2 {
	d1 := transformLinear(m, c.P0.Sub(c.P1.Mul(2)).Add(c.P2))
	d2 := transformLinear(m, c.P1.Sub(c.P2.Mul(2)).Add(c.P3))

	n := 1
	if mDev := max(d1.Length(), d2.Length()); mDev > 0 {
		// n = ceil(sqrt(3 * mDev / (4 * ε)))
		if nFloat := math.Sqrt(3 * mDev / (4 * tolerance)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}
	for i := 1; i < n; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(n)))
	}
	return append(dst, c.P3)
}

// transformLinear applies only the 2×2 linear part of m to v.
func transformLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func pointRect(p vec.Vec2) rect.Rect {
	return rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
}

func extend(r *rect.Rect, p vec.Vec2) {
	r.LLx = min(r.LLx, p.X)
	r.LLy = min(r.LLy, p.Y)
	r.URx = max(r.URx, p.X)
	r.URy = max(r.URy, p.Y)
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}

// quadExtrema appends the parameters in (0, 1) where the quadratic
// polynomial with Bernstein coefficients a, b, c has a stationary point.
func quadExtrema(a, b, c float64, dst []float64) []float64 {
	den := a - 2*b + c
	if den == 0 {
		return dst
	}
	if t := (a - b) / den; t > 0 && t < 1 {
		dst = append(dst, t)
	}
	return dst
}

// cubicExtrema appends the parameters in (0, 1) where the cubic polynomial
// with Bernstein coefficients a, b, c, d has a stationary point.
func cubicExtrema(a, b, c, d float64, dst []float64) []float64 {
	// derivative / 3 = A t² + B t + C
	A := -a + 3*b - 3*c + d
	B := 2 * (a - 2*b + c)
	C := b - a

	add := func(t float64) {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}

	if math.Abs(A) < 1e-12 {
		if B != 0 {
			add(-C / B)
		}
		return dst
	}
	disc := B*B - 4*A*C
	if disc < 0 {
		return dst
	}
	sq := math.Sqrt(disc)
	add((-B + sq) / (2 * A))
	if disc > 0 {
		add((-B - sq) / (2 * A))
	}
	return dst
}

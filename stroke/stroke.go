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

// Package stroke converts stroked paths into outlines which can be filled.
//
// The outline of a stroke is returned as a path consisting of closed
// polygons. Filling this path with the nonzero winding rule covers exactly
// the stroked area; overlapping parts of the outline are painted once.
package stroke

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tessellate/bezier"
)

// segment is a straight piece of a flattened path, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A towards B
	N    vec.Vec2 // unit normal, T rotated by 90° counter-clockwise
}

func newSegment(a, b vec.Vec2) (segment, bool) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return segment{}, false
	}
	t := d.Mul(1 / length)
	return segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// reversed returns the segment traversed from B to A.
func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

func (s segment) length() float64 {
	return s.B.Sub(s.A).Length()
}

// Outliner computes stroke outlines.
// The zero value is not usable; use NewOutliner to get the PDF defaults.
type Outliner struct {
	// Width is the line width in user space units.
	Width float64

	// Cap is the shape at the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is the shape at corners of the path.
	Join graphics.LineJoinStyle

	// MiterLimit is the maximum ratio between miter length and line width.
	// Miter joins exceeding the limit are drawn as bevel joins.
	MiterLimit float64

	// Dash is the dash pattern in user space units.
	// Nil means a solid line.
	Dash []float64

	// DashPhase is the offset into the dash pattern.
	DashPhase float64

	// CTM is the transformation applied when the outline is drawn. It is
	// used to choose the number of points on curves and round shapes; the
	// outline itself is returned in user space.
	CTM matrix.Matrix

	// Tolerance is the maximum distance between curves and their
	// approximating polygons, in device units.
	Tolerance float64

	segs    []segment
	offsets []int  // start of each subpath in segs
	closed  []bool // whether each subpath is closed
	dots    []vec.Vec2
	flat    []vec.Vec2
	piece   []segment
	head    []segment
	kept    []segment
	rev     []segment
	poly    []vec.Vec2
	out     *path.Data
}

// NewOutliner returns an Outliner with the PDF default parameters.
func NewOutliner() *Outliner {
	return &Outliner{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		CTM:        matrix.Identity,
		Tolerance:  defaultTolerance,
	}
}

// Outline returns the outline of the stroked path p. The result must be
// filled using the nonzero winding rule.
func (o *Outliner) Outline(p *path.Data) *path.Data {
	o.out = &path.Data{}
	o.flatten(p)
	d := o.Width / 2

	if o.Cap == graphics.LineCapRound {
		for _, pt := range o.dots {
			o.poly = o.poly[:0]
			o.addArc(pt, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, false)
			o.emitPolygon()
		}
	}

	for i, start := range o.offsets {
		end := len(o.segs)
		if i+1 < len(o.offsets) {
			end = o.offsets[i+1]
		}
		segs := o.segs[start:end]
		if len(o.Dash) > 0 {
			o.dashSubpath(segs, o.closed[i])
		} else {
			o.strokeSubpath(segs, o.closed[i])
		}
	}
	return o.out
}

// flatten splits p into subpaths of straight segments. Subpaths without
// any extent are recorded as dots.
func (o *Outliner) flatten(p *path.Data) {
	o.segs = o.segs[:0]
	o.offsets = o.offsets[:0]
	o.closed = o.closed[:0]
	o.dots = o.dots[:0]

	var current, start vec.Vec2
	first := 0
	active := false // a subpath has been started
	drawn := false  // it contains a drawing command

	finish := func(closed bool) {
		if active && drawn {
			if len(o.segs) == first {
				o.dots = append(o.dots, start)
			} else {
				o.offsets = append(o.offsets, first)
				o.closed = append(o.closed, closed)
			}
		}
		first = len(o.segs)
		drawn = false
	}
	add := func(to vec.Vec2) {
		if s, ok := newSegment(current, to); ok {
			o.segs = append(o.segs, s)
		}
		current = to
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[coordIdx]
			start = current
			active = true
			coordIdx++

		case path.CmdLineTo:
			drawn = true
			add(p.Coords[coordIdx])
			coordIdx++

		case path.CmdQuadTo:
			drawn = true
			q := bezier.Quad{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1]}
			o.flat = q.AppendFlattened(o.flat[:0], o.CTM, o.Tolerance)
			for _, pt := range o.flat {
				add(pt)
			}
			coordIdx += 2

		case path.CmdCubeTo:
			drawn = true
			c := bezier.Cubic{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1], P3: p.Coords[coordIdx+2]}
			o.flat = c.AppendFlattened(o.flat[:0], o.CTM, o.Tolerance)
			for _, pt := range o.flat {
				add(pt)
			}
			coordIdx += 3

		case path.CmdClose:
			if active {
				drawn = true
				add(start)
				finish(true)
				active = false
			}
		}
	}
	finish(false)
}

// strokeSubpath adds the outline of one solid subpath.
func (o *Outliner) strokeSubpath(segs []segment, closed bool) {
	d := o.Width / 2
	o.rev = o.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		o.rev = append(o.rev, segs[i].reversed())
	}

	if closed {
		// two loops with opposite orientation, one on each side
		o.poly = o.poly[:0]
		o.offsetSide(segs, true, d)
		o.emitPolygon()
		o.poly = o.poly[:0]
		o.offsetSide(o.rev, true, d)
		o.emitPolygon()
		return
	}

	first := segs[0]
	last := segs[len(segs)-1]
	o.poly = o.poly[:0]
	o.addCap(first.A, first.T.Mul(-1), d)
	o.offsetSide(segs, false, d)
	o.addCap(last.B, last.T, d)
	o.offsetSide(o.rev, false, d)
	o.emitPolygon()
}

// offsetSide adds the offset line at distance d on the +N side of segs,
// including the joins between consecutive segments. For closed subpaths
// the corner between the last and the first segment is included and the
// result is a closed loop.
func (o *Outliner) offsetSide(segs []segment, closed bool, d float64) {
	n := len(segs)
	if closed {
		for i := range n {
			o.corner(segs[i], segs[(i+1)%n], d)
		}
		return
	}

	o.poly = append(o.poly, segs[0].A.Add(segs[0].N.Mul(d)))
	for i := 0; i < n-1; i++ {
		o.corner(segs[i], segs[i+1], d)
	}
	o.poly = append(o.poly, segs[n-1].B.Add(segs[n-1].N.Mul(d)))
}

// corner adds the +N side of the corner where seg ends and next starts.
func (o *Outliner) corner(seg, next segment, d float64) {
	p := seg.B
	from := p.Add(seg.N.Mul(d))
	to := p.Add(next.N.Mul(d))

	sin := cross(seg.T, next.T)
	cos := seg.T.Dot(next.T)
	switch {
	case math.Abs(sin) < collinearityThreshold && cos > 0:
		o.poly = append(o.poly, from, to)

	case cos < cuspCosineThreshold:
		// the path doubles back
		o.poly = append(o.poly, from)
		o.addCap(p, seg.T, d)
		o.poly = append(o.poly, to)

	case sin > 0:
		// Inner side: pass through the path vertex. The resulting small
		// loop lies inside the stroke and does not change the fill.
		o.poly = append(o.poly, from, p, to)

	default:
		o.poly = append(o.poly, from)
		o.addJoin(p, seg, next, d)
		o.poly = append(o.poly, to)
	}
}

// addJoin adds the points of an outer join, between the offset points of
// the two segments.
func (o *Outliner) addJoin(p vec.Vec2, seg, next segment, d float64) {
	cos := seg.T.Dot(next.T)
	switch o.Join {
	case graphics.LineJoinRound:
		angle := math.Atan2(cross(seg.T, next.T), cos)
		o.addArc(p, d, seg.N, angle, true)

	case graphics.LineJoinMiter:
		// the miter length relative to the line width is 1/cos(θ/2)
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf <= 0 || 1/cosHalf > o.MiterLimit+miterEpsilon {
			return
		}
		bisector := seg.N.Add(next.N)
		if l := bisector.Length(); l > zeroLengthThreshold {
			o.poly = append(o.poly, p.Add(bisector.Mul(d/(l*cosHalf))))
		}
	}
	// bevel joins need no extra points
}

// addCap adds the end cap at p. The vector t points away from the line.
// The cap starts on the side of the normal of t and ends on the opposite
// side; the two end points themselves are not added.
func (o *Outliner) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch o.Cap {
	case graphics.LineCapSquare:
		ext := p.Add(t.Mul(d))
		o.poly = append(o.poly, ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		o.addArc(p, d, n, -math.Pi, true)
	}
}

// addArc adds points on a circular arc around center, starting in
// direction dir and turning by sweep radians (positive is
// counter-clockwise). If interior is set, the two end points are omitted.
func (o *Outliner) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, interior bool) {
	m := o.CTM
	devRadius := max(
		math.Hypot(m[0]*radius, m[1]*radius),
		math.Hypot(m[2]*radius, m[3]*radius))

	n := 1
	if devRadius > o.Tolerance {
		// chord of angle θ deviates from the arc by r(1 - cos(θ/2))
		step := 2 * math.Acos(1-o.Tolerance/devRadius)
		n = int(math.Ceil(math.Abs(sweep) / step))
	}
	if math.Abs(sweep) >= 2*math.Pi {
		n = max(n, 4)
	}

	first, last := 0, n
	if interior {
		first, last = 1, n-1
	}
	if math.Abs(sweep) >= 2*math.Pi {
		last = n - 1 // full circle: the end point repeats the start
	}
	dt := sweep / float64(n)
	for i := first; i <= last; i++ {
		s, c := math.Sincos(float64(i) * dt)
		v := vec.Vec2{X: dir.X*c - dir.Y*s, Y: dir.X*s + dir.Y*c}
		o.poly = append(o.poly, center.Add(v.Mul(radius)))
	}
}

// emitPolygon appends the collected polygon to the output path.
func (o *Outliner) emitPolygon() {
	if len(o.poly) < 3 {
		return
	}
	o.out.MoveTo(o.poly[0])
	for _, pt := range o.poly[1:] {
		o.out.LineTo(pt)
	}
	o.out.Close()
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

const (
	defaultMiterLimit = 10.0
	defaultTolerance  = 0.25

	// zeroLengthThreshold is the minimum length of a segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the largest angle between two
	// segments which is drawn without a join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back; this is
	// cos(179.43°).
	cuspCosineThreshold = -0.9999

	miterEpsilon = 1e-10
)

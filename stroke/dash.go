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

package stroke

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// dashSubpath adds the outlines of the dashes along one subpath.
//
// A pattern of odd length is repeated twice, so that every entry is used
// once as a dash and once as a gap. On closed subpaths, a dash running
// through the start point is joined with the dash ending there.
func (o *Outliner) dashSubpath(segs []segment, closed bool) {
	pat := o.Dash
	period := 0.0
	for _, v := range pat {
		if v < 0 {
			o.strokeSubpath(segs, closed)
			return
		}
		period += v
	}
	if len(pat)%2 == 1 {
		period *= 2
	}
	if period <= 0 || math.IsInf(period, 0) || math.IsNaN(period) {
		o.strokeSubpath(segs, closed)
		return
	}
	n := len(pat)

	phase := math.Mod(o.DashPhase, period)
	if phase < 0 {
		phase += period
	}
	idx := 0
	for phase > 0 && phase >= pat[idx%n] {
		phase -= pat[idx%n]
		idx++
	}
	remaining := pat[idx%n] - phase
	on := idx%2 == 0

	startsOn := on
	haveHead := false
	cuts := 0
	o.piece = o.piece[:0]
	o.head = o.head[:0]

	endDash := func() {
		if closed && startsOn && !haveHead {
			o.head = append(o.head, o.piece...)
			haveHead = true
		} else {
			o.strokePiece(o.piece)
		}
		o.piece = o.piece[:0]
	}

	for _, seg := range segs {
		length := seg.length()
		pos := 0.0
		for remaining <= length-pos {
			end := pos + remaining
			if on {
				o.piece = append(o.piece, seg.sub(pos, end))
				endDash()
			}
			cuts++
			pos = end
			idx++
			remaining = pat[idx%n]
			on = idx%2 == 0
		}
		if on && pos < length {
			o.piece = append(o.piece, seg.sub(pos, length))
		}
		remaining -= length - pos
	}

	switch {
	case cuts == 0 && on:
		// the subpath fits into a single dash
		o.strokeSubpath(segs, closed)
	case on && haveHead:
		o.piece = append(o.piece, o.head...)
		o.strokePiece(o.piece)
	case on:
		o.strokePiece(o.piece)
	case haveHead:
		o.strokePiece(o.head)
	}
	o.piece = o.piece[:0]
}

// sub returns the part of s between the distances a and b from s.A.
// The result has length zero if a == b.
func (s segment) sub(a, b float64) segment {
	res := s
	if a > 0 {
		res.A = s.A.Add(s.T.Mul(a))
	}
	if b < s.length() {
		res.B = s.A.Add(s.T.Mul(b))
	}
	return res
}

// strokePiece adds the outline of a single open dash.
func (o *Outliner) strokePiece(piece []segment) {
	if len(piece) == 0 {
		return
	}

	segs := o.kept[:0]
	for _, s := range piece {
		if s.length() >= zeroLengthThreshold {
			segs = append(segs, s)
		}
	}
	o.kept = segs
	if len(segs) > 0 {
		o.strokeSubpath(segs, false)
		return
	}

	// zero-length dash: the cap shape is drawn with the direction of the
	// path at this point
	d := o.Width / 2
	s := piece[0]
	p := s.A
	o.poly = o.poly[:0]
	switch o.Cap {
	case graphics.LineCapRound:
		o.addArc(p, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, false)
	case graphics.LineCapSquare:
		t := s.T.Mul(d)
		n := s.N.Mul(d)
		o.poly = append(o.poly,
			p.Sub(t).Sub(n), p.Add(t).Sub(n), p.Add(t).Add(n), p.Sub(t).Add(n))
	}
	o.emitPolygon()
}

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

package bezier

import (
	"errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrBudgetExceeded is returned by Intersect when the search is stopped
// before all intersections have been found. This happens for overlapping
// curves, and for curves which touch over a long stretch.
var ErrBudgetExceeded = errors.New("bezier: intersection budget exceeded")

// IntersectOptions controls the subdivision search used by Intersect.
type IntersectOptions struct {
	// Tolerance is the size below which two curve pieces are considered
	// to meet in a single point.
	Tolerance float64

	// MaxCalls limits the total number of curve pairs examined.
	MaxCalls int

	// MaxDepth limits the number of subdivision steps per curve.
	MaxDepth int
}

// DefaultIntersectOptions is used when Intersect is called with nil
// options.
var DefaultIntersectOptions = IntersectOptions{
	Tolerance: 1e-6,
	MaxCalls:  1 << 14,
	MaxDepth:  48,
}

// Hit is a point where two curves meet.
type Hit struct {
	S   float64  // parameter on the first curve
	T   float64  // parameter on the second curve
	Pos vec.Vec2 // position of the intersection
}

// pair is a work item for Intersect: a piece of each curve, together with
// the parameter intervals the pieces correspond to.
type pair struct {
	a, b           Cubic
	s0, s1, t0, t1 float64
	depth          int
}

// Intersect finds the points where the curves a and b meet.
//
// The curves are subdivided recursively, discarding pairs of pieces whose
// bounding boxes do not overlap. If a budget in opts runs out, the hits
// found so far are returned together with ErrBudgetExceeded.
func Intersect(a, b Cubic, opts *IntersectOptions) ([]Hit, error) {
	if opts == nil {
		opts = &DefaultIntersectOptions
	}
	tol := opts.Tolerance

	var hits []Hit
	work := []pair{{a: a, b: b, s1: 1, t1: 1}}
	calls := 0
	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]

		calls++
		if calls > opts.MaxCalls {
			return hits, ErrBudgetExceeded
		}

		ra := w.a.hull()
		rb := w.b.hull()
		if !overlaps(ra, rb) {
			continue
		}

		small := ra.URx-ra.LLx <= tol && ra.URy-ra.LLy <= tol &&
			rb.URx-rb.LLx <= tol && rb.URy-rb.LLy <= tol
		if small {
			h := Hit{
				S:   (w.s0 + w.s1) / 2,
				T:   (w.t0 + w.t1) / 2,
				Pos: w.a.Eval(0.5),
			}
			if !isDuplicate(hits, h.Pos, tol) {
				hits = append(hits, h)
			}
			continue
		}

		if w.depth >= opts.MaxDepth {
			return hits, ErrBudgetExceeded
		}

		a0, a1 := w.a.Split(0.5)
		b0, b1 := w.b.Split(0.5)
		sm := (w.s0 + w.s1) / 2
		tm := (w.t0 + w.t1) / 2
		d := w.depth + 1
		work = append(work,
			pair{a1, b1, sm, w.s1, tm, w.t1, d},
			pair{a1, b0, sm, w.s1, w.t0, tm, d},
			pair{a0, b1, w.s0, sm, tm, w.t1, d},
			pair{a0, b0, w.s0, sm, w.t0, tm, d},
		)
	}
	return hits, nil
}

func isDuplicate(hits []Hit, p vec.Vec2, tol float64) bool {
	for _, h := range hits {
		d := h.Pos.Sub(p)
		if d.X*d.X+d.Y*d.Y <= 4*tol*tol {
			return true
		}
	}
	return false
}

// PathHit is an intersection between two segments of a path. Segments
// are numbered in path order, counting every drawing command and the
// implicit closing segment of every subpath.
type PathHit struct {
	Seg1, Seg2 int
	Hit
}

// PathIntersections finds the points where two different segments of p
// cross or touch. Meetings at a common end point of two segments are not
// reported. The path must be well-formed.
func PathIntersections(p *path.Data, opts *IntersectOptions) ([]PathHit, error) {
	if opts == nil {
		opts = &DefaultIntersectOptions
	}
	segs := Segments(p)

	var res []PathHit
	var firstErr error
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if !overlaps(a.hull(), b.hull()) {
				continue
			}
			hits, err := Intersect(a, b, opts)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			for _, h := range hits {
				if nearEndpoint(h.Pos, a, b, opts.Tolerance) {
					continue
				}
				res = append(res, PathHit{Seg1: i, Seg2: j, Hit: h})
			}
		}
	}
	return res, firstErr
}

// nearEndpoint reports whether p is close to an end point which a and b
// have in common.
func nearEndpoint(p vec.Vec2, a, b Cubic, tol float64) bool {
	lim := 4 * tol * tol
	for _, u := range [2]vec.Vec2{a.P0, a.P3} {
		for _, v := range [2]vec.Vec2{b.P0, b.P3} {
			if u != v {
				continue
			}
			d := p.Sub(u)
			if d.X*d.X+d.Y*d.Y <= lim {
				return true
			}
		}
	}
	return false
}

// Segments returns the segments of p as cubic curves. Straight segments
// and quadratic curves are converted to cubics, and every subpath gets
// a closing segment if its end point differs from its start point.
func Segments(p *path.Data) []Cubic {
	var segs []Cubic
	var current, start vec.Vec2
	open := false
	closeSubpath := func() {
		if open && current != start {
			segs = append(segs, Line(current, start))
		}
		current = start
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			start = p.Coords[coordIdx]
			current = start
			coordIdx++
		case path.CmdLineTo:
			pt := p.Coords[coordIdx]
			segs = append(segs, Line(current, pt))
			current = pt
			open = true
			coordIdx++
		case path.CmdQuadTo:
			q := Quad{current, p.Coords[coordIdx], p.Coords[coordIdx+1]}
			segs = append(segs, q.Cubic())
			current = q.P2
			open = true
			coordIdx += 2
		case path.CmdCubeTo:
			c := Cubic{current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]}
			segs = append(segs, c)
			current = c.P3
			open = true
			coordIdx += 3
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
	return segs
}

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

package tessellate

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// pendingEdge is an edge leaving the current event downward, before it is
// added to the active edge list.
type pendingEdge struct {
	to   vec.Vec2
	dir  vec.Vec2 // to - event position
	data edgeData
}

func newPendingEdge(p, to vec.Vec2, data edgeData) pendingEdge {
	return pendingEdge{to: to, dir: to.Sub(p), data: data}
}

// sortBelow orders the edges leaving an event from left to right.
// Collinear edges are ordered by length, shortest first.
func sortBelow(below []pendingEdge) {
	slices.SortStableFunc(below, func(a, b pendingEdge) int {
		if c := cross(a.dir, b.dir); c < 0 {
			return -1
		} else if c > 0 {
			return 1
		}
		return cmp.Compare(a.dir.Dot(a.dir), b.dir.Dot(b.dir))
	})
}

// splitOverlaps shortens collinear edges leaving p to a common lower
// endpoint. The remainder of each longer edge is queued as a new edge
// starting at the shared endpoint. The edges must be sorted by sortBelow.
func (t *FillTessellator) splitOverlaps(p vec.Vec2) {
	below := t.below
	for i := 1; i < len(below); i++ {
		a := &below[i-1]
		b := &below[i]
		if cross(a.dir, b.dir) != 0 || a.to == b.to {
			continue
		}
		rest := b.data
		rest.fromID = a.data.toID
		t.queue.insert(t.cur, a.to, b.to, rest)

		b.to = a.to
		b.dir = a.to.Sub(p)
		b.data.toID = a.data.toID
	}
}

// intersectEdges returns the point where the interiors of a and b cross,
// and the position of that point along a as a fraction of its length.
// Edges which share an endpoint, or which are parallel, never cross.
func intersectEdges(a, b *lineEdge) (vec.Vec2, float64, bool) {
	if a.from == b.from || a.from == b.to || a.to == b.from || a.to == b.to {
		return vec.Vec2{}, 0, false
	}
	if a.maxX < b.minX || b.maxX < a.minX || a.to.Y < b.from.Y || b.to.Y < a.from.Y {
		return vec.Vec2{}, 0, false
	}

	r := a.to.Sub(a.from)
	s := b.to.Sub(b.from)
	d := cross(r, s)
	if d == 0 {
		return vec.Vec2{}, 0, false
	}
	q := b.from.Sub(a.from)
	ta := cross(q, s) / d
	tb := cross(q, r) / d
	if ta <= 0 || ta >= 1 || tb <= 0 || tb >= 1 {
		return vec.Vec2{}, 0, false
	}
	return a.from.Add(r.Mul(ta)), ta, true
}

// checkIntersections tests the active edges in [first, last), which all
// start at p, against every other active edge. For each new edge the
// first crossing along the edge is split: both edges are shortened to the
// crossing and their remainders are queued.
func (t *FillTessellator) checkIntersections(p vec.Vec2, first, last int) {
	entries := t.active.entries
	for i := first; i < last; i++ {
		e, ok := entries[i].(*lineEdge)
		if !ok {
			continue
		}

		var best *lineEdge
		var bestPos vec.Vec2
		bestT := 1.0
		for j, entry := range entries {
			f, ok := entry.(*lineEdge)
			if !ok || j == i {
				continue
			}
			x, ta, ok := intersectEdges(e, f)
			if ok && ta < bestT {
				best, bestPos, bestT = f, x, ta
			}
		}
		if best == nil {
			continue
		}

		// A crossing just below a nearly horizontal edge can round to a
		// position which the sweep has already passed. It is moved to the
		// next representable row.
		if !sweepLess(p, bestPos) {
			bestPos = vec.Vec2{X: bestPos.X, Y: math.Nextafter(p.Y, math.Inf(1))}
		}

		t.logger().Debug("edges cross", "x", bestPos.X, "y", bestPos.Y)
		t.splitEdge(e, bestPos)
		t.splitEdge(best, bestPos)
	}
}

// splitEdge shortens e to end at x and queues the remainder. The point x
// must come after the current event. If rounding has moved x past the
// lower endpoint of e, the remainder runs from that endpoint to x with the
// opposite winding.
func (t *FillTessellator) splitEdge(e *lineEdge, x vec.Vec2) {
	if x == e.to {
		return
	}
	rest := e.data
	if sweepLess(x, e.to) {
		rest.fromID = noID
		t.queue.insert(t.cur, x, e.to, rest)
	} else {
		rest.fromID = e.data.toID
		rest.toID = noID
		rest.winding = -rest.winding
		t.queue.insert(t.cur, e.to, x, rest)
	}
	e.setTo(x)
	e.data.toID = noID
}

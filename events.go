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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate/bezier"
)

// noID marks a missing endpoint or control point identity.
const noID = ^uint32(0)

// edgeData describes one straight edge of the flattened path.
//
// Identities are indices into the Coords slice of the input path. Points
// created by flattening a curve get identities beyond the end of Coords;
// points created by the sweep itself have no identity. For pieces of a
// curve, ctrlID is the first control point of that curve.
//
// The edge is normalized so that from is the upper endpoint in sweep
// order. Winding is +1 if the path runs from the upper to the lower
// endpoint and -1 if the direction was reversed.
type edgeData struct {
	fromID  uint32
	ctrlID  uint32
	toID    uint32
	winding int8
}

// edgeRecord attaches an edge to the event at its upper endpoint.
type edgeRecord struct {
	to   vec.Vec2
	data edgeData
	next int32 // next sibling at the same event, or -1
}

// event is a position visited by the sweep line. All edges which start at
// this position are chained together as siblings. An event without edges
// is visit-only: it marks a path vertex where no edge runs downward.
type event struct {
	pos   vec.Vec2
	first int32 // first sibling record, or -1
}

// rawEvent is an unsorted event entry, before coincident positions have
// been merged.
type rawEvent struct {
	pos vec.Vec2
	rec int32
}

// eventQueue is the ordered sequence of sweep events.
type eventQueue struct {
	events  []event
	records []edgeRecord
	raw     []rawEvent
}

func (q *eventQueue) reset() {
	q.events = q.events[:0]
	q.records = q.records[:0]
	q.raw = q.raw[:0]
}

// compareSweep orders positions by increasing y, then by increasing x.
func compareSweep(a, b vec.Vec2) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// sweepLess reports whether a is visited before b.
func sweepLess(a, b vec.Vec2) bool {
	return compareSweep(a, b) < 0
}

// addEdge normalizes the edge a→b and attaches it to its upper endpoint.
func (q *eventQueue) addEdge(a, b vertexRef, ctrlID uint32) {
	if a.pos == b.pos {
		return
	}
	var winding int8 = 1
	if sweepLess(b.pos, a.pos) {
		a, b = b, a
		winding = -1
	}
	rec := int32(len(q.records))
	q.records = append(q.records, edgeRecord{
		to: b.pos,
		data: edgeData{
			fromID:  a.id,
			ctrlID:  ctrlID,
			toID:    b.id,
			winding: winding,
		},
		next: -1,
	})
	q.raw = append(q.raw, rawEvent{pos: a.pos, rec: rec})
}

// addVisit adds a visit-only event.
func (q *eventQueue) addVisit(p vec.Vec2) {
	q.raw = append(q.raw, rawEvent{pos: p, rec: -1})
}

// addSubpath adds the edges of one closed polygon. The polygon is closed
// implicitly; consecutive duplicate points are ignored.
func (q *eventQueue) addSubpath(sub []vertexRef) {
	pts := sub[:0]
	for _, v := range sub {
		if len(pts) == 0 || pts[len(pts)-1].pos != v.pos {
			pts = append(pts, v)
		}
	}
	for len(pts) > 1 && pts[len(pts)-1].pos == pts[0].pos {
		// the closing segment arrives at the start point
		pts[0].ctrl = pts[len(pts)-1].ctrl
		pts = pts[:len(pts)-1]
	}

	n := len(pts)
	switch n {
	case 0:
		return
	case 1:
		q.addVisit(pts[0].pos)
		return
	}

	for i, a := range pts {
		b := pts[(i+1)%n]
		q.addEdge(a, b, b.ctrl)
	}

	// Local maxima in sweep order have no edge running downward and need
	// an event of their own.
	for i, v := range pts {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		if sweepLess(prev.pos, v.pos) && sweepLess(next.pos, v.pos) {
			q.addVisit(v.pos)
		}
	}
}

// sort orders the raw entries and merges coincident positions into
// events with sibling chains.
func (q *eventQueue) sort() {
	slices.SortStableFunc(q.raw, func(a, b rawEvent) int {
		return compareSweep(a.pos, b.pos)
	})

	q.events = slices.Grow(q.events[:0], len(q.raw))
	var tail int32 = -1
	for _, r := range q.raw {
		if len(q.events) == 0 || q.events[len(q.events)-1].pos != r.pos {
			q.events = append(q.events, event{pos: r.pos, first: -1})
			tail = -1
		}
		if r.rec < 0 {
			continue
		}
		ev := &q.events[len(q.events)-1]
		if tail < 0 {
			ev.first = r.rec
		} else {
			q.records[tail].next = r.rec
		}
		tail = r.rec
	}
}

// insert attaches an edge starting at pos to the event at pos, creating
// the event if needed. Only events after index cur are considered, so pos
// must come after the position of the current event.
func (q *eventQueue) insert(cur int, pos, to vec.Vec2, data edgeData) {
	rec := int32(len(q.records))
	q.records = append(q.records, edgeRecord{to: to, data: data, next: -1})

	i, found := slices.BinarySearchFunc(q.events[cur+1:], pos, func(e event, p vec.Vec2) int {
		return compareSweep(e.pos, p)
	})
	i += cur + 1
	if !found {
		q.events = slices.Insert(q.events, i, event{pos: pos, first: rec})
		return
	}

	ev := &q.events[i]
	if ev.first < 0 {
		ev.first = rec
		return
	}
	last := ev.first
	for q.records[last].next >= 0 {
		last = q.records[last].next
	}
	q.records[last].next = rec
}

// vertexRef is a point of a flattened subpath in device coordinates.
// Ctrl is the control point identity of the segment arriving at this point.
type vertexRef struct {
	pos  vec.Vec2
	id   uint32
	ctrl uint32
}

// buildEvents converts the path into the sorted event queue.
// Coordinates are mapped to device space using CTM; curves are flattened
// with the configured tolerance.
func (t *FillTessellator) buildEvents(p *path.Data) error {
	if err := validatePath(p); err != nil {
		return err
	}

	q := &t.queue
	q.reset()

	t.coords = slices.Grow(t.coords[:0], len(p.Coords))[:len(p.Coords)]
	for i, c := range p.Coords {
		t.coords[i] = t.transform(c)
	}

	nextID := uint32(len(p.Coords))
	sub := t.subpath[:0]
	drawn := false
	var start vertexRef  // first point of the current subpath
	var current vec.Vec2 // current point in user space
	var startUser vec.Vec2

	flush := func() {
		if drawn {
			q.addSubpath(sub)
		}
		sub = sub[:0]
		drawn = false
	}

	// appendCurve adds the flattened interior points of a curve, followed
	// by its end point with identity endIdx.
	appendCurve := func(pts []vec.Vec2, ctrlIdx, endIdx int) {
		for _, pt := range pts[:len(pts)-1] {
			sub = append(sub, vertexRef{pos: t.transform(pt), id: nextID, ctrl: uint32(ctrlIdx)})
			nextID++
		}
		sub = append(sub, vertexRef{pos: t.coords[endIdx], id: uint32(endIdx), ctrl: uint32(ctrlIdx)})
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			start = vertexRef{pos: t.coords[coordIdx], id: uint32(coordIdx), ctrl: noID}
			startUser = p.Coords[coordIdx]
			current = startUser
			sub = append(sub, start)
			coordIdx++

		case path.CmdLineTo:
			drawn = true
			sub = append(sub, vertexRef{pos: t.coords[coordIdx], id: uint32(coordIdx), ctrl: noID})
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			drawn = true
			quad := bezier.Quad{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1]}
			t.flat = quad.AppendFlattened(t.flat[:0], t.CTM, t.Tolerance)
			appendCurve(t.flat, coordIdx, coordIdx+1)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			drawn = true
			cubic := bezier.Cubic{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1], P3: p.Coords[coordIdx+2]}
			t.flat = cubic.AppendFlattened(t.flat[:0], t.CTM, t.Tolerance)
			appendCurve(t.flat, coordIdx, coordIdx+2)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			flush()
			// drawing may continue from the start of the closed subpath
			sub = append(sub, start)
			current = startUser
		}
	}
	flush()
	t.subpath = sub

	q.sort()
	return nil
}

// transform maps a point from user space to device space.
func (t *FillTessellator) transform(p vec.Vec2) vec.Vec2 {
	m := t.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// validatePath checks that every command has its coordinates, that all
// coordinates are finite, and that the path starts with a MoveTo.
func validatePath(p *path.Data) error {
	used := 0
	started := false
	for i, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		case path.CmdClose:
			n = 0
		default:
			return invalidPath(i, "unknown command")
		}
		if cmd == path.CmdMoveTo {
			started = true
		} else if !started {
			return invalidPath(i, "path does not start with MoveTo")
		}
		if used+n > len(p.Coords) {
			return invalidPath(i, "missing coordinates")
		}
		for _, c := range p.Coords[used : used+n] {
			if !isFinite(c.X) || !isFinite(c.Y) {
				return invalidPath(i, "coordinate is not finite")
			}
		}
		used += n
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

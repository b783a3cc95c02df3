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

	"seehuhn.de/go/geom/vec"
)

// activeEntry is an element of the active edge list.
// The implementations are *lineEdge and *mergePlaceholder.
type activeEntry interface {
	isActiveEntry()
}

// lineEdge is a straight edge which crosses the sweep line.
type lineEdge struct {
	from, to vec.Vec2
	data     edgeData
	fromV    VertexID

	minX, maxX float64
}

func (*lineEdge) isActiveEntry() {}

func newLineEdge(from vec.Vec2, fromV VertexID, pe *pendingEdge) *lineEdge {
	e := &lineEdge{
		from:  from,
		data:  pe.data,
		fromV: fromV,
	}
	e.setTo(pe.to)
	return e
}

// setTo moves the lower endpoint of the edge.
func (e *lineEdge) setTo(to vec.Vec2) {
	e.to = to
	e.minX = min(e.from.X, to.X)
	e.maxX = max(e.from.X, to.X)
}

func (e *lineEdge) isHorizontal() bool {
	return e.from.Y == e.to.Y
}

// xAt returns the x coordinate of the edge at height y.
// The endpoints are returned exactly.
func (e *lineEdge) xAt(y float64) float64 {
	switch y {
	case e.from.Y:
		return e.from.X
	case e.to.Y:
		return e.to.X
	}
	return e.from.X + (y-e.from.Y)*(e.to.X-e.from.X)/(e.to.Y-e.from.Y)
}

// mergePlaceholder stands in for the missing edge between two spans which
// met at a merge vertex. It stays in the active edge list until the next
// vertex between the two spans is reached.
type mergePlaceholder struct {
	pos vec.Vec2
	v   VertexID
}

func (*mergePlaceholder) isActiveEntry() {}

// zone is the position of an active entry relative to the current event.
type zone uint8

const (
	zoneBefore zone = iota
	zoneConnecting
	zoneAfter
)

// activeList is the sequence of entries crossing the sweep line, ordered
// from left to right.
type activeList struct {
	entries []activeEntry
	zones   []zone
}

func (a *activeList) reset() {
	clear(a.entries)
	a.entries = a.entries[:0]
}

// classify finds the position of a line edge relative to p. If p lies in
// the interior of the edge, onEdge is set and the edge counts as
// connecting.
func (e *lineEdge) classify(p vec.Vec2) (z zone, onEdge bool, err error) {
	if e.to == p {
		return zoneConnecting, false, nil
	}
	if sweepLess(e.to, p) {
		return 0, false, errSweepOrder
	}
	if e.isHorizontal() {
		// from < p < to on the same line
		return zoneConnecting, true, nil
	}
	if p.X < e.minX {
		return zoneAfter, false, nil
	} else if p.X > e.maxX {
		return zoneBefore, false, nil
	}

	x := e.xAt(p.Y)
	switch {
	case x < p.X:
		return zoneBefore, false, nil
	case x > p.X:
		return zoneAfter, false, nil
	default:
		return zoneConnecting, true, nil
	}
}

// snapTolerance is the distance, relative to the magnitude of the
// coordinates involved, below which an edge is taken to pass through an
// event.
const snapTolerance = 1e-9

// near reports whether p lies within rounding distance of the line
// through e.
func (e *lineEdge) near(p vec.Vec2) bool {
	d := e.to.Sub(e.from)
	scale := max(math.Abs(e.from.X), math.Abs(e.from.Y),
		math.Abs(e.to.X), math.Abs(e.to.Y), math.Abs(p.X), math.Abs(p.Y))
	return math.Abs(cross(d, p.Sub(e.from))) <= snapTolerance*scale*d.Length()
}

// scan locates the event p in the active list. The entries in
// [start, end) connect to p. The indices of the edges which have p in
// their interior are appended to splits. The active list is not modified.
//
// Rounding in earlier intersection points can leave an edge on the wrong
// side of p. Such an edge is treated as passing through p, provided it
// misses p by no more than a rounding error.
func (a *activeList) scan(p vec.Vec2, splits []int) (start, end int, _ []int, err error) {
	n := len(a.entries)
	if cap(a.zones) < n {
		a.zones = make([]zone, n)
	}
	zones := a.zones[:n]

	for i, entry := range a.entries {
		e, ok := entry.(*lineEdge)
		if !ok {
			continue
		}
		z, onEdge, err := e.classify(p)
		if err != nil {
			return 0, 0, splits, err
		}
		zones[i] = z
		if onEdge {
			splits = append(splits, i)
		}
	}

	// Placeholders follow their neighbours: before if the next edge is
	// before, after if the previous edge is after.
	for i, entry := range a.entries {
		if _, ok := entry.(*mergePlaceholder); !ok {
			continue
		}
		z := zoneConnecting
		if next := a.nextEdge(i); next >= 0 && zones[next] == zoneBefore {
			z = zoneBefore
		} else if prev := a.prevEdge(i); prev >= 0 && zones[prev] == zoneAfter {
			z = zoneAfter
		}
		zones[i] = z
	}

	// Everything before start is before p, everything from end on is
	// after p.
	start = n
	last := -1
	for i, z := range zones {
		if z != zoneBefore && start == n {
			start = i
		}
		if z != zoneAfter {
			last = i
		}
	}
	if last < start {
		return start, start, splits, nil
	}
	end = last + 1

	for i := start; i < end; i++ {
		if zones[i] == zoneConnecting {
			continue
		}
		e, ok := a.entries[i].(*lineEdge)
		if !ok {
			continue
		}
		if !e.near(p) {
			return 0, 0, splits, errSweepOrder
		}
		splits = append(splits, i)
	}
	return start, end, splits, nil
}

func (a *activeList) nextEdge(i int) int {
	for j := i + 1; j < len(a.entries); j++ {
		if _, ok := a.entries[j].(*lineEdge); ok {
			return j
		}
	}
	return -1
}

func (a *activeList) prevEdge(i int) int {
	for j := i - 1; j >= 0; j-- {
		if _, ok := a.entries[j].(*lineEdge); ok {
			return j
		}
	}
	return -1
}

// compareAt orders two edges by their position at height y. Edges meeting
// at height y are ordered by the direction in which they leave the
// meeting point.
func compareAt(a, b *lineEdge, y float64) int {
	if c := cmp.Compare(a.xAt(y), b.xAt(y)); c != 0 {
		return c
	}
	da := a.to.Sub(a.from)
	db := b.to.Sub(b.from)
	c := cmp.Compare(cross(da, db), 0)
	if a.to.Y == y && b.to.Y == y {
		// both edges end here and arrive from above
		c = -c
	}
	if c != 0 {
		return c
	}
	if c := cmp.Compare(a.from.X, b.from.X); c != 0 {
		return c
	}
	return cmp.Compare(a.to.X, b.to.X)
}

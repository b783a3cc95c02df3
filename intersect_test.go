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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func TestIntersectEdges(t *testing.T) {
	cases := []struct {
		name string
		a, b *lineEdge
		want vec.Vec2
		ta   float64
		ok   bool
	}{
		{"cross", testEdge(0, 0, 2, 2), testEdge(2, 0, 0, 2), vec.Vec2{X: 1, Y: 1}, 0.5, true},
		{"cross_near_end", testEdge(0, 0, 4, 4), testEdge(4, 2, 2, 4), vec.Vec2{X: 3, Y: 3}, 0.75, true},
		{"shared_endpoint", testEdge(0, 0, 2, 2), testEdge(0, 0, -2, 2), vec.Vec2{}, 0, false},
		{"parallel", testEdge(0, 0, 2, 2), testEdge(1, 0, 3, 2), vec.Vec2{}, 0, false},
		{"touching", testEdge(0, 0, 2, 2), testEdge(3, 0, 1, 1), vec.Vec2{}, 0, false},
		{"disjoint", testEdge(0, 0, 1, 1), testEdge(5, 0, 6, 1), vec.Vec2{}, 0, false},
		{"miss", testEdge(0, 0, 1, 4), testEdge(3, 0, 2, 1), vec.Vec2{}, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ta, ok := intersectEdges(c.a, c.b)
			if ok != c.ok {
				t.Fatalf("ok = %t, want %t", ok, c.ok)
			}
			if ok && (got != c.want || ta != c.ta) {
				t.Errorf("intersection at %v (t=%g), want %v (t=%g)", got, ta, c.want, c.ta)
			}
			// the test is symmetric
			if _, _, ok := intersectEdges(c.b, c.a); ok != c.ok {
				t.Errorf("swapped: ok = %t, want %t", ok, c.ok)
			}
		})
	}
}

func TestSortBelow(t *testing.T) {
	p := vec.Vec2{X: 0, Y: 0}
	mk := func(x, y float64, id uint32) pendingEdge {
		return newPendingEdge(p, vec.Vec2{X: x, Y: y}, edgeData{fromID: id})
	}
	below := []pendingEdge{
		mk(1, 1, 0),  // 45° right
		mk(-1, 1, 1), // 45° left
		mk(0, 3, 2),  // straight down, long
		mk(0, 1, 3),  // straight down, short
		mk(5, 0, 4),  // horizontal
	}
	sortBelow(below)

	var got []uint32
	for _, e := range below {
		got = append(got, e.data.fromID)
	}
	want := []uint32{1, 3, 2, 0, 4}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("order (-want +got):\n%s", d)
	}
}

func TestSplitOverlaps(t *testing.T) {
	tess := NewFillTessellator()
	tess.queue.addVisit(vec.Vec2{X: 0, Y: 0})
	tess.queue.addVisit(vec.Vec2{X: 0, Y: 4})
	tess.queue.sort()
	tess.cur = 0

	p := vec.Vec2{X: 0, Y: 0}
	tess.below = []pendingEdge{
		newPendingEdge(p, vec.Vec2{X: 0, Y: 2}, edgeData{fromID: 0, toID: 1, winding: 1}),
		newPendingEdge(p, vec.Vec2{X: 0, Y: 4}, edgeData{fromID: 0, toID: 2, winding: -1}),
	}
	tess.splitOverlaps(p)

	if to := tess.below[1].to; to != (vec.Vec2{X: 0, Y: 2}) {
		t.Errorf("longer edge ends at %v, want (0, 2)", to)
	}
	if id := tess.below[1].data.toID; id != 1 {
		t.Errorf("longer edge ends at vertex %d, want 1", id)
	}

	want := []eventSummary{
		{Pos: vec.Vec2{X: 0, Y: 0}, Edges: 0},
		{Pos: vec.Vec2{X: 0, Y: 2}, Edges: 1},
		{Pos: vec.Vec2{X: 0, Y: 4}, Edges: 0},
	}
	if d := cmp.Diff(want, summarize(&tess.queue)); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
	rest := tess.queue.records[tess.queue.events[1].first]
	if rest.to != (vec.Vec2{X: 0, Y: 4}) || rest.data.winding != -1 {
		t.Errorf("remainder %+v, want edge to (0, 4) with winding -1", rest)
	}
}

func TestSplitEdge(t *testing.T) {
	tess := NewFillTessellator()
	tess.queue.addVisit(vec.Vec2{X: 0, Y: 0})
	tess.queue.sort()
	tess.cur = 0

	e := testEdge(0, 0, 4, 4)
	e.data.toID = 7
	tess.splitEdge(e, vec.Vec2{X: 1, Y: 1})

	if e.to != (vec.Vec2{X: 1, Y: 1}) || e.maxX != 1 {
		t.Errorf("edge not shortened: %+v", e)
	}
	if e.data.toID != noID {
		t.Errorf("split edge keeps end vertex %d", e.data.toID)
	}
	if n := len(tess.queue.events); n != 2 {
		t.Fatalf("%d events, want 2", n)
	}
	rest := tess.queue.records[tess.queue.events[1].first]
	if rest.to != (vec.Vec2{X: 4, Y: 4}) || rest.data.toID != 7 || rest.data.fromID != noID {
		t.Errorf("remainder %+v", rest)
	}
}

func TestSplitEdgeReversed(t *testing.T) {
	tess := NewFillTessellator()
	tess.queue.addVisit(vec.Vec2{X: 0, Y: 0})
	tess.queue.addVisit(vec.Vec2{X: 4, Y: 4})
	tess.queue.sort()
	tess.cur = 0

	// the split point has been rounded to just after the lower endpoint
	e := testEdge(0, 0, 4, 4)
	e.data.toID = 7
	tess.splitEdge(e, vec.Vec2{X: 5, Y: 4})

	if e.to != (vec.Vec2{X: 5, Y: 4}) || e.data.toID != noID {
		t.Errorf("edge not moved to the split point: %+v", e)
	}
	want := []eventSummary{
		{Pos: vec.Vec2{X: 0, Y: 0}, Edges: 0},
		{Pos: vec.Vec2{X: 4, Y: 4}, Edges: 1},
	}
	if d := cmp.Diff(want, summarize(&tess.queue)); d != "" {
		t.Fatalf("events (-want +got):\n%s", d)
	}
	rest := tess.queue.records[tess.queue.events[1].first]
	if rest.to != (vec.Vec2{X: 5, Y: 4}) || rest.data.winding != -1 ||
		rest.data.fromID != 7 || rest.data.toID != noID {
		t.Errorf("remainder %+v, want edge to (5, 4) from vertex 7 with winding -1", rest)
	}
}

func TestCheckIntersectionsNextRow(t *testing.T) {
	u := math.Nextafter(1, 2) - 1
	tess := NewFillTessellator()
	for _, p := range []vec.Vec2{{X: 5, Y: 0}, {X: 10, Y: 1}, {X: 0, Y: 1 + u}, {X: 5, Y: 3}} {
		tess.queue.addVisit(p)
	}
	tess.queue.sort()
	tess.cur = 1

	// The exact crossing lies half an ulp below the event at (10, 1) and
	// rounds onto its row, to the left of the event.
	f := testEdge(5, 0, 5, 3)
	e := testEdge(10, 1, 0, 1+u)
	tess.active.entries = []activeEntry{f, e}
	tess.checkIntersections(vec.Vec2{X: 10, Y: 1}, 1, 2)

	x := vec.Vec2{X: 5, Y: 1 + u}
	if e.to != x || f.to != x {
		t.Errorf("edges end at %v and %v, want %v", e.to, f.to, x)
	}
	want := []eventSummary{
		{Pos: vec.Vec2{X: 5, Y: 0}, Edges: 0},
		{Pos: vec.Vec2{X: 10, Y: 1}, Edges: 0},
		{Pos: vec.Vec2{X: 0, Y: 1 + u}, Edges: 1},
		{Pos: x, Edges: 1},
		{Pos: vec.Vec2{X: 5, Y: 3}, Edges: 0},
	}
	if d := cmp.Diff(want, summarize(&tess.queue)); d != "" {
		t.Fatalf("events (-want +got):\n%s", d)
	}
	rest := tess.queue.records[tess.queue.events[2].first]
	if rest.to != x || rest.data.winding != -1 {
		t.Errorf("remainder %+v, want edge to %v with winding -1", rest, x)
	}
}

func TestCheckIntersectionsFirstCrossing(t *testing.T) {
	tess := NewFillTessellator()
	for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}} {
		tess.queue.addVisit(p)
	}
	tess.queue.sort()
	tess.cur = 0

	// the new edge crosses g before f
	e := testEdge(0, 0, 8, 8)
	f := testEdge(6, 0, 6, 8)
	g := testEdge(3, 0, 0, 8)
	tess.active.entries = []activeEntry{e, g, f}
	tess.checkIntersections(vec.Vec2{X: 0, Y: 0}, 0, 1)

	if e.to.Y >= 6 {
		t.Errorf("edge split at %v, not at the first crossing", e.to)
	}
	if e.to != g.to {
		t.Errorf("split points differ: %v and %v", e.to, g.to)
	}
	if f.to != (vec.Vec2{X: 6, Y: 8}) {
		t.Errorf("edge not crossed first was split at %v", f.to)
	}
}

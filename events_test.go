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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// eventSummary lists the events of a queue together with the number of
// edges starting at each.
type eventSummary struct {
	Pos   vec.Vec2
	Edges int
}

func summarize(q *eventQueue) []eventSummary {
	var res []eventSummary
	for _, ev := range q.events {
		n := 0
		for r := ev.first; r >= 0; r = q.records[r].next {
			n++
		}
		res = append(res, eventSummary{Pos: ev.pos, Edges: n})
	}
	return res
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestBuildEventsSquare(t *testing.T) {
	tess := NewFillTessellator()
	if err := tess.buildEvents(square(0, 0, 4, 4)); err != nil {
		t.Fatal(err)
	}

	want := []eventSummary{
		{Pos: vec.Vec2{X: 0, Y: 0}, Edges: 2},
		{Pos: vec.Vec2{X: 4, Y: 0}, Edges: 1},
		{Pos: vec.Vec2{X: 0, Y: 4}, Edges: 1},
		{Pos: vec.Vec2{X: 4, Y: 4}, Edges: 0}, // local maximum
	}
	if d := cmp.Diff(want, summarize(&tess.queue)); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}

	var up, down int
	for _, rec := range tess.queue.records {
		switch rec.data.winding {
		case 1:
			down++
		case -1:
			up++
		}
	}
	if up != 2 || down != 2 {
		t.Errorf("%d edges running down and %d running up, want 2 and 2", down, up)
	}
}

func TestBuildEventsCTM(t *testing.T) {
	tess := NewFillTessellator()
	tess.CTM = matrix.Scale(2, 3)
	if err := tess.buildEvents(square(0, 0, 1, 1)); err != nil {
		t.Fatal(err)
	}
	last := tess.queue.events[len(tess.queue.events)-1]
	if want := (vec.Vec2{X: 2, Y: 3}); last.pos != want {
		t.Errorf("last event at %v, want %v", last.pos, want)
	}
}

func TestBuildEventsDuplicates(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		Close()

	tess := NewFillTessellator()
	if err := tess.buildEvents(p); err != nil {
		t.Fatal(err)
	}
	want := []eventSummary{{Pos: vec.Vec2{X: 1, Y: 1}, Edges: 0}}
	if d := cmp.Diff(want, summarize(&tess.queue)); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestBuildEventsCurveIDs(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 10, Y: 20}, vec.Vec2{X: 20, Y: 0}).
		Close()

	tess := NewFillTessellator()
	if err := tess.buildEvents(p); err != nil {
		t.Fatal(err)
	}
	if len(tess.queue.records) < 3 {
		t.Fatalf("curve was not flattened: %d edges", len(tess.queue.records))
	}
	for _, rec := range tess.queue.records {
		d := rec.data
		if d.fromID == 1 || d.toID == 1 {
			t.Errorf("control point used as an edge endpoint: %+v", d)
		}
		if d.ctrlID != 1 && d.ctrlID != noID {
			t.Errorf("unexpected control point ID %d", d.ctrlID)
		}
		if d.fromID > 2 && d.fromID != noID && d.ctrlID != 1 {
			t.Errorf("flattened point without control point: %+v", d)
		}
	}
}

func TestValidatePath(t *testing.T) {
	cases := []struct {
		name string
		p    *path.Data
	}{
		{"no_moveto", &path.Data{
			Cmds:   []path.Command{path.CmdLineTo},
			Coords: []vec.Vec2{{X: 1, Y: 1}},
		}},
		{"missing_coords", &path.Data{
			Cmds:   []path.Command{path.CmdMoveTo, path.CmdCubeTo},
			Coords: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}},
		}},
		{"nan", (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: 0}).
			LineTo(vec.Vec2{X: math.NaN(), Y: 1})},
		{"inf", (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: math.Inf(-1)})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validatePath(c.p)
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("got %v, want ErrInvalidPath", err)
			}
		})
	}

	if err := validatePath(square(0, 0, 1, 1)); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
	if err := validatePath(&path.Data{}); err != nil {
		t.Errorf("empty path rejected: %v", err)
	}
}

func TestQueueInsert(t *testing.T) {
	var q eventQueue
	q.addVisit(vec.Vec2{X: 0, Y: 0})
	q.addVisit(vec.Vec2{X: 0, Y: 2})
	q.sort()

	data := edgeData{fromID: noID, ctrlID: noID, toID: noID, winding: 1}
	q.insert(0, vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 0, Y: 3}, data)
	q.insert(0, vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 1, Y: 3}, data)
	q.insert(0, vec.Vec2{X: 0, Y: 2}, vec.Vec2{X: 2, Y: 3}, data)

	want := []eventSummary{
		{Pos: vec.Vec2{X: 0, Y: 0}, Edges: 0},
		{Pos: vec.Vec2{X: 0, Y: 1}, Edges: 1},
		{Pos: vec.Vec2{X: 0, Y: 2}, Edges: 2},
	}
	if d := cmp.Diff(want, summarize(&q)); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestCompareSweep(t *testing.T) {
	pts := []vec.Vec2{{X: 5, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}, {X: 9, Y: 1}, {X: -9, Y: 2}}
	for i := range pts {
		for j := range pts {
			got := compareSweep(pts[i], pts[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("compareSweep(%v, %v) = %d, want %d", pts[i], pts[j], got, want)
			}
		}
	}
}

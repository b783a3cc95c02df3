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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func testEdge(x0, y0, x1, y1 float64) *lineEdge {
	e := &lineEdge{from: vec.Vec2{X: x0, Y: y0}, data: edgeData{winding: 1}}
	e.setTo(vec.Vec2{X: x1, Y: y1})
	return e
}

func TestXAt(t *testing.T) {
	e := testEdge(0.1, 0.3, 0.7, 1.9)
	if x := e.xAt(0.3); x != 0.1 {
		t.Errorf("xAt(top) = %g, want 0.1", x)
	}
	if x := e.xAt(1.9); x != 0.7 {
		t.Errorf("xAt(bottom) = %g, want 0.7", x)
	}
	if x := testEdge(0, 0, 2, 4).xAt(1); x != 0.5 {
		t.Errorf("xAt(1) = %g, want 0.5", x)
	}
}

func TestClassify(t *testing.T) {
	diag := testEdge(0, 0, 2, 2)
	horiz := testEdge(0, 1, 4, 1)

	cases := []struct {
		name   string
		e      *lineEdge
		p      vec.Vec2
		zone   zone
		onEdge bool
	}{
		{"interior", diag, vec.Vec2{X: 1, Y: 1}, zoneConnecting, true},
		{"left", diag, vec.Vec2{X: 0, Y: 1}, zoneAfter, false},
		{"right", diag, vec.Vec2{X: 2, Y: 1}, zoneBefore, false},
		{"far_left", diag, vec.Vec2{X: -5, Y: 1}, zoneAfter, false},
		{"far_right", diag, vec.Vec2{X: 5, Y: 1}, zoneBefore, false},
		{"end", diag, vec.Vec2{X: 2, Y: 2}, zoneConnecting, false},
		{"horizontal", horiz, vec.Vec2{X: 3, Y: 1}, zoneConnecting, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z, onEdge, err := c.e.classify(c.p)
			if err != nil {
				t.Fatal(err)
			}
			if z != c.zone || onEdge != c.onEdge {
				t.Errorf("got (%d, %t), want (%d, %t)", z, onEdge, c.zone, c.onEdge)
			}
		})
	}

	if _, _, err := diag.classify(vec.Vec2{X: 3, Y: 3}); err != errSweepOrder {
		t.Errorf("stale edge: got %v, want errSweepOrder", err)
	}
}

func TestScan(t *testing.T) {
	var a activeList
	a.entries = []activeEntry{
		testEdge(-1, 0, -1, 4),
		testEdge(0, 0, 2, 2),
		&mergePlaceholder{pos: vec.Vec2{X: 1, Y: 0.5}},
		testEdge(3, 0, 3, 4),
	}

	start, end, splits, err := a.scan(vec.Vec2{X: 1, Y: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if start != 1 || end != 3 {
		t.Errorf("connecting range [%d, %d), want [1, 3)", start, end)
	}
	if d := cmp.Diff([]int{1}, splits); d != "" {
		t.Errorf("splits (-want +got):\n%s", d)
	}

	// an event left of all edges connects to nothing
	start, end, _, err = a.scan(vec.Vec2{X: -2, Y: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if start != 0 || end != 0 {
		t.Errorf("connecting range [%d, %d), want [0, 0)", start, end)
	}
}

func TestScanOrder(t *testing.T) {
	var a activeList
	a.entries = []activeEntry{
		testEdge(3, 0, 3, 4),
		testEdge(-1, 0, -1, 4),
	}
	if _, _, _, err := a.scan(vec.Vec2{X: 1, Y: 1}, nil); err != errSweepOrder {
		t.Errorf("got %v, want errSweepOrder", err)
	}
}

func TestScanSnap(t *testing.T) {
	// the vertical edge misses the event by a rounding error and is
	// ordered before the edge ending there
	var a activeList
	a.entries = []activeEntry{
		testEdge(1+1e-13, 0, 1+1e-13, 4),
		testEdge(0, 0, 1, 1),
	}
	start, end, splits, err := a.scan(vec.Vec2{X: 1, Y: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if start != 0 || end != 2 {
		t.Errorf("connecting range [%d, %d), want [0, 2)", start, end)
	}
	if d := cmp.Diff([]int{0}, splits); d != "" {
		t.Errorf("splits (-want +got):\n%s", d)
	}
}

func TestCompareAt(t *testing.T) {
	left := testEdge(0, 0, -1, 1)
	right := testEdge(0, 0, 1, 1)
	if c := compareAt(left, right, 0); c != -1 {
		t.Errorf("edges leaving a common point: got %d, want -1", c)
	}

	// edges arriving at a common point are ordered by where they come from
	a := testEdge(-1, 0, 0, 1)
	b := testEdge(1, 0, 0, 1)
	if c := compareAt(a, b, 1); c != -1 {
		t.Errorf("edges arriving at a common point: got %d, want -1", c)
	}
	if c := compareAt(b, a, 1); c != 1 {
		t.Errorf("edges arriving at a common point, swapped: got %d, want 1", c)
	}

	if c := compareAt(testEdge(0, 0, 0, 4), testEdge(2, 0, 2, 4), 2); c != -1 {
		t.Errorf("separate edges: got %d, want -1", c)
	}
}

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

// recorder collects the triangles passed to it.
type recorder struct {
	tris [][3]VertexID
}

func (r *recorder) AddTriangle(a, b, c VertexID) {
	r.tris = append(r.tris, [3]VertexID{a, b, c})
}

// area returns the total signed area of the recorded triangles.
func (r *recorder) area(pos []vec.Vec2) float64 {
	var sum float64
	for _, t := range r.tris {
		a, b, c := pos[t[0]], pos[t[1]], pos[t[2]]
		sum += cross(b.Sub(a), c.Sub(a)) / 2
	}
	return sum
}

func TestMonotoneDiamond(t *testing.T) {
	pos := []vec.Vec2{{X: 0, Y: 0}, {X: -1, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}}

	var m monotoneTessellator
	var out recorder
	m.begin(pos[0], 0)
	m.vertex(pos[1], 1, sideLeft, &out)
	m.vertex(pos[2], 2, sideRight, &out)
	m.end(pos[3], 3, &out)

	if len(out.tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(out.tris))
	}
	if a := out.area(pos); a != 2 {
		t.Errorf("area = %g, want 2", a)
	}
	if len(m.stack) != 0 {
		t.Errorf("stack not empty after end: %v", m.stack)
	}
}

func TestMonotoneReflexChain(t *testing.T) {
	// The right chain turns outward at (2, 1), so no triangle can be
	// emitted until the left vertex at (0, 2) arrives.
	pos := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 2, Y: 1},
		{X: 4, Y: 1.5},
		{X: 0, Y: 2},
		{X: 3, Y: 3},
	}

	var m monotoneTessellator
	var out recorder
	m.begin(pos[0], 0)
	m.vertex(pos[1], 1, sideRight, &out)
	m.vertex(pos[2], 2, sideRight, &out)
	if len(out.tris) != 0 {
		t.Fatalf("triangles emitted for a reflex chain: %v", out.tris)
	}
	m.vertex(pos[3], 3, sideLeft, &out)
	if len(out.tris) != 2 {
		t.Fatalf("got %d triangles after the left vertex, want 2", len(out.tris))
	}
	m.end(pos[4], 4, &out)

	want := [][3]VertexID{{0, 1, 3}, {1, 2, 3}, {2, 4, 3}}
	if d := cmp.Diff(want, out.tris); d != "" {
		t.Errorf("triangles (-want +got):\n%s", d)
	}
	if a := out.area(pos); a != 6.25 {
		t.Errorf("area = %g, want 6.25", a)
	}
}

func TestMonotoneConvexChain(t *testing.T) {
	// Every vertex of the left chain is convex, so each new vertex
	// completes a triangle right away.
	pos := []vec.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0.5},
		{X: -1, Y: 1},
		{X: -1.5, Y: 2},
		{X: -1, Y: 3},
		{X: 0, Y: 4},
	}

	var m monotoneTessellator
	var out recorder
	m.begin(pos[0], 0)
	m.vertex(pos[1], 1, sideRight, &out)
	m.vertex(pos[2], 2, sideLeft, &out)
	m.vertex(pos[3], 3, sideLeft, &out)
	m.vertex(pos[4], 4, sideLeft, &out)
	m.end(pos[5], 5, &out)

	if len(out.tris) != 4 {
		t.Fatalf("got %d triangles, want 4", len(out.tris))
	}
	for _, tri := range out.tris {
		a, b, c := pos[tri[0]], pos[tri[1]], pos[tri[2]]
		if cross(b.Sub(a), c.Sub(a)) <= 0 {
			t.Errorf("triangle %v is not positively oriented", tri)
		}
	}
}

func TestConvex(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 0, Y: 1}
	right := vec.Vec2{X: 1, Y: 2}
	left := vec.Vec2{X: -1, Y: 2}

	if !convex(a, b, right, sideLeft) {
		t.Error("left chain bending right should be convex")
	}
	if convex(a, b, left, sideLeft) {
		t.Error("left chain bending left should be reflex")
	}
	if !convex(a, b, left, sideRight) {
		t.Error("right chain bending left should be convex")
	}
	if convex(a, b, vec.Vec2{X: 0, Y: 2}, sideRight) {
		t.Error("straight chain should not be convex")
	}
}

func TestEmitTriangle(t *testing.T) {
	v := func(x, y float64, id VertexID) chainVertex {
		return chainVertex{pos: vec.Vec2{X: x, Y: y}, id: id}
	}

	var out recorder
	emitTriangle(&out, v(0, 0, 0), v(1, 0, 1), v(0, 1, 2))
	emitTriangle(&out, v(0, 0, 0), v(0, 1, 2), v(1, 0, 1))
	emitTriangle(&out, v(0, 0, 0), v(1, 1, 3), v(2, 2, 4))

	want := [][3]VertexID{{0, 1, 2}, {0, 1, 2}}
	if d := cmp.Diff(want, out.tris); d != "" {
		t.Errorf("triangles (-want +got):\n%s", d)
	}
}

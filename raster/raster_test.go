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

package raster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type triangles [][3]vec.Vec2

func (t triangles) NumTriangles() int          { return len(t) }
func (t triangles) Triangle(i int) [3]vec.Vec2 { return t[i] }

const size = 4

func render(fill func(r *Rasterizer, emit EmitFunc)) []float32 {
	clip := rect.Rect{URx: size, URy: size}
	buf := make([]float32, size*size)
	r := NewRasterizer(clip)
	fill(r, Store(buf, size, clip))
	return buf
}

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

var approx = cmpopts.EquateApprox(0, 1e-5)

func TestFillSquare(t *testing.T) {
	want := []float32{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	got := render(func(r *Rasterizer, emit EmitFunc) {
		r.FillNonZero(square(1, 1, 3, 3), emit)
	})
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("coverage mismatch (-want +got):\n%s", d)
	}
}

func TestFillPartial(t *testing.T) {
	got := render(func(r *Rasterizer, emit EmitFunc) {
		r.FillNonZero(square(0, 0, 0.5, 1), emit)
	})
	if math.Abs(float64(got[0])-0.5) > 1e-6 {
		t.Errorf("coverage %g, want 0.5", got[0])
	}
	for i, c := range got[1:] {
		if c != 0 {
			t.Errorf("pixel %d: coverage %g, want 0", i+1, c)
		}
	}
}

func TestFillRules(t *testing.T) {
	// the same square twice has winding number 2
	p := square(0, 0, 4, 4)
	p.Cmds = append(p.Cmds, p.Cmds...)
	p.Coords = append(p.Coords, p.Coords...)

	nonZero := render(func(r *Rasterizer, emit EmitFunc) { r.FillNonZero(p, emit) })
	evenOdd := render(func(r *Rasterizer, emit EmitFunc) { r.FillEvenOdd(p, emit) })
	for i := range nonZero {
		if math.Abs(float64(nonZero[i])-1) > 1e-6 {
			t.Errorf("nonzero pixel %d: %g, want 1", i, nonZero[i])
		}
		if math.Abs(float64(evenOdd[i])) > 1e-6 {
			t.Errorf("evenodd pixel %d: %g, want 0", i, evenOdd[i])
		}
	}
}

func TestFillCTM(t *testing.T) {
	want := render(func(r *Rasterizer, emit EmitFunc) {
		r.FillNonZero(square(1, 1, 3, 3), emit)
	})
	got := render(func(r *Rasterizer, emit EmitFunc) {
		r.CTM = matrix.Identity.Translate(1, 1)
		r.FillNonZero(square(0, 0, 2, 2), emit)
	})
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("coverage mismatch (-want +got):\n%s", d)
	}
}

func TestFillCurve(t *testing.T) {
	// A circle of radius 1.5 covers an area of about 7.07 pixels.
	const r0 = 1.5
	const k = 0.5522847498 * r0
	c := vec.Vec2{X: 2, Y: 2}
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: c.X + r0, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X + r0, Y: c.Y + k}, vec.Vec2{X: c.X + k, Y: c.Y + r0}, vec.Vec2{X: c.X, Y: c.Y + r0}).
		CubeTo(vec.Vec2{X: c.X - k, Y: c.Y + r0}, vec.Vec2{X: c.X - r0, Y: c.Y + k}, vec.Vec2{X: c.X - r0, Y: c.Y}).
		CubeTo(vec.Vec2{X: c.X - r0, Y: c.Y - k}, vec.Vec2{X: c.X - k, Y: c.Y - r0}, vec.Vec2{X: c.X, Y: c.Y - r0}).
		CubeTo(vec.Vec2{X: c.X + k, Y: c.Y - r0}, vec.Vec2{X: c.X + r0, Y: c.Y - k}, vec.Vec2{X: c.X + r0, Y: c.Y}).
		Close()

	got := render(func(r *Rasterizer, emit EmitFunc) {
		r.Tolerance = 0.001
		r.FillNonZero(p, emit)
	})
	var sum float64
	for _, v := range got {
		sum += float64(v)
	}
	if want := math.Pi * r0 * r0; math.Abs(sum-want) > 0.02 {
		t.Errorf("total coverage %g, want %g", sum, want)
	}
}

func TestFillMesh(t *testing.T) {
	a := vec.Vec2{X: 1, Y: 1}
	b := vec.Vec2{X: 3, Y: 1}
	c := vec.Vec2{X: 3, Y: 3}
	d := vec.Vec2{X: 1, Y: 3}

	want := render(func(r *Rasterizer, emit EmitFunc) {
		r.FillNonZero(square(1, 1, 3, 3), emit)
	})
	got := render(func(r *Rasterizer, emit EmitFunc) {
		r.FillMesh(triangles{{a, b, c}, {a, c, d}}, emit)
	})
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("coverage mismatch (-want +got):\n%s", diff)
	}

	// overlapping triangles are not clamped
	got = render(func(r *Rasterizer, emit EmitFunc) {
		r.FillMesh(triangles{{a, b, c}, {a, b, c}}, emit)
	})
	if v := got[1*size+2]; math.Abs(float64(v)-2) > 1e-5 {
		t.Errorf("double coverage %g, want 2", v)
	}
}

func TestTrimZeros(t *testing.T) {
	row, offset := trimZeros([]float32{0, 0, 0.5, 0, 1, 0})
	if d := cmp.Diff([]float32{0.5, 0, 1}, row); d != "" || offset != 2 {
		t.Errorf("got %v at %d", row, offset)
	}
	if row, _ := trimZeros([]float32{0, 0}); row != nil {
		t.Errorf("got %v, want nil", row)
	}
}

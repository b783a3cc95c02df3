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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate"
)

var fillCases = []TestCase{
	{
		Name:      "triangle",
		Path:      polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 1,
	},
	{
		Name:      "triangle_evenodd",
		Path:      polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.EvenOdd,
		Triangles: 1,
	},
	{
		Name:      "rectangle",
		Path:      rectangle(10, 10, 54, 54),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "diamond",
		Path:      polygon(pt(32, 4), pt(60, 32), pt(32, 60), pt(4, 32)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "heptagon",
		Path:      regularPolygon(32, 32, 26, 7),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 5,
	},
	{
		Name:      "l_shape",
		Path:      polygon(pt(10, 10), pt(26, 10), pt(26, 38), pt(54, 38), pt(54, 54), pt(10, 54)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 4,
	},
	{
		// three peaks under one roof: two merge vertices
		Name:      "comb",
		Path:      comb(8, 4, 8, false),
		Width:     64,
		Height:    96,
		Rule:      tessellate.NonZero,
		Triangles: 5,
	},
	{
		// the same shape upside down: two split vertices
		Name:      "comb_flipped",
		Path:      comb(8, 4, 8, true),
		Width:     64,
		Height:    96,
		Rule:      tessellate.NonZero,
		Triangles: 5,
	},
	{
		Name:      "square_hole",
		Path:      squareWithHole(32, 32, 24),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 8,
	},
	{
		Name:      "bowtie",
		Path:      polygon(pt(10, 10), pt(54, 54), pt(54, 10), pt(10, 54)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "star_nonzero",
		Path:      fivePointStar(32, 32, 25),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "star_evenodd",
		Path:      fivePointStar(32, 32, 25),
		Width:     64,
		Height:    64,
		Rule:      tessellate.EvenOdd,
		Triangles: -1,
	},
	{
		Name:      "repeated_points",
		Path:      polygon(pt(10, 50), pt(10, 50), pt(32, 10), pt(32, 10), pt(32, 10), pt(54, 50)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 1,
	},
	{
		Name:      "shared_vertex",
		Path:      sharedVertex(32, 32, 24),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 4,
	},
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// regularPolygon builds a convex polygon with n corners on a circle.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// comb builds a polygon with three teeth, scaled by s and moved by (dx, dy).
// The teeth point towards smaller y, unless flip is set.
func comb(s, dx, dy float64, flip bool) *path.Data {
	raw := []vec.Vec2{
		{X: 0, Y: 10}, {X: 1, Y: 0}, {X: 2, Y: 5}, {X: 3, Y: 0},
		{X: 4, Y: 5}, {X: 5, Y: 0}, {X: 6, Y: 10},
	}
	pts := make([]vec.Vec2, len(raw))
	for i, q := range raw {
		if flip {
			q.Y = 10 - q.Y
		}
		pts[i] = pt(dx+s*q.X, dy+s*q.Y)
	}
	return polygon(pts...)
}

// squareWithHole builds a square with a square hole of half the size.
// The hole has the opposite orientation.
func squareWithHole(cx, cy, r float64) *path.Data {
	h := r / 2
	p := addPolygon(&path.Data{},
		pt(cx-r, cy-r), pt(cx+r, cy-r), pt(cx+r, cy+r), pt(cx-r, cy+r))
	return addPolygon(p,
		pt(cx-h, cy-h), pt(cx-h, cy+h), pt(cx+h, cy+h), pt(cx+h, cy-h))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// sharedVertex builds four triangles which meet at (cx, cy).
func sharedVertex(cx, cy, r float64) *path.Data {
	c := pt(cx, cy)
	p := &path.Data{}
	addPolygon(p, c, pt(cx-r/2, cy-r), pt(cx+r/2, cy-r))
	addPolygon(p, c, pt(cx+r, cy-r/2), pt(cx+r, cy+r/2))
	addPolygon(p, c, pt(cx+r/2, cy+r), pt(cx-r/2, cy+r))
	addPolygon(p, c, pt(cx-r, cy+r/2), pt(cx-r, cy-r/2))
	return p
}

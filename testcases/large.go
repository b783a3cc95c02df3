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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/tessellate"
)

// largeCases contain many edges or span large canvases.
var largeCases = []TestCase{
	{
		Name:      "large_concentric_nonzero",
		Path:      concentricSquares(256, 256, 200, 100),
		Width:     512,
		Height:    512,
		Rule:      tessellate.NonZero,
		Triangles: 8,
	},
	{
		Name:      "large_diamond",
		Path:      polygon(pt(256, 76), pt(436, 256), pt(256, 436), pt(76, 256)),
		Width:     512,
		Height:    512,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "large_grid",
		Path:      rectangleGrid(10, 10, 40, 30),
		Width:     512,
		Height:    512,
		Rule:      tessellate.NonZero,
		Triangles: 200,
	},
	{
		Name:      "large_polygon",
		Path:      regularPolygon(256, 256, 240, 500),
		Width:     512,
		Height:    512,
		Rule:      tessellate.NonZero,
		Triangles: 498,
	},
	{
		Name:      "large_circle_evenodd",
		Path:      concentricCircles(256, 256, 240, 8),
		Width:     512,
		Height:    512,
		Rule:      tessellate.EvenOdd,
		Triangles: -1,
	},
}

// concentricSquares builds a square with an oppositely oriented square
// hole.
func concentricSquares(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	addSquare(p, cx, cy, outer, false)
	return addSquare(p, cx, cy, inner, true)
}

// rectangleGrid builds rows×cols separate rectangles of size w×h,
// spaced 50 units apart.
func rectangleGrid(rows, cols int, w, h float64) *path.Data {
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x := 6 + float64(col)*50
			y := 6 + float64(row)*50
			addPolygon(p, pt(x, y), pt(x+w, y), pt(x+w, y+h), pt(x, y+h))
		}
	}
	return p
}

// concentricCircles builds n circles with decreasing radius and the same
// orientation, giving alternating rings under the even-odd rule.
func concentricCircles(cx, cy, r float64, n int) *path.Data {
	p := &path.Data{}
	for i := range n {
		ri := r * float64(n-i) / float64(n)
		p.MoveTo(pt(cx+ri, cy))
		for q := range 4 {
			addQuarter(p, cx, cy, ri, ri, q)
		}
		p.Close()
	}
	return p
}

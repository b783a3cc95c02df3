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

var subpathCases = []TestCase{
	{
		Name:      "two_triangles",
		Path:      twoTriangles(16, 32, 48, 32, 12),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "open_subpaths",
		Path:      openTriangles(16, 32, 48, 32, 12),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "overlapping_rect_nonzero",
		Path:      overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "overlapping_rect_evenodd",
		Path:      overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:     64,
		Height:    64,
		Rule:      tessellate.EvenOdd,
		Triangles: -1,
	},
	{
		Name:      "ring_evenodd",
		Path:      ringShape(32, 32, 25, 12),
		Width:     64,
		Height:    64,
		Rule:      tessellate.EvenOdd,
		Triangles: 8,
	},
	{
		// both squares have the same orientation, so nothing is cut out
		Name:      "ring_nonzero",
		Path:      ringShape(32, 32, 25, 12),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "nested_squares",
		Path:      nestedSquares(32, 32, 28, 18, 8),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 10,
	},
	{
		Name:      "multiple_rings",
		Path:      multipleRings(64, 64),
		Width:     128,
		Height:    128,
		Rule:      tessellate.EvenOdd,
		Triangles: 24,
	},
	{
		Name:      "many_small_shapes",
		Path:      manySmallShapes(8, 8),
		Width:     128,
		Height:    128,
		Rule:      tessellate.NonZero,
		Triangles: 64,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := &path.Data{}
	addPolygon(p, pt(cx1, cy1-size), pt(cx1+size, cy1+size), pt(cx1-size, cy1+size))
	return addPolygon(p, pt(cx2, cy2-size), pt(cx2+size, cy2+size), pt(cx2-size, cy2+size))
}

// openTriangles is like twoTriangles, but without ClosePath commands.
func openTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx1, cy1-size)).
		LineTo(pt(cx1+size, cy1+size)).
		LineTo(pt(cx1-size, cy1+size)).
		MoveTo(pt(cx2, cy2-size)).
		LineTo(pt(cx2+size, cy2+size)).
		LineTo(pt(cx2-size, cy2+size))
}

// overlappingRectangles builds two rectangles with the same orientation.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) *path.Data {
	p := &path.Data{}
	addPolygon(p, pt(x1a, y1a), pt(x2a, y1a), pt(x2a, y2a), pt(x1a, y2a))
	return addPolygon(p, pt(x1b, y1b), pt(x2b, y1b), pt(x2b, y2b), pt(x1b, y2b))
}

// ringShape builds two concentric squares with the same orientation.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	p := &path.Data{}
	addSquare(p, cx, cy, outerSize, false)
	return addSquare(p, cx, cy, innerSize, false)
}

// nestedSquares builds three concentric squares with alternating
// orientation: a frame with an island in the middle.
func nestedSquares(cx, cy, r1, r2, r3 float64) *path.Data {
	p := &path.Data{}
	addSquare(p, cx, cy, r1, false)
	addSquare(p, cx, cy, r2, true)
	return addSquare(p, cx, cy, r3, false)
}

// multipleRings builds three square rings for the even-odd rule.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	p := &path.Data{}
	for _, ring := range rings {
		addSquare(p, ring.cx, ring.cy, ring.outer, false)
		addSquare(p, ring.cx, ring.cy, ring.inner, false)
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const size = 5.0
	const spacing = 14.0

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			addPolygon(p, pt(cx, cy-size), pt(cx+size, cy+size), pt(cx-size, cy+size))
		}
	}
	return p
}

// addSquare appends a square with half side length r, centred at (cx, cy).
func addSquare(p *path.Data, cx, cy, r float64, reverse bool) *path.Data {
	if reverse {
		return addPolygon(p, pt(cx-r, cy-r), pt(cx-r, cy+r), pt(cx+r, cy+r), pt(cx+r, cy-r))
	}
	return addPolygon(p, pt(cx-r, cy-r), pt(cx+r, cy-r), pt(cx+r, cy+r), pt(cx-r, cy+r))
}

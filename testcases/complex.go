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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tessellate"
)

var complexCases = []TestCase{
	{
		Name:      "mixed_lines_curves",
		Path:      mixedLinesCurves(),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "glyph_like",
		Path:      glyphLikeShape(),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "glyph_like_evenodd",
		Path:      glyphLikeShape(),
		Width:     64,
		Height:    64,
		Rule:      tessellate.EvenOdd,
		Triangles: -1,
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 3,
			Cap:   graphics.LineCapRound,
			Join:  graphics.LineJoinRound,
		},
		Triangles: -1,
	},
	{
		Name:   "spiral_overlap",
		Path:   spiralPath(32, 32, 4, 26, 3),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 5,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinRound,
		},
		Triangles: -1,
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzagPath(6, 32, 58, 16, 8),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 6,
			Cap:   graphics.LineCapSquare,
			Join:  graphics.LineJoinMiter,
		},
		Triangles: -1,
	},
}

// mixedLinesCurves builds a closed shape mixing straight and curved
// segments.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(10, 20)).
		QuadTo(pt(10, 10), pt(20, 10)).
		LineTo(pt(44, 10)).
		CubeTo(pt(60, 10), pt(60, 30), pt(44, 30)).
		LineTo(pt(30, 30)).
		LineTo(pt(54, 50)).
		Close()
}

// glyphLikeShape builds a shape resembling a lowercase 'a': a bowl with a
// counter and a stem which overlaps the bowl.
func glyphLikeShape() *path.Data {
	const cx, cy = 30.0, 38.0
	const r, ir = 18.0, 8.0

	p := (&path.Data{}).MoveTo(pt(cx+r, cy))
	for q := range 4 {
		addQuarter(p, cx, cy, r, r, q)
	}
	p.Close()

	// the counter runs in the opposite direction
	p.MoveTo(pt(cx+ir, cy))
	for q := 3; q >= 0; q-- {
		addQuarterReversed(p, cx, cy, ir, ir, q)
	}
	p.Close()

	return addPolygon(p, pt(cx+r-6, 10), pt(cx+r, 10), pt(cx+r, 56), pt(cx+r-6, 56))
}

// addQuarterReversed appends quadrant q of an ellipse, traversed in the
// opposite direction to addQuarter.
func addQuarterReversed(p *path.Data, cx, cy, rx, ry float64, q int) {
	kx, ky := rx*kappa, ry*kappa
	switch q {
	case 0:
		p.CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy))
	case 1:
		p.CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry))
	case 2:
		p.CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy))
	case 3:
		p.CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry))
	}
}

// spiralPath builds an Archimedean spiral with 32 segments per turn.
func spiralPath(cx, cy, rMin, rMax, turns float64) *path.Data {
	steps := max(int(turns*32), 8)
	total := turns * 2 * math.Pi
	pts := make([]vec.Vec2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := float64(i) / float64(steps) * total
		r := rMin + (rMax-rMin)*angle/total
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polyline(pts...)
}

// zigzagPath builds an open zigzag line with n teeth.
func zigzagPath(x1, cy, x2, amplitude float64, n int) *path.Data {
	pts := make([]vec.Vec2, 0, n+1)
	for i := 0; i <= n; i++ {
		y := cy - amplitude/2
		if i%2 == 1 {
			y = cy + amplitude/2
		}
		pts = append(pts, pt(x1+(x2-x1)*float64(i)/float64(n), y))
	}
	return polyline(pts...)
}

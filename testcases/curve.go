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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:      "quadratic",
		Path:      quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		// control point near chord
		Name:      "quadratic_shallow",
		Path:      quadraticCurve(10, 32, 32, 28, 54, 32),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "quadratic_below",
		Path:      quadraticCurve(10, 20, 32, 55, 54, 20),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "quadratic_s_shape",
		Path:      sCurveQuadratic(10, 32, 54, 32),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "cubic",
		Path:      cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "cubic_deep",
		Path:      cubicCurve(10, 50, 15, 5, 49, 5, 54, 50),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		// S-curve with inflection
		Name:      "cubic_scurve",
		Path:      cubicCurve(10, 50, 10, 10, 54, 54, 54, 14),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		// self-intersecting loop
		Name:      "cubic_loop",
		Path:      cubicCurve(10, 32, 60, 5, 4, 59, 54, 32),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "cubic_cusp",
		Path:      cubicCurve(10, 50, 54, 10, 10, 10, 54, 50),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "circle",
		Path:      circle(32, 32, 25),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "circle_small",
		Path:      circle(32, 32, 5),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "circle_large",
		Path:      circle(64, 64, 60),
		Width:     128,
		Height:    128,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "ellipse",
		Path:      ellipse(32, 32, 28, 14),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		// pie slice, three quarters of a circle
		Name:      "arc",
		Path:      arc(32, 32, 25, 0.75),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		Name:      "curve_many_segments",
		Path:      cubicCurve(5, 60, 5, 5, 123, 5, 123, 60),
		Width:     128,
		Height:    128,
		Rule:      tessellate.NonZero,
		Triangles: -1,
	},
	{
		// all control points coincide
		Name:      "cubic_degenerate",
		Path:      cubicCurve(32, 32, 32, 32, 32, 32, 32, 32),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 0,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an axis-parallel ellipse from four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(cx+rx, cy))
	for q := range 4 {
		addQuarter(p, cx, cy, rx, ry, q)
	}
	return p.Close()
}

// arc builds a pie slice covering the given fraction of a circle, rounded
// down to whole quadrants.
func arc(cx, cy, r float64, fraction float64) *path.Data {
	n := min(max(int(fraction*4), 1), 4)
	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	for q := range n {
		addQuarter(p, cx, cy, r, r, q)
	}
	return p.Close()
}

// addQuarter appends quadrant q of an ellipse, counting from the positive
// x-axis towards negative y.
func addQuarter(p *path.Data, cx, cy, rx, ry float64, q int) {
	kx, ky := rx*kappa, ry*kappa
	switch q {
	case 0:
		p.CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry))
	case 1:
		p.CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy))
	case 2:
		p.CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry))
	case 3:
		p.CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy))
	}
}

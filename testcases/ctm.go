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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tessellate"
)

var ctmCases = []TestCase{
	{
		Name:      "scale_2x",
		Path:      rectangle(0, 0, 20, 20),
		Width:     128,
		Height:    128,
		Rule:      tessellate.NonZero,
		CTM:       matrix.Scale(2, 2).Translate(24, 24),
		Triangles: 2,
	},
	{
		Name:      "scale_half",
		Path:      rectangle(0, 0, 80, 80),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.Scale(0.5, 0.5).Translate(12, 12),
		Triangles: 2,
	},
	{
		Name:      "rotate_45deg",
		Path:      rectangle(-15, -15, 15, 15),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.RotateDeg(45).Translate(32, 32),
		Triangles: 2,
	},
	{
		Name:      "rotate_5deg",
		Path:      rectangle(-15, -15, 15, 15),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.RotateDeg(5).Translate(32, 32),
		Triangles: 2,
	},
	{
		Name:      "comb_rotated",
		Path:      comb(1, -3, -5, false),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       rotate(matrix.Scale(4, 4), 3).Translate(32, 32),
		Triangles: 5,
	},
	{
		Name:      "circle_to_ellipse",
		Path:      circle(0, 0, 14),
		Width:     128,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.Scale(2, 1).Translate(64, 32),
		Triangles: -1,
	},
	{
		Name:      "shear_horizontal",
		Path:      rectangle(-15, -15, 15, 15),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
		Triangles: 2,
	},
	{
		Name:      "shear_and_rotate",
		Path:      squareWithHole(0, 0, 16),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       rotate(matrix.Matrix{1, 0, 0.3, 1, 0, 0}, 30).Translate(32, 32),
		Triangles: 8,
	},
	{
		// round caps become elliptical in device space
		Name:   "round_cap_nonuniform",
		Path:   horizontalLine(-20, 0, 20),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
		Stroke: &Stroke{
			Width: 8,
			Cap:   graphics.LineCapRound,
			Join:  graphics.LineJoinRound,
		},
		Triangles: -1,
	},
	{
		Name:   "round_join_rotated",
		Path:   cornerCentered(0, 0, math.Pi/3),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
		Stroke: &Stroke{
			Width: 6,
			Cap:   graphics.LineCapButt,
			Join:  graphics.LineJoinRound,
		},
		Triangles: -1,
	},
}

// horizontalLine builds an open horizontal line.
func horizontalLine(x1, y, x2 float64) *path.Data {
	return polyline(pt(x1, y), pt(x2, y))
}

// cornerCentered builds two arms of length 20 meeting at (cx, cy) with the
// given opening angle.
func cornerCentered(cx, cy float64, angle float64) *path.Data {
	const length = 20.0
	c, s := math.Cos(angle/2)*length, math.Sin(angle/2)*length
	return polyline(pt(cx-c, cy-s), pt(cx, cy), pt(cx+c, cy-s))
}

// rotate returns the transformation which applies m and then rotates by
// deg degrees about the origin.
func rotate(m matrix.Matrix, deg float64) matrix.Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{
		cos*m[0] - sin*m[1], sin*m[0] + cos*m[1],
		cos*m[2] - sin*m[3], sin*m[2] + cos*m[3],
		cos*m[4] - sin*m[5], sin*m[4] + cos*m[5],
	}
}

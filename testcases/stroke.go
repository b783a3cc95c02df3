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
	"seehuhn.de/go/pdf/graphics"
)

var strokeCases = []TestCase{
	{
		Name:      "line_butt",
		Path:      horizontalLine(10, 32, 54),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 8, Cap: graphics.LineCapButt},
		Triangles: 2,
	},
	{
		Name:      "line_round",
		Path:      horizontalLine(10, 32, 54),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 8, Cap: graphics.LineCapRound},
		Triangles: -1,
	},
	{
		Name:      "line_square",
		Path:      horizontalLine(10, 32, 54),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 8, Cap: graphics.LineCapSquare},
		Triangles: -1,
	},
	{
		Name:      "corner_miter",
		Path:      polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 6, Join: graphics.LineJoinMiter},
		Triangles: -1,
	},
	{
		Name:      "corner_round",
		Path:      polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 6, Join: graphics.LineJoinRound},
		Triangles: -1,
	},
	{
		Name:      "corner_bevel",
		Path:      polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 6, Join: graphics.LineJoinBevel},
		Triangles: -1,
	},
	{
		// the miter would be longer than the limit allows
		Name:   "sharp_miter_limit",
		Path:   polyline(pt(10, 54), pt(32, 10), pt(36, 54)),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width:      4,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 2,
		},
		Triangles: -1,
	},
	{
		Name:      "closed_square",
		Path:      rectangle(12, 12, 52, 52),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 6, Join: graphics.LineJoinMiter},
		Triangles: -1,
	},
	{
		Name:      "quadratic_stroked",
		Path:      (&path.Data{}).MoveTo(pt(10, 50)).QuadTo(pt(32, 10), pt(54, 50)),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 4, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound},
		Triangles: -1,
	},
	{
		Name:      "cubic_stroked",
		Path:      (&path.Data{}).MoveTo(pt(10, 50)).CubeTo(pt(10, 10), pt(54, 54), pt(54, 14)),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 4, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound},
		Triangles: -1,
	},
	{
		Name:      "circle_stroked",
		Path:      circle(32, 32, 25),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 4, Join: graphics.LineJoinRound},
		Triangles: -1,
	},
	{
		Name:      "round_dot",
		Path:      (&path.Data{}).MoveTo(pt(32, 32)).Close(),
		Width:     64,
		Height:    64,
		Stroke:    &Stroke{Width: 20, Cap: graphics.LineCapRound},
		Triangles: -1,
	},
}

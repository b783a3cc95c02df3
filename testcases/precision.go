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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/tessellate"
)

var precisionCases = []TestCase{
	{
		Name:      "subpixel_offset_25",
		Path:      rectangle(20.25, 20.25, 44.25, 44.25),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "subpixel_offset_75",
		Path:      rectangle(20.75, 20.75, 44.75, 44.75),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 2,
	},
	{
		Name:      "thin_sliver",
		Path:      polygon(pt(4, 30), pt(60, 30.01), pt(4, 30.02)),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 1,
	},
	{
		// the shape lies far from the origin and is moved back by the CTM
		Name:      "large_offset",
		Path:      rectangle(10010, 10010, 10054, 10054),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.Identity.Translate(-10000, -10000),
		Triangles: 2,
	},
	{
		Name:      "tiny_scaled_up",
		Path:      squareWithHole(0.032, 0.032, 0.024),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		CTM:       matrix.Scale(1000, 1000),
		Triangles: 8,
	},
	{
		Name:      "near_collinear",
		Path:      nearCollinear(),
		Width:     64,
		Height:    64,
		Rule:      tessellate.NonZero,
		Triangles: 3,
	},
}

// nearCollinear builds a pentagon with a vertex very close to the line
// between its neighbours.
func nearCollinear() *path.Data {
	return polygon(pt(10, 10), pt(32, 10.001), pt(54, 10), pt(54, 54), pt(10, 54))
}

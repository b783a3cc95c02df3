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
	"seehuhn.de/go/pdf/graphics"
)

var dashCases = []TestCase{
	{
		Name:   "dashed",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 4,
			Dash:  []float64{8, 4},
		},
		Triangles: 10,
	},
	{
		Name:   "dash_phase",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width:     4,
			Dash:      []float64{8, 4},
			DashPhase: 6,
		},
		Triangles: -1,
	},
	{
		Name:   "dash_odd_pattern",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 4,
			Dash:  []float64{6},
		},
		Triangles: -1,
	},
	{
		Name:   "dash_dots",
		Path:   horizontalLine(8, 32, 56),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 6,
			Cap:   graphics.LineCapRound,
			Dash:  []float64{0, 12},
		},
		Triangles: -1,
	},
	{
		// the dash through the start point continues around the corner
		Name:   "dash_closed",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width:     4,
			Dash:      []float64{20, 10},
			DashPhase: 10,
		},
		Triangles: -1,
	},
	{
		Name:   "dash_curve",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Stroke: &Stroke{
			Width: 3,
			Cap:   graphics.LineCapSquare,
			Dash:  []float64{6, 4, 1, 4},
		},
		Triangles: -1,
	},
}

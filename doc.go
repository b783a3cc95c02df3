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

// Package tessellate converts filled 2D paths into triangle meshes.
//
// A [FillTessellator] sweeps a horizontal line over the path in order of
// increasing y. The sweep decomposes the filled area into regions which
// are monotone in y, and each region is triangulated as soon as its
// vertices are known. Both the non-zero and the even-odd fill rule are
// supported; self-intersecting paths are split at their crossings.
//
// The output is passed to a [GeometryBuilder]. [VertexBuffers] collects
// vertices and triangle indices in memory:
//
//	var mesh tessellate.VertexBuffers
//	t := tessellate.NewFillTessellator()
//	t.Rule = tessellate.EvenOdd
//	err := t.Tessellate(p, &mesh)
//
// Curves are replaced by straight edges before the sweep, see package
// [seehuhn.de/go/tessellate/bezier]. Stroked paths can be converted into
// fillable outlines with package [seehuhn.de/go/tessellate/stroke].
package tessellate

//go:generate go run ./testcases/export

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

// Package testcases provides named tessellation inputs, shared by the tests
// and by the export and genpdf commands.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/stroke"
)

// TestCase defines a single tessellation test.
type TestCase struct {
	Name   string              // lowercase a-z, 0-9 and _ only
	Path   *path.Data          // the geometry, in user space
	Width  int                 // canvas width in device units
	Height int                 // canvas height in device units
	Rule   tessellate.FillRule // ignored for stroke cases
	CTM    matrix.Matrix       // zero value means no transform
	Stroke *Stroke             // if set, the stroke outline is filled

	// Triangles is the expected number of output triangles, or -1 if the
	// count is not fixed by the shape.
	Triangles int
}

// Stroke specifies the parameters for stroke cases.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64   // zero means the default
	Dash       []float64 // nil for solid
	DashPhase  float64
}

// Matrix returns the transformation for the test case.
func (tc *TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// FillPath returns the path which is tessellated for this test case,
// together with the fill rule. For stroke cases this is the outline of the
// stroke, filled with the nonzero rule.
func (tc *TestCase) FillPath() (*path.Data, tessellate.FillRule) {
	s := tc.Stroke
	if s == nil {
		return tc.Path, tc.Rule
	}
	o := stroke.NewOutliner()
	o.Width = s.Width
	o.Cap = s.Cap
	o.Join = s.Join
	if s.MiterLimit > 0 {
		o.MiterLimit = s.MiterLimit
	}
	o.Dash = s.Dash
	o.DashPhase = s.DashPhase
	o.CTM = tc.Matrix()
	return o.Outline(tc.Path), tessellate.NonZero
}

// Tessellate runs the fill tessellator on the test case.
func (tc *TestCase) Tessellate(out tessellate.GeometryBuilder) error {
	p, rule := tc.FillPath()
	t := tessellate.NewFillTessellator()
	t.Rule = rule
	t.CTM = tc.Matrix()
	return t.Tessellate(p, out)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed polygon through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	return addPolygon(&path.Data{}, pts...)
}

// addPolygon appends a closed polygon to p.
func addPolygon(p *path.Data, pts ...vec.Vec2) *path.Data {
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Close()
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p
}

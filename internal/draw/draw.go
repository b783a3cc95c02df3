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

// Package draw renders triangle meshes for visual inspection.
package draw

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/tessellate/raster"
	"seehuhn.de/go/tessellate/stroke"
)

var (
	fillGray = color.Gray{Y: 0xB0}
	edgeGray = color.Gray{Y: 0x20}
)

// Image renders the mesh into a grayscale image of the given size in
// device units, enlarged by the integer factor scale. Triangles are filled
// in light gray, with the triangle edges drawn on top.
func Image(width, height int, m raster.Mesh, scale int) *image.Gray {
	scale = max(scale, 1)
	w, h := width*scale, height*scale
	img := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.White, image.Point{}, xdraw.Src)

	s := float32(scale)
	z := vector.NewRasterizer(w, h)
	for i := range m.NumTriangles() {
		tri := m.Triangle(i)
		z.MoveTo(float32(tri[0].X)*s, float32(tri[0].Y)*s)
		z.LineTo(float32(tri[1].X)*s, float32(tri[1].Y)*s)
		z.LineTo(float32(tri[2].X)*s, float32(tri[2].Y)*s)
		z.ClosePath()
	}
	z.Draw(img, img.Bounds(), image.NewUniform(fillGray), image.Point{})

	// The edges are stroked in device space, one pixel wide.
	o := stroke.NewOutliner()
	o.CTM = matrix.Scale(float64(scale), float64(scale))
	o.Width = 1 / float64(scale)
	outline := o.Outline(edges(m))

	z.Reset(w, h)
	coordIdx := 0
	for _, cmd := range outline.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p := outline.Coords[coordIdx]
			z.MoveTo(float32(p.X)*s, float32(p.Y)*s)
			coordIdx++
		case path.CmdLineTo:
			p := outline.Coords[coordIdx]
			z.LineTo(float32(p.X)*s, float32(p.Y)*s)
			coordIdx++
		case path.CmdClose:
			z.ClosePath()
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(edgeGray), image.Point{})
	return img
}

// edges returns a path with one closed subpath per triangle.
func edges(m raster.Mesh) *path.Data {
	p := &path.Data{}
	for i := range m.NumTriangles() {
		tri := m.Triangle(i)
		p.MoveTo(tri[0]).LineTo(tri[1]).LineTo(tri[2]).Close()
	}
	return p
}

// PDF writes a single page PDF file which shows the mesh. The page has the
// given size in device units, with the origin at the top left.
//
// If outline is not nil, it is drawn on top of the mesh after
// transformation by ctm.
func PDF(fname string, width, height int, m raster.Mesh, outline *path.Data, ctm matrix.Matrix) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; meshes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	addTriangles := func() {
		for i := range m.NumTriangles() {
			tri := m.Triangle(i)
			page.MoveTo(tri[0].X, tri[0].Y)
			page.LineTo(tri[1].X, tri[1].Y)
			page.LineTo(tri[2].X, tri[2].Y)
			page.ClosePath()
		}
	}

	page.SetFillColor(pdfcolor.DeviceGray(0.8))
	addTriangles()
	page.Fill()

	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(0.1)
	addTriangles()
	page.Stroke()

	if outline != nil {
		page.Transform(ctm)
		page.SetStrokeColor(pdfcolor.DeviceGray(0.4))
		page.SetLineWidth(0.5 / max(ctm[0], ctm[3], 1e-3))
		for cmd, pts := range outline.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

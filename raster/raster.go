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

// Package raster computes anti-aliased pixel coverage for filled paths and
// triangle meshes.
//
// The rasterizer accumulates the signed area of every edge in each pixel,
// so that the coverage values are exact up to rounding. It serves as the
// reference when checking tessellator output, and for rendering meshes.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate/bezier"
)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the path runs downward, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer converts paths and meshes to pixel coverage values.
// One instance can be reused for many paths. Internal buffers grow as
// needed but never shrink.
type Rasterizer struct {
	// CTM maps path coordinates to device coordinates.
	// It is not applied to meshes.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// Must be non-empty with integer coordinates.
	Clip rect.Rect

	// Tolerance is the curve flattening tolerance in device pixels.
	Tolerance float64

	edges     []edge
	active    []int
	cover     []float32 // change of the winding number in each pixel
	area      []float32 // covered area in each pixel
	crossings []float64
	flat      []vec.Vec2
	bbox      rect.Rect
}

// NewRasterizer creates a Rasterizer with the given clip rectangle,
// the identity transformation and the default tolerance.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:       matrix.Identity,
		Clip:      clip,
		Tolerance: defaultTolerance,
	}
}

// Reset restores the default settings with a new clip rectangle, keeping
// the capacity of the internal buffers.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Tolerance = defaultTolerance
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// Mesh is a list of triangles in device coordinates.
type Mesh interface {
	NumTriangles() int
	Triangle(i int) [3]vec.Vec2
}

// EmitFunc receives the coverage of one pixel row. The pixels from xMin
// to xMin+len(coverage)-1 are covered; all other pixels of the row have
// coverage zero. The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// FillNonZero rasterizes p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.collectPath(p)
	r.scan(ruleNonZero, emit)
}

// FillEvenOdd rasterizes p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.collectPath(p)
	r.scan(ruleEvenOdd, emit)
}

// FillMesh rasterizes the triangles of m. Coverage is not clamped: where
// triangles overlap, the coverage is the sum of the individual triangles.
// All triangles must have the same orientation.
func (r *Rasterizer) FillMesh(m Mesh, emit EmitFunc) {
	r.edges = r.edges[:0]
	for i := range m.NumTriangles() {
		tri := m.Triangle(i)
		r.addDeviceEdge(tri[0], tri[1])
		r.addDeviceEdge(tri[1], tri[2])
		r.addDeviceEdge(tri[2], tri[0])
	}
	r.scan(ruleSum, emit)
}

type rule int

const (
	ruleNonZero rule = iota
	ruleEvenOdd
	ruleSum
)

// collectPath flattens p into the edge list. Open subpaths are closed.
func (r *Rasterizer) collectPath(p *path.Data) {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.addEdge(current, start)
			current = p.Coords[coordIdx]
			start = current
			coordIdx++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			q := bezier.Quad{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1]}
			r.addFlattened(current, q.AppendFlattened(r.flat[:0], r.CTM, r.Tolerance))
			current = q.P2
			coordIdx += 2

		case path.CmdCubeTo:
			c := bezier.Cubic{P0: current, P1: p.Coords[coordIdx], P2: p.Coords[coordIdx+1], P3: p.Coords[coordIdx+2]}
			r.addFlattened(current, c.AppendFlattened(r.flat[:0], r.CTM, r.Tolerance))
			current = c.P3
			coordIdx += 3

		case path.CmdClose:
			r.addEdge(current, start)
			current = start
		}
	}
	r.addEdge(current, start)
}

func (r *Rasterizer) addFlattened(from vec.Vec2, pts []vec.Vec2) {
	for _, pt := range pts {
		r.addEdge(from, pt)
		from = pt
	}
	r.flat = pts
}

// addEdge adds an edge given in user space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	m := r.CTM
	r.addDeviceEdge(
		vec.Vec2{X: m[0]*p0.X + m[2]*p0.Y + m[4], Y: m[1]*p0.X + m[3]*p0.Y + m[5]},
		vec.Vec2{X: m[0]*p1.X + m[2]*p1.Y + m[4], Y: m[1]*p1.X + m[3]*p1.Y + m[5]},
	)
}

// addDeviceEdge adds an edge given in device space. Horizontal edges do
// not contribute to the coverage and are skipped.
func (r *Rasterizer) addDeviceEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	var dir float32 = 1
	if dy < 0 {
		a, b = b, a
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})

	if len(r.edges) == 1 {
		r.bbox = rect.Rect{LLx: a.X, LLy: a.Y, URx: a.X, URy: b.Y}
	}
	r.bbox.LLx = min(r.bbox.LLx, a.X, b.X)
	r.bbox.URx = max(r.bbox.URx, a.X, b.X)
	r.bbox.LLy = min(r.bbox.LLy, a.Y)
	r.bbox.URy = max(r.bbox.URy, b.Y)
}

// scan walks the scanlines from top to bottom, keeping a list of the
// edges which intersect the current row.
func (r *Rasterizer) scan(fr rule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		switch {
		case a.y0 < b.y0:
			return -1
		case a.y0 > b.y0:
			return 1
		}
		return 0
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := top + 1
		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], top, bot, xMin, xMax)
		}
		integrate(r.cover, r.area, fr)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of e between the heights
// top and bot. The buffers cover the pixel columns xMin to xMax-1; edge
// parts left of this range are attributed to the first column.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) {
	y0 := max(top, e.y0)
	y1 := min(bot, e.y1)
	if y1 <= y0 {
		return
	}

	r.crossings = append(r.crossings[:0], y0, y1)
	xa, xb := e.xAt(y0), e.xAt(y1)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))
	if left != right {
		// split at the pixel boundaries
		for x := left + 1; x <= right; x++ {
			yx := e.y0 + (float64(x)-e.x0)/e.dxdy
			if yx > y0 && yx < y1 {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for k := 1; k < len(r.crossings); k++ {
		ya, yb := r.crossings[k-1], r.crossings[k]
		if yb <= ya {
			continue
		}
		c := e.dir * float32(yb-ya)
		xm := e.xAt((ya + yb) / 2)
		pix := int(math.Floor(xm))
		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			i := pix - xMin
			r.cover[i] += c
			r.area[i] += c * float32(1-(xm-float64(pix)))
		}
	}
}

// integrate converts the accumulated values of one row into coverage.
// The result is stored in cover.
func integrate(cover, area []float32, fr rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]

		v := raw
		if v < 0 {
			v = -v
		}
		switch fr {
		case ruleNonZero:
			v = min(v, 1)
		case ruleEvenOdd:
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		}
		cover[i] = v
	}
}

// trimZeros returns the part of the row between the first and last
// non-zero entries, together with its offset.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

// Store returns an EmitFunc which copies the coverage into buf. The buffer
// holds the pixels of clip in row-major order, with stride values per row.
func Store(buf []float32, stride int, clip rect.Rect) EmitFunc {
	x0, y0 := int(clip.LLx), int(clip.LLy)
	return func(y, xMin int, coverage []float32) {
		copy(buf[(y-y0)*stride+xMin-x0:], coverage)
	}
}

const (
	// defaultTolerance is the default flattening tolerance in device pixels.
	defaultTolerance = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// which contributes to the coverage.
	horizontalEdgeThreshold = 1e-10
)

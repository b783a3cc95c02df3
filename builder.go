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

package tessellate

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// VertexID identifies a vertex emitted to a GeometryBuilder.
type VertexID uint32

// Count is the amount of geometry produced by one tessellation call.
type Count struct {
	Vertices  int
	Triangles int
}

// GeometryBuilder receives the output of a tessellator.
//
// A tessellation call brackets its output with BeginGeometry and either
// EndGeometry (on success) or AbortGeometry (on failure). AddVertex is
// called once per distinct event position. Every triangle passed to
// AddTriangle has a positive signed area, (b-a)×(c-a) > 0.
type GeometryBuilder interface {
	BeginGeometry()
	AddVertex(p vec.Vec2) VertexID
	AddTriangle(a, b, c VertexID)
	EndGeometry() Count
	AbortGeometry()
}

// triangleSink is the part of GeometryBuilder used by the span
// triangulation.
type triangleSink interface {
	AddTriangle(a, b, c VertexID)
}

// VertexBuffers is a GeometryBuilder which stores vertices and triangle
// indices in memory. Several tessellation calls can append to the same
// buffers; an aborted call leaves the buffers as they were before it began.
type VertexBuffers struct {
	Vertices []vec.Vec2
	Indices  []VertexID // three entries per triangle

	firstVertex int
	firstIndex  int
}

// BeginGeometry implements GeometryBuilder.
func (b *VertexBuffers) BeginGeometry() {
	b.firstVertex = len(b.Vertices)
	b.firstIndex = len(b.Indices)
}

// AddVertex implements GeometryBuilder.
func (b *VertexBuffers) AddVertex(p vec.Vec2) VertexID {
	b.Vertices = append(b.Vertices, p)
	return VertexID(len(b.Vertices) - 1)
}

// AddTriangle implements GeometryBuilder.
func (b *VertexBuffers) AddTriangle(v0, v1, v2 VertexID) {
	b.Indices = append(b.Indices, v0, v1, v2)
}

// EndGeometry implements GeometryBuilder.
func (b *VertexBuffers) EndGeometry() Count {
	return Count{
		Vertices:  len(b.Vertices) - b.firstVertex,
		Triangles: (len(b.Indices) - b.firstIndex) / 3,
	}
}

// AbortGeometry implements GeometryBuilder.
func (b *VertexBuffers) AbortGeometry() {
	b.Vertices = b.Vertices[:b.firstVertex]
	b.Indices = b.Indices[:b.firstIndex]
}

// Reset removes all geometry, keeping the allocated capacity.
func (b *VertexBuffers) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.firstVertex = 0
	b.firstIndex = 0
}

// NumTriangles returns the number of stored triangles.
func (b *VertexBuffers) NumTriangles() int {
	return len(b.Indices) / 3
}

// Triangle returns the corners of triangle i.
func (b *VertexBuffers) Triangle(i int) [3]vec.Vec2 {
	idx := b.Indices[3*i : 3*i+3]
	return [3]vec.Vec2{b.Vertices[idx[0]], b.Vertices[idx[1]], b.Vertices[idx[2]]}
}

// Area returns the total signed area of all stored triangles.
func (b *VertexBuffers) Area() float64 {
	var sum float64
	for i := range b.NumTriangles() {
		t := b.Triangle(i)
		sum += cross(t[1].Sub(t[0]), t[2].Sub(t[0])) / 2
	}
	return sum
}

// Bounds returns the bounding box of all stored vertices.
// The zero rectangle is returned if there are no vertices.
func (b *VertexBuffers) Bounds() rect.Rect {
	if len(b.Vertices) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: b.Vertices[0].X, LLy: b.Vertices[0].Y,
		URx: b.Vertices[0].X, URy: b.Vertices[0].Y,
	}
	for _, v := range b.Vertices[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Counter is a GeometryBuilder which only counts its input.
type Counter struct {
	count Count
}

// BeginGeometry implements GeometryBuilder.
func (c *Counter) BeginGeometry() { c.count = Count{} }

// AddVertex implements GeometryBuilder.
func (c *Counter) AddVertex(vec.Vec2) VertexID {
	c.count.Vertices++
	return VertexID(c.count.Vertices - 1)
}

// AddTriangle implements GeometryBuilder.
func (c *Counter) AddTriangle(_, _, _ VertexID) { c.count.Triangles++ }

// EndGeometry implements GeometryBuilder.
func (c *Counter) EndGeometry() Count { return c.count }

// AbortGeometry implements GeometryBuilder.
func (c *Counter) AbortGeometry() { c.count = Count{} }

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

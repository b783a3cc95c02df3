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

import "seehuhn.de/go/geom/vec"

// side tells which boundary chain of a span a vertex belongs to.
type side uint8

const (
	sideNone side = iota // the first vertex of a span
	sideLeft
	sideRight
)

func (s side) opposite() side {
	if s == sideLeft {
		return sideRight
	}
	return sideLeft
}

func (s side) String() string {
	switch s {
	case sideLeft:
		return "left"
	case sideRight:
		return "right"
	default:
		return "top"
	}
}

type chainVertex struct {
	pos  vec.Vec2
	id   VertexID
	side side
}

// monotoneTessellator triangulates a region which is monotone in the
// sweep direction. Vertices must be supplied in sweep order, each tagged
// with the chain it belongs to.
//
// The stack holds the vertices which are not yet part of any triangle.
// All stack entries except possibly the bottom one lie on the same chain
// and form a reflex sequence.
type monotoneTessellator struct {
	stack []chainVertex
}

// begin starts a new region at its topmost vertex.
func (m *monotoneTessellator) begin(p vec.Vec2, id VertexID) {
	m.stack = append(m.stack[:0], chainVertex{pos: p, id: id})
}

// last returns the most recently added vertex.
func (m *monotoneTessellator) last() chainVertex {
	return m.stack[len(m.stack)-1]
}

// ends returns the most recent vertex of the left and of the right chain.
// The bottom of the stack is always the most recent vertex of the chain
// opposite to the top.
func (m *monotoneTessellator) ends() (left, right chainVertex) {
	top := m.stack[len(m.stack)-1]
	bottom := m.stack[0]
	switch top.side {
	case sideLeft:
		return top, bottom
	case sideRight:
		return bottom, top
	}
	return top, top
}

// vertex adds the next vertex of the region and emits all triangles which
// are complete after this vertex.
func (m *monotoneTessellator) vertex(p vec.Vec2, id VertexID, s side, out triangleSink) {
	v := chainVertex{pos: p, id: id, side: s}
	top := m.stack[len(m.stack)-1]

	if top.side != s {
		// The new vertex sees every stacked vertex across the region.
		for i := 1; i < len(m.stack); i++ {
			emitTriangle(out, m.stack[i-1], m.stack[i], v)
		}
		m.stack = append(m.stack[:0], top, v)
		return
	}

	last := top
	m.stack = m.stack[:len(m.stack)-1]
	for len(m.stack) > 0 {
		prev := m.stack[len(m.stack)-1]
		if !convex(prev.pos, last.pos, v.pos, s) {
			break
		}
		emitTriangle(out, prev, last, v)
		last = prev
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.stack = append(m.stack, last, v)
}

// end adds the bottom vertex of the region. This closes the region and
// empties the stack.
func (m *monotoneTessellator) end(p vec.Vec2, id VertexID, out triangleSink) {
	m.vertex(p, id, m.last().side.opposite(), out)
	m.stack = m.stack[:0]
}

// convex reports whether the chain a, b, c on side s turns towards the
// interior of the region at b, so that the triangle abc lies inside.
func convex(a, b, c vec.Vec2, s side) bool {
	turn := cross(b.Sub(a), c.Sub(b))
	if s == sideLeft {
		return turn < 0
	}
	return turn > 0
}

// emitTriangle passes a triangle to out with positive orientation.
// Degenerate triangles are dropped.
func emitTriangle(out triangleSink, a, b, c chainVertex) {
	area := cross(b.pos.Sub(a.pos), c.pos.Sub(a.pos))
	switch {
	case area > 0:
		out.AddTriangle(a.id, b.id, c.id)
	case area < 0:
		out.AddTriangle(a.id, c.id, b.id)
	}
}

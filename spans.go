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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// span is an open monotone region of the filled area, bounded on the left
// and on the right by a chain of edges.
type span struct {
	tess    monotoneTessellator
	removed bool
}

// spanSet holds the open spans, ordered from left to right in the same
// order as the inside runs of the active edge list.
type spanSet struct {
	spans []*span
	pool  []*span
}

func (s *spanSet) len() int {
	return len(s.spans)
}

// newSpan returns an unused span, started at p.
func (s *spanSet) newSpan(p vec.Vec2, v VertexID) *span {
	var sp *span
	if n := len(s.pool); n > 0 {
		sp = s.pool[n-1]
		s.pool = s.pool[:n-1]
		sp.removed = false
	} else {
		sp = &span{}
	}
	sp.tess.begin(p, v)
	return sp
}

// begin inserts a new span at index i, with p as its top vertex.
func (s *spanSet) begin(i int, p vec.Vec2, v VertexID) {
	s.spans = slices.Insert(s.spans, i, s.newSpan(p, v))
}

// vertex adds p to one of the boundary chains of span i.
func (s *spanSet) vertex(i int, p vec.Vec2, v VertexID, sd side, out triangleSink) {
	s.spans[i].tess.vertex(p, v, sd, out)
}

// end closes span i at its bottom vertex p. The span stays in place until
// the next call to sweep.
func (s *spanSet) end(i int, p vec.Vec2, v VertexID, out triangleSink) {
	sp := s.spans[i]
	sp.tess.end(p, v, out)
	sp.removed = true
}

// merge joins spans i and i+1 at p. The vertex becomes the bottom of the
// right chain of span i and of the left chain of span i+1; both spans stay
// open until the merge is resolved at a later vertex.
func (s *spanSet) merge(i int, p vec.Vec2, v VertexID, out triangleSink) {
	s.vertex(i, p, v, sideRight, out)
	s.vertex(i+1, p, v, sideLeft, out)
}

// split divides span i at a vertex p which lies in its interior. The new
// diagonal runs from the most recent vertex of the span to p. The piece
// which owns the pending vertices keeps the old span. Afterwards the left
// piece is at index i and the right piece at index i+1.
func (s *spanSet) split(i int, p vec.Vec2, v VertexID, out triangleSink) {
	sp := s.spans[i]
	h := sp.tess.last()
	piece := s.newSpan(h.pos, h.id)
	if h.side == sideLeft {
		// the old span continues to the right of the diagonal
		piece.tess.vertex(p, v, sideRight, out)
		sp.tess.vertex(p, v, sideLeft, out)
		s.spans = slices.Insert(s.spans, i, piece)
		return
	}
	piece.tess.vertex(p, v, sideLeft, out)
	sp.tess.vertex(p, v, sideRight, out)
	s.spans = slices.Insert(s.spans, i+1, piece)
}

// sweep removes the spans closed since the last call.
func (s *spanSet) sweep() {
	s.spans = slices.DeleteFunc(s.spans, func(sp *span) bool {
		if sp.removed {
			s.pool = append(s.pool, sp)
			return true
		}
		return false
	})
}

// reset drops all spans.
func (s *spanSet) reset() {
	for _, sp := range s.spans {
		sp.removed = true
		s.pool = append(s.pool, sp)
	}
	clear(s.spans)
	s.spans = s.spans[:0]
}

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

// recoverSweep repairs the sweep state before the event at p is retried.
//
// Stale edges and merge placeholders are dropped and the remaining edges
// are re-sorted by their position at the sweep line. The span list is then
// rebuilt from scratch: each inside run of the sorted edges is assigned
// the open spans whose chains end at the upper endpoints of the run's
// boundary edges. Where two assigned spans meet at a merge vertex, a new
// placeholder is inserted. Every open span must be assigned to exactly one
// run; otherwise the pending triangles of some region could not be
// completed, and errSpanMatch is returned.
func (t *FillTessellator) recoverSweep(p vec.Vec2) error {
	edges := slices.DeleteFunc(t.active.entries, func(entry activeEntry) bool {
		e, ok := entry.(*lineEdge)
		return !ok || sweepLess(e.to, p)
	})
	slices.SortStableFunc(edges, func(a, b activeEntry) int {
		return compareAt(a.(*lineEdge), b.(*lineEdge), p.Y)
	})

	old := t.spans.spans
	used := make([]bool, len(old))
	spans := make([]*span, 0, len(old))
	entries := make([]activeEntry, 0, len(edges)+len(old))

	// find returns the first unused span whose left chain ends at left,
	// preferring a span whose right chain ends at right.
	find := func(left, right VertexID) int {
		k := -1
		for i, sp := range old {
			if used[i] {
				continue
			}
			l, r := sp.tess.ends()
			if l.id != left {
				continue
			}
			if r.id == right {
				return i
			}
			if k < 0 {
				k = i
			}
		}
		return k
	}

	ws := windingState{rule: t.Rule}
	var left *lineEdge
	for _, entry := range edges {
		e := entry.(*lineEdge)
		switch ws.cross(e.data.winding) {
		case enter:
			left = e
		case exit:
			i := find(left.fromV, e.fromV)
			for {
				if i < 0 {
					return errSpanMatch
				}
				used[i] = true
				spans = append(spans, old[i])
				_, r := old[i].tess.ends()
				if r.id == e.fromV {
					break
				}
				entries = append(entries, &mergePlaceholder{pos: r.pos, v: r.id})
				i = find(r.id, e.fromV)
			}
		}
		entries = append(entries, e)
	}
	if ws.inside() || len(spans) != len(old) {
		return errSpanMatch
	}

	t.active.entries = entries
	t.spans.spans = spans
	t.logger().Warn("sweep recovered", "x", p.X, "y", p.Y,
		"edges", len(edges), "spans", len(spans))
	return nil
}

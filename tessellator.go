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
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the default flattening tolerance in device units.
const DefaultTolerance = 0.25

// FillTessellator converts filled paths into triangle meshes.
//
// The zero value is not ready for use; create instances with
// NewFillTessellator. A FillTessellator keeps its internal buffers between
// calls and must not be used concurrently.
type FillTessellator struct {
	// Rule selects which points are inside the path.
	Rule FillRule

	// CTM maps path coordinates to output coordinates.
	// The default is the identity matrix.
	CTM matrix.Matrix

	// Tolerance is the maximum distance, in output coordinates, between a
	// curve and the straight edges which replace it.
	Tolerance float64

	// Logger receives diagnostic messages. If nil, nothing is logged.
	Logger *slog.Logger

	queue   eventQueue
	active  activeList
	spans   spanSet
	coords  []vec.Vec2
	subpath []vertexRef
	flat    []vec.Vec2

	cur    int // index of the event being processed
	below  []pendingEdge
	splits []int
	above  []transition // transitions at the connecting entries
	under  []transition // transitions at the edges below
	repl   []activeEntry
}

// NewFillTessellator creates a tessellator with the non-zero winding rule,
// the identity transformation and the default tolerance.
func NewFillTessellator() *FillTessellator {
	return &FillTessellator{
		Rule:      NonZero,
		CTM:       matrix.Identity,
		Tolerance: DefaultTolerance,
	}
}

// Reset restores the default settings and releases references held by the
// internal buffers. The capacity of the buffers is kept.
func (t *FillTessellator) Reset() {
	t.Rule = NonZero
	t.CTM = matrix.Identity
	t.Tolerance = DefaultTolerance
	t.active.reset()
	t.spans.reset()
	t.queue.reset()
}

// Tessellate converts the area enclosed by p into triangles and passes
// them to out.
//
// Open subpaths are closed implicitly. Every distinct position visited by
// the sweep produces exactly one vertex, and every triangle is positively
// oriented.
//
// If p is malformed, an error wrapping ErrInvalidPath is returned and out
// is not used. If the sweep fails, out.AbortGeometry is called and the
// returned error is a *SweepError which matches ErrTessellation.
func (t *FillTessellator) Tessellate(p *path.Data, out GeometryBuilder) error {
	if err := t.buildEvents(p); err != nil {
		return err
	}
	t.active.reset()
	t.spans.reset()

	log := t.logger()
	log.Debug("tessellating", "events", len(t.queue.events), "rule", t.Rule)

	out.BeginGeometry()
	var last vec.Vec2
	for t.cur = 0; t.cur < len(t.queue.events); t.cur++ {
		ev := t.queue.events[t.cur]
		last = ev.pos
		v := out.AddVertex(ev.pos)

		err := t.processEvent(ev, v, out)
		if err == nil {
			continue
		}
		log.Warn("sweep inconsistent", "x", ev.pos.X, "y", ev.pos.Y, "err", err)
		if rerr := t.recoverSweep(ev.pos); rerr != nil {
			log.Warn("sweep not recoverable", "x", ev.pos.X, "y", ev.pos.Y, "err", rerr)
			return t.fail(out, ev.pos, err)
		}
		if err := t.processEvent(ev, v, out); err != nil {
			return t.fail(out, ev.pos, err)
		}
	}
	if len(t.active.entries) > 0 || t.spans.len() > 0 {
		return t.fail(out, last, errUnclosed)
	}

	count := out.EndGeometry()
	log.Debug("tessellation done",
		"vertices", count.Vertices, "triangles", count.Triangles)
	return nil
}

func (t *FillTessellator) fail(out GeometryBuilder, pos vec.Vec2, err error) error {
	t.logger().Error("tessellation failed", "x", pos.X, "y", pos.Y, "err", err)
	out.AbortGeometry()
	t.active.reset()
	t.spans.reset()
	return &SweepError{Pos: pos, Err: err}
}

// processEvent handles all path vertices and edges at one position.
//
// The event is first classified without changing any state. Errors are
// only reported during classification, so that a failed event can be
// retried after the sweep state has been repaired.
func (t *FillTessellator) processEvent(ev event, v VertexID, out triangleSink) error {
	p := ev.pos

	t.below = t.below[:0]
	for r := ev.first; r >= 0; r = t.queue.records[r].next {
		rec := &t.queue.records[r]
		t.below = append(t.below, newPendingEdge(p, rec.to, rec.data))
	}

	start, end, splits, err := t.active.scan(p, t.splits[:0])
	t.splits = splits
	if err != nil {
		return err
	}
	entries := t.active.entries

	// edges passing through p continue below it
	for _, i := range splits {
		e := entries[i].(*lineEdge)
		rest := e.data
		rest.fromID = noID
		t.below = append(t.below, newPendingEdge(p, e.to, rest))
	}
	sortBelow(t.below)

	ws := windingState{rule: t.Rule}
	for _, entry := range entries[:start] {
		if err := ws.pass(entry); err != nil {
			return err
		}
	}
	k0 := ws.spans
	inLeft := ws.inside()
	windingLeft := ws.number

	t.above = t.above[:0]
	for _, entry := range entries[start:end] {
		switch entry := entry.(type) {
		case *lineEdge:
			if tr := ws.cross(entry.data.winding); tr != noTransition {
				t.above = append(t.above, tr)
			}
		case *mergePlaceholder:
			if !ws.divide() {
				return errMergeOutside
			}
			t.above = append(t.above, exit, enter)
		}
	}
	inRight := ws.inside()
	windingRight := ws.number

	for _, entry := range entries[end:] {
		if err := ws.pass(entry); err != nil {
			return err
		}
	}
	if ws.spans != t.spans.len() || inLeft && k0 == 0 {
		return errSpanCount
	}

	wb := windingState{rule: t.Rule, number: windingLeft}
	t.under = t.under[:0]
	for i := range t.below {
		if tr := wb.cross(t.below[i].data.winding); tr != noTransition {
			t.under = append(t.under, tr)
		}
	}
	if wb.number != windingRight {
		return errSweepOrder
	}

	above, under := t.above, t.under
	merge := inLeft && inRight && len(above) > 0 && len(under) == 0
	split := inLeft && len(above) == 0 && len(under) > 0

	log := t.logger()
	log.Debug("event", "x", p.X, "y", p.Y,
		"kind", eventKind(inLeft, inRight, above, under),
		"above", end-start, "below", len(t.below))

	// From here on the state is modified and nothing can fail.

	for _, i := range splits {
		entries[i].(*lineEdge).setTo(p)
	}

	idx := k0
	for j, tr := range above {
		switch tr {
		case exit:
			if j == 0 {
				if !merge {
					t.spans.vertex(k0-1, p, v, sideRight, out)
				}
			} else {
				t.spans.end(idx-1, p, v, out)
			}
		case enter:
			idx++
			if j == len(above)-1 && inRight && !merge {
				t.spans.vertex(idx-1, p, v, sideLeft, out)
			}
		}
	}
	t.spans.sweep()
	if merge {
		t.spans.merge(k0-1, p, v, out)
	}
	if split {
		t.spans.split(k0-1, p, v, out)
	}

	ins := k0
	for j, tr := range under {
		if tr != enter || j == len(under)-1 && inRight {
			continue
		}
		t.spans.begin(ins, p, v)
		ins++
	}

	t.splitOverlaps(p)
	repl := t.repl[:0]
	if merge {
		repl = append(repl, &mergePlaceholder{pos: p, v: v})
	}
	for i := range t.below {
		repl = append(repl, newLineEdge(p, v, &t.below[i]))
	}
	t.active.entries = slices.Replace(t.active.entries, start, end, repl...)
	clear(repl)
	t.repl = repl[:0]

	t.checkIntersections(p, start, start+len(repl))
	return nil
}

// pass moves the state over an active entry which does not connect to the
// current event.
func (w *windingState) pass(entry activeEntry) error {
	switch entry := entry.(type) {
	case *lineEdge:
		w.cross(entry.data.winding)
	case *mergePlaceholder:
		if !w.divide() {
			return errMergeOutside
		}
	}
	return nil
}

// eventKind names the event type for diagnostic output.
func eventKind(inLeft, inRight bool, above, under []transition) string {
	switch {
	case inLeft && inRight && len(above) > 0 && len(under) == 0:
		return "merge"
	case inLeft && len(above) == 0 && len(under) > 0:
		return "split"
	case len(above) == 0 && len(under) == 0:
		return "interior"
	case len(above) == 0:
		return "start"
	case len(under) == 0:
		return "end"
	case inLeft && !inRight:
		return "right"
	case inRight && !inLeft:
		return "left"
	default:
		return "regular"
	}
}

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

import "fmt"

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	// NonZero fills every point with a nonzero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Inside reports whether a point with winding number w is filled.
func (r FillRule) Inside(w int) bool {
	if r == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// transition describes how crossing an edge changes the fill state.
type transition uint8

const (
	noTransition transition = iota
	enter                   // outside to inside
	exit                    // inside to outside
)

func (tr transition) String() string {
	switch tr {
	case enter:
		return "enter"
	case exit:
		return "exit"
	default:
		return "none"
	}
}

// windingState accumulates the winding number while the active edges are
// walked from left to right. It also counts the spans passed so far: every
// inside run starts a span, and a merge placeholder inside a run starts
// another one.
type windingState struct {
	rule   FillRule
	number int
	spans  int
}

func (w *windingState) inside() bool {
	return w.rule.Inside(w.number)
}

// cross moves the state over an edge with the given winding.
func (w *windingState) cross(winding int8) transition {
	before := w.inside()
	w.number += int(winding)
	after := w.inside()
	switch {
	case !before && after:
		w.spans++
		return enter
	case before && !after:
		return exit
	default:
		return noTransition
	}
}

// divide moves the state over a merge placeholder. Placeholders separate
// two spans of the same inside run; ok is false if the state is outside.
func (w *windingState) divide() (ok bool) {
	if !w.inside() {
		return false
	}
	w.spans++
	return true
}

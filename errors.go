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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrInvalidPath is returned when the input path cannot be interpreted,
	// for example because a coordinate is NaN or a command lacks its
	// coordinates. The output sink is never begun in this case.
	ErrInvalidPath = errors.New("tessellate: invalid path")

	// ErrTessellation is returned when the sweep reaches an inconsistent
	// state which a recovery pass could not repair. The output sink is
	// aborted in this case.
	ErrTessellation = errors.New("tessellate: inconsistent sweep state")
)

// Faults detected while classifying a single event. These are recovered
// from once; if they persist, they are reported wrapped in a SweepError.
var (
	errSweepOrder   = errors.New("active edges out of order")
	errMergeOutside = errors.New("merge placeholder outside the filled region")
	errSpanCount    = errors.New("open spans do not match the active edges")
	errSpanMatch    = errors.New("open spans cannot be assigned to the active edges")
	errUnclosed     = errors.New("spans left open after the last event")
)

// SweepError describes a fatal failure of the sweep at a given position.
// It matches ErrTessellation under errors.Is.
type SweepError struct {
	Pos vec.Vec2 // event position in device coordinates
	Err error    // underlying cause
}

func (e *SweepError) Error() string {
	return fmt.Sprintf("tessellate: sweep failed at (%g, %g): %v", e.Pos.X, e.Pos.Y, e.Err)
}

func (e *SweepError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTessellation.
func (e *SweepError) Is(target error) bool {
	return target == ErrTessellation
}

// invalidPath wraps ErrInvalidPath with the index of the offending command.
func invalidPath(cmdIdx int, reason string) error {
	return fmt.Errorf("%w: command %d: %s", ErrInvalidPath, cmdIdx, reason)
}

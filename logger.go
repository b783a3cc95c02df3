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
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards all records.
// Enabled returns false, so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// logger returns the configured logger, or a silent one if none is set.
//
// Log levels used:
//   - [slog.LevelDebug]: per-event classification (start, end, merge, ...)
//   - [slog.LevelWarn]: a recovery pass was needed
//   - [slog.LevelError]: the sweep failed and the output was aborted
func (t *FillTessellator) logger() *slog.Logger {
	if t.Logger == nil {
		return nopLogger
	}
	return t.Logger
}

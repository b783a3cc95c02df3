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

package svgpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *path.Data
	}{
		{
			name: "triangle",
			in:   "M0 0 L10 0 L5 8 Z",
			want: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				LineTo(vec.Vec2{X: 10, Y: 0}).
				LineTo(vec.Vec2{X: 5, Y: 8}).
				Close(),
		},
		{
			name: "relative",
			in:   "m1,1 h2 v2 h-2 z",
			want: (&path.Data{}).
				MoveTo(vec.Vec2{X: 1, Y: 1}).
				LineTo(vec.Vec2{X: 3, Y: 1}).
				LineTo(vec.Vec2{X: 3, Y: 3}).
				LineTo(vec.Vec2{X: 1, Y: 3}).
				Close(),
		},
		{
			name: "implicit lineto",
			in:   "M0 0 1 0 1 1",
			want: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				LineTo(vec.Vec2{X: 1, Y: 0}).
				LineTo(vec.Vec2{X: 1, Y: 1}),
		},
		{
			name: "compact numbers",
			in:   "M.5-1.5L2.5.5",
			want: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0.5, Y: -1.5}).
				LineTo(vec.Vec2{X: 2.5, Y: 0.5}),
		},
		{
			name: "smooth cubic",
			in:   "M0 0 C0 1 1 2 2 2 S4 1 4 0",
			want: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				CubeTo(vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 2, Y: 2}).
				CubeTo(vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 4, Y: 1}, vec.Vec2{X: 4, Y: 0}),
		},
		{
			name: "smooth quadratic",
			in:   "M0 0 Q1 1 2 0 t2 0",
			want: (&path.Data{}).
				MoveTo(vec.Vec2{X: 0, Y: 0}).
				QuadTo(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 0}).
				QuadTo(vec.Vec2{X: 3, Y: -1}, vec.Vec2{X: 4, Y: 0}),
		},
		{
			name: "empty",
			in:   "  ",
			want: &path.Data{},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want.Cmds, got.Cmds, cmpopts.EquateEmpty()); d != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", d)
			}
			if d := cmp.Diff(test.want.Coords, got.Coords, cmpopts.EquateEmpty()); d != "" {
				t.Errorf("coordinates mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"10 10",
		"M0",
		"M0 0 L",
		"M0 0 A1 1 0 0 1 2 2",
		"M0 0 Z 1 1",
	} {
		_, err := Parse(in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v, want %v", in, err, ErrSyntax)
		}
	}
}

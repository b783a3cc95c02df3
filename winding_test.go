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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFillRuleInside(t *testing.T) {
	cases := []struct {
		rule FillRule
		w    int
		want bool
	}{
		{NonZero, 0, false},
		{NonZero, 1, true},
		{NonZero, -1, true},
		{NonZero, 2, true},
		{EvenOdd, 0, false},
		{EvenOdd, 1, true},
		{EvenOdd, -1, true},
		{EvenOdd, 2, false},
		{EvenOdd, -3, true},
	}
	for _, c := range cases {
		if got := c.rule.Inside(c.w); got != c.want {
			t.Errorf("%s.Inside(%d) = %t, want %t", c.rule, c.w, got, c.want)
		}
	}
}

func TestFillRuleString(t *testing.T) {
	for rule, want := range map[FillRule]string{
		NonZero:     "nonzero",
		EvenOdd:     "evenodd",
		FillRule(7): "FillRule(7)",
	} {
		if got := rule.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestWindingTransitions(t *testing.T) {
	windings := []int8{1, 1, -1, -1, 1, -1}
	cases := []struct {
		rule FillRule
		want []transition
	}{
		{NonZero, []transition{enter, noTransition, noTransition, exit, enter, exit}},
		{EvenOdd, []transition{enter, exit, enter, exit, enter, exit}},
	}
	for _, c := range cases {
		ws := windingState{rule: c.rule}
		var got []transition
		for _, w := range windings {
			got = append(got, ws.cross(w))
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: transitions (-want +got):\n%s", c.rule, d)
		}
		if ws.number != 0 {
			t.Errorf("%s: final winding %d, want 0", c.rule, ws.number)
		}
		wantSpans := 2
		if c.rule == EvenOdd {
			wantSpans = 3
		}
		if ws.spans != wantSpans {
			t.Errorf("%s: %d spans, want %d", c.rule, ws.spans, wantSpans)
		}
	}
}

func TestWindingDivide(t *testing.T) {
	ws := windingState{rule: NonZero}
	if ws.divide() {
		t.Error("divide succeeded outside the filled region")
	}
	ws.cross(1)
	if !ws.divide() {
		t.Error("divide failed inside the filled region")
	}
	if ws.spans != 2 {
		t.Errorf("%d spans, want 2", ws.spans)
	}
}

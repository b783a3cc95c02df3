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

// Package svgpath reads path data in the syntax of the SVG "d" attribute.
package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrSyntax is returned for malformed path data.
var ErrSyntax = errors.New("svgpath: syntax error")

// Parse converts SVG path data into a path.
//
// The commands M, L, H, V, C, S, Q, T and Z are supported, both in
// absolute and relative form. Elliptical arcs are not supported.
func Parse(s string) (*path.Data, error) {
	b := []byte(s)
	p := &path.Data{}

	var cur, start, ctrl vec.Vec2
	var prevCmd byte

	i := skipCommaWhitespace(b)
	for i < len(b) {
		cmd := prevCmd
		if c := b[i]; c >= 'A' {
			cmd = c
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, syntaxError(i, "expected command")
		}

		// read the arguments of one command
		var args [6]float64
		nArgs := numArgs(cmd)
		if nArgs < 0 {
			return nil, syntaxError(i-1, fmt.Sprintf("unsupported command %q", cmd))
		}
		for k := range nArgs {
			f, n := parseNum(b[i:])
			if n == 0 {
				return nil, syntaxError(i, "expected number")
			}
			args[k] = f
			i += n
		}

		rel := cmd >= 'a'
		pt := func(k int) vec.Vec2 {
			v := vec.Vec2{X: args[k], Y: args[k+1]}
			if rel {
				v = v.Add(cur)
			}
			return v
		}

		next := cmd
		switch cmd {
		case 'M', 'm':
			cur = pt(0)
			start = cur
			p.MoveTo(cur)
			// further coordinate pairs are implicit line commands
			next = 'L'
			if rel {
				next = 'l'
			}
		case 'L', 'l':
			cur = pt(0)
			p.LineTo(cur)
		case 'H', 'h':
			x := args[0]
			if rel {
				x += cur.X
			}
			cur = vec.Vec2{X: x, Y: cur.Y}
			p.LineTo(cur)
		case 'V', 'v':
			y := args[0]
			if rel {
				y += cur.Y
			}
			cur = vec.Vec2{X: cur.X, Y: y}
			p.LineTo(cur)
		case 'C', 'c':
			c1, c2, end := pt(0), pt(2), pt(4)
			p.CubeTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'S', 's':
			c1 := cur
			if isCubic(prevCmd) {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			c2, end := pt(0), pt(2)
			p.CubeTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'Q', 'q':
			c, end := pt(0), pt(2)
			p.QuadTo(c, end)
			ctrl, cur = c, end
		case 'T', 't':
			c := cur
			if isQuad(prevCmd) {
				c = cur.Mul(2).Sub(ctrl)
			}
			end := pt(0)
			p.QuadTo(c, end)
			ctrl, cur = c, end
		case 'Z', 'z':
			p.Close()
			cur = start
		}
		prevCmd = next
		i += skipCommaWhitespace(b[i:])
	}
	return p, nil
}

func numArgs(cmd byte) int {
	switch cmd {
	case 'Z', 'z':
		return 0
	case 'H', 'h', 'V', 'v':
		return 1
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'Q', 'q', 'S', 's':
		return 4
	case 'C', 'c':
		return 6
	default:
		return -1
	}
}

func isCubic(cmd byte) bool {
	return cmd == 'C' || cmd == 'c' || cmd == 'S' || cmd == 's'
}

func isQuad(cmd byte) bool {
	return cmd == 'Q' || cmd == 'q' || cmd == 'T' || cmd == 't'
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func parseNum(b []byte) (float64, int) {
	i := skipCommaWhitespace(b)
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0, 0
	}
	return f, i + n
}

func syntaxError(pos int, msg string) error {
	return fmt.Errorf("%w at byte %d: %s", ErrSyntax, pos, msg)
}

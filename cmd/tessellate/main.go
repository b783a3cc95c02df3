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

// Command tessellate converts SVG path data into a triangle mesh and
// reports on the result.
//
// Usage:
//
//	tessellate [-r evenodd] [-o mesh.png] [-p mesh.pdf] PATHDATA
//	tessellate stroke [-w width] [--cap round] [--dash "4 2"] PATHDATA
//	tessellate check PATHDATA
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/bezier"
	"seehuhn.de/go/tessellate/internal/draw"
	"seehuhn.de/go/tessellate/raster"
	"seehuhn.de/go/tessellate/stroke"
	"seehuhn.de/go/tessellate/svgpath"
)

// Fill tessellates the interior of a path.
type Fill struct {
	Rule      string  `short:"r" default:"nonzero" desc:"Fill rule (nonzero or evenodd)"`
	Tolerance float64 `short:"t" default:"0.25" desc:"Curve flattening tolerance"`
	Scale     int     `short:"s" default:"4" desc:"Pixels per unit in the PNG output"`
	Output    string  `short:"o" default:"" desc:"PNG output file"`
	PDF       string  `short:"p" default:"" desc:"PDF output file"`
	Verbose   bool    `short:"v" desc:"Log the sweep events"`
	Input     string  `index:"0" desc:"SVG path data"`
}

// Stroke tessellates the outline of a stroked path.
type Stroke struct {
	Tolerance  float64 `short:"t" default:"0.25" desc:"Curve flattening tolerance"`
	Scale      int     `short:"s" default:"4" desc:"Pixels per unit in the PNG output"`
	Output     string  `short:"o" default:"" desc:"PNG output file"`
	PDF        string  `short:"p" default:"" desc:"PDF output file"`
	Verbose    bool    `short:"v" desc:"Log the sweep events"`
	Width      float64 `short:"w" default:"1" desc:"Line width"`
	Cap        string  `default:"butt" desc:"Line cap (butt, round or square)"`
	Join       string  `default:"miter" desc:"Line join (miter, round or bevel)"`
	MiterLimit float64 `default:"10" desc:"Miter limit"`
	Dash       string  `default:"" desc:"Dash pattern, as a list of lengths"`
	DashPhase  float64 `default:"0" desc:"Dash phase"`
	Input      string  `index:"0" desc:"SVG path data"`
}

// Check lists the self-intersections of a path.
type Check struct {
	Tolerance float64 `short:"t" default:"1e-6" desc:"Intersection tolerance"`
	Input     string  `index:"0" desc:"SVG path data"`
}

func main() {
	root := argp.NewCmd(&Fill{}, "Triangulate filled and stroked 2D paths")
	root.AddCmd(&Stroke{}, "stroke", "Triangulate the outline of a stroke")
	root.AddCmd(&Check{}, "check", "List self-intersections of a path")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Fill) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	rule, err := parseRule(cmd.Rule)
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}
	p, err := svgpath.Parse(cmd.Input)
	if err != nil {
		return err
	}
	out := output{cmd.Tolerance, cmd.Scale, cmd.Output, cmd.PDF, cmd.Verbose}
	return out.tessellate(p, rule, nil)
}

func (cmd *Stroke) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	o := stroke.NewOutliner()
	o.Width = cmd.Width
	o.MiterLimit = cmd.MiterLimit
	o.DashPhase = cmd.DashPhase
	o.Tolerance = cmd.Tolerance

	var err error
	if o.Cap, err = parseCap(cmd.Cap); err == nil {
		if o.Join, err = parseJoin(cmd.Join); err == nil {
			o.Dash, err = parseDash(cmd.Dash)
		}
	}
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}

	p, err := svgpath.Parse(cmd.Input)
	if err != nil {
		return err
	}
	out := output{cmd.Tolerance, cmd.Scale, cmd.Output, cmd.PDF, cmd.Verbose}
	return out.tessellate(o.Outline(p), tessellate.NonZero, p)
}

func (cmd *Check) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	p, err := svgpath.Parse(cmd.Input)
	if err != nil {
		return err
	}

	opts := bezier.DefaultIntersectOptions
	opts.Tolerance = cmd.Tolerance
	hits, err := bezier.PathIntersections(p, &opts)
	for _, h := range hits {
		fmt.Printf("segments %d and %d meet at (%g, %g)\n", h.Seg1, h.Seg2, h.Pos.X, h.Pos.Y)
	}
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("no self-intersections")
	}
	return nil
}

// output holds the settings shared by the fill and stroke commands.
type output struct {
	tolerance float64
	scale     int
	png       string
	pdf       string
	verbose   bool
}

// tessellate triangulates p and writes the requested outputs. If outline
// is not nil, it is drawn on top of the mesh in the PDF output.
func (out output) tessellate(p *path.Data, rule tessellate.FillRule, outline *path.Data) error {
	t := tessellate.NewFillTessellator()
	t.Rule = rule
	t.Tolerance = out.tolerance
	if out.verbose {
		t.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var buf tessellate.VertexBuffers
	if err := t.Tessellate(p, &buf); err != nil {
		return err
	}

	b := buf.Bounds()
	fmt.Printf("vertices:  %d\n", len(buf.Vertices))
	fmt.Printf("triangles: %d\n", buf.NumTriangles())
	fmt.Printf("area:      %g\n", buf.Area())
	fmt.Printf("bounds:    [%g, %g] x [%g, %g]\n", b.LLx, b.URx, b.LLy, b.URy)

	if buf.NumTriangles() == 0 {
		return nil
	}
	clip := rect.Rect{
		LLx: math.Floor(b.LLx), LLy: math.Floor(b.LLy),
		URx: math.Ceil(b.URx), URy: math.Ceil(b.URy),
	}
	if clip.URx == clip.LLx {
		clip.URx++
	}
	if clip.URy == clip.LLy {
		clip.URy++
	}
	diff := compareCoverage(p, rule, t.Tolerance, &buf, clip)
	fmt.Printf("coverage:  max deviation %.4f from the rasterized path\n", diff)

	width, height := int(clip.URx)+1, int(clip.URy)+1
	if out.png != "" {
		img := draw.Image(width, height, &buf, out.scale)
		f, err := os.Create(out.png)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if out.pdf != "" {
		if outline == nil {
			outline = p
		}
		if err := draw.PDF(out.pdf, width, height, &buf, outline, matrix.Identity); err != nil {
			return err
		}
	}
	return nil
}

// compareCoverage rasterizes both the path and the mesh and returns the
// largest difference in pixel coverage.
func compareCoverage(p *path.Data, rule tessellate.FillRule, tol float64, m raster.Mesh, clip rect.Rect) float64 {
	w, h := int(clip.URx-clip.LLx), int(clip.URy-clip.LLy)
	want := make([]float32, w*h)
	got := make([]float32, w*h)

	r := raster.NewRasterizer(clip)
	r.Tolerance = tol
	if rule == tessellate.EvenOdd {
		r.FillEvenOdd(p, raster.Store(want, w, clip))
	} else {
		r.FillNonZero(p, raster.Store(want, w, clip))
	}
	r.FillMesh(m, raster.Store(got, w, clip))

	var diff float64
	for i := range want {
		diff = max(diff, math.Abs(float64(got[i]-want[i])))
	}
	return diff
}

func parseRule(s string) (tessellate.FillRule, error) {
	switch strings.ToLower(s) {
	case "nonzero":
		return tessellate.NonZero, nil
	case "evenodd":
		return tessellate.EvenOdd, nil
	}
	return 0, fmt.Errorf("unknown fill rule %q", s)
}

func parseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("unknown line cap %q", s)
}

func parseJoin(s string) (graphics.LineJoinStyle, error) {
	switch strings.ToLower(s) {
	case "miter":
		return graphics.LineJoinMiter, nil
	case "round":
		return graphics.LineJoinRound, nil
	case "bevel":
		return graphics.LineJoinBevel, nil
	}
	return 0, fmt.Errorf("unknown line join %q", s)
}

func parseDash(s string) ([]float64, error) {
	var dash []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dash length %q", f)
		}
		dash = append(dash, x)
	}
	return dash, nil
}

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

// Command genpdf writes one PDF file per test case, showing the triangle
// mesh together with the outline of the input path.
// Run from the module root directory.
package main

import (
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/internal/draw"
	"seehuhn.de/go/tessellate/testcases"
)

const outDir = "testdata/meshes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generatePDF(tc, filepath.Join(outDir, name+".pdf")); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, fname string) error {
	var buf tessellate.VertexBuffers
	if err := tc.Tessellate(&buf); err != nil {
		return err
	}
	fmt.Printf("%-40s %5d vertices %5d triangles\n",
		filepath.Base(fname), len(buf.Vertices), buf.NumTriangles())
	return draw.PDF(fname, tc.Width, tc.Height, &buf, tc.Path, tc.Matrix())
}

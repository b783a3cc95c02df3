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

// Command export writes the meshes of all test cases to a JSON file.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/tessellate"
	"seehuhn.de/go/tessellate/testcases"
)

func main() {
	out := flag.String("o", "testdata/meshes.json", "output file")
	flag.Parse()

	var all struct {
		Meshes []jsonMesh `json:"meshes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			m, err := toJSON(category, tc)
			if err != nil {
				log.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
			all.Meshes = append(all.Meshes, m)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = errors.Join(enc.Encode(all), f.Close())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d meshes to %s\n", len(all.Meshes), *out)
}

type jsonMesh struct {
	Name      string       `json:"name"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	FillRule  string       `json:"fill_rule"`
	Stroke    bool         `json:"stroke,omitempty"`
	Vertices  [][2]float64 `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
	Area      float64      `json:"area"`
}

func toJSON(category string, tc testcases.TestCase) (jsonMesh, error) {
	var buf tessellate.VertexBuffers
	if err := tc.Tessellate(&buf); err != nil {
		return jsonMesh{}, err
	}
	_, rule := tc.FillPath()

	m := jsonMesh{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		FillRule: rule.String(),
		Stroke:   tc.Stroke != nil,
		Area:     buf.Area(),
	}
	m.Vertices = make([][2]float64, len(buf.Vertices))
	for i, v := range buf.Vertices {
		m.Vertices[i] = [2]float64{v.X, v.Y}
	}
	m.Triangles = make([][3]int, 0, buf.NumTriangles())
	for i := 0; i+2 < len(buf.Indices); i += 3 {
		idx := buf.Indices[i : i+3]
		m.Triangles = append(m.Triangles, [3]int{int(idx[0]), int(idx[1]), int(idx[2])})
	}
	return m, nil
}

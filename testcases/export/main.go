// seehuhn.de/go/tiles - polygon rasterization onto integer grids
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

// Command export writes the test case definitions, together with the
// tiles produced for each of them, to JSON.  The output is meant for
// comparison with other rasterizers.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/tiles"
	"seehuhn.de/go/tiles/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	CTM    []float64     `json:"ctm,omitempty"`
	Path   []jsonSegment `json:"path"`
	Bounds [4]int        `json:"bounds"` // x, y, width, height
	Rows   []jsonRow     `json:"rows"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonRow struct {
	Y  int   `json:"y"`
	Xs []int `json:"x"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	r := tiles.NewRasterizer()
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	mask, err := r.RasterizePath(tc.Commands())
	if err != nil {
		return jsonTestCase{}, err
	}

	b := mask.Bounds()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Path:   pathToJSON(tc.Commands()),
		Bounds: [4]int{b.X, b.Y, b.Width, b.Height},
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	for y := b.Y; y <= b.MaxY(); y++ {
		xs := slices.Collect(mask.Row(y))
		if len(xs) > 0 {
			jtc.Rows = append(jtc.Rows, jsonRow{Y: y, Xs: xs})
		}
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

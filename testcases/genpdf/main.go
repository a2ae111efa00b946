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

// Command genpdf draws every test case into a PDF file, for visual
// inspection.  Each file shows the rasterized tiles in grey, with the
// outline of the input shape on top.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/tiles"
	"seehuhn.de/go/tiles/testcases"
)

const (
	outDir = "testdata/pdf"

	// tileSize is the side length of one tile, in PDF points.
	tileSize = 12.0
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	r := tiles.NewRasterizer()
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	mask, err := r.RasterizePath(tc.Commands())
	if err != nil {
		return err
	}
	b := mask.Bounds()

	// one tile of margin on every side
	paper := &pdf.Rectangle{
		URx: float64(b.Width+2) * tileSize,
		URy: float64(b.Height+2) * tileSize,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Map grid coordinates to PDF coordinates.  Grid y grows downwards,
	// PDF y grows upwards.
	page.Transform(matrix.Matrix{
		tileSize, 0,
		0, -tileSize,
		(float64(1-b.X) + 0.5) * tileSize,
		paper.URy - (float64(1-b.Y)+0.5)*tileSize,
	})

	page.SetFillColor(color.DeviceGray(0.75))
	for t := range mask.Tiles() {
		page.Rectangle(float64(t.X)-0.5, float64(t.Y)-0.5, 1, 1)
	}
	page.Fill()

	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.08)
	page.SetLineJoin(graphics.LineJoinRound)
	current := tc.Path.Coords[0]
	for cmd, pts := range tc.Commands() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdQuadTo:
			// PDF has no quadratic curves; use the equivalent cubic
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3.0))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			current = pts[1]
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			current = pts[2]
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	return page.Close()
}

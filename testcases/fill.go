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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var basicCases = []TestCase{
	{
		Name: "triangle",
		Path: triangle(0, 0, 20, 5, 10, 10),
	},
	{
		Name: "triangle_fractional",
		Path: triangle(6.60156925537876, 2.19927888657355,
			4.28376357283713, 3.48064706953204,
			5.1318503223609, 5.01471066926644),
	},
	{
		Name: "square",
		Path: rectangle(0, 0, 3, 3),
	},
	{
		Name: "rectangle_offset",
		Path: rectangle(-7.3, -2.6, 12.2, 9.7),
	},
	{
		Name: "diamond",
		Path: polygon(10, 0, 20, 10, 10, 20, 0, 10),
	},
	{
		Name: "arrow",
		Path: polygon(0, 4, 12, 4, 12, 0, 20, 8, 12, 16, 12, 12, 0, 12),
	},
	{
		Name: "hexagon",
		Path: regularPolygon(16, 16, 12, 6),
	},
}

var chainCases = []TestCase{
	{
		Name: "notch",
		Path: polygon(0, 10, 10, 10, 10, 20, 20, 20, 20, 0, 30, 0, 30, 30, 0, 30),
	},
	{
		Name: "battlements",
		Path: polygon(
			0, 10, 10, 10, 10, 20, 20, 20, 20, 0, 30, 0, 30, 30, 40, 30,
			40, 20, 50, 20, 50, 30, 60, 30, 60, 20, 70, 20, 70, 40, 0, 40),
	},
	{
		Name: "collinear_run",
		Path: polygon(0, 0, 2, 0, 4, 0, 6, 0, 8, 0, 8, 6, 0, 6),
	},
	{
		Name: "staircase",
		Path: polygon(0, 0, 4, 0, 4, 2, 8, 2, 8, 4, 12, 4, 12, 8, 0, 8),
	},
	{
		Name: "almost_horizontal",
		Path: polygon(0, 0, 10, 0, 10, 10+1e-11, 20, 10-1e-11, 30, 10, 30, 30, 0, 30),
	},
	{
		Name: "vertex_on_row",
		Path: polygon(0, 0.5, 6, 3, 0, 5.5),
	},
}

var sliverCases = []TestCase{
	{
		Name: "sub_tile",
		Path: triangle(0, 0, 0.1, 0, 0.1, 0.1),
	},
	{
		Name: "thin_vertical",
		Path: rectangle(0, 0, 0.1, 4.1),
	},
	{
		Name: "thin_horizontal",
		Path: rectangle(0, 0, 4.1, 0.1),
	},
	{
		Name: "flat",
		Path: polygon(0, 3, 4, 3, 9, 3),
	},
}

// regularPolygon builds a regular polygon with n corners.
func regularPolygon(cx, cy, r float64, n int) *path.Data {
	coords := make([]float64, 0, 2*n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		coords = append(coords, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(coords...)
}

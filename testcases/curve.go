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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name: "circle",
		Path: circle(16, 16, 12),
	},
	{
		Name: "circle_scaled",
		Path: circle(0, 0, 1),
		CTM:  matrix.Scale(10, 10).Translate(12, 12),
	},
	{
		Name: "ellipse_rotated",
		Path: ellipse(0, 0, 14, 6),
		CTM:  matrix.RotateDeg(30).Translate(20, 20),
	},
	{
		Name: "quadratic_lens",
		Path: (&path.Data{}).
			MoveTo(pt(2, 10)).
			QuadTo(pt(14, -2), pt(26, 10)).
			QuadTo(pt(14, 22), pt(2, 10)).
			Close(),
	},
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}

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

// Package testcases holds the shapes used to test and benchmark the
// rasterizer, and by the tools which render them for visual inspection.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name string        // lowercase a-z, 0-9 and _ only
	Path *path.Data    // a single closed subpath
	CTM  matrix.Matrix // input to grid coordinates (zero-value means no transform)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given vertices.
// The arguments are x0, y0, x1, y1, ...
func polygon(coords ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p = p.LineTo(pt(coords[i], coords[i+1]))
	}
	return p.Close()
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return polygon(x1, y1, x2, y2, x3, y3)
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}

// Commands returns the path of the test case as an iterator.
func (tc TestCase) Commands() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		p := tc.Path
		coordIdx := 0
		for _, cmd := range p.Cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, p.Coords[coordIdx:coordIdx+n]) {
				return
			}
			coordIdx += n
		}
	}
}

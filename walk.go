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

package tiles

import "iter"

// LineTiles iterates over the tiles on the digital line from a to b,
// both ends included.  The tiles are produced with Bresenham's algorithm,
// so each step moves by one tile along the major axis.  For horizontal
// lines this is the run of all tiles between a and b.
func LineTiles(a, b Tile) iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		dx, stepX := b.X-a.X, 1
		if dx < 0 {
			dx, stepX = -dx, -1
		}
		dy, stepY := b.Y-a.Y, 1
		if dy < 0 {
			dy, stepY = -dy, -1
		}

		// d is the doubled error term of the minor axis
		x, y := a.X, a.Y
		if dx >= dy {
			d := 2*dy - dx
			for range dx + 1 {
				if !yield(Tile{X: x, Y: y}) {
					return
				}
				if d > 0 {
					y += stepY
					d -= 2 * dx
				}
				d += 2 * dy
				x += stepX
			}
		} else {
			d := 2*dx - dy
			for range dy + 1 {
				if !yield(Tile{X: x, Y: y}) {
					return
				}
				if d > 0 {
					x += stepX
					d -= 2 * dy
				}
				d += 2 * dx
				y += stepY
			}
		}
	}
}

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

import (
	"fmt"
	"iter"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Tile addresses the unit grid cell centred at integer coordinates (X, Y).
type Tile struct {
	X, Y int
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// TileOf returns the tile whose centre is closest to p.
func TileOf(p vec.Vec2) Tile {
	return Tile{X: closestInt(p.X), Y: closestInt(p.Y)}
}

// closestInt rounds x to the nearest integer.  Halves are rounded up,
// so that -0.5 maps to 0 and 0.5 maps to 1.
func closestInt(x float64) int {
	return int(math.Floor(x + 0.5))
}

// GridRectangle is an axis-aligned rectangle of tiles.  The tile (X, Y) is
// the top-left corner; Width and Height are at least 1 for rectangles
// constructed by this package.
type GridRectangle struct {
	X, Y          int
	Width, Height int
}

// MaxX returns the x-coordinate of the rightmost column.
func (r GridRectangle) MaxX() int {
	return r.X + r.Width - 1
}

// MaxY returns the y-coordinate of the bottom row.
func (r GridRectangle) MaxY() int {
	return r.Y + r.Height - 1
}

// Contains reports whether the tile (x, y) lies inside r.
func (r GridRectangle) Contains(x, y int) bool {
	return x >= r.X && x <= r.MaxX() && y >= r.Y && y <= r.MaxY()
}

// Tiles iterates over all tiles of r in row-major order.
func (r GridRectangle) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for y := r.Y; y <= r.MaxY(); y++ {
			for x := r.X; x <= r.MaxX(); x++ {
				if !yield(Tile{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r GridRectangle) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Width, r.Height, r.X, r.Y)
}

// GridHull returns the grid rectangle covering the continuous rectangle b.
//
// Each side of b is rounded to the nearest tile, rather than rounded
// outwards.  The result is therefore at least one tile wide and high, even
// if b has zero area, but it may not contain all of b.
func GridHull(b rect.Rect) GridRectangle {
	x0 := closestInt(b.LLx)
	y0 := closestInt(b.LLy)
	x1 := closestInt(b.URx)
	y1 := closestInt(b.URy)
	return GridRectangle{
		X:      x0,
		Y:      y0,
		Width:  x1 - x0 + 1,
		Height: y1 - y0 + 1,
	}
}

// HorizontalGridSegment is a run of Length tiles starting at Origin
// and extending east (towards increasing x).
type HorizontalGridSegment struct {
	Origin Tile
	Length int
}

// horizontalSegment converts the continuous span [ax, bx] on row y
// into the run of tiles between the nearest tiles of both ends.
func horizontalSegment(ax, bx float64, y int) HorizontalGridSegment {
	startX := closestInt(ax)
	endX := closestInt(bx)
	if endX < startX {
		startX, endX = endX, startX
	}
	return HorizontalGridSegment{
		Origin: Tile{X: startX, Y: y},
		Length: endX - startX + 1,
	}
}

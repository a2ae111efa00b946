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
	"image"
	"iter"
	"slices"
	"strings"
)

// GridMask is a set of tiles, restricted to a fixed GridRectangle.
//
// Different rows of a GridMask may be modified concurrently; modifying
// the same row from more than one goroutine requires synchronisation.
type GridMask struct {
	bounds GridRectangle
	set    []bool // row-major, one entry per tile of bounds
}

// NewGridMask returns an empty mask covering the given rectangle.
func NewGridMask(bounds GridRectangle) *GridMask {
	w := max(bounds.Width, 0)
	h := max(bounds.Height, 0)
	return &GridMask{
		bounds: bounds,
		set:    make([]bool, w*h),
	}
}

// Bounds returns the rectangle the mask is restricted to.
func (m *GridMask) Bounds() GridRectangle {
	return m.bounds
}

func (m *GridMask) index(x, y int) int {
	return (y-m.bounds.Y)*m.bounds.Width + (x - m.bounds.X)
}

// Contains reports whether the tile (x, y) is in the mask.
// Tiles outside the bounds are never contained.
func (m *GridMask) Contains(x, y int) bool {
	if !m.bounds.Contains(x, y) {
		return false
	}
	return m.set[m.index(x, y)]
}

// Add adds the tile (x, y) to the mask.  Adding a tile which is already
// present has no effect.
func (m *GridMask) Add(x, y int) error {
	if !m.bounds.Contains(x, y) {
		return fmt.Errorf("tile (%d,%d) in %s: %w", x, y, m.bounds, ErrOutOfRange)
	}
	m.set[m.index(x, y)] = true
	return nil
}

// Fill adds every tile within the bounds to the mask.
func (m *GridMask) Fill() {
	for i := range m.set {
		m.set[i] = true
	}
}

// FillHorizontalSegment adds all tiles of s to the mask.
// Segments with non-positive length are ignored.
func (m *GridMask) FillHorizontalSegment(s HorizontalGridSegment) error {
	if s.Length <= 0 {
		return nil
	}
	x0, y := s.Origin.X, s.Origin.Y
	x1 := x0 + s.Length - 1
	if !m.bounds.Contains(x0, y) || !m.bounds.Contains(x1, y) {
		return fmt.Errorf("run %s+%d in %s: %w", s.Origin, s.Length, m.bounds, ErrOutOfRange)
	}
	start := m.index(x0, y)
	row := m.set[start : start+s.Length]
	for i := range row {
		row[i] = true
	}
	return nil
}

// Len returns the number of tiles in the mask.
func (m *GridMask) Len() int {
	n := 0
	for _, ok := range m.set {
		if ok {
			n++
		}
	}
	return n
}

// Tiles iterates over the tiles in the mask in row-major order.
func (m *GridMask) Tiles() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for i, ok := range m.set {
			if !ok {
				continue
			}
			t := Tile{
				X: m.bounds.X + i%m.bounds.Width,
				Y: m.bounds.Y + i/m.bounds.Width,
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Row iterates over the x-coordinates of all tiles in row y,
// from west to east.
func (m *GridMask) Row(y int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if y < m.bounds.Y || y > m.bounds.MaxY() {
			return
		}
		start := m.index(m.bounds.X, y)
		for i, ok := range m.set[start : start+m.bounds.Width] {
			if ok && !yield(m.bounds.X+i) {
				return
			}
		}
	}
}

// Equal reports whether m and other have the same bounds and
// contain the same tiles.
func (m *GridMask) Equal(other *GridMask) bool {
	return m.bounds == other.bounds && slices.Equal(m.set, other.set)
}

// Image returns the mask as an alpha image.  Tiles in the mask have
// alpha 255, all other tiles are transparent.  Each tile corresponds
// to one pixel, with the same coordinates.
func (m *GridMask) Image() *image.Alpha {
	b := m.bounds
	img := image.NewAlpha(image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height))
	for i, ok := range m.set {
		if ok {
			row, col := i/b.Width, i%b.Width
			img.Pix[row*img.Stride+col] = 255
		}
	}
	return img
}

// String draws the mask using '#' for contained tiles and '.' otherwise,
// one line per row.
func (m *GridMask) String() string {
	var sb strings.Builder
	for y := m.bounds.Y; y <= m.bounds.MaxY(); y++ {
		for x := m.bounds.X; x <= m.bounds.MaxX(); x++ {
			if m.Contains(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

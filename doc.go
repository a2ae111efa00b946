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

// Package tiles converts polygons given in continuous coordinates into
// the set of integer grid cells ("tiles") which they cover.
//
// The tile (x, y) is the unit square centred at the integer point (x, y).
// A polygon is rasterized by scanning every integer row of its grid hull:
// a tile belongs to the result if its centre lies between an entry into
// and the following exit from the polygon along the row.  Horizontal
// edges and vertices lying exactly on a row are treated explicitly, so
// that axis-aligned shapes with integer corners include their boundary.
//
// Rasterize handles simple polygons.  Rasterizer adds a coordinate
// transformation, curve flattening for paths and concurrent row scanning.
package tiles

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpng

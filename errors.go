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

import "errors"

var (
	// ErrParallel is returned when an intersection with a horizontal line
	// is requested for a segment which is itself horizontal.
	ErrParallel = errors.New("tiles: segment is parallel to the scan-line")

	// ErrParity is returned when a scan-line meets the polygon boundary an
	// odd number of times.  This indicates a self-intersecting or otherwise
	// malformed polygon.
	ErrParity = errors.New("tiles: odd number of scan-line crossings")

	// ErrOutOfRange is returned when a tile outside the bounds of a
	// GridMask is modified.
	ErrOutOfRange = errors.New("tiles: tile outside of mask bounds")

	// ErrTooFewVertices is returned for empty polygons and for polygons
	// which have fewer than three vertices left once redundant vertices on
	// horizontal edges are removed.
	ErrTooFewVertices = errors.New("tiles: too few polygon vertices")

	// ErrNonFinite is returned when a coordinate is NaN or infinite.
	ErrNonFinite = errors.New("tiles: non-finite coordinate")

	// ErrUnsupportedPath is returned by RasterizePath for paths which
	// do not consist of exactly one subpath.
	ErrUnsupportedPath = errors.New("tiles: path must have exactly one subpath")
)

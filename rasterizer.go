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
	"math"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer converts polygons, segments and points into sets of tiles.
//
// A Rasterizer only holds configuration.  It is safe for concurrent use,
// as long as its fields are not modified at the same time.
type Rasterizer struct {
	// CTM maps input coordinates to grid coordinates, where the tile (x, y)
	// is the unit square centred at (x, y).  Must be non-singular.
	CTM matrix.Matrix

	// Flatness is the tolerance, in tiles, used when curves in paths
	// are approximated by line segments.  Must be positive.
	Flatness float64

	// Workers is the maximal number of rows scanned concurrently.
	// Values below 2 scan all rows on the calling goroutine.
	Workers int
}

// NewRasterizer returns a Rasterizer with the identity transformation
// and sequential row scanning.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
		Workers:  1,
	}
}

// Rasterize returns the tiles covered by the polygon p, using the
// default settings of NewRasterizer.
func Rasterize(p Polygon) (*GridMask, error) {
	return NewRasterizer().Rasterize(p)
}

// RasterizeSegment returns the tiles on the segment s, using the
// default settings of NewRasterizer.
func RasterizeSegment(s Segment) (*GridMask, error) {
	return NewRasterizer().RasterizeSegment(s)
}

// RasterizePoint returns the tile containing p, using the
// default settings of NewRasterizer.
func RasterizePoint(p vec.Vec2) (*GridMask, error) {
	return NewRasterizer().RasterizePoint(p)
}

// Rasterize returns the tiles covered by the simple polygon p.
//
// A polygon with a single vertex is rasterized like a point, and a
// polygon with two vertices like a segment.  Polygons whose grid hull
// is only one tile wide or high are filled completely.  Otherwise every
// row of the grid hull is scanned, and a tile is included if its centre
// lies between an entry and the following exit of the scan-line.
// Horizontal edges lying exactly on a row are included as well.
//
// The polygon must not intersect itself.  If a row meets the boundary an
// odd number of times, ErrParity is returned.
func (r *Rasterizer) Rasterize(p Polygon) (*GridMask, error) {
	switch len(p) {
	case 0:
		return nil, ErrTooFewVertices
	case 1:
		return r.RasterizePoint(p[0])
	case 2:
		return r.RasterizeSegment(Segment{A: p[0], B: p[1]})
	}

	p = r.transform(p)
	if err := p.checkFinite(); err != nil {
		return nil, err
	}

	bounds := p.GridHull()
	mask := NewGridMask(bounds)
	log := Logger()

	if bounds.Width == 1 || bounds.Height == 1 {
		mask.Fill()
		log.Debug("filled polygon sliver", "vertices", len(p), "hull", bounds)
		return mask, nil
	}

	p = collapseHorizontalChains(p)
	if len(p) < 3 {
		return nil, fmt.Errorf("%d vertices after collapsing horizontal edges: %w",
			len(p), ErrTooFewVertices)
	}

	if err := r.fillRows(mask, p); err != nil {
		return nil, err
	}

	numEdges, err := drawIntegerHorizontalEdges(mask, p)
	if err != nil {
		return nil, err
	}
	log.Debug("rasterized polygon",
		"vertices", len(p), "hull", bounds, "rows", bounds.Height,
		"horizontalEdges", numEdges)
	return mask, nil
}

// fillRows scans all rows of the mask's bounds.
func (r *Rasterizer) fillRows(mask *GridMask, p Polygon) error {
	bounds := mask.Bounds()
	if r.Workers < 2 {
		for y := bounds.Y; y <= bounds.MaxY(); y++ {
			if err := fillRow(mask, p, y); err != nil {
				return err
			}
		}
		return nil
	}

	// Every row only writes its own part of the mask.
	var g errgroup.Group
	g.SetLimit(r.Workers)
	for y := bounds.Y; y <= bounds.MaxY(); y++ {
		g.Go(func() error {
			return fillRow(mask, p, y)
		})
	}
	return g.Wait()
}

// drawIntegerHorizontalEdges adds the tiles of all horizontal edges
// with integer y-coordinate to the mask.  Such edges never cross a
// scan-line, so the row scan does not see them.
// The number of edges drawn is returned.
func drawIntegerHorizontalEdges(mask *GridMask, p Polygon) (int, error) {
	count := 0
	for _, e := range p.Edges() {
		if !e.IsHorizontal() || e.A.Y != math.Floor(e.A.Y) {
			continue
		}
		for t := range LineTiles(TileOf(e.A), TileOf(e.B)) {
			if mask.Contains(t.X, t.Y) {
				continue
			}
			if err := mask.Add(t.X, t.Y); err != nil {
				return count, err
			}
		}
		count++
	}
	return count, nil
}

// RasterizeSegment returns the tiles on the digital line between the
// tiles containing the end points of s.
func (r *Rasterizer) RasterizeSegment(s Segment) (*GridMask, error) {
	p := r.transform(Polygon{s.A, s.B})
	if err := p.checkFinite(); err != nil {
		return nil, err
	}

	mask := NewGridMask(p.GridHull())
	for t := range LineTiles(TileOf(p[0]), TileOf(p[1])) {
		if err := mask.Add(t.X, t.Y); err != nil {
			return nil, err
		}
	}
	return mask, nil
}

// RasterizePoint returns a mask holding the single tile containing p.
func (r *Rasterizer) RasterizePoint(p vec.Vec2) (*GridMask, error) {
	q := r.transform(Polygon{p})
	if err := q.checkFinite(); err != nil {
		return nil, err
	}

	t := TileOf(q[0])
	mask := NewGridMask(GridRectangle{X: t.X, Y: t.Y, Width: 1, Height: 1})
	if err := mask.Add(t.X, t.Y); err != nil {
		return nil, err
	}
	return mask, nil
}

// RasterizePath rasterizes a path consisting of a single subpath.
// The subpath is treated as closed, whether or not it ends with a
// close command.  Curves are replaced by line segments first, using
// the tolerance given by r.Flatness.
func (r *Rasterizer) RasterizePath(p path.Path) (*GridMask, error) {
	poly, err := r.flattenPath(p)
	if err != nil {
		return nil, err
	}
	return r.Rasterize(poly)
}

// flattenPath converts a path into the vertex list of a polygon.
// The vertices stay in input coordinates.
func (r *Rasterizer) flattenPath(p path.Path) (Polygon, error) {
	var poly Polygon
	numSubpaths := 0
	var current vec.Vec2

	emit := func(_, to vec.Vec2) {
		if len(poly) > 0 && poly[len(poly)-1] == to {
			return
		}
		poly = append(poly, to)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			numSubpaths++
			if numSubpaths > 1 {
				return nil, ErrUnsupportedPath
			}
			current = pts[0]
			poly = append(poly, current)

		case path.CmdLineTo:
			if numSubpaths == 0 {
				continue
			}
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if numSubpaths == 0 {
				continue
			}
			r.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			if numSubpaths == 0 {
				continue
			}
			r.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			// the closing edge is implicit
		}
	}
	if numSubpaths == 0 {
		return nil, ErrUnsupportedPath
	}

	if len(poly) > 1 && poly[len(poly)-1] == poly[0] {
		poly = poly[:len(poly)-1]
	}
	return poly, nil
}

// transform returns the vertices of p mapped by the CTM.
// The input is not modified.
func (r *Rasterizer) transform(p Polygon) Polygon {
	res := make(Polygon, len(p))
	if r.CTM == matrix.Identity {
		copy(res, p)
		return res
	}
	m := r.CTM
	for i, v := range p {
		res[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	return res
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments
// and calls emit for each of them.  p0 is the start point, p1 the control
// point and p2 the end point.  The tolerance is measured in grid space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance to the chord
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := r.transformLinear(e).Length()

	n := 1
	if errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments and
// calls emit for each of them.  p0 is the start point, p1 and p2 are the
// control points and p3 is the end point.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * r.Flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// defaultFlatness is the default curve flattening tolerance, in tiles.
const defaultFlatness = 0.25

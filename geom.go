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

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B vec.Vec2
}

// IsHorizontal reports whether both endpoints have the same y-coordinate.
func (s Segment) IsHorizontal() bool {
	return s.A.Y == s.B.Y
}

// CrossesHorizontal reports whether the segment strictly crosses the
// horizontal line Y=y, i.e. one endpoint lies above the line and the
// other one below it.  Endpoints on the line do not count.
func (s Segment) CrossesHorizontal(y float64) bool {
	return s.A.Y > y && s.B.Y < y || s.A.Y < y && s.B.Y > y
}

// XAtY returns the x-coordinate where the line through the segment meets
// the horizontal line Y=y.
func (s Segment) XAtY(y float64) (float64, error) {
	dy := s.B.Y - s.A.Y
	if dy == 0 {
		return 0, fmt.Errorf("segment %v-%v at y=%g: %w", s.A, s.B, y, ErrParallel)
	}
	return s.A.X + (y-s.A.Y)*(s.B.X-s.A.X)/dy, nil
}

// Contains reports whether p lies on the closed segment.
func (s Segment) Contains(p vec.Vec2) bool {
	if cross(s.A, s.B, p) != 0 {
		return false
	}
	return p.X >= min(s.A.X, s.B.X) && p.X <= max(s.A.X, s.B.X) &&
		p.Y >= min(s.A.Y, s.B.Y) && p.Y <= max(s.A.Y, s.B.Y)
}

// Intersects reports whether the two closed segments have at least one
// point in common.
func (s Segment) Intersects(other Segment) bool {
	d1 := cross(other.A, other.B, s.A)
	d2 := cross(other.A, other.B, s.B)
	d3 := cross(s.A, s.B, other.A)
	d4 := cross(s.A, s.B, other.B)

	if sign(d1)*sign(d2) < 0 && sign(d3)*sign(d4) < 0 {
		return true
	}

	// touching or collinear cases
	return d1 == 0 && other.Contains(s.A) ||
		d2 == 0 && other.Contains(s.B) ||
		d3 == 0 && s.Contains(other.A) ||
		d4 == 0 && s.Contains(other.B)
}

// cross returns the z-component of (b-a) × (p-a).
// The result is positive if p lies to the left of the directed line a→b.
func cross(a, b, p vec.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// sign returns -1, 0 or +1 according to the sign of x.
func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Polygon is a closed polygon given by its vertices in cyclic order.
// The closing edge from the last vertex back to the first one is implicit.
type Polygon []vec.Vec2

// Next returns the index of the vertex following vertex i.
func (p Polygon) Next(i int) int {
	if i+1 == len(p) {
		return 0
	}
	return i + 1
}

// Prev returns the index of the vertex preceding vertex i.
func (p Polygon) Prev(i int) int {
	if i == 0 {
		return len(p) - 1
	}
	return i - 1
}

// Edge returns the edge from vertex i to the following vertex.
func (p Polygon) Edge(i int) Segment {
	return Segment{A: p[i], B: p[p.Next(i)]}
}

// Edges iterates over all edges of the polygon, including the closing edge.
// The index passed to yield is the index of the edge's start vertex.
func (p Polygon) Edges() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i := range p {
			if !yield(i, p.Edge(i)) {
				return
			}
		}
	}
}

// Bounds returns the smallest axis-aligned rectangle containing all vertices.
// The zero rectangle is returned for an empty polygon.
func (p Polygon) Bounds() rect.Rect {
	if len(p) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: p[0].X, LLy: p[0].Y, URx: p[0].X, URy: p[0].Y}
	for _, v := range p[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// GridHull returns the grid rectangle covering the polygon's bounding box.
func (p Polygon) GridHull() GridRectangle {
	return GridHull(p.Bounds())
}

// checkFinite returns an error if any vertex has a NaN or infinite coordinate.
func (p Polygon) checkFinite() error {
	for i, v := range p {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return fmt.Errorf("vertex %d (%v): %w", i, v, ErrNonFinite)
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

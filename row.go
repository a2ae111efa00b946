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
	"cmp"
	"fmt"
	"slices"
)

// crossingKind distinguishes the two ways a scan-line can pass from the
// outside of a polygon to the inside.
type crossingKind uint8

const (
	// pointCrossing is an edge which strictly crosses the scan-line.
	pointCrossing crossingKind = iota

	// chainCrossing is a run of vertices lying exactly on the scan-line,
	// with the polygon boundary arriving from one side of the line and
	// leaving to the other side.
	chainCrossing
)

// crossing is one place where a scan-line enters or leaves a polygon.
type crossing struct {
	kind crossingKind
	x    float64 // intersection x, for pointCrossing

	// west and east are the vertex indices of the ends of the run, for
	// chainCrossing.  The two are equal if the run is a single vertex.
	west, east int
}

// left returns the x-coordinate where a span starting at c begins.
func (c crossing) left(p Polygon) float64 {
	if c.kind == chainCrossing {
		return p[c.west].X
	}
	return c.x
}

// right returns the x-coordinate where a span ending at c ends.
func (c crossing) right(p Polygon) float64 {
	if c.kind == chainCrossing {
		return p[c.east].X
	}
	return c.x
}

// compareCrossings orders crossings from west to east.
func compareCrossings(p Polygon, a, b crossing) int {
	if c := cmp.Compare(a.left(p), b.left(p)); c != 0 {
		return c
	}
	return cmp.Compare(a.right(p), b.right(p))
}

// rowCrossings returns the crossings of the polygon boundary with the
// scan-line Y=y, sorted from west to east.
//
// The polygon must not contain three consecutive vertices with the same
// y-coordinate, see collapseHorizontalChains.
func rowCrossings(p Polygon, y int) ([]crossing, error) {
	yf := float64(y)

	var res []crossing
	for _, e := range p.Edges() {
		if !e.CrossesHorizontal(yf) {
			continue
		}
		x, err := e.XAtY(yf)
		if err != nil {
			return nil, err
		}
		res = append(res, crossing{kind: pointCrossing, x: x})
	}

	numChains := 0
	for start := range p {
		if p[start].Y != yf || p[p.Prev(start)].Y == yf {
			continue // not the first vertex of a run on the scan-line
		}
		end := start
		for next := p.Next(end); next != start && p[next].Y == yf; next = p.Next(end) {
			end = next
		}

		// The run is a crossing if the boundary comes in from one side
		// of the scan-line and leaves towards the other side.
		before := sign(p[p.Prev(start)].Y - yf)
		after := sign(p[p.Next(end)].Y - yf)
		if before == 0 || before != -after {
			continue
		}

		west, east := start, end
		if p[west].X > p[east].X {
			west, east = east, west
		}
		res = append(res, crossing{kind: chainCrossing, west: west, east: east})
		numChains++
	}

	if len(res)%2 != 0 && !(len(res) == 1 && numChains == 1) {
		return nil, fmt.Errorf("row %d: %d crossings (%d runs): %w",
			y, len(res), numChains, ErrParity)
	}

	slices.SortFunc(res, func(a, b crossing) int {
		return compareCrossings(p, a, b)
	})
	return res, nil
}

// fillRow adds the tiles of row y which lie inside the polygon to m.
func fillRow(m *GridMask, p Polygon, y int) error {
	cs, err := rowCrossings(p, y)
	if err != nil {
		return err
	}

	if len(cs) == 1 {
		// the whole polygon touches this row along a single run
		c := cs[0]
		return m.FillHorizontalSegment(horizontalSegment(c.left(p), c.right(p), y))
	}

	for i := 0; i+1 < len(cs); i += 2 {
		ax := cs[i].left(p)
		bx := cs[i+1].right(p)
		if err := m.FillHorizontalSegment(horizontalSegment(ax, bx, y)); err != nil {
			return err
		}
	}
	return nil
}

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

// collapseHorizontalChains returns a copy of p without the vertices b of
// all cyclic triples (a, b, c) with a.y == b.y == c.y.
//
// Triples are taken from p itself, not from the partially collapsed
// result, so that a horizontal run of any length is reduced to its two
// end points.
func collapseHorizontalChains(p Polygon) Polygon {
	n := len(p)
	if n < 3 {
		return append(Polygon(nil), p...)
	}
	res := make(Polygon, 0, n)
	for i, b := range p {
		a := p[p.Prev(i)]
		c := p[p.Next(i)]
		if a.Y == b.Y && b.Y == c.Y {
			continue
		}
		res = append(res, b)
	}
	return res
}

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
	"errors"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/tiles/testcases"
)

// poly builds a polygon from the coordinates x0, y0, x1, y1, ...
func poly(coords ...float64) Polygon {
	var p Polygon
	for i := 0; i+1 < len(coords); i += 2 {
		p = append(p, vec.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return p
}

// picture converts a drawing made of '#' and '.' characters to the form
// produced by GridMask.String.
func picture(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func rasterizeCase(t testing.TB, tc testcases.TestCase, workers int) *GridMask {
	t.Helper()
	r := NewRasterizer()
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	r.Workers = workers
	mask, err := r.RasterizePath(tc.Commands())
	if err != nil {
		t.Fatalf("%s: %v", tc.Name, err)
	}
	return mask
}

func TestSquare(t *testing.T) {
	mask, err := Rasterize(poly(0, 0, 3, 0, 3, 3, 0, 3))
	if err != nil {
		t.Fatal(err)
	}
	if want := (GridRectangle{X: 0, Y: 0, Width: 4, Height: 4}); mask.Bounds() != want {
		t.Errorf("got bounds %v, want %v", mask.Bounds(), want)
	}
	if mask.Len() != 16 {
		t.Errorf("got %d tiles, want 16:\n%s", mask.Len(), mask)
	}
}

func TestUnitSquare(t *testing.T) {
	mask, err := Rasterize(poly(0, 0, 1, 0, 1, 1, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := picture(
		"##",
		"##",
	)
	if got := mask.String(); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestStaircase(t *testing.T) {
	mask, err := Rasterize(staircase)
	if err != nil {
		t.Fatal(err)
	}
	want := picture(
		"#####........",
		"#####........",
		"#########....",
		"#########....",
		"#############",
		"#############",
		"#############",
		"#############",
		"#############",
	)
	if got := mask.String(); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestSubTilePolygon(t *testing.T) {
	mask, err := Rasterize(poly(0, 0, 0.1, 0, 0.1, 0.1))
	if err != nil {
		t.Fatal(err)
	}
	got := slices.Collect(mask.Tiles())
	if want := []Tile{{0, 0}}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSliver(t *testing.T) {
	cases := []struct {
		name   string
		p      Polygon
		bounds GridRectangle
	}{
		{
			name:   "narrow",
			p:      poly(0, 0, 0.1, 0, 0.1, 4.1, 0, 4.1),
			bounds: GridRectangle{X: 0, Y: 0, Width: 1, Height: 5},
		},
		{
			name:   "flat",
			p:      poly(0, 0, 4.1, 0, 4.1, 0.1, 0, 0.1),
			bounds: GridRectangle{X: 0, Y: 0, Width: 5, Height: 1},
		},
		{
			name:   "collinear",
			p:      poly(0, 3, 4, 3, 9, 3),
			bounds: GridRectangle{X: 0, Y: 3, Width: 10, Height: 1},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mask, err := Rasterize(c.p)
			if err != nil {
				t.Fatal(err)
			}
			if mask.Bounds() != c.bounds {
				t.Errorf("got bounds %v, want %v", mask.Bounds(), c.bounds)
			}
			if n := c.bounds.Width * c.bounds.Height; mask.Len() != n {
				t.Errorf("got %d tiles, want %d", mask.Len(), n)
			}
		})
	}
}

func TestTriangle(t *testing.T) {
	mask, err := Rasterize(poly(0, 0, 20, 5, 10, 10))
	if err != nil {
		t.Fatal(err)
	}

	// every interior row is a single run without gaps
	for y := 1; y <= 9; y++ {
		xs := slices.Collect(mask.Row(y))
		if len(xs) == 0 {
			t.Errorf("row %d is empty", y)
			continue
		}
		if xs[len(xs)-1]-xs[0]+1 != len(xs) {
			t.Errorf("row %d has gaps: %v", y, xs)
		}
	}

	if got, want := slices.Collect(mask.Row(1)), []int{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("row 1: got %v, want %v", got, want)
	}
	xs := slices.Collect(mask.Row(5))
	if xs[0] != 5 || xs[len(xs)-1] != 20 {
		t.Errorf("row 5 spans %d..%d, want 5..20", xs[0], xs[len(xs)-1])
	}
	if mask.Contains(15, 1) || mask.Contains(2, 8) {
		t.Error("tiles outside the triangle are set")
	}
}

func TestNotch(t *testing.T) {
	mask, err := Rasterize(poly(0, 10, 10, 10, 10, 20, 20, 20, 20, 0, 30, 0, 30, 30, 0, 30))
	if err != nil {
		t.Fatal(err)
	}

	// horizontal edges on integer rows are drawn completely
	edges := []struct{ y, x0, x1 int }{
		{10, 0, 10},
		{20, 10, 20},
		{0, 20, 30},
		{30, 0, 30},
	}
	for _, e := range edges {
		for x := e.x0; x <= e.x1; x++ {
			if !mask.Contains(x, e.y) {
				t.Errorf("tile (%d,%d) on a horizontal edge is missing", x, e.y)
			}
		}
	}

	inside := []Tile{{5, 15}, {25, 5}, {15, 25}, {0, 20}}
	for _, tile := range inside {
		if !mask.Contains(tile.X, tile.Y) {
			t.Errorf("tile %v inside the polygon is missing", tile)
		}
	}
	outside := []Tile{{5, 5}, {15, 15}, {15, 10}, {15, 0}}
	for _, tile := range outside {
		if mask.Contains(tile.X, tile.Y) {
			t.Errorf("tile %v outside the polygon is set", tile)
		}
	}
}

func TestCollinearRunMatchesCollapsed(t *testing.T) {
	cases := []struct {
		name          string
		long, reduced Polygon
	}{
		{
			name:    "bottom_run",
			long:    poly(0, 0, 2, 0, 4, 0, 6, 0, 8, 0, 8, 6, 0, 6),
			reduced: poly(0, 0, 8, 0, 8, 6, 0, 6),
		},
		{
			name:    "run_on_crossing_row",
			long:    poly(0, 0, 4, 0, 4, 2, 5, 2, 6.5, 2, 8, 2, 8, 4, 0, 4),
			reduced: poly(0, 0, 4, 0, 4, 2, 8, 2, 8, 4, 0, 4),
		},
		{
			name:    "run_across_start",
			long:    poly(3, 7, 5, 7, 5, 0, 0, 0, 0, 7, 1.5, 7),
			reduced: poly(5, 7, 5, 0, 0, 0, 0, 7),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m1, err := Rasterize(c.long)
			if err != nil {
				t.Fatal(err)
			}
			m2, err := Rasterize(c.reduced)
			if err != nil {
				t.Fatal(err)
			}
			if !m1.Equal(m2) {
				t.Errorf("masks differ:\n%s\nvs\n%s", m1, m2)
			}
		})
	}
}

func TestAllCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				mask := rasterizeCase(t, tc, 1)
				if mask.Len() == 0 {
					t.Fatal("no tiles")
				}

				again := rasterizeCase(t, tc, 1)
				if !mask.Equal(again) {
					t.Error("second run gives a different result")
				}

				parallel := rasterizeCase(t, tc, 4)
				if !mask.Equal(parallel) {
					t.Errorf("concurrent scan differs:\n%s\nvs\n%s", parallel, mask)
				}
			})
		}
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	_, err := Rasterize(nil)
	if !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("empty polygon: got error %v, want %v", err, ErrTooFewVertices)
	}

	mask, err := Rasterize(poly(2.4, -0.6))
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(mask.Tiles()); !slices.Equal(got, []Tile{{2, -1}}) {
		t.Errorf("point: got %v", got)
	}

	mask, err = Rasterize(poly(0, 0, 3, 1.2))
	if err != nil {
		t.Fatal(err)
	}
	want := picture(
		"##..",
		"..##",
	)
	if got := mask.String(); got != want {
		t.Errorf("segment: got\n%swant\n%s", got, want)
	}

	_, err = Rasterize(poly(0, 0, 3, math.Inf(1), 3, 0))
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want %v", err, ErrNonFinite)
	}
}

func TestRasterizeSegment(t *testing.T) {
	s := Segment{vec.Vec2{X: 4.2, Y: 1}, vec.Vec2{X: 0.4, Y: 1}}
	mask, err := RasterizeSegment(s)
	if err != nil {
		t.Fatal(err)
	}
	if want := (GridRectangle{X: 0, Y: 1, Width: 5, Height: 1}); mask.Bounds() != want {
		t.Errorf("got bounds %v, want %v", mask.Bounds(), want)
	}
	if mask.Len() != 5 {
		t.Errorf("got %d tiles, want 5", mask.Len())
	}
}

func TestRasterizePoint(t *testing.T) {
	r := NewRasterizer()
	r.CTM = matrix.Scale(2, 2).Translate(1, 0)
	mask, err := r.RasterizePoint(vec.Vec2{X: 1.1, Y: -0.4})
	if err != nil {
		t.Fatal(err)
	}
	if got := slices.Collect(mask.Tiles()); !slices.Equal(got, []Tile{{3, -1}}) {
		t.Errorf("got %v, want [(3,-1)]", got)
	}
}

func TestRasterizePath(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasterizer()
	r.CTM = matrix.Scale(3, 3)
	got, err := r.RasterizePath(testcases.TestCase{Path: square}.Commands())
	if err != nil {
		t.Fatal(err)
	}
	want, err := Rasterize(poly(0, 0, 3, 0, 3, 3, 0, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestRasterizePathSubpaths(t *testing.T) {
	two := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Close().
		MoveTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 14, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 4}).
		Close()
	_, err := NewRasterizer().RasterizePath(testcases.TestCase{Path: two}.Commands())
	if !errors.Is(err, ErrUnsupportedPath) {
		t.Errorf("two subpaths: got error %v, want %v", err, ErrUnsupportedPath)
	}

	_, err = NewRasterizer().RasterizePath(testcases.TestCase{Path: &path.Data{}}.Commands())
	if !errors.Is(err, ErrUnsupportedPath) {
		t.Errorf("empty path: got error %v, want %v", err, ErrUnsupportedPath)
	}
}

func TestFlattenPathCurve(t *testing.T) {
	lens := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 10}).
		QuadTo(vec.Vec2{X: 14, Y: -2}, vec.Vec2{X: 26, Y: 10}).
		QuadTo(vec.Vec2{X: 14, Y: 22}, vec.Vec2{X: 2, Y: 10}).
		Close()

	r := NewRasterizer()
	p, err := r.flattenPath(testcases.TestCase{Path: lens}.Commands())
	if err != nil {
		t.Fatal(err)
	}
	if len(p) < 8 {
		t.Errorf("got %d vertices, want a finer approximation", len(p))
	}
	if p[0] == p[len(p)-1] {
		t.Error("closing vertex duplicated")
	}
	for i, v := range p {
		if v == p[p.Next(i)] {
			t.Errorf("vertex %d repeated", i)
		}
	}
}

// seehuhn.de/go/contour - contour lines and filled contours for gridded data
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

package contour

import (
	"errors"
	"image/color"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/colormap"
)

func TestExtractInvalidGrid(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		g    *Grid
	}{
		{"too small", &Grid{Width: 1, Height: 3, Values: []float64{1, 2, 3}}},
		{"short values", &Grid{Width: 2, Height: 2, Values: []float64{1, 2, 3}}},
		{"few finite", &Grid{Width: 2, Height: 2, Values: []float64{1, 2, nan, 4}}},
		{"constant", &Grid{Width: 2, Height: 2, Values: []float64{7, 7, 7, 7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Extract(tc.g, nil)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestExtractCorner(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 1}, {1, 5}})
	res, err := Extract(g, &Options{Levels: []float64{3}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Levels) != 1 {
		t.Fatalf("expected one level, got %d", len(res.Levels))
	}
	lr := res.Levels[0]
	wantOpen := []Path{{{X: 1, Y: 0.5}, {X: 0.5, Y: 1}}}
	if d := cmp.Diff(wantOpen, lr.OpenPaths); d != "" {
		t.Errorf("open paths (-want +got):\n%s", d)
	}
	wantFill := []Path{{{X: 1, Y: 0.5}, {X: 0.5, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0.5}}}
	if d := cmp.Diff(wantFill, lr.FillPolygons); d != "" {
		t.Errorf("fill polygons (-want +got):\n%s", d)
	}
	if lr.PrefixBoundary {
		t.Error("unexpected prefix boundary")
	}

	wantStats := Stats{
		LevelCount:     1,
		TotalEdgePaths: 1,
		TotalPoints:    6,
		MinValue:       1,
		MaxValue:       5,
		MeanValue:      2,
		StdDev:         2,
	}
	if d := cmp.Diff(wantStats, res.Stats); d != "" {
		t.Errorf("stats (-want +got):\n%s", d)
	}
	wantPerim := Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if d := cmp.Diff(wantPerim, res.Perimeter); d != "" {
		t.Errorf("perimeter (-want +got):\n%s", d)
	}
	if !res.Contours.Custom || res.Contours.Start != 3 || res.Contours.End != 3 {
		t.Errorf("unexpected contour layout %+v", res.Contours)
	}
}

func TestExtractLinesOnly(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 1}, {1, 5}})
	res, err := Extract(g, &Options{Coloring: colormap.Lines, Levels: []float64{3}})
	if err != nil {
		t.Fatal(err)
	}
	lr := res.Levels[0]
	if lr.FillPolygons != nil {
		t.Errorf("fill polygons computed for line coloring: %v", lr.FillPolygons)
	}
	if len(lr.OpenPaths) != 1 {
		t.Errorf("expected one open path, got %d", len(lr.OpenPaths))
	}
}

func TestExtractNonCrossing(t *testing.T) {
	g := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	res, err := Extract(g, &Options{Levels: []float64{0, 10}})
	if err != nil {
		t.Fatal(err)
	}
	for i, wantPrefix := range []bool{true, false} {
		lr := res.Levels[i]
		if len(lr.OpenPaths) != 0 || len(lr.ClosedPaths) != 0 {
			t.Errorf("level %g: unexpected paths", lr.Level)
		}
		if lr.PrefixBoundary != wantPrefix {
			t.Errorf("level %g: expected prefix %t, got %t", lr.Level, wantPrefix, lr.PrefixBoundary)
		}
	}
	if n := len(res.Levels[0].FillPolygons); n != 1 {
		t.Errorf("expected the perimeter as fill ring, got %d rings", n)
	}
	if n := len(res.Levels[1].FillPolygons); n != 0 {
		t.Errorf("expected no fill rings above the data, got %d", n)
	}
}

func TestExtractIdempotent(t *testing.T) {
	g := testSurface(t, 20, 15)
	orig := slices.Clone(g.Values)
	opts := DefaultOptions()
	opts.Smoothing = 1

	a, err := Extract(g, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Extract(g, opts)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("results differ (-first +second):\n%s", d)
	}
	if d := cmp.Diff(orig, g.Values); d != "" {
		t.Errorf("grid was modified (-before +after):\n%s", d)
	}
}

// TestExtractPointsOnEdges checks that without smoothing every contour
// point lies on a grid edge whose end values enclose the level.
func TestExtractPointsOnEdges(t *testing.T) {
	g := testSurface(t, 25, 18)
	res, err := Extract(g, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Levels) < 2 {
		t.Fatalf("expected several levels, got %d", len(res.Levels))
	}
	for _, lr := range res.Levels {
		if len(lr.Anomalies) > 0 {
			t.Errorf("level %g: %v", lr.Level, lr.Anomalies)
		}
		for _, group := range [][]Path{lr.OpenPaths, lr.ClosedPaths} {
			for _, p := range group {
				for _, pt := range p {
					if msg := checkStraddle(g, lr.Level, pt); msg != "" {
						t.Errorf("level %g, point %v: %s", lr.Level, pt, msg)
					}
				}
			}
		}
		for _, ring := range lr.FillPolygons {
			if len(ring) < 4 || ring[0] != ring[len(ring)-1] {
				t.Errorf("level %g: fill ring %v is not closed", lr.Level, ring)
			}
		}
	}
}

func checkStraddle(g *Grid, level float64, pt vec.Vec2) string {
	const eps = 1e-9
	xi, yi := math.Round(pt.X), math.Round(pt.Y)
	onX := math.Abs(pt.X-xi) < eps
	onY := math.Abs(pt.Y-yi) < eps
	switch {
	case onX && onY:
		if math.Abs(g.At(int(xi), int(yi))-level) > eps {
			return "point on a grid node with a different value"
		}
		return ""
	case onX:
		x, y := int(xi), int(math.Floor(pt.Y))
		a, b := g.At(x, y), g.At(x, y+1)
		if (a-level)*(b-level) > 0 {
			return "vertical edge does not straddle the level"
		}
	case onY:
		x, y := int(math.Floor(pt.X)), int(yi)
		a, b := g.At(x, y), g.At(x+1, y)
		if (a-level)*(b-level) > 0 {
			return "horizontal edge does not straddle the level"
		}
	default:
		return "point not on a grid edge"
	}
	return ""
}

func TestExtractThresholdColors(t *testing.T) {
	c1 := color.NRGBA{R: 255, A: 255}
	c2 := color.NRGBA{G: 255, A: 255}
	c3 := color.NRGBA{B: 255, A: 255}

	g := mustGrid(t, [][]float64{{0, 20, 40}, {20, 40, 60}})
	res, err := Extract(g, &Options{
		Thresholds:   []float64{50, 10, 30},
		UseRealValue: true,
		Colorscale:   colormap.Scale{{Pos: 10, Color: c1}, {Pos: 30, Color: c2}, {Pos: 50, Color: c3}},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := make([]color.NRGBA, len(res.Levels))
	for i, lr := range res.Levels {
		got[i] = lr.Color
	}
	if d := cmp.Diff([]color.NRGBA{c1, c2, c3}, got); d != "" {
		t.Errorf("level colors (-want +got):\n%s", d)
	}
	if !res.Contours.Custom || res.Contours.Size != 0 {
		t.Errorf("expected custom levels, got %+v", res.Contours)
	}
}

func TestExtractEmptyLevelSet(t *testing.T) {
	g := mustGrid(t, [][]float64{{0, 1}, {2, 3}})
	_, err := Extract(g, &Options{Thresholds: []float64{math.NaN()}})
	if !errors.Is(err, ErrEmptyLevelSet) {
		t.Errorf("expected ErrEmptyLevelSet, got %v", err)
	}
	_, err = Extract(g, &Options{Levels: []float64{math.Inf(1)}})
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestExtractMissingValues(t *testing.T) {
	nan := math.NaN()
	g := mustGrid(t, [][]float64{
		{0, 0, 0, 0},
		{0, 5, nan, 0},
		{0, 5, 5, 0},
		{0, 0, 0, 0},
	})
	res, err := Extract(g, &Options{Levels: []float64{2.5}})
	if err != nil {
		t.Fatal(err)
	}
	lr := res.Levels[0]
	if len(lr.Anomalies) != 0 {
		t.Errorf("unexpected anomalies %v", lr.Anomalies)
	}
	if len(lr.OpenPaths) == 0 {
		t.Error("expected paths to end at the hole")
	}
	for _, p := range lr.OpenPaths {
		for _, pt := range p {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
				t.Fatalf("NaN point in path %v", p)
			}
		}
	}
}

func TestExtractAutoLevelsWithinRange(t *testing.T) {
	g := testSurface(t, 10, 10)
	res, err := Extract(g, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	slack := 1e-3 * (res.Stats.MaxValue - res.Stats.MinValue)
	for _, lr := range res.Levels {
		if lr.Level < res.Stats.MinValue-slack || lr.Level > res.Stats.MaxValue+slack {
			t.Errorf("level %g outside the data range (%g, %g)",
				lr.Level, res.Stats.MinValue, res.Stats.MaxValue)
		}
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff(res.Contours.Start, res.Levels[0].Level, opt); d != "" {
		t.Errorf("start does not match first level:\n%s", d)
	}
}

// testSurface returns a smooth grid with several hills and valleys.
func testSurface(t testing.TB, w, h int) *Grid {
	t.Helper()
	values := make([]float64, w*h)
	for y := range h {
		for x := range w {
			fx := float64(x) / float64(w-1) * 2 * math.Pi
			fy := float64(y) / float64(h-1) * 2 * math.Pi
			values[y*w+x] = math.Sin(fx)*math.Cos(1.5*fy) + 0.1*float64(x)
		}
	}
	g, err := NewGridFlat(values, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

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
	"encoding/json"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/contour/colormap"
	"seehuhn.de/go/contour/testcases"
)

// fixtureOptions translates a test case into extraction options.
func fixtureOptions(t testing.TB, tc testcases.TestCase) *Options {
	t.Helper()
	opts := DefaultOptions()
	if err := opts.Coloring.UnmarshalText([]byte(tc.Coloring)); err != nil {
		t.Fatal(err)
	}
	opts.Levels = tc.Levels
	opts.Thresholds = tc.Thresholds
	opts.Smoothing = tc.Smoothing
	return opts
}

func TestFixtures(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				g := mustGrid(t, tc.Rows)
				opts := fixtureOptions(t, tc)
				res, err := Extract(g, opts)
				if err != nil {
					t.Fatal(err)
				}
				if res.Stats.Anomalies != 0 {
					t.Errorf("%d anomalies", res.Stats.Anomalies)
				}
				for _, lr := range res.Levels {
					checkLevel(t, g, lr, opts)
				}
				if _, err := json.Marshal(res); err != nil {
					t.Errorf("encoding result: %v", err)
				}
			})
		}
	}
}

func checkLevel(t *testing.T, g *Grid, lr LevelResult, opts *Options) {
	t.Helper()

	if opts.Coloring != colormap.Fill && lr.FillPolygons != nil {
		t.Errorf("level %g: fill rings without fill coloring", lr.Level)
	}
	for _, ring := range lr.FillPolygons {
		n := len(ring)
		if n < 4 || ring[0] != ring[n-1] {
			t.Errorf("level %g: ring is not closed: %v", lr.Level, ring)
			continue
		}
		distinct := map[[2]float64]bool{}
		for _, p := range ring[:n-1] {
			distinct[[2]float64{p.X, p.Y}] = true
		}
		if len(distinct) < 3 {
			t.Errorf("level %g: ring with %d distinct points", lr.Level, len(distinct))
		}
	}
	for _, p := range lr.OpenPaths {
		if len(p) < 2 {
			t.Errorf("level %g: open path with %d points", lr.Level, len(p))
		}
	}

	if opts.Smoothing > 0 {
		return
	}
	xMax, yMax := float64(g.Width-1), float64(g.Height-1)
	for _, group := range [][]Path{lr.OpenPaths, lr.ClosedPaths} {
		for _, p := range group {
			for _, pt := range p {
				if pt.X < 0 || pt.X > xMax || pt.Y < 0 || pt.Y > yMax {
					t.Errorf("level %g: point %v outside the grid", lr.Level, pt)
					continue
				}
				if msg := checkStraddle(g, lr.Level, pt); msg != "" {
					t.Errorf("level %g, point %v: %s", lr.Level, pt, msg)
				}
			}
		}
	}
}

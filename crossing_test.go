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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCellCode(t *testing.T) {
	cases := []struct {
		name               string
		level              float64
		z00, z01, z11, z10 float64
		want               code
	}{
		{"all below", 3, 1, 1, 1, 1, 0},
		{"all above", 3, 5, 5, 5, 5, 0},
		{"equal counts as below", 3, 3, 3, 3, 3, 0},
		{"one corner above", 3, 1, 1, 5, 1, 11},
		{"one corner below", 3, 1, 5, 5, 5, 1},
		{"saddle 5 low", 3, 1, 5, 1, 5, saddle104},
		{"saddle 5 high", 3.5, 1, 5, 1, 5, saddle713},
		{"saddle 10 low", 2.5, 5, 1, 5, 1, saddle208},
		{"saddle 10 high", 3.5, 5, 1, 5, 1, saddle1114},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cellCode(tc.level, tc.z00, tc.z01, tc.z11, tc.z10)
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestStartSets(t *testing.T) {
	for c := code(1); c < 15; c++ {
		if c == 5 || c == 10 {
			continue
		}
		n := 0
		for _, ok := range []bool{c.entersBottom(), c.entersTop(), c.entersLeft(), c.entersRight()} {
			if ok {
				n++
			}
		}
		if n != 1 {
			t.Errorf("code %d: expected one entry side, got %d", c, n)
		}
		if _, ok := c.next(); !ok {
			t.Errorf("code %d has no exit", c)
		}
	}
	for _, c := range []code{saddle104, saddle208, saddle713, saddle1114} {
		n := 0
		for _, ok := range []bool{c.entersBottom(), c.entersTop(), c.entersLeft(), c.entersRight()} {
			if ok {
				n++
			}
		}
		if n != 2 {
			t.Errorf("saddle %d: expected two entry sides, got %d", c, n)
		}
		if _, ok := c.next(); ok {
			t.Errorf("saddle %d must be resolved before stepping", c)
		}
	}
}

// TestSidesAreCrossed checks that a contour only enters and leaves a
// cell through sides whose two corners lie on opposite sides of the level.
func TestSidesAreCrossed(t *testing.T) {
	// corner bits of the bottom, top, left and right sides
	crossed := func(c code, a, b code) bool {
		return (c&a == 0) != (c&b == 0)
	}
	for c := code(1); c < 15; c++ {
		if c == 5 || c == 10 {
			continue
		}
		s, _ := c.next()
		var out bool
		switch s {
		case step{1, 0}:
			out = crossed(c, 2, 4)
		case step{-1, 0}:
			out = crossed(c, 1, 8)
		case step{0, 1}:
			out = crossed(c, 4, 8)
		case step{0, -1}:
			out = crossed(c, 1, 2)
		}
		if !out {
			t.Errorf("code %d leaves by %v through an uncrossed side", c, s)
		}

		var in bool
		switch {
		case c.entersBottom():
			in = crossed(c, 1, 2) && s != step{0, -1}
		case c.entersTop():
			in = crossed(c, 4, 8) && s != step{0, 1}
		case c.entersLeft():
			in = crossed(c, 1, 8) && s != step{-1, 0}
		case c.entersRight():
			in = crossed(c, 2, 4) && s != step{1, 0}
		}
		if !in {
			t.Errorf("code %d has an invalid entry side", c)
		}
	}
}

func TestResolveSaddle(t *testing.T) {
	cases := []struct {
		c           code
		s           step
		first, rest code
	}{
		{saddle104, step{0, -1}, 4, 1},
		{saddle104, step{0, 1}, 1, 4},
		{saddle208, step{-1, 0}, 2, 8},
		{saddle208, step{1, 0}, 8, 2},
		{saddle713, step{0, -1}, 7, 13},
		{saddle713, step{0, 1}, 13, 7},
		{saddle1114, step{-1, 0}, 11, 14},
		{saddle1114, step{1, 0}, 14, 11},
		{9, step{0, 1}, 9, 0},
	}
	for _, tc := range cases {
		first, rest := tc.c.resolve(tc.s)
		if first != tc.first || rest != tc.rest {
			t.Errorf("resolve(%d, %v): expected %d/%d, got %d/%d",
				tc.c, tc.s, tc.first, tc.rest, first, rest)
		}
	}
}

func TestFindCrossings(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		g := mustGrid(t, [][]float64{{1, 1}, {1, 5}})
		cr := findCrossings(g, 3)
		if d := cmp.Diff(map[cell]code{{0, 0}: 11}, cr.codes, cmp.AllowUnexported(cell{})); d != "" {
			t.Errorf("codes mismatch (-want +got):\n%s", d)
		}
		if d := cmp.Diff([]cell{{0, 0}}, cr.starts, cmp.AllowUnexported(cell{})); d != "" {
			t.Errorf("starts mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("saddle starts twice", func(t *testing.T) {
		g := mustGrid(t, [][]float64{{1, 5}, {5, 1}})
		cr := findCrossings(g, 3)
		if c := cr.codes[cell{0, 0}]; c != saddle104 {
			t.Fatalf("expected saddle 104, got %d", c)
		}
		if d := cmp.Diff([]cell{{0, 0}, {0, 0}}, cr.starts, cmp.AllowUnexported(cell{})); d != "" {
			t.Errorf("starts mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("missing values", func(t *testing.T) {
		nan := math.NaN()
		g := mustGrid(t, [][]float64{{1, 1, nan}, {5, 5, 5}})
		cr := findCrossings(g, 3)
		if d := cmp.Diff(map[cell]code{{0, 0}: 3}, cr.codes, cmp.AllowUnexported(cell{})); d != "" {
			t.Errorf("codes mismatch (-want +got):\n%s", d)
		}
		if d := cmp.Diff([]cell{{0, 0}}, cr.starts, cmp.AllowUnexported(cell{})); d != "" {
			t.Errorf("starts mismatch (-want +got):\n%s", d)
		}
	})

	t.Run("interior loop has no starts", func(t *testing.T) {
		g := mustGrid(t, [][]float64{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}})
		cr := findCrossings(g, 1)
		if len(cr.codes) != 4 || len(cr.order) != 4 {
			t.Errorf("expected 4 crossing cells, got %d", len(cr.codes))
		}
		if len(cr.starts) != 0 {
			t.Errorf("expected no starts, got %v", cr.starts)
		}
	})
}

func mustGrid(t testing.TB, rows [][]float64) *Grid {
	t.Helper()
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

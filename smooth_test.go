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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
)

func TestCatmullRom(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 1, Y: 0}
	p2 := vec.Vec2{X: 2, Y: 0}
	p3 := vec.Vec2{X: 3, Y: 0}

	if d := cmp.Diff(p1, catmullRom(p0, p1, p2, p3, 0), cmpApprox); d != "" {
		t.Errorf("t=0 (-want +got):\n%s", d)
	}
	if d := cmp.Diff(p2, catmullRom(p0, p1, p2, p3, 1), cmpApprox); d != "" {
		t.Errorf("t=1 (-want +got):\n%s", d)
	}
	want := vec.Vec2{X: 1 + 1.0/3, Y: 0}
	if d := cmp.Diff(want, catmullRom(p0, p1, p2, p3, 1.0/3), cmpApprox); d != "" {
		t.Errorf("t=1/3 (-want +got):\n%s", d)
	}
}

func TestSmoothPath(t *testing.T) {
	open := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}

	t.Run("disabled", func(t *testing.T) {
		if d := cmp.Diff(open, smoothPath(open, false, 0)); d != "" {
			t.Errorf("path changed (-want +got):\n%s", d)
		}
	})

	t.Run("open", func(t *testing.T) {
		got := smoothPath(open, false, 1.0/3)
		if len(got) != 7 {
			t.Fatalf("expected 7 points, got %d", len(got))
		}
		if got[0] != open[0] || got[len(got)-1] != open[2] {
			t.Errorf("end points moved: %v", got)
		}
		if got[3] != open[1] {
			t.Errorf("control point %v not kept, got %v", open[1], got[3])
		}
	})

	t.Run("closed", func(t *testing.T) {
		square := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
		got := smoothPath(square, true, 1.0/3)
		if len(got) != 12 {
			t.Fatalf("expected 12 points, got %d", len(got))
		}
		if got[len(got)-1] == got[0] {
			t.Error("closed path has a repeated end point")
		}
	})

	t.Run("passes", func(t *testing.T) {
		got := smoothPath(open, false, 1)
		// three passes: 3 -> 7 -> 19 -> 55 points
		if len(got) != 55 {
			t.Errorf("expected 55 points, got %d", len(got))
		}
	})

	t.Run("crowded", func(t *testing.T) {
		pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1.001, Y: 0}, {X: 2, Y: 0}}
		got := smoothPath(pts, false, 1.0/3)
		// the point next to its successor is dropped before smoothing
		if len(got) != 7 {
			t.Errorf("expected 7 points, got %d", len(got))
		}
	})
}

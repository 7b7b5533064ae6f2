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

	"seehuhn.de/go/geom/vec"
)

// smoothPath refines a contour line with Catmull-Rom splines.  Each pass
// inserts two points on every segment, and round(3*smoothing) passes are
// made.  Open paths keep their end points.  Closed paths are given
// without a repeated end point, and the result has none either.
//
// Paths with fewer than three distinct points are returned unchanged.
func smoothPath(pts []vec.Vec2, closed bool, smoothing float64) []vec.Vec2 {
	if smoothing <= 0 || len(pts) < 3 {
		return pts
	}

	last := len(pts) - 1
	cur := make([]vec.Vec2, 0, len(pts))
	cur = append(cur, pts[0])
	for i := 1; i < last; i++ {
		if pts[i].Sub(pts[i+1]).Length() >= smoothTolerance {
			cur = append(cur, pts[i])
		}
	}
	cur = append(cur, pts[last])
	if len(cur) < 3 {
		return pts
	}

	passes := max(1, int(math.Round(3*smoothing)))
	for range passes {
		n := len(cur)
		at := func(i int) vec.Vec2 {
			if closed {
				return cur[((i%n)+n)%n]
			}
			return cur[min(max(i, 0), n-1)]
		}
		segs := n - 1
		if closed {
			segs = n
		}
		next := make([]vec.Vec2, 0, 3*segs+1)
		for i := range segs {
			p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
			next = append(next, p1)
			for k := 1; k <= 2; k++ {
				next = append(next, catmullRom(p0, p1, p2, p3, float64(k)/3))
			}
		}
		if !closed {
			next = append(next, cur[n-1])
		}
		cur = next
	}
	return cur
}

// catmullRom evaluates the uniform Catmull-Rom spline through p1 and p2
// at parameter t in [0, 1].
func catmullRom(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	t2 := t * t
	t3 := t2 * t
	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(t)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	d := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(t3)
	return a.Add(b).Add(c).Add(d).Mul(0.5)
}

// smoothTolerance is the distance below which neighbouring points are
// merged before smoothing.
const smoothTolerance = 0.005

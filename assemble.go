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

// Perimeter returns the corners of the grid bounding box in grid
// coordinates: (0,0), (w-1,0), (w-1,h-1), (0,h-1).
func (g *Grid) Perimeter() [4]vec.Vec2 {
	w := float64(g.Width - 1)
	h := float64(g.Height - 1)
	return [4]vec.Vec2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

// prefixBoundary reports whether the region above the level covers the
// whole grid, when no contour reaches the grid boundary.
//
// The decision is based on the lower of the first two samples in row 0.
// A level equal to this value counts as "below" if the crossing table
// had start cells.
func prefixBoundary(g *Grid, lp *levelPaths) bool {
	if len(lp.edge) > 0 {
		return false
	}
	ref := referenceValue(g)
	if math.IsNaN(ref) {
		return false
	}
	return ref > lp.level || (lp.hadStarts && ref == lp.level)
}

func referenceValue(g *Grid) float64 {
	a, b := g.At(0, 0), g.At(1, 0)
	switch {
	case isFinite(a) && isFinite(b):
		return min(a, b)
	case isFinite(a):
		return a
	case isFinite(b):
		return b
	}
	for _, v := range g.Values {
		if isFinite(v) {
			return v
		}
	}
	return math.NaN()
}

// fillRings returns closed rings which, filled with the even-odd rule,
// cover the part of the grid where the values are above the level.
//
// The rings are, in this order: the grid perimeter (if prefix is set),
// loops formed from edge paths joined along the perimeter, the closed
// contours, and small rings built around degenerate paths.  Every ring
// has at least three distinct points and its last point equals its first.
func fillRings(g *Grid, lp *levelPaths, prefix bool) [][]vec.Vec2 {
	var rings [][]vec.Vec2
	add := func(pts []vec.Vec2) {
		if r := closeRing(pts); r != nil {
			rings = append(rings, r)
		}
	}

	if prefix {
		p := g.Perimeter()
		add([]vec.Vec2{p[0], p[3], p[2], p[1]})
	}
	for _, r := range stitchEdgePaths(g, lp) {
		add(r)
	}
	for _, r := range lp.closed {
		add(r)
	}
	for _, r := range lp.degenerate {
		add(r)
	}
	return rings
}

// stitchEdgePaths joins edge paths into closed loops by walking clockwise
// along the grid perimeter from the end of one path to the start of the
// next.  Perimeter corners passed on the way become part of the loop.
func stitchEdgePaths(g *Grid, lp *levelPaths) [][]vec.Vec2 {
	b := newBoundary(g)

	usable := make([]bool, len(lp.edge))
	remaining := 0
	for k, ep := range lp.edge {
		if b.on(ep[0]) && b.on(ep[len(ep)-1]) {
			usable[k] = true
			remaining++
		} else {
			Logger().Warn("edge path ends at missing data, not filled",
				"level", lp.level, "start", ep[0], "end", ep[len(ep)-1])
		}
	}
	firstUnused := func() int {
		for k, ok := range usable {
			if ok {
				return k
			}
		}
		return -1
	}

	var rings [][]vec.Vec2
	var ring []vec.Vec2
	i := firstUnused()
	for remaining > 0 {
		ep := lp.edge[i]
		ring = append(ring, ep...)
		usable[i] = false
		remaining--

		// four corners, plus the stretch back along the starting edge
		end := ep[len(ep)-1]
		next := -1
		for range 5 {
			target, ok := b.nextCorner(end)
			if !ok {
				break
			}
			for k, cand := range lp.edge {
				if !b.on(cand[0]) || !b.on(cand[len(cand)-1]) {
					continue
				}
				pt := cand[0]
				if b.between(end, pt, target) {
					target = pt
					next = k
				}
			}
			end = target
			if next >= 0 {
				break
			}
			ring = append(ring, target)
		}

		if next >= 0 && usable[next] {
			i = next
			continue
		}
		if next < 0 {
			Logger().Warn("could not close fill ring along the perimeter",
				"level", lp.level, "points", len(ring))
		}
		rings = append(rings, ring)
		ring = nil
		if remaining > 0 {
			i = firstUnused()
		}
	}
	if ring != nil {
		rings = append(rings, ring)
	}
	return rings
}

// boundary describes the grid perimeter for stitching.
type boundary struct {
	corners [4]vec.Vec2 // top-left, top-right, bottom-right, bottom-left
	xMax    float64
	yMax    float64
}

func newBoundary(g *Grid) *boundary {
	xMax := float64(g.Width - 1)
	yMax := float64(g.Height - 1)
	return &boundary{
		corners: [4]vec.Vec2{
			{X: 0, Y: yMax},
			{X: xMax, Y: yMax},
			{X: xMax, Y: 0},
			{X: 0, Y: 0},
		},
		xMax: xMax,
		yMax: yMax,
	}
}

func (b *boundary) onTop(p vec.Vec2) bool    { return math.Abs(p.Y-b.yMax) < pointTolerance }
func (b *boundary) onBottom(p vec.Vec2) bool { return math.Abs(p.Y) < pointTolerance }
func (b *boundary) onLeft(p vec.Vec2) bool   { return math.Abs(p.X) < pointTolerance }
func (b *boundary) onRight(p vec.Vec2) bool  { return math.Abs(p.X-b.xMax) < pointTolerance }

func (b *boundary) on(p vec.Vec2) bool {
	return b.onTop(p) || b.onBottom(p) || b.onLeft(p) || b.onRight(p)
}

// nextCorner returns the next perimeter corner clockwise from p.
func (b *boundary) nextCorner(p vec.Vec2) (vec.Vec2, bool) {
	switch {
	case b.onTop(p) && !b.onRight(p):
		return b.corners[1], true
	case b.onLeft(p):
		return b.corners[0], true
	case b.onBottom(p):
		return b.corners[3], true
	case b.onRight(p):
		return b.corners[2], true
	}
	return vec.Vec2{}, false
}

// between reports whether p lies on the axis-parallel segment from
// `from` to `to`.
func (b *boundary) between(from, p, to vec.Vec2) bool {
	if math.Abs(from.X-to.X) < pointTolerance {
		return math.Abs(from.X-p.X) < pointTolerance && (p.Y-from.Y)*(to.Y-p.Y) >= 0
	}
	if math.Abs(from.Y-to.Y) < pointTolerance {
		return math.Abs(from.Y-p.Y) < pointTolerance && (p.X-from.X)*(to.X-p.X) >= 0
	}
	return false
}

// closeRing removes repeated points from pts and closes the ring.
// Rings with fewer than three distinct points are replaced by a small
// polygon around the points.  An empty input gives nil.
func closeRing(pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(pts)+1)
	for _, p := range pts {
		if len(out) == 0 || !nearlyEqual(p, out[len(out)-1]) {
			out = append(out, p)
		}
	}
	for len(out) > 1 && nearlyEqual(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return squareRing(out[0])
	case 2:
		return thinRing(out[0], out[1])
	}
	return append(out, out[0])
}

// squareRing returns a closed unit square centred at p.
func squareRing(p vec.Vec2) []vec.Vec2 {
	const d = degenerateHalfSize
	return []vec.Vec2{
		{X: p.X - d, Y: p.Y - d},
		{X: p.X + d, Y: p.Y - d},
		{X: p.X + d, Y: p.Y + d},
		{X: p.X - d, Y: p.Y + d},
		{X: p.X - d, Y: p.Y - d},
	}
}

// thinRing returns a closed narrow rectangle around the segment a-b.
func thinRing(a, b vec.Vec2) []vec.Vec2 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return squareRing(a)
	}
	n := vec.Vec2{X: -d.Y / l * degenerateOffset, Y: d.X / l * degenerateOffset}
	return []vec.Vec2{
		a.Add(n),
		b.Add(n),
		b.Sub(n),
		a.Sub(n),
		a.Add(n),
	}
}

const (
	// degenerateHalfSize is the half side length of the square which
	// replaces a single-point fill ring.
	degenerateHalfSize = 0.5

	// degenerateOffset is the half width of the rectangle which replaces
	// a two-point fill ring.
	degenerateOffset = 0.2
)

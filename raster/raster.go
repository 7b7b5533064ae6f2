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

// Package raster renders contour geometry into anti-aliased images.
//
// The [Rasterizer] computes the exact fraction of each pixel covered by a
// polygon, using signed area accumulation along scanlines.  [Paint] uses
// it to draw a complete contour plot.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
}

// Rasterizer converts polygons to pixel coverage values between 0
// (outside) and 1 (inside).  Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Width is the line width used by Stroke, in device pixels.
	Width float64

	edges  []edge
	cover  []float32
	area   []float32
	rowHit []bool
	pieces path.Data
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity transformation and a line width of one pixel.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,
	}
}

// FillNonZero fills p using the nonzero winding rule.  The emit callback
// receives coverage row by row; its slice argument is valid only during
// the call.  Curves are approximated by line segments.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, false, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, true, emit)
}

func (r *Rasterizer) fill(p *path.Data, evenOdd bool, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	var cur, start vec.Vec2
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			// open subpaths are closed implicitly
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[i]
			start = cur
			i++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[i])
			cur = p.Coords[i]
			i++
		case path.CmdQuadTo:
			c, end := p.Coords[i], p.Coords[i+1]
			r.addCurve(cur, end, func(t float64) vec.Vec2 {
				s := 1 - t
				return cur.Mul(s * s).Add(c.Mul(2 * s * t)).Add(end.Mul(t * t))
			})
			cur = end
			i += 2
		case path.CmdCubeTo:
			c1, c2, end := p.Coords[i], p.Coords[i+1], p.Coords[i+2]
			r.addCurve(cur, end, func(t float64) vec.Vec2 {
				s := 1 - t
				return cur.Mul(s * s * s).Add(c1.Mul(3 * s * s * t)).
					Add(c2.Mul(3 * s * t * t)).Add(end.Mul(t * t * t))
			})
			cur = end
			i += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}
	r.rasterize(evenOdd, emit)
}

// addCurve approximates a curve from p0 to p1 by line segments.
func (r *Rasterizer) addCurve(p0, p1 vec.Vec2, at func(t float64) vec.Vec2) {
	prev := p0
	for k := 1; k < curveSegments; k++ {
		pt := at(float64(k) / curveSegments)
		r.addEdge(prev, pt)
		prev = pt
	}
	r.addEdge(prev, p1)
}

// addEdge adds the segment from p0 to p1, given in user space.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	e := edge{
		x0: m[0]*p0.X + m[2]*p0.Y + m[4],
		y0: m[1]*p0.X + m[3]*p0.Y + m[5],
		x1: m[0]*p1.X + m[2]*p1.Y + m[4],
		y1: m[1]*p1.X + m[3]*p1.Y + m[5],
	}
	if math.Abs(e.y1-e.y0) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, e)
}

// rasterize accumulates all edges into per-row cover and area buffers,
// then integrates each row from left to right.
//
// An edge piece inside a pixel contributes its signed vertical extent
// dy to cover, and dy times the uncovered fraction to the left of the
// piece to area.  The coverage of pixel i is then the sum of cover over
// all pixels left of i, plus area[i].
func (r *Rasterizer) rasterize(evenOdd bool, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	bxMin, bxMax := math.Inf(1), math.Inf(-1)
	byMin, byMax := math.Inf(1), math.Inf(-1)
	for _, e := range r.edges {
		bxMin = min(bxMin, e.x0, e.x1)
		bxMax = max(bxMax, e.x0, e.x1)
		byMin = min(byMin, e.y0, e.y1)
		byMax = max(byMax, e.y0, e.y1)
	}
	xMin := max(int(math.Floor(bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	w, h := xMax-xMin, yMax-yMin
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowHit = slices.Grow(r.rowHit[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowHit)

	for _, e := range r.edges {
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := (y - yMin) * w
			if accumulate(e, y, r.cover[row:row+w], r.area[row:row+w], xMin) {
				r.rowHit[y-yMin] = true
			}
		}
	}

	for j := range h {
		if !r.rowHit[j] {
			continue
		}
		cov := r.cover[j*w : (j+1)*w]
		integrate(cov, r.area[j*w:(j+1)*w], evenOdd)
		lo, hi := 0, w
		for lo < hi && cov[lo] == 0 {
			lo++
		}
		for hi > lo && cov[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(yMin+j, xMin+lo, cov[lo:hi])
		}
	}
}

// accumulate adds the part of e inside scanline [y, y+1) to the row
// buffers, which start at device column xMin.  Contributions left of the
// buffer are added to its first pixel as full coverage.  It reports
// whether anything was added.
func accumulate(e edge, y int, cover, area []float32, xMin int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return false
	}
	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}
	dxdy := (e.x1 - e.x0) / (e.y1 - e.y0)
	xTop := e.x0 + dxdy*(top-e.y0)
	xBot := e.x0 + dxdy*(bot-e.y0)

	add := func(ya, yb float64) {
		dy := yb - ya
		if dy <= 0 {
			return
		}
		xm := e.x0 + dxdy*((ya+yb)/2-e.y0)
		pix := int(math.Floor(xm))
		c := float32(sign * dy)
		switch i := pix - xMin; {
		case i < 0:
			cover[0] += c
			area[0] += c
		case i < len(cover):
			cover[i] += c
			area[i] += c * float32(1-(xm-float64(pix)))
		}
	}

	left, right := min(xTop, xBot), max(xTop, xBot)
	pl, pr := int(math.Floor(left)), int(math.Floor(right))
	if pl == pr {
		add(top, bot)
		return true
	}

	// split the piece at the pixel column boundaries it crosses
	dydx := 1 / dxdy
	ya := top
	if xTop < xBot {
		for b := pl + 1; b <= pr; b++ {
			yb := e.y0 + dydx*(float64(b)-e.x0)
			yb = min(max(yb, ya), bot)
			add(ya, yb)
			ya = yb
		}
	} else {
		for b := pr; b > pl; b-- {
			yb := e.y0 + dydx*(float64(b)-e.x0)
			yb = min(max(yb, ya), bot)
			add(ya, yb)
			ya = yb
		}
	}
	add(ya, bot)
	return true
}

// integrate turns the accumulated cover and area of one row into
// coverage values, in place.
func integrate(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if evenOdd {
			raw -= 2 * float32(math.Floor(float64(raw/2)))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// curveSegments is the number of line segments used per curve.
	curveSegments = 16
)

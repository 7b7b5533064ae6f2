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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// levelPaths collects the traced contours of one level.
type levelPaths struct {
	level float64

	// edge holds open paths which start and end where the contour
	// leaves the valid part of the grid.
	edge [][]vec.Vec2

	// closed holds closed loops, without a repeated end point.
	closed [][]vec.Vec2

	// degenerate holds paths which collapsed to fewer than two points
	// (or two points for loops).  They are only used for fill rings.
	degenerate [][]vec.Vec2

	anomalies []Anomaly

	// hadStarts records whether the crossing table had start cells.
	hadStarts bool
}

// tracer walks the contours of one level through its crossing table.
type tracer struct {
	g         *Grid
	cr        *crossings
	smoothing float64
	limit     int
	res       *levelPaths
}

// tracePaths follows all contours recorded in cr.  The crossing table is
// emptied in the process.
//
// Contours which enter the grid from outside are traced first, starting
// from the recorded start cells.  The remaining entries of the table
// then seed the closed loops, in scan order.
func tracePaths(g *Grid, cr *crossings, smoothing float64) *levelPaths {
	t := &tracer{
		g:         g,
		cr:        cr,
		smoothing: smoothing,
		limit:     max(minStepLimit, 2*len(cr.codes)+2),
		res: &levelPaths{
			level:     cr.level,
			hadStarts: len(cr.starts) > 0,
		},
	}

	for _, loc := range cr.starts {
		if _, ok := cr.codes[loc]; ok {
			t.trace(loc, true)
		}
	}
	for _, loc := range cr.order {
		for {
			if _, ok := cr.codes[loc]; !ok {
				break
			}
			t.trace(loc, false)
		}
	}
	return t.res
}

// trace follows one contour from the cell start and files the result.
func (t *tracer) trace(start cell, fromEdge bool) {
	codes := t.cr.codes
	c := codes[start]
	startStep := t.startStep(start, c, fromEdge)

	pts := []vec.Vec2{t.interp(start, startStep.neg())}
	loc := start
	s := startStep
	for n := 0; ; n++ {
		if n >= t.limit {
			t.abandon(ErrIterationLimit, loc, n)
			return
		}

		if c.isSaddle() {
			var rest code
			c, rest = c.resolve(s)
			codes[loc] = rest
		} else {
			delete(codes, loc)
		}

		next, ok := c.next()
		if !ok {
			t.abandon(ErrTopologyAnomaly, loc, n)
			return
		}
		p := t.interp(loc, next)
		if !nearlyEqual(p, pts[len(pts)-1]) {
			pts = append(pts, p)
		}

		loc = cell{loc.x + next.dx, loc.y + next.dy}
		s = next
		if loc == start && s == startStep {
			t.finish(pts, true)
			return
		}
		if !t.g.cellValid(loc.x, loc.y) {
			t.finish(pts, false)
			return
		}
		c, ok = codes[loc]
		if !ok {
			t.abandon(ErrTopologyAnomaly, loc, n+1)
			return
		}
	}
}

// startStep returns the direction in which the contour through cell loc
// is travelling when it enters the cell.
func (t *tracer) startStep(loc cell, c code, fromEdge bool) step {
	if c.isSaddle() && fromEdge {
		if c == saddle208 || c == saddle1114 {
			if !t.g.cellValid(loc.x-1, loc.y) {
				return step{1, 0}
			}
			return step{-1, 0}
		}
		if !t.g.cellValid(loc.x, loc.y-1) {
			return step{0, 1}
		}
		return step{0, -1}
	}
	switch {
	case c.entersBottom():
		return step{0, 1}
	case c.entersLeft():
		return step{1, 0}
	case c.entersTop():
		return step{0, -1}
	default:
		return step{-1, 0}
	}
}

// interp returns the point where the contour crosses the side of cell
// loc through which step s leaves the cell.
func (t *tracer) interp(loc cell, s step) vec.Vec2 {
	g := t.g
	x := loc.x + max(s.dx, 0)
	y := loc.y + max(s.dy, 0)
	z0 := g.At(x, y)
	if s.dy != 0 {
		f := edgeFraction(t.cr.level, z0, g.At(x+1, y))
		return vec.Vec2{X: float64(x) + f, Y: float64(y)}
	}
	f := edgeFraction(t.cr.level, z0, g.At(x, y+1))
	return vec.Vec2{X: float64(x), Y: float64(y) + f}
}

// edgeFraction returns the relative position of level between a and b,
// clamped to [0, 1].  Equal end values give the midpoint.
func edgeFraction(level, a, b float64) float64 {
	if a == b {
		return 0.5
	}
	f := (level - a) / (b - a)
	return min(max(f, 0), 1)
}

func (t *tracer) abandon(kind error, loc cell, steps int) {
	a := Anomaly{
		Level: t.cr.level,
		Kind:  kind,
		X:     loc.x,
		Y:     loc.y,
		Steps: steps,
	}
	Logger().Warn("contour path abandoned",
		"level", a.Level, "reason", kind, "x", a.X, "y", a.Y, "steps", steps)
	t.res.anomalies = append(t.res.anomalies, a)
}

// finish thins the points of a traced contour and files it as a closed
// loop, an edge path or a degenerate path.
func (t *tracer) finish(pts []vec.Vec2, closed bool) {
	res := t.res
	if closed && len(pts) > 1 && nearlyEqual(pts[0], pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if t.smoothing > 0 {
		pts = thin(pts, closed, t.smoothing)
	}

	if closed {
		if len(pts) < 2 {
			res.degenerate = append(res.degenerate, pts)
			return
		}
		res.closed = append(res.closed, pts)
		return
	}
	if len(pts) < 2 {
		res.degenerate = append(res.degenerate, pts)
		return
	}
	res.addEdgePath(pts)
}

// addEdgePath adds an open path, joining it to existing edge paths where
// the end points coincide.  A path which joins both ends of the same edge
// path turns it into a closed loop.
func (res *levelPaths) addEdgePath(pts []vec.Vec2) {
	for k, ep := range res.edge {
		if !nearlyEqual(ep[0], pts[len(pts)-1]) {
			continue
		}
		pts = pts[:len(pts)-1]
		for j, ep2 := range res.edge {
			if len(pts) == 0 || !nearlyEqual(ep2[len(ep2)-1], pts[0]) {
				continue
			}
			pts = pts[1:]
			if j == k {
				res.edge = slices.Delete(res.edge, k, k+1)
				res.closed = append(res.closed, slices.Concat(pts, ep))
				return
			}
			joined := slices.Concat(ep2, pts, ep)
			res.edge[j] = joined
			res.edge = slices.Delete(res.edge, k, k+1)
			return
		}
		res.edge[k] = slices.Concat(pts, ep)
		return
	}
	for k, ep := range res.edge {
		if nearlyEqual(ep[len(ep)-1], pts[0]) {
			res.edge[k] = slices.Concat(ep, pts[1:])
			return
		}
	}
	res.edge = append(res.edge, pts)
}

// thin replaces runs of points which are much closer together than the
// average spacing by a single representative point.  The end points of
// open paths are kept.
func thin(pts []vec.Vec2, closed bool, smoothing float64) []vec.Vec2 {
	n := len(pts)
	if n < 3 {
		return pts
	}
	dist := make([]float64, n-1)
	var total float64
	for i := range dist {
		dist[i] = pts[i+1].Sub(pts[i]).Length()
		total += dist[i]
	}
	threshold := total / float64(len(dist)) * thinFactor * smoothing

	out := make([]vec.Vec2, 0, n)
	i := 0
	for i < n {
		j := i
		var run float64
		for j < n-1 && run+dist[j] < threshold {
			run += dist[j]
			j++
		}
		switch {
		case j == i:
			out = append(out, pts[i])
		case !closed && i == 0:
			out = append(out, pts[0])
		case !closed && j == n-1:
			out = append(out, pts[n-1])
		case (j-i+1)%2 == 1:
			out = append(out, pts[(i+j)/2])
		default:
			m := (i + j) / 2
			out = append(out, pts[m].Add(pts[m+1]).Mul(0.5))
		}
		i = j + 1
	}
	return out
}

func nearlyEqual(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < pointTolerance
}

const (
	// minStepLimit bounds the number of cells visited by one contour.
	// Larger crossing tables raise the bound to 2 steps per entry.
	minStepLimit = 10000

	// pointTolerance is the distance, in grid units, below which two
	// contour points are considered equal.
	pointTolerance = 0.01

	// thinFactor scales the average point spacing to the distance below
	// which neighbouring points are merged, per unit of smoothing.
	thinFactor = 0.2
)

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

package raster

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Stroke draws the outline of p with line width r.Width, measured in
// device pixels.  Segments end in butt caps and are connected by bevel
// joins.  Curves are approximated by line segments.
//
// The stroke is built as a union of one quadrilateral per segment and
// one triangle per join, all with the same orientation, and filled with
// the nonzero rule.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if r.Width <= 0 {
		return
	}
	r.pieces.Cmds = r.pieces.Cmds[:0]
	r.pieces.Coords = r.pieces.Coords[:0]

	var sub []vec.Vec2
	closed := false
	flush := func() {
		r.strokeSubpath(sub, closed)
		sub = sub[:0]
		closed = false
	}
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			sub = append(sub, r.toDevice(pts[0]))
		case path.CmdLineTo:
			sub = append(sub, r.toDevice(pts[0]))
		case path.CmdQuadTo, path.CmdCubeTo:
			sub = append(sub, r.toDevice(pts[len(pts)-1]))
		case path.CmdClose:
			closed = true
			flush()
		}
	}
	flush()

	ctm := r.CTM
	r.CTM = matrix.Identity
	r.fill(&r.pieces, false, emit)
	r.CTM = ctm
}

func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// strokeSubpath appends the pieces for one subpath, given in device
// coordinates.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool) {
	// drop repeated points, they have no direction
	k := 0
	for i, pt := range pts {
		if i == 0 || pt != pts[k-1] {
			pts[k] = pt
			k++
		}
	}
	pts = pts[:k]
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return
	}

	d := r.Width / 2
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	normal := func(i int) vec.Vec2 {
		t := pts[(i+1)%n].Sub(pts[i])
		t = t.Mul(1 / t.Length())
		return vec.Vec2{X: -t.Y, Y: t.X}
	}

	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		nd := normal(i).Mul(d)
		r.addPiece(a.Add(nd), b.Add(nd), b.Sub(nd), a.Sub(nd))
	}

	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for j := first; j < last; j++ {
		c := pts[j]
		n1, n2 := normal((j+n-1)%n), normal(j)
		// the outer side of the turn is opposite to the turn direction
		turn := n1.X*n2.Y - n1.Y*n2.X
		switch {
		case turn > 0:
			r.addPiece(c, c.Sub(n1.Mul(d)), c.Sub(n2.Mul(d)))
		case turn < 0:
			r.addPiece(c, c.Add(n1.Mul(d)), c.Add(n2.Mul(d)))
		}
	}
}

// addPiece appends a closed polygon, reversed if needed so that all
// pieces share one orientation.
func (r *Rasterizer) addPiece(pts ...vec.Vec2) {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	if a > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	r.pieces.MoveTo(pts[0])
	for _, p := range pts[1:] {
		r.pieces.LineTo(p)
	}
	r.pieces.Close()
}

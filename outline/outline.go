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

// Package outline converts contour paths into vector outlines.
//
// The outlines use [path.Data] from seehuhn.de/go/geom, so that they can
// be filled or stroked by any renderer which understands this format,
// and can be written as the "d" attribute of an SVG path element.
package outline

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// Rings appends one subpath per element of paths.  If closed is set,
// every subpath is closed, and a final point which repeats the first
// point is dropped.  Paths with fewer than two points are skipped.
func Rings[P ~[]vec.Vec2](paths []P, closed bool) *path.Data {
	res := &path.Data{}
	for _, p := range paths {
		pts := []vec.Vec2(p)
		if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}
		res.MoveTo(pts[0])
		for _, pt := range pts[1:] {
			res.LineTo(pt)
		}
		if closed {
			res.Close()
		}
	}
	return res
}

// Level returns the outlines of one contour level: the fill region
// (to be filled with the even-odd rule) and the contour lines.
func Level(lr *contour.LevelResult) (fill, lines *path.Data) {
	fill = Rings(lr.FillPolygons, true)
	lines = Rings(lr.OpenPaths, false)
	closed := Rings(lr.ClosedPaths, true)
	lines.Cmds = append(lines.Cmds, closed.Cmds...)
	lines.Coords = append(lines.Coords, closed.Coords...)
	return fill, lines
}

// GridToDevice returns the transformation which maps grid coordinates of
// a gridW×gridH grid onto a width×height device area with the origin in
// the top-left corner.  Grid row 0 ends up at the bottom.
func GridToDevice(gridW, gridH int, width, height float64) matrix.Matrix {
	sx := width / float64(max(gridW-1, 1))
	sy := height / float64(max(gridH-1, 1))
	return matrix.Matrix{sx, 0, 0, -sy, 0, height}
}

// Transform returns a copy of p with m applied to all points.
func Transform(p *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   append([]path.Command(nil), p.Cmds...),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, pt := range p.Coords {
		res.Coords[i] = vec.Vec2{
			X: m[0]*pt.X + m[2]*pt.Y + m[4],
			Y: m[1]*pt.X + m[3]*pt.Y + m[5],
		}
	}
	return res
}

// SVG formats p as the "d" attribute of an SVG path element.  Numbers are
// written with at most precision digits after the decimal point.
func SVG(p *path.Data, precision int) string {
	var b strings.Builder
	num := func(v float64) {
		s := strconv.FormatFloat(v, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		b.WriteString(s)
	}
	pts := func(cmd byte, coords []vec.Vec2) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(cmd)
		for _, pt := range coords {
			b.WriteByte(' ')
			num(pt.X)
			b.WriteByte(' ')
			num(pt.Y)
		}
	}

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pts('M', p.Coords[i:i+1])
			i++
		case path.CmdLineTo:
			pts('L', p.Coords[i:i+1])
			i++
		case path.CmdQuadTo:
			pts('Q', p.Coords[i:i+2])
			i += 2
		case path.CmdCubeTo:
			pts('C', p.Coords[i:i+3])
			i += 3
		case path.CmdClose:
			pts('Z', nil)
		}
	}
	return b.String()
}

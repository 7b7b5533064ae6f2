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

// Package chart draws contour plots with axes and labels, using
// gonum.org/v1/plot.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour"
)

// Options controls the appearance of a chart.
type Options struct {
	Title          string
	XLabel, YLabel string

	// LineWidth is the width of contour lines.  Zero selects 1 point.
	LineWidth vg.Length

	// Legend adds one legend entry per level.
	Legend bool
}

// New returns a plot of res in grid coordinates.  Filled bands are
// drawn in level order, contour lines on top of them.
func New(res *contour.Result, opts *Options) (*plot.Plot, error) {
	if opts == nil {
		opts = &Options{}
	}
	lw := opts.LineWidth
	if lw == 0 {
		lw = vg.Points(1)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.X.Min, p.X.Max = 0, float64(max(res.Width-1, 1))
	p.Y.Min, p.Y.Max = 0, float64(max(res.Height-1, 1))

	for _, lr := range res.Levels {
		if len(lr.FillPolygons) == 0 {
			continue
		}
		rings := orient(lr.FillPolygons)
		xys := make([]plotter.XYer, len(rings))
		for i, ring := range rings {
			xys[i] = toXYs(ring, false)
		}
		poly, err := plotter.NewPolygon(xys...)
		if err != nil {
			return nil, fmt.Errorf("level %g: %w", lr.Level, err)
		}
		poly.Color = lr.Color
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	for _, lr := range res.Levels {
		col := color.Color(lr.Color)
		if len(lr.FillPolygons) > 0 {
			col = color.Black
		}
		var first *plotter.Line
		add := func(pts contour.Path, closed bool) error {
			if len(pts) < 2 {
				return nil
			}
			line, err := plotter.NewLine(toXYs(pts, closed))
			if err != nil {
				return fmt.Errorf("level %g: %w", lr.Level, err)
			}
			line.Color = col
			line.Width = lw
			p.Add(line)
			if first == nil {
				first = line
			}
			return nil
		}
		for _, pts := range lr.OpenPaths {
			if err := add(pts, false); err != nil {
				return nil, err
			}
		}
		for _, pts := range lr.ClosedPaths {
			if err := add(pts, true); err != nil {
				return nil, err
			}
		}
		if opts.Legend && first != nil {
			p.Legend.Add(fmt.Sprintf("%g", lr.Level), first)
		}
	}
	if opts.Legend {
		p.Legend.Top = true
		p.Legend.XOffs = -10
		p.Legend.YOffs = -10
	}
	return p, nil
}

// Save writes a chart of res to fname.  The file extension selects the
// format, for example ".png", ".svg" or ".pdf".
func Save(res *contour.Result, fname string, width, height vg.Length, opts *Options) error {
	p, err := New(res, opts)
	if err != nil {
		return err
	}
	return p.Save(width, height, fname)
}

func toXYs(pts contour.Path, closed bool) plotter.XYs {
	n := len(pts)
	if closed && n > 0 && pts[0] != pts[n-1] {
		n++
	}
	xys := make(plotter.XYs, 0, n)
	for _, pt := range pts {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	if len(xys) < n {
		xys = append(xys, xys[0])
	}
	return xys
}

// orient returns copies of the rings with their orientation chosen by
// nesting depth: counter-clockwise at even depth and clockwise at odd
// depth.  The even-odd region of the input is then also the nonzero
// region of the output.
func orient(rings []contour.Path) []contour.Path {
	res := make([]contour.Path, len(rings))
	for i, ring := range rings {
		depth := 0
		if len(ring) > 0 {
			probe := ring[0]
			for j, other := range rings {
				if j != i && inside(probe, other) {
					depth++
				}
			}
		}
		ccw := signedArea(ring) > 0
		out := append(contour.Path(nil), ring...)
		if ccw != (depth%2 == 0) {
			for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
				out[a], out[b] = out[b], out[a]
			}
		}
		res[i] = out
	}
	return res
}

func signedArea(ring contour.Path) float64 {
	var a float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// inside reports whether p lies inside ring, by ray casting.
func inside(p vec.Vec2, ring contour.Path) bool {
	in := false
	n := len(ring)
	for i := range n {
		a, b := ring[i], ring[(i+n-1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

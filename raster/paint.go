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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/outline"
)

// LineColor is used for contour lines on top of filled bands.
var LineColor = color.NRGBA{A: 160}

// Paint draws res into a new w×h image.  Grid row 0 is at the bottom of
// the image.  Filled bands are composited in level order, so that each
// level paints over the region above it; contour lines are drawn on top.
// Levels without fill polygons draw their lines in the level color.
func Paint(res *contour.Result, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	p := NewPainter(img)
	p.SetTransform(outline.GridToDevice(res.Width, res.Height, float64(w), float64(h)))

	type strokeJob struct {
		lines *path.Data
		col   color.NRGBA
	}
	var jobs []strokeJob
	for i := range res.Levels {
		lr := &res.Levels[i]
		fill, lines := outline.Level(lr)
		col := lr.Color
		if len(fill.Cmds) > 0 {
			p.Fill(fill, col)
			col = LineColor
		}
		jobs = append(jobs, strokeJob{lines, col})
	}
	for _, job := range jobs {
		p.Stroke(job.lines, job.col)
	}
	return img
}

// Painter composites rasterized paths onto an image.
type Painter struct {
	dst  *image.NRGBA
	mask *image.Alpha
	r    *Rasterizer
}

// NewPainter returns a Painter which draws into dst.  Paths are given in
// device coordinates until SetTransform is called.
func NewPainter(dst *image.NRGBA) *Painter {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Painter{
		dst:  dst,
		mask: image.NewAlpha(b),
		r:    NewRasterizer(clip),
	}
}

// Fill paints the region enclosed by p, using the even-odd rule.
func (p *Painter) Fill(d *path.Data, col color.NRGBA) {
	p.draw(col, func(emit func(y, xMin int, coverage []float32)) {
		p.r.FillEvenOdd(d, emit)
	})
}

// Stroke paints the lines of d, see SetLineWidth.
func (p *Painter) Stroke(d *path.Data, col color.NRGBA) {
	p.draw(col, func(emit func(y, xMin int, coverage []float32)) {
		p.r.Stroke(d, emit)
	})
}

// SetTransform sets the map from path coordinates to device coordinates.
func (p *Painter) SetTransform(m matrix.Matrix) {
	p.r.CTM = m
}

// SetLineWidth sets the width used by Stroke, in device pixels.
func (p *Painter) SetLineWidth(w float64) {
	p.r.Width = w
}

func (p *Painter) draw(col color.NRGBA, render func(emit func(y, xMin int, coverage []float32))) {
	clear(p.mask.Pix)
	touched := image.Rectangle{}
	render(func(y, xMin int, coverage []float32) {
		row := p.mask.PixOffset(xMin, y)
		for i, c := range coverage {
			p.mask.Pix[row+i] = uint8(c*255 + 0.5)
		}
		touched = touched.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if touched.Empty() {
		return
	}
	draw.DrawMask(p.dst, touched, image.NewUniform(col), image.Point{}, p.mask, touched.Min, draw.Over)
}

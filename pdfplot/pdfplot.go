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

// Package pdfplot writes contour plots as single-page PDF files.
package pdfplot

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/outline"
)

// Options controls the page layout.
type Options struct {
	// Width and Height give the page size in PDF points.  Zero values
	// select 4 points per grid cell.
	Width, Height float64

	// LineWidth is the width of contour lines in PDF points.  Zero
	// selects 0.5.
	LineWidth float64

	// NoLines suppresses contour lines on filled levels.
	NoLines bool
}

// Write draws res onto a new PDF page and saves it as fname.
// Colors are converted to shades of gray.  Grid row 0 is at the bottom
// of the page.
func Write(fname string, res *contour.Result, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if res.Width < 2 || res.Height < 2 {
		return errors.New("pdfplot: grid too small")
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 4 * float64(res.Width-1)
	}
	if h <= 0 {
		h = 4 * float64(res.Height-1)
	}
	lw := opts.LineWidth
	if lw <= 0 {
		lw = 0.5
	}

	page, err := document.CreateSinglePage(fname, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has its origin in the bottom-left corner, like the grid
	toPage := matrix.Matrix{
		w / float64(res.Width-1), 0,
		0, h / float64(res.Height-1),
		0, 0,
	}

	for i := range res.Levels {
		lr := &res.Levels[i]
		fill, _ := outline.Level(lr)
		if len(fill.Cmds) == 0 {
			continue
		}
		page.SetFillColor(Gray(lr.Color))
		drawPath(page, outline.Transform(fill, toPage))
		page.FillEvenOdd()
	}

	page.SetLineWidth(lw)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinBevel)
	for i := range res.Levels {
		lr := &res.Levels[i]
		_, lines := outline.Level(lr)
		if len(lines.Cmds) == 0 {
			continue
		}
		if len(lr.FillPolygons) > 0 {
			if opts.NoLines {
				continue
			}
			page.SetStrokeColor(pdfcolor.DeviceGray(0))
		} else {
			page.SetStrokeColor(Gray(lr.Color))
		}
		drawPath(page, outline.Transform(lines, toPage))
		page.Stroke()
	}

	return page.Close()
}

// Gray converts c to a device gray color, using the luma weights of
// ITU-R BT.601.  Transparency is blended against a white page.
func Gray(c color.NRGBA) pdfcolor.DeviceGray {
	y := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	a := float64(c.A) / 255
	return pdfcolor.DeviceGray(a*y + (1 - a))
}

type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func drawPath(page pathBuilder, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

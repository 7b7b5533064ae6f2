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

package main

import (
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/colormap"
	"seehuhn.de/go/contour/outline"
)

// writeSVG writes res as an SVG image with one path element for the
// filled band and one for the lines of each level.
func writeSVG(w io.Writer, res *contour.Result, width, height int) error {
	m := outline.GridToDevice(res.Width, res.Height, float64(width), float64(height))

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	for i := range res.Levels {
		lr := &res.Levels[i]
		fill, lines := outline.Level(lr)
		col := colormap.Format(lr.Color)
		if len(fill.Cmds) > 0 {
			fmt.Fprintf(bw, "<path fill=\"%s\" fill-rule=\"evenodd\" d=\"%s\"/>\n",
				col, outline.SVG(outline.Transform(fill, m), 2))
			col = "black"
		}
		if len(lines.Cmds) > 0 {
			fmt.Fprintf(bw, "<path fill=\"none\" stroke=\"%s\" d=\"%s\"/>\n",
				col, outline.SVG(outline.Transform(lines, m), 2))
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

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

// Command genpdf draws every test case as a contour plot.  It writes
// PDF files and, if Ghostscript is installed, renders them to PNGs for
// visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/pdfplot"
	"seehuhn.de/go/contour/testcases"
)

const plotDir = "testdata/plots"

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(plotDir, name+".pdf")
			pngPath := filepath.Join(plotDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if !haveGS {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	g, err := contour.NewGrid(tc.Rows)
	if err != nil {
		return err
	}
	opts := contour.DefaultOptions()
	if err := opts.Coloring.UnmarshalText([]byte(tc.Coloring)); err != nil {
		return err
	}
	opts.Levels = tc.Levels
	opts.Thresholds = tc.Thresholds
	opts.Smoothing = tc.Smoothing

	res, err := contour.Extract(g, opts)
	if err != nil {
		return err
	}

	// 12 points per grid cell keeps small grids legible
	return pdfplot.Write(pdfPath, res, &pdfplot.Options{
		Width:  12 * float64(tc.Width()-1),
		Height: 12 * float64(tc.Height()-1),
	})
}

func renderPNG(pdfPath, pngPath string) error {
	// -r144: 2 pixels per point
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

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

package pdfplot

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/contour"
)

func TestWrite(t *testing.T) {
	rows := [][]float64{
		{0, 0, 0, 0},
		{0, 2, 3, 0},
		{0, 3, 2, 0},
		{0, 0, 0, 0},
	}
	g, err := contour.NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	for _, coloring := range []string{"fill", "lines"} {
		t.Run(coloring, func(t *testing.T) {
			opts := contour.DefaultOptions()
			if err := opts.Coloring.UnmarshalText([]byte(coloring)); err != nil {
				t.Fatal(err)
			}
			res, err := contour.Extract(g, opts)
			if err != nil {
				t.Fatal(err)
			}

			fname := filepath.Join(t.TempDir(), "plot.pdf")
			if err := Write(fname, res, nil); err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(fname)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("output is not a PDF file")
			}
		})
	}
}

func TestWriteTooSmall(t *testing.T) {
	res := &contour.Result{Width: 1, Height: 5}
	fname := filepath.Join(t.TempDir(), "plot.pdf")
	if err := Write(fname, res, nil); err == nil {
		t.Error("expected an error")
	}
	if _, err := os.Stat(fname); err == nil {
		t.Error("file was created")
	}
}

func TestGray(t *testing.T) {
	cases := []struct {
		in   color.NRGBA
		want float64
	}{
		{color.NRGBA{A: 255}, 0},
		{color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 1},
		{color.NRGBA{R: 255, A: 255}, 0.299},
		{color.NRGBA{G: 255, A: 255}, 0.587},
		{color.NRGBA{}, 1},
		{color.NRGBA{A: 51}, 0.8},
	}
	for _, c := range cases {
		got := float64(Gray(c.in))
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Gray(%v) = %g, want %g", c.in, got, c.want)
		}
	}
}

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

package testcases

import "math"

// TestCase defines a single contour extraction test.
type TestCase struct {
	Name string      // lowercase a-z, 0-9 and _ only
	Rows [][]float64 // grid rows, row 0 first; NaN marks a missing value

	Levels     []float64 // explicit levels, if non-empty
	Thresholds []float64 // custom thresholds, if non-empty

	Coloring  string  // "fill" (default), "lines" or "heatmap"
	Smoothing float64 // contour smoothing, 0 for none
}

// Width returns the number of columns of the grid.
func (tc TestCase) Width() int {
	if len(tc.Rows) == 0 {
		return 0
	}
	return len(tc.Rows[0])
}

// Height returns the number of rows of the grid.
func (tc TestCase) Height() int {
	return len(tc.Rows)
}

// Flat returns the grid values in row-major order.
func (tc TestCase) Flat() []float64 {
	res := make([]float64, 0, tc.Width()*tc.Height())
	for _, row := range tc.Rows {
		res = append(res, row...)
	}
	return res
}

// sample builds a w×h grid from a function of the grid coordinates.
func sample(w, h int, f func(x, y float64) float64) [][]float64 {
	rows := make([][]float64, h)
	for y := range rows {
		rows[y] = make([]float64, w)
		for x := range rows[y] {
			rows[y][x] = f(float64(x), float64(y))
		}
	}
	return rows
}

// bump returns a Gaussian bump of the given height centred at (cx, cy).
func bump(cx, cy, r, height float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		dx, dy := x-cx, y-cy
		return height * math.Exp(-(dx*dx+dy*dy)/(2*r*r))
	}
}

var nan = math.NaN()

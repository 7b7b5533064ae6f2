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

var plateauCases = []TestCase{
	{
		Name:   "level_on_sample",
		Rows:   [][]float64{{5, 5, 5}, {5, 1, 5}, {5, 5, 5}},
		Levels: []float64{1},
	},
	{
		Name: "flat_top",
		Rows: sample(10, 10, func(x, y float64) float64 {
			return min(bump(4.5, 4.5, 3, 10)(x, y), 6)
		}),
		Levels: []float64{2, 4, 6},
	},
	{
		Name: "terraces",
		Rows: sample(12, 12, func(x, y float64) float64 {
			return float64(int(x+y) / 4)
		}),
		Levels: []float64{0, 1, 2, 3, 4, 5},
	},
}

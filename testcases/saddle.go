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

var saddleCases = []TestCase{
	{
		Name:   "single_low",
		Rows:   [][]float64{{1, 5}, {5, 1}},
		Levels: []float64{2.5},
	},
	{
		Name:   "single_high",
		Rows:   [][]float64{{1, 5}, {5, 1}},
		Levels: []float64{3.5},
	},
	{
		Name:   "single_mirror",
		Rows:   [][]float64{{5, 1}, {1, 5}},
		Levels: []float64{2.5, 3.5},
	},
	{
		Name: "checkerboard",
		Rows: sample(6, 6, func(x, y float64) float64 {
			if (int(x)+int(y))%2 == 0 {
				return 1
			}
			return 0
		}),
		Levels: []float64{0.25, 0.5, 0.75},
	},
	{
		Name: "hyperbolic",
		Rows: sample(21, 21, func(x, y float64) float64 {
			return (x-10)*(x-10) - (y-10)*(y-10)
		}),
		Levels: []float64{-50, -10, 0, 10, 50},
	},
}

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

var missingCases = []TestCase{
	{
		Name: "hole",
		Rows: [][]float64{
			{0, 0, 0, 0},
			{0, 5, nan, 0},
			{0, 5, 5, 0},
			{0, 0, 0, 0},
		},
		Levels: []float64{2.5},
	},
	{
		Name: "missing_corner",
		Rows: sample(10, 10, func(x, y float64) float64 {
			if x < 3 && y < 3 {
				return nan
			}
			return bump(5, 5, 3, 10)(x, y)
		}),
	},
	{
		Name: "missing_column",
		Rows: sample(12, 8, func(x, y float64) float64 {
			if x == 6 {
				return nan
			}
			return x + y
		}),
	},
}

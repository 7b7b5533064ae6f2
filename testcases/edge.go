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

var edgeCases = []TestCase{
	{
		Name:   "two_by_two",
		Rows:   [][]float64{{0, 1}, {2, 3}},
		Levels: []float64{0.5, 1.5, 2.5},
	},
	{
		Name:   "ridge",
		Rows:   [][]float64{{0, 5, 0}, {0, 5, 0}},
		Levels: []float64{2.5},
	},
	{
		Name:   "corner_cut",
		Rows:   [][]float64{{0, 5}, {0, 0}},
		Levels: []float64{2.5},
	},
	{
		Name:   "below_all",
		Rows:   [][]float64{{1, 2}, {3, 4}},
		Levels: []float64{0},
	},
	{
		Name:   "above_all",
		Rows:   [][]float64{{1, 2}, {3, 4}},
		Levels: []float64{10},
	},
	{
		Name: "half_bump",
		Rows: sample(20, 10, bump(10, 0, 4, 8)),
	},
	{
		Name: "corner_bumps",
		Rows: sample(16, 16, func(x, y float64) float64 {
			return bump(0, 0, 4, 5)(x, y) + bump(15, 15, 4, 5)(x, y) -
				bump(15, 0, 4, 5)(x, y) - bump(0, 15, 4, 5)(x, y)
		}),
	},
	{
		Name:   "thin_strip",
		Rows:   sample(30, 2, func(x, y float64) float64 { return x * (1 + y) }),
		Levels: []float64{5, 10, 20},
	},
}

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

var thresholdCases = []TestCase{
	{
		Name:       "unsorted",
		Rows:       sample(20, 20, bump(9.5, 9.5, 5, 60)),
		Thresholds: []float64{50, 10, 30},
	},
	{
		Name:       "uneven",
		Rows:       sample(20, 20, bump(9.5, 9.5, 5, 60)),
		Thresholds: []float64{1, 2, 4, 8, 16, 32},
	},
	{
		Name:       "outside_range",
		Rows:       [][]float64{{0, 1}, {2, 3}},
		Thresholds: []float64{-1, 1.5, 10},
	},
	{
		Name:       "thresholds_lines",
		Rows:       sample(20, 20, bump(9.5, 9.5, 5, 60)),
		Thresholds: []float64{15, 45},
		Coloring:   "lines",
	},
}

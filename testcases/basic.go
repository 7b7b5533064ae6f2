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

var basicCases = []TestCase{
	{
		Name:   "corner",
		Rows:   [][]float64{{1, 1}, {1, 5}},
		Levels: []float64{3},
	},
	{
		Name:   "peak",
		Rows:   [][]float64{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}},
		Levels: []float64{1},
	},
	{
		Name:   "pit",
		Rows:   [][]float64{{2, 2, 2}, {2, 0, 2}, {2, 2, 2}},
		Levels: []float64{1},
	},
	{
		Name: "ramp",
		Rows: sample(12, 8, func(x, y float64) float64 { return x + 0.5*y }),
	},
	{
		Name: "gaussian",
		Rows: sample(32, 32, bump(15.5, 15.5, 6, 10)),
	},
	{
		Name:      "gaussian_smooth",
		Rows:      sample(32, 32, bump(15.5, 15.5, 6, 10)),
		Smoothing: 1,
	},
	{
		Name:     "gaussian_lines",
		Rows:     sample(32, 32, bump(15.5, 15.5, 6, 10)),
		Coloring: "lines",
	},
	{
		Name: "waves",
		Rows: sample(40, 30, func(x, y float64) float64 {
			return math.Sin(x/4) * math.Cos(y/5)
		}),
		Smoothing: 0.5,
	},
	{
		Name:     "waves_heatmap",
		Rows:     sample(40, 30, func(x, y float64) float64 { return math.Sin(x/4) * math.Cos(y/5) }),
		Coloring: "heatmap",
	},
}

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

// Package contour computes contour lines and filled contour regions of
// gridded scalar data, using the marching squares algorithm.
//
// A [Grid] holds samples on a regular rectangular lattice.  Points of
// the output geometry are given in grid coordinates, where the sample
// at column x and row y sits at (x, y).  Missing values (NaN or
// infinite) are never used for interpolation: contours end where they
// meet a cell with a missing corner.
//
// [Extract] chooses the contour levels, traces the contours of every
// level, joins contours which end at the grid boundary into fill
// rings, and assigns a color to each level.  [Compute] runs the same
// pipeline on a self-contained [Request].  The dispatch sub-package
// runs requests on a separate goroutine.
package contour

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

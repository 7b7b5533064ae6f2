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

package contour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Grid is a rectangular array of scalar samples, stored row-major.
// The sample at column x and row y is Values[y*Width+x].
// NaN and infinite entries mean "no value".
//
// The contour engine never modifies a Grid.
type Grid struct {
	Width, Height int
	Values        []float64
}

// NewGrid copies a slice of rows into a new Grid.
// All rows must have the same length, and the grid must be at least 2×2.
func NewGrid(rows [][]float64) (*Grid, error) {
	h := len(rows)
	if h < 2 {
		return nil, fmt.Errorf("%w: %d rows, need at least 2", ErrInvalidGrid, h)
	}
	w := len(rows[0])
	if w < 2 {
		return nil, fmt.Errorf("%w: %d columns, need at least 2", ErrInvalidGrid, w)
	}
	values := make([]float64, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d entries, expected %d",
				ErrInvalidGrid, y, len(row), w)
		}
		values = append(values, row...)
	}
	return &Grid{Width: w, Height: h, Values: values}, nil
}

// NewGridFlat creates a Grid from a flat row-major slice.
// The slice is used without copying.
func NewGridFlat(values []float64, width, height int) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: size %d×%d, need at least 2×2",
			ErrInvalidGrid, width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: %d values for a %d×%d grid",
			ErrInvalidGrid, len(values), width, height)
	}
	return &Grid{Width: width, Height: height, Values: values}, nil
}

// NewGridFromMatrix copies a gonum matrix into a new Grid.
// Row i of the matrix becomes grid row y=i.
func NewGridFromMatrix(m mat.Matrix) (*Grid, error) {
	h, w := m.Dims()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("%w: size %d×%d, need at least 2×2",
			ErrInvalidGrid, w, h)
	}
	values := make([]float64, w*h)
	for y := range h {
		for x := range w {
			values[y*w+x] = m.At(y, x)
		}
	}
	return &Grid{Width: w, Height: h, Values: values}, nil
}

// At returns the sample at column x and row y.
func (g *Grid) At(x, y int) float64 {
	return g.Values[y*g.Width+x]
}

// Summary describes the finite samples of a grid.
type Summary struct {
	Count        int
	Min, Max     float64
	Mean, StdDev float64
}

// Summary computes statistics over the finite samples of the grid.
// If there are no finite samples, Min, Max, Mean and StdDev are NaN.
func (g *Grid) Summary() Summary {
	finite := make([]float64, 0, len(g.Values))
	for _, v := range g.Values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, StdDev: nan}
	}
	s := Summary{
		Count: len(finite),
		Min:   floats.Min(finite),
		Max:   floats.Max(finite),
	}
	if len(finite) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
	} else {
		s.Mean = finite[0]
	}
	return s
}

// cellValid reports whether the cell with lower-left corner (x, y) lies
// inside the grid and all four of its corners carry a value.
func (g *Grid) cellValid(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width-1 || y >= g.Height-1 {
		return false
	}
	i := y*g.Width + x
	return isFinite(g.Values[i]) && isFinite(g.Values[i+1]) &&
		isFinite(g.Values[i+g.Width]) && isFinite(g.Values[i+g.Width+1])
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

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

// code is the marching-squares classification of one grid cell.
//
// Values 1 to 14 (except 5 and 10) are the plain marching index: bit k
// is set if corner k is at or below the level, with corners numbered
// (x,y), (x+1,y), (x+1,y+1), (x,y+1) and weights 1, 2, 4, 8.
// The two saddle configurations 5 and 10 are split into four codes,
// depending on whether the level lies above or below the cell average.
type code uint16

const (
	saddle104  code = 104  // index 5, level at or below the cell average
	saddle208  code = 208  // index 10, level at or below the cell average
	saddle713  code = 713  // index 5, level above the cell average
	saddle1114 code = 1114 // index 10, level above the cell average
)

func (c code) isSaddle() bool {
	switch c {
	case saddle104, saddle208, saddle713, saddle1114:
		return true
	}
	return false
}

// step is a move from one cell to a neighbouring cell.
type step struct {
	dx, dy int
}

func (s step) neg() step {
	return step{-s.dx, -s.dy}
}

// next returns the direction in which a contour leaves a cell with
// non-saddle code c.  The second result is false for codes which have
// no outgoing direction.
func (c code) next() (step, bool) {
	switch c {
	case 1, 3, 7:
		return step{-1, 0}, true
	case 2, 6, 14:
		return step{0, -1}, true
	case 4, 12, 13:
		return step{1, 0}, true
	case 8, 9, 11:
		return step{0, 1}, true
	}
	return step{}, false
}

// resolve picks the half of a saddle which is entered when arriving by
// step s.  The second return value is the half left for a later visit.
func (c code) resolve(s step) (code, code) {
	neg := s.dx < 0 || s.dy < 0
	var first, second code
	switch c {
	case saddle104:
		first, second = 4, 1
	case saddle208:
		first, second = 2, 8
	case saddle713:
		first, second = 7, 13
	case saddle1114:
		first, second = 11, 14
	default:
		return c, 0
	}
	if neg {
		return first, second
	}
	return second, first
}

// Start sets: a contour with code c enters the cell through the named
// side.  Saddles enter through two opposite sides.

func (c code) entersBottom() bool {
	switch c {
	case 1, 9, 13, saddle104, saddle713:
		return true
	}
	return false
}

func (c code) entersTop() bool {
	switch c {
	case 4, 6, 7, saddle104, saddle713:
		return true
	}
	return false
}

func (c code) entersLeft() bool {
	switch c {
	case 8, 12, 14, saddle208, saddle1114:
		return true
	}
	return false
}

func (c code) entersRight() bool {
	switch c {
	case 2, 3, 11, saddle208, saddle1114:
		return true
	}
	return false
}

// cellCode classifies a cell with corner values z00=(x,y), z01=(x+1,y),
// z11=(x+1,y+1) and z10=(x,y+1).  Zero means that the level does not
// cross the cell.
func cellCode(level, z00, z01, z11, z10 float64) code {
	var mi code
	if z00 <= level {
		mi |= 1
	}
	if z01 <= level {
		mi |= 2
	}
	if z11 <= level {
		mi |= 4
	}
	if z10 <= level {
		mi |= 8
	}
	switch mi {
	case 15:
		return 0
	case 5, 10:
		avg := (z00 + z01 + z11 + z10) / 4
		if level > avg {
			if mi == 5 {
				return saddle713
			}
			return saddle1114
		}
		if mi == 5 {
			return saddle104
		}
		return saddle208
	}
	return mi
}

// cell identifies a grid cell by its lower-left corner.
type cell struct {
	x, y int
}

// crossings is the crossing table of one level.  Entries are removed
// while the contours are traced, so a crossings value must not be
// shared between tracers.
type crossings struct {
	level float64
	codes map[cell]code

	// order lists all cells of codes in scan order.
	order []cell

	// starts lists the cells where a contour enters from outside the
	// valid part of the grid.  A saddle cell can appear twice.
	starts []cell
}

// findCrossings classifies all cells of g at the given level.
// Cells with a missing corner value are skipped.
func findCrossings(g *Grid, level float64) *crossings {
	cr := &crossings{
		level: level,
		codes: make(map[cell]code),
	}
	w := g.Width
	for y := 0; y < g.Height-1; y++ {
		for x := 0; x < w-1; x++ {
			if !g.cellValid(x, y) {
				continue
			}
			i := y*w + x
			c := cellCode(level, g.Values[i], g.Values[i+1], g.Values[i+w+1], g.Values[i+w])
			if c == 0 {
				continue
			}
			loc := cell{x, y}
			cr.codes[loc] = c
			cr.order = append(cr.order, loc)

			if c.entersBottom() && !g.cellValid(x, y-1) {
				cr.starts = append(cr.starts, loc)
			}
			if c.entersTop() && !g.cellValid(x, y+1) {
				cr.starts = append(cr.starts, loc)
			}
			if c.entersLeft() && !g.cellValid(x-1, y) {
				cr.starts = append(cr.starts, loc)
			}
			if c.entersRight() && !g.cellValid(x+1, y) {
				cr.starts = append(cr.starts, loc)
			}
		}
	}
	return cr
}

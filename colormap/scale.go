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

// Package colormap maps contour levels to colors.
//
// A [Scale] is an ordered list of color stops.  Stop positions are either
// normalized to [0, 1], or given directly in data units.  A [Mapper]
// places the stops on the data axis, following the contour layout
// described by a [Domain], and interpolates between them in RGB space.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
)

// Stop is one color stop of a Scale.
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Scale is a color scale, ordered by increasing stop position.
type Scale []Stop

// Default is the scale used when a request does not specify one.
var Default = Scale{
	{Pos: 0, Color: color.NRGBA{R: 0, G: 0, B: 255, A: 255}},
	{Pos: 0.25, Color: color.NRGBA{R: 0, G: 255, B: 255, A: 255}},
	{Pos: 0.5, Color: color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
	{Pos: 0.75, Color: color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
	{Pos: 1, Color: color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
}

// Errors returned by this package.
var (
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidScale = errors.New("invalid color scale")
)

// Check verifies that s has at least one stop, that all positions are
// finite, and that positions do not decrease.
func (s Scale) Check() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no stops", ErrInvalidScale)
	}
	for i, st := range s {
		if !isFinite(st.Pos) {
			return fmt.Errorf("%w: stop %d has position %g", ErrInvalidScale, i, st.Pos)
		}
		if i > 0 && st.Pos < s[i-1].Pos {
			return fmt.Errorf("%w: stop %d is out of order", ErrInvalidScale, i)
		}
	}
	return nil
}

// Reverse returns the scale with the colors in opposite order.
// Stop positions are mirrored inside the range of the original scale.
func (s Scale) Reverse() Scale {
	if len(s) == 0 {
		return nil
	}
	lo, hi := s[0].Pos, s[len(s)-1].Pos
	res := make(Scale, len(s))
	for i, st := range s {
		res[len(s)-1-i] = Stop{Pos: lo + hi - st.Pos, Color: st.Color}
	}
	return res
}

// normalized returns the scale with positions rescaled to [0, 1], if any
// position lies outside this interval.  Otherwise s is returned unchanged.
func (s Scale) normalized() Scale {
	lo, hi := s[0].Pos, s[len(s)-1].Pos
	if lo >= 0 && hi <= 1 {
		return s
	}
	res := slices.Clone(s)
	for i := range res {
		if hi > lo {
			res[i].Pos = (res[i].Pos - lo) / (hi - lo)
		} else {
			res[i].Pos = 0
		}
	}
	return res
}

func isFinite(x float64) bool {
	return x-x == 0
}

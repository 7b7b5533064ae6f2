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

package colormap

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Names lists the built-in scales accepted by Named.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Named returns the built-in scale with the given name, sampled at n
// evenly spaced positions in [0, 1].  Names are not case sensitive.
// The "default" scale has a fixed number of stops and ignores n.
func Named(name string, n int) (Scale, error) {
	mk, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scale %q", ErrInvalidScale, name)
	}
	if n < 2 {
		n = 2
	}
	return mk(n), nil
}

var builtin = map[string]func(n int) Scale{
	"default": func(int) Scale {
		return append(Scale(nil), Default...)
	},
	"heat": func(n int) Scale {
		return fromPalette(palette.Heat(n, 1))
	},
	"rainbow": func(n int) Scale {
		return fromPalette(palette.Rainbow(n, palette.Blue, palette.Red, 1, 1, 1))
	},
	"bluered": func(n int) Scale {
		return fromColorMap(moreland.SmoothBlueRed(), n)
	},
	"blackbody": func(n int) Scale {
		return fromColorMap(moreland.BlackBody(), n)
	},
	"kindlmann": func(n int) Scale {
		return fromColorMap(moreland.Kindlmann(), n)
	},
}

func fromColorMap(cm palette.ColorMap, n int) Scale {
	cm.SetMax(1)
	cm.SetMin(0)
	return fromPalette(cm.Palette(n))
}

func fromPalette(p palette.Palette) Scale {
	cols := p.Colors()
	res := make(Scale, len(cols))
	for i, c := range cols {
		pos := 0.0
		if len(cols) > 1 {
			pos = float64(i) / float64(len(cols)-1)
		}
		res[i] = Stop{
			Pos:   pos,
			Color: color.NRGBAModel.Convert(c).(color.NRGBA),
		}
	}
	return res
}

// namedStops is the number of stops used when a scale is selected by
// name in a JSON request.
const namedStops = 11

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
	"math"
	"sort"
	"strings"
)

// Coloring selects how contour levels are colored.
type Coloring int

// Supported colorings.
const (
	Fill    Coloring = iota // color the bands between levels
	Lines                   // color only the contour lines
	Heatmap                 // color as a continuous heat map
)

func (c Coloring) String() string {
	switch c {
	case Fill:
		return "fill"
	case Lines:
		return "lines"
	case Heatmap:
		return "heatmap"
	}
	return fmt.Sprintf("Coloring(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Coloring) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The empty string selects Fill.
func (c *Coloring) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "fill":
		*c = Fill
	case "lines":
		*c = Lines
	case "heatmap":
		*c = Heatmap
	default:
		return fmt.Errorf("unknown coloring %q", text)
	}
	return nil
}

// Domain describes the contour levels and the value range which a color
// scale is stretched over.
type Domain struct {
	// Levels are the contour levels, in increasing order.
	Levels []float64

	// Start, End and Size describe regularly spaced levels.
	Start, End, Size float64

	// Custom is set if the levels were given explicitly.
	Custom bool

	// AutoContour is set if the levels were chosen automatically.
	AutoContour bool

	// ZMin and ZMax give the value range of the color axis.  ZRangeSet
	// indicates that the range was specified by the caller rather than
	// taken from the data.
	ZMin, ZMax float64
	ZRangeSet  bool

	Coloring Coloring
}

// Mapper maps data values to colors.
type Mapper struct {
	domain []float64
	colors []color.NRGBA

	halfStep float64
}

// NewMapper places the stops of s on the data axis.
//
// If realValue is set, stop positions are data values.  Otherwise stop
// positions are relative, and the contour layout in d determines which
// data value each stop corresponds to.
func NewMapper(d *Domain, s Scale, realValue bool) (*Mapper, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	if d.Custom && len(d.Levels) == 0 {
		return nil, fmt.Errorf("%w: custom levels missing", ErrInvalidScale)
	}

	m := &Mapper{}
	if d.Coloring == Fill && !d.Custom && isFinite(d.Size) {
		m.halfStep = d.Size / 2
	}

	if realValue {
		for _, st := range s {
			m.domain = append(m.domain, st.Pos)
			m.colors = append(m.colors, st.Color)
		}
		m.extend(d.ZMin, d.ZMax)
		return m, nil
	}

	s = s.normalized()
	m.colors = make([]color.NRGBA, len(s))
	m.domain = make([]float64, len(s))
	for i, st := range s {
		m.colors[i] = st.Color
	}

	switch {
	case d.Coloring == Heatmap:
		m.heatmap(d, s)
	case d.Custom:
		lo, hi := halfGaps(d.Levels)
		effMin := d.Levels[0] - lo
		if isFinite(d.ZMin) {
			effMin = min(effMin, d.ZMin)
		}
		effMax := d.Levels[len(d.Levels)-1] + hi
		if isFinite(d.ZMax) {
			effMax = max(effMax, d.ZMax)
		}
		for i, st := range s {
			m.domain[i] = effMin + st.Pos*(effMax-effMin)
		}
	default:
		m.regular(d, s)
	}
	return m, nil
}

// heatmap stretches the scale over the color axis range, and extends it
// to cover all contour levels.
func (m *Mapper) heatmap(d *Domain, s Scale) {
	cs, nc := stepCount(d)

	lo, hi := d.ZMin, d.ZMax
	if !d.ZRangeSet && !d.AutoContour {
		if d.Custom {
			g0, g1 := halfGaps(d.Levels)
			lo = d.Levels[0] - g0
			hi = d.Levels[len(d.Levels)-1] + g1
		} else {
			lo = d.Start - cs/2
			hi = lo + float64(nc)*cs
		}
	}
	for i, st := range s {
		m.domain[i] = st.Pos*(hi-lo) + lo
	}
	m.extend(d.Start, d.Start+cs*float64(nc-1))
}

// regular places the scale so that the bands between levels sample the
// scale evenly.
func (m *Mapper) regular(d *Domain, s Scale) {
	cs, nc := stepCount(d)
	start := d.Start
	end := d.End + cs/1e6
	extra := 1
	if d.Coloring == Lines {
		extra = 0
	}
	if d.ZRangeSet && (start <= d.ZMin || end >= d.ZMax) {
		start = max(start, d.ZMin)
		end = min(end, d.ZMax)
		nc = int(math.Floor((end-start)/cs)) + 1
		extra = 0
	}
	for i, st := range s {
		m.domain[i] = (st.Pos*float64(nc+extra-1)-float64(extra)/2)*cs + start
	}
	if d.ZRangeSet || d.AutoContour {
		m.extend(d.ZMin, d.ZMax)
	}
}

// stepCount returns the level spacing and the number of regular levels.
func stepCount(d *Domain) (float64, int) {
	cs := d.Size
	if cs == 0 {
		cs = 1
	}
	if !isFinite(cs) {
		return 1, 1
	}
	end := d.End + d.Size/1e6
	return cs, int(math.Floor((end-d.Start)/cs)) + 1
}

// extend widens the domain to [lo, hi] by repeating the edge colors.
func (m *Mapper) extend(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if isFinite(lo) && lo < m.domain[0] {
		m.domain = append([]float64{lo}, m.domain...)
		m.colors = append([]color.NRGBA{m.colors[0]}, m.colors...)
	}
	if n := len(m.domain); isFinite(hi) && hi > m.domain[n-1] {
		m.domain = append(m.domain, hi)
		m.colors = append(m.colors, m.colors[n-1])
	}
}

// At returns the color for data value v.  Values outside the domain get
// the color of the nearest end.  NaN maps to transparent.
func (m *Mapper) At(v float64) color.NRGBA {
	n := len(m.domain)
	switch {
	case math.IsNaN(v):
		return color.NRGBA{}
	case v <= m.domain[0]:
		return m.colors[0]
	case v >= m.domain[n-1]:
		return m.colors[n-1]
	}
	i := sort.SearchFloat64s(m.domain, v)
	if m.domain[i] == v {
		return m.colors[i]
	}
	t := (v - m.domain[i-1]) / (m.domain[i] - m.domain[i-1])
	return lerp(m.colors[i-1], m.colors[i], t)
}

// LevelColor returns the color for a contour level.  For regularly spaced
// levels in fill mode, this is the color of the middle of the band above
// the level.
func (m *Mapper) LevelColor(level float64) color.NRGBA {
	return m.At(level + m.halfStep)
}

// Stops returns the stops of the mapper, with positions in data units.
func (m *Mapper) Stops() Scale {
	res := make(Scale, len(m.domain))
	for i := range m.domain {
		res[i] = Stop{Pos: m.domain[i], Color: m.colors[i]}
	}
	return res
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// halfGaps returns half the spacing of the first and of the last pair
// of levels.  A single level uses a spacing of 1.
func halfGaps(levels []float64) (float64, float64) {
	n := len(levels)
	if n < 2 {
		return 0.5, 0.5
	}
	return (levels[1] - levels[0]) / 2, (levels[n-1] - levels[n-2]) / 2
}

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
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: "#rgb", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)", "rgba(r, g, b, a)" with alpha in [0, 1],
// "transparent", or one of the SVG color names.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[5:len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, s[4:len(s)-1], 3)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(s string) (color.NRGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func parseFunc(s, args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || !isFinite(v) {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		vals[i] = v
	}
	return color.NRGBA{
		R: channel(vals[0]),
		G: channel(vals[1]),
		B: channel(vals[2]),
		A: channel(vals[3] * 255),
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 255)))
}

// Format renders c as "rgb(r, g, b)", or as "rgba(r, g, b, a)" if c is
// not opaque.
func Format(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(float64(c.A)/255, 'g', 3, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}

// ParseScale converts [position, color] pairs into a Scale.  Positions
// may be numbers or numeric strings.  The stops are sorted by position.
func ParseScale(pairs [][2]any) (Scale, error) {
	res := make(Scale, 0, len(pairs))
	for i, pair := range pairs {
		var pos float64
		switch p := pair[0].(type) {
		case float64:
			pos = p
		case json.Number:
			v, err := p.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: stop %d: %v", ErrInvalidScale, i, err)
			}
			pos = v
		case string:
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: stop %d: position %q", ErrInvalidScale, i, p)
			}
			pos = v
		default:
			return nil, fmt.Errorf("%w: stop %d: position %v", ErrInvalidScale, i, pair[0])
		}
		cs, ok := pair[1].(string)
		if !ok {
			return nil, fmt.Errorf("%w: stop %d: color %v", ErrInvalidScale, i, pair[1])
		}
		col, err := ParseColor(cs)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %w", ErrInvalidScale, i, err)
		}
		res = append(res, Stop{Pos: pos, Color: col})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Pos < res[j].Pos })
	if err := res.Check(); err != nil {
		return nil, err
	}
	return res, nil
}

// UnmarshalJSON accepts either a list of [position, color] pairs or the
// name of a built-in scale.
func (s *Scale) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		res, err := Named(name, namedStops)
		if err != nil {
			return err
		}
		*s = res
		return nil
	}

	var pairs [][2]any
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScale, err)
	}
	res, err := ParseScale(pairs)
	if err != nil {
		return err
	}
	*s = res
	return nil
}

// MarshalJSON writes the scale as a list of [position, color] pairs.
func (s Scale) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, len(s))
	for i, st := range s {
		pairs[i] = [2]any{st.Pos, Format(st.Color)}
	}
	return json.Marshal(pairs)
}

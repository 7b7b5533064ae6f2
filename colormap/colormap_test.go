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
	"encoding/json"
	"errors"
	"image/color"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", red},
		{"#0000FF", blue},
		{"#00ff0080", color.NRGBA{G: 255, A: 128}},
		{"rgb(1, 2, 3)", color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{"rgba(10,20,30,0.5)", color.NRGBA{R: 10, G: 20, B: 30, A: 128}},
		{"rgb(300, -4, 2.6)", color.NRGBA{R: 255, G: 0, B: 3, A: 255}},
		{" SteelBlue ", color.NRGBA{R: 70, G: 130, B: 180, A: 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "#12", "#gggggg", "rgb(1, 2)", "rgba(1, 2, 3)", "rgb(a, b, c)", "nocolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): got error %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   color.NRGBA
		want string
	}{
		{color.NRGBA{R: 1, G: 2, B: 3, A: 255}, "rgb(1, 2, 3)"},
		{color.NRGBA{R: 1, G: 2, B: 3, A: 128}, "rgba(1, 2, 3, 0.502)"},
		{color.NRGBA{}, "rgba(0, 0, 0, 0)"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
		back, err := ParseColor(c.want)
		if err != nil || back != c.in {
			t.Errorf("ParseColor(%q) = %v, %v", c.want, back, err)
		}
	}
}

func TestScaleJSON(t *testing.T) {
	var s Scale
	err := json.Unmarshal([]byte(`[[1, "blue"], ["0", "#f00"], [0.5, "rgb(0, 255, 0)"]]`), &s)
	if err != nil {
		t.Fatal(err)
	}
	want := Scale{{0, red}, {0.5, green}, {1, blue}}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("scale mismatch (-want +got):\n%s", d)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	const wantJSON = `[[0,"rgb(255, 0, 0)"],[0.5,"rgb(0, 255, 0)"],[1,"rgb(0, 0, 255)"]]`
	if string(data) != wantJSON {
		t.Errorf("got %s, want %s", data, wantJSON)
	}

	if err := json.Unmarshal([]byte(`"heat"`), &s); err != nil {
		t.Fatal(err)
	}
	if len(s) != namedStops {
		t.Errorf("named scale has %d stops, want %d", len(s), namedStops)
	}

	for _, in := range []string{`[]`, `[[0, 1]]`, `[[null, "red"]]`, `[[0, "nocolor"]]`, `"nosuchscale"`, `{}`} {
		var s Scale
		if err := json.Unmarshal([]byte(in), &s); err == nil {
			t.Errorf("%s: expected an error", in)
		}
	}
}

func TestCheck(t *testing.T) {
	bad := []Scale{
		nil,
		{{Pos: 1, Color: red}, {Pos: 0, Color: blue}},
		{{Pos: nan(), Color: red}},
	}
	for i, s := range bad {
		if err := s.Check(); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("%d: got %v, want ErrInvalidScale", i, err)
		}
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

func TestReverse(t *testing.T) {
	s := Scale{{2, red}, {3, green}, {6, blue}}
	want := Scale{{2, blue}, {5, green}, {6, red}}
	if d := cmp.Diff(want, s.Reverse()); d != "" {
		t.Errorf("reverse mismatch (-want +got):\n%s", d)
	}
	if r := Scale(nil).Reverse(); r != nil {
		t.Errorf("reverse of empty scale: %v", r)
	}
}

func TestNamed(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) || !slices.Contains(names, "default") {
		t.Errorf("unexpected names %v", names)
	}
	for _, name := range names {
		s, err := Named(name, 5)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if err := s.Check(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if s[0].Pos != 0 || s[len(s)-1].Pos != 1 {
			t.Errorf("%s: positions span [%g, %g]", name, s[0].Pos, s[len(s)-1].Pos)
		}
	}

	s, err := Named(" Heat ", 7)
	if err != nil || len(s) != 7 {
		t.Errorf("Named(Heat, 7): %d stops, %v", len(s), err)
	}
	if _, err := Named("nosuchscale", 5); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("unknown name: got %v", err)
	}
}

func TestColoringText(t *testing.T) {
	for _, c := range []Coloring{Fill, Lines, Heatmap} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Coloring
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("%v: round trip gave %v, %v", c, back, err)
		}
	}
	var c Coloring = Heatmap
	if err := c.UnmarshalText(nil); err != nil || c != Fill {
		t.Errorf("empty text: got %v, %v", c, err)
	}
	if err := c.UnmarshalText([]byte("contour")); err == nil {
		t.Error("expected an error")
	}
}

// TestThresholdRealValue checks that a threshold which coincides with a
// stop of a data-valued scale gets exactly the stop color.
func TestThresholdRealValue(t *testing.T) {
	d := &Domain{
		Levels:   []float64{10, 30, 50},
		Start:    10,
		End:      50,
		Custom:   true,
		ZMin:     0,
		ZMax:     60,
		Coloring: Fill,
	}
	s := Scale{{10, red}, {30, green}, {50, blue}}
	m, err := NewMapper(d, s, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, level := range d.Levels {
		if got := m.LevelColor(level); got != s[i].Color {
			t.Errorf("level %g: got %v, want %v", level, got, s[i].Color)
		}
	}
	if got := m.At(0); got != red {
		t.Errorf("below range: got %v", got)
	}
	if got := m.At(60); got != blue {
		t.Errorf("above range: got %v", got)
	}
}

func TestRegularFill(t *testing.T) {
	var levels []float64
	for v := range 11 {
		levels = append(levels, float64(v))
	}
	d := &Domain{
		Levels:   levels,
		Start:    0,
		End:      10,
		Size:     1,
		ZMin:     0,
		ZMax:     10,
		Coloring: Fill,
	}
	m, err := NewMapper(d, Scale{{0, black}, {1, white}}, false)
	if err != nil {
		t.Fatal(err)
	}

	// the scale spans the eleven bands, from -0.5 to 10.5
	stops := m.Stops()
	if stops[0].Pos != -0.5 || stops[len(stops)-1].Pos != 10.5 {
		t.Errorf("stops at %g and %g", stops[0].Pos, stops[len(stops)-1].Pos)
	}

	// level 5 is colored at the middle of the band [5, 6]
	want := color.NRGBA{R: 139, G: 139, B: 139, A: 255}
	if got := m.LevelColor(5); got != want {
		t.Errorf("level 5: got %v, want %v", got, want)
	}
	if got := m.At(nan()); got != (color.NRGBA{}) {
		t.Errorf("NaN: got %v", got)
	}
}

func TestHeatmap(t *testing.T) {
	d := &Domain{
		Start:     1,
		End:       9,
		Size:      1,
		ZMin:      0,
		ZMax:      10,
		ZRangeSet: true,
		Coloring:  Heatmap,
	}
	m, err := NewMapper(d, Scale{{0, black}, {1, white}}, false)
	if err != nil {
		t.Fatal(err)
	}
	want := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	if got := m.At(5); got != want {
		t.Errorf("At(5) = %v, want %v", got, want)
	}
	if got := m.LevelColor(5); got != want {
		t.Errorf("heatmap levels are colored without offset: got %v", got)
	}
}

func TestCustomLevelsMissing(t *testing.T) {
	d := &Domain{Custom: true, Coloring: Fill}
	if _, err := NewMapper(d, Default, false); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("got %v, want ErrInvalidScale", err)
	}
}

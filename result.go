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
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/contour/colormap"
)

// Path is a sequence of points in grid coordinates.  In JSON, a path is
// written as a list of [x, y] pairs.
type Path []vec.Vec2

// MarshalJSON implements json.Marshaler.
func (p Path) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, len(p))
	for i, pt := range p {
		pairs[i] = [2]float64{pt.X, pt.Y}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Path) UnmarshalJSON(data []byte) error {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	res := make(Path, len(pairs))
	for i, pair := range pairs {
		res[i] = vec.Vec2{X: pair[0], Y: pair[1]}
	}
	*p = res
	return nil
}

// LevelResult holds the contour geometry of one level.
type LevelResult struct {
	Level float64
	Color color.NRGBA

	// OpenPaths are contour lines which end at the grid boundary, or at
	// a region of missing values.
	OpenPaths []Path

	// ClosedPaths are contour loops inside the grid.  The first point
	// is not repeated at the end.
	ClosedPaths []Path

	// FillPolygons are closed rings which, filled with the even-odd
	// rule, cover the region above the level.  They are only computed
	// for fill coloring.  Contour lines which end at missing values
	// instead of the grid boundary do not contribute to the fill rings,
	// so regions bounded by such lines are left unfilled.
	FillPolygons []Path

	// PrefixBoundary is set if no contour reaches the grid boundary and
	// the region above the level contains the grid perimeter.
	PrefixBoundary bool

	// Anomalies lists contour paths which had to be abandoned.
	Anomalies []Anomaly
}

type levelResultJSON struct {
	Level          float64 `json:"level"`
	Color          string  `json:"color"`
	OpenPaths      []Path  `json:"openPaths"`
	ClosedPaths    []Path  `json:"closedPaths"`
	FillPolygons   []Path  `json:"fillPolygons"`
	PrefixBoundary bool    `json:"prefixBoundary"`
	Anomalies      int     `json:"anomalies,omitempty"`
}

// MarshalJSON implements json.Marshaler.  The color is written as a CSS
// color string.
func (lr LevelResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(levelResultJSON{
		Level:          lr.Level,
		Color:          colormap.Format(lr.Color),
		OpenPaths:      nonNil(lr.OpenPaths),
		ClosedPaths:    nonNil(lr.ClosedPaths),
		FillPolygons:   nonNil(lr.FillPolygons),
		PrefixBoundary: lr.PrefixBoundary,
		Anomalies:      len(lr.Anomalies),
	})
}

// UnmarshalJSON implements json.Unmarshaler.  Anomaly details are not
// preserved in JSON.
func (lr *LevelResult) UnmarshalJSON(data []byte) error {
	var raw levelResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	col, err := colormap.ParseColor(raw.Color)
	if err != nil {
		return fmt.Errorf("level %g: %w", raw.Level, err)
	}
	*lr = LevelResult{
		Level:          raw.Level,
		Color:          col,
		OpenPaths:      raw.OpenPaths,
		ClosedPaths:    raw.ClosedPaths,
		FillPolygons:   raw.FillPolygons,
		PrefixBoundary: raw.PrefixBoundary,
	}
	return nil
}

func nonNil(p []Path) []Path {
	if p == nil {
		return []Path{}
	}
	return p
}

// Stats summarizes an extraction.
type Stats struct {
	LevelCount     int     `json:"levelCount"`
	TotalPaths     int     `json:"totalPaths"`
	TotalEdgePaths int     `json:"totalEdgePaths"`
	TotalPoints    int     `json:"totalPoints"`
	MinValue       float64 `json:"minValue"`
	MaxValue       float64 `json:"maxValue"`
	MeanValue      float64 `json:"meanValue"`
	StdDev         float64 `json:"stdDev"`
	Anomalies      int     `json:"anomalies"`
}

// Contours records the level layout chosen for an extraction.  A caller
// can feed these values into a later request to keep the same levels.
type Contours struct {
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Size   float64 `json:"size"`
	Custom bool    `json:"custom"`
}

// Result is the output of an extraction.
type Result struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Levels []LevelResult `json:"levels"`

	// Perimeter lists the corners of the grid: (0,0), (w-1,0),
	// (w-1,h-1), (0,h-1).
	Perimeter Path `json:"perimeter"`

	Contours Contours `json:"contours"`
	Stats    Stats    `json:"stats"`
}

// MarshalJSON implements json.Marshaler.  Non-finite statistics, which
// JSON cannot represent, are written as zero.
func (s Stats) MarshalJSON() ([]byte, error) {
	type plain Stats
	for _, p := range []*float64{&s.MinValue, &s.MaxValue, &s.MeanValue, &s.StdDev} {
		if math.IsNaN(*p) || math.IsInf(*p, 0) {
			*p = 0
		}
	}
	return json.Marshal(plain(s))
}

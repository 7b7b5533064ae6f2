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
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"seehuhn.de/go/contour/colormap"
)

// Request is a self-contained extraction job, as exchanged with a
// contour worker.
//
// In JSON, "grid" is either a list of rows or a flat row-major list of
// values.  Null entries denote missing values.
type Request struct {
	ID string

	Width, Height int
	Values        []float64

	Levels     []float64
	Colorscale colormap.Scale
	Options    Options
}

type requestJSON struct {
	ID         string          `json:"id,omitempty"`
	Grid       json.RawMessage `json:"grid"`
	Width      int             `json:"width,omitempty"`
	Height     int             `json:"height,omitempty"`
	Levels     []float64       `json:"levels,omitempty"`
	Colorscale colormap.Scale  `json:"colorscale,omitempty"`
	Options    optionsJSON     `json:"options"`
}

type optionsJSON struct {
	Coloring     colormap.Coloring `json:"coloring"`
	Smoothing    float64           `json:"smoothing,omitempty"`
	NContours    int               `json:"ncontours,omitempty"`
	Start        *float64          `json:"start,omitempty"`
	End          *float64          `json:"end,omitempty"`
	Size         *float64          `json:"size,omitempty"`
	Thresholds   []float64         `json:"thresholds,omitempty"`
	UseRealValue bool              `json:"useRealValue,omitempty"`
	ZMin         *float64          `json:"zmin,omitempty"`
	ZMax         *float64          `json:"zmax,omitempty"`
	ReverseScale bool              `json:"reverseScale,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
//
// Automatic levels are selected unless both "start" and "end" are given.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw requestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	values, w, h, err := decodeGrid(raw.Grid)
	if err != nil {
		return err
	}
	if w == 0 {
		w, h = raw.Width, raw.Height
	} else if (raw.Width != 0 && raw.Width != w) || (raw.Height != 0 && raw.Height != h) {
		return fmt.Errorf("%w: grid is %d×%d, but width=%d height=%d",
			ErrInvalidGrid, w, h, raw.Width, raw.Height)
	}

	o := raw.Options
	opts := Options{
		Coloring:     o.Coloring,
		Smoothing:    o.Smoothing,
		Thresholds:   o.Thresholds,
		AutoContour:  o.Start == nil || o.End == nil,
		NContours:    o.NContours,
		ZMin:         o.ZMin,
		ZMax:         o.ZMax,
		UseRealValue: o.UseRealValue,
		ReverseScale: o.ReverseScale,
	}
	if o.Start != nil {
		opts.Start = *o.Start
	}
	if o.End != nil {
		opts.End = *o.End
	}
	if o.Size != nil {
		opts.Size = *o.Size
	}

	*r = Request{
		ID:         raw.ID,
		Width:      w,
		Height:     h,
		Values:     values,
		Levels:     raw.Levels,
		Colorscale: raw.Colorscale,
		Options:    opts,
	}
	return nil
}

// MarshalJSON implements json.Marshaler.  The grid is written as a flat
// list, with null for missing values.
func (r *Request) MarshalJSON() ([]byte, error) {
	grid := make([]*float64, len(r.Values))
	for i, v := range r.Values {
		if isFinite(v) {
			grid[i] = &r.Values[i]
		}
	}
	gridData, err := json.Marshal(grid)
	if err != nil {
		return nil, err
	}

	o := &r.Options
	raw := requestJSON{
		ID:         r.ID,
		Grid:       gridData,
		Width:      r.Width,
		Height:     r.Height,
		Levels:     r.Levels,
		Colorscale: r.Colorscale,
		Options: optionsJSON{
			Coloring:     o.Coloring,
			Smoothing:    o.Smoothing,
			NContours:    o.NContours,
			Thresholds:   o.Thresholds,
			UseRealValue: o.UseRealValue,
			ZMin:         o.ZMin,
			ZMax:         o.ZMax,
			ReverseScale: o.ReverseScale,
		},
	}
	if !o.AutoContour {
		raw.Options.Start = &o.Start
		raw.Options.End = &o.End
		raw.Options.Size = &o.Size
	}
	return json.Marshal(raw)
}

// decodeGrid reads either nested rows or a flat list of values.
// For nested rows, the grid size is returned as well.
func decodeGrid(data json.RawMessage) (values []float64, w, h int, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, 0, 0, fmt.Errorf("%w: no grid data", ErrInvalidGrid)
	}

	var rows [][]*float64
	if json.Unmarshal(data, &rows) == nil {
		h = len(rows)
		if h > 0 {
			w = len(rows[0])
		}
		values = make([]float64, 0, w*h)
		for y, row := range rows {
			if len(row) != w {
				return nil, 0, 0, fmt.Errorf("%w: row %d has %d entries, expected %d",
					ErrInvalidGrid, y, len(row), w)
			}
			values = appendValues(values, row)
		}
		return values, w, h, nil
	}

	var flat []*float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}
	return appendValues(make([]float64, 0, len(flat)), flat), 0, 0, nil
}

func appendValues(values []float64, in []*float64) []float64 {
	for _, p := range in {
		if p == nil {
			values = append(values, math.NaN())
		} else {
			values = append(values, *p)
		}
	}
	return values
}

// Grid returns the grid of the request.  The values are not copied.
func (r *Request) Grid() (*Grid, error) {
	return NewGridFlat(r.Values, r.Width, r.Height)
}

// Compute runs the extraction described by req.
func Compute(req *Request) (*Result, error) {
	g, err := req.Grid()
	if err != nil {
		return nil, err
	}
	opts := req.Options
	opts.Levels = req.Levels
	if req.Colorscale != nil {
		opts.Colorscale = req.Colorscale
	}
	return Extract(g, &opts)
}

// Response is the reply to a Request.  Exactly one of Result and Err is
// set.  In JSON, the error is given as a string.
type Response struct {
	ID     string  `json:"id"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`

	Err error `json:"-"`
}

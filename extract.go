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

	"seehuhn.de/go/contour/colormap"
)

// Options controls an extraction.
type Options struct {
	Coloring colormap.Coloring

	// Smoothing, if positive, thins out crowded contour points and
	// refines the contour lines with splines.  Typical values are
	// between 0 and 1.3.
	Smoothing float64

	// Levels, if non-empty, gives the contour levels directly.
	// The level manager is bypassed.
	Levels []float64

	// Thresholds, if non-empty, gives custom contour levels.
	Thresholds []float64

	// AutoContour selects automatic levels.  Otherwise Start, End and
	// Size give the levels.
	AutoContour      bool
	Start, End, Size float64

	// NContours bounds the number of automatic levels.  Zero means 15.
	NContours int

	// ZMin and ZMax, if non-nil, fix the value range used for automatic
	// levels and for the color scale.
	ZMin, ZMax *float64

	// Colorscale is the color scale.  Nil selects colormap.Default.
	Colorscale colormap.Scale

	// UseRealValue indicates that the stop positions of Colorscale are
	// data values rather than relative positions.
	UseRealValue bool

	ReverseScale bool
}

// DefaultOptions returns options for filled contours with automatic levels.
func DefaultOptions() *Options {
	return &Options{
		Coloring:    colormap.Fill,
		AutoContour: true,
	}
}

// Extract computes contour lines and filled contour regions of g.
//
// Errors concerning the grid or the level set abort the extraction.
// Contour paths which cannot be traced are dropped and reported as
// anomalies in the result.
func Extract(g *Grid, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if g.Width < 2 || g.Height < 2 || len(g.Values) != g.Width*g.Height {
		return nil, fmt.Errorf("%w: size %d×%d with %d values",
			ErrInvalidGrid, g.Width, g.Height, len(g.Values))
	}

	sum := g.Summary()
	if sum.Count < minSamples {
		return nil, fmt.Errorf("%w: only %d finite samples", ErrInvalidGrid, sum.Count)
	}
	if sum.Min == sum.Max {
		return nil, fmt.Errorf("%w: all samples equal %g", ErrInvalidGrid, sum.Min)
	}

	var ls *LevelSet
	cfg := LevelConfig{
		Thresholds:  opts.Thresholds,
		AutoContour: opts.AutoContour,
		Start:       opts.Start,
		End:         opts.End,
		Size:        opts.Size,
		NContours:   opts.NContours,
		ZMin:        opts.ZMin,
		ZMax:        opts.ZMax,
	}
	var err error
	if len(opts.Levels) > 0 {
		ls, err = ExplicitLevels(opts.Levels)
		cfg.AutoContour = false
	} else {
		ls, err = ComputeLevels(sum.Min, sum.Max, &cfg)
	}
	if err != nil {
		return nil, err
	}
	Logger().Debug("contour levels",
		"count", len(ls.Values), "start", ls.Start, "end", ls.End,
		"size", ls.Size, "custom", ls.Custom)

	mapper, err := newMapper(ls, &cfg, opts, sum)
	if err != nil {
		return nil, err
	}

	perim := g.Perimeter()
	res := &Result{
		Width:     g.Width,
		Height:    g.Height,
		Levels:    make([]LevelResult, 0, len(ls.Values)),
		Perimeter: Path(perim[:]),
		Contours: Contours{
			Start:  ls.Start,
			End:    ls.End,
			Size:   ls.Size,
			Custom: ls.Custom,
		},
	}
	for _, level := range ls.Values {
		lr := extractLevel(g, level, opts)
		lr.Color = mapper.LevelColor(level)
		res.Levels = append(res.Levels, lr)
	}

	st := &res.Stats
	st.LevelCount = len(res.Levels)
	st.MinValue = sum.Min
	st.MaxValue = sum.Max
	st.MeanValue = sum.Mean
	st.StdDev = sum.StdDev
	for i := range res.Levels {
		lr := &res.Levels[i]
		st.TotalPaths += len(lr.ClosedPaths)
		st.TotalEdgePaths += len(lr.OpenPaths)
		st.Anomalies += len(lr.Anomalies)
		for _, group := range [][]Path{lr.OpenPaths, lr.ClosedPaths, lr.FillPolygons} {
			for _, p := range group {
				st.TotalPoints += len(p)
			}
		}
	}
	return res, nil
}

// extractLevel computes the geometry of a single level.
func extractLevel(g *Grid, level float64, opts *Options) (lr LevelResult) {
	lr.Level = level
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("contour level failed", "level", level, "panic", r)
			lr = LevelResult{
				Level: level,
				Anomalies: []Anomaly{{
					Level: level,
					Kind:  fmt.Errorf("%w: %v", ErrTopologyAnomaly, r),
				}},
			}
		}
	}()

	cr := findCrossings(g, level)
	lp := tracePaths(g, cr, opts.Smoothing)
	lr.Anomalies = lp.anomalies

	if len(lp.anomalies) > 0 && len(lp.edge)+len(lp.closed)+len(lp.degenerate) == 0 {
		return lr
	}

	lr.PrefixBoundary = prefixBoundary(g, lp)
	if opts.Coloring == colormap.Fill {
		for _, r := range fillRings(g, lp, lr.PrefixBoundary) {
			lr.FillPolygons = append(lr.FillPolygons, Path(r))
		}
	}
	for _, p := range lp.edge {
		lr.OpenPaths = append(lr.OpenPaths, Path(smoothPath(p, false, opts.Smoothing)))
	}
	for _, p := range lp.closed {
		lr.ClosedPaths = append(lr.ClosedPaths, Path(smoothPath(p, true, opts.Smoothing)))
	}

	Logger().Debug("contour level",
		"level", level,
		"open", len(lr.OpenPaths),
		"closed", len(lr.ClosedPaths),
		"fill", len(lr.FillPolygons),
		"prefix", lr.PrefixBoundary,
		"anomalies", len(lr.Anomalies))
	return lr
}

// newMapper sets up the color mapping for the level set ls.
func newMapper(ls *LevelSet, cfg *LevelConfig, opts *Options, sum Summary) (*colormap.Mapper, error) {
	d := &colormap.Domain{
		Levels:      ls.Values,
		Start:       ls.Start,
		End:         ls.End,
		Size:        ls.Size,
		Custom:      ls.Custom,
		AutoContour: cfg.AutoContour,
		ZMin:        sum.Min,
		ZMax:        sum.Max,
		ZRangeSet:   opts.ZMin != nil && opts.ZMax != nil,
		Coloring:    opts.Coloring,
	}
	if opts.ZMin != nil {
		d.ZMin = *opts.ZMin
	}
	if opts.ZMax != nil {
		d.ZMax = *opts.ZMax
	}

	scale := opts.Colorscale
	if scale == nil {
		scale = colormap.Default
	}
	if opts.ReverseScale {
		scale = scale.Reverse()
	}
	return colormap.NewMapper(d, scale, opts.UseRealValue)
}

// minSamples is the smallest number of finite samples a grid must have.
const minSamples = 4

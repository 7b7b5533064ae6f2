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

// Package geo exports contour lines as GeoJSON.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/colormap"
)

// Options controls the GeoJSON export.
type Options struct {
	// X and Y, if non-nil, give the coordinates of the grid columns and
	// rows.  Fractional grid positions are interpolated linearly.
	// Otherwise grid coordinates are used unchanged.
	X, Y []float64

	// Tolerance, if positive, simplifies each line with the
	// Douglas-Peucker algorithm, in output coordinates.
	Tolerance float64

	// Length adds a "length" property with the planar line length.
	Length bool
}

// FeatureCollection converts the contour lines of res into a GeoJSON
// feature collection with one LineString per path.  Open paths come
// before closed paths within each level.  Closed paths repeat their
// first point at the end.  Points with non-finite coordinates are
// skipped, and paths with fewer than two remaining points are omitted.
//
// Every feature has the properties "level", "closed" and "color".
func FeatureCollection(res *contour.Result, opts *Options) (*geojson.FeatureCollection, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.X != nil && len(opts.X) != res.Width {
		return nil, fmt.Errorf("%w: %d x coordinates for %d columns",
			contour.ErrInvalidGrid, len(opts.X), res.Width)
	}
	if opts.Y != nil && len(opts.Y) != res.Height {
		return nil, fmt.Errorf("%w: %d y coordinates for %d rows",
			contour.ErrInvalidGrid, len(opts.Y), res.Height)
	}

	fc := geojson.NewFeatureCollection()
	skipped := 0
	for _, lr := range res.Levels {
		for _, group := range []struct {
			paths  []contour.Path
			closed bool
		}{
			{lr.OpenPaths, false},
			{lr.ClosedPaths, true},
		} {
			for _, p := range group.paths {
				ls := lineString(p, group.closed, opts)
				if len(ls) < 2 {
					skipped++
					continue
				}
				f := geojson.NewFeature(ls)
				f.Properties["level"] = lr.Level
				f.Properties["closed"] = group.closed
				f.Properties["color"] = colormap.Format(lr.Color)
				if opts.Length {
					f.Properties["length"] = planar.Length(ls)
				}
				fc.Append(f)
			}
		}
	}
	contour.Logger().Debug("geojson export",
		"features", len(fc.Features), "skipped", skipped)
	return fc, nil
}

// lineString converts a contour path into output coordinates.
func lineString(p contour.Path, closed bool, opts *Options) orb.LineString {
	ls := make(orb.LineString, 0, len(p)+1)
	for _, pt := range p {
		x := axisValue(opts.X, pt.X)
		y := axisValue(opts.Y, pt.Y)
		if !isFinite(x) || !isFinite(y) {
			continue
		}
		ls = append(ls, orb.Point{x, y})
	}
	if closed && len(ls) > 2 && ls[0] != ls[len(ls)-1] {
		ls = append(ls, ls[0])
	}
	if opts.Tolerance > 0 && len(ls) > 2 {
		if s, ok := simplify.DouglasPeucker(opts.Tolerance).Simplify(ls.Clone()).(orb.LineString); ok {
			ls = s
		}
	}
	return ls
}

// axisValue maps the fractional grid index v to a coordinate of axis.
// A nil axis returns v unchanged.
func axisValue(axis []float64, v float64) float64 {
	if axis == nil {
		return v
	}
	n := len(axis)
	if !isFinite(v) || n == 0 {
		return math.NaN()
	}
	i := int(math.Floor(v))
	switch {
	case i < 0:
		return axis[0]
	case i >= n-1:
		return axis[n-1]
	}
	f := v - float64(i)
	return axis[i] + f*(axis[i+1]-axis[i])
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

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
	"math"
	"slices"
)

// LevelConfig holds the controls of the level manager.
//
// ComputeLevels writes the chosen Start, End and Size back into the
// LevelConfig, so that a later call can reuse them.
type LevelConfig struct {
	// Thresholds, if it contains at least one finite value, gives the
	// contour levels explicitly.  All other fields are then ignored.
	Thresholds []float64

	// AutoContour selects automatic binning from the data range.
	// Otherwise Start, End and Size are used as given.
	AutoContour bool

	Start, End, Size float64

	// NContours bounds the number of automatic levels.
	// Zero means 15.
	NContours int

	// ZMin and ZMax, if non-nil, replace the data range in auto mode.
	ZMin, ZMax *float64
}

// LevelSet is an increasing sequence of contour levels.
type LevelSet struct {
	Values []float64

	Start, End float64

	// Size is the spacing of regular levels.  It is 0 when Custom is set.
	Size float64

	// Custom indicates that the levels were given explicitly and
	// need not be evenly spaced.
	Custom bool
}

// ComputeLevels chooses the contour levels for data in the range
// [dataMin, dataMax].
func ComputeLevels(dataMin, dataMax float64, cfg *LevelConfig) (*LevelSet, error) {
	if len(cfg.Thresholds) > 0 {
		levels := cleanLevels(cfg.Thresholds)
		if len(levels) == 0 {
			return nil, fmt.Errorf("%w: no finite thresholds", ErrEmptyLevelSet)
		}
		cfg.Thresholds = levels
		cfg.AutoContour = false
		cfg.Start = levels[0]
		cfg.End = levels[len(levels)-1]
		cfg.Size = 0
		return &LevelSet{
			Values: levels,
			Start:  cfg.Start,
			End:    cfg.End,
			Custom: true,
		}, nil
	}

	if cfg.AutoContour {
		zMin, zMax := dataMin, dataMax
		if cfg.ZMin != nil {
			zMin = *cfg.ZMin
		}
		if cfg.ZMax != nil {
			zMax = *cfg.ZMax
		}
		if !isFinite(zMin) || !isFinite(zMax) {
			return nil, fmt.Errorf("%w: data range [%g, %g]", ErrInvalidRange, zMin, zMax)
		}
		if zMin > zMax {
			zMin, zMax = zMax, zMin
		}

		if zMin == zMax {
			cfg.Start, cfg.End, cfg.Size = zMin, zMin, 1
		} else {
			size := niceStep(zMin, zMax, cfg.NContours)
			r0, r1 := expandRange(zMin, zMax)
			start := math.Ceil(r0/size) * size
			end := math.Floor(r1/size) * size
			// a level on the data range boundary has no area to enclose
			if math.Abs(start-zMin) <= size*tickSlack {
				start += size
			}
			if math.Abs(end-zMax) <= size*tickSlack {
				end -= size
			}
			if start > end {
				start = (start + end) / 2
				end = start
			}
			cfg.Start, cfg.End, cfg.Size = start, end, size
		}
	} else {
		if !isFinite(cfg.Start) || !isFinite(cfg.End) {
			return nil, fmt.Errorf("%w: start=%g end=%g", ErrInvalidRange, cfg.Start, cfg.End)
		}
		if cfg.Start > cfg.End {
			cfg.Start, cfg.End = cfg.End, cfg.Start
		}
		if !(cfg.Size > 0) || math.IsInf(cfg.Size, 0) {
			if cfg.Start == cfg.End {
				cfg.Size = 1
			} else {
				cfg.Size = niceStep(cfg.Start, cfg.End, cfg.NContours)
			}
		}
	}

	values := regularLevels(cfg.Start, cfg.End, cfg.Size)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: start=%g end=%g size=%g",
			ErrEmptyLevelSet, cfg.Start, cfg.End, cfg.Size)
	}
	return &LevelSet{
		Values: values,
		Start:  cfg.Start,
		End:    cfg.End,
		Size:   cfg.Size,
	}, nil
}

// ExplicitLevels turns a caller-supplied list of iso-values into a custom
// LevelSet.
func ExplicitLevels(levels []float64) (*LevelSet, error) {
	clean := cleanLevels(levels)
	if len(clean) == 0 {
		return nil, fmt.Errorf("%w: none of %d levels is finite", ErrInvalidLevel, len(levels))
	}
	return &LevelSet{
		Values: clean,
		Start:  clean[0],
		End:    clean[len(clean)-1],
		Custom: true,
	}, nil
}

// cleanLevels returns the sorted, finite, distinct elements of levels.
func cleanLevels(levels []float64) []float64 {
	res := make([]float64, 0, len(levels))
	for _, v := range levels {
		if isFinite(v) {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// regularLevels lists start, start+size, ... up to end.
func regularLevels(start, end, size float64) []float64 {
	if !(size > 0) {
		return nil
	}
	var res []float64
	for i := 0; i < maxLevels; i++ {
		v := start + float64(i)*size
		if v >= end+size/10 {
			break
		}
		res = append(res, v)
	}
	return res
}

// niceStep returns a round step size which divides [lo, hi] into
// at most about n intervals.  The step is 2, 5 or 10 times a power of ten.
func niceStep(lo, hi float64, n int) float64 {
	if n <= 0 {
		n = defaultNContours
	}
	rough := (hi - lo) / float64(n)
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	ratio := rough / base
	for _, f := range []float64{2, 5} {
		if f > ratio {
			return f * base
		}
	}
	return 10 * base
}

// expandRange widens [lo, hi] by a relative amount so that a tick which
// falls on an end point up to rounding error is still included.
func expandRange(lo, hi float64) (float64, float64) {
	d := (hi - lo) * tickSlack
	return lo - d, hi + d
}

const (
	defaultNContours = 15
	maxLevels        = 1000
	tickSlack        = 1e-4
)

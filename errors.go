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
	"errors"
	"fmt"
)

// Errors reported by the contour engine. Returned errors wrap one of
// these values and can be tested with [errors.Is].
//
// ErrInvalidGrid, ErrInvalidLevel, ErrInvalidRange and ErrEmptyLevelSet
// abort a whole extraction. ErrTopologyAnomaly and ErrIterationLimit
// only ever appear in an [Anomaly]: the affected path is dropped and
// extraction continues.
var (
	ErrInvalidGrid       = errors.New("invalid grid")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInvalidRange      = errors.New("invalid contour range")
	ErrEmptyLevelSet     = errors.New("empty level set")
	ErrTopologyAnomaly   = errors.New("contour topology anomaly")
	ErrIterationLimit    = errors.New("contour iteration limit exceeded")
	ErrWorkerUnavailable = errors.New("contour worker unavailable")
)

// Anomaly records a contour path which had to be abandoned while tracing.
type Anomaly struct {
	Level float64 // the iso-value being traced
	Kind  error   // ErrTopologyAnomaly or ErrIterationLimit
	X, Y  int     // the cell where tracing stopped
	Steps int     // number of cells visited before giving up
}

func (a Anomaly) Error() string {
	return fmt.Sprintf("level %g: %v at cell (%d,%d) after %d steps",
		a.Level, a.Kind, a.X, a.Y, a.Steps)
}

func (a Anomaly) Unwrap() error {
	return a.Kind
}

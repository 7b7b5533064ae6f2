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

// Command export writes all test cases to testdata/testcases.json, as
// extraction requests, for use by other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

type jsonTestCase struct {
	Name    string           `json:"name"`
	Request *contour.Request `json:"request"`
}

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			req, err := toRequest(tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name:    category + "_" + tc.Name,
				Request: req,
			})
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func toRequest(tc testcases.TestCase) (*contour.Request, error) {
	opts := contour.DefaultOptions()
	if err := opts.Coloring.UnmarshalText([]byte(tc.Coloring)); err != nil {
		return nil, err
	}
	opts.Thresholds = tc.Thresholds
	opts.Smoothing = tc.Smoothing
	return &contour.Request{
		Width:   tc.Width(),
		Height:  tc.Height(),
		Values:  tc.Flat(),
		Levels:  tc.Levels,
		Options: *opts,
	}, nil
}

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

// Command contour reads an extraction request in JSON format, computes
// the contours and writes them in one of several output formats.
//
// Usage:
//
//	contour [-in request.json] [-out file] [-format json|geojson|png|pdf|svg|chart]
//
// The request is read from standard input if -in is not given.  Output
// goes to standard output if -out is not given, except for the pdf and
// chart formats, which need a file name.
//
// The json format writes a response object with the fields "id" and
// either "result" or "error".  With -timeout, the command gives up
// without waiting for the computation to finish.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/plot/vg"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/chart"
	"seehuhn.de/go/contour/dispatch"
	"seehuhn.de/go/contour/geo"
	"seehuhn.de/go/contour/pdfplot"
	"seehuhn.de/go/contour/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "contour:", err)
		os.Exit(1)
	}
}

type config struct {
	in, out       string
	format        string
	width, height int
	timeout       time.Duration
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("contour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "request file (default stdin)")
	fs.StringVar(&cfg.out, "out", "", "output file (default stdout)")
	fs.StringVar(&cfg.format, "format", "json", "output format: json, geojson, png, pdf, svg or chart")
	fs.IntVar(&cfg.width, "width", 600, "image width")
	fs.IntVar(&cfg.height, "height", 400, "image height")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "give up waiting after this long (default: wait)")
	fs.BoolVar(&cfg.verbose, "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	switch cfg.format {
	case "json", "geojson", "png", "svg":
	case "pdf", "chart":
		if cfg.out == "" {
			return nil, fmt.Errorf("format %s needs -out", cfg.format)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, errors.New("image size must be positive")
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		contour.SetLogger(slog.New(h))
		defer contour.SetLogger(nil)
	}

	req, err := readRequest(cfg.in, stdin)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}
	host := dispatch.New()
	res, err := host.Compute(ctx, req)
	if err != nil && ctx.Err() != nil {
		// Dispose would wait for the worker to finish the request.
		return err
	}
	host.Dispose()
	if err != nil {
		if cfg.format == "json" && cfg.out == "" {
			writeResponse(stdout, &contour.Response{ID: req.ID, Error: err.Error(), Err: err})
		}
		return err
	}

	switch cfg.format {
	case "pdf":
		return pdfplot.Write(cfg.out, res, &pdfplot.Options{
			Width:  float64(cfg.width),
			Height: float64(cfg.height),
		})
	case "chart":
		return chart.Save(res, cfg.out, vg.Points(float64(cfg.width)), vg.Points(float64(cfg.height)), &chart.Options{
			XLabel: "x",
			YLabel: "y",
			Legend: true,
		})
	}

	if cfg.out == "" {
		return write(stdout, cfg, req.ID, res)
	}
	f, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := write(f, cfg, req.ID, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readRequest(fname string, stdin io.Reader) (*contour.Request, error) {
	r := stdin
	if fname != "" {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	req := &contour.Request{}
	if err := json.NewDecoder(r).Decode(req); err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	return req, nil
}

func write(w io.Writer, cfg *config, id string, res *contour.Result) error {
	switch cfg.format {
	case "geojson":
		fc, err := geo.FeatureCollection(res, nil)
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(fc)
	case "png":
		return png.Encode(w, raster.Paint(res, cfg.width, cfg.height))
	case "svg":
		return writeSVG(w, res, cfg.width, cfg.height)
	default:
		return writeResponse(w, &contour.Response{ID: id, Result: res})
	}
}

func writeResponse(w io.Writer, resp *contour.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

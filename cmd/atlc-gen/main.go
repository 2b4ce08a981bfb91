// seehuhn.de/go/atlc - input bitmaps for the atlc field solver
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

// Command atlc-gen writes bitmaps for the atlc transmission line solver.
//
// Exactly one of -coplanar or -via must be given.  All lengths are given in
// physical units (for example µm) and are divided by the resolution, the
// length represented by one pixel, before the bitmap is generated.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/atlc"
	"seehuhn.de/go/atlc/preview"
)

type options struct {
	coplanar bool
	via      bool
	params   atlc.Params
	output   string
	preview  string
	debug    bool
}

// errUsage is returned for problems with the command line syntax.
var errUsage = errors.New("usage error")

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opt := &options{
		params: atlc.DefaultParams(),
	}
	p := &opt.params

	flags := flag.NewFlagSet("atlc-gen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.BoolVar(&opt.coplanar, "coplanar", false, "generate a coplanar waveguide")
	flags.BoolVar(&opt.via, "via", false, "generate a via transition")

	intFlag := func(v *int, names []string, usage string) {
		for _, name := range names {
			flags.IntVar(v, name, *v, usage)
		}
	}
	intFlag(&p.Resolution, []string{"r", "resolution"}, "physical length per pixel")
	intFlag(&p.Width, []string{"x"}, "board width")
	intFlag(&p.Height, []string{"y"}, "board height")
	intFlag(&p.CoreThickness, []string{"C", "core-thickness"}, "core thickness")
	intFlag(&p.CuThickness, []string{"c", "cu-thickness"}, "copper thickness")
	intFlag(&p.SmThickness, []string{"m", "sm-thickness"}, "soldermask thickness")
	intFlag(&p.TraceWidth, []string{"t", "trace-width"}, "trace width or signal via diameter")
	intFlag(&p.OuterSpace, []string{"s", "outer-space"}, "signal to ground spacing")
	intFlag(&p.InnerSpace, []string{"S", "inner-space"}, "differential pair spacing, 0 for single-ended")
	intFlag(&p.ViaFenceDist, []string{"v", "via-fence-dist"}, "top ground to via fence distance")
	intFlag(&p.ViaThickness, []string{"V", "via-thickness"}, "via fence thickness or ground via diameter")

	for _, name := range []string{"f", "out-filename"} {
		flags.StringVar(&opt.output, name, "atlc-gen.bmp", "output file name")
	}
	flags.StringVar(&opt.preview, "preview", "", "also write a PDF preview to this file")
	flags.BoolVar(&opt.debug, "debug", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, flags.Arg(0))
	}
	switch {
	case opt.coplanar && opt.via:
		return nil, &atlc.ConfigError{Field: "mode", Reason: "-coplanar and -via are mutually exclusive"}
	case !opt.coplanar && !opt.via:
		return nil, &atlc.ConfigError{Field: "mode", Reason: "one of -coplanar or -via is required"}
	}
	return opt, nil
}

// geometry converts the parameters for the selected structure.
func (opt *options) geometry() (atlc.Geometry, error) {
	if opt.coplanar {
		g, err := opt.params.Coplanar()
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	g, err := opt.params.Via()
	if err != nil {
		return nil, err
	}
	return g, nil
}

func run(args []string, stderr io.Writer) error {
	opt, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opt.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
	atlc.SetLogger(logger)

	g, err := opt.geometry()
	if err != nil {
		return err
	}
	logger.Info("generating atlc bitmap", "geometry", fmt.Sprintf("%+v", g))

	if opt.preview == "" {
		_, err = atlc.Generate(g, opt.output)
		return err
	}

	// The preview is written first, so that no bitmap is left behind
	// if it fails.
	c, err := g.Render()
	if err != nil {
		return err
	}
	var disks []atlc.Disk
	if via, ok := g.(*atlc.Via); ok {
		disks, err = via.Disks()
		if err != nil {
			return err
		}
	}
	if err := preview.WritePDF(opt.preview, c, disks); err != nil {
		return fmt.Errorf("writing preview %s: %w", opt.preview, err)
	}
	logger.Info("wrote preview", "file", opt.preview)

	if err := atlc.WriteBMP(opt.output, c); err != nil {
		return fmt.Errorf("writing %s: %w", opt.output, err)
	}
	return nil
}

func main() {
	err := run(os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		slog.Error("atlc-gen failed", "error", err)
		os.Exit(1)
	}
}

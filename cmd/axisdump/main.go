// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisdump computes the axes of a plot of delimited data and
// prints their segments, ticks and labels.
//
// Usage:
//
//	axisdump [flags] data.csv
//
// The data file may be gzip compressed. By default the first column
// is plotted against the second. For example,
//
//	axisdump -x time -y rate --yscale log10 --xbreak 100:200:0.5 data.csv
//
// plots column "rate" on a logarithmic axis against column "time",
// leaving out times between 100 and 200 in the middle of the x axis.
// Axis defaults are read from the TOML file named by --config.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gwenn/yacr"
	"github.com/spf13/cobra"

	"github.com/plotkit/cartesian/axis"
	"github.com/plotkit/cartesian/axisrange"
	"github.com/plotkit/cartesian/column"
	"github.com/plotkit/cartesian/config"
	"github.com/plotkit/cartesian/scale"
)

type flags struct {
	verbose        bool
	config         string
	sep            string
	xcol, ycol     string
	xscale, yscale string
	xbreaks        []string
	ybreaks        []string
	width, height  float64
	padding        float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "axisdump [flags] data-file",
		Short:        "Print the axes computed for delimited data",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			l := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(cmd.OutOrStdout(), l, args[0], f)
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	fl.StringVar(&f.config, "config", "", "read axis defaults from TOML `file`")
	fl.StringVar(&f.sep, "sep", "", "field separator (default: guess)")
	fl.StringVarP(&f.xcol, "xcol", "x", "", "x column `name` (default: first column)")
	fl.StringVarP(&f.ycol, "ycol", "y", "", "y column `name` (default: second column)")
	fl.StringVar(&f.xscale, "xscale", "", "x axis scale `kind`")
	fl.StringVar(&f.yscale, "yscale", "", "y axis scale `kind`")
	fl.StringArrayVar(&f.xbreaks, "xbreak", nil, "x axis break `start:end:position`")
	fl.StringArrayVar(&f.ybreaks, "ybreak", nil, "y axis break `start:end:position`")
	fl.Float64Var(&f.width, "width", 640, "plot width")
	fl.Float64Var(&f.height, "height", 480, "plot height")
	fl.Float64Var(&f.padding, "padding", 40, "padding around the plot area")
	return cmd
}

func run(w io.Writer, l *log.Logger, path string, f flags) error {
	d := config.Default()
	if f.config != "" {
		var err error
		if d, err = config.Load(f.config); err != nil {
			return err
		}
	}

	cols, err := readColumns(path, f.sep)
	if err != nil {
		return err
	}
	l.Debug("read data", "file", path, "columns", len(cols))
	x, err := pick(cols, f.xcol, 0)
	if err != nil {
		return err
	}
	y, err := pick(cols, f.ycol, 1)
	if err != nil {
		return err
	}

	g := axisrange.Geometry{
		Rect:              axisrange.Rect{Width: f.width, Height: f.height},
		HorizontalPadding: f.padding,
		VerticalPadding:   f.padding,
	}
	p := axis.NewPlot(d, g, axis.WithLogger(l))
	p.AddCurve(&column.Curve{Name: x.Name + "/" + y.Name, X: x, Y: y})

	for _, ax := range []struct {
		a      *axis.Axis
		kind   string
		breaks []string
	}{{p.X, f.xscale, f.xbreaks}, {p.Y, f.yscale, f.ybreaks}} {
		if ax.kind != "" {
			k, err := scale.ParseKind(ax.kind)
			if err != nil {
				return err
			}
			ax.a.SetScale(k)
		}
		var bs axisrange.Breaks
		for _, s := range ax.breaks {
			b, err := axisrange.ParseBreak(s)
			if err != nil {
				return err
			}
			bs = append(bs, b)
		}
		ax.a.SetBreaks(bs, len(bs) > 0)
	}

	if err := p.Recompute(); err != nil {
		return err
	}
	dump(w, x.Name, p.X)
	fmt.Fprintln(w)
	dump(w, y.Name, p.Y)
	return nil
}

func readColumns(path, sep string) ([]*column.Column, error) {
	if len(sep) > 1 {
		return nil, fmt.Errorf("separator %q is not a single byte", sep)
	}
	r, err := yacr.Zopen(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var b byte
	if sep != "" {
		b = sep[0]
	}
	cols, err := column.ReadCSV(r, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cols, nil
}

func pick(cols []*column.Column, name string, def int) (*column.Column, error) {
	if name != "" {
		if c := column.Find(cols, name); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("no column %q", name)
	}
	if def >= len(cols) {
		return nil, fmt.Errorf("need at least %d columns, have %d", def+1, len(cols))
	}
	return cols[def], nil
}

func dump(w io.Writer, name string, a *axis.Axis) {
	min, max := a.Range()
	fmt.Fprintf(w, "%s axis %q: %s [%g, %g]\n", a.Orientation(), name, a.Scale(), min, max)
	if r := a.Segments(); r != nil {
		for _, s := range r.Segments() {
			fmt.Fprintf(w, "  segment [%g, %g] -> [%g, %g]\n", s.LogicalStart, s.LogicalEnd, s.SceneStart, s.SceneEnd)
		}
	}
	res := a.Ticks()
	labels := a.TickLabelStrings()
	fmt.Fprintf(w, "  major ticks (%s, precision %d):\n", a.LabelFormat(), a.Precision())
	for i, t := range res.Major {
		fmt.Fprintf(w, "    %-12g at %7.2f  %s\n", t.Value, t.Pos, labels[i])
	}
	if len(res.Minor) > 0 {
		vs := make([]string, len(res.Minor))
		for i, t := range res.Minor {
			vs[i] = fmt.Sprint(t.Value)
		}
		fmt.Fprintf(w, "  minor ticks: %s\n", strings.Join(vs, " "))
	}
	if len(res.Hidden) > 0 {
		fmt.Fprintf(w, "  hidden by breaks: %v\n", res.Hidden)
	}
}

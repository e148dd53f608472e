// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"

	"github.com/plotkit/cartesian/autoscale"
	"github.com/plotkit/cartesian/axisrange"
	"github.com/plotkit/cartesian/column"
	"github.com/plotkit/cartesian/config"
)

// A Plot is a pair of perpendicular axes sharing one data set. Each
// axis line sits at the start of the other axis.
type Plot struct {
	X, Y *Axis
	data *autoscale.Plot
}

// NewPlot returns a plot whose axes are initialized from d and laid
// out in g. opts apply to both axes.
func NewPlot(d config.AxisDefaults, g axisrange.Geometry, opts ...Option) *Plot {
	p := &Plot{
		X:    New(axisrange.Horizontal, d, append(opts, WithName("x"))...),
		Y:    New(axisrange.Vertical, d, append(opts, WithName("y"))...),
		data: autoscale.NewPlot(),
	}
	for _, s := range []*autoscale.Scaler{p.data.X, p.data.Y} {
		s.OffsetFactor = d.OffsetFactor
		s.SetWindow(d.RangeMode.Count(d.RangeCount))
	}
	p.X.scaler, p.Y.scaler = p.data.X, p.data.Y
	p.X.SetGeometry(g)
	p.Y.SetGeometry(g)
	return p
}

// AddCurve plots c.
func (p *Plot) AddCurve(c *column.Curve) {
	p.data.Add(autoscale.Series{X: c.XData(), Y: c.YData()})
}

// RemoveCurve removes c. It reports whether c was plotted.
func (p *Plot) RemoveCurve(c *column.Curve) bool {
	return p.data.Remove(autoscale.Series{X: c.XData(), Y: c.YData()})
}

// DataChanged marks the data of both axes stale.
func (p *Plot) DataChanged() {
	p.data.DataChanged()
}

// VisibilityChanged must be called when a curve was shown or hidden.
func (p *Plot) VisibilityChanged() {
	p.data.VisibilityChanged()
}

// SetGeometry lays out both axes in g.
func (p *Plot) SetGeometry(g axisrange.Geometry) {
	p.X.SetGeometry(g)
	p.Y.SetGeometry(g)
}

// Recompute runs the pipeline of both axes. The data is scanned once
// for both axes, and the segments of both axes are built before
// ticks are generated, since tick sides depend on the other axis.
func (p *Plot) Recompute() error {
	p.data.Refresh()
	var errs []error
	for _, a := range []*Axis{p.X, p.Y} {
		if err := a.RecomputeAutoScale(); err != nil && !errors.Is(err, autoscale.ErrNoData) {
			errs = append(errs, err)
		}
	}
	ymin, _ := p.Y.Range()
	xmin, _ := p.X.Range()
	p.X.SetPlacement(p.Y, ymin)
	p.Y.SetPlacement(p.X, xmin)
	for _, a := range []*Axis{p.X, p.Y} {
		if err := a.RecomputeScales(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, a := range []*Axis{p.X, p.Y} {
		if err := a.RecomputeTicks(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scans returns the number of passes made over the plotted data.
func (p *Plot) Scans() int {
	return p.data.Scans()
}

// CoordinateSystem returns the mapping of both axes. It is valid once
// Recompute succeeded.
func (p *Plot) CoordinateSystem() axisrange.CoordinateSystem {
	return axisrange.CoordinateSystem{X: p.X.rng, Y: p.Y.rng}
}

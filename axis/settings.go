// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/plotkit/cartesian/autoscale"
	"github.com/plotkit/cartesian/axisrange"
	"github.com/plotkit/cartesian/labels"
	"github.com/plotkit/cartesian/scale"
	"github.com/plotkit/cartesian/ticks"
)

// SetRange sets the logical range and disables auto-scaling.
func (a *Axis) SetRange(min, max float64) {
	a.min, a.max = min, max
	a.autoScale = false
}

// SetAutoScale enables or disables auto-scaling.
func (a *Axis) SetAutoScale(on bool) {
	a.autoScale = on
}

// SetRangeMode selects the rows of the data used for auto-scaling.
func (a *Axis) SetRangeMode(m autoscale.RangeMode, rows int) {
	a.scaler.SetWindow(m.Count(rows))
}

func (a *Axis) SetScale(k scale.Kind) {
	a.kind = k
}

// SetBreaks replaces the range breaks.
func (a *Axis) SetBreaks(bs axisrange.Breaks, enabled bool) {
	a.breaks = append(axisrange.Breaks(nil), bs...)
	a.breaksEnabled = enabled
}

func (a *Axis) SetGeometry(g axisrange.Geometry) {
	a.geometry = g
}

func (a *Axis) SetMajorTicks(s ticks.Spec) {
	a.major = s
}

func (a *Axis) SetMinorTicks(s ticks.Spec) {
	a.minor = s
}

// SetStartOffset shifts the first major tick from the start of the
// range.
func (a *Axis) SetStartOffset(off float64) {
	a.startOffset = off
}

// SetLabelColumn makes major tick labels show the values of c instead
// of the tick positions. A nil c restores position labels.
func (a *Axis) SetLabelColumn(c ticks.Column) {
	a.labelColumn = c
}

// SetPlacement puts the axis line at logical coordinate position of
// the perpendicular axis opposite. Tick sides are chosen relative to
// the center of opposite.
func (a *Axis) SetPlacement(opposite *Axis, position float64) {
	a.opposite, a.position = opposite, position
}

// SetLabelFormat sets the label format. If auto is true, Decimal may
// switch to Scientific and back as tick values require.
func (a *Axis) SetLabelFormat(f labels.Format, auto bool) {
	a.format, a.autoFormat, a.formatSwitched = f, auto, false
}

// SetPrecision fixes the label precision and disables automatic
// precision.
func (a *Axis) SetPrecision(p int) {
	a.precision, a.autoPrecision = p, false
}

func (a *Axis) SetAutoPrecision(on bool) {
	a.autoPrecision = on
}

// SetLabelScaling sets the label values to factor*v + offset.
func (a *Axis) SetLabelScaling(factor, offset float64) {
	a.scaling, a.zeroOffset = factor, offset
}

func (a *Axis) SetLabelAffixes(prefix, suffix string) {
	a.prefix, a.suffix = prefix, suffix
}

// Range returns the logical range.
func (a *Axis) Range() (min, max float64) {
	return a.min, a.max
}

func (a *Axis) Scale() scale.Kind {
	return a.kind
}

// Segments returns the built segments, or nil before the first
// successful RecomputeScales. The result is immutable.
func (a *Axis) Segments() *axisrange.Range {
	return a.rng
}

// Ticks returns a copy of the generated ticks.
func (a *Axis) Ticks() ticks.Result {
	return a.res.Clone()
}

// MajorTickPositions returns the scene anchors of the major ticks.
func (a *Axis) MajorTickPositions() []axisrange.Point {
	return anchors(a.res.Major)
}

// MinorTickPositions returns the scene anchors of the minor ticks.
func (a *Axis) MinorTickPositions() []axisrange.Point {
	return anchors(a.res.Minor)
}

func anchors(ts []ticks.Tick) []axisrange.Point {
	out := make([]axisrange.Point, len(ts))
	for i, t := range ts {
		out[i] = t.Anchor
	}
	return out
}

// TickLabelValues returns the label values, index-aligned with
// MajorTickPositions.
func (a *Axis) TickLabelValues() []float64 {
	return append([]float64(nil), a.res.LabelValues...)
}

// TickLabelStrings returns the label text, index-aligned with
// MajorTickPositions.
func (a *Axis) TickLabelStrings() []string {
	return append([]string(nil), a.strings...)
}

func (a *Axis) Precision() int {
	return a.precision
}

func (a *Axis) LabelFormat() labels.Format {
	return a.format
}

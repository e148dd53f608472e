// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis owns the computed state of a Cartesian axis.
//
// An Axis runs the pipeline auto-scale, segment building, tick
// generation and label precision resolution, in that order, and
// caches the result of each stage. Setters only record settings; the
// Recompute methods rebuild the caches. A stage that fails leaves the
// previous cache in place.
//
// An Axis is not safe for concurrent use.
package axis

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/plotkit/cartesian/autoscale"
	"github.com/plotkit/cartesian/axisrange"
	"github.com/plotkit/cartesian/config"
	"github.com/plotkit/cartesian/labels"
	"github.com/plotkit/cartesian/scale"
	"github.com/plotkit/cartesian/ticks"
)

// ErrNotBuilt is returned by RecomputeTicks before the segments of the
// axis were built.
var ErrNotBuilt = errors.New("axis: segments not built")

// An Axis is one axis of a Cartesian plot.
type Axis struct {
	name        string
	orientation axisrange.Orientation
	log         *log.Logger

	kind          scale.Kind
	min, max      float64
	autoScale     bool
	niceExtend    bool
	breaks        axisrange.Breaks
	breaksEnabled bool
	breakGap      float64
	geometry      axisrange.Geometry

	major, minor ticks.Spec
	startOffset  float64
	labelColumn  ticks.Column
	opposite     *Axis
	position     float64

	format         labels.Format
	autoFormat     bool
	formatSwitched bool
	precision      int
	autoPrecision  bool
	scaling        float64
	zeroOffset     float64
	prefix, suffix string

	scaler *autoscale.Scaler

	rng     *axisrange.Range
	res     ticks.Result
	strings []string

	subs    []subscriber
	nextSub int
}

// An Option configures an Axis at construction.
type Option func(*Axis)

// WithLogger sets the logger for recompute diagnostics. By default
// nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(a *Axis) {
		a.log = l
	}
}

// WithName names the axis in log messages.
func WithName(name string) Option {
	return func(a *Axis) {
		a.name = name
	}
}

// WithRange sets the initial logical range.
func WithRange(min, max float64) Option {
	return func(a *Axis) {
		a.min, a.max = min, max
	}
}

// New returns an axis of orientation o initialized from d. Its range
// is [0, 1] until set or auto-scaled.
func New(o axisrange.Orientation, d config.AxisDefaults, opts ...Option) *Axis {
	a := &Axis{
		name:          o.String(),
		orientation:   o,
		log:           log.New(io.Discard),
		kind:          d.Scale,
		max:           1,
		autoScale:     d.AutoScale,
		niceExtend:    d.NiceExtend,
		breakGap:      d.BreakGap,
		major:         tickSpec(d.Major),
		minor:         tickSpec(d.Minor),
		format:        d.Labels.Format,
		autoFormat:    d.Labels.AutoFormat,
		precision:     d.Labels.Precision,
		autoPrecision: d.Labels.AutoPrecision,
		scaling:       d.Labels.ScalingFactor,
		zeroOffset:    d.Labels.ZeroOffset,
		prefix:        d.Labels.Prefix,
		suffix:        d.Labels.Suffix,
		scaler:        autoscale.NewScaler(),
	}
	a.scaler.OffsetFactor = d.OffsetFactor
	a.scaler.SetWindow(d.RangeMode.Count(d.RangeCount))
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func tickSpec(t config.Ticks) ticks.Spec {
	return ticks.Spec{
		Direction: t.Direction,
		Type:      t.Type,
		Count:     t.Count,
		Increment: t.Increment,
		Length:    t.Length,
	}
}

func (a *Axis) Name() string {
	return a.name
}

func (a *Axis) Orientation() axisrange.Orientation {
	return a.orientation
}

// AddProvider registers a data provider for auto-scaling.
func (a *Axis) AddProvider(p autoscale.Provider) {
	a.scaler.Add(p)
}

// RemoveProvider unregisters a data provider.
func (a *Axis) RemoveProvider(p autoscale.Provider) bool {
	return a.scaler.Remove(p)
}

// DataChanged must be called when the data of a provider changed.
func (a *Axis) DataChanged() {
	a.scaler.DataChanged()
}

// VisibilityChanged must be called when a provider was shown or
// hidden.
func (a *Axis) VisibilityChanged() {
	a.scaler.VisibilityChanged()
}

// RecomputeAutoScale updates the logical range from the data if
// auto-scaling is enabled. If no provider has data the range is left
// unchanged and autoscale.ErrNoData is returned.
func (a *Axis) RecomputeAutoScale() error {
	if !a.autoScale {
		return nil
	}
	min, max, err := a.scaler.Range()
	if err != nil {
		a.log.Warn("auto-scale kept previous range", "axis", a.name, "err", err)
		return fmt.Errorf("axis %s: %w", a.name, err)
	}
	if a.niceExtend {
		n := 10
		if a.major.Type == ticks.TotalNumber && a.major.Count > 1 {
			n = a.major.Count
		}
		min, max = ticks.NiceRange(a.kind, min, max, n)
	}
	if min == a.min && max == a.max {
		return nil
	}
	a.log.Debug("auto-scaled", "axis", a.name, "min", min, "max", max)
	a.min, a.max = min, max
	a.emit(RangeChanged)
	return nil
}

// RecomputeScales rebuilds the segments of the axis.
func (a *Axis) RecomputeScales() error {
	r, err := axisrange.Builder{
		Orientation:   a.orientation,
		Kind:          a.kind,
		Min:           a.min,
		Max:           a.max,
		Geometry:      a.geometry,
		Breaks:        a.breaks,
		BreaksEnabled: a.breaksEnabled,
		Gap:           a.breakGap,
	}.Build()
	if err != nil {
		a.log.Warn("segments kept from previous build", "axis", a.name, "err", err)
		return fmt.Errorf("axis %s: %w", a.name, err)
	}
	if r.BreakErr != nil {
		a.log.Warn("breaks truncated", "axis", a.name, "err", r.BreakErr)
	}
	for _, err := range r.Skipped {
		a.log.Debug("segment skipped", "axis", a.name, "err", err)
	}
	a.log.Debug("segments built", "axis", a.name, "segments", r.Len(), "start", r.Start, "end", r.End)
	a.rng = r
	a.emit(ScalesChanged)
	return nil
}

// RecomputeTicks regenerates ticks and labels from the current
// segments.
func (a *Axis) RecomputeTicks() error {
	if a.rng == nil {
		return fmt.Errorf("axis %s: %w", a.name, ErrNotBuilt)
	}
	o := ticks.Options{
		Major:         a.major,
		Minor:         a.minor,
		StartOffset:   a.startOffset,
		ScalingFactor: a.scaling,
		ZeroOffset:    a.zeroOffset,
		LabelColumn:   a.labelColumn,
	}
	if a.opposite != nil && a.opposite.rng != nil {
		o.Placement = ticks.Placement{Opposite: a.opposite.rng, Position: a.position}
	}
	res := ticks.Generate(a.rng, o)

	var events []EventKind
	format, switched := a.format, a.formatSwitched
	if a.autoFormat {
		format, switched = labels.AutoFormat(res.LabelValues, format, switched)
		if format != a.format {
			events = append(events, FormatChanged)
		}
	}
	precision := a.precision
	if a.autoPrecision {
		precision = labels.Resolve(res.LabelValues, format, precision)
		if precision != a.precision {
			events = append(events, PrecisionChanged)
		}
	}
	strs := labels.Strings(res.LabelValues, labels.Options{
		Format:    format,
		Precision: precision,
		Prefix:    a.prefix,
		Suffix:    a.suffix,
		Kind:      a.kind,
	})

	a.log.Debug("ticks generated", "axis", a.name, "major", len(res.Major), "minor", len(res.Minor), "hidden", len(res.Hidden), "precision", precision, "format", format)
	a.res, a.strings = res, strs
	a.format, a.formatSwitched, a.precision = format, switched, precision
	for _, e := range events {
		a.emit(e)
	}
	a.emit(TicksChanged)
	return nil
}

// Recompute runs every stage of the pipeline. A missing auto-scale
// result does not stop the later stages.
func (a *Axis) Recompute() error {
	err := a.RecomputeAutoScale()
	if err != nil && !errors.Is(err, autoscale.ErrNoData) {
		return err
	}
	if err := a.RecomputeScales(); err != nil {
		return err
	}
	return a.RecomputeTicks()
}

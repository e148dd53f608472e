// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the defaults an axis is created with and
// loads them from TOML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/plotkit/cartesian/autoscale"
	"github.com/plotkit/cartesian/axisrange"
	"github.com/plotkit/cartesian/labels"
	"github.com/plotkit/cartesian/scale"
	"github.com/plotkit/cartesian/ticks"
)

// AxisDefaults are the initial settings of an axis.
type AxisDefaults struct {
	Scale scale.Kind `toml:"scale"`

	// AutoScale enables deriving the range from the plotted data.
	// RangeMode and RangeCount select the rows that contribute.
	AutoScale    bool                `toml:"auto_scale"`
	RangeMode    autoscale.RangeMode `toml:"range_mode"`
	RangeCount   int                 `toml:"range_count"`
	OffsetFactor float64             `toml:"offset_factor"`

	// NiceExtend widens auto-scaled ranges to round values.
	NiceExtend bool `toml:"nice_extend"`

	BreakGap float64 `toml:"break_gap"`

	Major  Ticks  `toml:"major"`
	Minor  Ticks  `toml:"minor"`
	Labels Labels `toml:"labels"`
}

// Ticks are the defaults of one class of ticks.
type Ticks struct {
	Direction ticks.Direction `toml:"direction"`
	Type      ticks.Type      `toml:"type"`
	Count     int             `toml:"count"`
	Increment float64         `toml:"increment"`
	Length    float64         `toml:"length"`
}

// Labels are the defaults of the tick labels.
type Labels struct {
	Format        labels.Format `toml:"format"`
	AutoFormat    bool          `toml:"auto_format"`
	Precision     int           `toml:"precision"`
	AutoPrecision bool          `toml:"auto_precision"`
	ScalingFactor float64       `toml:"scaling_factor"`
	ZeroOffset    float64       `toml:"zero_offset"`
	Prefix        string        `toml:"prefix"`
	Suffix        string        `toml:"suffix"`
}

// Default returns the built-in defaults.
func Default() AxisDefaults {
	return AxisDefaults{
		Scale:        scale.Linear,
		AutoScale:    true,
		RangeMode:    autoscale.Free,
		OffsetFactor: autoscale.DefaultOffsetFactor,
		BreakGap:     axisrange.DefaultBreakGap,
		Major: Ticks{
			Direction: ticks.Out,
			Type:      ticks.TotalNumber,
			Count:     11,
			Length:    6,
		},
		Minor: Ticks{
			Direction: ticks.Out,
			Type:      ticks.TotalNumber,
			Count:     1,
			Length:    3,
		},
		Labels: Labels{
			Format:        labels.Decimal,
			AutoFormat:    true,
			Precision:     1,
			AutoPrecision: true,
			ScalingFactor: 1,
		},
	}
}

// Decode reads TOML from r on top of the built-in defaults. Keys that
// do not correspond to a setting are an error.
func Decode(r io.Reader) (AxisDefaults, error) {
	d := Default()
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return AxisDefaults{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return AxisDefaults{}, err
	}
	return d, d.Validate()
}

// Load reads the TOML file at path on top of the built-in defaults.
func Load(path string) (AxisDefaults, error) {
	d := Default()
	md, err := toml.DecodeFile(path, &d)
	if err != nil {
		return AxisDefaults{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return AxisDefaults{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, d.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("config: unknown keys %s", strings.Join(names, ", "))
}

// Validate reports every inconsistent setting of d.
func (d AxisDefaults) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}
	if d.OffsetFactor < 0 {
		bad("offset_factor %v is negative", d.OffsetFactor)
	}
	if d.RangeMode != autoscale.Free && d.RangeCount <= 0 {
		bad("range_mode %v needs a positive range_count", d.RangeMode)
	}
	if d.BreakGap < 0 {
		bad("break_gap %v is negative", d.BreakGap)
	}
	for _, t := range []struct {
		name string
		t    Ticks
	}{{"major", d.Major}, {"minor", d.Minor}} {
		if t.t.Count < 0 {
			bad("%s.count %d is negative", t.name, t.t.Count)
		}
		if t.t.Length < 0 {
			bad("%s.length %v is negative", t.name, t.t.Length)
		}
		if t.t.Type == ticks.Increment && !(t.t.Increment > 0) {
			bad("%s.increment must be positive", t.name)
		}
	}
	if p := d.Labels.Precision; p < 0 || p > labels.MaxPrecision {
		bad("labels.precision %d is outside [0, %d]", p, labels.MaxPrecision)
	}
	return errors.Join(errs...)
}

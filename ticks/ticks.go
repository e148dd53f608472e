// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes the major and minor tick marks of an axis.
//
// Major ticks are spaced evenly in the linearized space of the axis'
// scale kind. Minor ticks are spaced evenly in logical space between
// consecutive major ticks, whatever the scale kind.
package ticks

import (
	"math"

	"github.com/plotkit/cartesian/axisrange"
	"github.com/plotkit/cartesian/scale"
)

// A Column is a numeric sequence that supplies custom tick values.
// Iteration stops at the first NaN.
type Column interface {
	RowCount() int
	ValueAt(row int) float64
}

// A Spec describes one class of ticks, major or minor.
type Spec struct {
	Direction Direction
	Type      Type

	// Count is the number of ticks for TotalNumber. For minor
	// ticks it is the number of ticks between two major ticks.
	Count int

	// Increment is the tick distance for Increment, in the
	// linearized space of the scale for major ticks and in
	// logical units for minor ticks.
	Increment float64

	// Column supplies the values for CustomValues.
	Column Column

	// Length is the scene length of a tick line.
	Length float64
}

// Options is the input of Generate besides the axis range.
type Options struct {
	Major, Minor Spec

	// StartOffset shifts the first major tick away from the start
	// of the range.
	StartOffset float64

	// Label values are ScalingFactor*v + ZeroOffset. A zero
	// ScalingFactor is treated as 1.
	ScalingFactor, ZeroOffset float64

	// LabelColumn, if not nil, supplies the label value of the
	// i'th major tick from its i'th row instead of the tick
	// position.
	LabelColumn Column

	Placement Placement
}

// A Tick is one tick mark.
type Tick struct {
	// Value is the logical position of the tick and Pos its scene
	// coordinate along the axis.
	Value, Pos float64

	// Anchor is the point on the axis line. The tick line runs
	// from Start to End.
	Anchor, Start, End axisrange.Point
}

// Result holds the ticks of an axis. LabelValues is index-aligned
// with Major.
type Result struct {
	Major       []Tick
	Minor       []Tick
	LabelValues []float64

	// Hidden lists the logical positions of major ticks that fell
	// into a break gap or outside the axis.
	Hidden []float64
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	return Result{
		Major:       append([]Tick(nil), r.Major...),
		Minor:       append([]Tick(nil), r.Minor...),
		LabelValues: append([]float64(nil), r.LabelValues...),
		Hidden:      append([]float64(nil), r.Hidden...),
	}
}

// MajorValues returns the logical positions of the major ticks.
func (r Result) MajorValues() []float64 {
	return values(r.Major)
}

// MinorValues returns the logical positions of the minor ticks.
func (r Result) MinorValues() []float64 {
	return values(r.Minor)
}

func values(ts []Tick) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = t.Value
	}
	return out
}

// Generate computes the ticks of axis r.
//
// Nothing is produced if both directions are None, or if a TotalNumber
// major spec asks for fewer than one tick. Major ticks are only
// emitted when the major direction is not None; minor ticks are
// derived from the major positions either way.
func Generate(r *axisrange.Range, o Options) Result {
	var res Result
	major, minor := o.Major, o.Minor
	if major.Direction == None && minor.Direction == None {
		return res
	}
	if major.Type == TotalNumber && major.Count < 1 {
		return res
	}

	start, end := r.Start+o.StartOffset, r.End
	var n int
	var step float64
	switch major.Type {
	case TotalNumber:
		n = major.Count
		step = linearSize(r.Kind, start, end)
		if n > 1 {
			step /= float64(n - 1)
		}
	case Increment:
		if major.Increment == 0 || math.IsNaN(major.Increment) || math.IsInf(major.Increment, 0) {
			return res
		}
		step = math.Abs(major.Increment)
		if end < start {
			step = -step
		}
		n = int(math.Round(linearSize(r.Kind, start, end)/step + 1))
	case CustomValues:
		if major.Column == nil {
			return res
		}
		n = major.Column.RowCount()
	}

	minorN := minorCount(r, minor, n)
	scaling := o.ScalingFactor
	if scaling == 0 {
		scaling = 1
	}
	g := placer{r: r}
	g.cross, g.center, g.dir = o.Placement.resolve(r.Orientation)

	// Custom minor ticks cover the whole axis once.
	if minor.Type == CustomValues && minor.Direction != None && n > 1 {
		for j := 0; j < minorN; j++ {
			v := minor.Column.ValueAt(j)
			if math.IsNaN(v) {
				break
			}
			if t, ok := g.place(v, minor); ok {
				res.Minor = append(res.Minor, t)
			}
		}
	}

	for i := 0; i < n; i++ {
		var pos, next float64
		minors := minorN
		if major.Type == CustomValues {
			pos = major.Column.ValueAt(i)
			if math.IsNaN(pos) {
				break
			}
			if i < n-1 {
				next = major.Column.ValueAt(i + 1)
			} else {
				minors = 0
			}
		} else {
			pos, next = majorAt(r.Kind, start, step, i)
		}

		if major.Direction != None {
			value := scaling*pos + o.ZeroOffset
			t, ok := g.place(pos, major)
			switch {
			case ok && major.Type == CustomValues && contains(res.LabelValues, value):
				// Duplicate custom value.
			case ok:
				res.Major = append(res.Major, t)
				if o.LabelColumn != nil {
					value = o.LabelColumn.ValueAt(i)
				}
				res.LabelValues = append(res.LabelValues, value)
			default:
				res.Hidden = append(res.Hidden, pos)
			}
		}

		if minor.Direction == None || n < 2 || minors < 1 || i >= n-1 || next == pos || math.IsNaN(next) {
			continue
		}
		if minor.Type == CustomValues {
			continue
		}
		inc := (next - pos) / float64(minors+1)
		for j := 0; j < minors; j++ {
			if t, ok := g.place(pos+float64(j+1)*inc, minor); ok {
				res.Minor = append(res.Minor, t)
			}
		}
	}
	return res
}

// linearSize returns the extent of [start, end] in the linearized
// space of k, or 0 if it is undefined there.
func linearSize(k scale.Kind, start, end float64) float64 {
	switch k {
	case scale.Log10:
		if start != 0 && end/start > 0 {
			return math.Log10(end / start)
		}
	case scale.Log2:
		if start != 0 && end/start > 0 {
			return math.Log2(end / start)
		}
	case scale.Ln:
		if start != 0 && end/start > 0 {
			return math.Log(end / start)
		}
	case scale.Sqrt:
		if start >= 0 && end >= 0 {
			return math.Sqrt(end) - math.Sqrt(start)
		}
	case scale.Square:
		sq := scale.Square.Transform()
		a, _ := sq.Forward(start)
		b, _ := sq.Forward(end)
		return b - a
	default:
		return end - start
	}
	return 0
}

// majorAt returns the i'th major tick position from start and the
// position of the tick after it.
func majorAt(k scale.Kind, start, step float64, i int) (pos, next float64) {
	fi := float64(i)
	switch k {
	case scale.Log10:
		pos = start * math.Pow(10, step*fi)
		next = pos * math.Pow(10, step)
	case scale.Log2:
		pos = start * math.Exp2(step*fi)
		next = pos * math.Exp2(step)
	case scale.Ln:
		pos = start * math.Exp(step*fi)
		next = pos * math.Exp(step)
	case scale.Sqrt:
		s := math.Sqrt(start)
		pos = math.Pow(s+step*fi, 2)
		next = math.Pow(s+step*(fi+1), 2)
	case scale.Square:
		sq := scale.Square.Transform()
		s, _ := sq.Forward(start)
		pos = sq.Inverse(s + step*fi)
		next = sq.Inverse(s + step*(fi+1))
	default:
		pos = start + step*fi
		if math.Abs(pos) < 1e-15*math.Abs(step) {
			pos = 0
		}
		next = pos + step
	}
	return
}

// minorCount returns the number of minor ticks per major interval, or
// for CustomValues the number of minor tick values.
func minorCount(r *axisrange.Range, s Spec, majors int) int {
	switch s.Type {
	case TotalNumber:
		return s.Count
	case Increment:
		if s.Increment == 0 || math.IsNaN(s.Increment) || math.IsInf(s.Increment, 0) {
			return 0
		}
		n := int(r.Length()/math.Abs(s.Increment) - 1)
		if majors > 1 {
			n /= majors - 1
		}
		return n
	case CustomValues:
		if s.Column == nil {
			return 0
		}
		return s.Column.RowCount()
	}
	return 0
}

func contains(xs []float64, x float64) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

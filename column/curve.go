// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import "math"

// A Curve plots column Y against column X. Either column may be nil.
type Curve struct {
	Name   string
	X, Y   *Column
	Hidden bool
}

// XData returns the view of c used to scale a horizontal axis.
func (c *Curve) XData() View {
	return View{c, false}
}

// YData returns the view of c used to scale a vertical axis.
func (c *Curve) YData() View {
	return View{c, true}
}

// A View is one coordinate of a Curve. It reports the curve's
// visibility together with the windowed extent of its column.
type View struct {
	curve *Curve
	y     bool
}

func (v View) col() *Column {
	if v.y {
		return v.curve.Y
	}
	return v.curve.X
}

// IsVisible reports whether the curve is shown.
func (v View) IsVisible() bool {
	return !v.curve.Hidden
}

// HasColumn reports whether the coordinate is backed by a column.
func (v View) HasColumn() bool {
	return v.col() != nil
}

func (v View) WindowedMinimum(count int) float64 {
	if c := v.col(); c != nil {
		return c.WindowedMinimum(count)
	}
	return math.NaN()
}

func (v View) WindowedMaximum(count int) float64 {
	if c := v.col(); c != nil {
		return c.WindowedMaximum(count)
	}
	return math.NaN()
}

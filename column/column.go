// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column holds numeric data columns and the curves that plot
// them, and answers the windowed extent queries used for auto-scaling.
package column

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Column is a named sequence of float64 values. Missing values are
// NaN.
type Column struct {
	Name   string
	values []float64
}

// New returns a column holding a copy of values.
func New(name string, values []float64) *Column {
	return &Column{name, append([]float64(nil), values...)}
}

// RowCount returns the number of rows in c.
func (c *Column) RowCount() int {
	return len(c.values)
}

// ValueAt returns the value in row, or NaN if row is out of range.
func (c *Column) ValueAt(row int) float64 {
	if row < 0 || row >= len(c.values) {
		return math.NaN()
	}
	return c.values[row]
}

// Values returns a copy of the values of c.
func (c *Column) Values() []float64 {
	return append([]float64(nil), c.values...)
}

// Set replaces the values of c.
func (c *Column) Set(values []float64) {
	c.values = append(c.values[:0], values...)
}

// Append adds rows to the end of c.
func (c *Column) Append(values ...float64) {
	c.values = append(c.values, values...)
}

// Window returns the half-open row interval [lo, hi) selected by
// count. A count of 0 selects every row, a positive count the first
// count rows and a negative count the last -count rows.
func (c *Column) Window(count int) (lo, hi int) {
	n := len(c.values)
	switch {
	case count > 0:
		if count < n {
			return 0, count
		}
		return 0, n
	case count < 0:
		if n+count > 0 {
			return n + count, n
		}
		return 0, n
	}
	return 0, n
}

// Stats returns the statistics of the finite values in the window
// selected by count.
func (c *Column) Stats(count int) stats.StreamStats {
	var s stats.StreamStats
	lo, hi := c.Window(count)
	for _, v := range c.values[lo:hi] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.Add(v)
	}
	return s
}

// WindowedMinimum returns the smallest finite value in the window
// selected by count, or NaN if there is none.
func (c *Column) WindowedMinimum(count int) float64 {
	s := c.Stats(count)
	if s.Count == 0 {
		return math.NaN()
	}
	return s.Min
}

// WindowedMaximum returns the largest finite value in the window
// selected by count, or NaN if there is none.
func (c *Column) WindowedMaximum(count int) float64 {
	s := c.Stats(count)
	if s.Count == 0 {
		return math.NaN()
	}
	return s.Max
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autoscale derives the displayed range of an axis from the
// data plotted against it.
package autoscale

import (
	"errors"
	"math"
)

// DefaultOffsetFactor is the fraction of the data extent added as
// padding on either side of an auto-scaled range.
const DefaultOffsetFactor = 0.05

// ErrNoData is returned when no visible provider has a finite value in
// its window.
var ErrNoData = errors.New("autoscale: no visible data")

// A Provider supplies the data extent of one plotted series along one
// axis.
//
// The count argument selects a window of rows: 0 means every row, a
// positive count the first count rows and a negative count the last
// -count rows. Both methods return NaN if the window holds no value.
type Provider interface {
	WindowedMinimum(count int) float64
	WindowedMaximum(count int) float64
	IsVisible() bool
	HasColumn() bool
}

// Raw returns the combined extent of the visible providers in ps.
// Providers without a column and NaN results are skipped. ok is false
// if no finite extent was found.
func Raw(ps []Provider, count int) (min, max float64, ok bool) {
	e := newExtent()
	for _, p := range ps {
		e.add(p, count)
	}
	return e.result()
}

// Pad widens [min, max] for display. Each side grows by factor times
// the extent. An empty extent is widened to 10% of its value on either
// side, or to [-0.1, 0.1] if the value is 0.
func Pad(min, max, factor float64) (float64, float64) {
	if min == max {
		if min == 0 {
			return -0.1, 0.1
		}
		lo, hi := min*0.9, min*1.1
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi
	}
	off := (max - min) * factor
	return min - off, max + off
}

type extent struct {
	min, max float64
}

func newExtent() extent {
	return extent{math.Inf(1), math.Inf(-1)}
}

func (e *extent) add(p Provider, count int) {
	if !p.IsVisible() || !p.HasColumn() {
		return
	}
	// NaN compares false, so NaN results are skipped.
	if lo := p.WindowedMinimum(count); lo < e.min {
		e.min = lo
	}
	if hi := p.WindowedMaximum(count); hi > e.max {
		e.max = hi
	}
}

func (e extent) result() (float64, float64, bool) {
	if math.IsInf(e.min, 0) || math.IsInf(e.max, 0) {
		return 0, 0, false
	}
	return e.min, e.max, true
}

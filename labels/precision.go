// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labels chooses the precision and notation of tick labels
// and formats them.
//
// The precision of a set of labels is the smallest number of decimal
// places at which no two labels read the same and no label deviates
// from its value by more than 1% of the labelled span.
package labels

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxPrecision caps the precision chosen by UpperPrecision.
const MaxPrecision = 6

// maxDeviation is the largest deviation of a rounded label from its
// value, relative to the span of all values, that is not a collision.
const maxDeviation = 0.01

// DisplayValues returns scaling*v + offset for every tick value v.
func DisplayValues(values []float64, scaling, offset float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = scaling*v + offset
	}
	return out
}

// UpperPrecision returns the smallest precision of at least p at
// which the labels of format f for values are distinct. The result is
// at most MaxPrecision. If values is empty or its first and last
// values are equal, the result is 0.
func UpperPrecision(values []float64, f Format, p int) int {
	if p > MaxPrecision {
		return MaxPrecision
	}
	if len(values) == 0 || fuzzyEqual(values[0], values[len(values)-1]) {
		return 0
	}
	if p < 0 {
		p = 0
	}
	for p <= MaxPrecision && collides(values, f, p) {
		p++
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// LowerPrecision returns the smallest precision of at most p such
// that the labels at every precision between it and p are distinct.
func LowerPrecision(values []float64, f Format, p int) int {
	if len(values) == 0 {
		return 0
	}
	for p > 0 && !collides(values, f, p-1) {
		p--
	}
	if p < 0 {
		return 0
	}
	return p
}

// Resolve returns the precision to use for values given the current
// precision. A raised precision takes priority; otherwise the
// precision is lowered as far as possible.
func Resolve(values []float64, f Format, current int) int {
	if p := UpperPrecision(values, f, current); p != current {
		return p
	}
	return LowerPrecision(values, f, current)
}

// collides reports whether two labels of format f at precision p read
// the same, or a label deviates too far from its value.
func collides(values []float64, f Format, p int) bool {
	rs := make([]float64, len(values))
	for i, v := range values {
		rs[i] = represent(f, v, p)
	}
	span := math.Abs(values[len(values)-1] - values[0])
	for i, r := range rs {
		if span > 0 && math.Abs(value(f, r)-values[i])/span > maxDeviation {
			return true
		}
		for j := range rs {
			if i != j && r == rs[j] {
				return true
			}
		}
	}
	return false
}

// roundPlaces rounds v to p decimal places, half away from zero.
func roundPlaces(v float64, p int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := decimal.NewFromFloat(v).Round(int32(p)).Float64()
	return r
}

func fuzzyEqual(a, b float64) bool {
	return math.Abs(a-b)*1e12 <= math.Min(math.Abs(a), math.Abs(b))
}

// NeedsScientific reports whether any value is too large or too small
// to be labelled in decimal notation.
func NeedsScientific(values []float64) bool {
	for _, v := range values {
		a := math.Abs(v)
		if a > 1e4 || (a > 1e-16 && a < 1e-4) {
			return true
		}
	}
	return false
}

// AutoFormat switches the Decimal format to Scientific when values
// need it, and back once they no longer do. switched records whether
// the current format was chosen by AutoFormat.
func AutoFormat(values []float64, f Format, switched bool) (Format, bool) {
	need := NeedsScientific(values)
	switch {
	case f == Decimal && need:
		return Scientific, true
	case switched && !need:
		return Decimal, false
	}
	return f, switched
}

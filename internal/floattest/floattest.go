// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floattest provides approximate floating point comparisons
// for tests.
package floattest

import (
	"fmt"
	"math"
	"sort"
	"testing"
)

// Digits is the number of significant figures Aeq compares.
const Digits = 8

var aeqFactor = 1 - math.Pow(10, float64(-Digits+1))

// Aeq returns true if expect and got are equal up to Digits
// significant figures. Values very close to zero are compared
// absolutely.
func Aeq(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	if math.Abs(expect) < 1e-12 && math.Abs(got) < 1e-12 {
		return true
	}
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*aeqFactor <= got && got*aeqFactor <= expect
}

// AeqSlice reports whether expect and got have the same length and are
// element-wise Aeq.
func AeqSlice(expect, got []float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		if !Aeq(expect[i], got[i]) {
			return false
		}
	}
	return true
}

// WantSlice fails t if got is not AeqSlice to want.
func WantSlice(t *testing.T, name string, want, got []float64) {
	t.Helper()
	if !AeqSlice(want, got) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// WantFunc checks f against a table of arguments and results.
func WantFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if Aeq(want, got) {
			continue
		}
		t.Errorf("want %s=%v, got %v", fmt.Sprintf("%s(%v)", name, x), want, got)
	}
}

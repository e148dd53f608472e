// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Epsilon is the boundary that non-positive range endpoints are
// clamped to on logarithmic and square root scales.
const Epsilon = 0.01

// ClampRange returns min and max adjusted so that both lie in the
// domain of k. Only one endpoint is adjusted, relative to the other
// one, so the order of the two endpoints is preserved. Kinds without a
// restricted domain are returned unchanged.
func ClampRange(k Kind, min, max float64) (float64, float64) {
	if !k.Restricted() {
		return min, max
	}
	if min <= 0 && max <= 0 {
		return Epsilon, 1
	}
	if min <= 0 {
		if Epsilon < max*Epsilon {
			min = Epsilon
		} else {
			min = max * Epsilon
		}
	} else if max <= 0 {
		if -Epsilon > min*Epsilon {
			max = -Epsilon
		} else {
			max = min * Epsilon
		}
	}
	return min, max
}

func minmax(xs ...float64) (min float64, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	mscale "github.com/aclements/go-moremath/scale"

	"github.com/plotkit/cartesian/scale"
)

// NiceRange widens [min, max] outwards to "nice" round values such
// that at most maxTicks major ticks fall in the result. Log kinds
// round to powers of their base; Ln rounds to powers of 10. The order
// of min and max is preserved. If no nice range exists, min and max
// are returned unchanged.
func NiceRange(k scale.Kind, min, max float64, maxTicks int) (float64, float64) {
	if min == max || maxTicks < 1 {
		return min, max
	}
	reversed := max < min
	if reversed {
		min, max = max, min
	}
	o := mscale.TickOptions{Max: maxTicks}
	if k.IsLog() {
		base := 10
		if k == scale.Log2 {
			base = 2
		}
		s, err := mscale.NewLog(min, max, base)
		if err != nil {
			// The range includes 0.
			return orient(min, max, reversed)
		}
		s.Nice(o)
		return orient(s.Min, s.Max, reversed)
	}
	s := mscale.Linear{Min: min, Max: max}
	s.Nice(o)
	return orient(s.Min, s.Max, reversed)
}

func orient(min, max float64, reversed bool) (float64, float64) {
	if reversed {
		return max, min
	}
	return min, max
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// OutputScale maps the normalized interval [0, 1] onto a scene
// interval [Start, End]. End may be less than Start, as it is for
// vertical axes whose scene coordinates grow downwards.
type OutputScale struct {
	Start, End float64
	clamp      int
}

const (
	clampCrop = iota
	clampClamp
)

func NewOutputScale(start, end float64) OutputScale {
	return OutputScale{start, end, clampCrop}
}

func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x in [0, 1] to the scene interval. In crop mode, x outside
// [0, 1] has no image and Of returns false. In clamp mode it maps to
// the nearest end of the interval.
func (s OutputScale) Of(x float64) (float64, bool) {
	x, ok := s.limit(x)
	if !ok {
		return 0, false
	}
	return x*(s.End-s.Start) + s.Start, true
}

// Inverse maps a scene coordinate back to [0, 1], subject to the same
// clamping mode as Of.
func (s OutputScale) Inverse(y float64) (float64, bool) {
	if s.End == s.Start {
		return 0, false
	}
	return s.limit((y - s.Start) / (s.End - s.Start))
}

// Direction returns 1 if the scene interval grows with the normalized
// value and -1 otherwise.
func (s OutputScale) Direction() int {
	if s.End < s.Start {
		return -1
	}
	return 1
}

func (s OutputScale) limit(x float64) (float64, bool) {
	const slack = 1e-12
	switch s.clamp {
	case clampCrop:
		if x < -slack || x > 1+slack {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x, true
}

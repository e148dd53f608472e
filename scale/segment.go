// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// Interval is a closed interval of logical values.
type Interval struct {
	Lo, Hi float64
}

// Contains reports whether x lies in [iv.Lo, iv.Hi], allowing for a
// tiny amount of rounding error at either end.
func (iv Interval) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	slack := (iv.Hi - iv.Lo) * 1e-9
	return iv.Lo-slack <= x && x <= iv.Hi+slack
}

// A Segment is one contiguous piece of an axis: it maps the logical
// interval [LogicalStart, LogicalEnd] onto the scene interval
// [SceneStart, SceneEnd] through the transform of Kind.
//
// Segments are immutable once built.
type Segment struct {
	Kind                     Kind
	SceneStart, SceneEnd     float64
	LogicalStart, LogicalEnd float64

	// Validity is the set of logical values this segment accepts.
	// Values outside it have no mapping through this segment.
	Validity Interval

	t    Transform
	norm mscale.Linear
	out  OutputScale
}

// NewSegment builds a segment of kind k. It returns a *DomainError if
// either logical endpoint is outside the domain of k and ErrDegenerate
// if the scene or the transformed logical extent is empty.
func NewSegment(k Kind, sceneStart, sceneEnd, logicalStart, logicalEnd float64) (Segment, error) {
	if sceneStart == sceneEnd {
		return Segment{}, ErrDegenerate
	}
	t := TransformOf(k)
	a, err := t.Forward(logicalStart)
	if err != nil {
		return Segment{}, err
	}
	b, err := t.Forward(logicalEnd)
	if err != nil {
		return Segment{}, err
	}
	if a == b || math.IsNaN(a-b) || math.IsInf(a-b, 0) {
		return Segment{}, ErrDegenerate
	}

	lo, hi := minmax(logicalStart, logicalEnd)
	out := NewOutputScale(sceneStart, sceneEnd)
	out.Clamp()
	return Segment{
		Kind:         k,
		SceneStart:   sceneStart,
		SceneEnd:     sceneEnd,
		LogicalStart: logicalStart,
		LogicalEnd:   logicalEnd,
		Validity:     Interval{lo, hi},
		t:            t,
		norm:         mscale.Linear{Min: a, Max: b},
		out:          out,
	}, nil
}

// Contains reports whether x is mapped by s.
func (s Segment) Contains(x float64) bool {
	return s.Validity.Contains(x) && s.t.InDomain(x)
}

// Map maps logical value x to a scene coordinate. It returns false if
// x has no image in this segment. Values within rounding error of an
// endpoint map to the scene endpoint.
func (s Segment) Map(x float64) (float64, bool) {
	if !s.Contains(x) {
		return 0, false
	}
	return s.out.Of(s.norm.Map(s.t.forward(x)))
}

// Unmap maps scene coordinate y back to a logical value. It returns
// false if y lies outside the segment's scene interval.
func (s Segment) Unmap(y float64) (float64, bool) {
	out := s.out
	out.Crop()
	f, ok := out.Inverse(y)
	if !ok {
		return 0, false
	}
	return s.t.Inverse(s.norm.Unmap(f)), true
}

// Transform returns the forward/inverse pair used by s.
func (s Segment) Transform() Transform {
	return s.t
}

// Direction is 1 if scene coordinates grow with logical values in this
// segment and -1 otherwise.
func (s Segment) Direction() int {
	d := s.out.Direction()
	if s.norm.Max < s.norm.Min {
		d = -d
	}
	return d
}

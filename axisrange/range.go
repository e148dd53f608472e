// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisrange

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/plotkit/cartesian/scale"
)

// MappingFlags modify batch mappings.
type MappingFlags int

const (
	// MarkGaps drops points that have no mapping, so a batch
	// result has fewer points than its input wherever the input
	// crosses a break. The remaining points keep their order.
	MarkGaps MappingFlags = 1 << iota
)

// A Range is the built form of one axis: an ordered list of
// scene-contiguous, non-overlapping segments.
//
// A Range is immutable and may be shared between readers.
type Range struct {
	Orientation Orientation
	Kind        scale.Kind

	// Start and End are the logical extent of the axis after
	// clamping to the domain of Kind.
	Start, End float64

	BreaksEnabled bool

	// Breaks are the breaks that were applied. BreakErr is set if
	// some breaks were ignored because one of them was invalid.
	Breaks   Breaks
	BreakErr error

	// Skipped records segments that could not be built.
	Skipped []error

	segments []scale.Segment
}

// Segments returns a copy of the segments of r in scene order.
func (r *Range) Segments() []scale.Segment {
	return append([]scale.Segment(nil), r.segments...)
}

// Len returns the number of segments.
func (r *Range) Len() int {
	return len(r.segments)
}

// Center returns the midpoint of the logical extent.
func (r *Range) Center() float64 {
	return (r.Start + r.End) / 2
}

// Length returns the absolute logical extent.
func (r *Range) Length() float64 {
	return math.Abs(r.End - r.Start)
}

// Direction returns 1 if scene coordinates grow with logical values
// and -1 otherwise.
func (r *Range) Direction() int {
	if len(r.segments) == 0 {
		return 1
	}
	return r.segments[0].Direction()
}

// MapLogicalToScene maps x through the first segment that contains
// it. It returns false if x lies in a break gap or outside the axis.
func (r *Range) MapLogicalToScene(x float64) (float64, bool) {
	for _, s := range r.segments {
		if y, ok := s.Map(x); ok {
			return y, true
		}
	}
	return 0, false
}

// MapSceneToLogical is the inverse of MapLogicalToScene.
func (r *Range) MapSceneToLogical(y float64) (float64, bool) {
	for _, s := range r.segments {
		if x, ok := s.Unmap(y); ok {
			return x, true
		}
	}
	return 0, false
}

func (r *Range) toScene(x float64) float64 {
	if y, ok := r.MapLogicalToScene(x); ok {
		return y
	}
	return math.NaN()
}

func (r *Range) toLogical(y float64) float64 {
	if x, ok := r.MapSceneToLogical(y); ok {
		return x
	}
	return math.NaN()
}

// MapLogicalToSceneAll maps every value of xs. Unmappable values are
// NaN in the result unless flags include MarkGaps, in which case they
// are dropped.
func (r *Range) MapLogicalToSceneAll(xs []float64, flags MappingFlags) []float64 {
	return filter(vec.Map(r.toScene, xs), flags)
}

// MapSceneToLogicalAll maps every value of ys back to logical
// coordinates, with the same treatment of unmappable values as
// MapLogicalToSceneAll.
func (r *Range) MapSceneToLogicalAll(ys []float64, flags MappingFlags) []float64 {
	return filter(vec.Map(r.toLogical, ys), flags)
}

func filter(xs []float64, flags MappingFlags) []float64 {
	if flags&MarkGaps == 0 {
		return xs
	}
	out := xs[:0]
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// ScenePieces returns the scene intervals covered by the logical
// interval [lo, hi], one per segment it overlaps. Break gaps appear as
// discontinuities between pieces.
func (r *Range) ScenePieces(lo, hi float64) [][2]float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	var pieces [][2]float64
	for _, s := range r.segments {
		a := math.Max(lo, s.Validity.Lo)
		b := math.Min(hi, s.Validity.Hi)
		if a > b {
			continue
		}
		sa, ok1 := s.Map(a)
		sb, ok2 := s.Map(b)
		if ok1 && ok2 {
			pieces = append(pieces, [2]float64{sa, sb})
		}
	}
	return pieces
}

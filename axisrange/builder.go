// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axisrange assembles the scale segments of one Cartesian axis,
// honoring range breaks, and maps between logical and scene
// coordinates across them.
package axisrange

import (
	"errors"

	"github.com/plotkit/cartesian/scale"
)

// DefaultBreakGap is the scene distance left open at a range break.
const DefaultBreakGap = 20

// ErrNoSegments is returned by Build when no segment could be
// emitted, for example because the plot has zero scene extent.
var ErrNoSegments = errors.New("axisrange: axis has no mappable segment")

// A Builder describes an axis whose segments are to be built.
type Builder struct {
	Orientation Orientation
	Kind        scale.Kind

	// Min and Max are the logical start and end of the axis. Max
	// may be less than Min for a reversed axis.
	Min, Max float64

	Geometry Geometry

	Breaks        Breaks
	BreaksEnabled bool

	// Gap is the scene distance left at each break. If zero,
	// DefaultBreakGap is used.
	Gap float64
}

// Build computes the segments of the axis.
//
// Without breaks a single segment spans the whole plot. With breaks,
// one segment is emitted from the end of the previous one up to each
// break's position and a trailing segment runs from the last break to
// the end of the plot. Breaks are applied in registration order up to
// the first invalid one. Segments with an empty scene extent, or whose
// logical endpoints are outside the domain of Kind, are skipped.
func (b Builder) Build() (*Range, error) {
	gap := b.Gap
	if gap == 0 {
		gap = DefaultBreakGap
	}
	min, max := scale.ClampRange(b.Kind, b.Min, b.Max)
	r := &Range{
		Orientation:   b.Orientation,
		Kind:          b.Kind,
		Start:         min,
		End:           max,
		BreaksEnabled: b.BreaksEnabled,
	}

	plotStart, plotEnd := b.Geometry.SceneInterval(b.Orientation)
	var breaks Breaks
	if b.BreaksEnabled {
		breaks, r.BreakErr = b.Breaks.Usable()
	}
	// The gap is laid out in the direction the scene runs.
	if plotEnd < plotStart {
		gap = -gap
	}

	emit := func(sceneStart, sceneEnd, logicalStart, logicalEnd float64) {
		if sceneStart == sceneEnd {
			return
		}
		seg, err := scale.NewSegment(b.Kind, sceneStart, sceneEnd, logicalStart, logicalEnd)
		if err != nil {
			r.Skipped = append(r.Skipped, err)
			return
		}
		r.segments = append(r.segments, seg)
	}

	if len(breaks) == 0 {
		emit(plotStart, plotEnd, min, max)
	} else {
		lastScene, lastLogical := plotStart, min
		for i, rb := range breaks {
			sceneStart := lastScene
			if i == 0 {
				sceneStart += gap
			}
			sceneEnd := plotStart + (plotEnd-plotStart)*rb.Position
			emit(sceneStart, sceneEnd, lastLogical, rb.Start)
			lastScene, lastLogical = sceneEnd, rb.End
		}
		emit(lastScene+gap, plotEnd, lastLogical, max)
		r.Breaks = breaks
	}

	if len(r.segments) == 0 {
		return nil, ErrNoSegments
	}
	return r, nil
}

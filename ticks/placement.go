// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import "github.com/plotkit/cartesian/axisrange"

// Placement locates an axis line relative to the perpendicular axis.
type Placement struct {
	// Opposite is the range of the perpendicular axis. If nil, the
	// axis line is at scene coordinate 0 and ticks are laid out as
	// for the bottom or right side of a plot.
	Opposite *axisrange.Range

	// Position is the logical coordinate of the axis line on
	// Opposite.
	Position float64
}

// resolve returns the scene coordinate of the axis line across the
// axis, the scene coordinate of the center of the opposite axis and
// the direction in which scene coordinates grow with logical ones on
// the opposite axis.
func (p Placement) resolve(o axisrange.Orientation) (cross, center float64, dir int) {
	if p.Opposite == nil {
		if o == axisrange.Horizontal {
			return 0, 0, -1
		}
		return 0, 0, 1
	}
	op := p.Opposite
	dir = op.Direction()
	segs := op.Segments()
	first, last := segs[0], segs[len(segs)-1]

	cross, ok := op.MapLogicalToScene(p.Position)
	if !ok {
		cross = first.SceneStart
	}
	center, ok = op.MapLogicalToScene(op.Center())
	if !ok {
		center = (first.SceneStart + last.SceneEnd) / 2
	}
	return cross, center, dir
}

// lowerLeft reports whether an axis line at cross lies below
// (horizontal axes) or left of (vertical axes) center. Scene y grows
// downwards.
func lowerLeft(o axisrange.Orientation, cross, center float64) bool {
	if o == axisrange.Horizontal {
		return cross >= center
	}
	return cross < center
}

type placer struct {
	r      *axisrange.Range
	cross  float64
	center float64
	dir    int
}

// place maps logical position v to a tick of spec s. It returns false
// if v has no scene position.
func (g placer) place(v float64, s Spec) (Tick, bool) {
	pos, ok := g.r.MapLogicalToScene(v)
	if !ok {
		return Tick{}, false
	}
	var in, out float64
	if s.Direction&In != 0 {
		in = float64(g.dir) * s.Length
	}
	if s.Direction&Out != 0 {
		out = float64(g.dir) * s.Length
	}
	// The side is evaluated for every tick.
	a, b := in, -out
	if !lowerLeft(g.r.Orientation, g.cross, g.center) {
		a, b = out, -in
	}
	if g.r.Orientation == axisrange.Horizontal {
		anchor := axisrange.Point{X: pos, Y: g.cross}
		return Tick{
			Value:  v,
			Pos:    pos,
			Anchor: anchor,
			Start:  axisrange.Point{X: pos, Y: g.cross + a},
			End:    axisrange.Point{X: pos, Y: g.cross + b},
		}, true
	}
	anchor := axisrange.Point{X: g.cross, Y: pos}
	return Tick{
		Value:  v,
		Pos:    pos,
		Anchor: anchor,
		Start:  axisrange.Point{X: g.cross + a, Y: pos},
		End:    axisrange.Point{X: g.cross + b, Y: pos},
	}, true
}

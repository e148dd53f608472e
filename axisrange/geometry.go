// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisrange

// Orientation is the direction an axis runs in.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Rect is a rectangle in scene coordinates. Scene y grows downwards.
type Rect struct {
	X, Y, Width, Height float64
}

// Geometry is the scene area available to a plot.
type Geometry struct {
	Rect              Rect
	HorizontalPadding float64
	VerticalPadding   float64
}

// SceneInterval returns [plotSceneStart, plotSceneEnd] for an axis of
// orientation o. Vertical axes start at the bottom of the plot, so for
// them start is greater than end.
func (g Geometry) SceneInterval(o Orientation) (start, end float64) {
	r := g.Rect
	if o == Vertical {
		return r.Y + r.Height - g.VerticalPadding, r.Y + g.VerticalPadding
	}
	return r.X + g.HorizontalPadding, r.X + r.Width - g.HorizontalPadding
}

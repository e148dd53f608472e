// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisrange

import "math"

// Point is a position in either logical or scene coordinates.
type Point struct {
	X, Y float64
}

// Line is a segment between two points.
type Line struct {
	P1, P2 Point
}

// CoordinateSystem combines a horizontal and a vertical Range into a
// two-dimensional mapping.
type CoordinateSystem struct {
	X, Y *Range
}

// MapPoint maps a logical point to the scene. It returns false if
// either coordinate is unmappable.
func (cs CoordinateSystem) MapPoint(p Point) (Point, bool) {
	x, ok := cs.X.MapLogicalToScene(p.X)
	if !ok {
		return Point{}, false
	}
	y, ok := cs.Y.MapLogicalToScene(p.Y)
	if !ok {
		return Point{}, false
	}
	return Point{x, y}, true
}

// UnmapPoint maps a scene point back to logical coordinates.
func (cs CoordinateSystem) UnmapPoint(p Point) (Point, bool) {
	x, ok := cs.X.MapSceneToLogical(p.X)
	if !ok {
		return Point{}, false
	}
	y, ok := cs.Y.MapSceneToLogical(p.Y)
	if !ok {
		return Point{}, false
	}
	return Point{x, y}, true
}

// MapPoints maps logical points to the scene. Unmappable points become
// NaN points, or are dropped if flags include MarkGaps.
func (cs CoordinateSystem) MapPoints(ps []Point, flags MappingFlags) []Point {
	out := make([]Point, 0, len(ps))
	for _, p := range ps {
		q, ok := cs.MapPoint(p)
		if !ok {
			if flags&MarkGaps != 0 {
				continue
			}
			q = Point{math.NaN(), math.NaN()}
		}
		out = append(out, q)
	}
	return out
}

// MapLine maps a logical line to the scene. Horizontal and vertical
// lines are split into one piece per segment they cross so that break
// gaps show as discontinuities. Other lines are mapped end to end and
// dropped if an end is unmappable.
func (cs CoordinateSystem) MapLine(l Line) []Line {
	switch {
	case l.P1.Y == l.P2.Y:
		y, ok := cs.Y.MapLogicalToScene(l.P1.Y)
		if !ok {
			return nil
		}
		var out []Line
		for _, p := range cs.X.ScenePieces(l.P1.X, l.P2.X) {
			out = append(out, Line{Point{p[0], y}, Point{p[1], y}})
		}
		return out
	case l.P1.X == l.P2.X:
		x, ok := cs.X.MapLogicalToScene(l.P1.X)
		if !ok {
			return nil
		}
		var out []Line
		for _, p := range cs.Y.ScenePieces(l.P1.Y, l.P2.Y) {
			out = append(out, Line{Point{x, p[0]}, Point{x, p[1]}})
		}
		return out
	}
	p1, ok1 := cs.MapPoint(l.P1)
	p2, ok2 := cs.MapPoint(l.P2)
	if !ok1 || !ok2 {
		return nil
	}
	return []Line{{p1, p2}}
}

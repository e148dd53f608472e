// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisrange

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/cartesian/internal/floattest"
	"github.com/plotkit/cartesian/scale"
)

var testGeometry = Geometry{
	Rect:              Rect{X: 0, Y: 0, Width: 440, Height: 340},
	HorizontalPadding: 20,
	VerticalPadding:   20,
}

func TestNoBreaks(t *testing.T) {
	r, err := Builder{Kind: scale.Linear, Min: 0, Max: 10, Geometry: testGeometry}.Build()
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	seg := r.Segments()[0]
	assert.Equal(t, 20.0, seg.SceneStart)
	assert.Equal(t, 420.0, seg.SceneEnd)

	y, ok := r.MapLogicalToScene(5)
	assert.True(t, ok)
	assert.InDelta(t, 220, y, 1e-9)
}

func TestLinearRoundTrip(t *testing.T) {
	for _, tc := range []struct{ min, max float64 }{
		{0, 10}, {-5, 5}, {1e-3, 2e-3}, {100, -100}, {-1e6, 3e6},
	} {
		for _, o := range []Orientation{Horizontal, Vertical} {
			r, err := Builder{Orientation: o, Kind: scale.Linear, Min: tc.min, Max: tc.max, Geometry: testGeometry}.Build()
			require.NoError(t, err)
			for i := 0; i <= 20; i++ {
				x := tc.min + (tc.max-tc.min)*float64(i)/20
				y, ok := r.MapLogicalToScene(x)
				require.True(t, ok, "map %v", x)
				back, ok := r.MapSceneToLogical(y)
				require.True(t, ok, "unmap %v", y)
				if !floattest.Aeq(x, back) {
					t.Errorf("%v [%v,%v]: round trip of %v gave %v", o, tc.min, tc.max, x, back)
				}
			}
		}
	}
}

func TestVerticalRunsUp(t *testing.T) {
	r, err := Builder{Orientation: Vertical, Kind: scale.Linear, Min: 0, Max: 100, Geometry: testGeometry}.Build()
	require.NoError(t, err)
	lo, _ := r.MapLogicalToScene(0)
	hi, _ := r.MapLogicalToScene(100)
	assert.Equal(t, 320.0, lo)
	assert.Equal(t, 20.0, hi)
	assert.Equal(t, -1, r.Direction())
}

func TestBreaks(t *testing.T) {
	b := Builder{
		Kind:          scale.Linear,
		Min:           0,
		Max:           100,
		Geometry:      testGeometry,
		BreaksEnabled: true,
		Breaks:        Breaks{{Start: 40, End: 60, Position: 0.5}},
	}
	r, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
	segs := r.Segments()
	assert.Equal(t, 40.0, segs[0].SceneStart)
	assert.Equal(t, 220.0, segs[0].SceneEnd)
	assert.Equal(t, 240.0, segs[1].SceneStart)
	assert.Equal(t, 420.0, segs[1].SceneEnd)

	_, ok := r.MapLogicalToScene(50)
	assert.False(t, ok, "value in break gap must be unmappable")
	_, ok = r.MapSceneToLogical(230)
	assert.False(t, ok, "scene gap must be unmappable")

	y, ok := r.MapLogicalToScene(60)
	assert.True(t, ok)
	assert.InDelta(t, 240, y, 1e-9)
}

func TestInvalidBreakTruncates(t *testing.T) {
	b := Builder{
		Kind:          scale.Linear,
		Min:           0,
		Max:           100,
		Geometry:      testGeometry,
		BreaksEnabled: true,
		Breaks: Breaks{
			{Start: 20, End: 30, Position: 0.3},
			{Start: 70, End: 50, Position: 0.6},
			{Start: 80, End: 90, Position: 0.8},
		},
	}
	r, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	var ib *InvalidBreakError
	require.True(t, errors.As(r.BreakErr, &ib))
	assert.Equal(t, 1, ib.Index)
	assert.Len(t, r.Breaks, 1)

	// Breaks past the invalid one are not applied.
	_, ok := r.MapLogicalToScene(85)
	assert.True(t, ok)
}

func TestFirstBreakInvalid(t *testing.T) {
	b := Builder{
		Kind:          scale.Linear,
		Min:           0,
		Max:           100,
		Geometry:      testGeometry,
		BreaksEnabled: true,
		Breaks:        Breaks{{Start: 20, End: 30, Position: 1.5}},
	}
	r, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	assert.Error(t, r.BreakErr)
}

func TestBreaksDisabled(t *testing.T) {
	b := Builder{
		Kind:     scale.Linear,
		Min:      0,
		Max:      100,
		Geometry: testGeometry,
		Breaks:   Breaks{{Start: 40, End: 60, Position: 0.5}},
	}
	r, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	_, ok := r.MapLogicalToScene(50)
	assert.True(t, ok)
}

func TestVerticalBreakGap(t *testing.T) {
	b := Builder{
		Orientation:   Vertical,
		Kind:          scale.Linear,
		Min:           0,
		Max:           100,
		Geometry:      testGeometry,
		BreaksEnabled: true,
		Breaks:        Breaks{{Start: 40, End: 60, Position: 0.5}},
	}
	r, err := b.Build()
	require.NoError(t, err)
	segs := r.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, 300.0, segs[0].SceneStart)
	assert.Equal(t, 170.0, segs[0].SceneEnd)
	assert.Equal(t, 150.0, segs[1].SceneStart)
	assert.Equal(t, 20.0, segs[1].SceneEnd)
}

func TestMarkGaps(t *testing.T) {
	r, err := Builder{
		Kind:          scale.Linear,
		Min:           0,
		Max:           100,
		Geometry:      testGeometry,
		BreaksEnabled: true,
		Breaks:        Breaks{{Start: 40, End: 60, Position: 0.5}},
	}.Build()
	require.NoError(t, err)

	got := r.MapLogicalToSceneAll([]float64{10, 50, 90}, MarkGaps)
	require.Len(t, got, 2)
	assert.Less(t, got[0], got[1])
	a, _ := r.MapLogicalToScene(10)
	b, _ := r.MapLogicalToScene(90)
	assert.Equal(t, []float64{a, b}, got)

	all := r.MapLogicalToSceneAll([]float64{10, 50, 90}, 0)
	require.Len(t, all, 3)
	assert.True(t, math.IsNaN(all[1]))

	back := r.MapSceneToLogicalAll([]float64{a, 230, b}, MarkGaps)
	floattest.WantSlice(t, "MapSceneToLogicalAll", []float64{10, 90}, back)
}

func TestLogRangeClamped(t *testing.T) {
	r, err := Builder{Kind: scale.Log10, Min: 0, Max: 100, Geometry: testGeometry}.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.01, r.Start)
	y, ok := r.MapLogicalToScene(1)
	require.True(t, ok)
	assert.InDelta(t, 20+400.0/2, y, 1e-9)
	_, ok = r.MapLogicalToScene(-1)
	assert.False(t, ok)
}

func TestDegenerateGeometry(t *testing.T) {
	g := Geometry{Rect: Rect{Width: 40, Height: 40}, HorizontalPadding: 20}
	_, err := Builder{Kind: scale.Linear, Min: 0, Max: 1, Geometry: g}.Build()
	assert.ErrorIs(t, err, ErrNoSegments)
}

func TestScenePiecesAndLines(t *testing.T) {
	x, err := Builder{
		Kind:          scale.Linear,
		Min:           0,
		Max:           100,
		Geometry:      testGeometry,
		BreaksEnabled: true,
		Breaks:        Breaks{{Start: 40, End: 60, Position: 0.5}},
	}.Build()
	require.NoError(t, err)
	y, err := Builder{Orientation: Vertical, Kind: scale.Linear, Min: 0, Max: 10, Geometry: testGeometry}.Build()
	require.NoError(t, err)
	cs := CoordinateSystem{X: x, Y: y}

	lines := cs.MapLine(Line{Point{0, 0}, Point{100, 0}})
	require.Len(t, lines, 2)
	assert.Equal(t, 40.0, lines[0].P1.X)
	assert.InDelta(t, 220, lines[0].P2.X, 1e-9)
	assert.InDelta(t, 240, lines[1].P1.X, 1e-9)
	assert.Equal(t, 320.0, lines[0].P1.Y)

	pts := cs.MapPoints([]Point{{10, 5}, {50, 5}, {90, 5}}, MarkGaps)
	assert.Len(t, pts, 2)

	p, ok := cs.MapPoint(Point{90, 5})
	require.True(t, ok)
	back, ok := cs.UnmapPoint(p)
	require.True(t, ok)
	assert.InDelta(t, 90, back.X, 1e-9)
	assert.InDelta(t, 5, back.Y, 1e-9)
}

func TestParseBreak(t *testing.T) {
	b, err := ParseBreak("1.5:3:0.25")
	require.NoError(t, err)
	assert.Equal(t, Break{Start: 1.5, End: 3, Position: 0.25}, b)
	_, err = ParseBreak("1:2")
	assert.Error(t, err)
	_, err = ParseBreak("a:2:0.5")
	assert.Error(t, err)
}

func TestSquareSymmetric(t *testing.T) {
	r, err := Builder{Kind: scale.Square, Min: -3.3, Max: 3.3, Geometry: testGeometry}.Build()
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	y, ok := r.MapLogicalToScene(0)
	assert.True(t, ok)
	assert.InDelta(t, 220, y, 1e-9)
	x, ok := r.MapSceneToLogical(y)
	assert.True(t, ok)
	assert.InDelta(t, 0, x, 1e-12)
}

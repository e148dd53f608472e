// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	c := New("x", []float64{1, 2, 3, 4, 5})
	for _, tc := range []struct {
		count  int
		lo, hi int
	}{
		{0, 0, 5},
		{2, 0, 2},
		{-2, 3, 5},
		{10, 0, 5},
		{-10, 0, 5},
	} {
		lo, hi := c.Window(tc.count)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("Window(%d) = [%d,%d), want [%d,%d)", tc.count, lo, hi, tc.lo, tc.hi)
		}
	}
}

func TestWindowedExtent(t *testing.T) {
	nan := math.NaN()
	c := New("y", []float64{3, nan, -1, 7, math.Inf(1), 2})

	assert.Equal(t, -1.0, c.WindowedMinimum(0))
	assert.Equal(t, 7.0, c.WindowedMaximum(0))
	assert.Equal(t, 3.0, c.WindowedMinimum(2))
	assert.Equal(t, 3.0, c.WindowedMaximum(2))
	assert.Equal(t, 2.0, c.WindowedMinimum(-2))
	assert.Equal(t, 2.0, c.WindowedMaximum(-2))

	empty := New("e", []float64{nan, nan})
	assert.True(t, math.IsNaN(empty.WindowedMinimum(0)))
	assert.True(t, math.IsNaN(empty.WindowedMaximum(0)))
}

func TestValueAt(t *testing.T) {
	c := New("x", []float64{1, 2})
	assert.Equal(t, 2.0, c.ValueAt(1))
	assert.True(t, math.IsNaN(c.ValueAt(2)))
	assert.True(t, math.IsNaN(c.ValueAt(-1)))

	c.Append(3)
	assert.Equal(t, 3, c.RowCount())
	c.Set([]float64{9})
	assert.Equal(t, []float64{9}, c.Values())
}

func TestCurveViews(t *testing.T) {
	cv := &Curve{Name: "c", X: New("x", []float64{0, 10}), Y: New("y", []float64{5, 20})}
	x, y := cv.XData(), cv.YData()
	assert.True(t, x.HasColumn())
	assert.Equal(t, 10.0, x.WindowedMaximum(0))
	assert.Equal(t, 5.0, y.WindowedMinimum(0))

	cv.Hidden = true
	assert.False(t, x.IsVisible())

	cv.Y = nil
	assert.False(t, y.HasColumn())
	assert.True(t, math.IsNaN(y.WindowedMaximum(0)))
}

func TestReadCSV(t *testing.T) {
	in := "time,value\n0,1.5\n1,\"2\"\n# comment\n2,oops\n3\n"
	cols, err := ReadCSV(strings.NewReader(in), ',')
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "time", cols[0].Name)
	assert.Equal(t, "value", cols[1].Name)
	assert.Equal(t, []float64{0, 1, 2, 3}, cols[0].Values())

	v := cols[1].Values()
	require.Len(t, v, 4)
	assert.Equal(t, 1.5, v[0])
	assert.Equal(t, 2.0, v[1])
	assert.True(t, math.IsNaN(v[2]))
	assert.True(t, math.IsNaN(v[3]))

	assert.Same(t, cols[1], Find(cols, "value"))
	assert.Nil(t, Find(cols, "missing"))
}

func TestReadCSVNoHeader(t *testing.T) {
	cols, err := ReadCSV(strings.NewReader("1\t-2e3\n4\t5\n"), '\t')
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "Column 1", cols[0].Name)
	assert.Equal(t, []float64{-2e3, 5}, cols[1].Values())
}

func TestReadCSVEmpty(t *testing.T) {
	cols, err := ReadCSV(strings.NewReader(""), ',')
	require.NoError(t, err)
	assert.Empty(t, cols)
}

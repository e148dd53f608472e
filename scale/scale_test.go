// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"
	"testing"

	"github.com/plotkit/cartesian/internal/floattest"
)

func forward(t *testing.T, k Kind) func(float64) float64 {
	return func(x float64) float64 {
		y, err := TransformOf(k).Forward(x)
		if err != nil {
			t.Errorf("%v.Forward(%v): %v", k, x, err)
		}
		return y
	}
}

func TestTransforms(t *testing.T) {
	floattest.WantFunc(t, "Linear.Forward", forward(t, Linear), map[float64]float64{-3: -3, 0: 0, 2.5: 2.5})
	floattest.WantFunc(t, "Log10.Forward", forward(t, Log10), map[float64]float64{1: 0, 10: 1, 1000: 3, 0.01: -2})
	floattest.WantFunc(t, "Log2.Forward", forward(t, Log2), map[float64]float64{1: 0, 8: 3, 0.5: -1})
	floattest.WantFunc(t, "Ln.Forward", forward(t, Ln), map[float64]float64{1: 0, math.E: 1})
	floattest.WantFunc(t, "Sqrt.Forward", forward(t, Sqrt), map[float64]float64{0: 0, 4: 2, 9: 3})
	floattest.WantFunc(t, "Square.Forward", forward(t, Square), map[float64]float64{-3: -9, 0: 0, 2: 4})

	floattest.WantFunc(t, "Log10.Inverse", Log10.Transform().Inverse, map[float64]float64{0: 1, 2: 100, -1: 0.1})
	floattest.WantFunc(t, "Log2.Inverse", Log2.Transform().Inverse, map[float64]float64{3: 8})
	floattest.WantFunc(t, "Sqrt.Inverse", Sqrt.Transform().Inverse, map[float64]float64{3: 9})
	floattest.WantFunc(t, "Square.Inverse", Square.Transform().Inverse, map[float64]float64{4: 2, 0: 0, -9: -3})
}

func TestDomainError(t *testing.T) {
	for _, tc := range []struct {
		k Kind
		x float64
	}{
		{Log10, 0}, {Log10, -1}, {Log2, 0}, {Ln, -5}, {Sqrt, -0.1},
	} {
		_, err := TransformOf(tc.k).Forward(tc.x)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("%v.Forward(%v): want DomainError, got %v", tc.k, tc.x, err)
			continue
		}
		if de.Kind != tc.k || de.Value != tc.x {
			t.Errorf("%v.Forward(%v): error carries %v/%v", tc.k, tc.x, de.Kind, de.Value)
		}
	}
	if _, err := TransformOf(Sqrt).Forward(0); err != nil {
		t.Errorf("Sqrt.Forward(0): unexpected error %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for k := Linear; k <= Square; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if k, err := ParseKind("LOG10"); err != nil || k != Log10 {
		t.Errorf("ParseKind is not case-insensitive: %v, %v", k, err)
	}
	if _, err := ParseKind("cubic"); err == nil {
		t.Errorf("ParseKind(cubic) succeeded")
	}
}

func TestClampRange(t *testing.T) {
	for _, tc := range []struct {
		k                Kind
		min, max         float64
		wantMin, wantMax float64
	}{
		{Linear, -5, 5, -5, 5},
		{Square, -5, 5, -5, 5},
		{Log10, 0, 100, 0.01, 100},
		{Log10, -3, 0.5, 0.005, 0.5},
		{Sqrt, 0, 10, 0.01, 10},
		{Log10, 10, -1, 10, 0.1},
		{Ln, -2, -1, Epsilon, 1},
		{Log2, 1, 4, 1, 4},
	} {
		gotMin, gotMax := ClampRange(tc.k, tc.min, tc.max)
		if !floattest.Aeq(tc.wantMin, gotMin) || !floattest.Aeq(tc.wantMax, gotMax) {
			t.Errorf("ClampRange(%v, %v, %v) = %v, %v; want %v, %v", tc.k, tc.min, tc.max, gotMin, gotMax, tc.wantMin, tc.wantMax)
		}
	}
}

func TestSegmentLinearRoundTrip(t *testing.T) {
	s, err := NewSegment(Linear, 100, 500, -10, 30)
	if err != nil {
		t.Fatal(err)
	}
	for x := -10.0; x <= 30; x += 0.7 {
		y, ok := s.Map(x)
		if !ok {
			t.Fatalf("Map(%v) unmappable", x)
		}
		back, ok := s.Unmap(y)
		if !ok || !floattest.Aeq(x, back) {
			t.Errorf("Unmap(Map(%v)) = %v, %v", x, back, ok)
		}
	}
	if y, _ := s.Map(-10); y != 100 {
		t.Errorf("Map(start) = %v, want 100", y)
	}
	if y, _ := s.Map(30); !floattest.Aeq(500, y) {
		t.Errorf("Map(end) = %v, want 500", y)
	}
	if _, ok := s.Map(31); ok {
		t.Errorf("Map outside validity interval succeeded")
	}
	if _, ok := s.Unmap(50); ok {
		t.Errorf("Unmap outside scene interval succeeded")
	}
}

func TestSegmentLog(t *testing.T) {
	s, err := NewSegment(Log10, 0, 200, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	floattest.WantFunc(t, "Map", func(x float64) float64 {
		y, _ := s.Map(x)
		return y
	}, map[float64]float64{1: 0, 10: 100, 100: 200})
	if x, ok := s.Unmap(100); !ok || !floattest.Aeq(10, x) {
		t.Errorf("Unmap(100) = %v, %v", x, ok)
	}
	if s.Direction() != 1 {
		t.Errorf("Direction = %d", s.Direction())
	}

	// Vertical segments run against the scene.
	v, err := NewSegment(Log10, 400, 0, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if y, _ := v.Map(10); !floattest.Aeq(200, y) {
		t.Errorf("vertical Map(10) = %v", y)
	}
	if v.Direction() != -1 {
		t.Errorf("vertical Direction = %d", v.Direction())
	}
}

func TestSegmentErrors(t *testing.T) {
	if _, err := NewSegment(Linear, 10, 10, 0, 1); err != ErrDegenerate {
		t.Errorf("degenerate scene: got %v", err)
	}
	if _, err := NewSegment(Linear, 0, 10, 5, 5); err != ErrDegenerate {
		t.Errorf("degenerate logical: got %v", err)
	}
	var de *DomainError
	if _, err := NewSegment(Log10, 0, 10, 0, 5); !errors.As(err, &de) {
		t.Errorf("log of zero: got %v", err)
	}
}

func TestOutputScale(t *testing.T) {
	o := NewOutputScale(10, 20)
	if _, ok := o.Of(1.5); ok {
		t.Errorf("crop: Of(1.5) succeeded")
	}
	o.Clamp()
	if y, ok := o.Of(1.5); !ok || y != 20 {
		t.Errorf("clamp: Of(1.5) = %v, %v", y, ok)
	}
	if y, ok := o.Of(-0.5); !ok || y != 10 {
		t.Errorf("clamp: Of(-0.5) = %v, %v", y, ok)
	}
	if x, ok := o.Inverse(15); !ok || x != 0.5 {
		t.Errorf("Inverse(15) = %v, %v", x, ok)
	}
}

func TestSegmentSquare(t *testing.T) {
	for _, tc := range []struct {
		min, max float64
	}{
		{-10, -2}, {-5, 5}, {-5, 3}, {2, 10}, {3.3, -3.3},
	} {
		s, err := NewSegment(Square, 0, 100, tc.min, tc.max)
		if err != nil {
			t.Errorf("[%v,%v]: %v", tc.min, tc.max, err)
			continue
		}
		lo, hi := minmax(tc.min, tc.max)
		prev := math.Inf(-1)
		if s.Direction() < 0 {
			prev = math.Inf(1)
		}
		for i := 0; i <= 20; i++ {
			x := lo + (hi-lo)*float64(i)/20
			y, ok := s.Map(x)
			if !ok || y < 0 || y > 100 {
				t.Errorf("[%v,%v]: Map(%v) = %v, %v", tc.min, tc.max, x, y, ok)
				continue
			}
			if (s.Direction() > 0 && y < prev) || (s.Direction() < 0 && y > prev) {
				t.Errorf("[%v,%v]: Map(%v) = %v is not monotonic", tc.min, tc.max, x, y)
			}
			prev = y
			back, ok := s.Unmap(y)
			if !ok || !floattest.Aeq(x, back) {
				t.Errorf("[%v,%v]: Unmap(Map(%v)) = %v, %v", tc.min, tc.max, x, back, ok)
			}
		}
	}

	s, err := NewSegment(Square, 0, 100, -10, -2)
	if err != nil {
		t.Fatal(err)
	}
	if y, ok := s.Map(-4); !ok || !floattest.Aeq(y, 87.5) {
		t.Errorf("Map(-4) = %v, %v; want 87.5", y, ok)
	}
	if x, ok := s.Unmap(87.5); !ok || !floattest.Aeq(x, -4) {
		t.Errorf("Unmap(87.5) = %v, %v; want -4", x, ok)
	}
}

func TestSegmentMapEdges(t *testing.T) {
	s, err := NewSegment(Linear, 0, 100, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Within rounding of an endpoint still maps inside the scene.
	if y, ok := s.Map(1 + 1e-12); !ok || y != 100 {
		t.Errorf("Map(1+1e-12) = %v, %v; want 100", y, ok)
	}
	if _, ok := s.Map(1.1); ok {
		t.Errorf("Map(1.1) succeeded")
	}
}

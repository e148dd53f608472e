// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// A Transform is the forward and inverse function pair of one scale
// Kind. Forward maps a logical value to the normalized (linearized)
// space; Inverse maps back.
type Transform struct {
	kind    Kind
	forward func(x float64) float64
	inverse func(y float64) float64
	domain  func(x float64) bool
}

func everywhere(float64) bool {
	return true
}

func positive(x float64) bool {
	return x > 0
}

func nonNegative(x float64) bool {
	return x >= 0
}

func identity(x float64) float64 {
	return x
}

// signedSquare is x² carrying the sign of x, so that Square is
// monotonic over the whole real line.
func signedSquare(x float64) float64 {
	return x * math.Abs(x)
}

func signedSqrt(y float64) float64 {
	if y < 0 {
		return -math.Sqrt(-y)
	}
	return math.Sqrt(y)
}

var transforms = [...]Transform{
	Linear: {Linear, identity, identity, everywhere},
	Log10:  {Log10, math.Log10, func(y float64) float64 { return math.Pow(10, y) }, positive},
	Log2:   {Log2, math.Log2, math.Exp2, positive},
	Ln:     {Ln, math.Log, math.Exp, positive},
	Sqrt:   {Sqrt, math.Sqrt, func(y float64) float64 { return y * y }, nonNegative},
	Square: {Square, signedSquare, signedSqrt, everywhere},
}

// TransformOf returns the Transform for k. It panics if k is not a
// valid Kind.
func TransformOf(k Kind) Transform {
	if k < 0 || int(k) >= len(transforms) {
		panic("scale: invalid Kind " + k.String())
	}
	return transforms[k]
}

// Transform returns the forward/inverse pair of k.
func (k Kind) Transform() Transform {
	return TransformOf(k)
}

// Kind returns the scale kind t belongs to.
func (t Transform) Kind() Kind {
	return t.kind
}

// InDomain reports whether x can be passed to Forward.
func (t Transform) InDomain(x float64) bool {
	return !math.IsNaN(x) && t.domain(x)
}

// Forward maps a logical value to the normalized space. It returns a
// *DomainError if x is outside the kind's domain.
func (t Transform) Forward(x float64) (float64, error) {
	if !t.InDomain(x) {
		return math.NaN(), &DomainError{Kind: t.kind, Value: x}
	}
	return t.forward(x), nil
}

// Inverse maps a normalized value back to logical space.
func (t Transform) Inverse(y float64) float64 {
	return t.inverse(y)
}

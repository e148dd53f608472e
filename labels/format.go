// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"fmt"
	"math"
	"strings"
)

// Format is the notation of tick labels.
type Format int

const (
	Decimal Format = iota
	// ScientificE prints mantissa and exponent as 1.5e+03.
	ScientificE
	// Scientific prints values near 1 in decimal notation and
	// others as 1.5×10^3.
	Scientific
	Powers10
	Powers2
	PowersE
	// MultipliesPi prints values as multiples of π.
	MultipliesPi
)

var formatNames = []string{"decimal", "scientific-e", "scientific", "powers10", "powers2", "powers-e", "pi"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat parses the name of a label format, ignoring case.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown label format %q", s)
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// minNormal is the smallest positive normal float64. Its logarithm
// stands in for the logarithm of 0 in the power formats.
const minNormal = 0x1p-1022

// represent returns the number a label of format f shows for v,
// rounded to p decimal places.
func represent(f Format, v float64, p int) float64 {
	switch f {
	case MultipliesPi:
		return roundPlaces(v/math.Pi, p)
	case Scientific, ScientificE:
		frac, e := frexp10(v)
		return roundPlaces(frac, p) * math.Pow(10, float64(e))
	case Powers10:
		if v == 0 {
			return math.Log10(minNormal)
		}
		return roundPlaces(math.Log10(math.Abs(v)), p)
	case Powers2:
		if v == 0 {
			return math.Log2(minNormal)
		}
		return roundPlaces(math.Log2(math.Abs(v)), p)
	case PowersE:
		if v == 0 {
			return math.Log(minNormal)
		}
		return roundPlaces(math.Log(math.Abs(v)), p)
	}
	return roundPlaces(v, p)
}

// value maps a representation of format f back to a plain number.
func value(f Format, r float64) float64 {
	switch f {
	case MultipliesPi:
		return math.Pi * r
	case Powers10:
		return math.Pow(10, r)
	case Powers2:
		return math.Exp2(r)
	case PowersE:
		return math.Exp(r)
	}
	return r
}

// frexp10 splits v into a mantissa in [1, 10) and a power of 10.
func frexp10(v float64) (frac float64, exp int) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v, 0
	}
	exp = int(math.Floor(math.Log10(math.Abs(v))))
	frac = v / math.Pow(10, float64(exp))
	switch {
	case math.Abs(frac) >= 10:
		frac /= 10
		exp++
	case math.Abs(frac) < 1:
		frac *= 10
		exp--
	}
	return frac, exp
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/plotkit/cartesian/scale"
)

// Options control the text of tick labels.
type Options struct {
	Format    Format
	Precision int

	Prefix, Suffix string

	// Kind is the scale kind of the axis. Decimal labels on
	// logarithmic axes get as many places as each value needs
	// instead of a common precision.
	Kind scale.Kind
}

// Strings returns the label text for each value. NaN values get an
// empty label.
func Strings(values []float64, o Options) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		out[i] = o.Prefix + o.text(v) + o.Suffix
	}
	return out
}

func (o Options) text(v float64) string {
	p := o.Precision
	if p < 0 {
		p = 0
	}
	if math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == 0 && o.Format != Decimal {
		return "0"
	}

	switch o.Format {
	case ScientificE:
		frac, e := frexp10(v)
		return noNegZero(strconv.FormatFloat(roundPlaces(frac, p)*math.Pow(10, float64(e)), 'e', p, 64))

	case Scientific:
		frac, e := frexp10(v)
		if a := math.Abs(v); a > 0.01 && a < 100 {
			places := p - e
			if places < 0 {
				places = 0
			}
			return noNegZero(strconv.FormatFloat(roundPlaces(frac, p)*math.Pow(10, float64(e)), 'f', places, 64))
		}
		return fixed(frac, p) + "×10^" + strconv.Itoa(e)

	case Powers10:
		return sign(v) + "10^" + fixed(math.Log10(math.Abs(v)), p)

	case Powers2:
		return sign(v) + "2^" + fixed(math.Log2(math.Abs(v)), p)

	case PowersE:
		return sign(v) + "e^" + fixed(math.Log(math.Abs(v)), p)

	case MultipliesPi:
		if math.Abs(v-math.Pi) <= 1e-3*math.Pi {
			return "π"
		}
		return fixed(v/math.Pi, p) + "π"
	}

	if o.Kind.IsLog() {
		return noNegZero(strconv.FormatFloat(v, 'f', roundedDecimals(v), 64))
	}
	return noNegZero(fixed(v, p))
}

// fixed formats v rounded half away from zero to p places.
func fixed(v float64, p int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(p))
}

// roundedDecimals returns the number of places needed to show the
// leading digit of v.
func roundedDecimals(v float64) int {
	if v == 0 {
		return 0
	}
	d := -int(math.Floor(math.Log10(math.Abs(v)) + 1e-10))
	if d < 0 {
		return 0
	}
	return d
}

// noNegZero turns a negative zero such as "-0.00" into "0.00".
func noNegZero(s string) string {
	if len(s) < 2 || s[0] != '-' {
		return s
	}
	for _, c := range s[1:] {
		switch {
		case c == '0', c == '.':
		case c == 'e' || c == 'E':
			return s[1:]
		default:
			return s
		}
	}
	return s[1:]
}

func sign(v float64) string {
	if v < 0 {
		return "-"
	}
	return ""
}

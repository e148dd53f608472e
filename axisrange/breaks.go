// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axisrange

import (
	"fmt"
	"strconv"
	"strings"
)

// BreakStyle is the decoration a renderer draws at a range break. It
// has no effect on the mapping.
type BreakStyle int

const (
	BreakSimple BreakStyle = iota
	BreakVertical
	BreakSloped
)

// A Break omits the logical interval (Start, End) from an axis. The
// gap is drawn at Position, a fraction of the plot's scene extent.
type Break struct {
	Start, End float64
	Position   float64
	Style      BreakStyle
}

// Valid reports whether b can be applied: Start must be less than End
// and Position must lie in [0, 1].
func (b Break) Valid() bool {
	return b.Start < b.End && b.Position >= 0 && b.Position <= 1
}

func (b Break) String() string {
	return fmt.Sprintf("[%g,%g]@%g", b.Start, b.End, b.Position)
}

// ParseBreak parses a break written as "start:end:position".
func ParseBreak(s string) (Break, error) {
	f := strings.Split(s, ":")
	if len(f) != 3 {
		return Break{}, fmt.Errorf("break %q: want start:end:position", s)
	}
	var v [3]float64
	for i := range f {
		x, err := strconv.ParseFloat(strings.TrimSpace(f[i]), 64)
		if err != nil {
			return Break{}, fmt.Errorf("break %q: %w", s, err)
		}
		v[i] = x
	}
	return Break{Start: v[0], End: v[1], Position: v[2]}, nil
}

// InvalidBreakError describes the first malformed break of a list.
type InvalidBreakError struct {
	Index int
	Break Break
}

func (e *InvalidBreakError) Error() string {
	return fmt.Sprintf("axisrange: break %d %v is invalid; it and all later breaks are ignored", e.Index, e.Break)
}

// Breaks is an ordered list of range breaks, in registration order.
type Breaks []Break

// Usable returns the prefix of bs that precedes the first invalid
// break. If a break was dropped, the returned error is an
// *InvalidBreakError naming it.
func (bs Breaks) Usable() (Breaks, error) {
	for i, b := range bs {
		if !b.Valid() {
			return bs[:i:i], &InvalidBreakError{i, b}
		}
	}
	return bs, nil
}

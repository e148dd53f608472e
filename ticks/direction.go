// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"strings"
)

// Direction is a set of flags selecting which side of the axis line
// tick marks are drawn on.
type Direction int

const (
	// In draws ticks towards the center of the plot.
	In Direction = 1 << iota
	// Out draws ticks away from the center of the plot.
	Out

	None Direction = 0
	Both           = In | Out
)

var directionNames = map[Direction]string{None: "none", In: "in", Out: "out", Both: "both"}

func (d Direction) String() string {
	if s, ok := directionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "none", "in", "out" or "both", ignoring case.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return d, nil
		}
	}
	return None, fmt.Errorf("unknown tick direction %q", s)
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Type selects how tick positions are derived.
type Type int

const (
	// TotalNumber places a fixed number of ticks evenly in the
	// scale's linearized space.
	TotalNumber Type = iota
	// Increment places ticks a fixed linearized distance apart.
	Increment
	// CustomValues places ticks at the values of a column.
	CustomValues
)

var typeNames = []string{"total", "increment", "custom"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType parses "total", "increment" or "custom", ignoring case.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tick type %q", s)
}

func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import (
	"fmt"
	"strings"
)

// RangeMode selects which rows of the data contribute to the
// auto-scaled range.
type RangeMode int

const (
	// Free uses every row.
	Free RangeMode = iota
	// First uses the leading N rows.
	First
	// Last uses the trailing N rows.
	Last
)

var modeNames = []string{"free", "first", "last"}

func (m RangeMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("RangeMode(%d)", int(m))
	}
	return modeNames[m]
}

// Count returns the signed window count for mode m over n rows.
func (m RangeMode) Count(n int) int {
	switch m {
	case First:
		return n
	case Last:
		return -n
	}
	return 0
}

// ParseRangeMode parses the name of a range mode, ignoring case.
func ParseRangeMode(s string) (RangeMode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return RangeMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown range mode %q", s)
}

func (m *RangeMode) UnmarshalText(text []byte) error {
	v, err := ParseRangeMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m RangeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale implements the logical-to-scene transforms of a
// Cartesian axis: the per-kind forward and inverse functions and the
// contiguous segments an axis is assembled from.
package scale

import (
	"fmt"
	"strings"
)

// Kind selects the law used to linearize logical values before they
// are laid out on the scene.
type Kind int

const (
	Linear Kind = iota
	Log10
	Log2
	Ln
	Sqrt
	Square
)

var kindNames = [...]string{
	Linear: "linear",
	Log10:  "log10",
	Log2:   "log2",
	Ln:     "ln",
	Sqrt:   "sqrt",
	Square: "square",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return Linear, fmt.Errorf("unknown scale kind %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so a Kind can be
// read directly from configuration files.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsLog reports whether k is one of the logarithmic kinds.
func (k Kind) IsLog() bool {
	return k == Log10 || k == Log2 || k == Ln
}

// Restricted reports whether k has a domain smaller than the real
// line, in which case range endpoints must be clamped before a
// segment can be built.
func (k Kind) Restricted() bool {
	return k.IsLog() || k == Sqrt
}

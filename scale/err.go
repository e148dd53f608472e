// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "fmt"

// RangeErr is an error that indicates some argument or value is out
// of range.
type RangeErr string

func (r RangeErr) Error() string {
	return string(r)
}

const (
	// ErrDegenerate is returned when a segment's logical or scene
	// extent collapses to a single value.
	ErrDegenerate = RangeErr("scale: degenerate segment")
)

// DomainError reports a logical value that has no image under a scale
// kind, such as a non-positive value on a logarithmic axis.
type DomainError struct {
	Kind  Kind
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("scale: %v is outside the domain of the %v scale", e.Value, e.Kind)
}

// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import "fmt"

// EventKind identifies what changed on an axis.
type EventKind int

const (
	// RangeChanged is sent when auto-scaling moved the logical
	// range.
	RangeChanged EventKind = iota
	// ScalesChanged is sent when the segments were rebuilt.
	ScalesChanged
	// TicksChanged is sent when ticks and labels were regenerated.
	TicksChanged
	// PrecisionChanged is sent when the automatic label precision
	// moved.
	PrecisionChanged
	// FormatChanged is sent when the label format switched between
	// decimal and scientific notation on its own.
	FormatChanged
)

var eventNames = []string{"RangeChanged", "ScalesChanged", "TicksChanged", "PrecisionChanged", "FormatChanged"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// An Event notifies a subscriber of a change to Axis.
type Event struct {
	Kind EventKind
	Axis *Axis
}

// Subscribe registers fn to be called synchronously for every event
// of a. The returned function removes the subscription.
func (a *Axis) Subscribe(fn func(Event)) (cancel func()) {
	id := a.nextSub
	a.nextSub++
	a.subs = append(a.subs, subscriber{id, fn})
	return func() {
		for i, s := range a.subs {
			if s.id == id {
				a.subs = append(a.subs[:i], a.subs[i+1:]...)
				return
			}
		}
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

func (a *Axis) emit(k EventKind) {
	a.log.Debug("event", "axis", a.name, "kind", k)
	for _, s := range a.subs {
		s.fn(Event{k, a})
	}
}

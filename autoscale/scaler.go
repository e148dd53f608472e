// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

// A Scaler caches the auto-scaled range of one axis. The range is
// recomputed on demand after any change to the set of providers, their
// visibility or their data.
type Scaler struct {
	// OffsetFactor is the padding factor passed to Pad.
	OffsetFactor float64

	providers []Provider
	count     int

	dirty    bool
	valid    bool
	min, max float64
	scans    int
}

// NewScaler returns a Scaler with the default offset factor and no
// providers.
func NewScaler() *Scaler {
	return &Scaler{OffsetFactor: DefaultOffsetFactor, dirty: true}
}

// Add registers p.
func (s *Scaler) Add(p Provider) {
	s.providers = append(s.providers, p)
	s.dirty = true
}

// Remove unregisters p. It reports whether p was registered.
func (s *Scaler) Remove(p Provider) bool {
	for i, q := range s.providers {
		if q == p {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			s.dirty = true
			return true
		}
	}
	return false
}

// Providers returns the registered providers in registration order.
func (s *Scaler) Providers() []Provider {
	return append([]Provider(nil), s.providers...)
}

// VisibilityChanged must be called when a provider is shown or hidden.
func (s *Scaler) VisibilityChanged() {
	s.dirty = true
}

// DataChanged must be called when the data behind a provider changes.
func (s *Scaler) DataChanged() {
	s.dirty = true
}

// SetWindow sets the signed window count used for every provider.
func (s *Scaler) SetWindow(count int) {
	if count != s.count {
		s.count = count
		s.dirty = true
	}
}

// Window returns the signed window count.
func (s *Scaler) Window() int {
	return s.count
}

// Dirty reports whether the next call to Range rescans the providers.
func (s *Scaler) Dirty() bool {
	return s.dirty
}

// Scans returns the number of times s scanned its providers.
func (s *Scaler) Scans() int {
	return s.scans
}

// Raw returns the unpadded extent of the visible data, rescanning the
// providers if s is dirty. ok is false if no provider has data.
func (s *Scaler) Raw() (min, max float64, ok bool) {
	if s.dirty {
		s.scans++
		s.apply(Raw(s.providers, s.count))
	}
	return s.min, s.max, s.valid
}

// Range returns the padded range of the visible data. If no provider
// has data it returns ErrNoData.
func (s *Scaler) Range() (min, max float64, err error) {
	min, max, ok := s.Raw()
	if !ok {
		return 0, 0, ErrNoData
	}
	min, max = Pad(min, max, s.OffsetFactor)
	return min, max, nil
}

func (s *Scaler) apply(min, max float64, ok bool) {
	s.dirty = false
	s.min, s.max, s.valid = min, max, ok
}

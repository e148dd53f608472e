// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

// A Series is one plotted curve seen as a pair of providers.
type Series struct {
	X, Y Provider
}

// A Plot auto-scales the two axes of a Cartesian plot. When both axes
// are dirty at once their providers are scanned in a single pass.
//
// Series must be added and removed through the Plot so that both
// scalers see the same set of providers.
type Plot struct {
	X, Y *Scaler

	series []Series
	shared int
}

// NewPlot returns a Plot with two fresh scalers.
func NewPlot() *Plot {
	return &Plot{X: NewScaler(), Y: NewScaler()}
}

// Add registers s with both axes.
func (p *Plot) Add(s Series) {
	p.series = append(p.series, s)
	p.X.Add(s.X)
	p.Y.Add(s.Y)
}

// Remove unregisters s. It reports whether s was registered.
func (p *Plot) Remove(s Series) bool {
	for i, q := range p.series {
		if q == s {
			p.series = append(p.series[:i], p.series[i+1:]...)
			p.X.Remove(s.X)
			p.Y.Remove(s.Y)
			return true
		}
	}
	return false
}

// VisibilityChanged marks both axes dirty.
func (p *Plot) VisibilityChanged() {
	p.X.VisibilityChanged()
	p.Y.VisibilityChanged()
}

// DataChanged marks both axes dirty.
func (p *Plot) DataChanged() {
	p.X.DataChanged()
	p.Y.DataChanged()
}

// Refresh brings both scalers up to date. If both are dirty, the
// series are scanned once for both axes.
func (p *Plot) Refresh() {
	if !p.X.Dirty() || !p.Y.Dirty() {
		p.X.Raw()
		p.Y.Raw()
		return
	}
	p.shared++
	ex, ey := newExtent(), newExtent()
	for _, s := range p.series {
		ex.add(s.X, p.X.count)
		ey.add(s.Y, p.Y.count)
	}
	p.X.apply(ex.result())
	p.Y.apply(ey.result())
}

// Scans returns the number of provider passes made for p, counting a
// shared pass once.
func (p *Plot) Scans() int {
	return p.shared + p.X.Scans() + p.Y.Scans()
}

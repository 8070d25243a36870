// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gocvm/energy"
)

// FlipStep implements the grand-canonical ensemble's single-site
// occupation change with optional chemical-potential bias.
type FlipStep struct {
	calc    *energy.Calculator
	k       int
	deltaMu []float64 // deltaMu[c] = μ_c - μ_0; deltaMu[0] is fixed at 0
	r, t    float64

	attempted, accepted int64
}

// NewFlipStep builds a grand-canonical step actor. deltaMu must have length
// k; deltaMu[0] is ignored and fixed at 0 per the chemical
// potential convention (the caller may not set μ_0 independently).
func NewFlipStep(calc *energy.Calculator, k int, deltaMu []float64, r, t float64) *FlipStep {
	if r <= 0 {
		chk.Panic("mc.NewFlipStep: R must be > 0, got %g", r)
	}
	if t <= 0 {
		chk.Panic("mc.NewFlipStep: T must be > 0, got %g", t)
	}
	if len(deltaMu) != k {
		chk.Panic("mc.NewFlipStep: deltaMu has length %d, want %d", len(deltaMu), k)
	}
	dm := make([]float64, k)
	copy(dm, deltaMu)
	dm[0] = 0
	return &FlipStep{calc: calc, k: k, deltaMu: dm, r: r, t: t}
}

// Attempt performs one grand-canonical flip attempt, returning the
// accepted cluster-energy ΔE (0 if rejected); the chemical-potential
// correction participates only in the acceptance test, not in the returned
// ΔE, since the engine's incremental energy tracks H alone.
func (s *FlipStep) Attempt(cfg *energy.Config) float64 {
	s.attempted++
	n := len(cfg.Occ)
	i := rnd.Int(0, n-1)
	oldOcc := cfg.Occ[i]
	newOcc := oldOcc
	for newOcc == oldOcc {
		newOcc = rnd.Int(0, s.k-1)
	}
	dE := s.calc.DeltaSingleSite(cfg, i, oldOcc, newOcc)
	dMu := (s.deltaMu[newOcc] - s.deltaMu[oldOcc]) / float64(n)
	total := dE + dMu
	beta := 1.0 / (s.r * s.t)
	if total <= 0 || rnd.Float64(0, 1) < math.Exp(-beta*total) {
		cfg.Occ[i] = newOcc
		s.accepted++
		return dE
	}
	return 0
}

// AcceptRate returns accepted/attempted, or 0 if no attempts were made
func (s *FlipStep) AcceptRate() float64 {
	if s.attempted == 0 {
		return 0
	}
	return float64(s.accepted) / float64(s.attempted)
}

// ResetCounters zeroes the acceptance statistics
func (s *FlipStep) ResetCounters() {
	s.attempted, s.accepted = 0, 0
}

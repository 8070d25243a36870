// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mc implements the canonical (exchange) and grand-canonical
// (flip) Monte Carlo steps driving energy.Calculator and
// energy.Config.
package mc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gocvm/energy"
)

// ExchangeStep implements the canonical ensemble's species-aware two-site
// swap. It maintains a per-species site-list cache for O(1)
// random site selection and O(1) swap-remove maintenance on every accepted
// move.
type ExchangeStep struct {
	calc *energy.Calculator
	k    int
	r, t float64

	speciesSites [][]int // speciesSites[c] = site indices currently holding species c
	sitePos      []int   // sitePos[i] = position of site i within its species' list
	cacheValid   bool

	attempted, accepted int64
}

// NewExchangeStep builds a canonical-ensemble step actor. r is the user
// gas-constant-or-Boltzmann-constant value whose units must match the
// calculator's ECI; t is the temperature in Kelvin.
func NewExchangeStep(calc *energy.Calculator, k int, r, t float64) *ExchangeStep {
	if r <= 0 {
		chk.Panic("mc.NewExchangeStep: R must be > 0, got %g", r)
	}
	if t <= 0 {
		chk.Panic("mc.NewExchangeStep: T must be > 0, got %g", t)
	}
	return &ExchangeStep{calc: calc, k: k, r: r, t: t}
}

// InvalidateCache must be called after any external code path mutates the
// configuration bypassing this step actor; the cache is otherwise silently stale.
func (s *ExchangeStep) InvalidateCache() {
	s.cacheValid = false
}

func (s *ExchangeStep) ensureCache(cfg *energy.Config) {
	if s.cacheValid {
		return
	}
	s.speciesSites = make([][]int, s.k)
	s.sitePos = make([]int, len(cfg.Occ))
	for i, occ := range cfg.Occ {
		s.speciesSites[occ] = append(s.speciesSites[occ], i)
		s.sitePos[i] = len(s.speciesSites[occ]) - 1
	}
	s.cacheValid = true
}

func (s *ExchangeStep) removeSite(species, site int) {
	list := s.speciesSites[species]
	pos := s.sitePos[site]
	last := len(list) - 1
	moved := list[last]
	list[pos] = moved
	s.sitePos[moved] = pos
	s.speciesSites[species] = list[:last]
}

func (s *ExchangeStep) addSite(species, site int) {
	s.speciesSites[species] = append(s.speciesSites[species], site)
	s.sitePos[site] = len(s.speciesSites[species]) - 1
}

func (s *ExchangeStep) nonEmptySpecies() []int {
	var ne []int
	for c, list := range s.speciesSites {
		if len(list) > 0 {
			ne = append(ne, c)
		}
	}
	return ne
}

// Attempt performs one canonical exchange attempt, returning the accepted
// ΔE (0 if rejected, or if fewer than two species are present -- a
// documented no-op).
func (s *ExchangeStep) Attempt(cfg *energy.Config) float64 {
	s.ensureCache(cfg)
	s.attempted++

	ne := s.nonEmptySpecies()
	if len(ne) < 2 {
		return 0
	}
	i1 := rnd.Int(0, len(ne)-1)
	c1 := ne[i1]
	i2 := rnd.Int(0, len(ne)-2)
	if i2 >= i1 {
		i2++
	}
	c2 := ne[i2]

	i := s.speciesSites[c1][rnd.Int(0, len(s.speciesSites[c1])-1)]
	j := s.speciesSites[c2][rnd.Int(0, len(s.speciesSites[c2])-1)]

	dE := s.calc.DeltaExchange(cfg, i, j)
	beta := 1.0 / (s.r * s.t)
	if dE <= 0 || rnd.Float64(0, 1) < math.Exp(-beta*dE) {
		s.removeSite(c1, i)
		s.removeSite(c2, j)
		cfg.Occ[i], cfg.Occ[j] = c2, c1
		s.addSite(c2, i)
		s.addSite(c1, j)
		s.accepted++
		return dE
	}
	return 0
}

// AcceptRate returns accepted/attempted, or 0 if no attempts were made
func (s *ExchangeStep) AcceptRate() float64 {
	if s.attempted == 0 {
		return 0
	}
	return float64(s.accepted) / float64(s.attempted)
}

// ResetCounters zeroes the acceptance statistics (without touching the
// species-site cache)
func (s *ExchangeStep) ResetCounters() {
	s.attempted, s.accepted = 0, 0
}

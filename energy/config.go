// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package energy implements the local energy calculator:
// the cluster product, total energy, and incremental ΔE for single-site and
// pair-exchange moves, plus the Config occupation model they act on.
package energy

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gocvm/basis"
)

// Config is a lattice configuration: an occupation array in [0,K) per site
// plus a reference to the site-operator basis used to evaluate it. It is
// constructed once per chain, mutated in place by MC steps, and never
// aliased across chains.
type Config struct {
	Occ   []int
	K     int
	Basis *basis.SiteOperatorBasis
}

// NewConfig allocates a configuration of N sites over K components, every
// site initialised to species 0.
func NewConfig(n, k int, bas *basis.SiteOperatorBasis) *Config {
	if k < 2 {
		chk.Panic("energy.NewConfig: k must be >= 2, got %d", k)
	}
	return &Config{Occ: make([]int, n), K: k, Basis: bas}
}

// Composition returns x[c] = count(c)/N for c in [0,K)
func (cfg *Config) Composition() []float64 {
	n := len(cfg.Occ)
	counts := make([]float64, cfg.K)
	for _, o := range cfg.Occ {
		counts[o]++
	}
	x := make([]float64, cfg.K)
	for c := range x {
		x[c] = counts[c] / float64(n)
	}
	return x
}

// Randomize assigns occupations matching composition x (length K, x[0]
// ignored and inferred as the remainder): counts round(x[c]*N) sites get
// species c for c>=1, the rest get species 0, placed via a Fisher-Yates
// shuffle over the site indices. The caller-owned
// rnd stream (gosl/rnd) gives the MC engine's deterministic-given-seed
// guarantee.
func (cfg *Config) Randomize(x []float64) {
	n := len(cfg.Occ)
	if len(x) != cfg.K {
		chk.Panic("Config.Randomize: x has length %d, want %d", len(x), cfg.K)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates: shuffle the whole index array once, then slice
	// off one contiguous block per non-zero species in turn.
	for i := n - 1; i > 0; i-- {
		j := rnd.Int(0, i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := range cfg.Occ {
		cfg.Occ[i] = 0
	}
	pos := 0
	for c := 1; c < cfg.K; c++ {
		count := int(x[c]*float64(n) + 0.5)
		for j := 0; j < count && pos < n; j++ {
			cfg.Occ[perm[pos]] = c
			pos++
		}
	}
}

// Clone returns a deep copy of the configuration sharing the same basis
func (cfg *Config) Clone() *Config {
	occ := make([]int, len(cfg.Occ))
	copy(occ, cfg.Occ)
	return &Config{Occ: occ, K: cfg.K, Basis: cfg.Basis}
}

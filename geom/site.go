// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// DefaultSymbol is the species symbol used for purely geometric (undecorated)
// reasoning.
const DefaultSymbol = "s1"

// Site is a lattice point: a fractional position plus a decoration symbol of
// the form "sα", α ∈ {1,...,k-1}.
type Site struct {
	Pos    Vec3
	Symbol string
}

// NewSite creates a new Site with the default (undecorated) symbol
func NewSite(pos Vec3) Site {
	return Site{Pos: pos, Symbol: DefaultSymbol}
}

// WithSymbol returns a copy of s decorated with the given basis symbol
func (s Site) WithSymbol(symbol string) Site {
	return Site{Pos: s.Pos, Symbol: symbol}
}

// Equals compares two sites: positions within eps and identical symbols
func (s Site) Equals(o Site, eps float64) bool {
	return s.Symbol == o.Symbol && s.Pos.Equals(o.Pos, eps)
}

func (s Site) String() string {
	return fmt.Sprintf("{%g,%g,%g:%s}", s.Pos[0], s.Pos[1], s.Pos[2], s.Symbol)
}

// Sublattice is an ordered, non-nil list of sites sharing one Wyckoff role.
type Sublattice []Site

// NewSublattice allocates an empty, non-nil sublattice
func NewSublattice() Sublattice {
	return make(Sublattice, 0)
}

// Clone returns a deep copy of the sublattice
func (sl Sublattice) Clone() Sublattice {
	c := make(Sublattice, len(sl))
	copy(c, sl)
	return c
}

// SortCanonical sorts sites ascending by (x,y,z) under eps-equality; this is
// the canonical ordering used by every equivalence test in the package.
func (sl Sublattice) SortCanonical(eps float64) {
	sort.SliceStable(sl, func(i, j int) bool {
		return lessVec3(sl[i].Pos, sl[j].Pos, eps)
	})
}

// lessVec3 imposes a total, eps-aware ordering on positions: lexicographic
// comparison of (x,y,z), treating differences smaller than eps as equal.
func lessVec3(a, b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if a[i]-b[i] > eps {
			return false
		}
		if b[i]-a[i] > eps {
			return true
		}
	}
	return false
}

// checkDims panics if two named counts disagree; used by FromFlatSites to
// guard its rc/flat-sites shape invariant, a caller-error condition rather
// than a legitimate equivalence-test outcome.
func checkDims(nameA, nameB string, na, nb int) {
	if na != nb {
		chk.Panic("%s and %s must have the same shape: %d != %d", nameA, nameB, na, nb)
	}
}
